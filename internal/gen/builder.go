package gen

import (
	"go/types"
	"slices"

	"github.com/dave/jennifer/jen"

	"builder-generator/internal/analyze"
	"builder-generator/internal/common"
	"builder-generator/internal/plan"
)

// receiver is the receiver name of every builder method.
const receiver = "b"

// builderEmitter writes one builder into one jen.File.
type builderEmitter struct {
	bp      *plan.BuilderPlan
	runtime string
	file    *jen.File
	names   *scope
}

func newBuilderEmitter(bp *plan.BuilderPlan, runtime string) *builderEmitter {
	f := jen.NewFilePathName(bp.PkgPath, analyze.BuildersPackage)
	f.HeaderComment(Header)

	pkgs := map[string]string{bp.Target.Pkg.Path: bp.Target.Pkg.Name}
	collectPackages(bp.Source, pkgs)

	elemPkgs := map[string]string{}

	for _, p := range bp.Properties {
		collectPackages(p.SourceType, pkgs)

		if p.FieldType != nil {
			collectPackages(p.FieldType, pkgs)
		}

		if eb := p.Element; eb != nil {
			collectPackages(eb.Elem, pkgs)

			if eb.PkgPath != bp.PkgPath {
				elemPkgs[eb.PkgPath] = eb.Elem.Obj().Pkg().Name() + analyze.BuildersPackage
			}
		}
	}

	reserved := []string{receiver, "reflist", "slices"}

	for _, path := range sortedKeys(pkgs) {
		if path == bp.PkgPath {
			continue
		}

		f.ImportName(path, pkgs[path])
		reserved = append(reserved, pkgs[path])
	}

	for _, path := range sortedKeys(elemPkgs) {
		f.ImportAlias(path, elemPkgs[path])
		reserved = append(reserved, elemPkgs[path])
	}

	f.ImportName(runtime, "reflist")
	f.ImportName("slices", "slices")

	return &builderEmitter{
		bp:      bp,
		runtime: runtime,
		file:    f,
		names:   newScope(reserved...),
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}

func (e *builderEmitter) emit() *jen.File {
	e.emitType()
	e.emitAccessors()
	e.emitNew()
	e.emitBuild()
	e.emitUpdate()

	return e.file
}

func (e *builderEmitter) emitType() {
	e.file.Commentf("%s is a mutable builder of %s.", e.bp.Name, e.bp.Target.Name)
	e.file.Type().Id(e.bp.Name).StructFunc(func(g *jen.Group) {
		for i := range e.bp.Properties {
			p := &e.bp.Properties[i]
			g.Id(p.FieldName).Add(e.fieldType(p))
		}

		if e.bp.HasAux {
			g.Id(e.bp.AuxStructName())
		}
	})
	e.file.Line()
}

func (e *builderEmitter) emitAccessors() {
	for i := range e.bp.Properties {
		p := &e.bp.Properties[i]

		if p.DirectAccess() {
			e.file.Func().Params(e.recv()).Id(p.Name).Params().Add(e.fieldType(p)).Block(
				jen.Return(e.field(p)),
			)
		} else {
			e.file.Func().Params(e.recv()).Id(p.Name).Params().Add(e.fieldType(p)).Block(
				jen.If(e.field(p).Op("==").Nil()).Block(
					e.field(p).Op("=").Add(e.defaultCode(p)),
				),
				jen.Return(e.field(p)),
			)
		}

		e.file.Line()

		value := e.names.child().name("value")
		e.file.Func().Params(e.recv()).Id(p.SetterName()).Params(jen.Id(value).Add(e.fieldType(p))).Block(
			e.field(p).Op("=").Id(value),
		)
		e.file.Line()
	}
}

func (e *builderEmitter) emitNew() {
	sc := e.names.child()
	source := sc.name("source")

	e.file.Commentf("%s creates a builder holding the values of source.", e.bp.ConstructorName())
	e.file.Func().Id(e.bp.ConstructorName()).Params(jen.Id(source).Add(typeCode(e.bp.Source))).Id(e.bp.Name).BlockFunc(func(g *jen.Group) {
		g.Var().Id(receiver).Id(e.bp.Name)

		for i := range e.bp.Properties {
			g.Add(e.initStmt(&e.bp.Properties[i], source, sc))
		}

		for _, aux := range e.bp.Aux {
			g.Id(receiver).Dot("Initialize"+common.Capitalize(aux.Name)).Call(
				jen.Id(source),
				jen.Op("&").Id(receiver).Dot(aux.Name),
			)
		}

		g.Return(jen.Id(receiver))
	})
	e.file.Line()
}

func (e *builderEmitter) initStmt(p *plan.PropertyDescriptor, source string, sc *scope) jen.Code {
	get := jen.Id(source).Dot(p.SourceName).Call()

	switch {
	case p.InitHook:
		return jen.Id(receiver).Dot(p.InitHookName()).Call(jen.Id(source), jen.Op("&").Add(e.field(p)))
	case p.Kind == plan.KindStringList || p.Kind == plan.KindInt32List:
		return e.field(p).Op("=").Qual("slices", "Clone").Call(get)
	case p.Kind == plan.KindNestedBuilderList:
		return e.field(p).Op("=").Qual(e.runtime, "CreateOrNil").Call(get, e.newElemFunc(p.Element, sc))
	default:
		return e.field(p).Op("=").Add(get)
	}
}

// newElemFunc converts one list element into its builder.
func (e *builderEmitter) newElemFunc(eb *plan.ElementBuilder, sc *scope) jen.Code {
	ctor := jen.Qual(eb.PkgPath, eb.ConstructorName())
	if !eb.NeedsAdapter() {
		return ctor
	}

	v := sc.child().name("elem")
	if eb.ElemPointer {
		return jen.Func().Params(jen.Id(v).Op("*").Add(typeCode(eb.Elem))).Add(e.elemBuilder(eb)).Block(
			jen.Return(ctor.Call(jen.Op("*").Id(v))),
		)
	}

	return jen.Func().Params(jen.Id(v).Add(typeCode(eb.Elem))).Add(e.elemBuilder(eb)).Block(
		jen.Return(ctor.Call(jen.Op("&").Id(v))),
	)
}

// buildElemFunc builds one element builder into a list element.
func (e *builderEmitter) buildElemFunc(eb *plan.ElementBuilder, sc *scope) jen.Code {
	if !eb.NeedsAdapter() {
		return jen.Parens(jen.Op("*").Add(e.elemBuilder(eb))).Dot("Build")
	}

	local := sc.child()
	v := local.name("elem")
	param := jen.Id(v).Op("*").Add(e.elemBuilder(eb))

	if eb.ElemPointer {
		built := local.name("built")

		return jen.Func().Params(param).Op("*").Add(typeCode(eb.Elem)).Block(
			jen.Id(built).Op(":=").Id(v).Dot("Build").Call(),
			jen.Return(jen.Op("&").Id(built)),
		)
	}

	return jen.Func().Params(param).Add(typeCode(eb.Elem)).Block(
		jen.Return(jen.Op("*").Id(v).Dot("Build").Call()),
	)
}

func (e *builderEmitter) emitBuild() {
	sc := e.names.child()
	ctor := e.bp.Constructor

	e.file.Commentf("Build constructs the %s described by the builder.", e.bp.Target.Name)
	e.file.Func().Params(e.recv()).Id("Build").Params().Add(typeCode(e.bp.Source)).BlockFunc(func(g *jen.Group) {
		args := make([]jen.Code, 0, len(e.bp.Args))

		for _, a := range e.bp.Args {
			local := sc.name(a.Param.Name)
			e.buildArg(g, &e.bp.Properties[a.Property], a, local, sc)

			arg := jen.Id(local)
			if a.Variadic {
				arg = arg.Op("...")
			}

			args = append(args, arg)
		}

		g.Return(jen.Qual(e.bp.Target.Pkg.Path, ctor.Name).Call(args...))
	})
	e.file.Line()
}

func (e *builderEmitter) buildArg(g *jen.Group, p *plan.PropertyDescriptor, a plan.Arg, local string, sc *scope) {
	switch {
	case p.BuildHook:
		g.Id(local).Op(":=").Id(receiver).Dot(p.BuildHookName()).Call(e.field(p))
	case p.Kind == plan.KindStringList || p.Kind == plan.KindInt32List:
		g.Id(local).Op(":=").Qual(e.runtime, "CloneOrEmpty").Call(e.field(p))
	case p.Kind == plan.KindNestedBuilderList:
		built := jen.Qual(e.runtime, "BuildOrEmpty").Call(e.field(p), e.buildElemFunc(p.Element, sc))
		if isDefined(a.Param.Type) {
			built = typeCode(a.Param.Type).Call(built)
		}

		g.Id(local).Op(":=").Add(built)
	case p.DirectAccess():
		g.Id(local).Op(":=").Add(e.field(p))
	default:
		g.Id(local).Op(":=").Add(e.field(p))
		g.If(jen.Id(local).Op("==").Nil()).Block(
			jen.Id(local).Op("=").Add(e.defaultCode(p)),
		)
	}
}

func (e *builderEmitter) emitUpdate() {
	sc := e.names.child()
	source := sc.name("source")
	update := sc.name("update")
	builder := sc.name("builder")
	result := typeCode(e.bp.Source)

	e.file.Commentf("%s applies update to a builder of source and returns the rebuilt value.", e.bp.UpdateName())
	e.file.Func().Id(e.bp.UpdateName()).Params(
		jen.Id(source).Add(result.Clone()),
		jen.Id(update).Func().Params(jen.Op("*").Id(e.bp.Name)),
	).Add(result.Clone()).Block(
		jen.Id(builder).Op(":=").Id(e.bp.ConstructorName()).Call(jen.Id(source)),
		jen.Id(update).Call(jen.Op("&").Id(builder)),
		jen.Return(jen.Id(builder).Dot("Build").Call()),
	)
}

func (e *builderEmitter) recv() *jen.Statement {
	return jen.Id(receiver).Op("*").Id(e.bp.Name)
}

func (e *builderEmitter) field(p *plan.PropertyDescriptor) *jen.Statement {
	return jen.Id(receiver).Dot(p.FieldName)
}

func (e *builderEmitter) fieldType(p *plan.PropertyDescriptor) *jen.Statement {
	if p.Kind == plan.KindNestedBuilderList {
		return jen.Op("*").Qual(e.runtime, "RefList").Types(e.elemBuilder(p.Element))
	}

	return typeCode(p.FieldType)
}

func (e *builderEmitter) elemBuilder(eb *plan.ElementBuilder) *jen.Statement {
	return jen.Qual(eb.PkgPath, eb.Name)
}

func (e *builderEmitter) defaultCode(p *plan.PropertyDescriptor) jen.Code {
	d := p.Default

	switch d.Kind {
	case plan.DefaultEmptyString:
		return jen.Lit("")
	case plan.DefaultNewString:
		return jen.New(jen.String())
	case plan.DefaultEmptyStrings:
		return jen.Index().String().Values()
	case plan.DefaultEmptyInt32s:
		return jen.Index().Int32().Values()
	case plan.DefaultEmptyRefList:
		return jen.Qual(e.runtime, "Empty").Types(e.elemBuilder(d.Element)).Call()
	default:
		return jen.Id(receiver).Dot(d.Method).Call()
	}
}

// isDefined reports whether t is a named (or aliased) type that an unnamed
// slice must be converted to.
func isDefined(t types.Type) bool {
	switch t.(type) {
	case *types.Named, *types.Alias:
		return true
	default:
		return false
	}
}
