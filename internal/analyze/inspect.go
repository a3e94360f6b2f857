package analyze

import (
	"cmp"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"slices"
)

// Source is one type-checked package, however it was loaded.
type Source struct {
	Fset      *token.FileSet
	Files     []*ast.File
	Types     *types.Package
	Dir       string
	GoVersion string
}

// Inspect discovers the targets of src together with their properties and
// constructor candidates. companion may be nil.
func Inspect(src Source, companion *Companion) (*Package, error) {
	if companion == nil {
		companion = newCompanion()
	}

	pkg := &Package{
		Path:      src.Types.Path(),
		Name:      src.Types.Name(),
		Dir:       src.Dir,
		GoVersion: src.GoVersion,
		Types:     src.Types,
		Companion: companion,
	}

	idx := indexDecls(src.Files)

	for _, ts := range idx.types {
		doc := idx.typeDocs[ts]
		if !hasGenerateDirective(doc...) {
			continue
		}

		t, err := inspectTarget(src, pkg, idx, ts)
		if err != nil {
			return nil, err
		}

		pkg.Targets = append(pkg.Targets, t)
	}

	return pkg, nil
}

// declIndex maps declarations to their doc comments.
type declIndex struct {
	types    []*ast.TypeSpec
	typeDocs map[*ast.TypeSpec][]*ast.CommentGroup
	funcs    map[token.Pos]*ast.FuncDecl // keyed by name position
}

func indexDecls(files []*ast.File) declIndex {
	idx := declIndex{
		typeDocs: map[*ast.TypeSpec][]*ast.CommentGroup{},
		funcs:    map[token.Pos]*ast.FuncDecl{},
	}

	for _, f := range files {
		for _, decl := range f.Decls {
			switch d := decl.(type) {
			case *ast.FuncDecl:
				idx.funcs[d.Name.Pos()] = d
			case *ast.GenDecl:
				if d.Tok != token.TYPE {
					continue
				}

				for _, spec := range d.Specs {
					ts := spec.(*ast.TypeSpec)
					idx.types = append(idx.types, ts)

					// A lone spec in an unparenthesized decl documents itself
					// through the GenDecl.
					if d.Lparen.IsValid() {
						idx.typeDocs[ts] = []*ast.CommentGroup{ts.Doc}
					} else {
						idx.typeDocs[ts] = []*ast.CommentGroup{d.Doc, ts.Doc}
					}
				}
			}
		}
	}

	return idx
}

func inspectTarget(src Source, pkg *Package, idx declIndex, ts *ast.TypeSpec) (*Target, error) {
	pos := src.Fset.Position(ts.Pos())

	if _, err := parseDirectives(src.Fset, idx.typeDocs[ts]...); err != nil {
		return nil, err
	}

	obj, ok := src.Types.Scope().Lookup(ts.Name.Name).(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("%s: %s is not a package-level type", pos, ts.Name.Name)
	}

	named, ok := obj.Type().(*types.Named)
	if !ok || obj.IsAlias() {
		return nil, fmt.Errorf("%s: %s: //builder:generate requires a defined type", pos, ts.Name.Name)
	}

	if named.TypeParams().Len() > 0 {
		return nil, fmt.Errorf("%s: %s: generic types cannot have builders", pos, ts.Name.Name)
	}

	t := &Target{
		Name:  ts.Name.Name,
		Pkg:   pkg,
		Pos:   pos,
		Named: named,
	}

	props, err := inspectProperties(src, idx, named)
	if err != nil {
		return nil, err
	}

	t.Properties = props
	t.Constructors = inspectConstructors(src, named)

	return t, nil
}

func inspectProperties(src Source, idx declIndex, named *types.Named) ([]PropertyShape, error) {
	var props []PropertyShape

	for i := range named.NumMethods() {
		m := named.Method(i)
		if !m.Exported() {
			continue
		}

		sig := m.Type().(*types.Signature)
		if sig.Params().Len() != 0 || sig.Results().Len() != 1 {
			continue
		}

		p := PropertyShape{
			Name: m.Name(),
			Type: sig.Results().At(0).Type(),
			Pos:  src.Fset.Position(m.Pos()),
		}

		if recv := sig.Recv(); recv != nil {
			_, p.Pointer = recv.Type().(*types.Pointer)
		}

		if fn := idx.funcs[m.Pos()]; fn != nil {
			d, err := parseDirectives(src.Fset, fn.Doc)
			if err != nil {
				return nil, err
			}

			p.Directives = d

			if d.FieldType != "" {
				tv, err := types.Eval(src.Fset, src.Types, fn.Pos(), d.FieldType)
				switch {
				case err != nil:
					p.FieldTypeErr = err
				case !tv.IsType():
					p.FieldTypeErr = fmt.Errorf("%q is not a type", d.FieldType)
				default:
					p.FieldType = tv.Type
				}
			}
		}

		props = append(props, p)
	}

	slices.SortStableFunc(props, func(a, b PropertyShape) int {
		return comparePos(a.Pos, b.Pos)
	})

	return props, nil
}

func inspectConstructors(src Source, named *types.Named) []Constructor {
	var out []Constructor

	scope := src.Types.Scope()
	for _, name := range scope.Names() {
		fn, ok := scope.Lookup(name).(*types.Func)
		if !ok || !fn.Exported() {
			continue
		}

		sig := fn.Type().(*types.Signature)
		if sig.TypeParams().Len() > 0 || sig.Results().Len() != 1 {
			continue
		}

		result := sig.Results().At(0).Type()
		if !isTargetResult(result, named) {
			continue
		}

		c := Constructor{
			Name:     fn.Name(),
			Variadic: sig.Variadic(),
			Result:   result,
			Pos:      src.Fset.Position(fn.Pos()),
		}

		for i := range sig.Params().Len() {
			v := sig.Params().At(i)
			c.Params = append(c.Params, Param{Name: v.Name(), Type: v.Type()})
		}

		out = append(out, c)
	}

	slices.SortStableFunc(out, func(a, b Constructor) int {
		return comparePos(a.Pos, b.Pos)
	})

	return out
}

func isTargetResult(t types.Type, named *types.Named) bool {
	if types.Identical(t, named) {
		return true
	}

	ptr, ok := t.(*types.Pointer)

	return ok && types.Identical(ptr.Elem(), named)
}

// comparePos orders positions by file name, then offset.
func comparePos(a, b token.Position) int {
	if c := cmp.Compare(a.Filename, b.Filename); c != 0 {
		return c
	}

	return cmp.Compare(a.Offset, b.Offset)
}
