package plan

import (
	"fmt"
	"go/types"

	"builder-generator/internal/analyze"
	"builder-generator/internal/common"
	"builder-generator/internal/diagnostic"
)

// Plan classifies every non-ignored property of t, resolves defaults and the
// constructor, and returns the builder plan. Resolution failures are
// *ResolutionError; no partial plan is returned on error.
func Plan(t *analyze.Target, env Env) (*BuilderPlan, error) {
	if err := CheckHostVersion(t.Pkg.GoVersion, env.minGoVersion()); err != nil {
		return nil, err
	}

	companion := t.Companion()
	builder := t.BuilderName()

	bp := &BuilderPlan{
		Target:  t,
		Name:    builder,
		PkgPath: t.Pkg.BuilderPath(),
		HasAux:  companion.HasAux(builder),
		Aux:     companion.AuxFields(builder),
	}

	methods := map[string]string{"Build": builder + ".Build"}
	fields := newFieldNames(bp)

	for _, shape := range t.Properties {
		if shape.Directives.Ignore {
			continue
		}

		name, ok := GeneratedName(t, shape)
		if !ok {
			bp.Diagnostics.AddWarning(diagnostic.KindNone,
				fmt.Sprintf("//builder:name %s collides with builder field %s, keeping %s",
					shape.Directives.Name, common.LowerCamel(shape.Directives.Name), shape.Name),
				t.ID(), shape.Name)
		}

		p, err := Classify(shape, name, env)
		if err != nil {
			return nil, err
		}

		if err := claimAccessors(methods, &p); err != nil {
			return nil, err
		}

		p.FieldName = fields.take(p.FieldName)

		p.InitHook = companion.HasMethod(builder, p.InitHookName())
		p.BuildHook = companion.HasMethod(builder, p.BuildHookName())

		if !p.DirectAccess() {
			d, err := ResolveDefault(&p, companion, builder)
			if err != nil {
				return nil, err
			}

			p.Default = &d
		}

		if p.Kind == KindOverriddenField && !p.InitHook && !types.AssignableTo(p.SourceType, p.FieldType) {
			return nil, fmt.Errorf("property %s: field type %s cannot hold %s, add method %s to the builder",
				p.SourceName, p.FieldType, p.SourceType, p.InitHookName())
		}

		bp.Properties = append(bp.Properties, p)
	}

	ctor, err := ResolveConstructor(t)
	if err != nil {
		return nil, err
	}

	bp.Constructor = ctor
	bp.Source = ctor.Result

	props := make([]property, len(bp.Properties))
	for i, p := range bp.Properties {
		props[i] = property{source: p.SourceName, name: p.Name, typ: p.SourceType}
	}

	for i, param := range ctor.Params {
		idx := matchProperty(param, props)
		p := &bp.Properties[idx]

		if p.Kind == KindOverriddenField && !p.BuildHook && !types.AssignableTo(p.FieldType, p.ResultType) {
			return nil, fmt.Errorf("property %s: field type %s cannot be passed as %s, add method %s to the builder",
				p.SourceName, p.FieldType, p.ResultType, p.BuildHookName())
		}

		bp.Args = append(bp.Args, Arg{
			Param:    param,
			Property: idx,
			Variadic: ctor.Variadic && i == len(ctor.Params)-1,
		})
	}

	return bp, nil
}

// claimAccessors records the getter and setter of p as builder methods.
func claimAccessors(methods map[string]string, p *PropertyDescriptor) error {
	for _, m := range []string{p.Name, p.SetterName()} {
		if owner, taken := methods[m]; taken {
			return fmt.Errorf("%w: method %s of property %s is already generated for %s",
				ErrNameCollision, m, p.SourceName, owner)
		}

		methods[m] = "property " + p.SourceName
	}

	return nil
}

// fieldNames hands out unique struct field names for one builder.
type fieldNames map[string]bool

func newFieldNames(bp *BuilderPlan) fieldNames {
	f := fieldNames{}
	if bp.HasAux {
		f[bp.AuxStructName()] = true
	}

	for _, aux := range bp.Aux {
		f[aux.Name] = true
	}

	return f
}

// take returns want, or want with underscores appended until it is free.
func (f fieldNames) take(want string) string {
	for f[want] {
		want += "_"
	}

	f[want] = true

	return want
}
