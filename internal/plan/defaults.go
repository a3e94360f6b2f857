package plan

import (
	"go/types"

	"builder-generator/internal/analyze"
	"builder-generator/internal/diagnostic"
)

// DefaultKind selects the shape of a default expression.
type DefaultKind int

const (
	// DefaultEmptyString is "".
	DefaultEmptyString DefaultKind = iota + 1
	// DefaultNewString is new(string).
	DefaultNewString
	// DefaultEmptyStrings is []string{}.
	DefaultEmptyStrings
	// DefaultEmptyInt32s is []int32{}.
	DefaultEmptyInt32s
	// DefaultEmptyRefList is reflist.Empty[ElemBuilder]().
	DefaultEmptyRefList
	// DefaultHook calls b.GetDefault<Name>Value().
	DefaultHook
)

// DefaultExpr is the expression that materializes an unset field.
type DefaultExpr struct {
	Kind DefaultKind
	// Element is set for DefaultEmptyRefList.
	Element *ElementBuilder
	// Method is set for DefaultHook.
	Method string
}

// DefaultHookName returns the default-provider hook name for a property.
func DefaultHookName(property string) string {
	return "GetDefault" + property + "Value"
}

// ResolveDefault returns the default expression of p. Built-in rules cover
// strings and lists; anything else needs a GetDefault<Name>Value method on
// the builder.
func ResolveDefault(p *PropertyDescriptor, companion *analyze.Companion, builderName string) (DefaultExpr, error) {
	switch p.Kind {
	case KindStringList:
		return DefaultExpr{Kind: DefaultEmptyStrings}, nil
	case KindInt32List:
		return DefaultExpr{Kind: DefaultEmptyInt32s}, nil
	case KindNestedBuilderList:
		return DefaultExpr{Kind: DefaultEmptyRefList, Element: p.Element}, nil
	}

	str := types.Typ[types.String]

	switch {
	case types.Identical(p.FieldType, str):
		return DefaultExpr{Kind: DefaultEmptyString}, nil
	case types.Identical(p.FieldType, types.NewPointer(str)):
		return DefaultExpr{Kind: DefaultNewString}, nil
	}

	method := DefaultHookName(p.Name)
	if companion.HasMethod(builderName, method) {
		return DefaultExpr{Kind: DefaultHook, Method: method}, nil
	}

	return DefaultExpr{}, &ResolutionError{
		Kind:     diagnostic.KindMissingDefaultValue,
		Pos:      p.Pos,
		Args:     []string{p.Name, method},
		Property: p.Name,
	}
}

// MissingDefault is a default-provider hook a builder lacks.
type MissingDefault struct {
	Builder  string
	Property string
	Method   string
	// Type is the hook's result type.
	Type types.Type
}

// MissingDefaults lists every GetDefault<Name>Value hook t's builder needs
// but does not declare. Properties that fail to classify are skipped; Plan
// reports them.
func MissingDefaults(t *analyze.Target, env Env) []MissingDefault {
	companion := t.Companion()
	builder := t.BuilderName()

	var out []MissingDefault

	for _, shape := range t.Properties {
		if shape.Directives.Ignore {
			continue
		}

		name, _ := GeneratedName(t, shape)

		p, err := Classify(shape, name, env)
		if err != nil || p.DirectAccess() {
			continue
		}

		if _, err := ResolveDefault(&p, companion, builder); err != nil {
			out = append(out, MissingDefault{
				Builder:  builder,
				Property: p.Name,
				Method:   DefaultHookName(p.Name),
				Type:     p.FieldType,
			})
		}
	}

	return out
}
