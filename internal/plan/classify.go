package plan

import (
	"fmt"
	"go/types"

	"builder-generator/internal/analyze"
	"builder-generator/internal/common"
)

// Env is the read-only batch state shared by all planning units.
type Env struct {
	Names        *NameIndex
	Types        analyze.TypeIndex
	MinGoVersion string
}

func (e Env) minGoVersion() string {
	if e.MinGoVersion == "" {
		return DefaultMinGoVersion
	}

	return e.MinGoVersion
}

// Classify decides the kind, field type, and result type of one property.
// name is the generated accessor name. The first matching rule wins:
// //builder:fieldtype, then list of string, list of int32, list of any other
// element, then scalar.
func Classify(shape analyze.PropertyShape, name string, env Env) (PropertyDescriptor, error) {
	p := PropertyDescriptor{
		Name:       name,
		SourceName: shape.Name,
		FieldName:  common.LowerCamel(name),
		SourceType: shape.Type,
		ResultType: shape.Type,
		FieldType:  shape.Type,
		Optional:   shape.Directives.Optional,
		Pos:        shape.Pos,
	}

	if shape.Directives.FieldType != "" {
		if shape.FieldTypeErr != nil {
			return PropertyDescriptor{}, fmt.Errorf("property %s: //builder:fieldtype %s: %w",
				shape.Name, shape.Directives.FieldType, shape.FieldTypeErr)
		}

		p.Kind = KindOverriddenField
		p.FieldType = shape.FieldType

		return p, nil
	}

	elem, ok := ListElem(shape.Type)
	if !ok {
		p.Kind = KindScalar
		return p, nil
	}

	switch {
	case types.Identical(elem, types.Typ[types.String]):
		p.Kind = KindStringList
	case types.Identical(elem, types.Typ[types.Int32]):
		p.Kind = KindInt32List
	default:
		eb, err := ResolveNested(elem, shape, env)
		if err != nil {
			return PropertyDescriptor{}, err
		}

		p.Kind = KindNestedBuilderList
		p.Element = eb
		p.FieldType = nil
	}

	return p, nil
}

// ListElem returns the element type of a slice-shaped type. Byte slices are
// scalars, not lists.
func ListElem(t types.Type) (types.Type, bool) {
	s, ok := t.Underlying().(*types.Slice)
	if !ok {
		return nil, false
	}

	if b, ok := s.Elem().(*types.Basic); ok && b.Kind() == types.Byte {
		return nil, false
	}

	return s.Elem(), true
}

// IsNillable reports whether nil is a value of t.
func IsNillable(t types.Type) bool {
	switch u := t.Underlying().(type) {
	case *types.Pointer, *types.Slice, *types.Map, *types.Chan, *types.Signature, *types.Interface:
		return true
	case *types.Basic:
		return u.Kind() == types.UnsafePointer || u.Kind() == types.UntypedNil
	default:
		return false
	}
}

func isPointer(t types.Type) bool {
	_, ok := t.(*types.Pointer)
	return ok
}

// GeneratedName returns the accessor name generated for shape: its
// //builder:name, unless that name would collide with a builder-only field of
// the aux struct. ok is false when the rename was dropped for that reason.
func GeneratedName(t *analyze.Target, shape analyze.PropertyShape) (name string, ok bool) {
	rename := shape.Directives.Name
	if rename == "" {
		return shape.Name, true
	}

	field := common.LowerCamel(rename)
	for _, aux := range t.Companion().AuxFields(t.BuilderName()) {
		if aux.Name == field {
			return shape.Name, false
		}
	}

	return rename, true
}
