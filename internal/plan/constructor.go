package plan

import (
	"fmt"
	"go/types"
	"strings"

	"builder-generator/internal/analyze"
	"builder-generator/internal/common"
)

// property is the part of a property constructor matching looks at.
type property struct {
	source string
	name   string
	typ    types.Type
}

func (p property) matches(param analyze.Param) bool {
	if !common.EqualFoldIdent(param.Name, p.source) && !common.EqualFoldIdent(param.Name, p.name) {
		return false
	}

	return types.Identical(param.Type, p.typ)
}

// ResolveConstructor returns the unique constructor of t whose parameters
// each match a non-ignored property by case-insensitive name (source or
// generated) and identical type.
func ResolveConstructor(t *analyze.Target) (*analyze.Constructor, error) {
	var props []property

	for _, shape := range t.Properties {
		if shape.Directives.Ignore {
			continue
		}

		name, _ := GeneratedName(t, shape)
		props = append(props, property{
			source: shape.Name,
			name:   name,
			typ:    shape.Type,
		})
	}

	var found []*analyze.Constructor

	for i := range t.Constructors {
		c := &t.Constructors[i]
		if allParamsMatch(c, props) {
			found = append(found, c)
		}
	}

	switch {
	case common.IsEmpty(found):
		return nil, fmt.Errorf("%w for %s: every parameter must match a property by name and type",
			ErrNoConstructor, t.Name)
	case common.IsSingle(found):
		return found[0], nil
	default:
		names := make([]string, len(found))
		for i, c := range found {
			names[i] = c.Name
		}

		return nil, fmt.Errorf("%w for %s: %s", ErrAmbiguousConstructor, t.Name, strings.Join(names, ", "))
	}
}

func allParamsMatch(c *analyze.Constructor, props []property) bool {
	for _, param := range c.Params {
		if matchProperty(param, props) < 0 {
			return false
		}
	}

	return true
}

func matchProperty(param analyze.Param, props []property) int {
	for i, p := range props {
		if p.matches(param) {
			return i
		}
	}

	return -1
}
