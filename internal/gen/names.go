package gen

import (
	"go/token"
	"go/types"
)

// collectPackages records the packages referenced by t, keyed by path.
func collectPackages(t types.Type, into map[string]string) {
	switch t := t.(type) {
	case *types.Named:
		addPackage(t.Obj(), into)

		for i := range t.TypeArgs().Len() {
			collectPackages(t.TypeArgs().At(i), into)
		}
	case *types.Alias:
		addPackage(t.Obj(), into)

		for i := range t.TypeArgs().Len() {
			collectPackages(t.TypeArgs().At(i), into)
		}
	case *types.Basic:
		if t.Kind() == types.UnsafePointer {
			into["unsafe"] = "unsafe"
		}
	case *types.Pointer:
		collectPackages(t.Elem(), into)
	case *types.Slice:
		collectPackages(t.Elem(), into)
	case *types.Array:
		collectPackages(t.Elem(), into)
	case *types.Chan:
		collectPackages(t.Elem(), into)
	case *types.Map:
		collectPackages(t.Key(), into)
		collectPackages(t.Elem(), into)
	case *types.Signature:
		for _, tuple := range []*types.Tuple{t.Params(), t.Results()} {
			for i := range tuple.Len() {
				collectPackages(tuple.At(i).Type(), into)
			}
		}
	case *types.Struct:
		for i := range t.NumFields() {
			collectPackages(t.Field(i).Type(), into)
		}
	case *types.Interface:
		for i := range t.NumEmbeddeds() {
			collectPackages(t.EmbeddedType(i), into)
		}

		for i := range t.NumExplicitMethods() {
			collectPackages(t.ExplicitMethod(i).Type(), into)
		}
	}
}

func addPackage(obj *types.TypeName, into map[string]string) {
	if obj.Pkg() != nil {
		into[obj.Pkg().Path()] = obj.Pkg().Name()
	}
}

// scope hands out identifiers that shadow neither imported package names,
// predeclared identifiers, nor each other.
type scope struct {
	taken map[string]bool
}

func newScope(reserved ...string) *scope {
	s := &scope{taken: map[string]bool{}}
	for _, r := range reserved {
		s.taken[r] = true
	}

	return s
}

// name returns want, or want with underscores appended until it is free.
func (s *scope) name(want string) string {
	if want == "" || want == "_" {
		want = "arg"
	}

	for s.taken[want] || token.IsKeyword(want) || types.Universe.Lookup(want) != nil {
		want += "_"
	}

	s.taken[want] = true

	return want
}

// child returns a copy of s to allocate function-local names in.
func (s *scope) child() *scope {
	c := newScope()
	for k := range s.taken {
		c.taken[k] = true
	}

	return c
}
