package plan

import (
	"go/types"
	"path"
	"strings"

	"builder-generator/internal/analyze"
	"builder-generator/internal/diagnostic"
	"builder-generator/internal/match"
)

// maxSuggestions bounds the "did you mean" list of a missing builder.
const maxSuggestions = 3

// unnamedBuilder stands in for the expected builder of an unnamed element.
const unnamedBuilder = "<unnamed>"

// ResolveNested locates the builder of a list element type. The builder must
// either be pending synthesis in this batch or already exist. An existing
// builder's constructor decides whether it is created from a pointer.
func ResolveNested(elem types.Type, shape analyze.PropertyShape, env Env) (*ElementBuilder, error) {
	named, pointer := elementNamed(elem)
	if named == nil || named.Obj().Pkg() == nil {
		return nil, missingBuilder(elem, unnamedBuilder, "", shape, env)
	}

	eb := &ElementBuilder{
		Elem:          named,
		ElemPointer:   pointer,
		SourcePointer: pointer,
		PkgPath:       path.Join(named.Obj().Pkg().Path(), analyze.BuildersPackage),
		Name:          named.Obj().Name() + analyze.BuilderSuffix,
	}

	if ref, ok := env.Names.Lookup(eb.ID()); ok {
		eb.SourcePointer = ref.SourcePointer
		return eb, nil
	}

	if existing, ok := env.Types.Lookup(eb.ID()); ok {
		if existing.HasConstructor {
			eb.SourcePointer = existing.FromPointer
		}

		return eb, nil
	}

	return nil, missingBuilder(elem, eb.ID(), eb.Name, shape, env)
}

// elementNamed unwraps Elem or *Elem.
func elementNamed(t types.Type) (*types.Named, bool) {
	if ptr, ok := t.(*types.Pointer); ok {
		named, _ := ptr.Elem().(*types.Named)
		return named, true
	}

	named, _ := t.(*types.Named)

	return named, false
}

func missingBuilder(elem types.Type, expected, name string, shape analyze.PropertyShape, env Env) error {
	err := &ResolutionError{
		Kind:     diagnostic.KindMissingNestedBuilder,
		Pos:      shape.Pos,
		Args:     []string{types.TypeString(elem, packageName), expected, shape.Name},
		Property: shape.Name,
	}

	if name != "" {
		err.Suggestions = suggestBuilders(name, append(env.Names.Names(), env.Types.Names()...))
	}

	return err
}

// suggestBuilders ranks builder names by the similarity of their element
// type names, since the shared suffix says nothing.
func suggestBuilders(name string, builders []string) []string {
	elems := make([]string, 0, len(builders))
	for _, b := range builders {
		if e, ok := strings.CutSuffix(b, analyze.BuilderSuffix); ok && e != "" {
			elems = append(elems, e)
		}
	}

	suggestions := match.Suggest(strings.TrimSuffix(name, analyze.BuilderSuffix), elems, maxSuggestions)
	for i := range suggestions {
		suggestions[i] += analyze.BuilderSuffix
	}

	return suggestions
}

// packageName qualifies types by package name only.
func packageName(p *types.Package) string {
	return p.Name()
}
