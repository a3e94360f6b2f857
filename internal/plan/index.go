package plan

import (
	"slices"

	"builder-generator/internal/analyze"
)

// BuilderRef is what the NameIndex knows about a builder pending synthesis.
type BuilderRef struct {
	ID      string // qualified builder name
	PkgPath string
	Name    string
	// SourcePointer is true when the builder is created from *T.
	SourcePointer bool
}

// NameIndex is the immutable set of builders the batch will produce. It is
// built once before any target is planned and only read afterwards.
type NameIndex struct {
	refs  map[string]BuilderRef
	names []string
}

// NewNameIndex names every target of the batch.
func NewNameIndex(targets []*analyze.Target) *NameIndex {
	idx := &NameIndex{refs: make(map[string]BuilderRef, len(targets))}

	for _, t := range targets {
		ref := BuilderRef{
			ID:      t.BuilderID(),
			PkgPath: t.Pkg.BuilderPath(),
			Name:    t.BuilderName(),
		}

		// A target without a usable constructor fails on its own; its
		// dependents then assume a value source.
		if ctor, err := ResolveConstructor(t); err == nil {
			ref.SourcePointer = isPointer(ctor.Result)
		}

		idx.refs[ref.ID] = ref
		idx.names = append(idx.names, ref.Name)
	}

	slices.Sort(idx.names)
	idx.names = slices.Compact(idx.names)

	return idx
}

// Lookup returns the builder with the qualified name id.
func (idx *NameIndex) Lookup(id string) (BuilderRef, bool) {
	if idx == nil {
		return BuilderRef{}, false
	}

	ref, ok := idx.refs[id]
	return ref, ok
}

// Len returns the number of builders in the index.
func (idx *NameIndex) Len() int {
	if idx == nil {
		return 0
	}

	return len(idx.refs)
}

// Names returns the sorted unqualified builder names.
func (idx *NameIndex) Names() []string {
	if idx == nil {
		return nil
	}

	return slices.Clone(idx.names)
}
