package analyze

import (
	"go/token"
	"go/types"
	"path"
	"path/filepath"
	"slices"
	"strings"
)

// BuildersPackage is the name and path suffix of the package that holds the
// builders of a source package.
const BuildersPackage = "builders"

// BuilderSuffix is appended to a source type name to name its builder.
const BuilderSuffix = "Builder"

// Package is one analyzed source package.
type Package struct {
	Path      string // import path, e.g. "builder-generator/store"
	Name      string // package name
	Dir       string // directory on disk (may be empty for in-memory packages)
	GoVersion string // go directive of the owning module, without "go" prefix
	Types     *types.Package
	Targets   []*Target
	Companion *Companion
}

// BuilderPath returns the import path of the package's builders package.
func (p *Package) BuilderPath() string {
	return path.Join(p.Path, BuildersPackage)
}

// BuilderDir returns the directory of the package's builders package.
func (p *Package) BuilderDir() string {
	if p.Dir == "" {
		return ""
	}

	return filepath.Join(p.Dir, BuildersPackage)
}

// Target is one type marked with //builder:generate.
type Target struct {
	Name         string
	Pkg          *Package
	Pos          token.Position
	Named        *types.Named
	Properties   []PropertyShape
	Constructors []Constructor
}

// ID returns the qualified type name, e.g. "builder-generator/store.Order".
func (t *Target) ID() string {
	return t.Pkg.Path + "." + t.Name
}

// BuilderName returns the unqualified builder type name.
func (t *Target) BuilderName() string {
	return t.Name + BuilderSuffix
}

// BuilderID returns the qualified builder type name.
func (t *Target) BuilderID() string {
	return t.Pkg.BuilderPath() + "." + t.BuilderName()
}

// Companion returns the hand-written builder-side declarations for the
// target's package. It is never nil.
func (t *Target) Companion() *Companion {
	if t.Pkg.Companion == nil {
		return emptyCompanion
	}

	return t.Pkg.Companion
}

// PropertyShape is the normalized shape of one exported getter of a target.
type PropertyShape struct {
	Name       string // getter name in the source type
	Type       types.Type
	Pos        token.Position
	Pointer    bool // declared on *T rather than T
	Directives Directives
	// FieldType is the evaluated //builder:fieldtype expression, if any.
	FieldType types.Type
	// FieldTypeErr records why the //builder:fieldtype expression could not be evaluated.
	FieldTypeErr error
}

// Param is one constructor parameter.
type Param struct {
	Name string
	Type types.Type
}

// Constructor is an exported package-level function returning the target
// type or a pointer to it.
type Constructor struct {
	Name     string
	Params   []Param
	Variadic bool
	Result   types.Type
	Pos      token.Position
}

// ElementPackage returns the package declaring the element type of a slice
// property, or nil when t is not a slice of named types.
func ElementPackage(t types.Type) *types.Package {
	s, ok := t.Underlying().(*types.Slice)
	if !ok {
		return nil
	}

	elem := types.Unalias(s.Elem())
	if p, ok := elem.(*types.Pointer); ok {
		elem = types.Unalias(p.Elem())
	}

	named, ok := elem.(*types.Named)
	if !ok {
		return nil
	}

	return named.Obj().Pkg()
}

// Batch is the full set of analyzed packages of one run.
type Batch struct {
	Fset     *token.FileSet
	Packages []*Package
	// External holds the builder types, generated ones included, declared
	// in the builders packages of element packages outside the batch.
	External TypeIndex
}

// Targets returns every target of the batch in discovery order.
func (b *Batch) Targets() []*Target {
	var out []*Target
	for _, p := range b.Packages {
		out = append(out, p.Targets...)
	}

	return out
}

// TypeIndex returns the types declared by hand in the builders packages of
// the batch, plus the external ones.
func (b *Batch) TypeIndex() TypeIndex {
	idx := TypeIndex{}
	for id, t := range b.External {
		idx[id] = t
	}

	for _, p := range b.Packages {
		if p.Companion != nil {
			idx.AddAll(p.Path, p.Companion)
		}
	}

	return idx
}

// ExistingType is a type already declared in some builders package.
type ExistingType struct {
	// HasConstructor is true when the package declares New<Name>.
	HasConstructor bool
	// FromPointer is true when New<Name> takes a pointer.
	FromPointer bool
}

// TypeIndex maps qualified type names that already exist to what is known
// about them.
type TypeIndex map[string]ExistingType

// AddAll records every type c declares in the builders package of pkgPath.
func (idx TypeIndex) AddAll(pkgPath string, c *Companion) {
	prefix := path.Join(pkgPath, BuildersPackage) + "."

	for name := range c.Declared {
		pointer, ok := c.HasConstructor(name)
		idx[prefix+name] = ExistingType{HasConstructor: ok, FromPointer: pointer}
	}
}

// Has reports whether the qualified name is in the index.
func (idx TypeIndex) Has(id string) bool {
	_, ok := idx[id]
	return ok
}

// Lookup returns what is known about the qualified name.
func (idx TypeIndex) Lookup(id string) (ExistingType, bool) {
	t, ok := idx[id]
	return t, ok
}

// Names returns the unqualified type names of the index, sorted.
func (idx TypeIndex) Names() []string {
	out := make([]string, 0, len(idx))
	for id := range idx {
		out = append(out, id[strings.LastIndexByte(id, '.')+1:])
	}

	slices.Sort(out)

	return out
}
