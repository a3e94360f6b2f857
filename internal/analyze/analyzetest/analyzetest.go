// Package analyzetest type-checks in-memory Go sources into analyze values
// for tests.
package analyzetest

import (
	"fmt"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/require"

	"builder-generator/internal/analyze"
)

// GoVersion is the module go version given to checked packages.
const GoVersion = "1.24"

// Universe type-checks packages in the order they are added. Later packages
// may import earlier ones.
type Universe struct {
	t        *testing.T
	fset     *token.FileSet
	checked  map[string]*types.Package
	fallback types.Importer
	batch    *analyze.Batch
}

// New creates an empty Universe.
func New(t *testing.T) *Universe {
	t.Helper()

	fset := token.NewFileSet()

	return &Universe{
		t:        t,
		fset:     fset,
		checked:  map[string]*types.Package{},
		fallback: importer.ForCompiler(fset, "source", nil),
		batch:    &analyze.Batch{Fset: fset},
	}
}

// Import implements types.Importer.
func (u *Universe) Import(path string) (*types.Package, error) {
	if p, ok := u.checked[path]; ok {
		return p, nil
	}

	return u.fallback.Import(path)
}

// Fset returns the universe's file set.
func (u *Universe) Fset() *token.FileSet {
	return u.fset
}

// Add type-checks src as package path, scans companion as its builders
// package, and appends the result to the batch.
func (u *Universe) Add(path, src string, companion ...string) *analyze.Package {
	u.t.Helper()

	return u.AddVersion(path, GoVersion, src, companion...)
}

// AddVersion is Add with an explicit module go version.
func (u *Universe) AddVersion(path, goVersion, src string, companion ...string) *analyze.Package {
	u.t.Helper()

	pkg, err := u.TryAdd(path, goVersion, src, companion...)
	require.NoError(u.t, err)

	return pkg
}

// TryAdd is AddVersion returning analysis errors instead of failing.
func (u *Universe) TryAdd(path, goVersion, src string, companion ...string) (*analyze.Package, error) {
	u.t.Helper()

	f, err := parser.ParseFile(u.fset, path+"/source.go", src, parser.ParseComments)
	require.NoError(u.t, err)

	conf := types.Config{Importer: u}
	tpkg, err := conf.Check(path, u.fset, []*ast.File{f}, nil)
	require.NoError(u.t, err)

	u.checked[path] = tpkg

	var files []*ast.File

	for i, c := range companion {
		name := fmt.Sprintf("%s/builders/companion%d.go", path, i)
		cf, err := parser.ParseFile(u.fset, name, c, parser.ParseComments)
		require.NoError(u.t, err)

		files = append(files, cf)
	}

	comp, err := analyze.ScanCompanion(u.fset, files)
	require.NoError(u.t, err)

	pkg, err := analyze.Inspect(analyze.Source{
		Fset:      u.fset,
		Files:     []*ast.File{f},
		Types:     tpkg,
		GoVersion: goVersion,
	}, comp)
	if err != nil {
		return nil, err
	}

	u.batch.Packages = append(u.batch.Packages, pkg)

	return pkg, nil
}

// Batch returns every package added so far.
func (u *Universe) Batch() *analyze.Batch {
	return u.batch
}

// Target returns the named target of the batch, failing the test if absent.
func (u *Universe) Target(name string) *analyze.Target {
	u.t.Helper()

	for _, t := range u.batch.Targets() {
		if t.Name == name {
			return t
		}
	}

	require.Failf(u.t, "target not found", "no target named %s", name)

	return nil
}
