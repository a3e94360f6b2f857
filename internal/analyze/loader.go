package analyze

import (
	"context"
	"errors"
	"fmt"
	"go/token"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/tools/go/packages"

	"builder-generator/internal/ctxlog"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports |
	packages.NeedModule

// Loader loads source packages and their companion builders packages.
type Loader struct {
	// Dir is the working directory patterns are resolved against.
	Dir string
	// BuildFlags are passed to the underlying build system.
	BuildFlags []string
}

// NewLoader creates a Loader resolving patterns relative to dir.
func NewLoader(dir string) *Loader {
	return &Loader{Dir: dir}
}

// Load loads the packages matching patterns and analyzes them into a Batch.
// Packages named "builders" are companion packages: they are not loaded as
// sources and may contain type errors. Any error in a source package fails
// the load.
func (l *Loader) Load(ctx context.Context, patterns ...string) (*Batch, error) {
	log := ctxlog.FromContext(ctx)
	fset := token.NewFileSet()

	cfg := &packages.Config{
		Context:    ctx,
		Mode:       LoadMode,
		Dir:        l.Dir,
		Fset:       fset,
		BuildFlags: l.BuildFlags,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	slices.SortFunc(pkgs, func(a, b *packages.Package) int {
		return strings.Compare(a.PkgPath, b.PkgPath)
	})

	var errs []error

	for _, pkg := range pkgs {
		if pkg.Name == BuildersPackage {
			continue
		}

		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	batch := &Batch{Fset: fset}

	for _, pkg := range pkgs {
		if pkg.Name == BuildersPackage {
			log.Debug("skipping companion package", "package", pkg.PkgPath)
			continue
		}

		p, err := l.analyze(fset, pkg)
		if err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}

		log.Debug("analyzed package",
			"package", p.Path,
			"targets", len(p.Targets),
			"companion_files", len(p.Companion.Files))

		batch.Packages = append(batch.Packages, p)
	}

	external, err := l.loadExternal(ctx, fset, batch)
	if err != nil {
		return nil, err
	}

	batch.External = external

	return batch, nil
}

// loadExternal indexes the builders packages of element packages that are
// not part of the batch. Their builders may already be generated, so
// generated files count.
func (l *Loader) loadExternal(ctx context.Context, fset *token.FileSet, batch *Batch) (TypeIndex, error) {
	inBatch := map[string]bool{}
	for _, p := range batch.Packages {
		inBatch[p.Path] = true
	}

	var paths []string

	for _, t := range batch.Targets() {
		for _, prop := range t.Properties {
			pkg := ElementPackage(prop.Type)
			if pkg == nil || inBatch[pkg.Path()] || slices.Contains(paths, pkg.Path()) {
				continue
			}

			paths = append(paths, pkg.Path())
		}
	}

	idx := TypeIndex{}
	if len(paths) == 0 {
		return idx, nil
	}

	cfg := &packages.Config{
		Context:    ctx,
		Mode:       packages.NeedName | packages.NeedFiles,
		Dir:        l.Dir,
		BuildFlags: l.BuildFlags,
	}

	pkgs, err := packages.Load(cfg, paths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load element packages: %w", err)
	}

	for _, pkg := range pkgs {
		if len(pkg.GoFiles) == 0 {
			continue
		}

		builders, err := LoadBuilders(fset, filepath.Join(filepath.Dir(pkg.GoFiles[0]), BuildersPackage))
		if err != nil {
			return nil, err
		}

		idx.AddAll(pkg.PkgPath, builders)

		ctxlog.FromContext(ctx).Debug("indexed external builders",
			"package", pkg.PkgPath,
			"types", len(builders.Declared))
	}

	return idx, nil
}

func (l *Loader) analyze(fset *token.FileSet, pkg *packages.Package) (*Package, error) {
	src := Source{
		Fset:  fset,
		Files: pkg.Syntax,
		Types: pkg.Types,
	}

	if len(pkg.GoFiles) > 0 {
		src.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	if pkg.Module != nil {
		src.GoVersion = pkg.Module.GoVersion
	}

	var companion *Companion

	if src.Dir != "" {
		c, err := LoadCompanion(fset, filepath.Join(src.Dir, BuildersPackage))
		if err != nil {
			return nil, err
		}

		companion = c
	}

	return Inspect(src, companion)
}
