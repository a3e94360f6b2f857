package registry

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"builder-generator/internal/analyze"
	"builder-generator/internal/ctxlog"
	"builder-generator/internal/diagnostic"
	"builder-generator/internal/gen"
	"builder-generator/internal/plan"
)

// Config controls a run.
type Config struct {
	// Workers bounds phase-2 parallelism. Zero means GOMAXPROCS.
	Workers int
	// MinGoVersion overrides plan.DefaultMinGoVersion.
	MinGoVersion string
	// Generator configures rendering.
	Generator gen.GeneratorConfig
}

// Result is the outcome of one run, in target discovery order.
type Result struct {
	Files       []gen.GeneratedFile
	Diagnostics diagnostic.Diagnostics
}

// Registry runs batches.
type Registry struct {
	config    Config
	generator *gen.Generator
}

// New creates a Registry.
func New(config Config) *Registry {
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}

	return &Registry{
		config:    config,
		generator: gen.NewGenerator(config.Generator),
	}
}

// Env builds the phase-1 environment of batch.
func (r *Registry) Env(batch *analyze.Batch) plan.Env {
	return plan.Env{
		Names:        plan.NewNameIndex(batch.Targets()),
		Types:        batch.TypeIndex(),
		MinGoVersion: r.config.MinGoVersion,
	}
}

type outcome struct {
	file     *gen.GeneratedFile
	diag     *diagnostic.Diagnostic
	warnings diagnostic.Diagnostics
}

// Run plans and renders every target of batch. The only error it returns is
// the context's; per-target failures are diagnostics.
func (r *Registry) Run(ctx context.Context, batch *analyze.Batch) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	targets := batch.Targets()

	// Phase 1. The index is complete before any unit starts.
	env := r.Env(batch)
	logger.Debug("builders named", "count", env.Names.Len())

	// Phase 2. Each unit writes only its own slot.
	outcomes := make([]outcome, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(r.config.Workers, max(len(targets), 1)))

	for i, t := range targets {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			start := time.Now()
			outcomes[i] = r.unit(t, env)

			if d := outcomes[i].diag; d != nil {
				logger.Debug("target failed", "target", t.ID(), "code", d.Kind.ID(), "message", d.Message)
			} else {
				logger.Debug("target generated", "target", t.ID(), "file", outcomes[i].file.Filename,
					"duration", time.Since(start))
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{}

	for _, o := range outcomes {
		res.Diagnostics.Merge(o.warnings)

		if o.diag != nil {
			res.Diagnostics.Add(*o.diag)
			continue
		}

		res.Files = append(res.Files, *o.file)
	}

	logger.Info("run finished",
		"targets", len(targets),
		"files", len(res.Files),
		"errors", len(res.Diagnostics.Errors),
		"warnings", len(res.Diagnostics.Warnings))

	return res, nil
}

// unit plans and renders one target. It never panics.
func (r *Registry) unit(t *analyze.Target, env plan.Env) (o outcome) {
	defer func() {
		if v := recover(); v != nil {
			d := unexpected(t, fmt.Sprintf("%T", v), fmt.Sprint(v), string(debug.Stack()))
			o = outcome{diag: &d}
		}
	}()

	bp, err := plan.Plan(t, env)
	if err != nil {
		d := failure(t, err)
		return outcome{diag: &d}
	}

	file, err := r.generator.Generate(bp)
	if err != nil {
		d := failure(t, err)
		return outcome{diag: &d}
	}

	return outcome{file: file, warnings: bp.Diagnostics}
}

// failure turns a planning or rendering error into the target's diagnostic.
func failure(t *analyze.Target, err error) diagnostic.Diagnostic {
	var rErr *plan.ResolutionError
	if errors.As(err, &rErr) {
		return rErr.Diagnostic(t.ID())
	}

	chain := errorChain(err)

	return unexpected(t, chain[len(chain)-1], err.Error(), strings.Join(chain, " > "))
}

// errorChain returns the dynamic types of err and the errors it wraps,
// outermost first. It stands in for a stack trace of returned errors.
func errorChain(err error) []string {
	var chain []string
	for ; err != nil; err = errors.Unwrap(err) {
		chain = append(chain, fmt.Sprintf("%T", err))
	}

	return chain
}

func unexpected(t *analyze.Target, typeName, message, trace string) diagnostic.Diagnostic {
	d := diagnostic.New(diagnostic.KindUnexpectedFailure, t.Pos, typeName, message, trace)
	d.Target = t.ID()

	return d
}

// Scaffold returns one companion stub file per package whose builders lack
// default-provider hooks.
func (r *Registry) Scaffold(batch *analyze.Batch) ([]gen.GeneratedFile, error) {
	env := r.Env(batch)

	var files []gen.GeneratedFile

	for _, pkg := range batch.Packages {
		var missing []plan.MissingDefault
		for _, t := range pkg.Targets {
			missing = append(missing, plan.MissingDefaults(t, env)...)
		}

		file, err := gen.Scaffold(pkg, missing)
		if err != nil {
			return nil, fmt.Errorf("scaffolding %s: %w", pkg.Path, err)
		}

		if file != nil {
			files = append(files, *file)
		}
	}

	return files, nil
}
