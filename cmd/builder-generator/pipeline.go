package main

import (
	"context"
	"fmt"

	"builder-generator/internal/analyze"
	"builder-generator/internal/config"
	"builder-generator/internal/gen"
	"builder-generator/internal/registry"
)

// run loads the configured packages and runs the registry over them. writes
// is false for commands that must leave the tree untouched.
func run(ctx context.Context, cfg *config.Config, writes bool) (*analyze.Batch, *registry.Result, error) {
	batch, err := load(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	res, err := newRegistry(cfg, writes).Run(ctx, batch)
	if err != nil {
		return nil, nil, err
	}

	return batch, res, nil
}

func load(ctx context.Context, cfg *config.Config) (*analyze.Batch, error) {
	loader := analyze.NewLoader(cfg.Dir)
	loader.BuildFlags = cfg.BuildFlags

	batch, err := loader.Load(ctx, cfg.Packages...)
	if err != nil {
		return nil, err
	}

	return batch, nil
}

func newRegistry(cfg *config.Config, writes bool) *registry.Registry {
	return registry.New(registry.Config{
		Workers:      cfg.Workers,
		MinGoVersion: cfg.MinGoVersion,
		Generator:    generatorConfig(writes),
	})
}

// generatorConfig turns .error sidecars off unless the command writes files.
func generatorConfig(writes bool) gen.GeneratorConfig {
	c := gen.DefaultGeneratorConfig()
	c.ErrorSidecars = writes

	return c
}

// errDiagnostics is returned by commands that reported error diagnostics.
type errDiagnostics struct {
	count int
}

func (e *errDiagnostics) Error() string {
	if e.count == 1 {
		return "1 target failed"
	}

	return fmt.Sprintf("%d targets failed", e.count)
}
