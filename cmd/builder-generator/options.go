package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"builder-generator/internal/config"
	"builder-generator/internal/ctxlog"
)

// loadConfig reads the config file and applies command-line overrides.
// Positional args replace the configured package patterns.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	flags := cmd.Flags()

	dir, _ := flags.GetString("dir")
	path, _ := flags.GetString("config")

	if path == "" {
		search := dir
		if search == "" {
			search = "."
		}

		path = config.Find(search)
	}

	cfg := config.Default()

	if path != "" {
		c, err := config.LoadFile(path)
		if err != nil {
			return nil, err
		}

		cfg = c
	}

	if flags.Changed("dir") {
		cfg.Dir = dir
	}

	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}

	for flag, dst := range map[string]*string{
		"min-go-version": &cfg.MinGoVersion,
		"log-level":      &cfg.LogLevel,
		"log-format":     &cfg.LogFormat,
		"color":          &cfg.Color,
	} {
		if flags.Changed(flag) {
			*dst, _ = flags.GetString(flag)
		}
	}

	if flags.Lookup("dry-run") != nil && flags.Changed("dry-run") {
		cfg.DryRun, _ = flags.GetBool("dry-run")
	}

	if len(args) > 0 {
		cfg.Packages = args
	}

	if res := config.Validate(cfg); !res.IsValid() {
		return nil, fmt.Errorf("invalid configuration: %w", res.Error())
	}

	applyColor(cfg.Color)

	return cfg, nil
}

// withLogger returns cmd's context carrying a logger configured by cfg.
func withLogger(cmd *cobra.Command, cfg *config.Config) context.Context {
	logger := ctxlog.New(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	return ctxlog.WithLogger(cmd.Context(), logger)
}

// applyColor overrides the terminal detection of fatih/color unless mode is
// auto.
func applyColor(mode string) {
	switch mode {
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		color.NoColor = true
	}
}
