package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"builder-generator/internal/analyze"
	"builder-generator/internal/config"
	"builder-generator/internal/ctxlog"
	"builder-generator/internal/gen"
)

var genCmd = &cobra.Command{
	Use:   "gen [packages...]",
	Short: "Generate builders for the marked types",
	Long: `Load the packages, plan a builder for every //builder:generate type, and
write each builder to <package>/builders/<type>_builder.go. Targets that fail
are reported and skipped; the others are still written.`,
	RunE: runGen,
}

func init() {
	genCmd.Flags().Bool("dry-run", false, "print the files that would be written")
}

func runGen(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	_, err = generate(withLogger(cmd, cfg), cfg, cmd.OutOrStdout())

	return err
}

// generate runs the pipeline once and writes its files. The loaded batch is
// returned even when targets failed.
func generate(ctx context.Context, cfg *config.Config, out io.Writer) (*analyze.Batch, error) {
	batch, res, err := run(ctx, cfg, !cfg.DryRun)
	if err != nil {
		return nil, err
	}

	printDiagnostics(out, res.Diagnostics)

	for _, f := range res.Files {
		if cfg.DryRun {
			printWritten(out, "would write", f.Path())
			continue
		}

		if err := gen.WriteFiles([]gen.GeneratedFile{f}, ""); err != nil {
			return batch, err
		}

		ctxlog.FromContext(ctx).Debug("wrote file", "path", f.Path(), "target", f.Target)
		printWritten(out, "wrote", f.Path())
	}

	if res.Diagnostics.HasErrors() {
		return batch, &errDiagnostics{count: len(res.Diagnostics.Errors)}
	}

	return batch, nil
}
