package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"builder-generator/internal/gen"
)

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold [packages...]",
	Short: "Write stubs for missing default-value methods",
	Long: `For every package whose builders need GetDefault<Name>Value methods that
do not exist yet, write builders/` + gen.ScaffoldFilename + ` with panicking stubs.
The file is yours to edit afterwards and is never overwritten: when it already
exists, stubs still missing go to builder_defaults_2.go, and so on.`,
	RunE: runScaffold,
}

func runScaffold(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	batch, err := load(withLogger(cmd, cfg), cfg)
	if err != nil {
		return err
	}

	files, err := newRegistry(cfg, false).Scaffold(batch)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if len(files) == 0 {
		fmt.Fprintln(out, "nothing to scaffold")
		return nil
	}

	for _, f := range files {
		if err := gen.WriteFiles([]gen.GeneratedFile{f}, ""); err != nil {
			return err
		}

		printWritten(out, "wrote", f.Path())
	}

	return nil
}
