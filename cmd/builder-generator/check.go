package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [packages...]",
	Short: "Verify that every builder can be generated and is up to date",
	Long: `Run the full pipeline without writing anything. Fails when any target
reports an error, or when a builder on disk differs from what gen would write.`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	_, res, err := run(withLogger(cmd, cfg), cfg, false)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printDiagnostics(out, res.Diagnostics)

	stale := 0

	for _, f := range res.Files {
		current, err := os.ReadFile(f.Path())

		switch {
		case errors.Is(err, fs.ErrNotExist):
			fmt.Fprintf(out, "%s %s\n", warningColor.Sprint("missing"), f.Path())
			stale++
		case err != nil:
			return err
		case !bytes.Equal(current, f.Content):
			fmt.Fprintf(out, "%s %s\n", warningColor.Sprint("stale"), f.Path())
			stale++
		}
	}

	if res.Diagnostics.HasErrors() {
		return &errDiagnostics{count: len(res.Diagnostics.Errors)}
	}

	if stale > 0 {
		return fmt.Errorf("%d builders out of date, run gen", stale)
	}

	printWritten(out, "ok", fmt.Sprintf("%d builders up to date", len(res.Files)))

	return nil
}
