package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"builder-generator/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a default configuration file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInit,
}

var initFormat string

func init() {
	initCmd.Flags().StringVar(&initFormat, "format", string(config.FormatYAML), "config file format (yaml|toml)")
}

func runInit(cmd *cobra.Command, args []string) error {
	format, err := config.ParseFormat(initFormat)
	if err != nil {
		return err
	}

	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	if existing := config.Find(dir); existing != "" {
		return fmt.Errorf("already initialized: %s exists", existing)
	}

	path := filepath.Join(dir, config.FileName(format))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %q: %w", dir, err)
	}

	if err := config.WriteFile(config.Default(), path); err != nil {
		return err
	}

	printWritten(cmd.OutOrStdout(), "wrote", path)

	return nil
}
