// Package main provides the CLI entrypoint for builder-generator.
//
// builder-generator reads Go packages, finds types marked with
// //builder:generate, and writes a mutable builder for each of them into the
// package's builders subpackage.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"builder-generator/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "builder-generator",
	Short: "Generate mutable builders for immutable Go types",
	Long: `builder-generator finds types marked with //builder:generate and writes,
next to them, a builder that can be created from a value, edited in place,
and built back into a new value.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(scaffoldCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: builder-generator.yaml|.yml|.toml in --dir)")
	flags.String("dir", "", "directory package patterns are resolved in")
	flags.Int("workers", 0, "parallel targets, 0 means GOMAXPROCS")
	flags.String("min-go-version", "", "lowest module go version accepted")
	flags.String("log-level", "", "log level (debug|info|warn|error)")
	flags.String("log-format", "", "log format (text|json)")
	flags.String("color", "", "colorize output (auto|always|never)")

	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}
