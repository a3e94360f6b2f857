package main

import (
	"bytes"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"builder-generator/internal/config"
	"builder-generator/internal/diagnostic"
)

func TestRelevant(t *testing.T) {
	tests := []struct {
		name string
		op   fsnotify.Op
		want bool
	}{
		{"store/order.go", fsnotify.Write, true},
		{"store/builders/order_defaults.go", fsnotify.Create, true},
		{"store/builders/order_builder.go", fsnotify.Write, false},
		{"store/order_test.go", fsnotify.Write, false},
		{"store/README.md", fsnotify.Write, false},
		{"store/order.go", fsnotify.Chmod, false},
	}

	for _, tt := range tests {
		ev := fsnotify.Event{Name: tt.name, Op: tt.op}
		assert.Equal(t, tt.want, relevant(ev), "%s %s", tt.op, tt.name)
	}
}

func TestPrintDiagnostics(t *testing.T) {
	color.NoColor = true

	var ds diagnostic.Diagnostics

	d := diagnostic.New(diagnostic.KindMissingNestedBuilder,
		token.Position{Filename: "store/order.go", Line: 12, Column: 2},
		"store.Item", "ItemBuilder", "Items")
	d.Target = "example.com/store.Order"
	d.Property = "Items"
	d.Suggestions = []string{"ItemsBuilder"}
	ds.Add(d)

	var buf bytes.Buffer
	printDiagnostics(&buf, ds)

	out := buf.String()
	assert.Contains(t, out, "store/order.go:12:2: error [NUB0002] Items: ")
	assert.Contains(t, out, "did you mean ItemsBuilder")
}

// newTestCommand returns a command carrying the same flags as gen.
func newTestCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	flags := cmd.Flags()
	flags.String("config", "", "")
	flags.String("dir", "", "")
	flags.Int("workers", 0, "")
	flags.String("min-go-version", "", "")
	flags.String("log-level", "", "")
	flags.String("log-format", "", "")
	flags.String("color", "", "")
	flags.Bool("dry-run", false, "")

	return cmd
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "builder-generator.yaml"),
		[]byte("workers: 3\nlog_level: warn\npackages: [./store]\n"), 0o644))

	cmd := newTestCommand()
	require.NoError(t, cmd.Flags().Parse([]string{"--dir", dir, "--log-level", "debug", "--dry-run", "--color", "never"}))

	cfg, err := loadConfig(cmd, nil)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.Dir)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, "debug", cfg.LogLevel, "flag wins over file")
	assert.True(t, cfg.DryRun)
	assert.Equal(t, []string{"./store"}, cfg.Packages)
	assert.True(t, color.NoColor)

	cfg, err = loadConfig(cmd, []string{"./warehouse/..."})
	require.NoError(t, err)
	assert.Equal(t, []string{"./warehouse/..."}, cfg.Packages)

	bad := newTestCommand()
	require.NoError(t, bad.Flags().Parse([]string{"--dir", dir, "--workers", "-2"}))

	_, err = loadConfig(bad, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workers must not be negative")
}

func TestRunInit(t *testing.T) {
	color.NoColor = true

	t.Cleanup(func() { initFormat = string(config.FormatYAML) })

	for _, format := range []string{"yaml", "toml"} {
		t.Run(format, func(t *testing.T) {
			dir := t.TempDir()
			initFormat = format

			var buf bytes.Buffer

			cmd := &cobra.Command{}
			cmd.SetOut(&buf)

			require.NoError(t, runInit(cmd, []string{dir}))

			path := filepath.Join(dir, "builder-generator."+format)
			assert.Contains(t, buf.String(), path)

			c, err := config.LoadFile(path)
			require.NoError(t, err)
			assert.Equal(t, config.Default(), c)

			assert.ErrorContains(t, runInit(cmd, []string{dir}), "already initialized")
		})
	}

	initFormat = "ini"
	assert.ErrorContains(t, runInit(&cobra.Command{}, []string{t.TempDir()}), `unknown config format "ini"`)
}

func TestGeneratorConfig(t *testing.T) {
	assert.True(t, generatorConfig(true).ErrorSidecars)
	assert.False(t, generatorConfig(false).ErrorSidecars, "check and dry runs write nothing")
	assert.Equal(t, generatorConfig(false).RuntimePath, generatorConfig(true).RuntimePath)
}
