package gen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-openapi/inflect"
	"golang.org/x/tools/imports"

	"builder-generator/internal/plan"
)

// Header is the first line of every generated file. Companion scanning skips
// files carrying it.
const Header = "Code generated by builder-generator. DO NOT EDIT."

// DefaultRuntimePath is the import path of the RefList runtime package.
const DefaultRuntimePath = "builder-generator/reflist"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// RuntimePath is the import path of the reflist package the generated
	// builders use.
	RuntimePath string
	// ErrorSidecars enables writing the unformatted source next to the
	// intended output when formatting fails.
	ErrorSidecars bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		RuntimePath:   DefaultRuntimePath,
		ErrorSidecars: true,
	}
}

// Generator turns builder plans into formatted source files.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.RuntimePath == "" {
		config.RuntimePath = DefaultRuntimePath
	}

	return &Generator{config: config}
}

// GeneratedFile is one generated Go source file.
type GeneratedFile struct {
	// Filename is the base name, e.g. "order_line_builder.go".
	Filename string
	// Dir is the builders package directory the file belongs to.
	Dir string
	// Target is the ID of the type the builder was generated for.
	Target string
	// Content is the formatted Go source code.
	Content []byte
}

// Path returns the file's intended location.
func (f *GeneratedFile) Path() string {
	return filepath.Join(f.Dir, f.Filename)
}

// FileName returns the generated file name of a builder for typeName.
func FileName(typeName string) string {
	return inflect.Underscore(typeName) + "_builder.go"
}

// Generate renders the builder described by bp.
func (g *Generator) Generate(bp *plan.BuilderPlan) (*GeneratedFile, error) {
	file := &GeneratedFile{
		Filename: FileName(bp.Target.Name),
		Dir:      bp.Target.Pkg.BuilderDir(),
		Target:   bp.Target.ID(),
	}

	var buf bytes.Buffer
	if err := newBuilderEmitter(bp, g.config.RuntimePath).emit().Render(&buf); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", bp.Name, err)
	}

	formatted, err := imports.Process(file.Path(), buf.Bytes(), nil)
	if err != nil {
		if g.config.ErrorSidecars {
			sidecar := file.Path() + ".error"
			_ = os.MkdirAll(file.Dir, dirPerm)
			_ = os.WriteFile(sidecar, buf.Bytes(), filePerm)

			return nil, fmt.Errorf("formatting %s: %w (unformatted written to %s)", file.Filename, err, sidecar)
		}

		return nil, fmt.Errorf("formatting %s: %w", file.Filename, err)
	}

	file.Content = formatted

	return file, nil
}
