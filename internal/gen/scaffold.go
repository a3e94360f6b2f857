package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/types"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"builder-generator/internal/analyze"
	"builder-generator/internal/plan"
)

// ScaffoldFilename is the companion file written by Scaffold. Later runs
// that find it present write builder_defaults_2.go and so on.
const ScaffoldFilename = "builder_defaults.go"

type scaffoldStub struct {
	Builder string
	Method  string
	Result  string
}

type scaffoldData struct {
	Imports []string
	Stubs   []scaffoldStub
}

var scaffoldTemplate = template.Must(template.New("scaffold").Parse(`package builders
{{if .Imports}}
import (
{{range .Imports}}	"{{.}}"
{{end}})
{{end}}
{{range .Stubs}}
func (b *{{.Builder}}) {{.Method}}() {{.Result}} {
	panic("{{.Builder}}.{{.Method}} not implemented")
}
{{end}}`))

// Scaffold renders a companion file for pkg's builders package with a
// panicking stub for every missing default-provider hook. It returns nil when
// nothing is missing.
//
// The file is hand-written code from then on: it carries no generated header,
// so the companion scanner picks the hooks up on the next run.
func Scaffold(pkg *analyze.Package, missing []plan.MissingDefault) (*GeneratedFile, error) {
	if len(missing) == 0 {
		return nil, nil
	}

	builderPath := pkg.BuilderPath()
	imported := map[string]string{}

	qualifier := func(p *types.Package) string {
		if p.Path() == builderPath {
			return ""
		}

		imported[p.Path()] = p.Name()

		return p.Name()
	}

	data := scaffoldData{}
	for _, m := range missing {
		data.Stubs = append(data.Stubs, scaffoldStub{
			Builder: m.Builder,
			Method:  m.Method,
			Result:  types.TypeString(m.Type, qualifier),
		})
	}

	data.Imports = sortedKeys(imported)

	var buf bytes.Buffer
	if err := scaffoldTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting code: %w", err)
	}

	return &GeneratedFile{
		Filename: scaffoldName(pkg.BuilderDir()),
		Dir:      pkg.BuilderDir(),
		Target:   builderPath,
		Content:  formatted,
	}, nil
}

// scaffoldName returns the first stub file name not yet present in dir.
// Existing stub files hold hand-written hooks and are never overwritten.
func scaffoldName(dir string) string {
	name := ScaffoldFilename
	if dir == "" {
		return name
	}

	base := strings.TrimSuffix(ScaffoldFilename, ".go")

	for i := 2; ; i++ {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			return name
		}

		name = fmt.Sprintf("%s_%d.go", base, i)
	}
}
