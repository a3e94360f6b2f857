package analyze

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"builder-generator/internal/common"
)

// AuxTagKey and AuxTagValue mark a builder-only field of an aux struct.
const (
	AuxTagKey   = "builder"
	AuxTagValue = "field"
)

// Companion holds the hand-written declarations of a builders package. They
// are collected from syntax alone, since the package usually does not type
// check before its generated files exist. Generated files are skipped.
type Companion struct {
	// Methods maps a receiver type name to the set of its method names.
	Methods map[string]map[string]struct{}
	// Aux maps an aux struct name to its builder-only fields.
	Aux map[string][]AuxField
	// Declared holds every type name declared in the package.
	Declared map[string]struct{}
	// Constructors maps a package-level New* function with parameters to
	// whether its first parameter is a pointer.
	Constructors map[string]bool
	// Files lists the scanned file names.
	Files []string
}

// AuxField is a builder-only field declared on an aux struct.
type AuxField struct {
	Name string
	Pos  token.Position
}

var emptyCompanion = newCompanion()

func newCompanion() *Companion {
	return &Companion{
		Methods:      map[string]map[string]struct{}{},
		Aux:          map[string][]AuxField{},
		Declared:     map[string]struct{}{},
		Constructors: map[string]bool{},
	}
}

// AuxStructName returns the name of the aux struct embedded into builderName.
func AuxStructName(builderName string) string {
	return common.LowerCamel(builderName) + "Aux"
}

// HasMethod reports whether recv declares method name.
func (c *Companion) HasMethod(recv, name string) bool {
	_, ok := c.Methods[recv][name]
	return ok
}

// HasType reports whether a type with the given name is declared.
func (c *Companion) HasType(name string) bool {
	_, ok := c.Declared[name]
	return ok
}

// HasAux reports whether builderName has an aux struct to embed.
func (c *Companion) HasAux(builderName string) bool {
	return c.HasType(AuxStructName(builderName))
}

// AuxFields returns the builder-only fields of builderName's aux struct.
func (c *Companion) AuxFields(builderName string) []AuxField {
	return c.Aux[AuxStructName(builderName)]
}

// LoadCompanion parses the non-test Go files of dir. A missing directory
// yields an empty companion.
func LoadCompanion(fset *token.FileSet, dir string) (*Companion, error) {
	files, err := parseDir(fset, dir, parser.ParseComments)
	if err != nil {
		return nil, err
	}

	return ScanCompanion(fset, files)
}

// LoadBuilders parses every non-test Go file of dir, generated files
// included. It describes a builders package whose builders already exist.
func LoadBuilders(fset *token.FileSet, dir string) (*Companion, error) {
	files, err := parseDir(fset, dir, 0)
	if err != nil {
		return nil, err
	}

	return scanFiles(fset, files, true)
}

func parseDir(fset *token.FileSet, dir string, mode parser.Mode) ([]*ast.File, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("reading companion directory: %w", err)
	}

	var files []*ast.File

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}

		f, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, mode|parser.SkipObjectResolution)
		if err != nil {
			return nil, fmt.Errorf("parsing companion file: %w", err)
		}

		files = append(files, f)
	}

	return files, nil
}

// ScanCompanion collects hooks, aux fields, and declared types from the
// hand-written files among files.
func ScanCompanion(fset *token.FileSet, files []*ast.File) (*Companion, error) {
	return scanFiles(fset, files, false)
}

func scanFiles(fset *token.FileSet, files []*ast.File, generated bool) (*Companion, error) {
	c := newCompanion()

	for _, f := range files {
		if !generated && ast.IsGenerated(f) {
			continue
		}

		c.Files = append(c.Files, fset.Position(f.Package).Filename)

		for _, decl := range f.Decls {
			switch d := decl.(type) {
			case *ast.FuncDecl:
				c.addMethod(d)
			case *ast.GenDecl:
				if err := c.addTypes(fset, d); err != nil {
					return nil, err
				}
			}
		}
	}

	return c, nil
}

func (c *Companion) addMethod(fn *ast.FuncDecl) {
	if fn.Recv == nil {
		c.addConstructor(fn)
		return
	}

	if len(fn.Recv.List) != 1 {
		return
	}

	recv := receiverName(fn.Recv.List[0].Type)
	if recv == "" {
		return
	}

	if c.Methods[recv] == nil {
		c.Methods[recv] = map[string]struct{}{}
	}

	c.Methods[recv][fn.Name.Name] = struct{}{}
}

func (c *Companion) addConstructor(fn *ast.FuncDecl) {
	params := fn.Type.Params.List
	if !strings.HasPrefix(fn.Name.Name, "New") || len(params) == 0 {
		return
	}

	_, pointer := params[0].Type.(*ast.StarExpr)
	c.Constructors[fn.Name.Name] = pointer
}

// HasConstructor reports whether the package declares New<builder> and
// whether it takes a pointer.
func (c *Companion) HasConstructor(builder string) (pointer, ok bool) {
	pointer, ok = c.Constructors["New"+builder]
	return pointer, ok
}

func (c *Companion) addTypes(fset *token.FileSet, gd *ast.GenDecl) error {
	if gd.Tok != token.TYPE {
		return nil
	}

	for _, spec := range gd.Specs {
		ts, ok := spec.(*ast.TypeSpec)
		if !ok {
			continue
		}

		c.Declared[ts.Name.Name] = struct{}{}

		st, ok := ts.Type.(*ast.StructType)
		if !ok || !strings.HasSuffix(ts.Name.Name, "Aux") {
			continue
		}

		fields, err := auxFields(fset, st)
		if err != nil {
			return err
		}

		c.Aux[ts.Name.Name] = fields
	}

	return nil
}

func auxFields(fset *token.FileSet, st *ast.StructType) ([]AuxField, error) {
	var out []AuxField

	for _, field := range st.Fields.List {
		if field.Tag == nil || len(field.Names) == 0 {
			continue
		}

		raw, err := strconv.Unquote(field.Tag.Value)
		if err != nil {
			return nil, fmt.Errorf("%s: malformed struct tag: %w", fset.Position(field.Tag.Pos()), err)
		}

		if reflect.StructTag(raw).Get(AuxTagKey) != AuxTagValue {
			continue
		}

		for _, n := range field.Names {
			out = append(out, AuxField{Name: n.Name, Pos: fset.Position(n.Pos())})
		}
	}

	return out, nil
}

// receiverName returns the base type name of a receiver expression.
func receiverName(expr ast.Expr) string {
	for {
		switch e := expr.(type) {
		case *ast.StarExpr:
			expr = e.X
		case *ast.ParenExpr:
			expr = e.X
		case *ast.IndexExpr:
			expr = e.X
		case *ast.IndexListExpr:
			expr = e.X
		case *ast.Ident:
			return e.Name
		default:
			return ""
		}
	}
}
