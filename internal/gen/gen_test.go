package gen

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"builder-generator/internal/analyze/analyzetest"
	"builder-generator/internal/plan"
)

const storeSrc = `package store

//builder:generate
type Order struct {
	id       string
	lines    Lines
	tags     []string
	customer *Customer
	note     *string
}

func NewOrder(id string, lines Lines, tags []string, customer *Customer, note *string) *Order {
	return &Order{id, lines, tags, customer, note}
}

func (o *Order) ID() string          { return o.id }
func (o *Order) Lines() Lines        { return o.lines }
func (o *Order) Tags() []string      { return o.tags }
func (o *Order) Customer() *Customer { return o.customer }
func (o *Order) Note() *string       { return o.note }

//builder:generate
type Line struct{ sku string }

func NewLine(sku string) Line { return Line{sku} }

func (l Line) SKU() string { return l.sku }

type Lines []Line

type Customer struct{}

//builder:generate
type Label struct {
	b    string
	tags []string
}

func NewLabel(b string, tags ...string) Label { return Label{b, tags} }

func (l Label) B() string       { return l.b }
func (l Label) Tags() []string { return l.tags }
`

const storeCompanion = `package builders

type orderBuilderAux struct {
	audit []string ` + "`builder:\"field\"`" + `
}

func (b *OrderBuilder) GetDefaultCustomerValue() *store.Customer { return &store.Customer{} }

func (b *OrderBuilder) InitializeAudit(source *store.Order, audit *[]string) {}
`

// generate plans and renders the named target of u.
func generate(t *testing.T, u *analyzetest.Universe, name string) string {
	t.Helper()

	env := plan.Env{
		Names: plan.NewNameIndex(u.Batch().Targets()),
		Types: u.Batch().TypeIndex(),
	}

	bp, err := plan.Plan(u.Target(name), env)
	require.NoError(t, err, spew.Sdump(u.Target(name).Properties))

	g := NewGenerator(GeneratorConfig{})

	file, err := g.Generate(bp)
	require.NoError(t, err)

	assert.Equal(t, FileName(name), file.Filename)

	_, err = parser.ParseFile(token.NewFileSet(), file.Filename, file.Content, parser.ParseComments)
	require.NoError(t, err, string(file.Content))

	return string(file.Content)
}

func TestGenerate_Order(t *testing.T) {
	u := analyzetest.New(t)
	u.Add("example.com/store", storeSrc, storeCompanion)

	out := generate(t, u, "Order")

	for _, want := range []string{
		"// " + Header,
		"package builders",
		`"builder-generator/reflist"`,
		`"example.com/store"`,
		"type OrderBuilder struct {",
		"lines    *reflist.RefList[LineBuilder]",
		"orderBuilderAux",
		"func (b *OrderBuilder) ID() string {\n\treturn b.id\n}",
		"func (b *OrderBuilder) SetID(value string) {\n\tb.id = value\n}",
		"if b.customer == nil {\n\t\tb.customer = b.GetDefaultCustomerValue()\n\t}",
		"if b.note == nil {\n\t\tb.note = new(string)\n\t}",
		"if b.tags == nil {\n\t\tb.tags = []string{}\n\t}",
		"if b.lines == nil {\n\t\tb.lines = reflist.Empty[LineBuilder]()\n\t}",
		"func NewOrderBuilder(source *store.Order) OrderBuilder {",
		"b.lines = reflist.CreateOrNil(source.Lines(), NewLineBuilder)",
		"b.tags = slices.Clone(source.Tags())",
		"b.customer = source.Customer()",
		"b.InitializeAudit(source, &b.audit)",
		"func (b *OrderBuilder) Build() *store.Order {",
		"lines := store.Lines(reflist.BuildOrEmpty(b.lines, (*LineBuilder).Build))",
		"tags := reflist.CloneOrEmpty(b.tags)",
		"customer := b.customer\n\tif customer == nil {\n\t\tcustomer = b.GetDefaultCustomerValue()\n\t}",
		"return store.NewOrder(id, lines, tags, customer, note)",
		"func UpdateOrder(source *store.Order, update func(*OrderBuilder)) *store.Order {",
		"builder := NewOrderBuilder(source)\n\tupdate(&builder)\n\treturn builder.Build()",
	} {
		assert.Contains(t, out, want)
	}
}

func TestGenerate_ValueSourceWithoutLists(t *testing.T) {
	u := analyzetest.New(t)
	u.Add("example.com/store", storeSrc, storeCompanion)

	out := generate(t, u, "Line")

	assert.Contains(t, out, "func NewLineBuilder(source store.Line) LineBuilder {")
	assert.Contains(t, out, "func (b *LineBuilder) Build() store.Line {")
	assert.Contains(t, out, "func (b *LineBuilder) SKU() string {\n\treturn b.sku\n}")
	assert.NotContains(t, out, "reflist")
	assert.NotContains(t, out, "slices")
}

func TestGenerate_VariadicAndReservedNames(t *testing.T) {
	u := analyzetest.New(t)
	u.Add("example.com/store", storeSrc, storeCompanion)

	out := generate(t, u, "Label")

	assert.Contains(t, out, "b_ := b.b")
	assert.Contains(t, out, "return store.NewLabel(b_, tags...)")
}

func TestGenerate_CrossPackageAdapters(t *testing.T) {
	u := analyzetest.New(t)
	u.Add("example.com/store", storeSrc, storeCompanion)
	u.Add("example.com/warehouse", `package warehouse

import "example.com/store"

//builder:generate
type Shipment struct{ lines []*store.Line }

func NewShipment(lines []*store.Line) Shipment { return Shipment{lines} }

func (s Shipment) Lines() []*store.Line { return s.lines }
`)

	out := generate(t, u, "Shipment")

	assert.Contains(t, out, `storebuilders "example.com/store/builders"`)
	assert.Contains(t, out, "lines *reflist.RefList[storebuilders.LineBuilder]")
	assert.Contains(t, out, "return storebuilders.NewLineBuilder(*elem)")
	assert.Contains(t, out, "func(elem *storebuilders.LineBuilder) *store.Line {")
	assert.Contains(t, out, "built := elem.Build()\n\t\treturn &built")
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "order_builder.go", FileName("Order"))
	assert.Equal(t, "order_line_builder.go", FileName("OrderLine"))
}

func TestScaffold(t *testing.T) {
	u := analyzetest.New(t)
	pkg := u.Add("example.com/p", `package p

import "time"

//builder:generate
type T struct {
	at *time.Time
	w  *Weight
}

func NewT(at *time.Time, weight *Weight) T { return T{at, weight} }

func (t T) At() *time.Time  { return t.at }
func (t T) Weight() *Weight { return t.w }

type Weight struct{}
`)

	env := plan.Env{Names: plan.NewNameIndex(u.Batch().Targets())}
	missing := plan.MissingDefaults(u.Target("T"), env)
	require.Len(t, missing, 2)

	file, err := Scaffold(pkg, missing)
	require.NoError(t, err)
	require.NotNil(t, file)

	out := string(file.Content)
	assert.Equal(t, ScaffoldFilename, file.Filename)
	assert.NotContains(t, out, "Code generated")
	assert.Contains(t, out, `"example.com/p"`)
	assert.Contains(t, out, `"time"`)
	assert.Contains(t, out, "func (b *TBuilder) GetDefaultAtValue() *time.Time {")
	assert.Contains(t, out, "func (b *TBuilder) GetDefaultWeightValue() *p.Weight {")
	assert.Contains(t, out, `panic("TBuilder.GetDefaultWeightValue not implemented")`)

	none, err := Scaffold(pkg, nil)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestScaffold_KeepsExistingStubFiles(t *testing.T) {
	u := analyzetest.New(t)
	pkg := u.Add("example.com/p", `package p

//builder:generate
type T struct{ w *Weight }

func NewT(weight *Weight) T { return T{weight} }

func (t T) Weight() *Weight { return t.w }

type Weight struct{}
`)

	onDisk := *pkg
	onDisk.Dir = t.TempDir()
	builders := onDisk.BuilderDir()
	require.NoError(t, os.MkdirAll(builders, dirPerm))

	env := plan.Env{Names: plan.NewNameIndex(u.Batch().Targets())}
	missing := plan.MissingDefaults(u.Target("T"), env)

	file, err := Scaffold(&onDisk, missing)
	require.NoError(t, err)
	assert.Equal(t, ScaffoldFilename, file.Filename)

	edited := []byte("package builders\n\n// hand-written hooks\n")
	require.NoError(t, os.WriteFile(file.Path(), edited, filePerm))

	next, err := Scaffold(&onDisk, missing)
	require.NoError(t, err)
	assert.Equal(t, "builder_defaults_2.go", next.Filename)
	require.NoError(t, WriteFiles([]GeneratedFile{*next}, ""))

	got, err := os.ReadFile(filepath.Join(builders, ScaffoldFilename))
	require.NoError(t, err)
	assert.Equal(t, edited, got)
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	builders := filepath.Join(dir, "builders")

	require.NoError(t, os.MkdirAll(builders, dirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(builders, "order_builder.go.error"), []byte("broken"), filePerm))

	files := []GeneratedFile{{Filename: "order_builder.go", Dir: builders, Content: []byte("package builders\n")}}
	require.NoError(t, WriteFiles(files, ""))

	got, err := os.ReadFile(filepath.Join(builders, "order_builder.go"))
	require.NoError(t, err)
	assert.Equal(t, "package builders\n", string(got))
	assert.NoFileExists(t, filepath.Join(builders, "order_builder.go.error"))

	other := filepath.Join(dir, "out")
	require.NoError(t, WriteFiles(files, other))
	assert.FileExists(t, filepath.Join(other, "order_builder.go"))
}
