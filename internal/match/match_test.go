package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"a", "b", 1},
		{"ab", "abc", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"Hello", "hello", 1},
		{"orderline", "orderlines", 1},
		{"héllo", "hello", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.want, Levenshtein(tt.b, tt.a), "symmetric")
		})
	}
}

func TestTokenizeIdent(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"OrderID", []string{"order", "id"}},
		{"XMLParser", []string{"xml", "parser"}},
		{"line_item", []string{"line", "item"}},
		{"getHTTPResponse", []string{"get", "http", "response"}},
		{"store/builders.LineBuilder", []string{"store", "builders", "line", "builder"}},
		{"", nil},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TokenizeIdent(tt.in), tt.in)
	}
}

func TestNormalizeIdent(t *testing.T) {
	assert.Equal(t, "orderline", NormalizeIdent("OrderLine"))
	assert.Equal(t, "orderline", NormalizeIdent("order_line"))
	assert.Equal(t, "orderline", NormalizeIdent("orderLine"))
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("OrderLine", "order_line"), 1e-9)
	assert.InDelta(t, 1.0, Similarity("", ""), 1e-9)
	assert.Less(t, Similarity("Order", "Warehouse"), MinSimilarity)
}

func TestSuggest(t *testing.T) {
	candidates := []string{
		"CustomerBuilder",
		"OrderBuilder",
		"OrderLineBuilder",
		"OrderLinesBuilder",
		"ShipmentBuilder",
	}

	got := Suggest("OrderLneBuilder", candidates, 3)

	assert.Equal(t, []string{"OrderLineBuilder", "OrderLinesBuilder", "OrderBuilder"}, got)
}

func TestSuggest_Limits(t *testing.T) {
	assert.Nil(t, Suggest("A", []string{"A1"}, 0))
	assert.Empty(t, Suggest("TagBuilder", []string{"WarehouseInventoryBuilder"}, 3))
	assert.Empty(t, Suggest("TagBuilder", []string{"TagBuilder"}, 3), "exact name is not a suggestion")
	assert.Equal(t, []string{"TagsBuilder"}, Suggest("TagBuilder", []string{"TagsBuilder", "TagsBuilder"}, 3))
}
