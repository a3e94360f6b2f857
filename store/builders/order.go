package builders

import (
	"slices"
	"strings"

	"builder-generator/store"
)

type orderBuilderAux struct {
	// discountCents is applied by callers when pricing a rebuilt order. It
	// never reaches store.Order.
	discountCents int64 `builder:"field"`
}

// DiscountCents returns the builder-only discount.
func (b *OrderBuilder) DiscountCents() int64 {
	return b.discountCents
}

// SetDiscountCents sets the builder-only discount.
func (b *OrderBuilder) SetDiscountCents(v int64) {
	b.discountCents = v
}

func (b *OrderBuilder) InitializeDiscountCents(source *store.Order, discountCents *int64) {
	*discountCents = 0
}

func (b *OrderBuilder) GetDefaultShippingValue() *store.Address {
	return &store.Address{}
}

// BuildNotes drops blank notes.
func (b *OrderBuilder) BuildNotes(notes []string) []string {
	return slices.DeleteFunc(slices.Clone(notes), func(n string) bool {
		return strings.TrimSpace(n) == ""
	})
}
