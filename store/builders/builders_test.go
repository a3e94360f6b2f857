package builders_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"builder-generator/store"
	"builder-generator/store/builders"
)

var placed = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func sampleOrder() *store.Order {
	return store.NewOrder(7, 42, store.StatusPending,
		[]store.OrderItem{
			store.NewOrderItem(1, "mug", 2, 850),
			store.NewOrderItem(2, "tea", 1, 1200),
		},
		[]int32{3, 9},
		&store.Address{Street: "1 Main St", City: "Springfield"},
		placed,
		"gift", " ",
	)
}

func TestUpdateOrder_EditsItemsInPlace(t *testing.T) {
	src := sampleOrder()

	out := builders.UpdateOrder(src, func(b *builders.OrderBuilder) {
		b.SetStatus(store.StatusPaid)
		b.Items().At(0).SetQuantity(5)
		b.Items().Add(builders.NewOrderItemBuilder(store.NewOrderItem(3, "spoon", 4, 100)))
		b.Items().RemoveAt(1)
	})

	assert.Equal(t, store.StatusPaid, out.Status())
	require.Len(t, out.Items(), 2)
	assert.Equal(t, 5, out.Items()[0].Quantity())
	assert.Equal(t, "spoon", out.Items()[1].Name())
	assert.Equal(t, int64(5*850+4*100), out.TotalCents())

	// The source is never touched.
	assert.Equal(t, store.StatusPending, src.Status())
	assert.Equal(t, 2, src.Items()[0].Quantity())
	assert.Len(t, src.Items(), 2)
}

func TestOrderBuilder_RoundTrip(t *testing.T) {
	src := sampleOrder()

	b := builders.NewOrderBuilder(src)
	out := b.Build()

	assert.Equal(t, src.ID(), out.ID())
	assert.Equal(t, src.CustomerID(), out.CustomerID())
	assert.Equal(t, src.PlacedAt(), out.PlacedAt())
	assert.Empty(t, cmp.Diff(src.Lots(), out.Lots()))
	assert.Equal(t, src.Shipping(), out.Shipping())
	assert.Equal(t, []string{"gift"}, out.Notes(), "blank notes are dropped on build")

	for i := range src.Items() {
		assert.Equal(t, src.Items()[i].Name(), out.Items()[i].Name())
		assert.Equal(t, src.Items()[i].Subtotal(), out.Items()[i].Subtotal())
	}
}

func TestOrderBuilder_ListsAreCopied(t *testing.T) {
	src := sampleOrder()
	b := builders.NewOrderBuilder(src)

	b.Lots()[0] = 100
	b.SetNotes(append(b.Notes(), "fragile"))

	assert.Equal(t, int32(3), src.Lots()[0])
	assert.Equal(t, []string{"gift", " "}, src.Notes())

	out := b.Build()
	assert.Equal(t, []int32{100, 9}, out.Lots())
	assert.Equal(t, []string{"gift", "fragile"}, out.Notes())
}

func TestOrderBuilder_Defaults(t *testing.T) {
	src := store.NewOrder(1, 2, store.StatusShipped, nil, nil, nil, placed)

	b := builders.NewOrderBuilder(src)
	out := b.Build()

	assert.NotNil(t, out.Items())
	assert.Empty(t, out.Items())
	assert.NotNil(t, out.Lots())
	assert.Empty(t, out.Lots())
	assert.Equal(t, &store.Address{}, out.Shipping())
	assert.Empty(t, out.Notes())

	// Getters materialize the default once.
	assert.Same(t, b.Shipping(), b.Shipping())
	assert.Equal(t, 0, b.Items().Len())
}

func TestOrderBuilder_AuxField(t *testing.T) {
	b := builders.NewOrderBuilder(sampleOrder())
	assert.Zero(t, b.DiscountCents())

	b.SetDiscountCents(150)
	assert.Equal(t, int64(150), b.DiscountCents())
}

func TestProductBuilder_OverriddenField(t *testing.T) {
	desc := "stoneware"
	src := store.NewProduct(1, "MUG-1", "Mug", &desc, 850, []string{"kitchen"}, placed)

	b := builders.NewProductBuilder(src)
	assert.Equal(t, "2024-05-01T10:00:00Z", b.CreatedAt())

	b.SetCreatedAt("2025-01-02T03:04:05Z")
	b.SetDescription(nil)

	out := b.Build()
	assert.Equal(t, time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC), out.CreatedAt())
	assert.Nil(t, out.Description(), "optional fields keep nil")
	assert.Equal(t, []string{"kitchen"}, out.Tags())

	b.SetCreatedAt("not a time")
	assert.True(t, b.Build().CreatedAt().IsZero())
}

func TestCustomerBuilder(t *testing.T) {
	src := store.NewCustomer(9, "ann@example.com", "Ann", nil, true)

	out := builders.UpdateCustomer(src, func(b *builders.CustomerBuilder) {
		b.SetActive(false)
	})

	assert.False(t, out.IsActive())
	require.NotNil(t, out.Address())
	assert.Empty(t, *out.Address())
	assert.Equal(t, "Ann", out.FullName())
}

func TestZeroBuilder(t *testing.T) {
	var b builders.OrderItemBuilder
	b.SetName("blank")

	assert.Equal(t, store.NewOrderItem(0, "blank", 0, 0), b.Build())
}
