package builders_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"builder-generator/store"
	"builder-generator/warehouse"
	"builder-generator/warehouse/builders"
)

func sampleShipment() warehouse.Shipment {
	mug := store.NewOrderItem(1, "mug", 2, 850)

	return warehouse.NewShipment("S-1",
		[]*store.OrderItem{&mug},
		[]warehouse.Parcel{*warehouse.NewParcel("P-1", []int32{300, 450})},
		[]warehouse.Dock{{Name: "north", Door: 3}},
		"ups",
	)
}

func TestUpdateShipment_AcrossPackages(t *testing.T) {
	src := sampleShipment()

	out := builders.UpdateShipment(src, func(b *builders.ShipmentBuilder) {
		b.Items().At(0).SetQuantity(3)
		b.Parcels().At(0).SetCode("P-9")
		b.Parcels().Add(builders.NewParcelBuilder(warehouse.NewParcel("P-2", nil)))
		b.Docks().At(0).SetDoor(4)
		b.SetVia("dhl")
	})

	require.Len(t, out.Items(), 1)
	assert.Equal(t, 3, out.Items()[0].Quantity())
	assert.Equal(t, 2, src.Items()[0].Quantity(), "source items are copied, not shared")

	require.Len(t, out.Parcels(), 2)
	assert.Equal(t, "P-9", out.Parcels()[0].Code())
	assert.Equal(t, []int32{300, 450}, out.Parcels()[0].Weights())
	assert.Equal(t, []int32{}, out.Parcels()[1].Weights())

	assert.Equal(t, []warehouse.Dock{{Name: "north", Door: 4}}, out.Docks())
	assert.Equal(t, "dhl", out.Carrier())
	assert.Equal(t, "ups", src.Carrier())
}

func TestShipmentBuilder_EmptyLists(t *testing.T) {
	var b builders.ShipmentBuilder
	b.SetID("S-0")

	out := b.Build()

	assert.Equal(t, "S-0", out.ID())
	assert.NotNil(t, out.Items())
	assert.Empty(t, out.Items())
	assert.NotNil(t, out.Parcels())
	assert.NotNil(t, out.Docks())
}

func TestShipmentBuilder_RemoveAll(t *testing.T) {
	src := sampleShipment()
	b := builders.NewShipmentBuilder(src)

	b.Parcels().Add(builders.NewParcelBuilder(warehouse.NewParcel("P-empty", nil)))
	removed := b.Parcels().RemoveAll(func(p *builders.ParcelBuilder) bool {
		return len(p.Weights()) == 0
	})

	assert.Equal(t, 1, removed)

	out := b.Build()
	require.Len(t, out.Parcels(), 1)
	assert.Equal(t, "P-1", out.Parcels()[0].Code())
}
