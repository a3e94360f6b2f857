// Package warehouse holds shipment values whose builders reuse the builders
// of package store.
package warehouse

import "builder-generator/store"

//go:generate go run builder-generator/cmd/builder-generator gen .

// Dock is a loading dock. Its builder is written by hand in
// warehouse/builders.
type Dock struct {
	Name string
	Door int
}

// Parcel is one physical box of a shipment.
//
//builder:generate
type Parcel struct {
	code    string
	weights []int32
}

func NewParcel(code string, weights []int32) *Parcel {
	return &Parcel{code: code, weights: weights}
}

func (p *Parcel) Code() string { return p.code }

// Weights are the per-item weights in grams.
func (p *Parcel) Weights() []int32 { return p.weights }

// Shipment groups order items into parcels leaving from docks.
//
//builder:generate
type Shipment struct {
	id      string
	items   []*store.OrderItem
	parcels []Parcel
	docks   []Dock
	carrier string
}

func NewShipment(id string, items []*store.OrderItem, parcels []Parcel, docks []Dock, carrier string) Shipment {
	return Shipment{id: id, items: items, parcels: parcels, docks: docks, carrier: carrier}
}

func (s Shipment) ID() string { return s.id }

func (s Shipment) Items() []*store.OrderItem { return s.items }

func (s Shipment) Parcels() []Parcel { return s.parcels }

func (s Shipment) Docks() []Dock { return s.docks }

//builder:name Via
func (s Shipment) Carrier() string { return s.carrier }
