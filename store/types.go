// Package store holds immutable domain values with generated builders in
// store/builders.
package store

import (
	"time"
)

//go:generate go run builder-generator/cmd/builder-generator gen .

// OrderStatus is a custom type for type-safe status handling.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// Product is an item available for sale. Prices are in cents.
//
//builder:generate
type Product struct {
	id          int64
	sku         string
	name        string
	description *string
	priceCents  int64
	tags        []string
	createdAt   time.Time
}

func NewProduct(id int64, sku, name string, description *string, priceCents int64, tags []string, createdAt time.Time) Product {
	return Product{
		id:          id,
		sku:         sku,
		name:        name,
		description: description,
		priceCents:  priceCents,
		tags:        tags,
		createdAt:   createdAt,
	}
}

func (p Product) ID() int64 { return p.id }

func (p Product) SKU() string { return p.sku }

func (p Product) Name() string { return p.name }

//builder:optional
func (p Product) Description() *string { return p.description }

func (p Product) PriceCents() int64 { return p.priceCents }

func (p Product) Tags() []string { return p.tags }

// CreatedAt is edited as an RFC 3339 string in the builder.
//
//builder:fieldtype string
func (p Product) CreatedAt() time.Time { return p.createdAt }

// Customer places orders.
//
//builder:generate
type Customer struct {
	id       int64
	email    string
	fullName string
	address  *string
	active   bool
}

func NewCustomer(id int64, email, fullName string, address *string, active bool) *Customer {
	return &Customer{id: id, email: email, fullName: fullName, address: address, active: active}
}

func (c *Customer) ID() int64 { return c.id }

func (c *Customer) Email() string { return c.email }

func (c *Customer) FullName() string { return c.fullName }

func (c *Customer) Address() *string { return c.address }

//builder:name Active
func (c *Customer) IsActive() bool { return c.active }

// Address is a shipping address. It has no builder of its own.
type Address struct {
	Street  string
	City    string
	Country string
}

// Order is a transaction made by a customer.
//
//builder:generate
type Order struct {
	id         int64
	customerID int64
	status     OrderStatus
	items      []OrderItem
	lots       []int32
	shipping   *Address
	placedAt   time.Time
	notes      []string
}

func NewOrder(
	id, customerID int64,
	status OrderStatus,
	items []OrderItem,
	lots []int32,
	shipping *Address,
	placedAt time.Time,
	notes ...string,
) *Order {
	return &Order{
		id:         id,
		customerID: customerID,
		status:     status,
		items:      items,
		lots:       lots,
		shipping:   shipping,
		placedAt:   placedAt,
		notes:      notes,
	}
}

func (o *Order) ID() int64 { return o.id }

func (o *Order) CustomerID() int64 { return o.customerID }

func (o *Order) Status() OrderStatus { return o.status }

func (o *Order) Items() []OrderItem { return o.items }

// Lots are the warehouse lot numbers reserved for the order.
func (o *Order) Lots() []int32 { return o.lots }

func (o *Order) Shipping() *Address { return o.shipping }

func (o *Order) PlacedAt() time.Time { return o.placedAt }

func (o *Order) Notes() []string { return o.notes }

// TotalCents sums the items.
//
//builder:ignore
func (o *Order) TotalCents() int64 {
	var total int64
	for _, it := range o.items {
		total += it.Subtotal()
	}

	return total
}

// OrderItem is one product line of an order. It snapshots the price at the
// time of purchase.
//
//builder:generate
type OrderItem struct {
	productID int64
	name      string
	quantity  int
	unitPrice int64
}

func NewOrderItem(productID int64, name string, quantity int, unitPrice int64) OrderItem {
	return OrderItem{productID: productID, name: name, quantity: quantity, unitPrice: unitPrice}
}

func (i OrderItem) ProductID() int64 { return i.productID }

func (i OrderItem) Name() string { return i.name }

func (i OrderItem) Quantity() int { return i.quantity }

func (i OrderItem) UnitPrice() int64 { return i.unitPrice }

//builder:ignore
func (i OrderItem) Subtotal() int64 { return int64(i.quantity) * i.unitPrice }
