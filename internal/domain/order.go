package domain

import "time"

// OrderItem is one line item of a customer order. An order with several
// items appears as consecutive OrderItems sharing the same OrderNo.
// Pickup and Dropoff are resolved from the shop and customer location codes
// before planning starts.
type OrderItem struct {
	OrderNo      string
	DeliveryDate time.Time
	Customer     string
	DeliverTo    string
	Item         string
	Pickup       Position
	Dropoff      Position
	PricePence   int
}

// Delivery is a completed order together with what the customer pays.
type Delivery struct {
	OrderNo     string
	DeliveredTo string
	CostInPence int
}
