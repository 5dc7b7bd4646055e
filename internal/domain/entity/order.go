package entity

import "time"

// Order is a customer's request for one or more dishes.
// Only Status changes after creation.
type Order struct {
	ID          int64
	DishRequest string // Free text as entered; display only, Items is authoritative.
	TotalPrice  float64
	CreatedAt   time.Time
	Status      OrderStatus
	CustomerID  int64
	Items       []OrderItem
}

// OrderItem is one dish line of an order.
type OrderItem struct {
	ID        int64
	OrderID   int64
	DishID    int64
	DishName  string // Filled on joined reads.
	Quantity  int
	UnitPrice float64
}

// OrderDetails is an order joined with its customer, as shown to staff.
type OrderDetails struct {
	Order
	CustomerName  string
	CustomerPhone string
}

// Bill closes an order and attributes it to an employee and a shipper.
type Bill struct {
	ID          int64
	ReceiptNo   string // Time-ordered UUID printed on the receipt.
	OrderID     int64
	EmployeeID  int64
	ShipperID   int64
	TotalAmount float64
	BilledAt    time.Time
}

// Delivery records the physical fulfillment of an order.
type Delivery struct {
	ID           int64
	OrderID      int64
	ShipperID    int64
	DeliveryTime time.Time
	Address      string
	Distance     float64 // Kilometers.
	Fee          float64
}

// DeliveryInfo is a delivery joined with its shipper.
type DeliveryInfo struct {
	Delivery
	ShipperInfo string
}
