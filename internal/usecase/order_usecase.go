package usecase

import (
	"context"
	"time"

	"restaurant/internal/domain/entity"
)

// OrderUsecase defines the order fulfillment workflow: creation, stock deduction,
// billing, delivery and status changes.
type OrderUsecase interface {
	// CreateOrder inserts a Pending order and its line items. It does not touch stock.
	CreateOrder(ctx context.Context, input *CreateOrderInput) (int64, error)

	// DeductStockForOrder consumes the ingredients of every line item, all or nothing.
	DeductStockForOrder(ctx context.Context, orderID int64) error

	// CreateBill records the bill of an order. An order is billed at most once.
	CreateBill(ctx context.Context, input *CreateBillInput) (int64, error)

	// AddDelivery records the delivery of an order. An order is delivered at most once.
	AddDelivery(ctx context.Context, input *AddDeliveryInput) (int64, error)

	// UpdateStatus moves an order along the status lifecycle.
	UpdateStatus(ctx context.Context, orderID int64, newStatus string) error

	// PlaceFullOrder creates, deducts, bills and optionally schedules delivery in one transaction.
	PlaceFullOrder(ctx context.Context, input *PlaceOrderInput) (*PlaceOrderOutput, error)

	// GetOrderByID returns the order with its customer and line items.
	GetOrderByID(ctx context.Context, orderID int64) (*entity.OrderDetails, error)

	// GetDeliveryInfo returns the delivery of an order with its shipper.
	GetDeliveryInfo(ctx context.Context, orderID int64) (*entity.DeliveryInfo, error)

	// ListOrders returns every order with its customer, newest first.
	ListOrders(ctx context.Context) ([]*entity.OrderDetails, error)

	// ListOrdersByStatus returns the orders currently in status, newest first.
	ListOrdersByStatus(ctx context.Context, status string) ([]*entity.OrderDetails, error)
}

// CreateOrderInput is a new order as entered by staff.
type CreateOrderInput struct {
	// DishRequest lists dishes, e.g. "2 x Bread, Tomato Soup".
	DishRequest string  `validate:"required"`
	TotalPrice  float64 `validate:"gt=0"`
	CustomerID  int64   `validate:"gt=0"`
}

// CreateBillInput attributes a bill to an employee and a shipper.
type CreateBillInput struct {
	OrderID     int64   `validate:"gt=0"`
	EmployeeID  int64   `validate:"gt=0"`
	ShipperID   int64   `validate:"gt=0"`
	TotalAmount float64 `validate:"gte=0"`
}

// AddDeliveryInput describes the delivery of an order. A zero DeliveryTime means now.
type AddDeliveryInput struct {
	OrderID      int64   `validate:"gt=0"`
	ShipperID    int64   `validate:"gt=0"`
	Address      string  `validate:"required"`
	Distance     float64 `validate:"gte=0"`
	Fee          float64 `validate:"gte=0"`
	DeliveryTime time.Time
}

// DeliveryInput is the optional delivery part of a full order. ShipperID
// defaults to the billing shipper.
type DeliveryInput struct {
	ShipperID    int64   `validate:"gte=0"`
	Address      string  `validate:"required"`
	Distance     float64 `validate:"gte=0"`
	Fee          float64 `validate:"gte=0"`
	DeliveryTime time.Time
}

// PlaceOrderInput is everything needed to take an order from request to bill.
type PlaceOrderInput struct {
	DishRequest string  `validate:"required"`
	TotalPrice  float64 `validate:"gt=0"`
	CustomerID  int64   `validate:"gt=0"`
	EmployeeID  int64   `validate:"gt=0"`
	ShipperID   int64   `validate:"gt=0"`

	// BillAmount defaults to TotalPrice when nil. Zero bills a comped order.
	BillAmount *float64 `validate:"omitempty,gte=0"`

	Delivery *DeliveryInput
}

// PlaceOrderOutput holds the records committed by PlaceFullOrder. Delivery is nil
// when none was requested.
type PlaceOrderOutput struct {
	Order    *entity.Order
	Bill     *entity.Bill
	Delivery *entity.Delivery
}
