package repository

import (
	"context"

	"restaurant/internal/domain/entity"
)

// OrderRepository defines order and line-item persistence.
type OrderRepository interface {
	// Create persists the order with its items and sets the generated IDs.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID returns the bare order with its items, or ErrOrderNotFound.
	FindByID(ctx context.Context, id int64) (*entity.Order, error)

	// FindItems returns the order's line items with dish names, in insertion order.
	FindItems(ctx context.Context, orderID int64) ([]entity.OrderItem, error)

	// FindDetailsByID returns the order joined with its customer and items.
	FindDetailsByID(ctx context.Context, id int64) (*entity.OrderDetails, error)

	// FindAllDetails returns every order joined with its customer, newest first.
	FindAllDetails(ctx context.Context) ([]*entity.OrderDetails, error)

	// FindDetailsByStatus returns the orders in a status, newest first.
	FindDetailsByStatus(ctx context.Context, status entity.OrderStatus) ([]*entity.OrderDetails, error)

	// UpdateStatus moves the order from expected to next and reports whether a row changed.
	UpdateStatus(ctx context.Context, id int64, expected, next entity.OrderStatus) (bool, error)
}

// BillRepository defines bill persistence. At most one bill exists per order.
type BillRepository interface {
	Create(ctx context.Context, bill *entity.Bill) error
	FindByOrderID(ctx context.Context, orderID int64) (*entity.Bill, error)
}

// DeliveryRepository defines delivery persistence. At most one delivery exists per order.
type DeliveryRepository interface {
	Create(ctx context.Context, delivery *entity.Delivery) error
	FindInfoByOrderID(ctx context.Context, orderID int64) (*entity.DeliveryInfo, error)
}
