package repository

import (
	"context"

	"restaurant/internal/domain/entity"
)

// CustomerRepository defines customer persistence. Phone is unique.
type CustomerRepository interface {
	// Create persists a new customer and sets its ID.
	Create(ctx context.Context, customer *entity.Customer) error

	// FindByID returns ErrCustomerNotFound on a miss.
	FindByID(ctx context.Context, id int64) (*entity.Customer, error)

	// FindByPhone returns ErrCustomerNotFound on a miss.
	FindByPhone(ctx context.Context, phone string) (*entity.Customer, error)

	// FindAll returns every customer ordered by name.
	FindAll(ctx context.Context) ([]*entity.Customer, error)

	// Search matches term against name or phone.
	Search(ctx context.Context, term string) ([]*entity.Customer, error)

	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id int64) error
}

// EmployeeRepository defines employee persistence.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	FindByID(ctx context.Context, id int64) (*entity.Employee, error)
	FindAll(ctx context.Context) ([]*entity.Employee, error)
	Update(ctx context.Context, employee *entity.Employee) error
	Delete(ctx context.Context, id int64) error
}

// ShipperRepository defines shipper persistence.
type ShipperRepository interface {
	Create(ctx context.Context, shipper *entity.Shipper) error
	FindByID(ctx context.Context, id int64) (*entity.Shipper, error)
	FindAll(ctx context.Context) ([]*entity.Shipper, error)
}
