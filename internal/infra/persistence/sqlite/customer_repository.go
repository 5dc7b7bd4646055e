package sqlite

import (
	"context"

	"restaurant/internal/domain/entity"
	"restaurant/internal/domain/repository"
	"restaurant/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// customerRepository implements the repository.CustomerRepository interface.
type customerRepository struct {
	exec *Executor
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{exec: NewExecutor(db)}
}

// Create persists a new customer. A duplicate phone is a constraint violation.
func (repo *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)
	if err := repo.exec.Create(ctx, customerM); err != nil {
		return err
	}

	customer.ID = customerM.ID

	return nil
}

func (repo *customerRepository) FindByID(ctx context.Context, id int64) (*entity.Customer, error) {
	var customerM model.CustomerModel
	if err := repo.exec.ReadOne(ctx, &customerM,
		"SELECT id, name, phone FROM customers WHERE id = ? LIMIT 1", id); err != nil {
		return nil, notFoundAs(err, repository.ErrCustomerNotFound)
	}

	return toCustomerDomain(&customerM), nil
}

func (repo *customerRepository) FindByPhone(ctx context.Context, phone string) (*entity.Customer, error) {
	var customerM model.CustomerModel
	if err := repo.exec.ReadOne(ctx, &customerM,
		"SELECT id, name, phone FROM customers WHERE phone = ? LIMIT 1", phone); err != nil {
		return nil, notFoundAs(err, repository.ErrCustomerNotFound)
	}

	return toCustomerDomain(&customerM), nil
}

func (repo *customerRepository) FindAll(ctx context.Context) ([]*entity.Customer, error) {
	return repo.findMany(ctx, "SELECT id, name, phone FROM customers ORDER BY name, id")
}

// Search matches term as a substring of the name or the phone.
func (repo *customerRepository) Search(ctx context.Context, term string) ([]*entity.Customer, error) {
	pattern := likePattern(term)

	return repo.findMany(ctx,
		"SELECT id, name, phone FROM customers WHERE name LIKE ? OR phone LIKE ? ORDER BY name, id",
		pattern, pattern)
}

func (repo *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	res, err := repo.exec.Write(ctx,
		"UPDATE customers SET name = ?, phone = ? WHERE id = ?",
		customer.Name, customer.Phone, customer.ID)
	if err != nil {
		return err
	}

	return requireAffected(res, repository.ErrCustomerNotFound)
}

// Delete removes a customer. Customers referenced by orders cannot be deleted.
func (repo *customerRepository) Delete(ctx context.Context, id int64) error {
	res, err := repo.exec.Write(ctx, "DELETE FROM customers WHERE id = ?", id)
	if err != nil {
		return err
	}

	return requireAffected(res, repository.ErrCustomerNotFound)
}

func (repo *customerRepository) findMany(ctx context.Context, query string, args ...any) ([]*entity.Customer, error) {
	var customerModels []*model.CustomerModel
	if err := repo.exec.ReadMany(ctx, &customerModels, query, args...); err != nil {
		return nil, err
	}

	customers := make([]*entity.Customer, 0, len(customerModels))
	for _, customerM := range customerModels {
		customers = append(customers, toCustomerDomain(customerM))
	}

	return customers, nil
}

func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	return &entity.Customer{
		ID:    data.ID,
		Name:  data.Name,
		Phone: data.Phone,
	}
}

func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	return &model.CustomerModel{
		ID:    data.ID,
		Name:  data.Name,
		Phone: data.Phone,
	}
}
