package sqlite

import (
	"context"

	"restaurant/internal/domain/entity"
	"restaurant/internal/domain/repository"
	"restaurant/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// employeeRepository implements the repository.EmployeeRepository interface.
type employeeRepository struct {
	exec *Executor
}

// NewEmployeeRepository is the constructor for employeeRepository.
func NewEmployeeRepository(db *gorm.DB) repository.EmployeeRepository {
	return &employeeRepository{exec: NewExecutor(db)}
}

func (repo *employeeRepository) Create(ctx context.Context, employee *entity.Employee) error {
	employeeM := &model.EmployeeModel{Name: employee.Name}
	if err := repo.exec.Create(ctx, employeeM); err != nil {
		return err
	}

	employee.ID = employeeM.ID

	return nil
}

func (repo *employeeRepository) FindByID(ctx context.Context, id int64) (*entity.Employee, error) {
	var employeeM model.EmployeeModel
	if err := repo.exec.ReadOne(ctx, &employeeM, "SELECT id, name FROM employees WHERE id = ? LIMIT 1", id); err != nil {
		return nil, notFoundAs(err, repository.ErrEmployeeNotFound)
	}

	return &entity.Employee{ID: employeeM.ID, Name: employeeM.Name}, nil
}

func (repo *employeeRepository) FindAll(ctx context.Context) ([]*entity.Employee, error) {
	var employeeModels []*model.EmployeeModel
	if err := repo.exec.ReadMany(ctx, &employeeModels, "SELECT id, name FROM employees ORDER BY name, id"); err != nil {
		return nil, err
	}

	employees := make([]*entity.Employee, 0, len(employeeModels))
	for _, employeeM := range employeeModels {
		employees = append(employees, &entity.Employee{ID: employeeM.ID, Name: employeeM.Name})
	}

	return employees, nil
}

func (repo *employeeRepository) Update(ctx context.Context, employee *entity.Employee) error {
	res, err := repo.exec.Write(ctx, "UPDATE employees SET name = ? WHERE id = ?", employee.Name, employee.ID)
	if err != nil {
		return err
	}

	return requireAffected(res, repository.ErrEmployeeNotFound)
}

func (repo *employeeRepository) Delete(ctx context.Context, id int64) error {
	res, err := repo.exec.Write(ctx, "DELETE FROM employees WHERE id = ?", id)
	if err != nil {
		return err
	}

	return requireAffected(res, repository.ErrEmployeeNotFound)
}
