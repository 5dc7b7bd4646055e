package sqlite

import (
	"context"

	"restaurant/internal/domain/entity"
	"restaurant/internal/domain/repository"
	"restaurant/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// billRepository implements the repository.BillRepository interface.
type billRepository struct {
	exec *Executor
}

// NewBillRepository is the constructor for billRepository.
func NewBillRepository(db *gorm.DB) repository.BillRepository {
	return &billRepository{exec: NewExecutor(db)}
}

// Create inserts a bill. Unknown order, employee or shipper references and a
// second bill for the same order are constraint violations.
func (repo *billRepository) Create(ctx context.Context, bill *entity.Bill) error {
	billM := &model.BillModel{
		ReceiptNo:   bill.ReceiptNo,
		OrderID:     bill.OrderID,
		EmployeeID:  bill.EmployeeID,
		ShipperID:   bill.ShipperID,
		TotalAmount: bill.TotalAmount,
		BilledAt:    bill.BilledAt.UTC(),
	}
	if err := repo.exec.Create(ctx, billM); err != nil {
		return err
	}

	bill.ID = billM.ID

	return nil
}

func (repo *billRepository) FindByOrderID(ctx context.Context, orderID int64) (*entity.Bill, error) {
	var billM model.BillModel
	if err := repo.exec.ReadOne(ctx, &billM,
		`SELECT id, receipt_no, order_id, employee_id, shipper_id, total_amount, billed_at
		FROM bills WHERE order_id = ? LIMIT 1`, orderID); err != nil {
		return nil, notFoundAs(err, repository.ErrBillNotFound)
	}

	return &entity.Bill{
		ID:          billM.ID,
		ReceiptNo:   billM.ReceiptNo,
		OrderID:     billM.OrderID,
		EmployeeID:  billM.EmployeeID,
		ShipperID:   billM.ShipperID,
		TotalAmount: billM.TotalAmount,
		BilledAt:    billM.BilledAt.UTC(),
	}, nil
}
