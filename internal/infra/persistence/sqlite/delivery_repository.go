package sqlite

import (
	"context"
	"time"

	"restaurant/internal/domain/entity"
	"restaurant/internal/domain/repository"
	"restaurant/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// deliveryInfoRow is a delivery joined with its shipper.
type deliveryInfoRow struct {
	ID           int64
	OrderID      int64
	ShipperID    int64
	DeliveryTime time.Time
	Address      string
	Distance     float64
	Fee          float64
	ShipperInfo  string
}

// deliveryRepository implements the repository.DeliveryRepository interface.
type deliveryRepository struct {
	exec *Executor
}

// NewDeliveryRepository is the constructor for deliveryRepository.
func NewDeliveryRepository(db *gorm.DB) repository.DeliveryRepository {
	return &deliveryRepository{exec: NewExecutor(db)}
}

func (repo *deliveryRepository) Create(ctx context.Context, delivery *entity.Delivery) error {
	deliveryM := &model.DeliveryModel{
		OrderID:      delivery.OrderID,
		ShipperID:    delivery.ShipperID,
		DeliveryTime: delivery.DeliveryTime.UTC(),
		Address:      delivery.Address,
		Distance:     delivery.Distance,
		Fee:          delivery.Fee,
	}
	if err := repo.exec.Create(ctx, deliveryM); err != nil {
		return err
	}

	delivery.ID = deliveryM.ID

	return nil
}

func (repo *deliveryRepository) FindInfoByOrderID(ctx context.Context, orderID int64) (*entity.DeliveryInfo, error) {
	var row deliveryInfoRow
	if err := repo.exec.ReadOne(ctx, &row,
		`SELECT d.id, d.order_id, d.shipper_id, d.delivery_time, d.address, d.distance, d.fee,
		s.info AS shipper_info
		FROM deliveries d
		JOIN shippers s ON s.id = d.shipper_id
		WHERE d.order_id = ? LIMIT 1`, orderID); err != nil {
		return nil, notFoundAs(err, repository.ErrDeliveryNotFound)
	}

	return &entity.DeliveryInfo{
		Delivery: entity.Delivery{
			ID:           row.ID,
			OrderID:      row.OrderID,
			ShipperID:    row.ShipperID,
			DeliveryTime: row.DeliveryTime.UTC(),
			Address:      row.Address,
			Distance:     row.Distance,
			Fee:          row.Fee,
		},
		ShipperInfo: row.ShipperInfo,
	}, nil
}
