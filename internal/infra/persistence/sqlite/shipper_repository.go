package sqlite

import (
	"context"

	"restaurant/internal/domain/entity"
	"restaurant/internal/domain/repository"
	"restaurant/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// shipperRepository implements the repository.ShipperRepository interface.
type shipperRepository struct {
	exec *Executor
}

// NewShipperRepository is the constructor for shipperRepository.
func NewShipperRepository(db *gorm.DB) repository.ShipperRepository {
	return &shipperRepository{exec: NewExecutor(db)}
}

func (repo *shipperRepository) Create(ctx context.Context, shipper *entity.Shipper) error {
	shipperM := &model.ShipperModel{Info: shipper.Info}
	if err := repo.exec.Create(ctx, shipperM); err != nil {
		return err
	}

	shipper.ID = shipperM.ID

	return nil
}

func (repo *shipperRepository) FindByID(ctx context.Context, id int64) (*entity.Shipper, error) {
	var shipperM model.ShipperModel
	if err := repo.exec.ReadOne(ctx, &shipperM, "SELECT id, info FROM shippers WHERE id = ? LIMIT 1", id); err != nil {
		return nil, notFoundAs(err, repository.ErrShipperNotFound)
	}

	return &entity.Shipper{ID: shipperM.ID, Info: shipperM.Info}, nil
}

func (repo *shipperRepository) FindAll(ctx context.Context) ([]*entity.Shipper, error) {
	var shipperModels []*model.ShipperModel
	if err := repo.exec.ReadMany(ctx, &shipperModels, "SELECT id, info FROM shippers ORDER BY id"); err != nil {
		return nil, err
	}

	shippers := make([]*entity.Shipper, 0, len(shipperModels))
	for _, shipperM := range shipperModels {
		shippers = append(shippers, &entity.Shipper{ID: shipperM.ID, Info: shipperM.Info})
	}

	return shippers, nil
}
