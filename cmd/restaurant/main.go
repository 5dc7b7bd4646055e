package main

import (
	"context"
	"log/slog"
	"time"

	"restaurant/config"
	"restaurant/internal/domain/entity"
	"restaurant/internal/domain/lifecycle"
	"restaurant/internal/domain/repository"
	logs "restaurant/internal/infra/log"
	"restaurant/internal/infra/metrics"
	"restaurant/internal/infra/persistence/sqlite"
	"restaurant/internal/usecase"
	"restaurant/internal/usecase/impl"

	"go.uber.org/fx"
)

type reportParams struct {
	fx.In
	fx.Lifecycle

	Config         *config.Config
	Logger         *slog.Logger
	IngredientRepo repository.IngredientRepository
	Orders         usecase.OrderUsecase
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		fx.Invoke(
			reportReadiness,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		sqlite.New,
		metrics.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			sqlite.NewCustomerRepository,
			sqlite.NewEmployeeRepository,
			sqlite.NewShipperRepository,
			sqlite.NewDishRepository,
			sqlite.NewIngredientRepository,
			sqlite.NewOrderRepository,
			sqlite.NewBillRepository,
			sqlite.NewDeliveryRepository,
			sqlite.NewTransactionManager,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewOrderService,
		),
	)
}

// reportReadiness runs after the store hook has migrated the schema and logs
// the open orders together with the ingredients that need attention.
func reportReadiness(params reportParams) {
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			ctx = logs.WithRequestScope(ctx, params.Logger, "")
			logger := logs.FromContext(ctx, params.Logger)

			pending, err := params.Orders.ListOrdersByStatus(ctx, string(entity.OrderStatusPending))
			if err != nil {
				return err
			}

			low, err := params.IngredientRepo.FindLowStock(ctx, params.Config.Inventory.LowStockThreshold)
			if err != nil {
				return err
			}
			for _, ingredient := range low {
				logger.WarnContext(ctx, "Low stock",
					slog.String("ingredient", ingredient.Name),
					slog.Float64("stock", ingredient.Stock),
					slog.String("unit", ingredient.Unit),
				)
			}

			expired, err := params.IngredientRepo.FindExpired(ctx, time.Now())
			if err != nil {
				return err
			}
			for _, ingredient := range expired {
				logger.WarnContext(ctx, "Ingredient expired",
					slog.String("ingredient", ingredient.Name),
					slog.Time("expiry", ingredient.Expiry),
				)
			}

			logger.InfoContext(ctx, "Restaurant store ready",
				slog.String("path", params.Config.SQLite.Path),
				slog.Int("pendingOrders", len(pending)),
				slog.Int("lowStock", len(low)),
				slog.Int("expired", len(expired)),
			)

			return nil
		},
		OnStop: func(ctx context.Context) error {
			params.Logger.InfoContext(ctx, "Restaurant store shutting down")

			return nil
		},
	})
}
