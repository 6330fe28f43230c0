package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/inventory/internal/config"
	"github.com/polkiloo/inventory/internal/domain/repository"
)

// Module wires PostgreSQL storage and repository adapters.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(
		func(s *Storage) repository.OperatorRepository { return s.Operators() },
		func(s *Storage) repository.OrderRepository { return s.Orders() },
		func(s *Storage) repository.LineItemRepository { return s.LineItems() },
		func(s *Storage) repository.ProductRepository { return s.Products() },
		func(s *Storage) repository.StockRepository { return s.Stock() },
		func(s *Storage) repository.SupplierRepository { return s.Suppliers() },
		func(s *Storage) repository.CustomerRepository { return s.Customers() },
	),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	return New(p.Ctx, p.Config.DatabaseURI, p.Logger)
}

// registerLifecycle refuses to start without a reachable database and
// closes the pool on stop.
func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := storage.HealthCheck(ctx); err != nil {
				return fmt.Errorf("database unavailable: %w", err)
			}
			storage.logger.Info("database ready")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})
}
