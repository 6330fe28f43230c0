package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/inventory/internal/app"
	"github.com/polkiloo/inventory/internal/config"
	"github.com/polkiloo/inventory/internal/logger"
	"github.com/polkiloo/inventory/internal/pkg/auth"
	"github.com/polkiloo/inventory/internal/server/http/handlers"
	"github.com/polkiloo/inventory/internal/server/http/router"
	"github.com/polkiloo/inventory/internal/storage/postgres"
	"github.com/polkiloo/inventory/internal/usecase"
)

// Module assembles the whole application graph. Extra options are appended
// last so callers can replace any component.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(f *app.InventoryFacade) handlers.InventoryFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
