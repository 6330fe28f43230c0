package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/inventory/internal/config"
	"github.com/polkiloo/inventory/internal/domain/model"
	"github.com/polkiloo/inventory/internal/draft"
	"github.com/polkiloo/inventory/internal/usecase"
	"github.com/polkiloo/inventory/internal/worker"
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		newDraftRegistry,
		newCatalogUseCases,
		NewInventoryFacade,
		newHTTPServer,
		newDraftSweeper,
	),
	fx.Invoke(registerLifecycle),
)

func newDraftRegistry(cfg *config.Config) *draft.Registry {
	return draft.NewRegistry(cfg.DraftTTL, cfg.MaxDraftItems)
}

type catalogParams struct {
	fx.In

	Products  *usecase.CatalogUseCase[model.Product]
	Stock     *usecase.CatalogUseCase[model.Stock]
	Suppliers *usecase.CatalogUseCase[model.Supplier]
	Customers *usecase.CatalogUseCase[model.Customer]
}

func newCatalogUseCases(p catalogParams) CatalogUseCases {
	return CatalogUseCases{
		Products:  p.Products,
		Stock:     p.Stock,
		Suppliers: p.Suppliers,
		Customers: p.Customers,
	}
}

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
}

type workerParams struct {
	fx.In

	Composer *usecase.ComposerUseCase
	Config   *config.Config
	Logger   *slog.Logger
}

func newDraftSweeper(p workerParams) *worker.DraftSweeper {
	return worker.NewDraftSweeper(p.Composer, p.Config.DraftSweepInterval, p.Logger)
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Sweeper    *worker.DraftSweeper
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting inventory", slog.String("addr", p.Server.Addr))
			p.Sweeper.Start(ctx)
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			p.Sweeper.Stop()

			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			if err := p.Server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			p.Logger.Info("inventory stopped")
			return nil
		},
	})
}
