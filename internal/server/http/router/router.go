package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/inventory/internal/config"
	"github.com/polkiloo/inventory/internal/server/http/dto"
	"github.com/polkiloo/inventory/internal/server/http/handlers"
	"github.com/polkiloo/inventory/internal/server/http/middleware"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Provide(Setup)

// SessionName is the cookie carrying the composition session.
const SessionName = "inventory_session"

func newSessionStore(cfg *config.Config) sessions.Store {
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.DraftTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return store
}

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.InventoryFacade, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "route not found"})
	})

	authHandler := handlers.NewAuthHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	draftHandler := handlers.NewDraftHandler(facade)

	api := engine.Group("/api")
	user := api.Group("/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)

	secured := api.Group("")
	secured.Use(middleware.AuthRequired(facade))

	orders := secured.Group("/orders")
	orders.POST("", orderHandler.Create)
	orders.GET("", orderHandler.List)
	orders.GET("/:id", orderHandler.Get)
	orders.PUT("/:id", orderHandler.Update)
	orders.DELETE("/:id", orderHandler.Delete)
	orders.GET("/:id/items", orderHandler.Items)
	orders.POST("/:id/items", orderHandler.AddItem)

	drafts := orders.Group("/:id/draft")
	drafts.Use(sessions.Sessions(SessionName, newSessionStore(cfg)))
	drafts.POST("", draftHandler.Open)
	drafts.GET("", draftHandler.Show)
	drafts.DELETE("", draftHandler.Discard)
	drafts.POST("/items", draftHandler.AddItem)
	drafts.POST("/commit", draftHandler.Commit)

	handlers.NewCatalogHandler(facade.Products(), dto.ProductToModel, dto.ProductFromModel).
		Register(secured.Group("/products"))
	handlers.NewCatalogHandler(facade.Stock(), dto.StockToModel, dto.StockFromModel).
		Register(secured.Group("/stock"))
	handlers.NewCatalogHandler(facade.Suppliers(), dto.SupplierToModel, dto.SupplierFromModel).
		Register(secured.Group("/suppliers"))
	handlers.NewCatalogHandler(facade.Customers(), dto.CustomerToModel, dto.CustomerFromModel).
		Register(secured.Group("/customers"))

	return engine
}
