package handlers

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/inventory/internal/domain/model"
	"github.com/polkiloo/inventory/internal/domain/service"
	"github.com/polkiloo/inventory/internal/draft"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, login, password string) (string, error)
	Authenticate(ctx context.Context, login, password string) (string, error)
	ParseToken(token string) (int64, error)
}

// OrderFacade exposes order header and line item operations.
type OrderFacade interface {
	CreateOrder(ctx context.Context, order model.Order) (*model.Order, error)
	Order(ctx context.Context, id int64) (*model.Order, error)
	Orders(ctx context.Context) ([]model.Order, error)
	UpdateOrder(ctx context.Context, order model.Order) error
	DeleteOrder(ctx context.Context, id int64) error
	AddLineItem(ctx context.Context, orderID, productID int64, quantity int, price float64) (*model.LineItem, error)
	LineItems(ctx context.Context, orderID int64) ([]model.LineItem, error)
}

// ComposerFacade exposes draft based order composition.
type ComposerFacade interface {
	OpenDraft(ctx context.Context, orderID int64) (uuid.UUID, error)
	StageItem(handle uuid.UUID, productID int64, quantity int, unitPrice float64) error
	DraftItems(handle uuid.UUID) ([]model.DraftItem, error)
	DraftSummary(handle uuid.UUID) (draft.Summary, error)
	CommitDraft(ctx context.Context, handle uuid.UUID, orderID int64) (int, error)
	DiscardDraft(handle uuid.UUID) error
	CloseDraft(handle uuid.UUID)
}

// CatalogFacade gives access to the catalog services.
type CatalogFacade interface {
	Products() service.Catalog[model.Product]
	Stock() service.Catalog[model.Stock]
	Suppliers() service.Catalog[model.Supplier]
	Customers() service.Catalog[model.Customer]
}

// InventoryFacade aggregates the full set of operations used across handlers.
type InventoryFacade interface {
	AuthFacade
	OrderFacade
	ComposerFacade
	CatalogFacade
}
