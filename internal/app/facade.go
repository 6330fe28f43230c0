package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/inventory/internal/domain/model"
	"github.com/polkiloo/inventory/internal/domain/service"
	"github.com/polkiloo/inventory/internal/draft"
	"github.com/polkiloo/inventory/internal/usecase"
)

// CatalogUseCases groups the catalog services.
type CatalogUseCases struct {
	Products  *usecase.CatalogUseCase[model.Product]
	Stock     *usecase.CatalogUseCase[model.Stock]
	Suppliers *usecase.CatalogUseCase[model.Supplier]
	Customers *usecase.CatalogUseCase[model.Customer]
}

// InventoryFacade is the single entry point of the HTTP layer into the use cases.
type InventoryFacade struct {
	auth     *usecase.AuthUseCase
	orders   *usecase.OrderUseCase
	items    *usecase.LineItemUseCase
	composer *usecase.ComposerUseCase
	catalog  CatalogUseCases
}

func NewInventoryFacade(
	auth *usecase.AuthUseCase,
	orders *usecase.OrderUseCase,
	items *usecase.LineItemUseCase,
	composer *usecase.ComposerUseCase,
	catalog CatalogUseCases,
) *InventoryFacade {
	return &InventoryFacade{auth: auth, orders: orders, items: items, composer: composer, catalog: catalog}
}

func (f *InventoryFacade) Register(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Register(ctx, login, password)
	return token, err
}

func (f *InventoryFacade) Authenticate(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	return token, err
}

func (f *InventoryFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *InventoryFacade) CreateOrder(ctx context.Context, order model.Order) (*model.Order, error) {
	return f.orders.Create(ctx, order.Type, order.Date, order.CounterpartyID, order.TotalAmount)
}

func (f *InventoryFacade) Order(ctx context.Context, id int64) (*model.Order, error) {
	return f.orders.Get(ctx, id)
}

func (f *InventoryFacade) Orders(ctx context.Context) ([]model.Order, error) {
	return f.orders.List(ctx)
}

func (f *InventoryFacade) UpdateOrder(ctx context.Context, order model.Order) error {
	return f.orders.Update(ctx, order)
}

func (f *InventoryFacade) DeleteOrder(ctx context.Context, id int64) error {
	return f.orders.Delete(ctx, id)
}

func (f *InventoryFacade) AddLineItem(ctx context.Context, orderID, productID int64, quantity int, price float64) (*model.LineItem, error) {
	return f.items.Add(ctx, orderID, productID, quantity, price)
}

func (f *InventoryFacade) LineItems(ctx context.Context, orderID int64) ([]model.LineItem, error) {
	return f.items.List(ctx, orderID)
}

func (f *InventoryFacade) OpenDraft(ctx context.Context, orderID int64) (uuid.UUID, error) {
	return f.composer.Open(ctx, orderID)
}

func (f *InventoryFacade) StageItem(handle uuid.UUID, productID int64, quantity int, unitPrice float64) error {
	return f.composer.AddItem(handle, productID, quantity, unitPrice)
}

func (f *InventoryFacade) DraftItems(handle uuid.UUID) ([]model.DraftItem, error) {
	return f.composer.Staged(handle)
}

func (f *InventoryFacade) DraftSummary(handle uuid.UUID) (draft.Summary, error) {
	return f.composer.Summary(handle)
}

func (f *InventoryFacade) CommitDraft(ctx context.Context, handle uuid.UUID, orderID int64) (int, error) {
	return f.composer.Commit(ctx, handle, orderID)
}

func (f *InventoryFacade) DiscardDraft(handle uuid.UUID) error {
	return f.composer.Discard(handle)
}

func (f *InventoryFacade) CloseDraft(handle uuid.UUID) {
	f.composer.Close(handle)
}

func (f *InventoryFacade) Products() service.Catalog[model.Product] {
	return f.catalog.Products
}

func (f *InventoryFacade) Stock() service.Catalog[model.Stock] {
	return f.catalog.Stock
}

func (f *InventoryFacade) Suppliers() service.Catalog[model.Supplier] {
	return f.catalog.Suppliers
}

func (f *InventoryFacade) Customers() service.Catalog[model.Customer] {
	return f.catalog.Customers
}
