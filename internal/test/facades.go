package test

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/polkiloo/inventory/internal/domain/model"
	"github.com/polkiloo/inventory/internal/domain/service"
	"github.com/polkiloo/inventory/internal/draft"
)

// AuthFacadeStub provides controllable behaviour for auth endpoints.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string) (string, error)
	AuthenticateFn func(context.Context, string, string) (string, error)
	ParseFn        func(string) (int64, error)
}

// Register delegates to provided function or returns a fixed token.
func (s AuthFacadeStub) Register(ctx context.Context, login, password string) (string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, login, password)
	}
	return "token", nil
}

// Authenticate delegates to provided function or returns a fixed token.
func (s AuthFacadeStub) Authenticate(ctx context.Context, login, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, login, password)
	}
	return "token", nil
}

// ParseToken accepts any token as operator 1 unless overridden.
func (s AuthFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CreateFn    func(context.Context, model.Order) (*model.Order, error)
	GetFn       func(context.Context, int64) (*model.Order, error)
	ListFn      func(context.Context) ([]model.Order, error)
	UpdateFn    func(context.Context, model.Order) error
	DeleteFn    func(context.Context, int64) error
	AddItemFn   func(context.Context, int64, int64, int, float64) (*model.LineItem, error)
	LineItemsFn func(context.Context, int64) ([]model.LineItem, error)
}

// CreateOrder echoes the order back with id 1.
func (s OrderFacadeStub) CreateOrder(ctx context.Context, order model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	order.ID = 1
	return &order, nil
}

// Order returns a sale order with the requested id.
func (s OrderFacadeStub) Order(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	return &model.Order{ID: id, Type: model.OrderTypeSale, Date: "2024-01-01", CounterpartyID: 7}, nil
}

// Orders returns predefined orders.
func (s OrderFacadeStub) Orders(ctx context.Context) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return []model.Order{{ID: 1, Type: model.OrderTypeSale, Date: "2024-01-01", CounterpartyID: 7}}, nil
}

// UpdateOrder executes configured handler.
func (s OrderFacadeStub) UpdateOrder(ctx context.Context, order model.Order) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, order)
	}
	return nil
}

// DeleteOrder executes configured handler.
func (s OrderFacadeStub) DeleteOrder(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// AddLineItem returns the item with id 1.
func (s OrderFacadeStub) AddLineItem(ctx context.Context, orderID, productID int64, quantity int, price float64) (*model.LineItem, error) {
	if s.AddItemFn != nil {
		return s.AddItemFn(ctx, orderID, productID, quantity, price)
	}
	return &model.LineItem{ID: 1, OrderID: orderID, ProductID: productID, Quantity: quantity, Price: price}, nil
}

// LineItems returns no items unless overridden.
func (s OrderFacadeStub) LineItems(ctx context.Context, orderID int64) ([]model.LineItem, error) {
	if s.LineItemsFn != nil {
		return s.LineItemsFn(ctx, orderID)
	}
	return []model.LineItem{}, nil
}

// ComposerFacadeStub simulates draft operations and records closed handles.
type ComposerFacadeStub struct {
	OpenFn    func(context.Context, int64) (uuid.UUID, error)
	StageFn   func(uuid.UUID, int64, int, float64) error
	ItemsFn   func(uuid.UUID) ([]model.DraftItem, error)
	SummaryFn func(uuid.UUID) (draft.Summary, error)
	CommitFn  func(context.Context, uuid.UUID, int64) (int, error)
	DiscardFn func(uuid.UUID) error

	mu     sync.Mutex
	Closed []uuid.UUID
}

func (s *ComposerFacadeStub) OpenDraft(ctx context.Context, orderID int64) (uuid.UUID, error) {
	if s.OpenFn != nil {
		return s.OpenFn(ctx, orderID)
	}
	return uuid.New(), nil
}

func (s *ComposerFacadeStub) StageItem(handle uuid.UUID, productID int64, quantity int, unitPrice float64) error {
	if s.StageFn != nil {
		return s.StageFn(handle, productID, quantity, unitPrice)
	}
	return nil
}

func (s *ComposerFacadeStub) DraftItems(handle uuid.UUID) ([]model.DraftItem, error) {
	if s.ItemsFn != nil {
		return s.ItemsFn(handle)
	}
	return nil, nil
}

func (s *ComposerFacadeStub) DraftSummary(handle uuid.UUID) (draft.Summary, error) {
	if s.SummaryFn != nil {
		return s.SummaryFn(handle)
	}
	return draft.Summary{Subtotal: decimal.Zero}, nil
}

func (s *ComposerFacadeStub) CommitDraft(ctx context.Context, handle uuid.UUID, orderID int64) (int, error) {
	if s.CommitFn != nil {
		return s.CommitFn(ctx, handle, orderID)
	}
	return 0, nil
}

func (s *ComposerFacadeStub) DiscardDraft(handle uuid.UUID) error {
	if s.DiscardFn != nil {
		return s.DiscardFn(handle)
	}
	return nil
}

func (s *ComposerFacadeStub) CloseDraft(handle uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Closed = append(s.Closed, handle)
}

// ClosedHandles returns a copy of the handles passed to CloseDraft.
func (s *ComposerFacadeStub) ClosedHandles() []uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]uuid.UUID(nil), s.Closed...)
}

// CatalogFacadeStub serves catalog operations from in-memory repositories.
type CatalogFacadeStub struct {
	ProductRepo  *CatalogRepositoryStub[model.Product]
	StockRepo    *CatalogRepositoryStub[model.Stock]
	SupplierRepo *CatalogRepositoryStub[model.Supplier]
	CustomerRepo *CatalogRepositoryStub[model.Customer]
}

// NewCatalogFacadeStub constructs a catalog stub with empty repositories.
func NewCatalogFacadeStub() *CatalogFacadeStub {
	return &CatalogFacadeStub{
		ProductRepo:  NewCatalogRepositoryStub(func(p *model.Product) *int64 { return &p.ID }),
		StockRepo:    NewCatalogRepositoryStub(func(s *model.Stock) *int64 { return &s.ID }),
		SupplierRepo: NewCatalogRepositoryStub(func(s *model.Supplier) *int64 { return &s.ID }),
		CustomerRepo: NewCatalogRepositoryStub(func(c *model.Customer) *int64 { return &c.ID }),
	}
}

func (s *CatalogFacadeStub) Products() service.Catalog[model.Product] { return s.ProductRepo }
func (s *CatalogFacadeStub) Stock() service.Catalog[model.Stock] { return s.StockRepo }
func (s *CatalogFacadeStub) Suppliers() service.Catalog[model.Supplier] { return s.SupplierRepo }
func (s *CatalogFacadeStub) Customers() service.Catalog[model.Customer] { return s.CustomerRepo }

// InventoryFacadeStub combines all facade stubs.
type InventoryFacadeStub struct {
	AuthFacadeStub
	OrderFacadeStub
	*ComposerFacadeStub
	*CatalogFacadeStub
}

// NewInventoryFacadeStub returns a stub with default behaviour everywhere.
func NewInventoryFacadeStub() InventoryFacadeStub {
	return InventoryFacadeStub{
		ComposerFacadeStub: &ComposerFacadeStub{},
		CatalogFacadeStub:  NewCatalogFacadeStub(),
	}
}
