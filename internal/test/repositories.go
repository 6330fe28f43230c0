package test

import (
	"context"
	"fmt"
	"sync"

	domainErrors "github.com/polkiloo/inventory/internal/domain/errors"
	"github.com/polkiloo/inventory/internal/domain/model"
	"github.com/polkiloo/inventory/internal/domain/repository"
)

// OperatorRepositoryStub stores operators in-memory for tests.
type OperatorRepositoryStub struct {
	Operators map[string]*model.Operator
	ByID      map[int64]*model.Operator
	Next      int64
	Err       error
}

// NewOperatorRepositoryStub constructs stub repository with initialized maps.
func NewOperatorRepositoryStub() *OperatorRepositoryStub {
	return &OperatorRepositoryStub{
		Operators: make(map[string]*model.Operator),
		ByID:      make(map[int64]*model.Operator),
		Next:      1,
	}
}

// Create registers operator unless already exists or stub has explicit error.
func (s *OperatorRepositoryStub) Create(ctx context.Context, login, passwordHash string) (*model.Operator, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.Operators[login]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	op := &model.Operator{ID: s.Next, Login: login, PasswordHash: passwordHash}
	s.Next++
	s.Operators[login] = op
	s.ByID[op.ID] = op
	return op, nil
}

// GetByLogin fetches operator by login or returns not found.
func (s *OperatorRepositoryStub) GetByLogin(ctx context.Context, login string) (*model.Operator, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if op, ok := s.Operators[login]; ok {
		return op, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches operator by identifier or returns not found.
func (s *OperatorRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Operator, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if op, ok := s.ByID[id]; ok {
		return op, nil
	}
	return nil, domainErrors.ErrNotFound
}

// MemoryStore keeps orders, line items and known products in memory. Its
// Orders and LineItems views satisfy the repository contracts.
type MemoryStore struct {
	mu        sync.Mutex
	orders    map[int64]model.Order
	items     []model.LineItem
	products  map[int64]bool
	nextOrder int64
	nextItem  int64

	// FailBatch makes AddBatch fail before writing anything.
	FailBatch error
	// Batches counts AddBatch calls.
	Batches int
}

// NewMemoryStore creates a store that knows the given product ids.
func NewMemoryStore(productIDs ...int64) *MemoryStore {
	s := &MemoryStore{orders: make(map[int64]model.Order), products: make(map[int64]bool)}
	for _, id := range productIDs {
		s.products[id] = true
	}
	return s
}

// Orders returns the order repository view.
func (s *MemoryStore) Orders() *MemoryOrders { return &MemoryOrders{s} }

// LineItems returns the line item repository view.
func (s *MemoryStore) LineItems() *MemoryLineItems { return &MemoryLineItems{s} }

// MemoryOrders implements repository.OrderRepository over MemoryStore.
type MemoryOrders struct{ s *MemoryStore }

func (r *MemoryOrders) Create(ctx context.Context, order model.Order) (*model.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextOrder++
	order.ID = r.s.nextOrder
	r.s.orders[order.ID] = order
	return &order, nil
}

func (r *MemoryOrders) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders[id]
	if !ok {
		return nil, fmt.Errorf("order %d: %w", id, domainErrors.ErrNotFound)
	}
	return &o, nil
}

func (r *MemoryOrders) List(ctx context.Context) ([]model.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]model.Order, 0, len(r.s.orders))
	for id := int64(1); id <= r.s.nextOrder; id++ {
		if o, ok := r.s.orders[id]; ok {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *MemoryOrders) Update(ctx context.Context, order model.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.orders[order.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	r.s.orders[order.ID] = order
	return nil
}

func (r *MemoryOrders) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.orders[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(r.s.orders, id)
	kept := r.s.items[:0]
	for _, it := range r.s.items {
		if it.OrderID != id {
			kept = append(kept, it)
		}
	}
	r.s.items = kept
	return nil
}

// MemoryLineItems implements repository.LineItemRepository over MemoryStore.
type MemoryLineItems struct{ s *MemoryStore }

func (r *MemoryLineItems) check(orderID, productID int64) error {
	if _, ok := r.s.orders[orderID]; !ok {
		return fmt.Errorf("%w: order %d: %w", domainErrors.ErrValidation, orderID, domainErrors.ErrNotFound)
	}
	if !r.s.products[productID] {
		return fmt.Errorf("%w: product %d: %w", domainErrors.ErrValidation, productID, domainErrors.ErrNotFound)
	}
	return nil
}

func (r *MemoryLineItems) Add(ctx context.Context, item model.LineItem) (*model.LineItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.check(item.OrderID, item.ProductID); err != nil {
		return nil, err
	}
	r.s.nextItem++
	item.ID = r.s.nextItem
	r.s.items = append(r.s.items, item)
	return &item, nil
}

func (r *MemoryLineItems) AddBatch(ctx context.Context, orderID int64, items []model.DraftItem) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.Batches++
	if r.s.FailBatch != nil {
		return 0, r.s.FailBatch
	}
	for i, it := range items {
		if err := r.check(orderID, it.ProductID); err != nil {
			return 0, fmt.Errorf("item %d: %w", i, err)
		}
	}
	for _, it := range items {
		r.s.nextItem++
		r.s.items = append(r.s.items, model.LineItem{
			ID:        r.s.nextItem,
			OrderID:   orderID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.UnitPrice,
		})
	}
	return len(items), nil
}

func (r *MemoryLineItems) ListByOrder(ctx context.Context, orderID int64) ([]model.LineItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []model.LineItem{}
	for _, it := range r.s.items {
		if it.OrderID == orderID {
			out = append(out, it)
		}
	}
	return out, nil
}

// CatalogRepositoryStub is an in-memory CatalogRepository. ID must return a
// pointer to the entity's id field.
type CatalogRepositoryStub[T any] struct {
	ID    func(*T) *int64
	Items map[int64]T
	Next  int64
	Err   error
}

// NewCatalogRepositoryStub constructs an empty stub.
func NewCatalogRepositoryStub[T any](id func(*T) *int64) *CatalogRepositoryStub[T] {
	return &CatalogRepositoryStub[T]{ID: id, Items: make(map[int64]T)}
}

func (s *CatalogRepositoryStub[T]) Create(ctx context.Context, entity T) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	s.Next++
	*s.ID(&entity) = s.Next
	s.Items[s.Next] = entity
	return s.Next, nil
}

func (s *CatalogRepositoryStub[T]) Get(ctx context.Context, id int64) (*T, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	e, ok := s.Items[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &e, nil
}

func (s *CatalogRepositoryStub[T]) List(ctx context.Context) ([]T, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]T, 0, len(s.Items))
	for id := int64(1); id <= s.Next; id++ {
		if e, ok := s.Items[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *CatalogRepositoryStub[T]) Update(ctx context.Context, entity T) error {
	if s.Err != nil {
		return s.Err
	}
	id := *s.ID(&entity)
	if _, ok := s.Items[id]; !ok {
		return domainErrors.ErrNotFound
	}
	s.Items[id] = entity
	return nil
}

func (s *CatalogRepositoryStub[T]) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Items[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Items, id)
	return nil
}

var (
	_ repository.OperatorRepository = (*OperatorRepositoryStub)(nil)
	_ repository.OrderRepository    = (*MemoryOrders)(nil)
	_ repository.LineItemRepository = (*MemoryLineItems)(nil)
	_ repository.ProductRepository  = (*CatalogRepositoryStub[model.Product])(nil)
)
