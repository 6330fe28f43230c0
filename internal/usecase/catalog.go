package usecase

import (
	"context"

	"github.com/polkiloo/inventory/internal/domain/model"
	"github.com/polkiloo/inventory/internal/domain/repository"
	"github.com/polkiloo/inventory/internal/domain/service"
)

var _ service.Catalog[model.Product] = (*CatalogUseCase[model.Product])(nil)

// CatalogUseCase is the CRUD flow shared by products, stock, suppliers and
// customers. Entities are validated before create and update.
type CatalogUseCase[T any] struct {
	repo     repository.CatalogRepository[T]
	validate func(T) error
}

func newCatalogUseCase[T any](repo repository.CatalogRepository[T], validate func(T) error) *CatalogUseCase[T] {
	return &CatalogUseCase[T]{repo: repo, validate: validate}
}

// NewProductUseCase creates the product catalog flow.
func NewProductUseCase(repo repository.ProductRepository) *CatalogUseCase[model.Product] {
	return newCatalogUseCase(repo, ValidateProduct)
}

// NewStockUseCase creates the stock catalog flow.
func NewStockUseCase(repo repository.StockRepository) *CatalogUseCase[model.Stock] {
	return newCatalogUseCase(repo, ValidateStock)
}

// NewSupplierUseCase creates the supplier catalog flow.
func NewSupplierUseCase(repo repository.SupplierRepository) *CatalogUseCase[model.Supplier] {
	return newCatalogUseCase(repo, ValidateSupplier)
}

// NewCustomerUseCase creates the customer catalog flow.
func NewCustomerUseCase(repo repository.CustomerRepository) *CatalogUseCase[model.Customer] {
	return newCatalogUseCase(repo, ValidateCustomer)
}

// Create validates entity and stores it, returning the new id.
func (u *CatalogUseCase[T]) Create(ctx context.Context, entity T) (int64, error) {
	if err := u.validate(entity); err != nil {
		return 0, err
	}
	return u.repo.Create(ctx, entity)
}

// Get loads an entity by id.
func (u *CatalogUseCase[T]) Get(ctx context.Context, id int64) (*T, error) {
	return u.repo.Get(ctx, id)
}

// List returns all entities ordered by id.
func (u *CatalogUseCase[T]) List(ctx context.Context) ([]T, error) {
	return u.repo.List(ctx)
}

// Update validates entity and overwrites the stored row.
func (u *CatalogUseCase[T]) Update(ctx context.Context, entity T) error {
	if err := u.validate(entity); err != nil {
		return err
	}
	return u.repo.Update(ctx, entity)
}

// Delete removes an entity by id.
func (u *CatalogUseCase[T]) Delete(ctx context.Context, id int64) error {
	return u.repo.Delete(ctx, id)
}
