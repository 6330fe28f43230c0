package repository

import (
	"context"

	"github.com/polkiloo/inventory/internal/domain/model"
)

// CatalogRepository is the single-table CRUD shared by products, stock,
// suppliers and customers.
type CatalogRepository[T any] interface {
	Create(ctx context.Context, entity T) (int64, error)
	Get(ctx context.Context, id int64) (*T, error)
	List(ctx context.Context) ([]T, error)
	Update(ctx context.Context, entity T) error
	Delete(ctx context.Context, id int64) error
}

type (
	ProductRepository  = CatalogRepository[model.Product]
	StockRepository    = CatalogRepository[model.Stock]
	SupplierRepository = CatalogRepository[model.Supplier]
	CustomerRepository = CatalogRepository[model.Customer]
)
