// Package service declares use case contracts consumed by the transport layer.
package service

import "context"

// Catalog is validated CRUD over one catalog entity.
type Catalog[T any] interface {
	Create(ctx context.Context, entity T) (int64, error)
	Get(ctx context.Context, id int64) (*T, error)
	List(ctx context.Context) ([]T, error)
	Update(ctx context.Context, entity T) error
	Delete(ctx context.Context, id int64) error
}
