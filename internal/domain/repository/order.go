package repository

import (
	"context"

	"github.com/polkiloo/inventory/internal/domain/model"
)

// OrderRepository describes persistence operations with order headers.
type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	Update(ctx context.Context, order model.Order) error
	Delete(ctx context.Context, id int64) error
}
