package repository

import (
	"context"

	"github.com/polkiloo/inventory/internal/domain/model"
)

// LineItemRepository persists order_details rows.
type LineItemRepository interface {
	Add(ctx context.Context, item model.LineItem) (*model.LineItem, error)
	// AddBatch writes all items against orderID in one transaction and
	// returns the number of rows written. Nothing is written on error.
	AddBatch(ctx context.Context, orderID int64, items []model.DraftItem) (int, error)
	ListByOrder(ctx context.Context, orderID int64) ([]model.LineItem, error)
}
