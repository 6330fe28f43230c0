package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/polkiloo/inventory/internal/domain/model"
)

const (
	orderExistsQuery   = `SELECT 1 FROM orders WHERE order_id=$1`
	productExistsQuery = `SELECT 1 FROM products WHERE product_id=$1`
	insertDetailQuery  = `INSERT INTO order_details (order_id, product_id, quantity, price)
                          VALUES ($1, $2, $3, $4)
                          RETURNING detail_id`
)

type lineItemRepository struct {
	storage *Storage
}

func (r *lineItemRepository) Add(ctx context.Context, item model.LineItem) (*model.LineItem, error) {
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if err := ensureExists(ctx, tx, orderExistsQuery, "order", item.OrderID); err != nil {
			return err
		}
		if err := ensureExists(ctx, tx, productExistsQuery, "product", item.ProductID); err != nil {
			return err
		}
		if err := tx.QueryRow(ctx, insertDetailQuery, item.OrderID, item.ProductID, item.Quantity, item.Price).Scan(&item.ID); err != nil {
			return storageError("insert line item", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *lineItemRepository) AddBatch(ctx context.Context, orderID int64, items []model.DraftItem) (int, error) {
	written := 0
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if err := ensureExists(ctx, tx, orderExistsQuery, "order", orderID); err != nil {
			return err
		}
		for i, it := range items {
			if err := ensureExists(ctx, tx, productExistsQuery, "product", it.ProductID); err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
			var id int64
			if err := tx.QueryRow(ctx, insertDetailQuery, orderID, it.ProductID, it.Quantity, it.UnitPrice).Scan(&id); err != nil {
				return fmt.Errorf("item %d: %w", i, storageError("insert line item", err))
			}
			written++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if r.storage.logger != nil {
		r.storage.logger.Debug("line items written", "order_id", orderID, "count", written)
	}
	return written, nil
}

func (r *lineItemRepository) ListByOrder(ctx context.Context, orderID int64) ([]model.LineItem, error) {
	const query = `SELECT detail_id, order_id, product_id, quantity, price
                   FROM order_details WHERE order_id=$1 ORDER BY detail_id`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, storageError("list line items", err)
	}
	defer rows.Close()

	result := []model.LineItem{}
	for rows.Next() {
		var li model.LineItem
		if err := rows.Scan(&li.ID, &li.OrderID, &li.ProductID, &li.Quantity, &li.Price); err != nil {
			return nil, storageError("scan line item", err)
		}
		result = append(result, li)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("list line items", err)
	}
	return result, nil
}
