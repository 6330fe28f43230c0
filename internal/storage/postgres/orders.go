package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/inventory/internal/domain/errors"
	"github.com/polkiloo/inventory/internal/domain/model"
)

const orderColumns = `order_id, order_type, order_date, customer_or_supplier_id, total_amount`

type orderRepository struct {
	storage *Storage
}

func (r *orderRepository) Create(ctx context.Context, order model.Order) (*model.Order, error) {
	const query = `INSERT INTO orders (order_type, order_date, customer_or_supplier_id, total_amount)
                   VALUES ($1, $2, $3, $4)
                   RETURNING order_id`
	err := r.storage.pool.QueryRow(ctx, query, string(order.Type), order.Date, order.CounterpartyID, order.TotalAmount).Scan(&order.ID)
	if err != nil {
		return nil, storageError("create order", err)
	}
	return &order, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE order_id=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("order %d: %w", id, domainErrors.ErrNotFound)
		}
		return nil, storageError("get order", err)
	}
	return order, nil
}

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders ORDER BY order_id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, storageError("list orders", err)
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, storageError("scan order", err)
		}
		result = append(result, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("list orders", err)
	}
	return result, nil
}

func (r *orderRepository) Update(ctx context.Context, order model.Order) error {
	const query = `UPDATE orders
                   SET order_type=$1, order_date=$2, customer_or_supplier_id=$3, total_amount=$4
                   WHERE order_id=$5`
	tag, err := r.storage.pool.Exec(ctx, query, string(order.Type), order.Date, order.CounterpartyID, order.TotalAmount, order.ID)
	if err != nil {
		return storageError("update order", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order %d: %w", order.ID, domainErrors.ErrNotFound)
	}
	return nil
}

// Delete removes the order header together with its line items.
func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM order_details WHERE order_id=$1`, id); err != nil {
			return storageError("delete line items", err)
		}
		tag, err := tx.Exec(ctx, `DELETE FROM orders WHERE order_id=$1`, id)
		if err != nil {
			return storageError("delete order", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("order %d: %w", id, domainErrors.ErrNotFound)
		}
		return nil
	})
}

func scanOrder(row pgx.Row) (*model.Order, error) {
	var (
		o         model.Order
		orderType string
	)
	if err := row.Scan(&o.ID, &orderType, &o.Date, &o.CounterpartyID, &o.TotalAmount); err != nil {
		return nil, err
	}
	o.Type = model.OrderType(orderType)
	return &o, nil
}
