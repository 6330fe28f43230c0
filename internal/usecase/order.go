package usecase

import (
	"context"
	"fmt"

	domainErrors "github.com/polkiloo/inventory/internal/domain/errors"
	"github.com/polkiloo/inventory/internal/domain/model"
	"github.com/polkiloo/inventory/internal/domain/repository"
)

// OrderUseCase manages order headers.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// Create validates and stores a new order header. Nothing is written when
// validation fails.
func (u *OrderUseCase) Create(ctx context.Context, orderType model.OrderType, date string, counterpartyID int64, totalAmount float64) (*model.Order, error) {
	order := model.Order{
		Type:           orderType,
		Date:           date,
		CounterpartyID: counterpartyID,
		TotalAmount:    totalAmount,
	}
	if err := ValidateOrder(order); err != nil {
		return nil, err
	}
	return u.orders.Create(ctx, order)
}

// Get returns the order with id.
func (u *OrderUseCase) Get(ctx context.Context, id int64) (*model.Order, error) {
	if id < 1 {
		return nil, fmt.Errorf("order %d: %w", id, domainErrors.ErrNotFound)
	}
	return u.orders.GetByID(ctx, id)
}

// List returns all orders by id.
func (u *OrderUseCase) List(ctx context.Context) ([]model.Order, error) {
	return u.orders.List(ctx)
}

// Update replaces the header fields of an existing order.
func (u *OrderUseCase) Update(ctx context.Context, order model.Order) error {
	if err := ValidateOrder(order); err != nil {
		return err
	}
	return u.orders.Update(ctx, order)
}

// Delete removes an order and its line items.
func (u *OrderUseCase) Delete(ctx context.Context, id int64) error {
	return u.orders.Delete(ctx, id)
}
