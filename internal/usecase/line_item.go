package usecase

import (
	"context"

	"github.com/polkiloo/inventory/internal/domain/model"
	"github.com/polkiloo/inventory/internal/domain/repository"
)

// LineItemUseCase writes and reads individual order_details rows.
type LineItemUseCase struct {
	items repository.LineItemRepository
}

// NewLineItemUseCase constructs LineItemUseCase.
func NewLineItemUseCase(items repository.LineItemRepository) *LineItemUseCase {
	return &LineItemUseCase{items: items}
}

// Add stores one line item against an existing order.
func (u *LineItemUseCase) Add(ctx context.Context, orderID, productID int64, quantity int, price float64) (*model.LineItem, error) {
	item := model.LineItem{OrderID: orderID, ProductID: productID, Quantity: quantity, Price: price}
	if err := ValidateLineItem(item); err != nil {
		return nil, err
	}
	return u.items.Add(ctx, item)
}

// List returns the items of an order in insertion order.
func (u *LineItemUseCase) List(ctx context.Context, orderID int64) ([]model.LineItem, error) {
	return u.items.ListByOrder(ctx, orderID)
}
