package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/inventory/internal/domain/model"
	"github.com/polkiloo/inventory/internal/domain/repository"
	"github.com/polkiloo/inventory/internal/draft"
)

// ComposerUseCase drives order composition: items are staged in a draft and
// written to the order in one step on commit.
type ComposerUseCase struct {
	drafts *draft.Registry
	orders repository.OrderRepository
	items  repository.LineItemRepository
}

// NewComposerUseCase constructs ComposerUseCase.
func NewComposerUseCase(drafts *draft.Registry, orders repository.OrderRepository, items repository.LineItemRepository) *ComposerUseCase {
	return &ComposerUseCase{drafts: drafts, orders: orders, items: items}
}

// Open starts an empty draft for an existing order.
func (u *ComposerUseCase) Open(ctx context.Context, orderID int64) (uuid.UUID, error) {
	if _, err := u.orders.GetByID(ctx, orderID); err != nil {
		return uuid.Nil, err
	}
	handle, _ := u.drafts.Open(orderID)
	return handle, nil
}

// AddItem stages an item. Storage is not touched.
func (u *ComposerUseCase) AddItem(handle uuid.UUID, productID int64, quantity int, unitPrice float64) error {
	d, err := u.drafts.Get(handle)
	if err != nil {
		return err
	}
	return d.Add(model.DraftItem{ProductID: productID, Quantity: quantity, UnitPrice: unitPrice})
}

// Staged returns the staged items in staging order.
func (u *ComposerUseCase) Staged(handle uuid.UUID) ([]model.DraftItem, error) {
	d, err := u.drafts.Get(handle)
	if err != nil {
		return nil, err
	}
	return d.Items(), nil
}

// Summary returns aggregate figures of the staged items.
func (u *ComposerUseCase) Summary(handle uuid.UUID) (draft.Summary, error) {
	d, err := u.drafts.Get(handle)
	if err != nil {
		return draft.Summary{}, err
	}
	return d.Summary(), nil
}

// OrderID returns the order a draft was opened against.
func (u *ComposerUseCase) OrderID(handle uuid.UUID) (int64, error) {
	d, err := u.drafts.Get(handle)
	if err != nil {
		return 0, err
	}
	return d.OrderID(), nil
}

// Commit writes every staged item to orderID in one transaction and empties
// the draft. On failure the items remain staged.
func (u *ComposerUseCase) Commit(ctx context.Context, handle uuid.UUID, orderID int64) (int, error) {
	d, err := u.drafts.Get(handle)
	if err != nil {
		return 0, err
	}
	return d.Commit(ctx, orderID, u.items)
}

// Discard empties the draft without writing anything.
func (u *ComposerUseCase) Discard(handle uuid.UUID) error {
	d, err := u.drafts.Get(handle)
	if err != nil {
		return err
	}
	return d.Discard()
}

// Close drops the draft behind handle.
func (u *ComposerUseCase) Close(handle uuid.UUID) {
	u.drafts.Close(handle)
}

// Sweep removes expired drafts.
func (u *ComposerUseCase) Sweep() int {
	return u.drafts.Sweep()
}
