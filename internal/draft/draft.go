package draft

import (
	"context"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/inventory/internal/domain/errors"
	"github.com/polkiloo/inventory/internal/domain/model"
)

// Sink persists a batch of staged items against an order.
type Sink interface {
	AddBatch(ctx context.Context, orderID int64, items []model.DraftItem) (int, error)
}

// Summary aggregates staged items for display.
type Summary struct {
	Items    int
	Quantity int
	Subtotal decimal.Decimal
}

var errCommitInFlight = fmt.Errorf("%w: draft is being committed", domainErrors.ErrValidation)

// Draft stages line items for a single order until they are committed or
// discarded. The zero value is not usable; drafts are created by a Registry.
type Draft struct {
	mu         sync.Mutex
	orderID    int64
	items      []model.DraftItem
	maxItems   int
	committing bool

	// lastUsed holds unix nanoseconds and is read without mu.
	lastUsed atomic.Int64
	now      func() time.Time
}

func newDraft(orderID int64, maxItems int, now func() time.Time) *Draft {
	d := &Draft{orderID: orderID, maxItems: maxItems, now: now}
	d.touch()
	return d
}

func (d *Draft) touch() {
	d.lastUsed.Store(d.now().UnixNano())
}

// OrderID returns the order the draft was opened against.
func (d *Draft) OrderID() int64 {
	return d.orderID
}

// Add validates and appends an item. Storage is not touched.
func (d *Draft) Add(item model.DraftItem) error {
	if err := ValidateItem(item); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.touch()

	if d.committing {
		return errCommitInFlight
	}
	if d.maxItems > 0 && len(d.items) >= d.maxItems {
		return fmt.Errorf("%w: draft holds at most %d items", domainErrors.ErrValidation, d.maxItems)
	}
	d.items = append(d.items, item)
	return nil
}

// Items returns a copy of the staged items in staging order.
func (d *Draft) Items() []model.DraftItem {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.touch()

	out := make([]model.DraftItem, len(d.items))
	copy(out, d.items)
	return out
}

// Len returns the number of staged items.
func (d *Draft) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.items)
}

// Summary returns item count, total quantity and subtotal of staged items.
func (d *Draft) Summary() Summary {
	d.mu.Lock()
	defer d.mu.Unlock()

	s := Summary{Items: len(d.items), Subtotal: decimal.Zero}
	for _, it := range d.items {
		s.Quantity += it.Quantity
		line := decimal.NewFromFloat(it.UnitPrice).Mul(decimal.NewFromInt(int64(it.Quantity)))
		s.Subtotal = s.Subtotal.Add(line)
	}
	return s
}

// Discard drops every staged item. It fails while a commit is in flight.
func (d *Draft) Discard() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.touch()

	if d.committing {
		return errCommitInFlight
	}
	d.items = nil
	return nil
}

// Commit hands all staged items to sink in staging order and empties the
// draft on success. On failure the items stay staged. The draft is unlocked
// while sink runs; Add, Discard and a second Commit are refused meanwhile.
func (d *Draft) Commit(ctx context.Context, orderID int64, sink Sink) (int, error) {
	batch, err := d.beginCommit(orderID)
	if err != nil {
		return 0, err
	}

	written, err := sink.AddBatch(ctx, orderID, batch)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.committing = false
	d.touch()
	if err != nil {
		return 0, err
	}
	d.items = nil
	return written, nil
}

func (d *Draft) beginCommit(orderID int64) ([]model.DraftItem, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.touch()

	if orderID != d.orderID {
		return nil, fmt.Errorf("%w: draft belongs to order %d, not %d", domainErrors.ErrValidation, d.orderID, orderID)
	}
	if d.committing {
		return nil, errCommitInFlight
	}
	if len(d.items) == 0 {
		return nil, domainErrors.ErrEmptyDraft
	}

	batch := make([]model.DraftItem, len(d.items))
	copy(batch, d.items)
	d.committing = true
	return batch, nil
}

func (d *Draft) idleSince() time.Time {
	return time.Unix(0, d.lastUsed.Load())
}

// ValidateItem checks a staged item before it enters a draft.
func ValidateItem(item model.DraftItem) error {
	switch {
	case item.ProductID < 1 || item.ProductID > math.MaxInt32:
		return fmt.Errorf("%w: product id out of range", domainErrors.ErrValidation)
	case item.Quantity < 1 || int64(item.Quantity) > math.MaxInt32:
		return fmt.Errorf("%w: quantity must be between 1 and %d", domainErrors.ErrValidation, math.MaxInt32)
	case math.IsNaN(item.UnitPrice) || math.IsInf(item.UnitPrice, 0) || item.UnitPrice < 0:
		return fmt.Errorf("%w: unit price must be a non-negative number", domainErrors.ErrValidation)
	}
	return nil
}
