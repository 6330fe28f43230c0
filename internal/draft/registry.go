package draft

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/inventory/internal/domain/errors"
)

// Registry owns the drafts of all open composition sessions. Each draft is
// reachable only through the handle returned by Open.
type Registry struct {
	mu       sync.Mutex
	drafts   map[uuid.UUID]*Draft
	ttl      time.Duration
	maxItems int
	now      func() time.Time
}

// NewRegistry creates a registry expiring drafts idle for longer than ttl.
// A non-positive ttl disables expiry, a non-positive maxItems disables the cap.
func NewRegistry(ttl time.Duration, maxItems int) *Registry {
	return &Registry{
		drafts:   make(map[uuid.UUID]*Draft),
		ttl:      ttl,
		maxItems: maxItems,
		now:      time.Now,
	}
}

// Open starts an empty draft for orderID.
func (r *Registry) Open(orderID int64) (uuid.UUID, *Draft) {
	d := newDraft(orderID, r.maxItems, r.now)
	handle := uuid.New()

	r.mu.Lock()
	r.drafts[handle] = d
	r.mu.Unlock()
	return handle, d
}

// Get resolves a handle. Expired drafts are dropped and reported as not found.
func (r *Registry) Get(handle uuid.UUID) (*Draft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.drafts[handle]
	if !ok {
		return nil, fmt.Errorf("draft %s: %w", handle, domainErrors.ErrNotFound)
	}
	if r.expired(d) {
		delete(r.drafts, handle)
		return nil, fmt.Errorf("draft %s expired: %w", handle, domainErrors.ErrNotFound)
	}
	return d, nil
}

// Close forgets a draft without persisting it.
func (r *Registry) Close(handle uuid.UUID) {
	r.mu.Lock()
	delete(r.drafts, handle)
	r.mu.Unlock()
}

// Sweep removes expired drafts and returns how many were removed.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for handle, d := range r.drafts {
		if r.expired(d) {
			delete(r.drafts, handle)
			removed++
		}
	}
	return removed
}

// Len returns the number of open drafts.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.drafts)
}

func (r *Registry) expired(d *Draft) bool {
	if r.ttl <= 0 {
		return false
	}
	return r.now().Sub(d.idleSince()) > r.ttl
}
