// internal/registry/registry.go
package registry

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/ChristosMaragkos/ItemFactory/internal/identifier"
	"github.com/ChristosMaragkos/ItemFactory/internal/item"
)

// Registry holds all registered items for a single application instance,
// keyed by canonical identifier. The zero value is not usable; construct
// instances with New.
type Registry struct {
	mu     sync.RWMutex
	policy ConflictPolicy
	items  map[string]item.Item
	order  []string
	sealed atomic.Bool
}

// Option modifies a Registry under construction.
type Option func(*Registry)

// WithConflictPolicy sets the policy applied to identifier collisions.
// The default is KeepExisting.
func WithConflictPolicy(p ConflictPolicy) Option {
	return func(r *Registry) { r.policy = p }
}

// New creates an empty registry with the provided options.
func New(opts ...Option) *Registry {
	r := &Registry{
		policy: KeepExisting,
		items:  make(map[string]item.Item),
	}
	for _, fn := range opts {
		fn(r)
	}
	return r
}

// ConflictPolicy returns the active conflict policy.
func (r *Registry) ConflictPolicy() ConflictPolicy {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.policy
}

// SetConflictPolicy changes the policy used for future collisions only.
// Items already resolved under the previous policy are not revisited.
func (r *Registry) SetConflictPolicy(p ConflictPolicy) {
	r.mu.Lock()
	r.policy = p
	r.mu.Unlock()
}

// Register adds an item under its computed identifier. On the first
// registration of an identifier the submitted item is returned and
// becomes the canonical instance. On a collision the outcome depends on
// the active ConflictPolicy:
//
//   - KeepExisting returns the previously registered item, not the
//     argument. Callers wanting their own instance back must check.
//   - Overwrite replaces the stored item and returns the argument.
//   - RemoveBoth deletes the identifier and returns nil, nil; the
//     previously registered item is no longer reachable through the
//     registry either.
//
// A failed registration leaves the registry exactly as it was.
func (r *Registry) Register(it item.Item) (item.Item, error) {
	if r.sealed.Load() {
		return nil, ErrSealed
	}
	if it == nil {
		return nil, fmt.Errorf("%w: nil item", ErrInvalidIdentifier)
	}
	id := identifier.FromItem(it)
	if err := id.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidIdentifier, err)
	}
	key := id.String()

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[key]
	if !ok {
		r.items[key] = it
		r.order = append(r.order, key)
		return it, nil
	}

	switch r.policy {
	case KeepExisting:
		return existing, nil
	case Overwrite:
		// The key keeps its original slot in listing order.
		r.items[key] = it
		return it, nil
	case RemoveBoth:
		delete(r.items, key)
		r.dropFromOrder(key)
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPolicy, r.policy)
	}
}

// Get returns the item registered under rawID.
func (r *Registry) Get(rawID string) (item.Item, error) {
	if strings.TrimSpace(rawID) == "" {
		return nil, fmt.Errorf("%w: blank identifier", ErrInvalidIdentifier)
	}

	r.mu.RLock()
	it, ok := r.items[rawID]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, rawID)
	}
	return it, nil
}

// Has reports whether an item is registered under rawID.
func (r *Registry) Has(rawID string) bool {
	r.mu.RLock()
	_, ok := r.items[rawID]
	r.mu.RUnlock()
	return ok
}

// Len returns the number of registered items.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// Items returns a snapshot of all registered items in registration
// order. Intended for diagnostics and test assertions.
func (r *Registry) Items() []item.Item {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]item.Item, 0, len(r.order))
	for _, key := range r.order {
		items = append(items, r.items[key])
	}
	return items
}

// Identifiers returns a snapshot of all registered identifiers in
// registration order.
func (r *Registry) Identifiers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

// Clear empties the registry. It exists to give tests a clean starting
// point; production startup never calls it.
func (r *Registry) Clear() {
	r.mu.Lock()
	r.items = make(map[string]item.Item)
	r.order = nil
	r.mu.Unlock()
}

// Sealed reports whether the registry refuses further registrations.
func (r *Registry) Sealed() bool { return r.sealed.Load() }

// Seal closes the registration phase: subsequent Register calls fail
// with ErrSealed. Idempotent; returns true if this call changed the
// state from unsealed to sealed.
func (r *Registry) Seal() bool { return !r.sealed.Swap(true) }

// dropFromOrder removes key from the insertion-order index.
// Callers must hold the write lock.
func (r *Registry) dropFromOrder(key string) {
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			return
		}
	}
}
