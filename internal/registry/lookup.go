// internal/registry/lookup.go
package registry

import (
	"fmt"

	"github.com/ChristosMaragkos/ItemFactory/internal/item"
)

// ItemAs looks up rawID and narrows the registered item to T. A blank
// identifier fails with ErrInvalidIdentifier, a missing one with
// ErrNotFound, and a registered item of an incompatible runtime type
// with ErrInvalidCast.
func ItemAs[T item.Item](r *Registry, rawID string) (T, error) {
	var zero T

	it, err := r.Get(rawID)
	if err != nil {
		return zero, err
	}

	typed, ok := it.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %q is registered as %T", ErrInvalidCast, rawID, it)
	}
	return typed, nil
}

// RegisterAs registers it and narrows the resolved item back to T.
// Under KeepExisting the resolved item may be the previously registered
// one; when its runtime type is not T the zero value is returned with a
// nil error rather than failing, so callers must check the result.
// Under RemoveBoth the zero value is returned for the same reason:
// the collision left nothing registered.
func RegisterAs[T item.Item](r *Registry, it T) (T, error) {
	var zero T

	res, err := r.Register(it)
	if err != nil {
		return zero, err
	}
	if res == nil {
		return zero, nil
	}

	typed, ok := res.(T)
	if !ok {
		return zero, nil
	}
	return typed, nil
}
