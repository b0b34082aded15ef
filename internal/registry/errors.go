// internal/registry/errors.go
package registry

import "errors"

var (
	// ErrInvalidIdentifier indicates a blank or whitespace-only
	// identifier, either computed from an item at registration or
	// supplied to a lookup. Always a caller bug.
	ErrInvalidIdentifier = errors.New("registry: invalid identifier")

	// ErrNotFound indicates a lookup for an identifier with no
	// registered item.
	ErrNotFound = errors.New("registry: item not found")

	// ErrInvalidCast indicates a registered item whose runtime type does
	// not match the type a lookup requested.
	ErrInvalidCast = errors.New("registry: item type mismatch")

	// ErrUnsupportedPolicy indicates a conflict policy outside the known
	// variants. Unreachable under correct configuration.
	ErrUnsupportedPolicy = errors.New("registry: unsupported conflict policy")

	// ErrSealed indicates an attempt to register after Seal.
	ErrSealed = errors.New("registry: sealed registry")
)
