// internal/registry/policy.go
package registry

import "fmt"

// ConflictPolicy governs the outcome when a registration computes an
// identifier that already exists in the registry.
type ConflictPolicy int

const (
	// KeepExisting leaves the registry unchanged on a collision; the
	// registration call returns the previously registered item.
	KeepExisting ConflictPolicy = iota

	// Overwrite replaces the existing item with the newly submitted one.
	// The identifier keeps its original position in listing order.
	Overwrite

	// RemoveBoth deletes the identifier entirely: neither the existing
	// nor the new item remains registered under it.
	RemoveBoth
)

// String returns the canonical flag spelling of the policy.
func (p ConflictPolicy) String() string {
	switch p {
	case KeepExisting:
		return "keep-existing"
	case Overwrite:
		return "overwrite"
	case RemoveBoth:
		return "remove-both"
	default:
		return fmt.Sprintf("ConflictPolicy(%d)", int(p))
	}
}

// ParsePolicy converts the flag spelling of a conflict policy into its
// enum value.
func ParsePolicy(s string) (ConflictPolicy, error) {
	switch s {
	case "keep-existing":
		return KeepExisting, nil
	case "overwrite":
		return Overwrite, nil
	case "remove-both":
		return RemoveBoth, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedPolicy, s)
	}
}
