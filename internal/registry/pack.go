// internal/registry/pack.go
package registry

// Pack is the interface compiled-in content packs implement to
// contribute their items during the registration phase.
type Pack interface {
	Register(r *Registry) error
}
