// internal/item/item.go

// Package item defines the capability contract registrable content must
// satisfy, together with the standard Definition type most content packs
// and manifests produce. The registry depends only on the Item
// interface; everything else in this package is caller-side plumbing.
package item

// Item is the contract the registry depends on: a namespace and a name
// from which the canonical `namespace:name` identifier is derived.
// Content packs are free to register their own item types as long as
// they satisfy this interface.
type Item interface {
	Namespace() string
	Name() string
}
