// internal/item/definition.go
package item

import (
	"github.com/zclconf/go-cty/cty"
)

// Definition is the standard concrete item type. Manifest-loaded content
// and most compiled-in packs use it directly; mods with richer behavior
// define their own Item implementations instead.
type Definition struct {
	namespace   string
	name        string
	description string
	settings    Settings
	attributes  map[string]cty.Value
}

// New constructs a Definition from its identifier parts and settings.
func New(namespace, name string, settings Settings) *Definition {
	return &Definition{
		namespace: namespace,
		name:      name,
		settings:  settings,
	}
}

// Namespace returns the namespace part of the item's identifier.
func (d *Definition) Namespace() string { return d.namespace }

// Name returns the name part of the item's identifier.
func (d *Definition) Name() string { return d.name }

// Description returns the optional human-readable description.
func (d *Definition) Description() string { return d.description }

// WithDescription sets the description and returns the definition for
// chaining during construction.
func (d *Definition) WithDescription(desc string) *Definition {
	d.description = desc
	return d
}

// Settings returns the gameplay attributes of the item.
func (d *Definition) Settings() Settings { return d.settings }

// Attribute looks up a mod-defined extension attribute by key.
func (d *Definition) Attribute(key string) (cty.Value, bool) {
	v, ok := d.attributes[key]
	return v, ok
}

// SetAttribute stores a mod-defined extension attribute. Attributes are
// opaque to the framework; manifests populate them from their
// `attributes` block.
func (d *Definition) SetAttribute(key string, value cty.Value) {
	if d.attributes == nil {
		d.attributes = make(map[string]cty.Value)
	}
	d.attributes[key] = value
}
