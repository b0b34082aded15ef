// Package schema declares the HCL block structures for content manifest
// files. Manifests are the declarative face of a mod: each `item` block
// describes one item definition to register.
package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// SettingsBlock represents the `settings` block within an item,
// carrying the gameplay attributes the framework understands natively.
type SettingsBlock struct {
	MaxStack  *int  `hcl:"max_stack,optional"`
	Flammable *bool `hcl:"flammable,optional"`
}

// AttributesBlock represents the open `attributes` block. Its contents
// are mod-defined and are evaluated into cty values as-is.
type AttributesBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// ItemBlock represents one `item "namespace" "name" { ... }` block from
// a content manifest.
type ItemBlock struct {
	Namespace   string           `hcl:"namespace,label"`
	Name        string           `hcl:"name,label"`
	Description string           `hcl:"description,optional"`
	Settings    *SettingsBlock   `hcl:"settings,block"`
	Attributes  *AttributesBlock `hcl:"attributes,block"`
}

// ContentConfig represents the top-level structure of a content
// manifest file, containing all item definitions it contributes.
type ContentConfig struct {
	Items []*ItemBlock `hcl:"item,block"`
	Body  hcl.Body     `hcl:",remain"`
}
