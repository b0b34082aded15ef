// Package tools is a compiled-in content pack that registers its own
// concrete item type. The registry only sees the Item capability, so a
// Tool lives alongside plain definitions under the same identifier
// scheme and comes back out via typed lookup.
package tools

import (
	"fmt"

	"github.com/ChristosMaragkos/ItemFactory/internal/registry"
)

// Tool is an item with durability. It satisfies item.Item without
// embedding item.Definition.
type Tool struct {
	namespace  string
	name       string
	Durability int
}

// NewTool constructs a tool item.
func NewTool(namespace, name string, durability int) *Tool {
	return &Tool{namespace: namespace, name: name, Durability: durability}
}

// Namespace returns the namespace part of the tool's identifier.
func (t *Tool) Namespace() string { return t.namespace }

// Name returns the name part of the tool's identifier.
func (t *Tool) Name() string { return t.name }

// Pack implements the registry.Pack interface for this package.
type Pack struct{}

// Register contributes the tool items to the registry.
func (p *Pack) Register(r *registry.Registry) error {
	tools := []*Tool{
		NewTool("tools", "iron_pickaxe", 250),
		NewTool("tools", "iron_axe", 250),
		NewTool("tools", "wooden_shovel", 59),
	}

	for _, tool := range tools {
		if _, err := r.Register(tool); err != nil {
			return fmt.Errorf("tools: registering %s:%s: %w", tool.Namespace(), tool.Name(), err)
		}
	}
	return nil
}
