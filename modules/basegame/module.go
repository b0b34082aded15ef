// Package basegame is the compiled-in content pack providing the items
// every installation starts with.
package basegame

import (
	"fmt"

	"github.com/ChristosMaragkos/ItemFactory/internal/item"
	"github.com/ChristosMaragkos/ItemFactory/internal/registry"
)

// Pack implements the registry.Pack interface for this package.
type Pack struct{}

// Register contributes the base items to the registry.
func (p *Pack) Register(r *registry.Registry) error {
	defs := []*item.Definition{
		item.New("base", "stone", item.DefaultSettings()).
			WithDescription("An unremarkable chunk of rock."),
		item.New("base", "stick", item.Settings{MaxStack: item.MaxStackDefault, Flammable: true}).
			WithDescription("Burns well. Pokes better."),
		item.New("base", "apple", item.Settings{MaxStack: 16, Flammable: true}),
		item.New("base", "iron_ingot", item.DefaultSettings()),
	}

	for _, def := range defs {
		if _, err := r.Register(def); err != nil {
			return fmt.Errorf("basegame: registering %s:%s: %w", def.Namespace(), def.Name(), err)
		}
	}
	return nil
}
