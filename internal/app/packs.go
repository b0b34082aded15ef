package app

import (
	"github.com/ChristosMaragkos/ItemFactory/internal/registry"
	"github.com/ChristosMaragkos/ItemFactory/modules/basegame"
	"github.com/ChristosMaragkos/ItemFactory/modules/tools"
)

// corePacks is the definitive list of content packs that are compiled
// into the binary. They register before any manifest is loaded.
var corePacks = []registry.Pack{
	&basegame.Pack{},
	&tools.Pack{},
}
