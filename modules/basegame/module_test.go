// modules/basegame/module_test.go
package basegame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChristosMaragkos/ItemFactory/internal/item"
	"github.com/ChristosMaragkos/ItemFactory/internal/registry"
)

func TestPack_RegistersBaseItems(t *testing.T) {
	t.Parallel()

	reg := registry.New()
	require.NoError(t, (&Pack{}).Register(reg))

	assert.Equal(t,
		[]string{"base:stone", "base:stick", "base:apple", "base:iron_ingot"},
		reg.Identifiers())

	stick, err := registry.ItemAs[*item.Definition](reg, "base:stick")
	require.NoError(t, err)
	assert.True(t, stick.Settings().Flammable)
	assert.Equal(t, item.MaxStackDefault, stick.Settings().MaxStack)
}
