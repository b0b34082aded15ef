// modules/tools/module_test.go
package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChristosMaragkos/ItemFactory/internal/item"
	"github.com/ChristosMaragkos/ItemFactory/internal/registry"
)

func TestPack_RegistersTools(t *testing.T) {
	t.Parallel()

	reg := registry.New()
	require.NoError(t, (&Pack{}).Register(reg))

	pick, err := registry.ItemAs[*Tool](reg, "tools:iron_pickaxe")
	require.NoError(t, err)
	assert.Equal(t, 250, pick.Durability)

	// A tool is not a plain definition.
	_, err = registry.ItemAs[*item.Definition](reg, "tools:iron_pickaxe")
	assert.ErrorIs(t, err, registry.ErrInvalidCast)
}
