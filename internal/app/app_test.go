package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChristosMaragkos/ItemFactory/internal/item"
	"github.com/ChristosMaragkos/ItemFactory/internal/registry"
)

func testConfig(t *testing.T, contentPath, policy string) *Config {
	t.Helper()
	cfg, err := NewConfig(Config{
		ContentPath:    contentPath,
		ConflictPolicy: policy,
		LogFormat:      "text",
		LogLevel:       "error",
	})
	require.NoError(t, err)
	return cfg
}

func TestNewConfig_RequiresContentPath(t *testing.T) {
	t.Parallel()

	_, err := NewConfig(Config{ConflictPolicy: "keep-existing"})
	require.Error(t, err)
}

func TestNewApp_RegistersCorePacks(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	a, err := NewApp(out, testConfig(t, t.TempDir(), "keep-existing"))
	require.NoError(t, err)

	assert.True(t, a.Registry().Has("base:stone"))
	assert.True(t, a.Registry().Has("tools:iron_pickaxe"))
}

func TestNewApp_InvalidPolicy(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	_, err := NewApp(out, testConfig(t, t.TempDir(), "merge"))
	require.ErrorIs(t, err, registry.ErrUnsupportedPolicy)
}

func TestRun_LoadsManifestsAndPrintsSummary(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	manifest := `
item "mymod" "widget" {
  settings {
    max_stack = 8
  }
}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mod.hcl"), []byte(manifest), 0600))

	out := &bytes.Buffer{}
	a, err := NewApp(out, testConfig(t, dir, "keep-existing"))
	require.NoError(t, err)
	require.NoError(t, a.Run(context.Background()))

	assert.True(t, a.Registry().Has("mymod:widget"))
	assert.Contains(t, out.String(), "mymod:widget")
	assert.Contains(t, out.String(), "base:stone")
}

func TestRun_ManifestOverridesPackItem(t *testing.T) {
	t.Parallel()

	// base:apple ships flammable; a mod overrides it under Overwrite.
	dir := t.TempDir()
	manifest := `
item "base" "apple" {
  settings {
    max_stack = 64
    flammable = false
  }
}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "override.hcl"), []byte(manifest), 0600))

	out := &bytes.Buffer{}
	a, err := NewApp(out, testConfig(t, dir, "overwrite"))
	require.NoError(t, err)
	require.NoError(t, a.Run(context.Background()))

	got, err := registry.ItemAs[*item.Definition](a.Registry(), "base:apple")
	require.NoError(t, err)
	assert.False(t, got.Settings().Flammable)
	assert.Equal(t, 64, got.Settings().MaxStack)
}
