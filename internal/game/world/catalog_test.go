package world

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_RegisterAndLookup(t *testing.T) {
	catalog := NewCatalog()
	require.NoError(t, catalog.Register(Item{Name: "lamp", Effect: EffectLight}))

	item, ok := catalog.Lookup("lamp")
	require.True(t, ok)
	assert.Equal(t, EffectLight, item.Effect)

	_, ok = catalog.Lookup("sword")
	assert.False(t, ok)
}

func TestCatalog_Register_EmptyName(t *testing.T) {
	catalog := NewCatalog()
	assert.Error(t, catalog.Register(Item{}))
}

func TestCatalog_Register_Duplicate(t *testing.T) {
	catalog := NewCatalog()
	require.NoError(t, catalog.Register(Item{Name: "lamp"}))
	assert.Error(t, catalog.Register(Item{Name: "lamp"}))
}

func TestLoadCatalogFromDir(t *testing.T) {
	dir := t.TempDir()
	content := `
- name: lamp
  effect: light
- name: flint
  combines_with: steel
  replaced_by: fire
- name: steel
  combines_with: flint
  replaced_by: fire
- name: fire
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "items.yaml"), []byte(content), 0o644))

	catalog, err := LoadCatalogFromDir(dir)
	require.NoError(t, err)
	assert.Equal(t, 4, catalog.Len())

	flint, ok := catalog.Lookup("flint")
	require.True(t, ok)
	assert.Equal(t, "steel", flint.CombinesWith)
	assert.Equal(t, "fire", flint.ReplacedBy)
}

func TestLoadCatalogFromDir_SkipsNonYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not yaml"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "items.yml"), []byte("- name: lamp\n"), 0o644))

	catalog, err := LoadCatalogFromDir(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, catalog.Len())
}

func TestLoadCatalogFromDir_UnknownEffect(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "items.yaml"),
		[]byte("- name: horn\n  effect: deafen\n"), 0o644))

	_, err := LoadCatalogFromDir(dir)
	assert.Error(t, err)
}

func TestLoadCatalogFromDir_DuplicateAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte("- name: lamp\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yaml"), []byte("- name: lamp\n"), 0o644))

	_, err := LoadCatalogFromDir(dir)
	assert.Error(t, err)
}

func TestLoadCatalogFromDir_MissingDir(t *testing.T) {
	_, err := LoadCatalogFromDir(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}
