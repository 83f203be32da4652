package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type item struct {
	Name string `json:"name"`
}

func TestFileStore_LoadCreatesMissingFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	store := NewFileStore(dir, false, zap.NewNop())
	fallback := []item{{Name: "seed"}}

	var got []item
	require.NoError(t, store.Load("items.json", fallback, &got))
	assert.Equal(t, fallback, got)

	raw, err := os.ReadFile(filepath.Join(dir, "items.json"))
	require.NoError(t, err)
	assert.Equal(t, "[\n  {\n    \"name\": \"seed\"\n  }\n]", string(raw))

	got[0].Name = "changed"
	assert.Equal(t, "seed", fallback[0].Name, "Load must hand out a copy of the fallback")
}

func TestFileStore_LoadReadsExistingFile(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir, false, zap.NewNop())
	require.NoError(t, os.WriteFile(filepath.Join(dir, "items.json"), []byte(`[{"name":"disk"}]`), 0o644))

	var got []item
	require.NoError(t, store.Load("items.json", []item{{Name: "seed"}}, &got))
	assert.Equal(t, []item{{Name: "disk"}}, got)
}

func TestFileStore_LoadCorruptFileFallsBack(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir, false, zap.NewNop())
	path := filepath.Join(dir, "items.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))

	var got []item
	require.NoError(t, store.Load("items.json", []item{{Name: "seed"}}, &got))
	assert.Equal(t, []item{{Name: "seed"}}, got)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{not json`, string(raw), "corrupt file is left as is")
}

func TestFileStore_ReadOnlyNeverTouchesDisk(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	store := NewFileStore(dir, true, zap.NewNop())

	var got []item
	require.NoError(t, store.Load("items.json", []item{{Name: "seed"}}, &got))
	assert.Equal(t, []item{{Name: "seed"}}, got)

	store.Save("items.json", []item{{Name: "new"}})

	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
	assert.True(t, store.ReadOnly())
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir, false, zap.NewNop())

	store.Save("items.json", []item{{Name: "a"}})
	store.Save("items.json", []item{{Name: "b"}})

	var got []item
	require.NoError(t, store.Load("items.json", nil, &got))
	assert.Equal(t, []item{{Name: "b"}}, got)
}
