package sqlite

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONDocRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")

	in := map[string]int{"a": 1, "b": 2}
	require.NoError(t, writeJSONDoc(path, in))

	var out map[string]int
	require.NoError(t, readJSONDoc(path, &out))
	assert.Equal(t, in, out)
}

func TestReadJSONDocMissing(t *testing.T) {
	var out map[string]int
	err := readJSONDoc(filepath.Join(t.TempDir(), "absent.json"), &out)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestReadJSONDocCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte("{truncated"), 0o644))

	var out map[string]int
	err := readJSONDoc(path, &out)
	assert.ErrorIs(t, err, errCorruptDocument)
}

func TestWriteJSONDocLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, writeJSONDoc(filepath.Join(dir, "doc.json"), []int{1, 2, 3}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "doc.json", entries[0].Name())
}

func TestRemoveDoc(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))

	require.NoError(t, removeDoc(path))
	_, err := os.Stat(path)
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	// Missing file is not an error.
	assert.NoError(t, removeDoc(path))
}
