package testutils

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateFiles creates files in dir whose content is their own name
func CreateFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	for _, name := range names {
		err := os.WriteFile(filepath.Join(dir, name), []byte(name), 0644)
		require.NoError(t, err)
	}
}

// CreateBook creates a book directory under root holding the given files
func CreateBook(t *testing.T, root, book string, names ...string) string {
	t.Helper()
	dir := filepath.Join(root, book)
	CreateFiles(t, dir, names...)
	return dir
}

// ListNames returns the sorted names of the entries directly inside dir
func ListNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

// ReadContent returns the content of dir/name
func ReadContent(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	return string(data)
}
