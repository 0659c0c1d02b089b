package blob

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStorePut(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskStore(dir, "http://localhost:9000/")

	url, err := store.Put(context.Background(), "nursery:abc", "front.png", []byte("pngbytes"))
	require.NoError(t, err)

	// Colons in the record id are not filesystem-friendly.
	assert.Equal(t, "http://localhost:9000/images/nursery_abc/front.png", url)

	written, err := os.ReadFile(filepath.Join(dir, "nursery_abc", "front.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("pngbytes"), written)
}

func TestDiskStorePutOverwrites(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskStore(dir, "http://localhost:9000")

	_, err := store.Put(context.Background(), "nursery:abc", "front.png", []byte("old"))
	require.NoError(t, err)
	_, err = store.Put(context.Background(), "nursery:abc", "front.png", []byte("new"))
	require.NoError(t, err)

	written, err := os.ReadFile(filepath.Join(dir, "nursery_abc", "front.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), written)
}

func TestSanitizeBlocksPathEscapes(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"front.png", "front.png"},
		{"../../etc/passwd", "passwd"},
		{"..\\..\\evil.exe", "evil.exe"},
		{"nursery:abc", "nursery_abc"},
		{"", "unnamed"},
		{"..", "unnamed"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, sanitize(tc.in), "sanitize(%q)", tc.in)
	}
}
