// Package blob stores uploaded nursery images. The API hands the rest of
// the system a public URL and keeps the bytes out of the record store.
package blob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type Store interface {
	// Put writes the image bytes under a name scoped to the nursery and
	// returns the URL it will be served from.
	Put(ctx context.Context, nurseryID, fileName string, data []byte) (string, error)
}

// DiskStore keeps images on the local filesystem under dir and serves
// them from baseURL/images/.
type DiskStore struct {
	dir     string
	baseURL string
}

func NewDiskStore(dir, baseURL string) *DiskStore {
	return &DiskStore{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}
}

func (s *DiskStore) Put(ctx context.Context, nurseryID, fileName string, data []byte) (string, error) {
	name := sanitize(nurseryID) + "/" + sanitize(fileName)

	path := filepath.Join(s.dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("blob put: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("blob put: %w", err)
	}

	return s.baseURL + "/images/" + name, nil
}

// Dir is the root the HTTP layer serves /images/ from.
func (s *DiskStore) Dir() string { return s.dir }

// sanitize strips anything that could escape the storage directory.
func sanitize(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(filepath.Clean("/" + name))
	if name == "/" || name == "." {
		return "unnamed"
	}
	return strings.ReplaceAll(name, ":", "_")
}
