package adapter

import (
	"os"

	m "mutman.dev/pkg/mutman/internal/model"
)

// DefaultCachePath is where mutmut persists its mutation cache relative
// to the project directory. The format is owned by the tool; mutman
// only checks for the file and removes it.
const DefaultCachePath = ".mutmut-cache"

// CacheAdapter abstracts access to the tool's on-disk mutation cache
// for the clean fallback path.
type CacheAdapter interface {
	// Exists reports whether a cache file is present at path.
	Exists(path m.Path) bool

	// Remove deletes the cache file at path.
	Remove(path m.Path) error
}

// LocalCacheAdapter operates on the local filesystem.
type LocalCacheAdapter struct{}

// NewLocalCacheAdapter constructs a LocalCacheAdapter.
func NewLocalCacheAdapter() *LocalCacheAdapter {
	return &LocalCacheAdapter{}
}

// Exists reports whether a cache file is present at path.
func (a *LocalCacheAdapter) Exists(path m.Path) bool {
	info, err := os.Stat(string(path))

	return err == nil && !info.IsDir()
}

// Remove deletes the cache file at path.
func (a *LocalCacheAdapter) Remove(path m.Path) error {
	return os.Remove(string(path))
}
