// Package assets loads tile textures and the vehicle model from an asset
// filesystem and caches raw file contents.
package assets

import (
	"fmt"
	"io/fs"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/ElliotMtb/battlefield-hexagons/internal/logger"
)

// Manager reads assets from a filesystem rooted at the asset directory.
type Manager struct {
	fsys  fs.FS
	cache *Cache
	log   *zap.Logger
}

// NewManager creates an asset manager over fsys.
func NewManager(fsys fs.FS) *Manager {
	return &Manager{
		fsys:  fsys,
		cache: NewCache(),
		log:   logger.Named("assets"),
	}
}

// NewDirManager creates an asset manager over a directory on disk.
func NewDirManager(root string) *Manager {
	return NewManager(os.DirFS(root))
}

// Load reads a file, serving repeated reads from the cache.
func (m *Manager) Load(name string) ([]byte, error) {
	if data, ok := m.cache.Get(name); ok {
		return data, nil
	}

	data, err := fs.ReadFile(m.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading asset %s: %w", name, err)
	}
	m.cache.Set(name, data)
	m.log.Debug("asset loaded", zap.String("name", name), zap.Int("bytes", len(data)))
	return data, nil
}

// Close drops all cached data.
func (m *Manager) Close() {
	hits, misses := m.cache.Stats()
	m.log.Debug("asset cache cleared",
		zap.Int("entries", m.cache.Len()),
		zap.Int("hits", hits),
		zap.Int("misses", misses),
	)
	m.cache.Clear()
}

// Stats reports cache hits and misses.
func (m *Manager) Stats() (hits, misses int) {
	return m.cache.Stats()
}

// Cache is a simple in-memory cache for loaded assets.
type Cache struct {
	data map[string][]byte
	mu   sync.Mutex

	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.data)
}

// Clear empties the cache and resets statistics.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
