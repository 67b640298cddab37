// Package cache keeps parsed trees in memory so repeated reads of the
// same file skip re-parsing. Entries are invalidated by file modification
// time and size.
package cache

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/mholzen/treekit/pkg/tree"
	"github.com/mholzen/treekit/pkg/treeyaml"
)

type entry struct {
	modTime time.Time
	size    int64
	root    tree.Node[string]
}

// TreeCache maps file paths to their parsed trees. Safe for concurrent
// use.
type TreeCache struct {
	mu      sync.Mutex
	entries map[string]entry
}

func NewTreeCache() *TreeCache {
	return &TreeCache{entries: make(map[string]entry)}
}

// Load returns the tree parsed from path, reusing the cached parse when
// the file has not changed. The returned tree is a private copy; callers
// may mutate it freely.
func (c *TreeCache) Load(path string) (tree.Node[string], error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot stat %s: %w", path, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if cached, ok := c.entries[path]; ok {
		if cached.modTime.Equal(info.ModTime()) && cached.size == info.Size() {
			slog.Debug("cache hit", "path", path)
			return tree.Clone(cached.root), nil
		}
		slog.Debug("cache stale", "path", path)
	}

	root, err := treeyaml.DecodeFile(path)
	if err != nil {
		return nil, err
	}
	c.entries[path] = entry{modTime: info.ModTime(), size: info.Size(), root: root}
	slog.Debug("cache fill", "path", path)
	return tree.Clone(root), nil
}

// Invalidate drops the entry for path, if any.
func (c *TreeCache) Invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, path)
}

func (c *TreeCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
