// Package filemgr resolves source file paths to arena.FileRef handles
// and caches their parsed SourceView/AST so a unit is never parsed
// twice (spec §3.1's FileRef, §6.3's file-level driver contract).
// Grounded on the now-removed teacher internal/units UnitCache API
// shape (NewUnitCache/Put/Get/Size), rebuilt here against the new
// handle-based store instead of pointer-based ASTs.
package filemgr

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/swglang/swc/internal/arena"
)

// Unit is one resolved, loaded compilation unit.
type Unit struct {
	Name string // import/unit name, not necessarily the basename
	Path string
	Src  []byte
	Root arena.AstNodeRef // set once parsing completes; Invalid until then
}

// Cache maps unit names to their loaded Unit and hands out stable
// FileRefs. Safe for concurrent use by parallel parse jobs.
type Cache struct {
	mu        sync.RWMutex
	byName    map[string]arena.FileRef
	units     []*Unit
	searchDir []string
}

// NewCache builds an empty cache. searchDirs are consulted in order by
// Resolve for bare unit names (spec §6.3's unit search path).
func NewCache(searchDirs ...string) *Cache {
	return &Cache{byName: make(map[string]arena.FileRef), searchDir: searchDirs}
}

// Put registers name as backed by path/src and returns its FileRef,
// reusing the existing ref if name was already registered.
func (c *Cache) Put(name, path string, src []byte) arena.FileRef {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ref, ok := c.byName[name]; ok {
		return ref
	}
	c.units = append(c.units, &Unit{Name: name, Path: path, Src: src})
	ref := arena.FileRef(len(c.units))
	c.byName[name] = ref
	return ref
}

// Get resolves a FileRef to its Unit.
func (c *Cache) Get(ref arena.FileRef) (*Unit, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	idx := int(ref) - 1
	if idx < 0 || idx >= len(c.units) {
		return nil, false
	}
	return c.units[idx], true
}

// Lookup resolves a unit name to its ref, without touching disk.
func (c *Cache) Lookup(name string) (arena.FileRef, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ref, ok := c.byName[name]
	return ref, ok
}

// SetRoot records the parsed AST root for a file once parsing
// completes (spec §6.3: the driver publishes this under the sema
// job's WaitDeclared dependency).
func (c *Cache) SetRoot(ref arena.FileRef, root arena.AstNodeRef) {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := int(ref) - 1
	if idx >= 0 && idx < len(c.units) {
		c.units[idx].Root = root
	}
}

// Size returns the number of registered units.
func (c *Cache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.units)
}

// Resolve finds the file backing a bare unit name by walking
// searchDir in order, reading it from disk and registering it. It is
// a no-op if name is already registered.
func (c *Cache) Resolve(name string) (arena.FileRef, error) {
	if ref, ok := c.Lookup(name); ok {
		return ref, nil
	}
	for _, dir := range c.searchDir {
		for _, ext := range []string{".swg", ".swgs"} {
			candidate := filepath.Join(dir, name+ext)
			src, err := os.ReadFile(candidate)
			if err == nil {
				return c.Put(name, candidate, src), nil
			}
		}
	}
	return 0, fmt.Errorf("filemgr: unit %q not found in search path", name)
}
