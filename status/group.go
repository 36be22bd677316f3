package status

import (
	"sort"
	"sync"
)

// Group is a named set of metrics of type T
// Lookup takes a lock; callers cache the returned pointer and update it lock-free
type Group[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

// NewGroup creates an empty Group
func NewGroup[T any]() *Group[T] {
	return &Group[T]{items: make(map[string]*T)}
}

// Get returns the metric registered under name, creating it on first use
func (g *Group[T]) Get(name string) *T {
	g.mu.RLock()
	ptr, ok := g.items[name]
	g.mu.RUnlock()
	if ok {
		return ptr
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if ptr, ok := g.items[name]; ok {
		return ptr
	}
	ptr = new(T)
	g.items[name] = ptr
	return ptr
}

// Each visits metrics in name order
func (g *Group[T]) Each(fn func(name string, ptr *T)) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	names := make([]string, 0, len(g.items))
	for name := range g.items {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fn(name, g.items[name])
	}
}

// Len returns the number of registered metrics
func (g *Group[T]) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.items)
}
