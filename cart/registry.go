package cart

import (
	"path/filepath"
	"sync"
)

// Registry hands out one Manager per cart id. A cart id corresponds to one
// browser profile; each manager owns its own file store and notifier, so
// two carts never observe each other's signals.
type Registry struct {
	mu       sync.Mutex
	dir      string
	managers map[string]*Manager
}

func NewRegistry(dir string) *Registry {
	return &Registry{
		dir:      dir,
		managers: make(map[string]*Manager),
	}
}

// Manager returns the manager for id, creating it on first use.
func (r *Registry) Manager(id string) *Manager {
	r.mu.Lock()
	defer r.mu.Unlock()

	if m, ok := r.managers[id]; ok {
		return m
	}

	store := NewFileStore(filepath.Join(r.dir, filepath.Base(id)+".json"))
	m := NewManager(store, NewNotifier())
	r.managers[id] = m
	return m
}
