package commands

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps command names and aliases to commands.
type Registry struct {
	mu     sync.RWMutex
	lookup map[string]Command // names and aliases
	sorted []Command          // one entry per command, ordered by name
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{lookup: make(map[string]Command)}
}

// Register adds c under its name and aliases. No word may be taken twice,
// and an alias may not repeat the command's own name.
func (r *Registry) Register(c Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	words := append([]string{c.Name()}, c.Aliases()...)
	for i, w := range words {
		if i > 0 && w == c.Name() {
			return fmt.Errorf("command alias shadows its name: %s", w)
		}
		if prev, taken := r.lookup[w]; taken {
			return fmt.Errorf("%q already registered by command %s", w, prev.Name())
		}
	}
	for _, w := range words {
		r.lookup[w] = c
	}

	i := sort.Search(len(r.sorted), func(i int) bool { return r.sorted[i].Name() >= c.Name() })
	r.sorted = append(r.sorted, nil)
	copy(r.sorted[i+1:], r.sorted[i:])
	r.sorted[i] = c
	return nil
}

// Find resolves a command name or alias.
func (r *Registry) Find(word string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.lookup[word]
	return c, ok
}

// All returns every command once, sorted by name.
func (r *Registry) All() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Command(nil), r.sorted...)
}

// DefaultRegistry is filled by the init function of each command file.
var DefaultRegistry = NewRegistry()

// Register adds c to DefaultRegistry and panics on a conflict.
func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}
