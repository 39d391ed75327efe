package source

import (
	"fmt"
	"sort"
)

// Constructor builds a Source from backend configuration.
type Constructor func(cfg Config) (Source, error)

var registry = map[string]Constructor{}

// Register adds a source constructor under the given type name.
func Register(name string, ctor Constructor) {
	registry[name] = ctor
}

// New builds the source configured by cfg.Type.
func New(cfg Config) (Source, error) {
	ctor, ok := registry[cfg.Type]
	if !ok {
		return nil, fmt.Errorf("unknown source type: %s (have %v)", cfg.Type, Types())
	}
	return ctor(cfg)
}

// Types returns the names of all registered source backends, sorted.
func Types() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
