package system

import (
	"fmt"
	"sort"
)

var builders = map[string]func(Params) *System{
	"qubit":  Qubit,
	"driven": Driven,
	"cavity": Cavity,
}

// Get builds the named system with the given parameters.
func Get(name string, p Params) (*System, error) {
	b, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown system: %s (available: %v)", name, List())
	}
	return b(p), nil
}

// List returns the available system names, sorted.
func List() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
