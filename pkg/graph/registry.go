package graph

import (
	"sort"
	"sync"
)

var (
	nodeRegistry = make(map[string]Node)
	registryMu   sync.RWMutex
)

// Register registers a node under its Name. Registering a node with a name
// that is already taken replaces the previous registration.
func Register(n Node) {
	registryMu.Lock()
	defer registryMu.Unlock()
	nodeRegistry[n.Name()] = n
}

// Deregister removes a node from the registry.
func Deregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(nodeRegistry, name)
}

// Get returns the registered node with the given name.
func Get(name string) (Node, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	n, ok := nodeRegistry[name]
	return n, ok
}

// Names returns the sorted names of all registered nodes.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(nodeRegistry))
	for name := range nodeRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
