package geometries

import (
	"fmt"
	"sort"
	"sync"

	"github.com/jwaiton/nexus/exception"
)

// Factory creates an unconfigured builder.
type Factory func() Geometry

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{}
)

// Register makes a builder available by name. It panics if the name is
// taken or the factory is nil.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if factory == nil {
		panic("geometries: Register factory is nil")
	}
	if _, dup := registry[name]; dup {
		panic(fmt.Sprintf("geometries: Register called twice for %s", name))
	}
	registry[name] = factory
}

// New creates a registered builder.
func New(name string) (Geometry, error) {
	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, exception.New("[Geometries]", "New()", exception.ErrUnknownGeometry,
			"geometry %q is not registered, known geometries: %v", name, Names())
	}
	return factory(), nil
}

// Names returns the registered geometry names, sorted.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
