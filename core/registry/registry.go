package registry

import (
	"reflect"
	"sync"
)

// Registry answers type-keyed service lookups. Implementations must treat
// "not registered" as a normal outcome and must be safe for concurrent reads.
type Registry interface {
	// Get returns the instance registered for the given type, if any.
	Get(t reflect.Type) (any, bool)
}

// Map is the in-memory Registry implementation. Services are registered during
// application setup and read concurrently at request time.
type Map struct {
	mu       sync.RWMutex
	services map[reflect.Type]any
}

// New creates an empty service registry.
func New() *Map {
	return &Map{services: make(map[reflect.Type]any)}
}

// Get implements Registry.
func (m *Map) Get(t reflect.Type) (any, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.services[t]
	return v, ok
}

// Set registers an instance under an explicit type key, replacing any previous
// registration for that key. Prefer the type-safe Register helper.
func (m *Map) Set(t reflect.Type, v any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.services[t] = v
}

// Register registers v under the type key T. Interface type parameters are
// supported: Register[io.Writer](m, buf) keys the entry by the interface type,
// not by the concrete type of buf.
func Register[T any](m *Map, v T) {
	m.Set(reflect.TypeFor[T](), v)
}

// Lookup resolves the instance registered under the type key T.
// It returns the zero value and false when nothing is registered.
func Lookup[T any](r Registry) (T, bool) {
	var zero T
	if r == nil {
		return zero, false
	}
	v, ok := r.Get(reflect.TypeFor[T]())
	if !ok {
		return zero, false
	}
	typed, ok := v.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}
