package status

import (
	"maps"
	"slices"
	"sync"
)

// MetricMap holds named metrics of type T behind stable pointers
// Writers cache the pointer once and update it without touching the map
type MetricMap[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

// NewMetricMap creates an empty MetricMap
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{items: make(map[string]*T)}
}

// Get returns the metric for key, registering it on first use
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.RLock()
	ptr, ok := m.items[key]
	m.mu.RUnlock()
	if ok {
		return ptr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if ptr, ok := m.items[key]; ok {
		return ptr
	}
	ptr = new(T)
	m.items[key] = ptr
	return ptr
}

// Has reports whether key was registered
func (m *MetricMap[T]) Has(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.items[key]
	return ok
}

// Keys returns the registered names in sorted order
func (m *MetricMap[T]) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Sorted(maps.Keys(m.items))
}

// Each calls fn for every metric in key order
func (m *MetricMap[T]) Each(fn func(key string, ptr *T)) {
	for _, k := range m.Keys() {
		fn(k, m.Get(k))
	}
}

// Count returns the number of registered metrics
func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
