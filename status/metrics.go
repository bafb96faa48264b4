package status

import (
	"maps"
	"math"
	"slices"
	"sync"
	"sync/atomic"
)

// Gauge is a float64 readable and writable without locks
// Zero value reads 0
type Gauge struct {
	bits atomic.Uint64
}

func (g *Gauge) Set(v float64) { g.bits.Store(math.Float64bits(v)) }
func (g *Gauge) Get() float64  { return math.Float64frombits(g.bits.Load()) }

// Smooth moves the gauge toward v by factor alpha in (0, 1]
func (g *Gauge) Smooth(v, alpha float64) {
	for {
		old := g.bits.Load()
		cur := math.Float64frombits(old)
		next := cur + alpha*(v-cur)
		if cur == 0 {
			next = v
		}
		if g.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return
		}
	}
}

// MetricMap lazily creates one metric of type T per name
// Lookups after creation only take the read lock; hot paths should cache the pointer
type MetricMap[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{items: make(map[string]*T)}
}

// Get returns the metric for name, creating it on first use
func (m *MetricMap[T]) Get(name string) *T {
	m.mu.RLock()
	ptr, ok := m.items[name]
	m.mu.RUnlock()
	if ok {
		return ptr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if ptr, ok := m.items[name]; ok {
		return ptr
	}
	ptr = new(T)
	m.items[name] = ptr
	return ptr
}

// Has reports whether name was ever requested
func (m *MetricMap[T]) Has(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.items[name]
	return ok
}

// Each visits metrics in name order
func (m *MetricMap[T]) Each(fn func(name string, v *T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, name := range slices.Sorted(maps.Keys(m.items)) {
		fn(name, m.items[name])
	}
}

func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// Registry groups counters and gauges for one run
type Registry struct {
	Counters *MetricMap[atomic.Int64]
	Gauges   *MetricMap[Gauge]
}

func NewRegistry() *Registry {
	return &Registry{
		Counters: NewMetricMap[atomic.Int64](),
		Gauges:   NewMetricMap[Gauge](),
	}
}

// Values flattens every metric into a name to value map
func (r *Registry) Values() map[string]float64 {
	out := make(map[string]float64, r.Counters.Count()+r.Gauges.Count())
	r.Counters.Each(func(name string, v *atomic.Int64) { out[name] = float64(v.Load()) })
	r.Gauges.Each(func(name string, g *Gauge) { out[name] = g.Get() })
	return out
}
