package status

import "sync/atomic"

// Registry groups the process metrics written by the scheduler and read on exit
// Writers cache pointers at construction and store directly into the atomics
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Gauges *MetricMap[Gauge]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Gauges: NewMetricMap[Gauge](),
	}
}

// TotalCount returns the number of registered metrics of all kinds
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Gauges.Count()
}

// Dump returns one sorted "key=value" line per integer metric, then last and
// peak lines per gauge
func (r *Registry) Dump() []string {
	lines := make([]string, 0, r.Ints.Count()+2*r.Gauges.Count())
	r.Ints.Each(func(key string, ptr *atomic.Int64) {
		lines = append(lines, formatInt(key, ptr.Load()))
	})
	r.Gauges.Each(func(key string, g *Gauge) {
		lines = append(lines, formatFloat(key, g.Last()), formatFloat(key+".peak", g.Peak()))
	})
	return lines
}
