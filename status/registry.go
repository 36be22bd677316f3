package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Registry holds the process metrics shown on the debug line
// Components fetch their pointers once at construction and write atomics directly
type Registry struct {
	Counters *Group[atomic.Int64]
	Gauges   *Group[Gauge]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Counters: NewGroup[atomic.Int64](),
		Gauges:   NewGroup[Gauge](),
	}
}

// Counter returns the named counter
func (r *Registry) Counter(name string) *atomic.Int64 {
	return r.Counters.Get(name)
}

// Gauge returns the named gauge
func (r *Registry) Gauge(name string) *Gauge {
	return r.Gauges.Get(name)
}

// Line formats every metric as "name=value" pairs, counters first
func (r *Registry) Line() string {
	parts := make([]string, 0, r.Counters.Len()+r.Gauges.Len())
	r.Counters.Each(func(name string, c *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", name, c.Load()))
	})
	r.Gauges.Each(func(name string, g *Gauge) {
		parts = append(parts, fmt.Sprintf("%s=%.1f", name, g.Get()))
	})
	return strings.Join(parts, " ")
}
