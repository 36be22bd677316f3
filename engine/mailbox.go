package engine

import "sync/atomic"

// HandMailbox is a single-slot, last-write-wins hand snapshot
// The producer swaps in a whole new slice; the frame loop reads one reference per frame
type HandMailbox struct {
	slot atomic.Pointer[[]HandZone]
}

// Store replaces the snapshot with zones built from points, indexed in delivery order
func (m *HandMailbox) Store(points []Point) {
	zones := make([]HandZone, len(points))
	for i, p := range points {
		zones[i] = HandZone{X: p.X, Y: p.Y, Index: i}
	}
	m.slot.Store(&zones)
}

// Load returns the latest snapshot, nil if nothing was delivered
// The returned slice is never mutated after Store
func (m *HandMailbox) Load() []HandZone {
	if p := m.slot.Load(); p != nil {
		return *p
	}
	return nil
}

// Clear drops the current snapshot
func (m *HandMailbox) Clear() {
	m.slot.Store(nil)
}
