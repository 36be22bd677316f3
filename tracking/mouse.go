package tracking

import (
	"context"
	"sync/atomic"

	"github.com/lixenwraith/palm-bounce/engine"
)

// MouseDetector reports the terminal pointer as a single hand
// The event loop feeds it positions already converted to canvas space
type MouseDetector struct {
	pos atomic.Pointer[engine.Point]
}

// NewMouseDetector creates a detector with no pointer present
func NewMouseDetector() *MouseDetector {
	return &MouseDetector{}
}

// Move records the pointer position inside the canvas
func (m *MouseDetector) Move(p engine.Point) {
	m.pos.Store(&p)
}

// Leave records that the pointer is outside the canvas
func (m *MouseDetector) Leave() {
	m.pos.Store(nil)
}

// Init always succeeds; terminals without mouse reporting simply never call Move
func (m *MouseDetector) Init(context.Context) error {
	return nil
}

// Detect returns the pointer as hand 0, or no hands
func (m *MouseDetector) Detect(context.Context) ([]engine.Point, error) {
	if p := m.pos.Load(); p != nil {
		return []engine.Point{*p}, nil
	}
	return []engine.Point{}, nil
}

// Close is a no-op
func (m *MouseDetector) Close() error {
	return nil
}
