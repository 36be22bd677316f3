package tracking

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/palm-bounce/constants"
	"github.com/lixenwraith/palm-bounce/engine"
)

// ErrDetection is returned for trace frames recorded as failed detections
var ErrDetection = errors.New("detection failed")

// Trace is a recorded sequence of camera frames
type Trace struct {
	// FrameWidth is the camera frame width used for mirroring
	FrameWidth float64      `yaml:"frame_width"`
	Frames     []TraceFrame `yaml:"frames"`
}

// TraceFrame is one detection cycle
type TraceFrame struct {
	Hands []TraceHand `yaml:"hands"`
	Error bool        `yaml:"error,omitempty"`
}

// TraceHand is one detected hand's landmarks
type TraceHand struct {
	Keypoints []Keypoint `yaml:"keypoints"`
}

// LoadTrace reads and validates a YAML trace file
func LoadTrace(path string) (*Trace, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read trace: %w", err)
	}
	return ParseTrace(b)
}

// ParseTrace decodes and validates trace YAML
func ParseTrace(b []byte) (*Trace, error) {
	var tr Trace
	if err := yaml.Unmarshal(b, &tr); err != nil {
		return nil, fmt.Errorf("decode trace: %w", err)
	}
	if err := tr.Validate(); err != nil {
		return nil, err
	}
	return &tr, nil
}

// Validate checks that every hand carries the palm landmarks
// A missing frame width defaults to the canvas width
func (tr *Trace) Validate() error {
	if tr.FrameWidth < 0 {
		return fmt.Errorf("invalid frame_width %v", tr.FrameWidth)
	}
	if tr.FrameWidth == 0 {
		tr.FrameWidth = constants.CanvasWidth
	}
	if len(tr.Frames) == 0 {
		return errors.New("trace has no frames")
	}

	need := 0
	for _, idx := range constants.PalmKeypoints {
		need = max(need, idx+1)
	}
	for fi, f := range tr.Frames {
		for hi, h := range f.Hands {
			if len(h.Keypoints) < need {
				return fmt.Errorf("frame %d hand %d: %d keypoints, need at least %d", fi, hi, len(h.Keypoints), need)
			}
		}
	}
	return nil
}

// TraceDetector replays a recorded trace, one frame per Detect call
type TraceDetector struct {
	path string
	loop bool

	mu    sync.Mutex
	trace *Trace
	next  int
}

// NewTraceDetector creates a detector for the trace at path; the file is read in Init
func NewTraceDetector(path string, loop bool) *TraceDetector {
	return &TraceDetector{path: path, loop: loop}
}

// NewTraceDetectorFrom creates a detector over an already loaded trace
func NewTraceDetectorFrom(tr *Trace, loop bool) *TraceDetector {
	return &TraceDetector{trace: tr, loop: loop}
}

// Init loads the trace file if not already loaded
func (d *TraceDetector) Init(context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.trace != nil {
		return nil
	}
	tr, err := LoadTrace(d.path)
	if err != nil {
		return err
	}
	d.trace = tr
	return nil
}

// Detect advances one frame and returns its mirrored palm centers
// After the last frame the trace restarts when looping, otherwise reports no hands
func (d *TraceDetector) Detect(ctx context.Context) ([]engine.Point, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.trace == nil {
		return nil, errors.New("trace not initialized")
	}
	if d.next >= len(d.trace.Frames) {
		if !d.loop {
			return []engine.Point{}, nil
		}
		d.next = 0
	}

	frame := d.trace.Frames[d.next]
	d.next++

	if frame.Error {
		return nil, fmt.Errorf("frame %d: %w", d.next-1, ErrDetection)
	}

	points := make([]engine.Point, 0, len(frame.Hands))
	for _, h := range frame.Hands {
		p, ok := PalmCenter(h.Keypoints)
		if !ok {
			continue
		}
		p.X = Mirror(p.X, d.trace.FrameWidth)
		points = append(points, p)
	}
	return points, nil
}

// Done reports whether a non-looping trace has been fully replayed
func (d *TraceDetector) Done() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.trace != nil && !d.loop && d.next >= len(d.trace.Frames)
}

// Close is a no-op
func (d *TraceDetector) Close() error {
	return nil
}
