package tracking

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/palm-bounce/constants"
	"github.com/lixenwraith/palm-bounce/core"
	"github.com/lixenwraith/palm-bounce/engine"
	"github.com/lixenwraith/palm-bounce/status"
)

// Tracker polls a Detector on a fixed interval and hands each result to deliver
// It runs independently of the frame loop; the only shared state is the engine mailbox behind deliver
type Tracker struct {
	detector Detector
	deliver  func([]engine.Point)
	interval time.Duration

	setupOnce sync.Once
	ready     bool

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	running atomic.Bool

	statSnapshots *atomic.Int64
	statErrors    *atomic.Int64
}

// NewTracker creates a stopped tracker
func NewTracker(detector Detector, deliver func([]engine.Point), interval time.Duration, reg *status.Registry) *Tracker {
	if reg == nil {
		reg = status.NewRegistry()
	}
	if interval <= 0 {
		interval = constants.DetectInterval
	}
	return &Tracker{
		detector:      detector,
		deliver:       deliver,
		interval:      interval,
		statSnapshots: reg.Counter(constants.MetricSnapshots),
		statErrors:    reg.Counter(constants.MetricDetectErrs),
	}
}

// Setup initializes the detector once and reports whether it is usable
// A failure is logged once and never retried; later calls return the same result
func (t *Tracker) Setup(ctx context.Context) bool {
	t.setupOnce.Do(func() {
		if err := t.detector.Init(ctx); err != nil {
			log.Printf("[tracking] setup failed, continuing without hands: %v", err)
			return
		}
		log.Printf("[tracking] detector initialized")
		t.ready = true
	})
	return t.ready
}

// Start launches the polling task; no-op if not set up or already running
func (t *Tracker) Start() {
	if !t.Setup(context.Background()) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.running.CompareAndSwap(false, true) {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.cancel = cancel
	t.done = make(chan struct{})
	done := t.done
	core.Go(func() { t.pollLoop(ctx, done) })
}

// Stop cancels the polling task and waits for it to exit
func (t *Tracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.running.CompareAndSwap(true, false) {
		return
	}
	t.cancel()
	<-t.done
}

// Running reports whether the polling task is active
func (t *Tracker) Running() bool {
	return t.running.Load()
}

// Close stops polling and releases the detector
func (t *Tracker) Close() error {
	t.Stop()
	return t.detector.Close()
}

func (t *Tracker) pollLoop(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		t.poll(ctx)

		// Next cycle is scheduled after detection finishes, a slow detector lowers the rate
		timer.Reset(t.interval)
	}
}

// poll runs one detection cycle; errors are swallowed so the engine keeps its previous snapshot
func (t *Tracker) poll(ctx context.Context) {
	points, err := t.detector.Detect(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		if n := t.statErrors.Add(1); n == 1 || n%100 == 0 {
			log.Printf("[tracking] detection error (%d total): %v", n, err)
		}
		return
	}
	t.statSnapshots.Add(1)
	t.deliver(points)
}
