package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/palm-bounce/constants"
	"github.com/lixenwraith/palm-bounce/core"
	"github.com/lixenwraith/palm-bounce/status"
)

// FrameScheduler drives Engine.Tick on a fixed frame interval, one frame at a time
// The loop deregisters itself when the match ends and is re-registered by the next Start
type FrameScheduler struct {
	engine   *Engine
	clock    TimeProvider
	interval time.Duration
	onFrame  func(Snapshot)

	// mu serializes engine access between the frame loop and callers
	mu       sync.Mutex
	running  bool
	stopChan chan struct{}
	done     chan struct{}

	statFrames *atomic.Int64
	statFPS    *status.Gauge
}

// NewFrameScheduler creates a stopped scheduler; onFrame receives every frame's snapshot and may be nil
func NewFrameScheduler(engine *Engine, clock TimeProvider, interval time.Duration, onFrame func(Snapshot), reg *status.Registry) *FrameScheduler {
	if reg == nil {
		reg = status.NewRegistry()
	}
	if interval <= 0 {
		interval = constants.FrameInterval
	}
	return &FrameScheduler{
		engine:     engine,
		clock:      clock,
		interval:   interval,
		onFrame:    onFrame,
		statFrames: reg.Counter(constants.MetricFrames),
		statFPS:    reg.Gauge(constants.MetricFPS),
	}
}

// Start begins a new match and registers the frame loop if none is pending
// Returns ErrMatchInProgress without side effects while a match is running
func (fs *FrameScheduler) Start() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := fs.engine.Start(); err != nil {
		return err
	}

	if !fs.running {
		prev := fs.done
		fs.running = true
		fs.stopChan = make(chan struct{})
		fs.done = make(chan struct{})
		stop, done := fs.stopChan, fs.done
		core.Go(func() {
			// The previous loop may still be delivering its final frame
			if prev != nil {
				<-prev
			}
			fs.frameLoop(stop, done)
		})
	}
	return nil
}

// Stop deregisters the pending frame and waits for the loop to exit
// Must not be called from onFrame
func (fs *FrameScheduler) Stop() {
	fs.mu.Lock()
	if !fs.running {
		fs.mu.Unlock()
		return
	}
	fs.running = false
	close(fs.stopChan)
	done := fs.done
	fs.mu.Unlock()

	<-done
}

// Running reports whether a frame loop is registered
func (fs *FrameScheduler) Running() bool {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.running
}

// Snapshot returns the current world, serialized with frame execution
func (fs *FrameScheduler) Snapshot() Snapshot {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.engine.Snapshot()
}

// Deliver forwards a hand snapshot to the engine mailbox
func (fs *FrameScheduler) Deliver(points []Point) {
	fs.engine.Deliver(points)
}

func (fs *FrameScheduler) frameLoop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(fs.interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			if dt := now.Sub(last); dt > 0 {
				fs.statFPS.Set(float64(time.Second) / float64(dt))
			}
			last = now

			if !fs.step(stop) {
				return
			}
		}
	}
}

// step runs one frame and reports whether the loop stays registered
func (fs *FrameScheduler) step(stop <-chan struct{}) bool {
	fs.mu.Lock()
	// Stop may have won the lock between the tick and here
	select {
	case <-stop:
		fs.mu.Unlock()
		return false
	default:
	}

	phase := fs.engine.Tick(fs.clock.Now())
	snap := fs.engine.Snapshot()
	keep := phase.Active()
	if !keep {
		fs.running = false
	}
	fs.mu.Unlock()

	fs.statFrames.Add(1)
	if fs.onFrame != nil {
		fs.onFrame(snap)
	}
	return keep
}
