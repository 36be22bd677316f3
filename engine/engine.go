package engine

import (
	"errors"
	"math"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/palm-bounce/constants"
	"github.com/lixenwraith/palm-bounce/status"
)

// ErrMatchInProgress is returned by Start while a countdown or match is running
var ErrMatchInProgress = errors.New("match in progress")

// MatchState is the scoring and lifecycle state of the current match
type MatchState struct {
	Phase        Phase
	Countdown    float64   // Seconds remaining, fractional
	ElapsedScore int       // Whole seconds survived since StartTime
	TouchScore   int       // Successful paddle hits
	StartTime    time.Time // Set on the CountingDown -> Playing transition
	Summary      Summary   // Valid once Phase is Over
}

// Snapshot is the per-frame export consumed by renderers and audio cues
type Snapshot struct {
	Frame            int64
	Width, Height    float64
	Phase            Phase
	Balls            []Ball
	Hands            []HandZone
	Countdown        float64
	CountdownDisplay int // Whole seconds shown on the overlay
	ElapsedScore     int
	TouchScore       int
	Hits             int // Hits applied during the last frame
	Over             bool
	Summary          Summary
}

// Engine owns all mutable match state and advances it one frame per Tick
// Tick, Start and Snapshot must be called from one goroutine at a time; Deliver is safe from any goroutine
type Engine struct {
	width, height float64

	balls   []Ball
	hands   []HandZone
	mailbox HandMailbox
	state   MatchState

	frame    int64
	lastHits int

	statHits *atomic.Int64
}

// NewEngine creates an Idle engine on the fixed canvas
func NewEngine(reg *status.Registry) *Engine {
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Engine{
		width:    constants.CanvasWidth,
		height:   constants.CanvasHeight,
		balls:    newBallPool(),
		state:    MatchState{Phase: PhaseIdle},
		statHits: reg.Counter(constants.MetricHits),
	}
}

// Deliver replaces the hand snapshot; this is the hand source callback
func (e *Engine) Deliver(points []Point) {
	e.mailbox.Store(points)
}

// Start begins the countdown from Idle or Over, resetting scores, balls and hands
func (e *Engine) Start() error {
	if e.state.Phase.Active() {
		return ErrMatchInProgress
	}

	e.balls = newBallPool()
	e.mailbox.Clear()
	e.hands = nil
	e.lastHits = 0
	e.state = MatchState{
		Phase:     PhaseCountingDown,
		Countdown: constants.CountdownDuration,
	}
	return nil
}

// Tick advances one frame and returns the phase after it
// Idle and Over frames are no-ops
func (e *Engine) Tick(now time.Time) Phase {
	if !e.state.Phase.Active() {
		return e.state.Phase
	}

	e.frame++
	e.lastHits = 0
	e.hands = e.mailbox.Load()

	switch e.state.Phase {
	case PhaseCountingDown:
		e.state.Countdown -= constants.FrameSlice
		if e.state.Countdown <= constants.CountdownEpsilon {
			e.state.Countdown = 0
			e.state.Phase = PhasePlaying
			e.state.StartTime = now
			e.state.ElapsedScore = 0
		}

	case PhasePlaying:
		Integrate(e.balls, e.width)

		hits := ResolveCollisions(e.balls, e.hands, now)
		e.lastHits = hits
		e.state.TouchScore += hits
		e.statHits.Add(int64(hits))

		e.state.ElapsedScore = ElapsedSeconds(e.state.StartTime, now)

		if AnyBelow(e.balls, e.height) {
			e.state.Phase = PhaseOver
			e.state.Summary = Summarize(e.state.ElapsedScore)
		}
	}

	return e.state.Phase
}

// State returns a copy of the match state
func (e *Engine) State() MatchState {
	return e.state
}

// Snapshot exports the observable world for drawing
func (e *Engine) Snapshot() Snapshot {
	balls := make([]Ball, len(e.balls))
	copy(balls, e.balls)

	return Snapshot{
		Frame:            e.frame,
		Width:            e.width,
		Height:           e.height,
		Phase:            e.state.Phase,
		Balls:            balls,
		Hands:            e.hands,
		Countdown:        e.state.Countdown,
		CountdownDisplay: int(math.Ceil(e.state.Countdown)),
		ElapsedScore:     e.state.ElapsedScore,
		TouchScore:       e.state.TouchScore,
		Hits:             e.lastHits,
		Over:             e.state.Phase == PhaseOver,
		Summary:          e.state.Summary,
	}
}
