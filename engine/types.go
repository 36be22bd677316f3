package engine

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/palm-bounce/constants"
)

// Point is a position in canvas space
type Point struct {
	X, Y float64
}

// HandZone is a circular paddle centered on a tracked palm
// Index is the hand's position in the delivered snapshot and its display order
type HandZone struct {
	X, Y  float64
	Index int
}

// Ball is a falling ball, mutated every frame while Playing
type Ball struct {
	X, Y    float64
	VX, VY  float64
	Radius  float64
	Color   colorful.Color
	LastHit time.Time // Zero until first hit
}

// newBallPool creates BallCount balls at rest on the spawn point
func newBallPool() []Ball {
	balls := make([]Ball, constants.BallCount)
	for i := range balls {
		balls[i] = Ball{
			X:      constants.BallSpawnX,
			Y:      constants.BallSpawnY,
			Radius: constants.BallRadius,
			Color:  colorful.Hsl(float64(i)*constants.BallHueStep, constants.BallSaturation, constants.BallLightness),
		}
	}
	return balls
}

// Phase is the match lifecycle stage
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseCountingDown
	PhasePlaying
	PhaseOver
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseCountingDown:
		return "CountingDown"
	case PhasePlaying:
		return "Playing"
	case PhaseOver:
		return "Over"
	default:
		return "Unknown"
	}
}

// Active reports whether frames must keep running in this phase
func (p Phase) Active() bool {
	return p == PhaseCountingDown || p == PhasePlaying
}
