package constants

import "time"

// Ball setup
const (
	BallCount  = 1
	BallRadius = 20.0
	BallSpawnX = CanvasWidth / 2
	BallSpawnY = 100.0

	// BallHueStep spaces ball colors around the hue wheel (degrees)
	BallHueStep    = 120.0
	BallSaturation = 0.7
	BallLightness  = 0.6
)

// Physics tuning, all per frame
const (
	Gravity        = 0.2
	BounceVelocity = -8.0
	MaxVelocityX   = 6.0
	MaxVelocityY   = 12.0

	// HitImpulseScale converts ball-to-hand horizontal offset into sideways kick
	HitImpulseScale = 0.07
)

// Hand zones
const (
	HandRadius  = 50.0
	HitCooldown = 250 * time.Millisecond
)

// Match timing
const (
	// CountdownDuration is the countdown length in seconds
	CountdownDuration = 3.0
)

// Summary tier thresholds in survived seconds (strictly greater than)
const (
	TierAmazingAbove = 30
	TierGreatAbove   = 15
)

// PalmKeypoints are the landmark indices averaged into a palm center:
// wrist and the bases of index, middle, ring and pinky fingers
var PalmKeypoints = [...]int{0, 5, 9, 13, 17}
