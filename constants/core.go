package constants

import "time"

// Game Loop & Tracking Timing
const (
	// FrameInterval is the frame scheduling interval (~60 FPS)
	FrameInterval = time.Second / 60

	// FrameSlice is the fixed countdown decrement per frame in seconds
	FrameSlice = 1.0 / 60.0

	// DetectInterval is the hand detection polling interval (~30 updates/sec)
	DetectInterval = 33 * time.Millisecond

	// CountdownEpsilon absorbs float drift when the countdown reaches zero
	CountdownEpsilon = 1e-9
)

// Canvas dimensions in canvas pixels, matching the 640x480 camera frame
const (
	CanvasWidth  = 640.0
	CanvasHeight = 480.0
)
