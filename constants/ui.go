package constants

// HUD and overlay text
const (
	TextReady      = "Get Ready!"
	TextStart      = "Press SPACE to start"
	TextPlayAgain  = "Press SPACE to play again"
	TextQuit       = "q to quit"
	TextNoTracking = "Hand tracking unavailable: playing without hands"
	TextSurvived   = "You survived %d seconds"
	TextHandLabel  = "Hand %d"
)

// Terminal layout
const (
	// HUDRows is the number of rows reserved above the canvas
	HUDRows = 1

	// FooterRows is the number of rows reserved below the canvas
	FooterRows = 1

	// CellAspect is the height/width ratio of a terminal cell
	CellAspect = 2.0
)

// Metric keys
const (
	MetricFrames     = "engine.frames"
	MetricHits       = "engine.hits"
	MetricSnapshots  = "tracking.snapshots"
	MetricDetectErrs = "tracking.errors"
	MetricFPS        = "render.fps"
)
