// Package tracking produces hand positions for the engine on its own polling cadence
package tracking

import (
	"context"

	"github.com/lixenwraith/palm-bounce/constants"
	"github.com/lixenwraith/palm-bounce/engine"
)

// Detector estimates palm positions in canvas coordinates, one point per detected hand
type Detector interface {
	// Init acquires the device or data; failure means the source is unavailable
	Init(ctx context.Context) error
	// Detect returns the hands visible now; errors skip one delivery
	Detect(ctx context.Context) ([]engine.Point, error)
	Close() error
}

// Keypoint is a raw landmark in camera frame coordinates
type Keypoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// PalmCenter averages the wrist and finger-base landmarks
// ok is false when the hand has too few keypoints
func PalmCenter(kps []Keypoint) (p engine.Point, ok bool) {
	for _, idx := range constants.PalmKeypoints {
		if idx >= len(kps) {
			return engine.Point{}, false
		}
		p.X += kps[idx].X
		p.Y += kps[idx].Y
	}
	n := float64(len(constants.PalmKeypoints))
	p.X /= n
	p.Y /= n
	return p, true
}

// Mirror flips x within a frame of the given width so on-screen motion matches the player's
func Mirror(x, width float64) float64 {
	return width - x
}
