package engine

import (
	"math"
	"time"

	"github.com/lixenwraith/palm-bounce/constants"
)

// ResolveCollisions bounces each ball off the first overlapping hand zone whose cooldown has elapsed
// Hands are scanned in slice order so the lowest index wins when several overlap one ball
// A ball takes at most one hit per call; the number of hits applied is returned
func ResolveCollisions(balls []Ball, hands []HandZone, now time.Time) int {
	if len(hands) == 0 {
		return 0
	}

	hits := 0
	for i := range balls {
		b := &balls[i]
		if now.Sub(b.LastHit) <= constants.HitCooldown {
			continue
		}

		hitDistance := b.Radius + constants.HandRadius
		for _, h := range hands {
			dx := b.X - h.X
			dy := b.Y - h.Y
			if math.Hypot(dx, dy) >= hitDistance {
				continue
			}

			b.LastHit = now
			b.VY = constants.BounceVelocity
			b.VX += dx * constants.HitImpulseScale
			hits++
			break
		}
	}
	return hits
}
