package engine

import "github.com/lixenwraith/palm-bounce/constants"

// Integrate advances every ball by one frame: gravity, position, velocity clamp, then side and top walls
// The bottom edge is left open, crossing it is the loss condition
func Integrate(balls []Ball, width float64) {
	for i := range balls {
		b := &balls[i]

		b.VY += constants.Gravity

		b.X += b.VX
		b.Y += b.VY

		b.VX = clamp(b.VX, -constants.MaxVelocityX, constants.MaxVelocityX)
		b.VY = clamp(b.VY, -constants.MaxVelocityY, constants.MaxVelocityY)

		// Snap back inside so a fast ball cannot tunnel or stick
		if b.X-b.Radius < 0 || b.X+b.Radius > width {
			b.VX = -b.VX
			if b.X < width/2 {
				b.X = b.Radius
			} else {
				b.X = width - b.Radius
			}
		}

		if b.Y-b.Radius < 0 {
			b.VY = -b.VY
			b.Y = b.Radius
		}
	}
}

// AnyBelow reports whether any ball's top edge has passed below height
func AnyBelow(balls []Ball, height float64) bool {
	for i := range balls {
		if balls[i].Y-balls[i].Radius > height {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
