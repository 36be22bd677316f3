package engine

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lixenwraith/palm-bounce/constants"
)

const epsilon = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestIntegrateAppliesGravityThenMoves(t *testing.T) {
	balls := []Ball{{X: 320, Y: 100, Radius: 20}}

	Integrate(balls, constants.CanvasWidth)

	if !approx(balls[0].VY, 0.2) {
		t.Errorf("Expected vy 0.2, got %f", balls[0].VY)
	}
	if !approx(balls[0].Y, 100.2) {
		t.Errorf("Expected y 100.2, got %f", balls[0].Y)
	}
	if balls[0].X != 320 {
		t.Errorf("Expected x unchanged at 320, got %f", balls[0].X)
	}
}

func TestIntegrateClampsVelocityAfterMoving(t *testing.T) {
	balls := []Ball{{X: 320, Y: 240, VX: 10, VY: 20, Radius: 20}}

	Integrate(balls, constants.CanvasWidth)

	b := balls[0]
	// Position uses the unclamped velocity of this frame
	if !approx(b.X, 330) || !approx(b.Y, 260.2) {
		t.Errorf("Expected position (330, 260.2), got (%f, %f)", b.X, b.Y)
	}
	if b.VX != constants.MaxVelocityX {
		t.Errorf("Expected vx clamped to %f, got %f", constants.MaxVelocityX, b.VX)
	}
	if b.VY != constants.MaxVelocityY {
		t.Errorf("Expected vy clamped to %f, got %f", constants.MaxVelocityY, b.VY)
	}
}

func TestIntegrateWallBounces(t *testing.T) {
	tests := []struct {
		name   string
		ball   Ball
		wantX  float64
		wantY  float64
		wantVX float64
		wantVY float64
	}{
		{
			name:   "left wall",
			ball:   Ball{X: 22, Y: 240, VX: -5, Radius: 20},
			wantX:  20,
			wantY:  240.2,
			wantVX: 5,
			wantVY: 0.2,
		},
		{
			name:   "right wall",
			ball:   Ball{X: 618, Y: 240, VX: 5, Radius: 20},
			wantX:  620,
			wantY:  240.2,
			wantVX: -5,
			wantVY: 0.2,
		},
		{
			name:   "top wall",
			ball:   Ball{X: 320, Y: 22, VY: -10, Radius: 20},
			wantX:  320,
			wantY:  20,
			wantVX: 0,
			wantVY: 9.8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balls := []Ball{tt.ball}
			Integrate(balls, constants.CanvasWidth)
			b := balls[0]

			if !approx(b.X, tt.wantX) || !approx(b.Y, tt.wantY) {
				t.Errorf("Expected position (%f, %f), got (%f, %f)", tt.wantX, tt.wantY, b.X, b.Y)
			}
			if !approx(b.VX, tt.wantVX) || !approx(b.VY, tt.wantVY) {
				t.Errorf("Expected velocity (%f, %f), got (%f, %f)", tt.wantVX, tt.wantVY, b.VX, b.VY)
			}
		})
	}
}

func TestIntegrateBottomIsOpen(t *testing.T) {
	balls := []Ball{{X: 320, Y: 495, VY: 10, Radius: 20}}

	Integrate(balls, constants.CanvasWidth)

	if balls[0].VY <= 0 {
		t.Errorf("Expected ball to keep falling past the floor, got vy %f", balls[0].VY)
	}
	if !AnyBelow(balls, constants.CanvasHeight) {
		t.Errorf("Expected ball at y=%f to count as below the canvas", balls[0].Y)
	}
}

// TestIntegrateStaysInBounds kicks balls randomly and checks clamp and wall bounds after every step
func TestIntegrateStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const r = constants.BallRadius

	balls := make([]Ball, 4)
	for i := range balls {
		balls[i] = Ball{
			X:      r + rng.Float64()*(constants.CanvasWidth-2*r),
			Y:      r + rng.Float64()*200,
			Radius: r,
		}
	}

	for frame := 0; frame < 2000; frame++ {
		for i := range balls {
			balls[i].VX += rng.Float64()*30 - 15
			balls[i].VY += rng.Float64()*30 - 15
		}

		Integrate(balls, constants.CanvasWidth)

		for i, b := range balls {
			if math.Abs(b.VX) > constants.MaxVelocityX || math.Abs(b.VY) > constants.MaxVelocityY {
				t.Fatalf("frame %d ball %d: velocity (%f, %f) out of bounds", frame, i, b.VX, b.VY)
			}
			if b.X < r || b.X > constants.CanvasWidth-r {
				t.Fatalf("frame %d ball %d: x=%f outside [%f, %f]", frame, i, b.X, r, constants.CanvasWidth-r)
			}
			if b.Y < r {
				t.Fatalf("frame %d ball %d: y=%f above top bound %f", frame, i, b.Y, r)
			}
		}

		// Keep balls in play so the top bound stays exercised
		for i := range balls {
			if balls[i].Y > constants.CanvasHeight {
				balls[i].Y = constants.CanvasHeight / 2
			}
		}
	}
}
