package render

import (
	"math"

	"github.com/lixenwraith/palm-bounce/constants"
	"github.com/lixenwraith/palm-bounce/engine"
)

const fitEpsilon = 1e-9

// Viewport maps the logical canvas onto a rectangle of terminal cells
// X, Y is the top-left canvas cell; the border is drawn one cell outside
type Viewport struct {
	X, Y       int
	Cols, Rows int

	canvasW, canvasH float64
}

// NewViewport fits a canvasW x canvasH canvas into a screen of screenW x screenH cells,
// preserving aspect ratio under the cell height/width ratio
func NewViewport(screenW, screenH int, canvasW, canvasH float64) Viewport {
	availW := screenW - 2
	availH := screenH - constants.HUDRows - constants.FooterRows - 2
	if availW < 1 {
		availW = 1
	}
	if availH < 1 {
		availH = 1
	}

	// cols/(rows*aspect) == canvasW/canvasH
	ratio := canvasW * constants.CellAspect / canvasH
	rows := availH
	cols := int(math.Floor(float64(rows)*ratio + fitEpsilon))
	if cols > availW {
		cols = availW
		rows = int(math.Floor(float64(cols)/ratio + fitEpsilon))
	}
	cols = max(cols, 1)
	rows = max(rows, 1)

	return Viewport{
		X:       1 + (availW-cols)/2,
		Y:       constants.HUDRows + 1,
		Cols:    cols,
		Rows:    rows,
		canvasW: canvasW,
		canvasH: canvasH,
	}
}

// CellWidth returns the canvas width covered by one cell
func (v Viewport) CellWidth() float64 {
	return v.canvasW / float64(v.Cols)
}

// CellHeight returns the canvas height covered by one cell
func (v Viewport) CellHeight() float64 {
	return v.canvasH / float64(v.Rows)
}

// ToCell converts a canvas point to screen cell coordinates
// Points outside the canvas map outside the viewport rectangle
func (v Viewport) ToCell(p engine.Point) (col, row int) {
	col = v.X + int(math.Floor(p.X/v.CellWidth()))
	row = v.Y + int(math.Floor(p.Y/v.CellHeight()))
	return col, row
}

// ToCanvas converts a screen cell to the canvas point at its center
// Returns false when the cell lies outside the viewport
func (v Viewport) ToCanvas(col, row int) (engine.Point, bool) {
	if !v.Contains(col, row) {
		return engine.Point{}, false
	}
	return v.center(col, row), true
}

// Contains reports whether the screen cell is inside the canvas rectangle
func (v Viewport) Contains(col, row int) bool {
	return col >= v.X && col < v.X+v.Cols && row >= v.Y && row < v.Y+v.Rows
}

func (v Viewport) center(col, row int) engine.Point {
	return engine.Point{
		X: (float64(col-v.X) + 0.5) * v.CellWidth(),
		Y: (float64(row-v.Y) + 0.5) * v.CellHeight(),
	}
}
