package render

import (
	"fmt"
	"math"
	"strconv"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/palm-bounce/constants"
	"github.com/lixenwraith/palm-bounce/engine"
)

const (
	minScreenWidth  = 20
	minScreenHeight = 8

	runeBall       = '█'
	runeHandRing   = '•'
	runeHandCenter = '●'

	textTooSmall = "Too small"
)

// Renderer draws engine snapshots onto a terminal surface
// Safe for concurrent use; Draw calls are serialized
type Renderer struct {
	mu     sync.Mutex
	notice string
	debug  func() string
}

// NewRenderer creates a renderer; debug, when non-nil, supplies the HUD metrics line
func NewRenderer(debug func() string) *Renderer {
	return &Renderer{debug: debug}
}

// SetNotice sets the footer notice; empty clears it
func (r *Renderer) SetNotice(notice string) {
	r.mu.Lock()
	r.notice = notice
	r.mu.Unlock()
}

// Notice returns the current footer notice
func (r *Renderer) Notice() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.notice
}

// Draw renders a full frame for snap
func (r *Renderer) Draw(s Surface, snap engine.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, h := s.Size()
	base := Style(ColorText, ColorBackground)
	fill(s, 0, 0, w, h, ' ', base)

	if w < minScreenWidth || h < minScreenHeight {
		drawCentered(s, w/2, h/2, textTooSmall, base)
		return
	}

	width, height := snap.Width, snap.Height
	if width <= 0 || height <= 0 {
		width, height = constants.CanvasWidth, constants.CanvasHeight
	}
	vp := NewViewport(w, h, width, height)

	dim := 0.0
	if snap.Phase != engine.PhasePlaying {
		dim = overlayDim
	}

	r.drawHUD(s, w, snap)
	drawBorder(s, vp, Style(ColorBorder, ColorBackground))
	drawCanvas(s, vp, snap, dim)
	drawHandLabels(s, vp, snap.Hands, dim)
	drawOverlay(s, vp, snap)
	r.drawFooter(s, w, h)
}

func (r *Renderer) drawHUD(s Surface, w int, snap engine.Snapshot) {
	style := Style(ColorHUD, ColorBackground)
	hud := fmt.Sprintf(" Time: %d  Touches: %d", snap.ElapsedScore, snap.TouchScore)
	drawText(s, 0, 0, hud, style.Bold(true))

	right := constants.TextQuit
	if r.debug != nil {
		right = r.debug()
	}
	drawRight(s, w-1, 0, right, style)
}

func (r *Renderer) drawFooter(s Surface, w, h int) {
	if r.notice == "" {
		return
	}
	drawCentered(s, w/2, h-1, r.notice, Style(ColorNotice, ColorBackground))
}

func drawBorder(s Surface, vp Viewport, style tcell.Style) {
	left, top := vp.X-1, vp.Y-1
	right, bottom := vp.X+vp.Cols, vp.Y+vp.Rows

	for x := left + 1; x < right; x++ {
		s.SetContent(x, top, tcell.RuneHLine, nil, style)
		s.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		s.SetContent(left, y, tcell.RuneVLine, nil, style)
		s.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	s.SetContent(left, top, tcell.RuneULCorner, nil, style)
	s.SetContent(right, top, tcell.RuneURCorner, nil, style)
	s.SetContent(left, bottom, tcell.RuneLLCorner, nil, style)
	s.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}

// drawCanvas rasterizes hand zones and balls by sampling each cell center
// Balls are drawn over hand zones
func drawCanvas(s Surface, vp Viewport, snap engine.Snapshot, dim float64) {
	ringWidth := math.Max(vp.CellWidth(), vp.CellHeight())

	for row := vp.Y; row < vp.Y+vp.Rows; row++ {
		for col := vp.X; col < vp.X+vp.Cols; col++ {
			p := vp.center(col, row)
			bg := ColorBackground
			fg := ColorText
			ch := ' '

			for _, hand := range snap.Hands {
				d := math.Hypot(p.X-hand.X, p.Y-hand.Y)
				if d > constants.HandRadius {
					continue
				}
				bg = Blend(bg, ColorHandFill, handFillAlpha)
				if d > constants.HandRadius-ringWidth {
					ch, fg = runeHandRing, ColorHandRing
				}
			}
			for _, hand := range snap.Hands {
				hc, hr := vp.ToCell(engine.Point{X: hand.X, Y: hand.Y})
				if hc == col && hr == row {
					ch, fg = runeHandCenter, ColorHandRing
				}
			}

			for _, ball := range snap.Balls {
				if math.Hypot(p.X-ball.X, p.Y-ball.Y) <= ball.Radius {
					ch, fg = runeBall, ball.Color
				}
			}
			for _, ball := range snap.Balls {
				bc, br := vp.ToCell(engine.Point{X: ball.X, Y: ball.Y})
				if bc == col && br == row {
					ch, fg = runeBall, ball.Color
				}
			}

			s.SetContent(col, row, ch, nil, Style(Dim(fg, dim), Dim(bg, dim)))
		}
	}
}

// drawHandLabels writes "Hand N" above each zone, clipped to the canvas
func drawHandLabels(s Surface, vp Viewport, hands []engine.HandZone, dim float64) {
	for _, hand := range hands {
		col, row := vp.ToCell(engine.Point{X: hand.X, Y: hand.Y - constants.HandRadius - 10})
		if row < vp.Y || row >= vp.Y+vp.Rows {
			continue
		}
		label := fmt.Sprintf(constants.TextHandLabel, hand.Index+1)
		style := Style(Dim(ColorText, dim), Dim(ColorBackground, dim))
		drawCentered(s, col, row, label, style)
	}
}

func drawOverlay(s Surface, vp Viewport, snap engine.Snapshot) {
	cx := vp.X + vp.Cols/2
	cy := vp.Y + vp.Rows/2
	bg := Dim(ColorBackground, overlayDim)
	text := Style(ColorText, bg)
	accent := Style(ColorAccent, bg).Bold(true)

	switch snap.Phase {
	case engine.PhaseIdle:
		drawCentered(s, cx, cy-1, constants.TextStart, accent)
		drawCentered(s, cx, cy+1, constants.TextQuit, text)

	case engine.PhaseCountingDown:
		drawCentered(s, cx, cy-1, strconv.Itoa(snap.CountdownDisplay), accent)
		drawCentered(s, cx, cy+1, constants.TextReady, text.Bold(true))

	case engine.PhaseOver:
		sum := snap.Summary
		drawCentered(s, cx, cy-3, sum.Emoji, text)
		drawCentered(s, cx, cy-1, sum.Message, accent)
		drawCentered(s, cx, cy+1, sum.Survived(), text)
		drawCentered(s, cx, cy+3, constants.TextPlayAgain, Style(Dim(ColorText, 0.3), bg))
	}
}

// BallStyle is the style of a ball cell over plain background during play
func BallStyle(c colorful.Color) tcell.Style {
	return Style(c, ColorBackground)
}
