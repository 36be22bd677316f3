package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Surface is the subset of tcell.Screen the renderer draws on
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
}

// drawText writes text starting at x, advancing by display width, and clips at the surface edge
// Returns the column after the last written cell
func drawText(s Surface, x, y int, text string, style tcell.Style) int {
	w, h := s.Size()
	if y < 0 || y >= h {
		return x
	}
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x+rw > w {
			break
		}
		if x >= 0 {
			s.SetContent(x, y, r, nil, style)
		}
		x += rw
	}
	return x
}

// drawCentered writes text centered on column cx
func drawCentered(s Surface, cx, y int, text string, style tcell.Style) {
	drawText(s, cx-runewidth.StringWidth(text)/2, y, text, style)
}

// drawRight writes text ending at column right (exclusive)
func drawRight(s Surface, right, y int, text string, style tcell.Style) {
	drawText(s, right-runewidth.StringWidth(text), y, text, style)
}

// fill paints a rectangle with r
func fill(s Surface, x, y, w, h int, r rune, style tcell.Style) {
	sw, sh := s.Size()
	for row := max(y, 0); row < min(y+h, sh); row++ {
		for col := max(x, 0); col < min(x+w, sw); col++ {
			s.SetContent(col, row, r, nil, style)
		}
	}
}
