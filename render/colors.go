package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Base palette
var (
	ColorBackground = colorful.Color{R: 26.0 / 255, G: 27.0 / 255, B: 38.0 / 255} // Tokyo Night background
	ColorBorder     = colorful.Color{R: 0.55, G: 0.55, B: 0.6}
	ColorText       = colorful.Color{R: 1, G: 1, B: 1}
	ColorHUD        = colorful.Color{R: 0.75, G: 0.8, B: 0.95}
	ColorHandRing   = colorful.Color{R: 1, G: 1, B: 1}
	ColorHandFill   = colorful.Color{R: 100.0 / 255, G: 200.0 / 255, B: 1}
	ColorAccent     = colorful.Color{R: 1, G: 165.0 / 255, B: 0} // Orange
	ColorNotice     = colorful.Color{R: 1, G: 80.0 / 255, B: 80.0 / 255}
)

const (
	// handFillAlpha is the opacity of the hand zone interior over the background
	handFillAlpha = 0.3

	// overlayDim darkens the canvas behind overlays
	overlayDim = 0.5
)

// TcellColor converts a colorful color to a tcell true color
func TcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Blend mixes src over dst at opacity alpha in RGB space
func Blend(dst, src colorful.Color, alpha float64) colorful.Color {
	return dst.BlendRgb(src, alpha)
}

// Dim darkens c toward black by amount in [0,1]
func Dim(c colorful.Color, amount float64) colorful.Color {
	return c.BlendRgb(colorful.Color{}, amount)
}

// Style returns a style with the given foreground on the given background
func Style(fg, bg colorful.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(TcellColor(fg)).Background(TcellColor(bg))
}
