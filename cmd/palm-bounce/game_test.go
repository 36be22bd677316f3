package main

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/palm-bounce/config"
	"github.com/lixenwraith/palm-bounce/constants"
	"github.com/lixenwraith/palm-bounce/engine"
	"github.com/lixenwraith/palm-bounce/render"
)

func newTestGame(t *testing.T, cfg config.Config) (*Game, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(100, 40)

	cfg.Audio = false
	g := NewGame(cfg, screen)
	t.Cleanup(func() {
		g.Close()
		screen.Fini()
	})
	return g, screen
}

func screenText(s tcell.SimulationScreen) string {
	cells, _, _ := s.GetContents()
	var b strings.Builder
	for _, c := range cells {
		b.WriteString(string(c.Runes))
	}
	return b.String()
}

func keyRune(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestGameStartKeys(t *testing.T) {
	for _, ev := range []*tcell.EventKey{keyRune(' '), keyRune('s'), tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)} {
		g, _ := newTestGame(t, config.Default())
		if !g.handleInput(ev) {
			t.Fatalf("Expected start key to keep the game running")
		}
		if phase := g.frames.Snapshot().Phase; phase != engine.PhaseCountingDown {
			t.Errorf("Expected CountingDown after start, got %v", phase)
		}
	}
}

func TestGameStartIgnoredWhileActive(t *testing.T) {
	g, _ := newTestGame(t, config.Default())
	g.handleInput(keyRune(' '))
	before := g.frames.Snapshot().Countdown

	g.handleInput(keyRune(' '))
	if after := g.frames.Snapshot(); after.Phase != engine.PhaseCountingDown || after.Countdown > before {
		t.Errorf("Expected second start to leave the countdown running, got %v %.3f", after.Phase, after.Countdown)
	}
}

func TestGameQuitKeys(t *testing.T) {
	g, _ := newTestGame(t, config.Default())
	quits := []*tcell.EventKey{
		keyRune('q'),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
	}
	for _, ev := range quits {
		if g.handleInput(ev) {
			t.Errorf("Expected quit for key %v", ev.Name())
		}
	}
	if !g.handleInput(keyRune('x')) {
		t.Errorf("Expected unbound key to be ignored")
	}
}

func TestGameMouseMovesHand(t *testing.T) {
	g, _ := newTestGame(t, config.Default())
	vp := render.NewViewport(100, 40, constants.CanvasWidth, constants.CanvasHeight)
	col, row := vp.X+vp.Cols/2, vp.Y+vp.Rows/2

	g.handleInput(tcell.NewEventMouse(col, row, tcell.ButtonNone, tcell.ModNone))
	points, err := g.mouse.Detect(context.Background())
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if len(points) != 1 {
		t.Fatalf("Expected one hand, got %d", len(points))
	}
	want, _ := vp.ToCanvas(col, row)
	if points[0] != want {
		t.Errorf("Expected hand at %v, got %v", want, points[0])
	}

	g.handleInput(tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone))
	points, _ = g.mouse.Detect(context.Background())
	if len(points) != 0 {
		t.Errorf("Expected no hand outside the canvas, got %v", points)
	}
}

func TestGameMissingTraceShowsNotice(t *testing.T) {
	cfg := config.Default()
	cfg.Tracking.Source = config.SourceTrace
	cfg.Tracking.Trace = filepath.Join(t.TempDir(), "missing.yaml")

	g, _ := newTestGame(t, cfg)
	if g.mouse != nil {
		t.Fatalf("Expected no mouse detector for trace source")
	}

	g.handleInput(keyRune(' '))
	if g.renderer.Notice() != constants.TextNoTracking {
		t.Errorf("Expected tracking notice, got %q", g.renderer.Notice())
	}
	if phase := g.frames.Snapshot().Phase; phase != engine.PhaseCountingDown {
		t.Errorf("Expected match to start without hands, got %v", phase)
	}
	if g.tracker.Running() {
		t.Errorf("Expected tracker to stay stopped")
	}
}

func TestGameResizeRendersIdle(t *testing.T) {
	g, screen := newTestGame(t, config.Default())
	screen.SetSize(120, 45)

	g.handleInput(tcell.NewEventResize(120, 45))
	if text := screenText(screen); !strings.Contains(text, constants.TextStart) {
		t.Errorf("Expected idle overlay after resize")
	}
}
