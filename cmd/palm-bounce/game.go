package main

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/palm-bounce/audio"
	"github.com/lixenwraith/palm-bounce/config"
	"github.com/lixenwraith/palm-bounce/constants"
	"github.com/lixenwraith/palm-bounce/core"
	"github.com/lixenwraith/palm-bounce/engine"
	"github.com/lixenwraith/palm-bounce/render"
	"github.com/lixenwraith/palm-bounce/status"
	"github.com/lixenwraith/palm-bounce/tracking"
)

// Game wires the engine, the hand source and the terminal front end
type Game struct {
	screen tcell.Screen
	reg    *status.Registry

	engine  *engine.Engine
	frames  *engine.FrameScheduler
	tracker *tracking.Tracker
	mouse   *tracking.MouseDetector // nil unless the mouse is the hand source

	renderer *render.Renderer
	sound    *audio.SoundManager
	cues     *audio.Cues

	// drawMu pairs each Draw with its Show
	drawMu sync.Mutex
}

// NewGame builds an idle game over screen; sound failures are logged and the game runs silent
func NewGame(cfg config.Config, screen tcell.Screen) *Game {
	g := &Game{
		screen: screen,
		reg:    status.NewRegistry(),
		sound:  audio.NewSoundManager(),
	}

	var debugLine func() string
	if cfg.Debug {
		debugLine = g.reg.Line
	}
	g.renderer = render.NewRenderer(debugLine)

	if cfg.Audio {
		if err := g.sound.Initialize(); err != nil {
			// Non-fatal, game can run without sound
			log.Printf("[audio] initialization failed: %v", err)
		}
	}
	g.cues = audio.NewCues(g.sound)

	g.engine = engine.NewEngine(g.reg)
	g.frames = engine.NewFrameScheduler(g.engine, engine.NewMonotonicTimeProvider(), constants.FrameInterval, g.onFrame, g.reg)

	var detector tracking.Detector
	switch cfg.Tracking.Source {
	case config.SourceTrace:
		detector = tracking.NewTraceDetector(cfg.Tracking.Trace, cfg.Tracking.Loop)
	default:
		g.mouse = tracking.NewMouseDetector()
		detector = g.mouse
	}
	g.tracker = tracking.NewTracker(detector, g.engine.Deliver, constants.DetectInterval, g.reg)

	return g
}

// onFrame runs on the frame loop goroutine after every tick
func (g *Game) onFrame(snap engine.Snapshot) {
	g.cues.Observe(snap)
	g.present(snap)
}

func (g *Game) present(snap engine.Snapshot) {
	g.drawMu.Lock()
	defer g.drawMu.Unlock()
	g.renderer.Draw(g.screen, snap)
	g.screen.Show()
}

// start begins a match; the hand source is set up on the first start only
func (g *Game) start() {
	g.tracker.Start()
	if !g.tracker.Setup(context.Background()) {
		g.renderer.SetNotice(constants.TextNoTracking)
	}

	if err := g.frames.Start(); err != nil {
		if !errors.Is(err, engine.ErrMatchInProgress) {
			log.Printf("[game] start failed: %v", err)
		}
		return
	}
	log.Printf("[game] match started")
}

// moveHand feeds a terminal mouse position to the mouse detector
func (g *Game) moveHand(x, y int) {
	if g.mouse == nil {
		return
	}
	w, h := g.screen.Size()
	vp := render.NewViewport(w, h, constants.CanvasWidth, constants.CanvasHeight)
	if p, ok := vp.ToCanvas(x, y); ok {
		g.mouse.Move(p)
		return
	}
	g.mouse.Leave()
}

// handleInput applies one terminal event; false means quit
func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyEnter:
			g.start()
		case tcell.KeyRune:
			// Some terminals report Ctrl-C as a modified rune
			if ev.Rune() == 'c' && ev.Modifiers()&tcell.ModCtrl != 0 {
				return false
			}
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case ' ', 's', 'S':
				g.start()
			}
		}

	case *tcell.EventMouse:
		g.moveHand(ev.Position())

	case *tcell.EventResize:
		g.screen.Sync()
		if !g.frames.Running() {
			g.present(g.frames.Snapshot())
		}
	}
	return true
}

func (g *Game) run() {
	g.present(g.frames.Snapshot())

	eventChan := make(chan tcell.Event, 100)
	core.Go(func() {
		for {
			ev := g.screen.PollEvent()
			// nil after Fini
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	})

	for ev := range eventChan {
		if !g.handleInput(ev) {
			return
		}
	}
}

// Close stops the frame loop and the hand source and releases audio
func (g *Game) Close() {
	g.frames.Stop()
	if err := g.tracker.Close(); err != nil {
		log.Printf("[tracking] close: %v", err)
	}
	g.sound.Cleanup()
	log.Printf("[game] %s", g.reg.Line())
}
