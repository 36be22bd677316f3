package audio

import "github.com/lixenwraith/palm-bounce/engine"

// Player is the set of cues the game triggers
type Player interface {
	PlayHit()
	PlayCountdown()
	PlayGameOver()
}

// Cues turns consecutive frame snapshots into sounds
// Observe must be called from the frame callback, one snapshot at a time
type Cues struct {
	player      Player
	lastPhase   engine.Phase
	lastDisplay int
}

// NewCues creates a cue tracker over player
func NewCues(player Player) *Cues {
	return &Cues{player: player}
}

// Observe plays a hit per frame with hits, a tick on every new countdown second and the sweep on game over
func (c *Cues) Observe(s engine.Snapshot) {
	switch s.Phase {
	case engine.PhaseCountingDown:
		if c.lastPhase != engine.PhaseCountingDown || s.CountdownDisplay != c.lastDisplay {
			c.player.PlayCountdown()
		}
		c.lastDisplay = s.CountdownDisplay

	case engine.PhasePlaying:
		if s.Hits > 0 {
			c.player.PlayHit()
		}

	case engine.PhaseOver:
		if s.Hits > 0 {
			c.player.PlayHit()
		}
		if c.lastPhase != engine.PhaseOver {
			c.player.PlayGameOver()
		}
	}
	c.lastPhase = s.Phase
}
