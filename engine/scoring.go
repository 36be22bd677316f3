package engine

import (
	"fmt"
	"time"

	"github.com/lixenwraith/palm-bounce/constants"
)

// Tier is the qualitative rating of a finished match
type Tier uint8

const (
	TierKeepTrying Tier = iota
	TierGreat
	TierAmazing
)

// Summary is the game-over display: tier, emoji, headline and the survived seconds
type Summary struct {
	Tier    Tier
	Emoji   string
	Message string
	Seconds int
}

// Survived returns the survival line shown under the headline
func (s Summary) Survived() string {
	return fmt.Sprintf(constants.TextSurvived, s.Seconds)
}

// Summarize maps an elapsed-time score to its tier
func Summarize(seconds int) Summary {
	switch {
	case seconds > constants.TierAmazingAbove:
		return Summary{Tier: TierAmazing, Emoji: "🎉", Message: "Amazing!", Seconds: seconds}
	case seconds > constants.TierGreatAbove:
		return Summary{Tier: TierGreat, Emoji: "👏", Message: "Great Job!", Seconds: seconds}
	default:
		return Summary{Tier: TierKeepTrying, Emoji: "💪", Message: "Game Over!", Seconds: seconds}
	}
}

// ElapsedSeconds returns whole seconds from start to now, 0 before the match starts
// Recomputed from the clock every frame so frame-rate jitter never accumulates
func ElapsedSeconds(start, now time.Time) int {
	if start.IsZero() || now.Before(start) {
		return 0
	}
	return int(now.Sub(start) / time.Second)
}
