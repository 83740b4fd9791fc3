package games

import (
	"github.com/greenside/greenside/golf"
)

// Sheet bundles the shared read-only inputs every settlement engine
// consumes: the course tables, the player list, and the scorecard. Engines
// never mutate a sheet; each computes its own result from scratch, so any
// subset of games can be evaluated in any order over the same sheet.
type Sheet struct {
	Course  *golf.Course
	Players []golf.Player
	Card    *golf.Scorecard
}

// Adjusted returns play-off-the-low adjusted handicaps for all players.
func (s *Sheet) Adjusted() []int {
	return golf.AdjustedHandicaps(s.Players)
}

// Score returns a player's score for a hole: net (full-stroke allocation,
// NDB capped) when useNet is set, gross otherwise. The second return is
// false when no score has been entered.
func (s *Sheet) Score(player, hole int, useNet bool, adjusted []int) (int, bool) {
	gross, ok := s.Card.Gross(player, hole)
	if !ok {
		return 0, false
	}
	if !useNet {
		return gross, true
	}
	allot := golf.Allot(adjusted[player], s.Course.StrokeIndex(hole))
	return golf.NetScore(gross, s.Course.Par(hole), allot), true
}

// Validity is embedded in every engine result. Engines are total: invalid
// configuration comes back as Valid=false with a human-readable reason,
// never as a panic or error.
type Validity struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

func valid() Validity {
	return Validity{Valid: true}
}

func invalid(reason string) Validity {
	return Validity{Valid: false, Reason: reason}
}
