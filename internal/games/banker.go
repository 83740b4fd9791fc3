package games

import (
	"fmt"

	"github.com/greenside/greenside/golf"
)

// Banker succession modes.
const (
	BankerRotate      = "rotate"      // seat advances by player index every hole
	BankerUntilBeaten = "untilBeaten" // seat changes only when an opponent beats the banker outright
)

// BankerOptions configures the Banker engine.
type BankerOptions struct {
	PointValue   float64 `json:"point_value"`
	Rotation     string  `json:"rotation"`
	StartBanker  int     `json:"start_banker"`
	UseNet       bool    `json:"use_net"`
	DoubleBirdie bool    `json:"double_birdie"`
	TripleEagle  bool    `json:"triple_eagle"`
}

// BankerPairing is one opponent-vs-banker match within a hole. Every
// pairing is an independent zero-sum transfer; Amount is what changed
// hands, Winner the player index who took it (-1 for a push or a missing
// score).
type BankerPairing struct {
	Opponent   int     `json:"opponent"`
	Winner     int     `json:"winner"`
	Amount     float64 `json:"amount"`
	Multiplier int     `json:"multiplier"`
}

// BankerHole is the settlement of one hole.
type BankerHole struct {
	Hole     int             `json:"hole"`
	Banker   int             `json:"banker"`
	Pairings []BankerPairing `json:"pairings"`
}

// BankerResult is the full-round settlement.
type BankerResult struct {
	Validity
	Holes  []BankerHole `json:"holes"`
	Totals []float64    `json:"totals"`
}

// ComputeBanker settles the Banker game: one player banks each hole and
// every other player plays a head-to-head match against them for a flat
// stake per pairing. The stake is deliberately not proportional to the
// score difference; only the winner's birdie/eagle status scales it.
func ComputeBanker(sheet *Sheet, opts BankerOptions) BankerResult {
	n := len(sheet.Players)
	if n < 2 {
		return BankerResult{Validity: invalid(fmt.Sprintf("banker needs at least 2 players, have %d", n))}
	}
	if opts.Rotation != BankerRotate && opts.Rotation != BankerUntilBeaten {
		return BankerResult{Validity: invalid(fmt.Sprintf("unknown rotation mode %q", opts.Rotation))}
	}
	if opts.StartBanker < 0 || opts.StartBanker >= n {
		return BankerResult{Validity: invalid(fmt.Sprintf("start banker %d out of range", opts.StartBanker))}
	}

	result := BankerResult{
		Validity: valid(),
		Totals:   make([]float64, n),
	}
	adjusted := sheet.Adjusted()
	banker := opts.StartBanker

	for hole := 1; hole <= golf.Holes; hole++ {
		par := sheet.Course.Par(hole)
		h := BankerHole{Hole: hole, Banker: banker}

		bankerScore, bankerOK := sheet.Score(banker, hole, opts.UseNet, adjusted)

		bestOpponent, bestScore := -1, 0
		for p := 0; p < n; p++ {
			if p == banker {
				continue
			}
			pairing := BankerPairing{Opponent: p, Winner: -1}

			score, ok := sheet.Score(p, hole, opts.UseNet, adjusted)
			if ok && (bestOpponent == -1 || score < bestScore) {
				bestOpponent, bestScore = p, score
			}

			if ok && bankerOK && score != bankerScore {
				winner, winScore := banker, bankerScore
				if score < bankerScore {
					winner, winScore = p, score
				}
				pairing.Winner = winner
				pairing.Multiplier = 1
				switch {
				case winScore <= par-2 && opts.TripleEagle:
					pairing.Multiplier = 3
				case winScore <= par-1 && opts.DoubleBirdie:
					pairing.Multiplier = 2
				}
				pairing.Amount = opts.PointValue * float64(pairing.Multiplier)

				loser := p
				if winner == p {
					loser = banker
				}
				result.Totals[winner] += pairing.Amount
				result.Totals[loser] -= pairing.Amount
			}

			h.Pairings = append(h.Pairings, pairing)
		}

		result.Holes = append(result.Holes, h)

		switch opts.Rotation {
		case BankerRotate:
			banker = (banker + 1) % n
		case BankerUntilBeaten:
			// Ties never unseat the banker; only an outright better
			// score does. A banker with no score keeps the seat.
			if bankerOK && bestOpponent >= 0 && bestScore < bankerScore {
				banker = bestOpponent
			}
		}
	}

	return result
}
