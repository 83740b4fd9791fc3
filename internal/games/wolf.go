package games

import (
	"fmt"

	"github.com/greenside/greenside/golf"
)

// LoneWolf marks a hole where the wolf plays alone against the field.
const LoneWolf = -1

// WolfPick is the externally supplied assignment for one hole: who the
// wolf is and which partner they took, if any. There is no succession
// logic here; the picks are configuration, decided on the tee.
type WolfPick struct {
	Hole    int `json:"hole"`
	Wolf    int `json:"wolf"`
	Partner int `json:"partner"` // LoneWolf to go alone
}

// WolfOptions configures the wolf engine.
type WolfOptions struct {
	PointValue   float64    `json:"point_value"`
	UseNet       bool       `json:"use_net"`
	DoubleBirdie bool       `json:"double_birdie"`
	Picks        []WolfPick `json:"picks"`
}

// WolfHole is the settlement of one hole.
type WolfHole struct {
	Hole    int       `json:"hole"`
	Wolf    int       `json:"wolf"`
	Partner int       `json:"partner"`
	Winner  int       `json:"winner"` // 0 wolf side, 1 the field, -1 push/skip
	Base    float64   `json:"base"`   // point value after any birdie double
	Awards  []float64 `json:"awards"` // per-player share of the hole
}

// WolfResult is the full-round settlement.
type WolfResult struct {
	Validity
	Holes  []WolfHole `json:"holes"`
	Totals []float64  `json:"totals"`
}

// ComputeWolf settles the partner-selection game. The low score among the
// hole's participants wins for its side: a winning pair splits the base
// value, a lone wolf win pays the wolf triple, and a lone wolf loss splits
// the base among everyone else. A birdie by the winning side doubles the
// base first when that option is on.
func ComputeWolf(sheet *Sheet, opts WolfOptions) WolfResult {
	n := len(sheet.Players)
	if n < 3 {
		return WolfResult{Validity: invalid(fmt.Sprintf("wolf needs at least 3 players, have %d", n))}
	}

	picks := make(map[int]WolfPick, len(opts.Picks))
	for _, pick := range opts.Picks {
		if pick.Hole < 1 || pick.Hole > golf.Holes {
			return WolfResult{Validity: invalid(fmt.Sprintf("wolf pick on hole %d out of range", pick.Hole))}
		}
		if pick.Wolf < 0 || pick.Wolf >= n {
			return WolfResult{Validity: invalid(fmt.Sprintf("hole %d: wolf %d out of range", pick.Hole, pick.Wolf))}
		}
		if pick.Partner != LoneWolf && (pick.Partner < 0 || pick.Partner >= n || pick.Partner == pick.Wolf) {
			return WolfResult{Validity: invalid(fmt.Sprintf("hole %d: bad partner %d", pick.Hole, pick.Partner))}
		}
		picks[pick.Hole] = pick
	}

	result := WolfResult{
		Validity: valid(),
		Totals:   make([]float64, n),
	}
	adjusted := sheet.Adjusted()

	for hole := 1; hole <= golf.Holes; hole++ {
		pick, ok := picks[hole]
		if !ok {
			continue
		}

		h := WolfHole{
			Hole:    hole,
			Wolf:    pick.Wolf,
			Partner: pick.Partner,
			Winner:  -1,
			Awards:  make([]float64, n),
		}

		// Best score per side; a side with no scores in can't win, and a
		// hole where either side is empty is skipped.
		sideBest := [2]int{}
		sideHas := [2]bool{}
		for p := 0; p < n; p++ {
			score, ok := sheet.Score(p, hole, opts.UseNet, adjusted)
			if !ok {
				continue
			}
			side := 1
			if p == pick.Wolf || p == pick.Partner {
				side = 0
			}
			if !sideHas[side] || score < sideBest[side] {
				sideBest[side], sideHas[side] = score, true
			}
		}
		if !sideHas[0] || !sideHas[1] {
			result.Holes = append(result.Holes, h)
			continue
		}

		if sideBest[0] != sideBest[1] {
			winner := 0
			if sideBest[1] < sideBest[0] {
				winner = 1
			}
			base := opts.PointValue
			if opts.DoubleBirdie && sideBest[winner] <= sheet.Course.Par(hole)-1 {
				base *= 2
			}
			h.Winner = winner
			h.Base = base

			lone := pick.Partner == LoneWolf
			switch {
			case winner == 0 && lone:
				h.Awards[pick.Wolf] = base * 3
			case winner == 0:
				h.Awards[pick.Wolf] = base / 2
				h.Awards[pick.Partner] = base / 2
			default:
				field := 0
				for p := 0; p < n; p++ {
					if p != pick.Wolf && p != pick.Partner {
						field++
					}
				}
				for p := 0; p < n; p++ {
					if p != pick.Wolf && p != pick.Partner {
						h.Awards[p] = base / float64(field)
					}
				}
			}
			for p, award := range h.Awards {
				result.Totals[p] += award
			}
		}

		result.Holes = append(result.Holes, h)
	}

	return result
}
