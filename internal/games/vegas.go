package games

import (
	"fmt"

	"github.com/greenside/greenside/golf"
)

// Vegas modes, decided by player count.
const (
	VegasModeTeams    = "teams"    // 4 players, two fixed teams of two
	VegasModeRotation = "rotation" // 3 players, ghost partner rotates in 6-hole segments
	VegasModeGhost    = "ghost"    // 2 players, each permanently paired with a ghost
)

// VegasOptions configures the Vegas engine.
type VegasOptions struct {
	UseNet       bool      `json:"use_net"`
	DoubleBirdie bool      `json:"double_birdie"`
	TripleEagle  bool      `json:"triple_eagle"`
	PointValue   float64   `json:"point_value"`
	Teams        [2][2]int `json:"teams"` // player indexes, 4-player mode only
}

// VegasHole is the settlement of a single hole.
type VegasHole struct {
	Hole       int      `json:"hole"`
	Members    [2][]int `json:"members"` // real player indexes per team this hole
	Numbers    [2]int   `json:"numbers"` // digit pairs after any flip
	Flipped    [2]bool  `json:"flipped"`
	Birdie     [2]bool  `json:"birdie"`
	Eagle      [2]bool  `json:"eagle"`
	Winner     int      `json:"winner"` // team index, -1 for a tied hole
	Points     int      `json:"points"`
	Multiplier int      `json:"multiplier"`
}

// VegasResult is the full-round settlement. Totals are per team slot: in
// rotation mode slot 0 is always the ghost side, so the real player behind
// it changes each 6-hole segment; per-hole Members carries the actual
// player indexes for attribution.
type VegasResult struct {
	Validity
	Mode        string      `json:"mode"`
	Holes       []VegasHole `json:"holes"`
	Points      [2]int      `json:"points"` // signed, zero-sum
	Dollars     [2]float64  `json:"dollars"`
	GrossTotals [2]int      `json:"gross_totals"`
}

// ComputeVegas settles the Vegas game over a sheet. Each team's two scores
// form a two-digit number, low digit first; the lower number wins the hole
// for the absolute difference, doubled on a birdie or tripled on an eagle
// when those options are on. A team facing an opponent who made birdie or
// better has its own digits reversed first.
func ComputeVegas(sheet *Sheet, opts VegasOptions) VegasResult {
	mode, why := vegasMode(sheet, opts)
	if why != "" {
		return VegasResult{Validity: invalid(why)}
	}

	result := VegasResult{Validity: valid(), Mode: mode}
	adjusted := sheet.Adjusted()

	for hole := 1; hole <= golf.Holes; hole++ {
		par := sheet.Course.Par(hole)
		members := vegasMembers(mode, opts, hole)

		var scores, gross [2][]int
		complete := true
		for t := 0; t < 2; t++ {
			for _, p := range members[t] {
				if s, ok := sheet.Score(p, hole, opts.UseNet, adjusted); ok {
					scores[t] = append(scores[t], s)
				}
				if g, ok := sheet.Card.Gross(p, hole); ok {
					gross[t] = append(gross[t], g)
				}
			}
			if vegasHasGhost(mode, t) {
				scores[t] = append(scores[t], par)
				gross[t] = append(gross[t], par)
			}
			if len(scores[t]) < 2 {
				complete = false
			}
		}
		if !complete {
			continue
		}

		h := VegasHole{Hole: hole, Winner: -1, Multiplier: 1}
		h.Members = members
		for t := 0; t < 2; t++ {
			lo, hi := sorted2(scores[t][0], scores[t][1])
			h.Birdie[t] = lo <= par-1
			h.Eagle[t] = lo <= par-2
			h.Numbers[t] = digitPair(lo, hi)
			for _, g := range gross[t] {
				result.GrossTotals[t] += g
			}
		}

		// A birdie (or better) by the opposition reverses your own digits.
		for t := 0; t < 2; t++ {
			if h.Birdie[1-t] {
				lo, hi := sorted2(scores[t][0], scores[t][1])
				h.Numbers[t] = digitPair(hi, lo)
				h.Flipped[t] = true
			}
		}

		if h.Numbers[0] != h.Numbers[1] {
			winner := 0
			if h.Numbers[1] < h.Numbers[0] {
				winner = 1
			}
			diff := h.Numbers[0] - h.Numbers[1]
			if diff < 0 {
				diff = -diff
			}
			switch {
			case h.Eagle[winner] && opts.TripleEagle:
				h.Multiplier = 3
			case h.Birdie[winner] && opts.DoubleBirdie:
				h.Multiplier = 2
			}
			h.Winner = winner
			h.Points = diff * h.Multiplier
			result.Points[winner] += h.Points
			result.Points[1-winner] -= h.Points
		}

		result.Holes = append(result.Holes, h)
	}

	for t := 0; t < 2; t++ {
		result.Dollars[t] = float64(result.Points[t]) * opts.PointValue
	}
	return result
}

// vegasMode picks the play mode from the player count, or explains why the
// configuration is unplayable.
func vegasMode(sheet *Sheet, opts VegasOptions) (string, string) {
	switch len(sheet.Players) {
	case 4:
		var seen [4]bool
		for _, team := range opts.Teams {
			for _, p := range team {
				if p < 0 || p > 3 || seen[p] {
					return "", "teams must split the four players two and two"
				}
				seen[p] = true
			}
		}
		return VegasModeTeams, ""
	case 3:
		return VegasModeRotation, ""
	case 2:
		return VegasModeGhost, ""
	default:
		return "", fmt.Sprintf("vegas needs 2, 3 or 4 players, have %d", len(sheet.Players))
	}
}

// vegasMembers returns the real player indexes on each team for a hole.
// Ghost partners are not listed; vegasHasGhost reports them.
func vegasMembers(mode string, opts VegasOptions, hole int) [2][]int {
	switch mode {
	case VegasModeTeams:
		return [2][]int{opts.Teams[0][:], opts.Teams[1][:]}
	case VegasModeRotation:
		// The ghost partners player 0 on holes 1-6, player 1 on 7-12,
		// player 2 on 13-18; the other two play as a real pair.
		solo := (hole - 1) / 6
		var pair []int
		for p := 0; p < 3; p++ {
			if p != solo {
				pair = append(pair, p)
			}
		}
		return [2][]int{{solo}, pair}
	default: // VegasModeGhost
		return [2][]int{{0}, {1}}
	}
}

func vegasHasGhost(mode string, team int) bool {
	switch mode {
	case VegasModeRotation:
		return team == 0
	case VegasModeGhost:
		return true
	default:
		return false
	}
}

// digitPair concatenates two scores into one number, first argument
// leftmost: 4 and 5 make 45, 4 and 12 make 412. Scores floor at 0 so a
// sub-zero net (a heavily stroked hole) concatenates as a 0 digit instead
// of going negative.
func digitPair(first, second int) int {
	if first < 0 {
		first = 0
	}
	if second < 0 {
		second = 0
	}
	m := 10
	for m <= second {
		m *= 10
	}
	return first*m + second
}

func sorted2(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
