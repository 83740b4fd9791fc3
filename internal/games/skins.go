package games

import (
	"fmt"

	"github.com/greenside/greenside/golf"
)

// SkinsOptions configures the skins engine. Skins is always played on net
// scores; HalfPops switches the allocator to half handicaps, the only game
// that does.
type SkinsOptions struct {
	Carry    bool    `json:"carry"`
	HalfPops bool    `json:"half_pops"`
	BuyIn    float64 `json:"buy_in"`
}

// SkinsScore is one player's net score on a hole, recorded for display.
type SkinsScore struct {
	Player int     `json:"player"`
	Net    float64 `json:"net"`
}

// SkinsHole is the settlement of one hole: who (if anyone) took the pot
// and how many accumulated units were at stake.
type SkinsHole struct {
	Hole   int          `json:"hole"`
	Pot    int          `json:"pot"`    // units at stake this hole
	Winner int          `json:"winner"` // -1 when the hole pushes or lacks scores
	Scores []SkinsScore `json:"scores"`
}

// SkinsResult is the full-round settlement.
type SkinsResult struct {
	Validity
	Holes      []SkinsHole `json:"holes"`
	Skins      []int       `json:"skins"` // units won per player
	TotalSkins int         `json:"total_skins"`
	Payouts    []float64   `json:"payouts"`
}

// ComputeSkins settles the carry-over pot game. Each hole puts one unit in
// the pot plus anything carried from unclaimed holes; the sole lowest net
// score takes it all, and ties or short fields push the pot forward when
// carrying is on. Payouts split the total money (buy-in times players) in
// proportion to skins won.
func ComputeSkins(sheet *Sheet, opts SkinsOptions) SkinsResult {
	n := len(sheet.Players)
	if n < 2 {
		return SkinsResult{Validity: invalid(fmt.Sprintf("skins needs at least 2 players, have %d", n))}
	}

	result := SkinsResult{
		Validity: valid(),
		Skins:    make([]int, n),
		Payouts:  make([]float64, n),
	}
	adjusted := sheet.Adjusted()

	pot := 1
	for hole := 1; hole <= golf.Holes; hole++ {
		par := sheet.Course.Par(hole)
		si := sheet.Course.StrokeIndex(hole)
		h := SkinsHole{Hole: hole, Pot: pot, Winner: -1}

		for p := 0; p < n; p++ {
			gross, ok := sheet.Card.Gross(p, hole)
			if !ok {
				continue
			}
			var net float64
			if opts.HalfPops {
				net = golf.NetScoreHalf(gross, par, golf.AllotHalf(adjusted[p], si))
			} else {
				net = float64(golf.NetScore(gross, par, golf.Allot(adjusted[p], si)))
			}
			h.Scores = append(h.Scores, SkinsScore{Player: p, Net: net})
		}

		if len(h.Scores) >= 2 {
			low, count := h.Scores[0], 1
			for _, s := range h.Scores[1:] {
				switch {
				case s.Net < low.Net:
					low, count = s, 1
				case s.Net == low.Net:
					count++
				}
			}
			if count == 1 {
				h.Winner = low.Player
				result.Skins[low.Player] += pot
				result.TotalSkins += pot
			}
		}

		result.Holes = append(result.Holes, h)

		if h.Winner >= 0 {
			pot = 1
		} else if opts.Carry {
			pot++
		} else {
			pot = 1
		}
	}

	if result.TotalSkins > 0 {
		purse := opts.BuyIn * float64(n)
		for p := 0; p < n; p++ {
			result.Payouts[p] = float64(result.Skins[p]) / float64(result.TotalSkins) * purse
		}
	}

	return result
}
