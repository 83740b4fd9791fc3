package games

import (
	"fmt"
	"sort"

	"github.com/greenside/greenside/golf"
)

// HiLoOptions configures the hi-lo engine. UnitValue is the dollar value
// of one unit when totaling winnings.
type HiLoOptions struct {
	UnitValue float64 `json:"unit_value"`
}

// HiLoHole records the point split on one hole. Holes with any missing
// score are recorded unplayed and award nothing.
type HiLoHole struct {
	Hole   int  `json:"hole"`
	Played bool `json:"played"`
	A      int  `json:"a"`
	B      int  `json:"b"`
}

// HiLoGame is one accumulating sub-game: the front nine, back nine, the
// full eighteen, or a press spawned by a 2-0 hole.
type HiLoGame struct {
	Name   string `json:"name"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Units  int    `json:"units"`
	A      int    `json:"a"`
	B      int    `json:"b"`
	Winner int    `json:"winner"` // 0 team A, 1 team B, -1 push
	Press  bool   `json:"press"`
}

// HiLoResult is the full-round settlement.
type HiLoResult struct {
	Validity
	TeamA          [2]int     `json:"team_a"`          // lowest and highest handicaps
	TeamB          [2]int     `json:"team_b"`          // the two middle handicaps
	StrokeReceiver int        `json:"stroke_receiver"` // -1 when team sums match
	Strokes        int        `json:"strokes"`
	Holes          []HiLoHole `json:"holes"`
	Games          []HiLoGame `json:"games"`
	UnitsA         int        `json:"units_a"`
	UnitsB         int        `json:"units_b"`
	DollarsA       float64    `json:"dollars_a"`
	DollarsB       float64    `json:"dollars_b"`
}

// ComputeHiLo settles the team medal/match hybrid. Teams come straight
// from the handicaps: the lowest and highest players pair up against the
// two in the middle. The team carrying the higher handicap sum gets the
// difference back as strokes, all of them on its weaker member's card.
// Each hole compares the teams' low balls and high balls for a point
// apiece; the front nine, back nine and full eighteen accumulate those
// points as separate wagers, and any 2-0 hole presses the current nine.
func ComputeHiLo(sheet *Sheet, opts HiLoOptions) HiLoResult {
	if len(sheet.Players) != 4 {
		return HiLoResult{Validity: invalid(fmt.Sprintf("hi-lo needs exactly 4 players, have %d", len(sheet.Players)))}
	}

	order := []int{0, 1, 2, 3}
	sort.SliceStable(order, func(i, j int) bool {
		return sheet.Players[order[i]].CourseHandicap < sheet.Players[order[j]].CourseHandicap
	})

	result := HiLoResult{
		Validity:       valid(),
		TeamA:          [2]int{order[0], order[3]},
		TeamB:          [2]int{order[1], order[2]},
		StrokeReceiver: -1,
	}

	sumA := sheet.Players[order[0]].CourseHandicap + sheet.Players[order[3]].CourseHandicap
	sumB := sheet.Players[order[1]].CourseHandicap + sheet.Players[order[2]].CourseHandicap
	switch {
	case sumA > sumB:
		result.StrokeReceiver = order[3] // team A's weaker member
		result.Strokes = sumA - sumB
	case sumB > sumA:
		result.StrokeReceiver = order[2] // team B's weaker member
		result.Strokes = sumB - sumA
	}

	games := []*HiLoGame{
		{Name: "front 9", Start: 1, End: 9, Units: 1},
		{Name: "back 9", Start: 10, End: 18, Units: 1},
		{Name: "full 18", Start: 1, End: 18, Units: 2},
	}
	presses := 0

	for hole := 1; hole <= golf.Holes; hole++ {
		h := HiLoHole{Hole: hole}

		scores := make(map[int]int, 4)
		have := true
		for p := 0; p < 4; p++ {
			gross, ok := sheet.Card.Gross(p, hole)
			if !ok {
				have = false
				break
			}
			if p == result.StrokeReceiver {
				gross -= golf.Allot(result.Strokes, sheet.Course.StrokeIndex(hole))
			}
			scores[p] = gross
		}

		if have {
			h.Played = true
			aLow, aHigh := sorted2(scores[result.TeamA[0]], scores[result.TeamA[1]])
			bLow, bHigh := sorted2(scores[result.TeamB[0]], scores[result.TeamB[1]])

			if aLow < bLow {
				h.A++
			} else if bLow < aLow {
				h.B++
			}
			if aHigh < bHigh {
				h.A++
			} else if bHigh < aHigh {
				h.B++
			}

			for _, g := range games {
				if hole >= g.Start && hole <= g.End {
					g.A += h.A
					g.B += h.B
				}
			}

			// A 2-0 hole presses the rest of this nine. The full 18
			// never presses, and a press on the closing hole of a nine
			// has nowhere to start.
			if h.A == 2 || h.B == 2 {
				segEnd := 9
				if hole > 9 {
					segEnd = 18
				}
				if hole < segEnd {
					presses++
					games = append(games, &HiLoGame{
						Name:  fmt.Sprintf("press %d", presses),
						Start: hole + 1,
						End:   segEnd,
						Units: 1,
						Press: true,
					})
				}
			}
		}

		result.Holes = append(result.Holes, h)
	}

	for _, g := range games {
		switch {
		case g.A > g.B:
			g.Winner = 0
			result.UnitsA += g.Units
		case g.B > g.A:
			g.Winner = 1
			result.UnitsB += g.Units
		default:
			g.Winner = -1
		}
		result.Games = append(result.Games, *g)
	}

	result.DollarsA = float64(result.UnitsA-result.UnitsB) * opts.UnitValue
	result.DollarsB = -result.DollarsA
	return result
}
