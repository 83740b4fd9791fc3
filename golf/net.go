package golf

// NetDoubleBogey returns the NDB ceiling for a hole: par + 2 + the
// player's allotted strokes on that hole. Gross scores above the ceiling
// count as the ceiling for net-scoring purposes, so one blow-up hole can't
// distort a round.
func NetDoubleBogey(par, allot int) int {
	return par + 2 + allot
}

// NetScore applies a player's allotment and the NDB cap to a gross score.
// Callers are responsible for absence: a missing gross score has no net
// score, and must be filtered out before this is called.
func NetScore(gross, par, allot int) int {
	capped := gross
	if ndb := NetDoubleBogey(par, allot); capped > ndb {
		capped = ndb
	}
	return capped - allot
}

// NetScoreHalf is NetScore over a fractional allotment, used by the
// half-pops skins path where allotments can be half-strokes.
func NetScoreHalf(gross, par int, allot float64) float64 {
	capped := float64(gross)
	if ndb := float64(par) + 2 + allot; capped > ndb {
		capped = ndb
	}
	return capped - allot
}
