package golf

// AdjustedHandicaps converts raw course handicaps into "play off the low"
// adjusted handicaps: every player's handicap minus the lowest in the
// field. The lowest-handicap player always comes out at zero and defines
// the baseline; everyone else is non-negative. Recomputed from scratch on
// every call; the input is small enough that caching isn't worth it.
func AdjustedHandicaps(players []Player) []int {
	if len(players) == 0 {
		return nil
	}

	low := players[0].CourseHandicap
	for _, p := range players[1:] {
		if p.CourseHandicap < low {
			low = p.CourseHandicap
		}
	}

	adjusted := make([]int, len(players))
	for i, p := range players {
		adjusted[i] = p.CourseHandicap - low
	}
	return adjusted
}

// Allot returns the number of handicap strokes a player receives on a hole
// given their adjusted handicap and the hole's stroke index. Every hole
// gets adjusted/18 strokes flat, and the remainder is spread one stroke
// each over the hardest holes (lowest stroke indexes) first.
//
// Negative adjusted handicaps never reach this path; they are clamped to
// zero so the baseline player receives nothing everywhere.
func Allot(adjusted, strokeIndex int) int {
	if adjusted <= 0 {
		return 0
	}
	base := adjusted / Holes
	remainder := adjusted % Holes
	if strokeIndex <= remainder {
		return base + 1
	}
	return base
}

// AllotHalf is the "half-pops" allotment used by the skins game: the player
// receives strokes as if their handicap were halved (rounded down), with
// the normal full-stroke distribution applied to that halved value.
//
// Plus-handicap players (negative adjusted values) give strokes instead of
// receiving them: the allotment is computed on the absolute value, negated,
// and then itself halved, which is the only place half-stroke allotments
// occur. This behavior is skins-local and deliberately not generalized to
// the other games.
func AllotHalf(adjusted, strokeIndex int) float64 {
	if adjusted >= 0 {
		return float64(Allot(adjusted/2, strokeIndex))
	}
	return -float64(Allot(-adjusted, strokeIndex)) / 2
}
