package games

import (
	"reflect"
	"testing"

	"github.com/greenside/greenside/golf"
)

func testCourse(t *testing.T) *golf.Course {
	t.Helper()
	pars := [golf.Holes]int{4, 5, 3, 4, 4, 4, 3, 5, 4, 4, 3, 4, 5, 4, 4, 3, 4, 5}
	indexes := [golf.Holes]int{5, 9, 17, 1, 11, 7, 15, 13, 3, 4, 16, 2, 10, 8, 12, 18, 6, 14}
	course, err := golf.NewCourse("test", pars, indexes)
	if err != nil {
		t.Fatalf("building test course: %v", err)
	}
	return course
}

// fourPlayerSheet builds a scratch 4-player sheet with no scores entered.
func fourPlayerSheet(t *testing.T) *Sheet {
	t.Helper()
	return &Sheet{
		Course: testCourse(t),
		Players: []golf.Player{
			{Name: "Al", CourseHandicap: 0},
			{Name: "Bo", CourseHandicap: 0},
			{Name: "Cy", CourseHandicap: 0},
			{Name: "Di", CourseHandicap: 0},
		},
		Card: golf.NewScorecard(4),
	}
}

func standardVegasOpts() VegasOptions {
	return VegasOptions{
		PointValue: 1,
		Teams:      [2][2]int{{0, 1}, {2, 3}},
	}
}

func TestVegasBasicWin(t *testing.T) {
	sheet := fourPlayerSheet(t)
	// Hole 1 is par 4. Team A shoots 4,5 -> 45; team B shoots 6,7 -> 67.
	sheet.Card.SetGross(0, 1, 4)
	sheet.Card.SetGross(1, 1, 5)
	sheet.Card.SetGross(2, 1, 6)
	sheet.Card.SetGross(3, 1, 7)

	result := ComputeVegas(sheet, standardVegasOpts())
	if !result.Valid {
		t.Fatalf("unexpected invalid result: %s", result.Reason)
	}
	if len(result.Holes) != 1 {
		t.Fatalf("settled %d holes, want 1", len(result.Holes))
	}

	h := result.Holes[0]
	if h.Numbers[0] != 45 || h.Numbers[1] != 67 {
		t.Errorf("numbers = %v, want [45 67]", h.Numbers)
	}
	if h.Winner != 0 || h.Points != 22 || h.Multiplier != 1 {
		t.Errorf("winner/points/mult = %d/%d/%d, want 0/22/1", h.Winner, h.Points, h.Multiplier)
	}
	if result.Points[0] != 22 || result.Points[1] != -22 {
		t.Errorf("points = %v, want [22 -22]", result.Points)
	}
	if result.Dollars[0] != 22 || result.Dollars[1] != -22 {
		t.Errorf("dollars = %v, want [22 -22]", result.Dollars)
	}
}

// Scores always concatenate low digit first, regardless of entry order.
func TestVegasDigitOrder(t *testing.T) {
	sheet := fourPlayerSheet(t)
	sheet.Card.SetGross(0, 1, 5)
	sheet.Card.SetGross(1, 1, 4)
	sheet.Card.SetGross(2, 1, 5)
	sheet.Card.SetGross(3, 1, 4)

	result := ComputeVegas(sheet, standardVegasOpts())
	h := result.Holes[0]
	if h.Numbers[0] != 45 || h.Numbers[1] != 45 {
		t.Errorf("numbers = %v, want [45 45]", h.Numbers)
	}
	if h.Winner != -1 || h.Points != 0 {
		t.Errorf("tied hole settled: winner %d points %d", h.Winner, h.Points)
	}
}

func TestVegasDoubleDigitScores(t *testing.T) {
	if got := digitPair(4, 12); got != 412 {
		t.Errorf("digitPair(4, 12) = %d, want 412", got)
	}
	if got := digitPair(12, 4); got != 124 {
		t.Errorf("digitPair(12, 4) = %d, want 124", got)
	}
}

// Nets can drop below zero on a heavily stroked hole; they floor at a 0
// digit instead of poisoning the concatenation.
func TestVegasNegativeNetFloorsAtZero(t *testing.T) {
	if got := digitPair(0, 5); got != 5 {
		t.Errorf("digitPair(0, 5) = %d, want 5", got)
	}
	if got := digitPair(-1, 5); got != 5 {
		t.Errorf("digitPair(-1, 5) = %d, want 5", got)
	}

	sheet := fourPlayerSheet(t)
	sheet.Players[3].CourseHandicap = 20 // two strokes on the index-1 hole

	// Hole 4 has stroke index 1; player 3's gross 1 nets 1-2 = -1.
	sheet.Card.SetGross(0, 4, 4)
	sheet.Card.SetGross(1, 4, 5)
	sheet.Card.SetGross(2, 4, 5)
	sheet.Card.SetGross(3, 4, 1)

	opts := standardVegasOpts()
	opts.UseNet = true
	result := ComputeVegas(sheet, opts)
	h := result.Holes[0]
	if h.Numbers[1] != 5 {
		t.Errorf("team B number = %d, want 5 (net -1 floors to 0)", h.Numbers[1])
	}
}

// A birdie by one side flips the other side's digits, and only theirs.
func TestVegasFlipSymmetry(t *testing.T) {
	sheet := fourPlayerSheet(t)
	// Hole 1 par 4: team A birdies (3,5 -> 35), team B does not (4,6).
	sheet.Card.SetGross(0, 1, 3)
	sheet.Card.SetGross(1, 1, 5)
	sheet.Card.SetGross(2, 1, 4)
	sheet.Card.SetGross(3, 1, 6)

	result := ComputeVegas(sheet, standardVegasOpts())
	h := result.Holes[0]
	if h.Flipped[0] || !h.Flipped[1] {
		t.Errorf("flipped = %v, want [false true]", h.Flipped)
	}
	if h.Numbers[0] != 35 || h.Numbers[1] != 64 {
		t.Errorf("numbers = %v, want [35 64]", h.Numbers)
	}
	if h.Winner != 0 || h.Points != 29 {
		t.Errorf("winner/points = %d/%d, want 0/29", h.Winner, h.Points)
	}
}

func TestVegasBothBirdieBothFlip(t *testing.T) {
	sheet := fourPlayerSheet(t)
	sheet.Card.SetGross(0, 1, 3)
	sheet.Card.SetGross(1, 1, 5)
	sheet.Card.SetGross(2, 1, 3)
	sheet.Card.SetGross(3, 1, 4)

	result := ComputeVegas(sheet, standardVegasOpts())
	h := result.Holes[0]
	if !h.Flipped[0] || !h.Flipped[1] {
		t.Errorf("flipped = %v, want both", h.Flipped)
	}
	if h.Numbers[0] != 53 || h.Numbers[1] != 43 {
		t.Errorf("numbers = %v, want [53 43]", h.Numbers)
	}
}

func TestVegasMultipliers(t *testing.T) {
	tests := []struct {
		name     string
		opts     func(o *VegasOptions)
		teamA    [2]int // gross for players 0,1 on hole 2 (par 5)
		expected int
	}{
		{"double on birdie", func(o *VegasOptions) { o.DoubleBirdie = true }, [2]int{4, 6}, 2},
		{"birdie without option", func(o *VegasOptions) {}, [2]int{4, 6}, 1},
		{"triple on eagle", func(o *VegasOptions) { o.TripleEagle = true }, [2]int{3, 6}, 3},
		{"eagle beats birdie multiplier", func(o *VegasOptions) { o.DoubleBirdie = true; o.TripleEagle = true }, [2]int{3, 6}, 3},
		{"eagle without triple falls to double", func(o *VegasOptions) { o.DoubleBirdie = true }, [2]int{3, 6}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheet := fourPlayerSheet(t)
			sheet.Card.SetGross(0, 2, tt.teamA[0])
			sheet.Card.SetGross(1, 2, tt.teamA[1])
			sheet.Card.SetGross(2, 2, 6)
			sheet.Card.SetGross(3, 2, 7)

			opts := standardVegasOpts()
			tt.opts(&opts)
			result := ComputeVegas(sheet, opts)
			if got := result.Holes[0].Multiplier; got != tt.expected {
				t.Errorf("multiplier = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestVegasSkipsIncompleteHoles(t *testing.T) {
	sheet := fourPlayerSheet(t)
	sheet.Card.SetGross(0, 1, 4)
	sheet.Card.SetGross(1, 1, 5)
	sheet.Card.SetGross(2, 1, 6)
	// player 3 has no score on hole 1

	result := ComputeVegas(sheet, standardVegasOpts())
	if len(result.Holes) != 0 {
		t.Errorf("settled %d holes with a missing score, want 0", len(result.Holes))
	}
	if result.Points[0] != 0 || result.Points[1] != 0 {
		t.Errorf("points = %v, want zeros", result.Points)
	}
}

func TestVegasInvalidTeams(t *testing.T) {
	sheet := fourPlayerSheet(t)
	opts := standardVegasOpts()
	opts.Teams = [2][2]int{{0, 1}, {1, 2}} // player 1 on both teams

	result := ComputeVegas(sheet, opts)
	if result.Valid {
		t.Fatal("accepted overlapping teams")
	}
	if result.Reason == "" {
		t.Error("invalid result carries no reason")
	}
	if len(result.Holes) != 0 {
		t.Error("invalid result emitted per-hole entries")
	}
}

func TestVegasThreePlayerRotation(t *testing.T) {
	sheet := fourPlayerSheet(t)
	sheet.Players = sheet.Players[:3]
	sheet.Card = golf.NewScorecard(3)

	// Hole 1 (par 4): player 0 partners the ghost (par 4).
	// Team A = {0, ghost}: 5,4 -> 45. Team B = {1, 2}: 4,4 -> 44. B wins 1.
	sheet.Card.SetGross(0, 1, 5)
	sheet.Card.SetGross(1, 1, 4)
	sheet.Card.SetGross(2, 1, 4)

	// Hole 7 (par 3): player 1 partners the ghost (par 3).
	// Team A = {1, ghost}: 4,3 -> 34. Team B = {0, 2}: 3,5 -> 35. A wins 1.
	sheet.Card.SetGross(0, 7, 3)
	sheet.Card.SetGross(1, 7, 4)
	sheet.Card.SetGross(2, 7, 5)

	result := ComputeVegas(sheet, VegasOptions{PointValue: 1})
	if !result.Valid {
		t.Fatalf("unexpected invalid result: %s", result.Reason)
	}
	if result.Mode != VegasModeRotation {
		t.Errorf("mode = %q, want rotation", result.Mode)
	}
	if len(result.Holes) != 2 {
		t.Fatalf("settled %d holes, want 2", len(result.Holes))
	}

	h1 := result.Holes[0]
	if h1.Numbers[0] != 45 || h1.Numbers[1] != 44 || h1.Winner != 1 {
		t.Errorf("hole 1: numbers %v winner %d, want [45 44] winner 1", h1.Numbers, h1.Winner)
	}
	h7 := result.Holes[1]
	if h7.Numbers[0] != 34 || h7.Numbers[1] != 35 || h7.Winner != 0 {
		t.Errorf("hole 7: numbers %v winner %d, want [34 35] winner 0", h7.Numbers, h7.Winner)
	}

	// Slot 0 is always the ghost side; Members says which real player is
	// behind it on each hole.
	if !reflect.DeepEqual(h1.Members, [2][]int{{0}, {1, 2}}) {
		t.Errorf("hole 1 members = %v, want [[0] [1 2]]", h1.Members)
	}
	if !reflect.DeepEqual(h7.Members, [2][]int{{1}, {0, 2}}) {
		t.Errorf("hole 7 members = %v, want [[1] [0 2]]", h7.Members)
	}
}

func TestVegasTwoPlayerGhost(t *testing.T) {
	sheet := fourPlayerSheet(t)
	sheet.Players = sheet.Players[:2]
	sheet.Card = golf.NewScorecard(2)

	// Hole 1 par 4, ghosts score 4 for both sides.
	sheet.Card.SetGross(0, 1, 5) // team A: 4,5 -> 45
	sheet.Card.SetGross(1, 1, 6) // team B: 4,6 -> 46

	result := ComputeVegas(sheet, VegasOptions{PointValue: 1})
	if result.Mode != VegasModeGhost {
		t.Errorf("mode = %q, want ghost", result.Mode)
	}
	h := result.Holes[0]
	if h.Numbers[0] != 45 || h.Numbers[1] != 46 || h.Winner != 0 || h.Points != 1 {
		t.Errorf("hole = %+v, want 45 beats 46 by 1", h)
	}
}

func TestVegasWrongPlayerCount(t *testing.T) {
	sheet := fourPlayerSheet(t)
	sheet.Players = append(sheet.Players, golf.Player{Name: "Ed"})
	sheet.Card.AddPlayer()

	result := ComputeVegas(sheet, standardVegasOpts())
	if result.Valid {
		t.Error("accepted 5 players")
	}
}

func TestVegasNetScoring(t *testing.T) {
	sheet := fourPlayerSheet(t)
	sheet.Players[3].CourseHandicap = 18 // one stroke per hole after adjustment

	// Hole 1 par 4: A = 4,5 -> 45. B gross 5,6, player 3 nets 5 -> 55.
	sheet.Card.SetGross(0, 1, 4)
	sheet.Card.SetGross(1, 1, 5)
	sheet.Card.SetGross(2, 1, 5)
	sheet.Card.SetGross(3, 1, 6)

	opts := standardVegasOpts()
	opts.UseNet = true
	result := ComputeVegas(sheet, opts)
	h := result.Holes[0]
	if h.Numbers[1] != 55 {
		t.Errorf("team B number = %d, want 55", h.Numbers[1])
	}
}
