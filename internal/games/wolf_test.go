package games

import (
	"testing"

	"github.com/greenside/greenside/golf"
)

func TestWolfPairWin(t *testing.T) {
	sheet := fourPlayerSheet(t)
	sheet.Card.SetGross(0, 1, 4)
	sheet.Card.SetGross(1, 1, 5)
	sheet.Card.SetGross(2, 1, 5)
	sheet.Card.SetGross(3, 1, 6)

	opts := WolfOptions{
		PointValue: 2,
		Picks:      []WolfPick{{Hole: 1, Wolf: 0, Partner: 1}},
	}
	result := ComputeWolf(sheet, opts)
	if !result.Valid {
		t.Fatalf("unexpected invalid result: %s", result.Reason)
	}

	h := result.Holes[0]
	if h.Winner != 0 {
		t.Fatalf("winner = %d, want wolf side", h.Winner)
	}
	// Pair splits the base evenly.
	want := []float64{1, 1, 0, 0}
	for p, award := range h.Awards {
		if award != want[p] {
			t.Errorf("awards[%d] = %v, want %v", p, award, want[p])
		}
	}
}

func TestWolfLoneWin(t *testing.T) {
	sheet := fourPlayerSheet(t)
	sheet.Card.SetGross(0, 1, 4)
	sheet.Card.SetGross(1, 1, 5)
	sheet.Card.SetGross(2, 1, 5)
	sheet.Card.SetGross(3, 1, 6)

	opts := WolfOptions{
		PointValue: 2,
		Picks:      []WolfPick{{Hole: 1, Wolf: 0, Partner: LoneWolf}},
	}
	result := ComputeWolf(sheet, opts)
	if result.Totals[0] != 6 {
		t.Errorf("lone wolf total = %v, want 3x base 6", result.Totals[0])
	}
}

func TestWolfLoneLossSplitsField(t *testing.T) {
	sheet := fourPlayerSheet(t)
	sheet.Card.SetGross(0, 1, 6)
	sheet.Card.SetGross(1, 1, 4)
	sheet.Card.SetGross(2, 1, 5)
	sheet.Card.SetGross(3, 1, 5)

	opts := WolfOptions{
		PointValue: 3,
		Picks:      []WolfPick{{Hole: 1, Wolf: 0, Partner: LoneWolf}},
	}
	result := ComputeWolf(sheet, opts)
	h := result.Holes[0]
	if h.Winner != 1 {
		t.Fatalf("winner = %d, want field", h.Winner)
	}
	want := []float64{0, 1, 1, 1}
	for p, award := range h.Awards {
		if award != want[p] {
			t.Errorf("awards[%d] = %v, want %v", p, award, want[p])
		}
	}
}

func TestWolfBirdieDoubles(t *testing.T) {
	sheet := fourPlayerSheet(t)
	// Hole 1 par 4: wolf birdies.
	sheet.Card.SetGross(0, 1, 3)
	sheet.Card.SetGross(1, 1, 5)
	sheet.Card.SetGross(2, 1, 5)
	sheet.Card.SetGross(3, 1, 6)

	opts := WolfOptions{
		PointValue:   2,
		DoubleBirdie: true,
		Picks:        []WolfPick{{Hole: 1, Wolf: 0, Partner: LoneWolf}},
	}
	result := ComputeWolf(sheet, opts)
	if result.Holes[0].Base != 4 {
		t.Errorf("base = %v, want doubled 4", result.Holes[0].Base)
	}
	if result.Totals[0] != 12 {
		t.Errorf("lone wolf total = %v, want 12", result.Totals[0])
	}
}

func TestWolfTiePushes(t *testing.T) {
	sheet := fourPlayerSheet(t)
	sheet.Card.SetGross(0, 1, 4)
	sheet.Card.SetGross(1, 1, 5)
	sheet.Card.SetGross(2, 1, 4)
	sheet.Card.SetGross(3, 1, 6)

	opts := WolfOptions{
		PointValue: 1,
		Picks:      []WolfPick{{Hole: 1, Wolf: 0, Partner: 1}},
	}
	result := ComputeWolf(sheet, opts)
	if result.Holes[0].Winner != -1 {
		t.Errorf("winner = %d, want push on tied best balls", result.Holes[0].Winner)
	}
}

func TestWolfSkipsUnassignedAndEmptyHoles(t *testing.T) {
	sheet := fourPlayerSheet(t)
	sheet.Card.SetGross(0, 1, 4)
	// Field has no scores on hole 1; hole 2 has no pick at all.
	sheet.Card.SetGross(0, 2, 4)
	sheet.Card.SetGross(1, 2, 5)

	opts := WolfOptions{
		PointValue: 1,
		Picks:      []WolfPick{{Hole: 1, Wolf: 0, Partner: LoneWolf}},
	}
	result := ComputeWolf(sheet, opts)
	if len(result.Holes) != 1 {
		t.Fatalf("holes = %d, want just the assigned hole", len(result.Holes))
	}
	if result.Holes[0].Winner != -1 {
		t.Error("settled a hole where one side had no scores")
	}
}

func TestWolfValidation(t *testing.T) {
	sheet := fourPlayerSheet(t)

	if r := ComputeWolf(sheet, WolfOptions{Picks: []WolfPick{{Hole: 0, Wolf: 0, Partner: LoneWolf}}}); r.Valid {
		t.Error("accepted hole 0")
	}
	if r := ComputeWolf(sheet, WolfOptions{Picks: []WolfPick{{Hole: 1, Wolf: 7, Partner: LoneWolf}}}); r.Valid {
		t.Error("accepted out-of-range wolf")
	}
	if r := ComputeWolf(sheet, WolfOptions{Picks: []WolfPick{{Hole: 1, Wolf: 1, Partner: 1}}}); r.Valid {
		t.Error("accepted wolf partnering themselves")
	}

	sheet.Players = sheet.Players[:2]
	if r := ComputeWolf(sheet, WolfOptions{}); r.Valid {
		t.Error("accepted 2 players")
	}
}

// With five players a lone wolf loss splits the base four ways.
func TestWolfFivePlayerFieldSplit(t *testing.T) {
	sheet := fourPlayerSheet(t)
	sheet.Players = append(sheet.Players, golf.Player{Name: "Ed"})
	sheet.Card.AddPlayer()

	sheet.Card.SetGross(0, 1, 6)
	for p := 1; p < 5; p++ {
		sheet.Card.SetGross(p, 1, 5)
	}

	opts := WolfOptions{
		PointValue: 4,
		Picks:      []WolfPick{{Hole: 1, Wolf: 0, Partner: LoneWolf}},
	}
	result := ComputeWolf(sheet, opts)
	for p := 1; p < 5; p++ {
		if result.Totals[p] != 1 {
			t.Errorf("totals[%d] = %v, want 1 (base split four ways)", p, result.Totals[p])
		}
	}
}
