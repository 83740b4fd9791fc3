package golf

import (
	"testing"
)

func TestNetScore(t *testing.T) {
	tests := []struct {
		name     string
		gross    int
		par      int
		allot    int
		expected int
	}{
		// par 4, one stroke: NDB = 4+2+1 = 7; gross 9 caps to 7, net 6
		{"blow-up hole capped", 9, 4, 1, 6},
		{"at the cap", 7, 4, 1, 6},
		{"below the cap", 5, 4, 1, 4},
		{"no strokes no cap hit", 6, 4, 0, 6},
		{"no strokes capped", 8, 4, 0, 6},
		{"birdie with a stroke", 3, 4, 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NetScore(tt.gross, tt.par, tt.allot); got != tt.expected {
				t.Errorf("NetScore(%d, %d, %d) = %d, want %d", tt.gross, tt.par, tt.allot, got, tt.expected)
			}
		})
	}
}

// Raising gross below the NDB ceiling moves net 1:1; raising it past the
// ceiling changes nothing.
func TestNetScoreCapBehavior(t *testing.T) {
	const par, allot = 4, 2
	ndb := NetDoubleBogey(par, allot)
	if ndb != 8 {
		t.Fatalf("NetDoubleBogey(4, 2) = %d, want 8", ndb)
	}

	for gross := 1; gross < ndb; gross++ {
		if NetScore(gross+1, par, allot)-NetScore(gross, par, allot) != 1 {
			t.Errorf("net not 1:1 below cap at gross %d", gross)
		}
	}
	atCap := NetScore(ndb, par, allot)
	for gross := ndb; gross <= 20; gross++ {
		if NetScore(gross, par, allot) != atCap {
			t.Errorf("net changed past cap at gross %d", gross)
		}
	}
}

func TestNetScoreHalf(t *testing.T) {
	// par 4 with half-stroke back: NDB = 5.5, gross 4 stays, net 4.5
	if got := NetScoreHalf(4, 4, -0.5); got != 4.5 {
		t.Errorf("NetScoreHalf(4, 4, -0.5) = %v, want 4.5", got)
	}
	// par 4 with one allotted stroke: gross 10 caps at 7, net 6
	if got := NetScoreHalf(10, 4, 1); got != 6 {
		t.Errorf("NetScoreHalf(10, 4, 1) = %v, want 6", got)
	}
}
