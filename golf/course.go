package golf

import (
	"fmt"
)

// Holes is the number of holes in a regulation round
const Holes = 18

// Hole describes a single hole on a course: its par and its stroke index
// (difficulty rank, 1 = hardest), which decides how handicap strokes are
// distributed across the round.
type Hole struct {
	Number      int `json:"number"`
	Par         int `json:"par"`
	StrokeIndex int `json:"stroke_index"`
}

// Course is an immutable 18-hole par and stroke-index table for a single
// tee/course configuration.
type Course struct {
	name  string
	holes [Holes]Hole
}

// NewCourse builds a course from parallel par and stroke-index tables,
// validating that pars are in the 3-5 range and the stroke indexes form a
// permutation of 1..18.
func NewCourse(name string, pars, strokeIndexes [Holes]int) (*Course, error) {
	c := &Course{name: name}

	seen := [Holes + 1]bool{}
	for i := 0; i < Holes; i++ {
		par := pars[i]
		if par < 3 || par > 5 {
			return nil, fmt.Errorf("hole %d: par %d out of range 3-5", i+1, par)
		}
		si := strokeIndexes[i]
		if si < 1 || si > Holes {
			return nil, fmt.Errorf("hole %d: stroke index %d out of range 1-%d", i+1, si, Holes)
		}
		if seen[si] {
			return nil, fmt.Errorf("hole %d: duplicate stroke index %d", i+1, si)
		}
		seen[si] = true

		c.holes[i] = Hole{Number: i + 1, Par: par, StrokeIndex: si}
	}

	return c, nil
}

// Name returns the course/tee name.
func (c *Course) Name() string {
	return c.name
}

// Par returns the par for a hole (1-based).
func (c *Course) Par(hole int) int {
	return c.holes[hole-1].Par
}

// StrokeIndex returns the stroke index for a hole (1-based).
func (c *Course) StrokeIndex(hole int) int {
	return c.holes[hole-1].StrokeIndex
}

// Hole returns the full hole record (1-based).
func (c *Course) Hole(hole int) Hole {
	return c.holes[hole-1]
}

// TotalPar returns the sum of pars over all 18 holes.
func (c *Course) TotalPar() int {
	total := 0
	for _, h := range c.holes {
		total += h.Par
	}
	return total
}

// Pars returns the par table as a fixed array.
func (c *Course) Pars() [Holes]int {
	var pars [Holes]int
	for i, h := range c.holes {
		pars[i] = h.Par
	}
	return pars
}

// StrokeIndexes returns the stroke-index table as a fixed array.
func (c *Course) StrokeIndexes() [Holes]int {
	var indexes [Holes]int
	for i, h := range c.holes {
		indexes[i] = h.StrokeIndex
	}
	return indexes
}
