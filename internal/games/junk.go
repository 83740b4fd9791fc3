package games

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/greenside/greenside/golf"
)

// Achievement is a named junk bonus with its point weight. Achievements
// are asserted by the players ("I got a sandy on 7"), never detected from
// scores.
type Achievement struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Points int    `json:"points" yaml:"points"`
}

// DefaultCatalog is the stock junk catalog. Groups can override it with a
// YAML file via LoadCatalog.
func DefaultCatalog() []Achievement {
	return []Achievement{
		{ID: "sandy", Name: "Sandy", Points: 2},
		{ID: "greenie", Name: "Greenie", Points: 2},
		{ID: "barky", Name: "Barky", Points: 2},
		{ID: "hogan", Name: "Hogan", Points: 3},
		{ID: "polie", Name: "Polie", Points: 2},
		{ID: "arnie", Name: "Arnie", Points: 3},
		{ID: "ace", Name: "Hole-in-1", Points: 10},
	}
}

// LoadCatalog reads an achievement catalog from a YAML file.
func LoadCatalog(path string) ([]Achievement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	var catalog struct {
		Achievements []Achievement `yaml:"achievements"`
	}
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	seen := make(map[string]bool)
	for _, a := range catalog.Achievements {
		if a.ID == "" {
			return nil, fmt.Errorf("catalog entry %q has no id", a.Name)
		}
		if seen[a.ID] {
			return nil, fmt.Errorf("duplicate achievement id %q", a.ID)
		}
		seen[a.ID] = true
	}
	return catalog.Achievements, nil
}

// Mark records that a player earned an achievement on a hole.
type Mark struct {
	Player      int    `json:"player"`
	Hole        int    `json:"hole"`
	Achievement string `json:"achievement"`
}

// JunkOptions configures the junk engine. A nil Catalog uses the default.
type JunkOptions struct {
	UseNet  bool          `json:"use_net"`
	Catalog []Achievement `json:"catalog,omitempty"`
}

// JunkScore is one player's junk tally on a hole: dots from the score
// relative to par, plus the weights of any marked achievements.
type JunkScore struct {
	Player       int      `json:"player"`
	Dots         int      `json:"dots"`
	Bonus        int      `json:"bonus"`
	Total        int      `json:"total"`
	Achievements []string `json:"achievements,omitempty"`
}

// JunkHole holds every player's junk tally for a hole.
type JunkHole struct {
	Hole   int         `json:"hole"`
	Scores []JunkScore `json:"scores"`
}

// JunkResult is the full-round tally.
type JunkResult struct {
	Validity
	Holes  []JunkHole `json:"holes"`
	Totals []int      `json:"totals"`
}

// Dots converts a score-to-par differential into base junk points:
// eagle or better 4, birdie 2, par 1, anything over par 0.
func Dots(diff int) int {
	switch {
	case diff <= -2:
		return 4
	case diff == -1:
		return 2
	case diff == 0:
		return 1
	default:
		return 0
	}
}

// ComputeJunk tallies the achievement point game. Base dots depend only on
// each player's own score against par; marked achievements stack on top
// whether or not a score is in.
func ComputeJunk(sheet *Sheet, marks []Mark, opts JunkOptions) JunkResult {
	n := len(sheet.Players)
	if n == 0 {
		return JunkResult{Validity: invalid("junk needs at least 1 player")}
	}

	catalog := opts.Catalog
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	weights := make(map[string]int, len(catalog))
	for _, a := range catalog {
		weights[a.ID] = a.Points
	}

	marked := make(map[int]map[int][]string) // player -> hole -> achievement ids
	for _, m := range marks {
		if m.Player < 0 || m.Player >= n || m.Hole < 1 || m.Hole > golf.Holes {
			continue
		}
		if _, ok := weights[m.Achievement]; !ok {
			continue
		}
		if marked[m.Player] == nil {
			marked[m.Player] = make(map[int][]string)
		}
		marked[m.Player][m.Hole] = append(marked[m.Player][m.Hole], m.Achievement)
	}

	result := JunkResult{
		Validity: valid(),
		Totals:   make([]int, n),
	}
	adjusted := sheet.Adjusted()

	for hole := 1; hole <= golf.Holes; hole++ {
		par := sheet.Course.Par(hole)
		h := JunkHole{Hole: hole}

		for p := 0; p < n; p++ {
			cell := JunkScore{Player: p}
			if score, ok := sheet.Score(p, hole, opts.UseNet, adjusted); ok {
				cell.Dots = Dots(score - par)
			}
			for _, id := range marked[p][hole] {
				cell.Bonus += weights[id]
				cell.Achievements = append(cell.Achievements, id)
			}
			cell.Total = cell.Dots + cell.Bonus
			result.Totals[p] += cell.Total
			h.Scores = append(h.Scores, cell)
		}

		result.Holes = append(result.Holes, h)
	}

	return result
}
