package round

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/greenside/greenside/golf"
	"github.com/greenside/greenside/internal/games"
)

// PlayerState is one player's persisted slice of a round.
type PlayerState struct {
	Name     string          `json:"name"`
	Handicap int             `json:"handicap"`
	Scores   [golf.Holes]int `json:"scores"` // zero = unset
}

// Snapshot is everything needed to reproduce identical results after a
// reload: players with their scores, junk marks, and the enabled games
// with their options. The course travels by name; resolving it back to
// tables is the loader's job.
type Snapshot struct {
	Course  string        `json:"course"`
	Players []PlayerState `json:"players"`
	Marks   []games.Mark  `json:"marks,omitempty"`
	Games   GameSet       `json:"games"`
}

// Snapshot captures the round's current state.
func (r *Round) Snapshot() Snapshot {
	snap := Snapshot{
		Course: r.course.Name(),
		Marks:  r.marks,
		Games:  r.games,
	}
	for i, p := range r.player {
		snap.Players = append(snap.Players, PlayerState{
			Name:     p.Name,
			Handicap: p.CourseHandicap,
			Scores:   r.card.Row(i),
		})
	}
	return snap
}

// WriteSnapshot encodes the round as indented JSON.
func (r *Round) WriteSnapshot(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r.Snapshot())
}

// ReadSnapshot decodes a snapshot from JSON.
func ReadSnapshot(rd io.Reader) (Snapshot, error) {
	var snap Snapshot
	if err := json.NewDecoder(rd).Decode(&snap); err != nil {
		return Snapshot{}, fmt.Errorf("decoding snapshot: %w", err)
	}
	return snap, nil
}

// CourseResolver maps a persisted course name back to its tables.
type CourseResolver func(name string) (*golf.Course, error)

// Restore rebuilds a round from a snapshot. Scores and handicaps pass
// back through the same input clamps as live entry, so a stale or
// hand-edited snapshot can't smuggle out-of-band values into the engines.
func Restore(snap Snapshot, resolve CourseResolver, logger *log.Logger) (*Round, error) {
	course, err := resolve(snap.Course)
	if err != nil {
		return nil, fmt.Errorf("resolving course %q: %w", snap.Course, err)
	}

	r := New(course, logger)
	for _, p := range snap.Players {
		idx := r.AddPlayer(p.Name, p.Handicap)
		for hole := 1; hole <= golf.Holes; hole++ {
			if p.Scores[hole-1] > 0 {
				if err := r.RecordGross(idx, hole, p.Scores[hole-1]); err != nil {
					return nil, err
				}
			}
		}
	}
	for _, m := range snap.Marks {
		if err := r.MarkJunk(m.Player, m.Hole, m.Achievement, true); err != nil {
			return nil, fmt.Errorf("restoring junk mark: %w", err)
		}
	}
	r.games = snap.Games
	return r, nil
}
