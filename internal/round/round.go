package round

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/greenside/greenside/golf"
	"github.com/greenside/greenside/internal/games"
)

// Gross score and handicap bands enforced at the input boundary. The
// engines assume validated numbers and only ever have to tolerate absence.
const (
	MinGross    = 1
	MaxGross    = 20
	MinHandicap = -20
	MaxHandicap = 54
)

// GameSet holds the options for every enabled game. A nil entry means the
// game is off; games are independent and any subset can run concurrently.
type GameSet struct {
	Vegas  *games.VegasOptions  `json:"vegas,omitempty"`
	Banker *games.BankerOptions `json:"banker,omitempty"`
	Skins  *games.SkinsOptions  `json:"skins,omitempty"`
	Junk   *games.JunkOptions   `json:"junk,omitempty"`
	HiLo   *games.HiLoOptions   `json:"hilo,omitempty"`
	Wolf   *games.WolfOptions   `json:"wolf,omitempty"`
}

// Round is the single shared mutable state of a scoring session: the
// course, the players, their gross scores, junk marks, and which games are
// on. Engines only ever read from it; every edit is followed by a full
// recompute of whatever games are enabled.
type Round struct {
	logger  *log.Logger
	course  *golf.Course
	player  []golf.Player
	card    *golf.Scorecard
	marks   []games.Mark
	games   GameSet
	catalog []games.Achievement
}

// SetJunkCatalog replaces the default achievement catalog used when the
// junk game is enabled without an explicit one.
func (r *Round) SetJunkCatalog(catalog []games.Achievement) {
	r.catalog = catalog
}

// New creates an empty round on a course.
func New(course *golf.Course, logger *log.Logger) *Round {
	return &Round{
		logger: logger.WithPrefix("round"),
		course: course,
		card:   golf.NewScorecard(0),
	}
}

// Course returns the course in play.
func (r *Round) Course() *golf.Course {
	return r.course
}

// SetCourse switches the course/tee. Scores stay; results change on the
// next recompute.
func (r *Round) SetCourse(course *golf.Course) {
	r.course = course
	r.logger.Info("course changed", "course", course.Name())
}

// Players returns the current player list.
func (r *Round) Players() []golf.Player {
	return r.player
}

// AddPlayer adds a player and returns their index. The handicap is
// clamped into the sane band rather than rejected.
func (r *Round) AddPlayer(name string, handicap int) int {
	r.player = append(r.player, golf.Player{
		Name:           name,
		CourseHandicap: clamp(handicap, MinHandicap, MaxHandicap),
	})
	idx := r.card.AddPlayer()
	r.logger.Info("player added", "name", name, "index", idx)
	return idx
}

// SetPlayer updates a player's name and handicap.
func (r *Round) SetPlayer(player int, name string, handicap int) error {
	if player < 0 || player >= len(r.player) {
		return fmt.Errorf("no player %d", player)
	}
	r.player[player] = golf.Player{
		Name:           name,
		CourseHandicap: clamp(handicap, MinHandicap, MaxHandicap),
	}
	return nil
}

// RecordGross enters a gross score, clamped to the 1-20 band.
func (r *Round) RecordGross(player, hole, strokes int) error {
	if err := r.checkCell(player, hole); err != nil {
		return err
	}
	r.card.SetGross(player, hole, clamp(strokes, MinGross, MaxGross))
	return nil
}

// ClearGross removes a score; absence is a first-class state, distinct
// from any stroke count.
func (r *Round) ClearGross(player, hole int) error {
	if err := r.checkCell(player, hole); err != nil {
		return err
	}
	r.card.ClearGross(player, hole)
	return nil
}

// MarkJunk asserts or retracts an achievement for a player on a hole.
func (r *Round) MarkJunk(player, hole int, achievement string, on bool) error {
	if err := r.checkCell(player, hole); err != nil {
		return err
	}
	for i, m := range r.marks {
		if m.Player == player && m.Hole == hole && m.Achievement == achievement {
			if !on {
				r.marks = append(r.marks[:i], r.marks[i+1:]...)
			}
			return nil
		}
	}
	if on {
		r.marks = append(r.marks, games.Mark{Player: player, Hole: hole, Achievement: achievement})
	}
	return nil
}

// Marks returns the asserted junk marks.
func (r *Round) Marks() []games.Mark {
	return r.marks
}

// Games returns the enabled game set.
func (r *Round) Games() GameSet {
	return r.games
}

// SetGames replaces the enabled game set wholesale.
func (r *Round) SetGames(set GameSet) {
	r.games = set
}

// EnableGame turns a game on, decoding its options from raw JSON. Unknown
// game names are an error; engines handle semantic validation themselves
// and report it in their results.
func (r *Round) EnableGame(name string, rawOptions json.RawMessage) error {
	if rawOptions == nil {
		rawOptions = json.RawMessage("{}")
	}
	decode := func(v any) error {
		if err := json.Unmarshal(rawOptions, v); err != nil {
			return fmt.Errorf("decoding %s options: %w", name, err)
		}
		return nil
	}

	switch name {
	case "vegas":
		opts := &games.VegasOptions{}
		if err := decode(opts); err != nil {
			return err
		}
		r.games.Vegas = opts
	case "banker":
		opts := &games.BankerOptions{Rotation: games.BankerRotate}
		if err := decode(opts); err != nil {
			return err
		}
		r.games.Banker = opts
	case "skins":
		opts := &games.SkinsOptions{Carry: true}
		if err := decode(opts); err != nil {
			return err
		}
		r.games.Skins = opts
	case "junk":
		opts := &games.JunkOptions{}
		if err := decode(opts); err != nil {
			return err
		}
		if opts.Catalog == nil {
			opts.Catalog = r.catalog
		}
		r.games.Junk = opts
	case "hilo":
		opts := &games.HiLoOptions{}
		if err := decode(opts); err != nil {
			return err
		}
		r.games.HiLo = opts
	case "wolf":
		opts := &games.WolfOptions{}
		if err := decode(opts); err != nil {
			return err
		}
		r.games.Wolf = opts
	default:
		return fmt.Errorf("unknown game %q", name)
	}

	r.logger.Info("game enabled", "game", name)
	return nil
}

// SetWolfPick records the wolf assignment for a hole. Wolf must be
// enabled first; picks live inside its options so they persist with them.
func (r *Round) SetWolfPick(hole, wolf, partner int) error {
	if r.games.Wolf == nil {
		return fmt.Errorf("wolf is not enabled")
	}
	if hole < 1 || hole > golf.Holes {
		return fmt.Errorf("hole %d out of range", hole)
	}
	pick := games.WolfPick{Hole: hole, Wolf: wolf, Partner: partner}
	for i, existing := range r.games.Wolf.Picks {
		if existing.Hole == hole {
			r.games.Wolf.Picks[i] = pick
			return nil
		}
	}
	r.games.Wolf.Picks = append(r.games.Wolf.Picks, pick)
	return nil
}

// DisableGame turns a game off.
func (r *Round) DisableGame(name string) error {
	switch name {
	case "vegas":
		r.games.Vegas = nil
	case "banker":
		r.games.Banker = nil
	case "skins":
		r.games.Skins = nil
	case "junk":
		r.games.Junk = nil
	case "hilo":
		r.games.HiLo = nil
	case "wolf":
		r.games.Wolf = nil
	default:
		return fmt.Errorf("unknown game %q", name)
	}
	return nil
}

// Reset clears players, scores, marks and game selections, keeping the
// course.
func (r *Round) Reset() {
	r.player = nil
	r.card = golf.NewScorecard(0)
	r.marks = nil
	r.games = GameSet{}
	r.logger.Info("round reset")
}

// Sheet snapshots the engine inputs. The returned sheet shares the
// round's scorecard; engines treat it as read-only.
func (r *Round) Sheet() *games.Sheet {
	return &games.Sheet{
		Course:  r.course,
		Players: r.player,
		Card:    r.card,
	}
}

func (r *Round) checkCell(player, hole int) error {
	if player < 0 || player >= len(r.player) {
		return fmt.Errorf("no player %d", player)
	}
	if hole < 1 || hole > golf.Holes {
		return fmt.Errorf("hole %d out of range", hole)
	}
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
