package golf

// Player identifies a participant in a round. CourseHandicap is the
// already-computed course handicap for the tee being played; this package
// never derives it from a handicap index.
type Player struct {
	Name           string `json:"name"`
	CourseHandicap int    `json:"course_handicap"`
}

// Scorecard holds gross stroke counts per player per hole. A zero entry
// means no score has been entered; absence is distinct from any real score
// and must never be treated as zero strokes.
type Scorecard struct {
	rows [][Holes]int
}

// NewScorecard creates an empty scorecard for the given number of players.
func NewScorecard(players int) *Scorecard {
	return &Scorecard{rows: make([][Holes]int, players)}
}

// PlayerCount returns the number of player rows.
func (s *Scorecard) PlayerCount() int {
	return len(s.rows)
}

// AddPlayer appends an empty row and returns the new player index.
func (s *Scorecard) AddPlayer() int {
	s.rows = append(s.rows, [Holes]int{})
	return len(s.rows) - 1
}

// SetGross records a gross score for a player on a hole (1-based).
func (s *Scorecard) SetGross(player, hole, strokes int) {
	s.rows[player][hole-1] = strokes
}

// ClearGross removes any recorded score for a player on a hole.
func (s *Scorecard) ClearGross(player, hole int) {
	s.rows[player][hole-1] = 0
}

// Gross returns the recorded gross score for a player on a hole, and
// whether one has been entered.
func (s *Scorecard) Gross(player, hole int) (int, bool) {
	v := s.rows[player][hole-1]
	return v, v > 0
}

// Row returns a copy of a player's 18 gross scores (zero = unset).
func (s *Scorecard) Row(player int) [Holes]int {
	return s.rows[player]
}

// SetRow replaces a player's full row of gross scores (zero = unset).
func (s *Scorecard) SetRow(player int, row [Holes]int) {
	s.rows[player] = row
}

// Clone returns a deep copy of the scorecard.
func (s *Scorecard) Clone() *Scorecard {
	rows := make([][Holes]int, len(s.rows))
	copy(rows, s.rows)
	return &Scorecard{rows: rows}
}
