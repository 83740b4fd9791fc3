package server

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/greenside/greenside/internal/courses"
	"github.com/greenside/greenside/internal/games"
	"github.com/greenside/greenside/internal/round"
)

// Room is one shared scoring session: a round plus the connections
// watching it. Edits are serialized under the room lock, which is the
// single-writer policy for the shared scorecard; every mutation ends with
// a full recompute broadcast to all members.
type Room struct {
	name    string
	logger  *log.Logger
	library *courses.Library

	mu      sync.Mutex
	round   *round.Round
	members map[*Connection]bool
}

// NewRoom creates a room with an empty round on the library default
// course.
func NewRoom(name string, library *courses.Library, catalog []games.Achievement, logger *log.Logger) *Room {
	rnd := round.New(library.Default(), logger)
	rnd.SetJunkCatalog(catalog)
	return &Room{
		name:    name,
		logger:  logger.WithPrefix("room").With("room", name),
		library: library,
		round:   rnd,
		members: make(map[*Connection]bool),
	}
}

// Join adds a connection to the room and sends it the current state.
func (r *Room) Join(c *Connection) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.members[c] = true
	_ = c.SendMessage(NewMessage(MessageTypeState, r.statePayload()))
	r.logger.Info("member joined", "members", len(r.members))
}

// Leave removes a connection from the room, reporting whether the room is
// now empty.
func (r *Room) Leave(c *Connection) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.members, c)
	return len(r.members) == 0
}

// StatePayload pairs a snapshot of the inputs with the current results,
// which is everything a late-joining client needs to render.
type StatePayload struct {
	Snapshot round.Snapshot `json:"snapshot"`
	Results  round.Results  `json:"results"`
}

func (r *Room) statePayload() StatePayload {
	return StatePayload{
		Snapshot: r.round.Snapshot(),
		Results:  r.round.ComputeAll(),
	}
}

// Handle applies a client message to the round. Mutations broadcast fresh
// results to every member; failures go back to the sender only.
func (r *Room) Handle(c *Connection, msg *Message) {
	r.mu.Lock()
	defer r.mu.Unlock()

	err := r.apply(msg)
	if err != nil {
		r.logger.Warn("request failed", "type", msg.Type, "error", err)
		_ = c.SendMessage(NewMessage(MessageTypeError, ErrorPayload{Error: err.Error()}))
		return
	}

	if msg.Type == MessageTypeGetState {
		_ = c.SendMessage(NewMessage(MessageTypeState, r.statePayload()))
		return
	}

	r.broadcastLocked(NewMessage(MessageTypeResults, r.statePayload()))
}

func (r *Room) apply(msg *Message) error {
	switch msg.Type {
	case MessageTypeGetState:
		return nil

	case MessageTypeAddPlayer:
		var p AddPlayerPayload
		if err := decode(msg, &p); err != nil {
			return err
		}
		r.round.AddPlayer(p.Name, p.Handicap)
		return nil

	case MessageTypeSetPlayer:
		var p SetPlayerPayload
		if err := decode(msg, &p); err != nil {
			return err
		}
		return r.round.SetPlayer(p.Player, p.Name, p.Handicap)

	case MessageTypeRecordScore:
		var p RecordScorePayload
		if err := decode(msg, &p); err != nil {
			return err
		}
		return r.round.RecordGross(p.Player, p.Hole, p.Strokes)

	case MessageTypeClearScore:
		var p ClearScorePayload
		if err := decode(msg, &p); err != nil {
			return err
		}
		return r.round.ClearGross(p.Player, p.Hole)

	case MessageTypeMarkJunk:
		var p MarkJunkPayload
		if err := decode(msg, &p); err != nil {
			return err
		}
		return r.round.MarkJunk(p.Player, p.Hole, p.Achievement, p.On)

	case MessageTypeSetWolf:
		var p SetWolfPayload
		if err := decode(msg, &p); err != nil {
			return err
		}
		return r.round.SetWolfPick(p.Hole, p.Wolf, p.Partner)

	case MessageTypeEnableGame:
		var p EnableGamePayload
		if err := decode(msg, &p); err != nil {
			return err
		}
		return r.round.EnableGame(p.Game, p.Options)

	case MessageTypeDisableGame:
		var p DisableGamePayload
		if err := decode(msg, &p); err != nil {
			return err
		}
		return r.round.DisableGame(p.Game)

	case MessageTypeSetCourse:
		var p SetCoursePayload
		if err := decode(msg, &p); err != nil {
			return err
		}
		course, err := r.library.Get(p.Course)
		if err != nil {
			return err
		}
		r.round.SetCourse(course)
		return nil

	case MessageTypeReset:
		r.round.Reset()
		return nil

	default:
		return fmt.Errorf("unknown message type %q", msg.Type)
	}
}

// broadcastLocked sends to every member; callers hold the room lock.
func (r *Room) broadcastLocked(msg *Message) {
	for member := range r.members {
		_ = member.SendMessage(msg)
	}
}

func decode(msg *Message, v any) error {
	if msg.Payload == nil {
		return fmt.Errorf("%s: missing payload", msg.Type)
	}
	if err := json.Unmarshal(msg.Payload, v); err != nil {
		return fmt.Errorf("%s: bad payload: %w", msg.Type, err)
	}
	return nil
}
