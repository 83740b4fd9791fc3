package server

import (
	"encoding/json"
)

// MessageType identifies a WebSocket protocol message.
type MessageType string

const (
	// Client to server messages
	MessageTypeJoin        MessageType = "join"
	MessageTypeAddPlayer   MessageType = "add_player"
	MessageTypeSetPlayer   MessageType = "set_player"
	MessageTypeRecordScore MessageType = "record_score"
	MessageTypeClearScore  MessageType = "clear_score"
	MessageTypeMarkJunk    MessageType = "mark_junk"
	MessageTypeSetWolf     MessageType = "set_wolf"
	MessageTypeEnableGame  MessageType = "enable_game"
	MessageTypeDisableGame MessageType = "disable_game"
	MessageTypeSetCourse   MessageType = "set_course"
	MessageTypeReset       MessageType = "reset"
	MessageTypeGetState    MessageType = "get_state"

	// Server to client messages
	MessageTypeWelcome MessageType = "welcome"
	MessageTypeState   MessageType = "state"
	MessageTypeResults MessageType = "results"
	MessageTypeError   MessageType = "error"
)

// String returns the string representation of the message type.
func (mt MessageType) String() string {
	return string(mt)
}

// Message is the wire envelope: a type plus a type-specific payload.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NewMessage builds an envelope, marshaling the payload.
func NewMessage(t MessageType, payload any) *Message {
	if payload == nil {
		return &Message{Type: t}
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return &Message{Type: MessageTypeError, Payload: mustMarshal(ErrorPayload{Error: err.Error()})}
	}
	return &Message{Type: t, Payload: data}
}

func mustMarshal(v any) json.RawMessage {
	data, _ := json.Marshal(v)
	return data
}

// JoinPayload enters a scoring room, creating it if needed.
type JoinPayload struct {
	Room string `json:"room"`
}

// AddPlayerPayload adds a player to the round.
type AddPlayerPayload struct {
	Name     string `json:"name"`
	Handicap int    `json:"handicap"`
}

// SetPlayerPayload renames a player or edits their handicap; either edit
// triggers a full recompute.
type SetPlayerPayload struct {
	Player   int    `json:"player"`
	Name     string `json:"name"`
	Handicap int    `json:"handicap"`
}

// RecordScorePayload enters a gross score. Strokes outside 1-20 are
// clamped at this boundary.
type RecordScorePayload struct {
	Player  int `json:"player"`
	Hole    int `json:"hole"`
	Strokes int `json:"strokes"`
}

// ClearScorePayload removes a score, returning the cell to "no score".
type ClearScorePayload struct {
	Player int `json:"player"`
	Hole   int `json:"hole"`
}

// MarkJunkPayload asserts or retracts a junk achievement.
type MarkJunkPayload struct {
	Player      int    `json:"player"`
	Hole        int    `json:"hole"`
	Achievement string `json:"achievement"`
	On          bool   `json:"on"`
}

// SetWolfPayload records the wolf pick for a hole; partner -1 goes alone.
type SetWolfPayload struct {
	Hole    int `json:"hole"`
	Wolf    int `json:"wolf"`
	Partner int `json:"partner"`
}

// EnableGamePayload turns a game on with its options.
type EnableGamePayload struct {
	Game    string          `json:"game"`
	Options json.RawMessage `json:"options,omitempty"`
}

// DisableGamePayload turns a game off.
type DisableGamePayload struct {
	Game string `json:"game"`
}

// SetCoursePayload switches the course/tee by library name.
type SetCoursePayload struct {
	Course string `json:"course"`
}

// WelcomePayload greets a client after joining.
type WelcomePayload struct {
	Room    string   `json:"room"`
	Courses []string `json:"courses"`
}

// ErrorPayload carries a request failure back to the sender.
type ErrorPayload struct {
	Error string `json:"error"`
}
