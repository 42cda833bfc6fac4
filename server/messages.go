package server

import (
	"github.com/Gao0602-kimi/gopong/game"
)

// Wire type values accepted from clients.
const (
	MessagePointer = "pointer"
	MessageKey     = "key"
	MessagePause   = "pause"
	MessageReset   = "reset"
	MessageQuit    = "quit"
)

// InputMessage is the client-to-server frame: one discrete command per
// message. Y is only meaningful for pointer messages, Dir for key messages.
type InputMessage struct {
	Type string  `json:"type"`
	Y    float64 `json:"y,omitempty"`
	Dir  string  `json:"dir,omitempty"`
}

// Command translates a wire message into a simulation command. The second
// return is false for quit and for anything malformed; quit is a connection
// concern, not a match command, so the read loop handles it separately.
func (msg InputMessage) Command() (game.Command, bool) {
	switch msg.Type {
	case MessagePointer:
		return game.PointerMoved{Y: msg.Y}, true
	case MessageKey:
		if dir := game.DirectionFromString(msg.Dir); dir != "" {
			return game.KeyHeld{Direction: dir}, true
		}
		return nil, false
	case MessagePause:
		return game.PauseToggle{}, true
	case MessageReset:
		return game.ResetCommand{}, true
	}
	return nil, false
}

// Roles a connection can hold.
const (
	RolePlayer    = "player"
	RoleSpectator = "spectator"
)

// SeatMessage is the first frame sent to a fresh connection, telling it
// whether it steers the left paddle or just watches.
type SeatMessage struct {
	MessageType string `json:"messageType"` // always "seat"
	Role        string `json:"role"`
}
