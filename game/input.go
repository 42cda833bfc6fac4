// File: game/input.go
package game

// Command is a discrete input event fed to the loop mailbox. The concrete
// types below are the whole vocabulary; anything else is ignored.
type Command interface{}

// PointerMoved targets the player's paddle center at an absolute field y.
type PointerMoved struct {
	Y float64
}

// KeyHeld reports a movement key held during the tick. It is re-sent every
// tick the key stays down.
type KeyHeld struct {
	Direction Direction
}

// PauseToggle flips between running and paused.
type PauseToggle struct{}

// ResetCommand zeroes the scores, serves a fresh unbiased ball, and clears
// any pause.
type ResetCommand struct{}

// QuitCommand terminates the match. Terminal.
type QuitCommand struct{}

// Direction names a vertical movement sense.
type Direction string

const (
	DirUp   Direction = "up"
	DirDown Direction = "down"
)

// DirectionFromString maps a wire direction onto a Direction. Unknown values
// map to the empty Direction, which moves nothing.
func DirectionFromString(direction string) Direction {
	if direction == "up" {
		return DirUp
	} else if direction == "down" {
		return DirDown
	}
	return ""
}

// Input is one tick's worth of player intent, folded from the commands that
// arrived since the previous tick.
type Input struct {
	PointerY   float64
	HasPointer bool
	Up         bool
	Down       bool
	Pause      bool
	Reset      bool
	Quit       bool
}

// Gather folds a batch of commands into a per-tick snapshot. The last
// pointer position wins and repeated edge-triggered commands within one
// batch collapse to a single edge.
func Gather(commands []Command) Input {
	var in Input
	for _, command := range commands {
		switch c := command.(type) {
		case PointerMoved:
			in.PointerY = c.Y
			in.HasPointer = true
		case KeyHeld:
			switch c.Direction {
			case DirUp:
				in.Up = true
			case DirDown:
				in.Down = true
			}
		case PauseToggle:
			in.Pause = true
		case ResetCommand:
			in.Reset = true
		case QuitCommand:
			in.Quit = true
		}
	}
	return in
}
