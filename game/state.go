// File: game/state.go
package game

// BallState is the renderable slice of the ball.
type BallState struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
}

// Snapshot is the full render state for one tick: everything a presentation
// layer needs and nothing it can mutate. Field dimensions ride along so
// remote renderers can scale without knowing the server config.
type Snapshot struct {
	Tick        uint64    `json:"tick"`
	FieldWidth  float64   `json:"fieldWidth"`
	FieldHeight float64   `json:"fieldHeight"`
	LeftPaddle  Rect      `json:"leftPaddle"`
	RightPaddle Rect      `json:"rightPaddle"`
	Ball        BallState `json:"ball"`
	LeftScore   int       `json:"leftScore"`
	RightScore  int       `json:"rightScore"`
	Paused      bool      `json:"paused"`
}

// Snapshot captures the current render state of the match.
func (m *Match) Snapshot() Snapshot {
	return Snapshot{
		Tick:        m.tick,
		FieldWidth:  m.cfg.FieldWidth,
		FieldHeight: m.cfg.FieldHeight,
		LeftPaddle:  m.leftPaddle.Rect(),
		RightPaddle: m.rightPaddle.Rect(),
		Ball:        BallState{X: m.ball.X, Y: m.ball.Y, Radius: m.ball.Radius},
		LeftScore:   m.leftScore,
		RightScore:  m.rightScore,
		Paused:      m.status == StatusPaused,
	}
}
