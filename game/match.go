// File: game/match.go
package game

import "github.com/Gao0602-kimi/gopong/utils"

// Status is the match lifecycle state.
type Status string

const (
	StatusRunning    Status = "running"
	StatusPaused     Status = "paused"
	StatusTerminated Status = "terminated"
)

// Match owns the whole simulation: both paddles, the ball, the scores, and
// the lifecycle status. State mutates only inside Tick, so one goroutine
// driving Tick needs no locks.
type Match struct {
	cfg utils.Config
	rng Rand

	leftPaddle  *Paddle
	rightPaddle *Paddle
	ball        *Ball
	ai          AI

	leftScore  int
	rightScore int
	status     Status
	tick       uint64
}

// NewMatch assembles a match from the config and serves an unbiased first
// ball.
func NewMatch(cfg utils.Config, rng Rand) *Match {
	m := &Match{
		cfg:         cfg,
		rng:         rng,
		leftPaddle:  NewPaddle(cfg, SideLeft),
		rightPaddle: NewPaddle(cfg, SideRight),
		ball:        NewBall(cfg),
		ai:          NewAI(cfg),
		status:      StatusRunning,
	}
	m.ball.Reset(rng, SideNone)
	return m
}

// Tick advances the simulation one step under the given input. Order within
// a tick: lifecycle commands, player movement, AI, ball advance, wall bounce,
// paddle rebounds (left before right), scoring. A paused match still follows
// movement input so the player can reposition, but skips AI, physics, and
// scoring. A terminated match ignores everything.
func (m *Match) Tick(in Input) {
	if m.status == StatusTerminated {
		return
	}
	m.tick++

	if in.Quit {
		m.status = StatusTerminated
		return
	}
	if in.Reset {
		m.reset()
	}
	if in.Pause {
		m.togglePause()
	}

	m.movePlayer(in)

	if m.status == StatusPaused {
		return
	}

	m.ai.Track(m.rightPaddle, m.ball.Y)
	m.ball.Advance()
	m.ball.BounceOffWalls()
	m.collidePaddles()
	m.score()
}

func (m *Match) reset() {
	m.leftScore = 0
	m.rightScore = 0
	m.ball.Reset(m.rng, SideNone)
	m.status = StatusRunning
}

func (m *Match) togglePause() {
	switch m.status {
	case StatusRunning:
		m.status = StatusPaused
	case StatusPaused:
		m.status = StatusRunning
	}
}

func (m *Match) movePlayer(in Input) {
	if in.HasPointer {
		m.leftPaddle.MoveTo(in.PointerY)
	}
	if in.Up {
		m.leftPaddle.MoveBy(-m.leftPaddle.Speed)
	}
	if in.Down {
		m.leftPaddle.MoveBy(m.leftPaddle.Speed)
	}
}

// collidePaddles resolves paddle hits, left first. The ball snaps just
// outside the paddle's leading edge before rebounding so it cannot stick
// inside, and the right check runs against the post-snap position.
func (m *Match) collidePaddles() {
	if m.ball.Intersects(m.leftPaddle.Rect()) {
		m.ball.X = m.leftPaddle.Rect().Right() + m.ball.Radius
		m.ball.Rebound(m.leftPaddle, true)
	}
	if m.ball.Intersects(m.rightPaddle.Rect()) {
		m.ball.X = m.rightPaddle.Rect().Left() - m.ball.Radius
		m.ball.Rebound(m.rightPaddle, false)
	}
}

// score awards a point when the ball's leading edge crosses a side boundary
// and serves the fresh ball toward the scorer. At most one point per tick.
func (m *Match) score() {
	if m.ball.PastLeftEdge() {
		m.rightScore++
		m.ball.Reset(m.rng, SideRight)
	} else if m.ball.PastRightEdge() {
		m.leftScore++
		m.ball.Reset(m.rng, SideLeft)
	}
}

func (m *Match) Status() Status { return m.status }

// Scores returns the left and right tallies.
func (m *Match) Scores() (int, int) { return m.leftScore, m.rightScore }

func (m *Match) Ball() *Ball          { return m.ball }
func (m *Match) LeftPaddle() *Paddle  { return m.leftPaddle }
func (m *Match) RightPaddle() *Paddle { return m.rightPaddle }
