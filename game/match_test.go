package game

import (
	"math"
	"testing"

	"github.com/Gao0602-kimi/gopong/utils"
)

// scriptRand serves dead-horizontal balls with a scripted direction sequence
// so match tests stay deterministic.
type scriptRand struct {
	bools []bool
}

func (s *scriptRand) Between(min, max float64) float64 { return 0 }

func (s *scriptRand) Bool() bool {
	if len(s.bools) == 0 {
		return false
	}
	b := s.bools[0]
	s.bools = s.bools[1:]
	return b
}

func TestMatchInitialState(t *testing.T) {
	cfg := utils.DefaultConfig()
	m := NewMatch(cfg, &scriptRand{})

	if m.Status() != StatusRunning {
		t.Errorf("status = %v, want running", m.Status())
	}
	left, right := m.Scores()
	if left != 0 || right != 0 {
		t.Errorf("scores = %d:%d, want 0:0", left, right)
	}
	ball := m.Ball()
	if ball.X != cfg.FieldWidth/2 || ball.Y != cfg.FieldHeight/2 {
		t.Errorf("ball at (%v, %v), want field center", ball.X, ball.Y)
	}
	if ball.Vx != cfg.BallSpeed || ball.Vy != 0 {
		t.Errorf("scripted serve velocity = (%v, %v), want (%v, 0)", ball.Vx, ball.Vy, cfg.BallSpeed)
	}
}

func TestMatchPointerMovesLeftPaddle(t *testing.T) {
	cfg := utils.DefaultConfig()
	m := NewMatch(cfg, &scriptRand{})

	m.Tick(Input{HasPointer: true, PointerY: 100})

	if got := m.LeftPaddle().CenterY(); got != 100 {
		t.Errorf("left paddle center = %v, want 100", got)
	}
}

func TestMatchKeysMoveLeftPaddle(t *testing.T) {
	cfg := utils.DefaultConfig()

	testCases := []struct {
		name   string
		in     Input
		wantDy float64
	}{
		{"up", Input{Up: true}, -cfg.PlayerSpeed},
		{"down", Input{Down: true}, cfg.PlayerSpeed},
		{"both cancel", Input{Up: true, Down: true}, 0},
	}

	for _, tc := range testCases {
		m := NewMatch(cfg, &scriptRand{})
		startY := m.LeftPaddle().Y

		m.Tick(tc.in)

		if got := m.LeftPaddle().Y - startY; got != tc.wantDy {
			t.Errorf("%s: left paddle moved %v, want %v", tc.name, got, tc.wantDy)
		}
	}
}

func TestMatchAITracksBall(t *testing.T) {
	cfg := utils.DefaultConfig()
	m := NewMatch(cfg, &scriptRand{})

	m.ball.Y = m.RightPaddle().CenterY() - 100
	m.ball.Vy = 0
	startY := m.rightPaddle.Y

	m.Tick(Input{})

	if got := m.rightPaddle.Y - startY; got != -cfg.AIMaxSpeed {
		t.Errorf("right paddle moved %v, want capped chase %v", got, -cfg.AIMaxSpeed)
	}
}

func TestMatchPauseFreezesPhysics(t *testing.T) {
	cfg := utils.DefaultConfig()
	m := NewMatch(cfg, &scriptRand{})

	m.Tick(Input{Pause: true})
	if m.Status() != StatusPaused {
		t.Fatalf("status = %v, want paused", m.Status())
	}

	ballX, ballY := m.ball.X, m.ball.Y
	aiY := m.rightPaddle.Y
	for i := 0; i < 10; i++ {
		m.Tick(Input{})
	}

	if m.ball.X != ballX || m.ball.Y != ballY {
		t.Errorf("paused ball drifted to (%v, %v)", m.ball.X, m.ball.Y)
	}
	if m.rightPaddle.Y != aiY {
		t.Errorf("paused AI paddle moved to %v", m.rightPaddle.Y)
	}
	left, right := m.Scores()
	if left != 0 || right != 0 {
		t.Errorf("paused scores changed to %d:%d", left, right)
	}
	if !m.Snapshot().Paused {
		t.Error("snapshot should report paused")
	}

	// The player can still reposition while paused.
	m.Tick(Input{HasPointer: true, PointerY: 77})
	if got := m.leftPaddle.CenterY(); got != 77 {
		t.Errorf("paused pointer move put paddle center at %v, want 77", got)
	}
	if m.ball.X != ballX {
		t.Errorf("pointer move while paused advanced the ball to %v", m.ball.X)
	}

	// Second toggle resumes on the same tick.
	m.Tick(Input{Pause: true})
	if m.Status() != StatusRunning {
		t.Fatalf("status after resume = %v, want running", m.Status())
	}
	if m.ball.X == ballX {
		t.Error("ball should advance again after resume")
	}
}

func TestMatchScoringRightBoundary(t *testing.T) {
	cfg := utils.DefaultConfig()
	m := NewMatch(cfg, &scriptRand{})

	m.ball.X = cfg.FieldWidth - m.ball.Radius - 1
	m.ball.Y = 50
	m.ball.Vx, m.ball.Vy = cfg.BallSpeed, 0

	m.Tick(Input{})

	left, right := m.Scores()
	if left != 1 || right != 0 {
		t.Fatalf("scores = %d:%d, want 1:0 after right boundary crossing", left, right)
	}
	if m.ball.X != cfg.FieldWidth/2 || m.ball.Y != cfg.FieldHeight/2 {
		t.Errorf("ball at (%v, %v), want recentered", m.ball.X, m.ball.Y)
	}
	if m.ball.Vx >= 0 {
		t.Errorf("serve after left side scored: vx = %v, want leftward", m.ball.Vx)
	}
	if m.ball.Speed != cfg.BallSpeed {
		t.Errorf("serve speed = %v, want base %v", m.ball.Speed, cfg.BallSpeed)
	}
}

func TestMatchScoringLeftBoundary(t *testing.T) {
	cfg := utils.DefaultConfig()
	m := NewMatch(cfg, &scriptRand{})

	m.ball.X = m.ball.Radius + 1
	m.ball.Y = 50
	m.ball.Vx, m.ball.Vy = -cfg.BallSpeed, 0

	m.Tick(Input{})

	left, right := m.Scores()
	if left != 0 || right != 1 {
		t.Fatalf("scores = %d:%d, want 0:1 after left boundary crossing", left, right)
	}
	if m.ball.Vx <= 0 {
		t.Errorf("serve after right side scored: vx = %v, want rightward", m.ball.Vx)
	}
}

func TestMatchLeftPaddleRebound(t *testing.T) {
	cfg := utils.DefaultConfig()
	m := NewMatch(cfg, &scriptRand{})

	// One tick from the left paddle face, dead center.
	face := m.leftPaddle.Rect().Right()
	m.ball.X = face + m.ball.Radius + cfg.BallSpeed
	m.ball.Y = m.leftPaddle.CenterY()
	m.ball.Vx, m.ball.Vy = -cfg.BallSpeed, 0

	m.Tick(Input{})

	if m.ball.Vx <= 0 {
		t.Fatalf("ball should rebound rightward, vx = %v", m.ball.Vx)
	}
	if math.Abs(m.ball.Speed-(cfg.BallSpeed+cfg.BallSpeedIncrement)) > 1e-9 {
		t.Errorf("speed = %v, want one increment over base", m.ball.Speed)
	}
	if got := m.ball.X; got != face+m.ball.Radius {
		t.Errorf("ball snapped to %v, want just off the face at %v", got, face+m.ball.Radius)
	}
}

// With the ball overlapping both paddles at once, the left paddle resolves
// first and the right one sees the post-snap position, so the outcome is
// fixed: two speed ramps and a leftward exit.
func TestMatchOverlapBothPaddlesResolvesLeftFirst(t *testing.T) {
	cfg := utils.DefaultConfig()
	cfg.FieldWidth = 100
	cfg.PaddleOffset = 2
	cfg.PaddleWidth = 6
	cfg.BallRadius = 42

	m := NewMatch(cfg, &scriptRand{})
	m.ball.X = cfg.FieldWidth / 2
	m.ball.Y = m.leftPaddle.CenterY()
	m.ball.Vx, m.ball.Vy = -1, 0

	m.Tick(Input{})

	wantSpeed := math.Hypot(1, 0) + 2*cfg.BallSpeedIncrement
	if math.Abs(m.ball.Speed-wantSpeed) > 1e-9 {
		t.Errorf("speed = %v, want two increments = %v", m.ball.Speed, wantSpeed)
	}
	if m.ball.Vx >= 0 {
		t.Errorf("vx = %v, want leftward after the right paddle resolves last", m.ball.Vx)
	}
	left, right := m.Scores()
	if left != 0 || right != 0 {
		t.Errorf("degenerate overlap scored %d:%d, want no points", left, right)
	}
}

func TestMatchResetCommand(t *testing.T) {
	cfg := utils.DefaultConfig()
	m := NewMatch(cfg, &scriptRand{})

	m.leftScore, m.rightScore = 3, 1
	m.Tick(Input{Pause: true})

	m.Tick(Input{Reset: true})

	left, right := m.Scores()
	if left != 0 || right != 0 {
		t.Errorf("scores after reset = %d:%d, want 0:0", left, right)
	}
	if m.Status() != StatusRunning {
		t.Errorf("status after reset = %v, want running (pause cleared)", m.Status())
	}
	// The reset tick still runs physics, so the fresh serve advances one step.
	wantX := cfg.FieldWidth/2 + cfg.BallSpeed
	if m.ball.X != wantX || m.ball.Y != cfg.FieldHeight/2 {
		t.Errorf("ball at (%v, %v), want one step off center (%v, %v)", m.ball.X, m.ball.Y, wantX, cfg.FieldHeight/2)
	}
	if m.ball.Speed != cfg.BallSpeed {
		t.Errorf("ball speed after reset = %v, want base", m.ball.Speed)
	}
}

func TestMatchQuitIsTerminal(t *testing.T) {
	cfg := utils.DefaultConfig()
	m := NewMatch(cfg, &scriptRand{})

	m.Tick(Input{Quit: true})
	if m.Status() != StatusTerminated {
		t.Fatalf("status = %v, want terminated", m.Status())
	}

	frozen := m.Snapshot()
	m.Tick(Input{HasPointer: true, PointerY: 10})
	m.Tick(Input{Reset: true})

	if m.Snapshot() != frozen {
		t.Error("terminated match must ignore further input")
	}

	// Quit works from paused too.
	m2 := NewMatch(cfg, &scriptRand{})
	m2.Tick(Input{Pause: true})
	m2.Tick(Input{Quit: true})
	if m2.Status() != StatusTerminated {
		t.Errorf("status = %v, want terminated from paused", m2.Status())
	}
}

func TestMatchScoreConservation(t *testing.T) {
	cfg := utils.DefaultConfig()
	m := NewMatch(cfg, NewRand(99))

	prevLeft, prevRight := m.Scores()
	for i := 0; i < 2000; i++ {
		m.Tick(Input{})

		left, right := m.Scores()
		dl, dr := left-prevLeft, right-prevRight
		if dl < 0 || dr < 0 {
			t.Fatalf("tick %d: scores went backward %d:%d -> %d:%d", i, prevLeft, prevRight, left, right)
		}
		if dl+dr > 1 {
			t.Fatalf("tick %d: multiple points in one tick (%d:%d -> %d:%d)", i, prevLeft, prevRight, left, right)
		}
		prevLeft, prevRight = left, right
	}
	if prevLeft+prevRight == 0 {
		t.Error("expected at least one point over a long unattended rally")
	}
}

func TestMatchSnapshotShape(t *testing.T) {
	cfg := utils.DefaultConfig()
	m := NewMatch(cfg, &scriptRand{})
	m.Tick(Input{})

	snap := m.Snapshot()
	if snap.Tick != 1 {
		t.Errorf("tick = %d, want 1", snap.Tick)
	}
	if snap.FieldWidth != cfg.FieldWidth || snap.FieldHeight != cfg.FieldHeight {
		t.Errorf("snapshot field = %vx%v, want %vx%v", snap.FieldWidth, snap.FieldHeight, cfg.FieldWidth, cfg.FieldHeight)
	}
	if snap.LeftPaddle != m.leftPaddle.Rect() || snap.RightPaddle != m.rightPaddle.Rect() {
		t.Error("snapshot paddle rects out of sync")
	}
	if snap.Ball.X != m.ball.X || snap.Ball.Y != m.ball.Y || snap.Ball.Radius != m.ball.Radius {
		t.Error("snapshot ball out of sync")
	}
	if snap.Paused {
		t.Error("running match should not report paused")
	}
}
