package game

import (
	"math"

	"github.com/Gao0602-kimi/gopong/utils"
)

// ServeAngle bounds the serve direction to 30 degrees off horizontal either
// way, so a fresh ball always travels mostly sideways.
const ServeAngle = math.Pi / 6

// Side names a half of the field, or neither.
type Side string

const (
	SideNone  Side = ""
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Ball carries position, velocity, and a speed cache kept equal to
// hypot(Vx, Vy) after every serve and rebound.
type Ball struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Vx     float64 `json:"vx"`
	Vy     float64 `json:"vy"`
	Radius float64 `json:"radius"`
	Speed  float64 `json:"speed"`

	fieldWidth  float64
	fieldHeight float64
	serveSpeed  float64
	increment   float64
	maxSpeed    float64
}

// NewBall builds a motionless ball at the field center; Reset serves it.
func NewBall(cfg utils.Config) *Ball {
	return &Ball{
		X:           cfg.FieldWidth / 2,
		Y:           cfg.FieldHeight / 2,
		Radius:      cfg.BallRadius,
		Speed:       cfg.BallSpeed,
		fieldWidth:  cfg.FieldWidth,
		fieldHeight: cfg.FieldHeight,
		serveSpeed:  cfg.BallSpeed,
		increment:   cfg.BallSpeedIncrement,
		maxSpeed:    cfg.BallMaxSpeed,
	}
}

// Reset recenters the ball and serves it at base speed in a fresh direction
// drawn within the serve cone. A named side forces the horizontal sign toward
// that side; SideNone flips a fair coin.
func (ball *Ball) Reset(rng Rand, side Side) {
	ball.X = ball.fieldWidth / 2
	ball.Y = ball.fieldHeight / 2
	ball.Speed = ball.serveSpeed

	angle := rng.Between(-ServeAngle, ServeAngle)
	direction := 1.0
	switch side {
	case SideLeft:
		direction = -1
	case SideRight:
		direction = 1
	default:
		if rng.Bool() {
			direction = -1
		}
	}

	ball.Vx = direction * ball.Speed * math.Cos(angle)
	ball.Vy = ball.Speed * math.Sin(angle)
}

// Advance moves the ball one tick along its velocity. One step per tick, no
// substepping: extreme speeds can tunnel through thin paddles.
func (ball *Ball) Advance() {
	ball.X += ball.Vx
	ball.Y += ball.Vy
}

func (ball *Ball) CollidesTopWall() bool {
	return ball.Y-ball.Radius <= 0
}

func (ball *Ball) CollidesBottomWall() bool {
	return ball.Y+ball.Radius >= ball.fieldHeight
}

// PastLeftEdge reports the ball's leading edge crossing the left boundary.
func (ball *Ball) PastLeftEdge() bool {
	return ball.X-ball.Radius <= 0
}

// PastRightEdge reports the ball's leading edge crossing the right boundary.
func (ball *Ball) PastRightEdge() bool {
	return ball.X+ball.Radius >= ball.fieldWidth
}

// BounceOffWalls reflects the ball off the top or bottom edge, clamping it
// back inside the field. At most one wall reflects per tick and speed is
// untouched.
func (ball *Ball) BounceOffWalls() {
	if ball.CollidesTopWall() {
		ball.Y = ball.Radius
		ball.Vy = -ball.Vy
	} else if ball.CollidesBottomWall() {
		ball.Y = ball.fieldHeight - ball.Radius
		ball.Vy = -ball.Vy
	}
}

// Intersects reports overlap between the ball and a rectangle.
func (ball *Ball) Intersects(r Rect) bool {
	return CircleIntersectsRect(ball.X, ball.Y, ball.Radius, r)
}
