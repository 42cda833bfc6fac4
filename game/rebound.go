package game

import (
	"math"

	"github.com/Gao0602-kimi/gopong/utils"
)

// MaxBounceAngle caps paddle rebounds at 45 degrees off horizontal: edge
// hits leave steep, center hits leave flat.
const MaxBounceAngle = math.Pi / 4

// Rebound redirects the ball off a paddle face. The impact offset from the
// paddle center picks the exit angle, speed ramps by the configured increment
// up to the cap, and rightward forces the horizontal sign away from the
// paddle regardless of the incoming direction. Deterministic; callers detect
// the collision and snap the ball clear first.
func (ball *Ball) Rebound(paddle *Paddle, rightward bool) {
	half := paddle.Height / 2
	offset := 0.0
	if half > 0 {
		offset = utils.Clamp((ball.Y-paddle.CenterY())/half, -1, 1)
	}
	angle := offset * MaxBounceAngle

	speed := math.Min(ball.maxSpeed, math.Hypot(ball.Vx, ball.Vy)+ball.increment)

	ball.Vx = speed * math.Cos(angle)
	if !rightward {
		ball.Vx = -ball.Vx
	}
	ball.Vy = speed * math.Sin(angle)
	ball.Speed = speed
}
