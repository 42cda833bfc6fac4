package game

import (
	"math"

	"github.com/Gao0602-kimi/gopong/utils"
)

// AI is the proportional tracker driving the right paddle: it chases the
// ball's vertical position at a capped speed and holds still inside the dead
// zone so it does not jitter under a resting ball. No prediction.
type AI struct {
	MaxSpeed float64
	DeadZone float64
}

func NewAI(cfg utils.Config) AI {
	return AI{MaxSpeed: cfg.AIMaxSpeed, DeadZone: cfg.AIDeadZone}
}

// Track moves paddle one step toward targetY.
func (ai AI) Track(paddle *Paddle, targetY float64) {
	diff := targetY - paddle.CenterY()
	if math.Abs(diff) <= ai.DeadZone {
		return
	}
	paddle.MoveBy(utils.Clamp(diff, -ai.MaxSpeed, ai.MaxSpeed))
}
