package game

import "github.com/Gao0602-kimi/gopong/utils"

// Paddle is one side's racket. The left paddle follows player input, the
// right one is driven by the AI; both move only vertically and are clamped
// to the field on every move.
type Paddle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Speed  float64 `json:"speed"` // Displacement per tick of held input

	fieldHeight float64
}

// NewPaddle builds the paddle for one side of the field, vertically centered.
func NewPaddle(cfg utils.Config, side Side) *Paddle {
	paddle := &Paddle{
		Width:       cfg.PaddleWidth,
		Height:      cfg.PaddleHeight,
		Y:           cfg.FieldHeight/2 - cfg.PaddleHeight/2,
		fieldHeight: cfg.FieldHeight,
	}
	if side == SideRight {
		paddle.X = cfg.FieldWidth - cfg.PaddleOffset - cfg.PaddleWidth
		paddle.Speed = cfg.AIMaxSpeed
	} else {
		paddle.X = cfg.PaddleOffset
		paddle.Speed = cfg.PlayerSpeed
	}
	return paddle
}

// MoveTo places the paddle's vertical center at centerY, clamped so the
// paddle stays fully on the field.
func (paddle *Paddle) MoveTo(centerY float64) {
	half := paddle.Height / 2
	paddle.Y = utils.Clamp(centerY, half, paddle.fieldHeight-half) - half
}

// MoveBy shifts the paddle vertically by dy, clamped to the field.
func (paddle *Paddle) MoveBy(dy float64) {
	paddle.Y = utils.Clamp(paddle.Y+dy, 0, paddle.fieldHeight-paddle.Height)
}

func (paddle *Paddle) CenterY() float64 { return paddle.Y + paddle.Height/2 }

func (paddle *Paddle) Rect() Rect {
	return Rect{X: paddle.X, Y: paddle.Y, Width: paddle.Width, Height: paddle.Height}
}
