package game

import "math"

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (r Rect) Left() float64    { return r.X }
func (r Rect) Right() float64   { return r.X + r.Width }
func (r Rect) Top() float64     { return r.Y }
func (r Rect) Bottom() float64  { return r.Y + r.Height }
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

// CircleIntersectsRect reports whether a circle overlaps r, boundary contact
// included. The circle center is clamped to the rectangle to find the nearest
// point, then the squared distance decides.
func CircleIntersectsRect(cx, cy, radius float64, r Rect) bool {
	closestX := math.Min(math.Max(cx, r.Left()), r.Right())
	closestY := math.Min(math.Max(cy, r.Top()), r.Bottom())

	dx := cx - closestX
	dy := cy - closestY

	return dx*dx+dy*dy <= radius*radius
}
