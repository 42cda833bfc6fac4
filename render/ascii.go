package render

import (
	"fmt"
	"strings"

	"github.com/Gao0602-kimi/gopong/game"
)

// Pixel is one cell of the rasterized field.
type Pixel struct {
	R, G, B uint8
}

// Palette. The paddle blue matches the web canvas build of the game.
var (
	ColorBackground = Pixel{}
	ColorWall       = Pixel{R: 120, G: 120, B: 120}
	ColorMidline    = Pixel{R: 90, G: 90, B: 90}
	ColorPaddle     = Pixel{R: 25, G: 181, B: 254}
	ColorBall       = Pixel{R: 240, G: 240, B: 240}
)

// ASCII characters for brightness, from lighter to darker
const asciiChars = " .,:;i1tfLCG08@"

const ansiReset = "\033[0m"

// brightness collapses a pixel to a single gray level.
func brightness(pixel Pixel) uint8 {
	return uint8((int(pixel.R) + int(pixel.G) + int(pixel.B)) / 3)
}

// grayToAscii maps a gray level to an ASCII character.
func grayToAscii(gray uint8) byte {
	return asciiChars[int(gray)*(len(asciiChars)-1)/255]
}

// Glyph picks the ASCII character for a pixel by its brightness.
func Glyph(pixel Pixel) byte {
	return grayToAscii(brightness(pixel))
}

// ansiColor converts a pixel to the ANSI escape code for that foreground color.
func ansiColor(pixel Pixel) string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", pixel.R, pixel.G, pixel.B)
}

// Rasterize paints a snapshot into a cols x rows pixel grid, scaling field
// coordinates down to cells.
func Rasterize(snap game.Snapshot, cols, rows int) [][]Pixel {
	grid := make([][]Pixel, rows)
	for y := range grid {
		grid[y] = make([]Pixel, cols)
	}
	if snap.FieldWidth <= 0 || snap.FieldHeight <= 0 || cols <= 0 || rows <= 0 {
		return grid
	}

	sx := float64(cols) / snap.FieldWidth
	sy := float64(rows) / snap.FieldHeight

	for x := 0; x < cols; x++ {
		grid[0][x] = ColorWall
		grid[rows-1][x] = ColorWall
	}
	mid := cols / 2
	for y := 1; y < rows-1; y += 2 {
		grid[y][mid] = ColorMidline
	}

	paintRect(grid, snap.LeftPaddle, sx, sy, ColorPaddle)
	paintRect(grid, snap.RightPaddle, sx, sy, ColorPaddle)
	paintBall(grid, snap.Ball, sx, sy)
	return grid
}

func paintRect(grid [][]Pixel, r game.Rect, sx, sy float64, color Pixel) {
	x0, x1 := int(r.Left()*sx), int(r.Right()*sx)
	y0, y1 := int(r.Top()*sy), int(r.Bottom()*sy)
	for y := y0; y <= y1; y++ {
		if y < 0 || y >= len(grid) {
			continue
		}
		for x := x0; x <= x1; x++ {
			if x < 0 || x >= len(grid[y]) {
				continue
			}
			grid[y][x] = color
		}
	}
}

func paintBall(grid [][]Pixel, ball game.BallState, sx, sy float64) {
	x0, x1 := int((ball.X-ball.Radius)*sx), int((ball.X+ball.Radius)*sx)
	y0, y1 := int((ball.Y-ball.Radius)*sy), int((ball.Y+ball.Radius)*sy)
	for y := y0; y <= y1; y++ {
		if y < 0 || y >= len(grid) {
			continue
		}
		for x := x0; x <= x1; x++ {
			if x < 0 || x >= len(grid[y]) {
				continue
			}
			cell := game.Rect{
				X:      float64(x) / sx,
				Y:      float64(y) / sy,
				Width:  1 / sx,
				Height: 1 / sy,
			}
			if game.CircleIntersectsRect(ball.X, ball.Y, ball.Radius, cell) {
				grid[y][x] = ColorBall
			}
		}
	}
}

// Frame renders a snapshot as one colored ASCII frame: a score header
// followed by the rasterized field, each visible cell wrapped in its ANSI
// color code.
func Frame(snap game.Snapshot, cols, rows int) string {
	var ascii strings.Builder

	score := fmt.Sprintf("%d : %d", snap.LeftScore, snap.RightScore)
	if snap.Paused {
		score += "  [paused]"
	}
	if pad := (cols - len(score)) / 2; pad > 0 {
		ascii.WriteString(strings.Repeat(" ", pad))
	}
	ascii.WriteString(score)
	ascii.WriteString("\n")

	for _, row := range Rasterize(snap, cols, rows) {
		for _, pixel := range row {
			char := Glyph(pixel)
			if char == ' ' {
				ascii.WriteByte(' ')
				continue
			}
			ascii.WriteString(ansiColor(pixel))
			ascii.WriteByte(char)
			ascii.WriteString(ansiReset)
		}
		ascii.WriteString("\n")
	}
	return ascii.String()
}
