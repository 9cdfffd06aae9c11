package render

import (
	"strings"

	"github.com/san-kum/fractree/internal/grid"
)

// Braille Patterns: 2x4 dots per character cell
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Braille downsamples the grid onto a cols×rows braille canvas and
// returns it as a printable string. Each character packs 2x4 dots, so
// the effective resolution is (cols*2) x (rows*4) sub-pixels.
func Braille(g *grid.Grid, cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}

	canvas := make([][]rune, rows)
	for i := range canvas {
		canvas[i] = make([]rune, cols)
		for j := range canvas[i] {
			canvas[i][j] = 0x2800
		}
	}

	subW := cols * 2
	subH := rows * 4
	g.Render(func(x, y, w, h int, color string) {
		sx := x * subW / g.Width()
		sy := y * subH / g.Height()

		col := sx / 2
		row := sy / 4
		if col >= cols || row >= rows {
			return
		}
		canvas[row][col] |= rune(pixelMap[sy%4][sx%2])
	})

	var b strings.Builder
	for _, row := range canvas {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}
