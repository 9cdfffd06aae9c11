package render

import (
	"fmt"
	"strings"

	"github.com/san-kum/fractree/internal/grid"
)

// GridToSVG converts the grid to an SVG document, one filled rect per
// occupied cell on a white background.
func GridToSVG(g *grid.Grid) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, g.Width(), g.Height(), g.Width(), g.Height()))

	g.Render(func(x, y, w, h int, color string) {
		sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>
`, x, y, w, h, color))
	})

	sb.WriteString("</svg>")
	return sb.String()
}
