package render

import "image/color"

// parseColor converts "#RRGGBB" to an opaque RGBA. Malformed strings
// fall back to black.
func parseColor(hex string) color.RGBA {
	if len(hex) != 7 || hex[0] != '#' {
		return color.RGBA{A: 255}
	}
	r := parseHexByte(hex[1:3])
	g := parseHexByte(hex[3:5])
	b := parseHexByte(hex[5:7])
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}

func parseHexByte(s string) int {
	val := 0
	for _, c := range s {
		val *= 16
		if c >= '0' && c <= '9' {
			val += int(c - '0')
		} else if c >= 'a' && c <= 'f' {
			val += int(c - 'a' + 10)
		} else if c >= 'A' && c <= 'F' {
			val += int(c - 'A' + 10)
		}
	}
	return val
}
