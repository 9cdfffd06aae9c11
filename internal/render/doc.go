// Package render translates a finished grid into output surfaces:
// an RGBA image (PNG), an SVG document, or a braille string for the
// terminal. The core never touches these; it only exposes cell
// contents through grid.Render.
package render
