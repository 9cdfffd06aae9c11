// Package grid provides the pixel grid the tree is rasterized into.
//
// The package defines the fundamental types for cell-level drawing:
//
//   - [Cell]: a painted grid position (hex color + square thickness)
//   - [Grid]: a fixed-size 2D field of optional cells
//
// Writes outside the grid are clipped silently, so callers can draw
// lines that run off the edge without guarding every coordinate. Reads
// outside the grid return [ErrOutOfBounds]. This asymmetry is
// deliberate: drawing clips, inspection fails loudly.
//
// # Example
//
//	g, _ := grid.New(900, 700)
//	g.DrawLine(450, 700, 450, 600, 10, grid.DefaultColor)
//	g.Render(func(x, y, w, h int, color string) { ... })
package grid
