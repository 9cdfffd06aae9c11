package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/san-kum/fractree/internal/grid"
)

// FromGrid rasterizes the grid onto a white RGBA image, painting each
// occupied cell as a filled thickness×thickness square. Squares that
// run past the image edge are clipped by image.RGBA itself.
func FromGrid(g *grid.Grid) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width(), g.Height()))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	g.Render(func(x, y, w, h int, hex string) {
		c := parseColor(hex)
		for dy := 0; dy < h; dy++ {
			for dx := 0; dx < w; dx++ {
				img.Set(x+dx, y+dy, c)
			}
		}
	})
	return img
}

// Scale upscales img by an integer factor with nearest-neighbour
// sampling, keeping the hard pixel edges. Factor <= 1 returns img
// unchanged.
func Scale(img *image.RGBA, factor int) *image.RGBA {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// SavePNG writes img to path as PNG.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
