package render

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/fractree/internal/grid"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		hex  string
		want color.RGBA
	}{
		{"#000000", color.RGBA{0, 0, 0, 255}},
		{"#ffffff", color.RGBA{255, 255, 255, 255}},
		{"#FF8000", color.RGBA{255, 128, 0, 255}},
		{"#12ab3c", color.RGBA{0x12, 0xab, 0x3c, 255}},
		{"garbage", color.RGBA{0, 0, 0, 255}},
		{"", color.RGBA{0, 0, 0, 255}},
	}

	for _, tt := range tests {
		if got := parseColor(tt.hex); got != tt.want {
			t.Errorf("parseColor(%q) = %v, want %v", tt.hex, got, tt.want)
		}
	}
}

func TestFromGridPaintsSquares(t *testing.T) {
	g, err := grid.New(20, 20)
	if err != nil {
		t.Fatalf("new grid: %v", err)
	}
	g.Set(5, 5, 3, "#ff0000")

	img := FromGrid(g)

	red := color.RGBA{255, 0, 0, 255}
	for dy := 0; dy < 3; dy++ {
		for dx := 0; dx < 3; dx++ {
			if got := img.RGBAAt(5+dx, 5+dy); got != red {
				t.Errorf("pixel (%d,%d) = %v, want red", 5+dx, 5+dy, got)
			}
		}
	}

	white := color.RGBA{255, 255, 255, 255}
	if got := img.RGBAAt(0, 0); got != white {
		t.Errorf("background pixel = %v, want white", got)
	}
	if got := img.RGBAAt(8, 5); got != white {
		t.Errorf("pixel past the square = %v, want white", got)
	}
}

func TestScale(t *testing.T) {
	g, _ := grid.New(4, 4)
	g.Set(0, 0, 1, "#000000")
	img := FromGrid(g)

	scaled := Scale(img, 3)
	if b := scaled.Bounds(); b.Dx() != 12 || b.Dy() != 12 {
		t.Fatalf("expected 12x12, got %dx%d", b.Dx(), b.Dy())
	}

	black := color.RGBA{0, 0, 0, 255}
	for dy := 0; dy < 3; dy++ {
		for dx := 0; dx < 3; dx++ {
			if got := scaled.RGBAAt(dx, dy); got != black {
				t.Errorf("scaled pixel (%d,%d) = %v, want black", dx, dy, got)
			}
		}
	}

	if Scale(img, 1) != img {
		t.Error("factor 1 should return the image unchanged")
	}
}

func TestSavePNGRoundTrip(t *testing.T) {
	g, _ := grid.New(10, 10)
	g.DrawLine(0, 0, 9, 9, 1, "#0000ff")
	img := FromGrid(g)

	path := filepath.Join(t.TempDir(), "tree.png")
	if err := SavePNG(path, img); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer f.Close()

	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 10 || b.Dy() != 10 {
		t.Errorf("expected 10x10, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestGridToSVG(t *testing.T) {
	g, _ := grid.New(30, 20)
	g.Set(3, 4, 2, "#00ff00")

	svg := GridToSVG(g)

	if !strings.Contains(svg, `width="30" height="20"`) {
		t.Error("missing svg dimensions")
	}
	if !strings.Contains(svg, `<rect x="3" y="4" width="2" height="2" fill="#00ff00"/>`) {
		t.Error("missing cell rect")
	}
	if !strings.HasSuffix(svg, "</svg>") {
		t.Error("document not closed")
	}
}

func TestGridToSVGEmpty(t *testing.T) {
	g, _ := grid.New(5, 5)
	svg := GridToSVG(g)
	// background rect only
	if strings.Count(svg, "<rect") != 1 {
		t.Errorf("expected only the background rect, got:\n%s", svg)
	}
}

func TestBraille(t *testing.T) {
	g, _ := grid.New(80, 80)
	g.DrawLine(0, 40, 79, 40, 1, "#000000")

	out := Braille(g, 20, 10)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 10 {
		t.Fatalf("expected 10 rows, got %d", len(lines))
	}

	marked := 0
	for _, line := range lines {
		for _, r := range line {
			if r != 0x2800 {
				marked++
			}
		}
	}
	if marked == 0 {
		t.Error("expected some braille dots for a painted line")
	}
}

func TestBrailleEmptyDims(t *testing.T) {
	g, _ := grid.New(10, 10)
	if out := Braille(g, 0, 5); out != "" {
		t.Errorf("expected empty string, got %q", out)
	}
}
