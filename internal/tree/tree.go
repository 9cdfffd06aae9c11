package tree

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/san-kum/fractree/internal/grid"
)

// Default geometry: trunk rooted near bottom-center of a 900x700 grid,
// pointing up (screen coordinates, -90 degrees is toward decreasing y).
const (
	DefaultDepth   = 10
	DefaultOriginX = 450
	DefaultOriginY = 700
	DefaultAngle   = -90.0

	segmentLength = 10 // grid units of length per depth level
	jitterMin     = 20 // degrees
	jitterMax     = 30
	leafDepth     = 3 // below this, segments get random leaf colors
)

// Config holds the generation parameters.
type Config struct {
	Depth      int
	OriginX    int
	OriginY    int
	Angle      float64
	TrunkColor string
	Seed       int64
}

// Stats summarizes one grown tree.
type Stats struct {
	Segments         int
	CellsPainted     int
	SegmentsPerDepth []int // indexed by depth, [0] unused
}

// Generator grows one tree per Grow call, reusing its random source.
type Generator struct {
	cfg Config
	rng *rand.Rand
}

// New validates cfg and prepares a generator. A zero Seed is replaced
// with the current time; fix the seed for reproducible trees.
func New(cfg Config) (*Generator, error) {
	if cfg.Depth <= 0 {
		return nil, fmt.Errorf("tree: depth must be positive, got %d", cfg.Depth)
	}
	if cfg.TrunkColor == "" {
		cfg.TrunkColor = grid.DefaultColor
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}, nil
}

// Seed returns the seed the generator draws from.
func (t *Generator) Seed() int64 {
	return t.cfg.Seed
}

// Grow performs the full recursive traversal in one synchronous pass,
// drawing every segment into g.
func (t *Generator) Grow(g *grid.Grid) Stats {
	s := Stats{SegmentsPerDepth: make([]int, t.cfg.Depth+1)}
	t.branch(g, &s, float64(t.cfg.OriginX), float64(t.cfg.OriginY), t.cfg.Angle, t.cfg.Depth)
	s.CellsPainted = g.Occupied()
	return s
}

// branch draws one segment and recurses into the two children. Depth 0
// is terminal: nothing is drawn.
func (t *Generator) branch(g *grid.Grid, s *Stats, x1, y1, angle float64, depth int) {
	if depth == 0 {
		return
	}

	length := float64(depth * segmentLength)
	rad := angle * math.Pi / 180
	x2 := x1 + math.Cos(rad)*length
	y2 := y1 + math.Sin(rad)*length

	color := t.cfg.TrunkColor
	if depth < leafDepth {
		color = t.leafColor()
	}
	g.DrawLine(round(x1), round(y1), round(x2), round(y2), depth, color)
	s.Segments++
	s.SegmentsPerDepth[depth]++

	// two independent jitter draws, so the children are not symmetric
	t.branch(g, s, x2, y2, angle-t.jitter(), depth-1)
	t.branch(g, s, x2, y2, angle+t.jitter(), depth-1)
}

func (t *Generator) jitter() float64 {
	return float64(jitterMin + t.rng.Intn(jitterMax-jitterMin+1))
}

// leafColor draws one random RGB color per leaf segment.
func (t *Generator) leafColor() string {
	return hexColor(t.rng.Intn(256), t.rng.Intn(256), t.rng.Intn(256))
}

func hexColor(r, g, b int) string {
	return "#" + hexByte(r) + hexByte(g) + hexByte(b)
}

func hexByte(v int) string {
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	const hex = "0123456789abcdef"
	return string(hex[v/16]) + string(hex[v%16])
}

func round(v float64) int {
	return int(math.Round(v))
}
