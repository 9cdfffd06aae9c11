package tree

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fractree/internal/grid"
)

// occupiedSet lists painted coordinates for grid comparison.
func occupiedSet(g *grid.Grid) map[[2]int]grid.Cell {
	cells := make(map[[2]int]grid.Cell)
	g.Render(func(x, y, w, h int, color string) {
		cells[[2]int{x, y}] = grid.Cell{Color: color, Thickness: w}
	})
	return cells
}

var _ = Describe("Generator", func() {
	Describe("New", func() {
		It("rejects non-positive depth", func() {
			_, err := New(Config{Depth: 0})
			Expect(err).To(HaveOccurred())

			_, err = New(Config{Depth: -3})
			Expect(err).To(HaveOccurred())
		})

		It("defaults the trunk color to black", func() {
			gen, err := New(Config{Depth: 1, Seed: 1})
			Expect(err).NotTo(HaveOccurred())
			Expect(gen.cfg.TrunkColor).To(Equal("#000000"))
		})

		It("replaces a zero seed", func() {
			gen, err := New(Config{Depth: 1})
			Expect(err).NotTo(HaveOccurred())
			Expect(gen.Seed()).NotTo(BeZero())
		})
	})

	Describe("Grow", func() {
		It("draws 2^N - 1 segments for depth N", func() {
			for _, depth := range []int{1, 2, 3, 5, 8} {
				g, err := grid.New(2000, 2000)
				Expect(err).NotTo(HaveOccurred())

				gen, err := New(Config{Depth: depth, OriginX: 1000, OriginY: 1900, Angle: -90, Seed: 7})
				Expect(err).NotTo(HaveOccurred())

				stats := gen.Grow(g)
				Expect(stats.Segments).To(Equal(1<<depth-1), "depth %d", depth)
			}
		})

		It("counts segments per depth as a full binary expansion", func() {
			g, _ := grid.New(2000, 2000)
			gen, _ := New(Config{Depth: 6, OriginX: 1000, OriginY: 1900, Angle: -90, Seed: 11})

			stats := gen.Grow(g)
			for d := 1; d <= 6; d++ {
				Expect(stats.SegmentsPerDepth[d]).To(Equal(1<<(6-d)), "depth %d", d)
			}
		})

		It("paints each segment with its own depth as thickness", func() {
			g, _ := grid.New(200, 100)
			gen, _ := New(Config{Depth: 1, OriginX: 20, OriginY: 50, Angle: 0, Seed: 3})

			gen.Grow(g)
			for _, c := range occupiedSet(g) {
				Expect(c.Thickness).To(Equal(1))
			}
		})

		It("draws a depth-d segment spanning 10*d units at angle 0", func() {
			g, _ := grid.New(200, 100)
			gen, _ := New(Config{Depth: 1, OriginX: 20, OriginY: 50, Angle: 0, Seed: 3})

			stats := gen.Grow(g)
			Expect(stats.Segments).To(Equal(1))

			// horizontal line from x=20 to x=30 inclusive
			Expect(stats.CellsPainted).To(Equal(11))
			for x := 20; x <= 30; x++ {
				c, err := g.At(x, 50)
				Expect(err).NotTo(HaveOccurred())
				Expect(c).NotTo(BeNil(), "x=%d", x)
			}
		})

		It("colors deep segments with the trunk color and leaves randomly", func() {
			g, _ := grid.New(2000, 2000)
			gen, _ := New(Config{Depth: 6, OriginX: 1000, OriginY: 1900, Angle: -90, Seed: 21})

			gen.Grow(g)

			leaf := 0
			for _, c := range occupiedSet(g) {
				// thickness >= leafDepth means a trunk segment painted the cell
				if c.Thickness >= leafDepth {
					Expect(c.Color).To(Equal("#000000"))
				} else if c.Color != "#000000" {
					leaf++
				}
			}
			Expect(leaf).To(BeNumerically(">", 0), "expected random leaf colors")
		})

		It("is reproducible for a fixed seed", func() {
			grow := func() map[[2]int]grid.Cell {
				g, _ := grid.New(900, 700)
				gen, _ := New(Config{Depth: 8, OriginX: 450, OriginY: 700, Angle: -90, Seed: 99})
				gen.Grow(g)
				return occupiedSet(g)
			}
			Expect(grow()).To(Equal(grow()))
		})

		It("renders the full default tree without error", func() {
			g, err := grid.New(900, 700)
			Expect(err).NotTo(HaveOccurred())

			gen, err := New(Config{
				Depth:   DefaultDepth,
				OriginX: DefaultOriginX,
				OriginY: DefaultOriginY,
				Angle:   DefaultAngle,
				Seed:    42,
			})
			Expect(err).NotTo(HaveOccurred())

			stats := gen.Grow(g)
			Expect(stats.Segments).To(Equal(1<<DefaultDepth - 1))
			Expect(stats.CellsPainted).To(BeNumerically(">", 0))

			// the trunk rises straight from the origin at -90 degrees;
			// (450, 700) itself is clipped, the cell above it is not
			c, err := g.At(450, 699)
			Expect(err).NotTo(HaveOccurred())
			Expect(c).NotTo(BeNil())
			Expect(c.Thickness).To(Equal(DefaultDepth))
		})
	})
})
