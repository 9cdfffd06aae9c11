package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/fractree/internal/config"
	"github.com/san-kum/fractree/internal/grid"
	"github.com/san-kum/fractree/internal/render"
	"github.com/san-kum/fractree/internal/store"
	"github.com/san-kum/fractree/internal/tree"
	"github.com/san-kum/fractree/internal/tui"
)

var (
	dataDir    string
	width      int
	height     int
	depth      int
	seed       int64
	angle      float64
	trunkColor string
	scale      int
	output     string
	format     string
	// Config file
	configFile string
	// Preset name
	preset string
	// Terminal preview size
	cols int
	rows int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fractree",
		Short: "stylized recursive fractal tree renderer",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".fractree", "data directory")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "grow a tree and write it as an image",
		RunE:  runRender,
	}
	addTreeFlags(renderCmd)
	renderCmd.Flags().IntVar(&scale, "scale", config.DefaultScale, "integer upscale factor (png)")
	renderCmd.Flags().StringVar(&output, "out", config.DefaultOutput, "output file")
	renderCmd.Flags().StringVar(&format, "format", config.DefaultFormat, "output format (png, svg)")

	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "grow a tree and print it to the terminal",
		RunE:  runPreview,
	}
	addTreeFlags(previewCmd)
	previewCmd.Flags().IntVar(&cols, "cols", 100, "preview width in characters")
	previewCmd.Flags().IntVar(&rows, "rows", 35, "preview height in characters")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive terminal view with reseed and depth keys",
		RunE:  runLive,
	}
	addTreeFlags(liveCmd)

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "plot the segment distribution of a tree",
		RunE:  runStats,
	}
	addTreeFlags(statsCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("presets:")
			for _, p := range config.ListPresets() {
				cfg := config.GetPreset(p)
				fmt.Printf("  %-12s %dx%d depth=%d\n", p, cfg.Width, cfg.Height, cfg.Depth)
			}
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved renders",
		RunE:  listRenders,
	}

	exportCmd := &cobra.Command{
		Use:   "export [render_id]",
		Short: "export render metadata as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRender,
	}

	rootCmd.AddCommand(renderCmd, previewCmd, liveCmd, statsCmd, presetsCmd, listCmd, exportCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addTreeFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "grid width")
	cmd.Flags().IntVar(&height, "height", config.DefaultHeight, "grid height")
	cmd.Flags().IntVar(&depth, "depth", tree.DefaultDepth, "recursion depth")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	cmd.Flags().Float64Var(&angle, "angle", tree.DefaultAngle, "trunk angle in degrees")
	cmd.Flags().StringVar(&trunkColor, "trunk-color", "#000000", "trunk color")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig layers preset, config file, and changed flags, in
// ascending precedence.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.Width = p.Width
		cfg.Height = p.Height
		cfg.Depth = p.Depth
		cfg.Angle = p.Angle
		cfg.Origin = p.Origin
		if p.TrunkColor != "" {
			cfg.TrunkColor = p.TrunkColor
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("width") {
		cfg.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = height
	}
	if cmd.Flags().Changed("depth") {
		cfg.Depth = depth
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("angle") {
		cfg.Angle = angle
	}
	if cmd.Flags().Changed("trunk-color") {
		cfg.TrunkColor = trunkColor
	}
	if cmd.Flags().Changed("scale") {
		cfg.Scale = scale
	}
	if cmd.Flags().Changed("out") {
		cfg.Output = output
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = format
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func grow(cfg *config.Config) (*grid.Grid, *tree.Generator, tree.Stats, error) {
	g, err := grid.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, nil, tree.Stats{}, err
	}
	gen, err := tree.New(cfg.TreeConfig())
	if err != nil {
		return nil, nil, tree.Stats{}, err
	}
	return g, gen, gen.Grow(g), nil
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("growing depth-%d tree on %dx%d grid...\n", cfg.Depth, cfg.Width, cfg.Height)
	start := time.Now()

	g, gen, stats, err := grow(cfg)
	if err != nil {
		return err
	}

	var data []byte
	switch cfg.Format {
	case "png":
		img := render.Scale(render.FromGrid(g), cfg.Scale)
		var buf bytes.Buffer
		if err := render.EncodePNG(&buf, img); err != nil {
			return err
		}
		data = buf.Bytes()
	case "svg":
		data = []byte(render.GridToSVG(g))
	}

	if err := os.WriteFile(cfg.Output, data, 0644); err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	renderID, err := st.Save(gen.Seed(), cfg.Depth, cfg.Width, cfg.Height, cfg.Format, stats, data)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("render id: %s\n", renderID)
	fmt.Printf("seed: %d\n", gen.Seed())
	fmt.Printf("segments: %d\n", stats.Segments)
	fmt.Printf("cells painted: %d\n", stats.CellsPainted)
	fmt.Printf("wrote %s (%d bytes)\n", cfg.Output, len(data))

	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	g, gen, stats, err := grow(cfg)
	if err != nil {
		return err
	}

	fmt.Print(render.Braille(g, cols, rows))
	fmt.Printf("\ndepth: %d  seed: %d  segments: %d  cells: %d\n",
		cfg.Depth, gen.Seed(), stats.Segments, stats.CellsPainted)

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	return tui.Run(cfg)
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	_, gen, stats, err := grow(cfg)
	if err != nil {
		return err
	}

	data := make([]float64, 0, cfg.Depth)
	for d := 1; d <= cfg.Depth; d++ {
		data = append(data, float64(stats.SegmentsPerDepth[d]))
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(60),
		asciigraph.Caption("segments per depth (trunk right)"),
	)
	fmt.Println(graph)
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DEPTH\tSEGMENTS\tTHICKNESS\tLENGTH")
	for d := cfg.Depth; d >= 1; d-- {
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\n", d, stats.SegmentsPerDepth[d], d, d*10)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nseed: %d\n", gen.Seed())
	fmt.Printf("total segments: %d\n", stats.Segments)
	fmt.Printf("cells painted: %d\n", stats.CellsPainted)

	return nil
}

func listRenders(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	renders, err := st.List()
	if err != nil {
		return err
	}

	if len(renders) == 0 {
		fmt.Println("no renders found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tSIZE\tDEPTH\tSEED\tSEGMENTS\tFORMAT")

	for _, r := range renders {
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t%d\t%d\t%d\t%s\n",
			r.ID,
			r.Timestamp.Format("2006-01-02 15:04:05"),
			r.Width, r.Height,
			r.Depth,
			r.Seed,
			r.Segments,
			r.Format,
		)
	}

	return w.Flush()
}

func exportRender(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}
