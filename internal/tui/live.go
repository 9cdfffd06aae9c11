package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/fractree/internal/config"
	"github.com/san-kum/fractree/internal/grid"
	"github.com/san-kum/fractree/internal/render"
	"github.com/san-kum/fractree/internal/tree"
)

const (
	previewCols = 80
	previewRows = 28
	maxDepth    = 14
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(34)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

// Model holds the current tree, its preview, and the UI context.
type Model struct {
	cfg     config.Config
	seed    int64
	stats   tree.Stats
	preview string
	elapsed time.Duration
	err     error
}

// NewModel grows the first tree immediately so the initial frame is
// never blank.
func NewModel(cfg *config.Config) Model {
	m := Model{cfg: *cfg, seed: cfg.Seed}
	if m.seed == 0 {
		m.seed = time.Now().UnixNano()
	}
	m.regenerate()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles input; every change regrows the whole tree in one
// synchronous pass.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r", " ":
			m.seed = time.Now().UnixNano()
			m.regenerate()
		case "+", "=", "up", "k":
			if m.cfg.Depth < maxDepth {
				m.cfg.Depth++
				m.regenerate()
			}
		case "-", "_", "down", "j":
			if m.cfg.Depth > 1 {
				m.cfg.Depth--
				m.regenerate()
			}
		}
	}
	return m, nil
}

func (m *Model) regenerate() {
	start := time.Now()

	g, err := grid.New(m.cfg.Width, m.cfg.Height)
	if err != nil {
		m.err = err
		return
	}

	tc := m.cfg.TreeConfig()
	tc.Seed = m.seed
	gen, err := tree.New(tc)
	if err != nil {
		m.err = err
		return
	}

	m.stats = gen.Grow(g)
	m.preview = render.Braille(g, previewCols, previewRows)
	m.elapsed = time.Since(start)
	m.err = nil
}

// View renders the TUI interface.
func (m Model) View() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("FRACTREE") + "\n\n")

	if m.err != nil {
		s.WriteString(errStyle.Render(m.err.Error()) + "\n")
	} else {
		s.WriteString(labelStyle.Render("Depth") + valueStyle.Render(fmt.Sprintf("%d", m.cfg.Depth)) + "\n")
		s.WriteString(labelStyle.Render("Seed") + valueStyle.Render(fmt.Sprintf("%d", m.seed)) + "\n")
		s.WriteString(labelStyle.Render("Grid") + valueStyle.Render(fmt.Sprintf("%dx%d", m.cfg.Width, m.cfg.Height)) + "\n")
		s.WriteString(labelStyle.Render("Segments") + valueStyle.Render(fmt.Sprintf("%d", m.stats.Segments)) + "\n")
		s.WriteString(labelStyle.Render("Cells") + valueStyle.Render(fmt.Sprintf("%d", m.stats.CellsPainted)) + "\n")
		s.WriteString(labelStyle.Render("Grown in") + valueStyle.Render(m.elapsed.Round(time.Microsecond).String()) + "\n")
	}

	s.WriteString(helpStyle.Render("\n──────────────────\nR:Reseed  +/-:Depth\nQ:Quit"))

	canvasView := canvasStyle.Render(m.preview)
	statsView := statsStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}

// Run starts the live view.
func Run(cfg *config.Config) error {
	p := tea.NewProgram(NewModel(cfg))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
