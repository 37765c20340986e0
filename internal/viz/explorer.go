package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"

	"github.com/san-kum/radpat/internal/antenna"
	"github.com/san-kum/radpat/internal/engine"
	"github.com/san-kum/radpat/internal/export"
)

const (
	polarCols, polarRows     = 40, 17
	surfaceCols, surfaceRows = 72, 18
	canvasScale              = 4
	sliderWidth              = 20
)

type viewMode int

const (
	viewPolar viewMode = iota
	viewSurface
)

// SnapshotFunc writes a snapshot of f and returns the file written.
type SnapshotFunc func(f engine.Frame) (string, error)

type snapshotMsg struct {
	path string
	err  error
}

// Model is the interactive pattern explorer. Every key that changes the
// antenna builds a new configuration and applies it synchronously.
type Model struct {
	engine    *engine.Engine
	azimuth   *Canvas
	elevation *Canvas
	surface   *Canvas

	kinds    []antenna.Kind
	configs  map[antenna.Kind]antenna.Configuration
	kind     antenna.Kind
	cursor   int
	frame    engine.Frame
	view     viewMode
	theme    int
	styles   Styles
	status   string
	err      error
	snapshot SnapshotFunc
	logger   log.FieldLogger
	width    int
}

type Option func(*Model)

func WithSnapshot(fn SnapshotFunc) Option {
	return func(m *Model) { m.snapshot = fn }
}

func WithTheme(name string) Option {
	return func(m *Model) {
		for i, t := range Themes {
			if t.Name == name {
				m.theme = i
			}
		}
		m.styles = NewStyles(Themes[m.theme])
	}
}

func WithLogger(l log.FieldLogger) Option {
	return func(m *Model) { m.logger = l }
}

// WithEngineOptions passes options through to the engine, e.g. a clock.
func WithEngineOptions(opts ...engine.Option) Option {
	return func(m *Model) {
		m.engine = engine.New(engine.Surfaces{
			Azimuth:   m.azimuth,
			Elevation: m.elevation,
			Surface:   m.surface,
		}, opts...)
	}
}

// NewModel builds an explorer showing initial.
func NewModel(initial antenna.Configuration, opts ...Option) (Model, error) {
	m := Model{
		azimuth:   NewCanvas(polarCols, polarRows, canvasScale),
		elevation: NewCanvas(polarCols, polarRows, canvasScale),
		surface:   NewCanvas(surfaceCols, surfaceRows, canvasScale),
		kinds:     antenna.Kinds(),
		configs:   map[antenna.Kind]antenna.Configuration{},
		styles:    NewStyles(Themes[0]),
		logger:    log.StandardLogger(),
		snapshot:  saveSnapshot(".", export.DefaultPanelSize),
		width:     80,
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.engine == nil {
		m.engine = engine.New(engine.Surfaces{
			Azimuth:   m.azimuth,
			Elevation: m.elevation,
			Surface:   m.surface,
		}, engine.WithLogger(m.logger))
	}
	for _, k := range m.kinds {
		m.configs[k], _ = antenna.Default(k)
	}
	if err := m.apply(initial); err != nil {
		return m, err
	}
	return m, nil
}

func saveSnapshot(dir string, size export.PanelSize) SnapshotFunc {
	return func(f engine.Frame) (string, error) {
		return export.SaveSnapshot(dir, size, f.Config, &f.Pattern, f.Summary, f.UpdatedAt)
	}
}

// SnapshotDir saves snapshots with the given panel size into dir.
func SnapshotDir(dir string, size export.PanelSize) Option {
	return WithSnapshot(saveSnapshot(dir, size))
}

func (m *Model) apply(cfg antenna.Configuration) error {
	f, err := m.engine.Apply(cfg)
	if err != nil {
		m.err = err
		return err
	}
	m.frame, m.err = f, nil
	m.kind = cfg.Kind()
	m.configs[m.kind] = cfg
	if m.cursor >= len(Controls[m.kind]) {
		m.cursor = 0
	}
	return nil
}

func (m Model) Frame() engine.Frame           { return m.frame }
func (m Model) Kind() antenna.Kind            { return m.kind }
func (m Model) Config() antenna.Configuration { return m.frame.Config }
func (m Model) Theme() Theme                  { return Themes[m.theme] }
func (m Model) Status() string                { return m.status }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case snapshotMsg:
		if msg.err != nil {
			m.status = "snapshot failed: " + msg.err.Error()
			m.logger.WithError(msg.err).Warn("snapshot failed")
		} else {
			m.status = "saved " + msg.path
			m.logger.WithField("path", msg.path).Info("snapshot saved")
		}
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	controls := Controls[m.kind]
	switch key := msg.String(); key {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "1", "2", "3", "4":
		m.selectKind(m.kinds[int(key[0]-'1')])
	case "tab":
		m.selectKind(m.kinds[(m.kindIndex()+1)%len(m.kinds)])
	case "shift+tab":
		m.selectKind(m.kinds[(m.kindIndex()+len(m.kinds)-1)%len(m.kinds)])
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(controls)-1 {
			m.cursor++
		}
	case "left", "h":
		m.adjust(-1)
	case "right", "l":
		m.adjust(1)
	case "r":
		if cfg, err := antenna.Default(m.kind); err == nil {
			m.apply(cfg)
			m.status = "reset " + antenna.DisplayName(cfg)
		}
	case "t":
		m.theme = (m.theme + 1) % len(Themes)
		m.styles = NewStyles(Themes[m.theme])
	case "v":
		if m.view == viewPolar {
			m.view = viewSurface
		} else {
			m.view = viewPolar
		}
	case "s":
		f, fn := m.frame, m.snapshot
		return m, func() tea.Msg {
			path, err := fn(f)
			return snapshotMsg{path: path, err: err}
		}
	}
	return m, nil
}

func (m *Model) selectKind(k antenna.Kind) {
	if k == m.kind {
		return
	}
	m.cursor = 0
	m.apply(m.configs[k])
}

func (m *Model) adjust(steps int) {
	controls := Controls[m.kind]
	if m.cursor >= len(controls) {
		return
	}
	m.apply(controls[m.cursor].Adjust(m.configs[m.kind], steps))
}

func (m Model) kindIndex() int {
	for i, k := range m.kinds {
		if k == m.kind {
			return i
		}
	}
	return 0
}

func (m Model) View() string {
	s := m.styles
	var b strings.Builder

	b.WriteString("\n  " + s.Title.Render("RADPAT") + "  " + s.Subtitle.Render("antenna radiation patterns") + "\n\n  ")
	for i, k := range m.kinds {
		label := fmt.Sprintf("%d %s", i+1, k)
		if k == m.kind {
			b.WriteString(s.Cursor.Render("[" + label + "]"))
		} else {
			b.WriteString(s.Normal.Render(" " + label + " "))
		}
		b.WriteString(" ")
	}
	b.WriteString("\n\n")

	b.WriteString(m.viewPlots())
	b.WriteString("\n")
	b.WriteString(m.viewControls())
	b.WriteString("\n")
	b.WriteString(m.viewMetrics())

	if m.err != nil {
		b.WriteString("\n  " + s.Error.Render(m.err.Error()) + "\n")
	}
	if m.status != "" {
		b.WriteString("\n  " + s.Subtitle.Render(m.status) + "\n")
	}
	b.WriteString("\n  " + s.KeyHelp("1-4", "type", "j/k", "select", "h/l", "adjust", "r", "reset",
		"v", "view", "s", "snapshot", "t", "theme", "q", "quit") + "\n")
	return b.String()
}

func (m Model) viewPlots() string {
	s := m.styles
	if m.view == viewSurface {
		return s.Panel.Render(s.Title.Render("3D pattern") + "\n" + s.Plot.Render(strings.TrimRight(m.surface.String(), "\n")))
	}
	az := s.Panel.Render(s.Title.Render("Azimuth") + "\n" + s.Plot.Render(strings.TrimRight(m.azimuth.String(), "\n")))
	el := s.Panel.Render(s.Title.Render("Elevation") + "\n" + s.Plot.Render(strings.TrimRight(m.elevation.String(), "\n")))
	return lipgloss.JoinHorizontal(lipgloss.Top, az, el)
}

func (m Model) viewControls() string {
	s := m.styles
	var b strings.Builder
	b.WriteString("  " + s.Title.Render(antenna.DisplayName(m.frame.Config)) + "\n")
	for i, c := range Controls[m.kind] {
		v := c.Get(m.configs[m.kind])
		line := fmt.Sprintf("%-10s %s %8s", c.Label, s.Slider(v, c.Min, c.Max, sliderWidth), c.Format(v))
		if i == m.cursor {
			b.WriteString("  " + s.Cursor.Render("▸ ") + s.Selected.Render(line) + "\n")
		} else {
			b.WriteString("    " + s.Normal.Render(line) + "\n")
		}
	}
	return b.String()
}

func (m Model) viewMetrics() string {
	s := m.styles
	sum := m.frame.Summary
	metric := func(label, value string) string {
		return s.MetricLabel.Render(label+": ") + s.MetricValue.Render(value)
	}
	return "  " + strings.Join([]string{
		metric("Gain", sum.GainText()),
		metric("Beamwidth", sum.BeamwidthText()),
		metric("Front-to-Back", sum.FrontToBackText()),
		metric("Efficiency", sum.EfficiencyText()),
	}, "   ") + "\n  " +
		s.MetricLabel.Render("Azimuth ") + s.Sparkline(m.frame.Pattern.Azimuth[:360], 60) + "\n  " +
		s.MetricLabel.Render("Last update: ") + s.Selected.Render(m.frame.UpdatedAt.Format(time.TimeOnly)) + "\n"
}

// Run starts the explorer on the terminal.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
