package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles are the lipgloss styles derived from a Theme.
type Styles struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Panel       lipgloss.Style
	Plot        lipgloss.Style
	Selected    lipgloss.Style
	Cursor      lipgloss.Style
	Normal      lipgloss.Style
	MetricLabel lipgloss.Style
	MetricValue lipgloss.Style
	Key         lipgloss.Style
	KeyHint     lipgloss.Style
	Error       lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(t.Title),
		Subtitle: lipgloss.NewStyle().Foreground(t.Muted),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
		Plot:        lipgloss.NewStyle().Foreground(t.Plot),
		Selected:    lipgloss.NewStyle().Bold(true).Foreground(t.Text),
		Cursor:      lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		Normal:      lipgloss.NewStyle().Foreground(t.Muted),
		MetricLabel: lipgloss.NewStyle().Foreground(t.Muted),
		MetricValue: lipgloss.NewStyle().Bold(true).Foreground(t.Plot),
		Key:         lipgloss.NewStyle().Bold(true).Foreground(t.Title),
		KeyHint:     lipgloss.NewStyle().Foreground(t.Muted),
		Error:       lipgloss.NewStyle().Bold(true).Foreground(t.Error),
	}
}

// Slider renders a position bar for v within [lo, hi].
func (s Styles) Slider(v, lo, hi float64, width int) string {
	frac := 0.0
	if hi > lo {
		frac = (v - lo) / (hi - lo)
	}
	filled := int(frac*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return s.Plot.Render(strings.Repeat("█", filled)) + s.Normal.Render(strings.Repeat("░", width-filled))
}

// Sparkline renders values in [0,1] as a row of block characters, sampling
// down to width.
func (s Styles) Sparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return strings.Repeat("─", max(width, 0))
	}
	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	step := len(values) / width
	if step < 1 {
		step = 1
	}
	var b strings.Builder
	for i := 0; i < width && i*step < len(values); i++ {
		idx := int(values[i*step] * float64(len(chars)-1))
		if idx >= len(chars) {
			idx = len(chars) - 1
		}
		if idx < 0 {
			idx = 0
		}
		b.WriteRune(chars[idx])
	}
	return s.Plot.Render(b.String())
}

// KeyHelp renders alternating key / description pairs.
func (s Styles) KeyHelp(pairs ...string) string {
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(s.Key.Render(pairs[i]))
		b.WriteString(s.KeyHint.Render(" " + pairs[i+1]))
	}
	return b.String()
}
