package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/helix/internal/panel"
)

type styles struct {
	title, text, muted, accent, helix lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		text:   lipgloss.NewStyle().Foreground(t.Text),
		muted:  lipgloss.NewStyle().Foreground(t.Muted),
		accent: lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		helix:  lipgloss.NewStyle().Foreground(t.Helix),
	}
}

// SliderBar renders a fixed-width track with the knob at fraction.
func SliderBar(fraction float64, width int) string {
	if width < 2 {
		width = 2
	}
	pos := int(fraction * float64(width-1))
	if pos < 0 {
		pos = 0
	}
	if pos > width-1 {
		pos = width - 1
	}
	return strings.Repeat("━", pos) + "●" + strings.Repeat("─", width-1-pos)
}

func (s styles) renderPanel(sliders []panel.Slider, width int) string {
	var b strings.Builder
	for i, sl := range sliders {
		if i > 0 {
			b.WriteByte('\n')
		}
		line := fmt.Sprintf("%-9s %s %7s", sl.Label, SliderBar(sl.Fraction, width), sl.Text())
		if sl.Selected {
			b.WriteString(s.accent.Render("> " + line))
		} else {
			b.WriteString(s.text.Render("  " + line))
		}
	}
	return b.String()
}
