package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mathspiral/mathspiral/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6 // " 100%"
	}

	barWidth := p.Width - labelWidth - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	filledStr := lipgloss.NewStyle().
		Background(theme.Secondary).
		Render(strings.Repeat(" ", filled))

	emptyStr := lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))

	result += filledStr + emptyStr

	if p.ShowPercent {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(p.Percent*100)))
	}

	return result
}

// SessionDots renders one marker per problem in a session, with a gap
// between adaptation groups. Answered problems show as filled dots
// colored by correctness, the rest as hollow dots.
type SessionDots struct {
	Total     int
	GroupSize int
	Results   []bool
}

// View renders the dot strip.
func (d SessionDots) View() string {
	correct := lipgloss.NewStyle().Foreground(theme.Success)
	wrong := lipgloss.NewStyle().Foreground(theme.Error)
	pending := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	for i := 0; i < d.Total; i++ {
		if i > 0 {
			if d.GroupSize > 0 && i%d.GroupSize == 0 {
				b.WriteString("  ")
			} else {
				b.WriteString(" ")
			}
		}
		switch {
		case i < len(d.Results) && d.Results[i]:
			b.WriteString(correct.Render("●"))
		case i < len(d.Results):
			b.WriteString(wrong.Render("●"))
		default:
			b.WriteString(pending.Render("○"))
		}
	}
	return b.String()
}
