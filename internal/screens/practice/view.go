package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mathspiral/mathspiral/internal/adaptation"
	"github.com/mathspiral/mathspiral/internal/problemgen"
	"github.com/mathspiral/mathspiral/internal/ui/components"
	"github.com/mathspiral/mathspiral/internal/ui/theme"
	"github.com/mathspiral/mathspiral/internal/ui/visual"
)

func (p *PracticeScreen) View(width, height int) string {
	switch {
	case p.errMsg != "":
		return renderError(width, p.errMsg)
	case p.quitConfirm:
		return renderQuitConfirm(width)
	case p.feedback != nil:
		return p.renderFeedback(width)
	case p.problem == nil:
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Getting a problem ready...")
	}
	return p.renderQuestion(width)
}

func (p *PracticeScreen) renderQuestion(width int) string {
	var b strings.Builder

	dots := components.SessionDots{
		Total:     p.session.Config.TotalProblems,
		GroupSize: p.session.Config.GroupSize,
		Results:   p.results,
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, dots.View()))
	b.WriteString("\n\n")

	prompt := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(p.problem.Prompt)
	b.WriteString(prompt)
	b.WriteString("\n\n")

	// Static-tier visuals always render; interactive ones on demand.
	v := p.problem.Visual
	if v != nil && (v.Tier == problemgen.TierStatic || (v.Tier == problemgen.TierInteractive && p.showHint)) {
		art := visual.Render(v)
		if art != "" {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, art))
			b.WriteString("\n\n")
		}
	}

	if p.problem.Format == problemgen.FormatMultipleChoice {
		mcView := p.mc.View()
		// The question line is already rendered above the visual.
		if idx := strings.Index(mcView, "\n\n"); idx >= 0 {
			mcView = mcView[idx+2:]
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, mcView))
	} else {
		answerLine := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Answer: " + p.input.View())
		b.WriteString(answerLine)
	}

	if p.invalidMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(p.invalidMsg))
	}

	return b.String()
}

func (p *PracticeScreen) renderFeedback(width int) string {
	fb := p.feedback

	var b strings.Builder
	b.WriteString("\n")

	if fb.Correct {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render(fb.Message))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fb.Message))
	}
	b.WriteString("\n\n")

	if fb.ShowVisual {
		if art := visual.Render(fb.Hint); art != "" {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, art))
			b.WriteString("\n\n")
		}
	}

	if fb.Explanation != "" {
		exp := lipgloss.NewStyle().
			Width(minInt(width-8, 70)).
			Foreground(theme.Text).
			Render(fb.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n\n")
	}

	if fb.Decision != nil {
		b.WriteString(renderDecision(fb.Decision, width))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

// renderDecision announces a group-boundary level change.
func renderDecision(d *adaptation.Decision, width int) string {
	var headline string
	style := lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Bold(true)

	switch {
	case d.DifficultyDelta > 0:
		headline = style.Foreground(theme.Accent).Render("Level up!")
	case d.DifficultyDelta < 0:
		headline = style.Foreground(theme.Secondary).Render("Taking it easier")
	case d.VisualDelta < 0:
		headline = style.Foreground(theme.Success).Render("Fewer hints next round")
	case d.VisualDelta > 0:
		headline = style.Foreground(theme.Secondary).Render("More hints next round")
	default:
		headline = style.Foreground(theme.TextDim).Render("Staying right here")
	}

	detail := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(d.Reason)

	return headline + "\n" + detail
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Stop practicing?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("This session will not count toward your progress."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Yes, stop"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
