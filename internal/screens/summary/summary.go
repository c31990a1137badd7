package summary

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mathspiral/mathspiral/internal/router"
	"github.com/mathspiral/mathspiral/internal/screen"
	sess "github.com/mathspiral/mathspiral/internal/session"
	"github.com/mathspiral/mathspiral/internal/ui/layout"
	"github.com/mathspiral/mathspiral/internal/ui/theme"
)

// summaryReadyMsg is sent when the summary has been assembled.
type summaryReadyMsg struct {
	Summary *sess.Summary
	Err     error
}

// SummaryScreen displays the end-of-session report.
type SummaryScreen struct {
	svc     *sess.Service
	session *sess.Session

	summary *sess.Summary
	errMsg  string
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a summary screen for a completed session. The report is
// assembled from Init.
func New(svc *sess.Service, s *sess.Session) *SummaryScreen {
	return &SummaryScreen{svc: svc, session: s}
}

func (s *SummaryScreen) Init() tea.Cmd {
	if s.svc == nil {
		return nil
	}
	return func() tea.Msg {
		sum, err := s.svc.BuildSummary(context.Background(), s.session)
		return summaryReadyMsg{Summary: sum, Err: err}
	}
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case summaryReadyMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.summary = msg.Summary
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\nError: " + s.errMsg)
	}
	sum := s.summary
	if sum == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\nAdding up your session...")
	}

	center := func(st lipgloss.Style, text string) string {
		return st.Width(width).Align(lipgloss.Center).Render(text)
	}

	var b strings.Builder

	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true), "Session complete!"))
	b.WriteString("\n")
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim), sum.SkillName))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim),
		fmt.Sprintf("Duration: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Problems: %d        Correct: %d        Accuracy: %.0f%%",
		sum.TotalProblems, sum.CorrectCount, sum.Accuracy*100)
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Text), statsLine))
	b.WriteString("\n\n")

	levelLine := fmt.Sprintf("Difficulty %d > %d        Hints %d > %d",
		sum.StartState.Difficulty, sum.FinalState.Difficulty,
		sum.StartState.VisualLevel, sum.FinalState.VisualLevel)
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Text), levelLine))
	b.WriteString("\n")
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim), trendLine(sum.VisualTrend)))
	b.WriteString("\n\n")

	if sum.Message != "" {
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true), sum.Message))
		b.WriteString("\n\n")
	}

	if len(sum.Decisions) > 0 {
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
			strings.Repeat("─", minInt(width-8, 60)))
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim), "Round by round"))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for i, d := range sum.Decisions {
			line := fmt.Sprintf("  Round %d: %s", i+1, d.Reason)
			style := lipgloss.NewStyle().Foreground(theme.Text)
			if d.DifficultyDelta > 0 {
				style = style.Foreground(theme.Success)
			} else if d.DifficultyDelta < 0 || d.VisualDelta > 0 {
				style = style.Foreground(theme.Secondary)
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// trendLine turns the visual-support trend into a reader-facing line.
func trendLine(trend string) string {
	switch trend {
	case "decreasing":
		return "You're needing fewer hints over time."
	case "increasing":
		return "You're leaning on hints a bit more lately."
	default:
		return "Your hint use is holding steady."
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
