package home

import (
	"context"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mathspiral/mathspiral/internal/fluency"
	"github.com/mathspiral/mathspiral/internal/router"
	"github.com/mathspiral/mathspiral/internal/screen"
	"github.com/mathspiral/mathspiral/internal/screens/practice"
	"github.com/mathspiral/mathspiral/internal/session"
	"github.com/mathspiral/mathspiral/internal/skills"
	"github.com/mathspiral/mathspiral/internal/store"
	"github.com/mathspiral/mathspiral/internal/ui/components"
	"github.com/mathspiral/mathspiral/internal/ui/layout"
	"github.com/mathspiral/mathspiral/internal/ui/theme"
)

// HomeScreen is the skill picker, grouped by domain with a fluency
// badge per skill.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen. Fluency badges come from each skill's
// completed-session history.
func New(svc *session.Service, progress store.ProgressRepo) *HomeScreen {
	h := &HomeScreen{}

	var items []components.MenuItem
	for _, d := range skills.AllDomains() {
		items = append(items, components.MenuItem{
			Label:    strings.ToUpper(skills.DomainDisplayName(d)),
			Disabled: true,
			Color:    domainColor(d),
		})

		for _, sk := range skills.ByDomain(d) {
			sk := sk
			items = append(items, components.MenuItem{
				Label: sk.Name,
				Badge: badge(progress, sk),
				Action: func() tea.Cmd {
					return func() tea.Msg {
						return router.PushScreenMsg{Screen: practice.New(svc, sk)}
					}
				},
			})
		}
	}
	items = append(items, components.MenuItem{
		Label: "Exit",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})

	h.menu = components.NewMenu(items)
	return h
}

// badge returns the fluency label for a skill, empty when progress is
// unavailable.
func badge(progress store.ProgressRepo, sk skills.Skill) string {
	if progress == nil {
		return ""
	}
	prog, err := progress.SkillProgress(context.Background(), sk.ID)
	if err != nil || prog == nil {
		return ""
	}
	status := fluency.Classify(fluency.Input{
		SessionsCompleted: prog.SessionsCompleted,
		Accuracy:          prog.Accuracy(),
		AvgResponseTimeMs: float64(prog.AvgResponseMs),
		MaxDifficulty:     prog.MaxDifficulty,
		TopTierSessions:   prog.TopTierSessions,
		ProblemType:       sk.ProblemType,
	})
	return status.Label()
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := theme.Title.Width(width).Render("Pick a skill to practice")
	sub := theme.Subtitle.Width(width).Render("Difficulty and hints adjust as you go.")

	block := lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View())

	return title + "\n" + sub + "\n\n" + block
}

func domainColor(d skills.Domain) color.Color {
	switch d {
	case skills.DomainFractions:
		return theme.Fractions
	case skills.DomainIntegers:
		return theme.Integers
	case skills.DomainMultiplication:
		return theme.Multiplication
	default:
		return theme.Primary
	}
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Move"},
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
