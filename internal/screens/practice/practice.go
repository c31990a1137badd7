package practice

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/mathspiral/mathspiral/internal/problemgen"
	"github.com/mathspiral/mathspiral/internal/router"
	"github.com/mathspiral/mathspiral/internal/screen"
	"github.com/mathspiral/mathspiral/internal/screens/summary"
	sess "github.com/mathspiral/mathspiral/internal/session"
	"github.com/mathspiral/mathspiral/internal/skills"
	"github.com/mathspiral/mathspiral/internal/ui/components"
	"github.com/mathspiral/mathspiral/internal/ui/layout"
)

// PracticeScreen runs one adaptive practice session.
type PracticeScreen struct {
	svc   *sess.Service
	skill skills.Skill

	session *sess.Session
	problem *problemgen.Problem

	input components.TextInput
	mc    components.MultiChoice

	feedback *sess.Feedback
	results  []bool

	showHint    bool
	quitConfirm bool
	errMsg      string
	invalidMsg  string

	shownAt time.Time
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)
var _ screen.StatusProvider = (*PracticeScreen)(nil)

// New creates a practice screen for a skill. The session itself is
// started from Init.
func New(svc *sess.Service, skill skills.Skill) *PracticeScreen {
	return &PracticeScreen{
		svc:   svc,
		skill: skill,
		input: components.NewTextInput("Type your answer...", true, 12),
	}
}

func (p *PracticeScreen) Init() tea.Cmd {
	return tea.Batch(p.startSession(), p.input.Init())
}

func (p *PracticeScreen) Title() string {
	return p.skill.Name
}

// Status feeds the header's right segment.
func (p *PracticeScreen) Status() string {
	if p.session == nil {
		return ""
	}
	answered := p.session.Sequence
	shown := answered
	if p.problem != nil && p.feedback == nil {
		shown++
	}
	return fmt.Sprintf("%d/%d  D%d V%d",
		shown, p.session.Config.TotalProblems,
		p.session.State.Difficulty, p.session.State.VisualLevel)
}

func (p *PracticeScreen) KeyHints() []layout.KeyHint {
	switch {
	case p.quitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "Stop practicing"},
			{Key: "N", Description: "Keep going"},
		}
	case p.feedback != nil:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	case p.problem != nil && p.problem.Format == problemgen.FormatMultipleChoice:
		hints := []layout.KeyHint{
			{Key: "↑/↓", Description: "Choose"},
			{Key: "Enter", Description: "Submit"},
		}
		if p.hintAvailable() {
			hints = append(hints, layout.KeyHint{Key: "H", Description: "Hint"})
		}
		return append(hints, layout.KeyHint{Key: "Esc", Description: "Stop"})
	default:
		hints := []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
		}
		if p.hintAvailable() {
			hints = append(hints, layout.KeyHint{Key: "Ctrl+H", Description: "Hint"})
		}
		return append(hints, layout.KeyHint{Key: "Esc", Description: "Stop"})
	}
}

// hintAvailable reports whether the current problem offers an
// on-demand visual. Static-tier visuals are always shown instead.
func (p *PracticeScreen) hintAvailable() bool {
	return p.problem != nil && p.problem.Visual != nil &&
		p.problem.Visual.Tier == problemgen.TierInteractive
}

func (p *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionStartedMsg:
		if msg.Err != nil {
			p.errMsg = msg.Err.Error()
			return p, nil
		}
		p.session = msg.Session
		return p, p.nextProblem()

	case problemReadyMsg:
		if msg.Err != nil {
			p.errMsg = msg.Err.Error()
			return p, nil
		}
		p.problem = msg.Problem
		p.showHint = false
		p.invalidMsg = ""
		p.shownAt = time.Now()
		p.input.Reset()
		if p.problem.Format == problemgen.FormatMultipleChoice {
			p.mc = components.NewMultiChoice(p.problem.Prompt, p.problem.Choices, correctIndex(p.problem))
		}
		return p, nil

	case answerResultMsg:
		if msg.Err != nil {
			var invalid *problemgen.InvalidAnswerError
			if errors.As(msg.Err, &invalid) {
				p.invalidMsg = invalid.Reason
				return p, nil
			}
			p.errMsg = msg.Err.Error()
			return p, nil
		}
		p.feedback = msg.Feedback
		p.results = append(p.results, msg.Feedback.Correct)
		return p, nil

	case abandonedMsg:
		return p, func() tea.Msg { return router.PopScreenMsg{} }

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	if p.inQuestionPhase() && p.problem.Format == problemgen.FormatNumeric {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}
	return p, nil
}

// inQuestionPhase reports whether a problem is awaiting an answer.
func (p *PracticeScreen) inQuestionPhase() bool {
	return p.errMsg == "" && !p.quitConfirm && p.feedback == nil && p.problem != nil
}

func (p *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if p.errMsg != "" {
		return p, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if p.quitConfirm {
		switch key {
		case "y", "Y":
			return p, p.abandon()
		case "n", "N", "esc":
			p.quitConfirm = false
		}
		return p, nil
	}

	if p.feedback != nil {
		fb := p.feedback
		p.feedback = nil
		p.problem = nil
		if fb.Done {
			return p, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: summary.New(p.svc, p.session)}
			}
		}
		return p, p.nextProblem()
	}

	if p.problem == nil {
		return p, nil
	}

	switch key {
	case "esc":
		p.quitConfirm = true
		return p, nil
	case "h", "ctrl+h":
		// The numeric input filter rejects 'h', so the binding never
		// collides with typing.
		if p.hintAvailable() {
			p.showHint = !p.showHint
			return p, nil
		}
	}

	if p.problem.Format == problemgen.FormatMultipleChoice {
		var cmd tea.Cmd
		p.mc, cmd = p.mc.Update(msg)
		if p.mc.Submitted {
			return p, p.submit(p.mc.Options[p.mc.ChosenIndex])
		}
		return p, cmd
	}

	if key == "enter" {
		value := p.input.Value()
		if value == "" {
			return p, nil
		}
		return p, p.submit(value)
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p *PracticeScreen) startSession() tea.Cmd {
	return func() tea.Msg {
		s, err := p.svc.Start(context.Background(), p.skill.ID)
		return sessionStartedMsg{Session: s, Err: err}
	}
}

func (p *PracticeScreen) nextProblem() tea.Cmd {
	return func() tea.Msg {
		prob, err := p.svc.NextProblem(p.session)
		return problemReadyMsg{Problem: prob, Err: err}
	}
}

func (p *PracticeScreen) submit(input string) tea.Cmd {
	elapsed := int(time.Since(p.shownAt).Milliseconds())
	return func() tea.Msg {
		fb, err := p.svc.SubmitAnswer(context.Background(), p.session, input, elapsed)
		return answerResultMsg{Feedback: fb, Err: err}
	}
}

func (p *PracticeScreen) abandon() tea.Cmd {
	return func() tea.Msg {
		err := p.svc.Abandon(context.Background(), p.session)
		return abandonedMsg{Err: err}
	}
}

// correctIndex finds the canonical answer's position in the choices.
func correctIndex(prob *problemgen.Problem) int {
	for i, c := range prob.Choices {
		if c == prob.Answer {
			return i
		}
	}
	return -1
}
