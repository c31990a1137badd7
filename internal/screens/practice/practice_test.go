package practice

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/mathspiral/mathspiral/internal/facts"
	"github.com/mathspiral/mathspiral/internal/problemgen"
	"github.com/mathspiral/mathspiral/internal/router"
	"github.com/mathspiral/mathspiral/internal/screens/summary"
	sess "github.com/mathspiral/mathspiral/internal/session"
	"github.com/mathspiral/mathspiral/internal/skills"
	"github.com/mathspiral/mathspiral/internal/store"
)

// memRepo is an in-memory stand-in for the three store interfaces.
type memRepo struct {
	sessions map[string]*store.SessionRecord
	attempts []store.AttemptData
}

func newMemRepo() *memRepo {
	return &memRepo{sessions: make(map[string]*store.SessionRecord)}
}

func (m *memRepo) Create(_ context.Context, rec *store.SessionRecord) error {
	cp := *rec
	m.sessions[rec.ID] = &cp
	return nil
}

func (m *memRepo) Get(_ context.Context, id string) (*store.SessionRecord, error) {
	return m.sessions[id], nil
}

func (m *memRepo) LatestCompleted(_ context.Context, _ string) (*store.SessionRecord, error) {
	return nil, nil
}

func (m *memRepo) Complete(_ context.Context, id string, _ store.CompletionStats) error {
	m.sessions[id].Status = store.StatusCompleted
	return nil
}

func (m *memRepo) Abandon(_ context.Context, id string) error {
	m.sessions[id].Status = store.StatusAbandoned
	return nil
}

func (m *memRepo) AppendAttempt(_ context.Context, data store.AttemptData) error {
	m.attempts = append(m.attempts, data)
	return nil
}

func (m *memRepo) AppendAdaptation(_ context.Context, _ store.AdaptationEventData) error {
	return nil
}

func (m *memRepo) SkillProgress(_ context.Context, skillID string) (*store.SkillProgress, error) {
	return &store.SkillProgress{SkillID: skillID}, nil
}

func (m *memRepo) LoadLedger(_ context.Context, _ string) (*facts.Ledger, error) {
	return facts.NewLedger(), nil
}

func (m *memRepo) RecordFact(_ context.Context, _, _ string, _ bool) error { return nil }
func (m *memRepo) ResetFacts(_ context.Context, _ string) error            { return nil }

func newTestScreen(t *testing.T) (*PracticeScreen, *memRepo) {
	t.Helper()
	repo := newMemRepo()
	svc := sess.NewService(repo, repo, repo, problemgen.New(7))
	sk, err := skills.Get("integer-addition")
	if err != nil {
		t.Fatal(err)
	}
	return New(svc, sk), repo
}

// run pumps a command's message back through the screen, following
// chained commands until one returns nil.
func run(t *testing.T, p *PracticeScreen, cmd tea.Cmd) {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return
		}
		if _, quit := msg.(tea.QuitMsg); quit {
			return
		}
		_, cmd = p.Update(msg)
	}
}

func TestStartProducesProblem(t *testing.T) {
	p, _ := newTestScreen(t)
	run(t, p, p.startSession())

	if p.session == nil {
		t.Fatal("expected session after start")
	}
	if p.problem == nil {
		t.Fatal("expected a problem after start")
	}
	view := p.View(80, 24)
	if !strings.Contains(view, p.problem.Prompt) {
		t.Errorf("view does not show the prompt %q", p.problem.Prompt)
	}
}

func TestSubmitRecordsAttemptAndShowsFeedback(t *testing.T) {
	p, repo := newTestScreen(t)
	run(t, p, p.startSession())

	run(t, p, p.submit(p.problem.Answer))

	if p.feedback == nil {
		t.Fatal("expected feedback after submit")
	}
	if !p.feedback.Correct {
		t.Error("canonical answer judged incorrect")
	}
	if len(repo.attempts) != 1 {
		t.Fatalf("expected 1 recorded attempt, got %d", len(repo.attempts))
	}
	if len(p.results) != 1 || !p.results[0] {
		t.Errorf("results = %v, want [true]", p.results)
	}
}

func TestMultipleChoiceSubmitGradesChosenOption(t *testing.T) {
	repo := newMemRepo()
	svc := sess.NewService(repo, repo, repo, problemgen.New(7))
	sk, err := skills.Get("fraction-comparison")
	if err != nil {
		t.Fatal(err)
	}
	p := New(svc, sk)
	run(t, p, p.startSession())

	if p.problem.Format != problemgen.FormatMultipleChoice {
		t.Fatalf("expected a multiple-choice problem, got %s", p.problem.Format)
	}

	// Walk the cursor onto the correct option and submit it. The
	// first option must submit cleanly too.
	for p.mc.Selected > p.mc.CorrectIndex {
		p.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	}
	for p.mc.Selected < p.mc.CorrectIndex {
		p.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	_, cmd := p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	run(t, p, cmd)

	if p.invalidMsg != "" {
		t.Fatalf("chosen option rejected as invalid: %s", p.invalidMsg)
	}
	if p.feedback == nil {
		t.Fatal("expected feedback after submitting the chosen option")
	}
	if !p.feedback.Correct {
		t.Error("chosen correct option graded wrong")
	}
}

func TestInvalidInputKeepsProblemOutstanding(t *testing.T) {
	p, repo := newTestScreen(t)
	run(t, p, p.startSession())

	run(t, p, p.submit("banana"))

	if p.feedback != nil {
		t.Error("invalid input should not produce feedback")
	}
	if p.invalidMsg == "" {
		t.Error("expected an inline validation message")
	}
	if p.problem == nil {
		t.Error("problem should stay outstanding")
	}
	if len(repo.attempts) != 0 {
		t.Errorf("expected no recorded attempts, got %d", len(repo.attempts))
	}
}

func TestAnyKeyAfterFeedbackAdvances(t *testing.T) {
	p, _ := newTestScreen(t)
	run(t, p, p.startSession())
	run(t, p, p.submit(p.problem.Answer))

	_, cmd := p.Update(tea.KeyPressMsg{Code: tea.KeySpace})
	run(t, p, cmd)

	if p.feedback != nil {
		t.Error("feedback should clear on keypress")
	}
	if p.problem == nil {
		t.Fatal("expected the next problem")
	}
	if p.session.Sequence != 1 {
		t.Errorf("sequence = %d, want 1", p.session.Sequence)
	}
}

func TestCompletedSessionReplacesWithSummary(t *testing.T) {
	p, _ := newTestScreen(t)
	run(t, p, p.startSession())

	// Answer every problem correctly, pressing a key through each
	// feedback pause.
	for p.session.Status == sess.StatusActive {
		run(t, p, p.submit(p.problem.Answer))
		if p.feedback != nil && p.feedback.Done {
			break
		}
		_, cmd := p.Update(tea.KeyPressMsg{Code: tea.KeySpace})
		run(t, p, cmd)
	}

	_, cmd := p.Update(tea.KeyPressMsg{Code: tea.KeySpace})
	if cmd == nil {
		t.Fatal("expected a replace command after the final feedback")
	}
	replace, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if _, ok := replace.Screen.(*summary.SummaryScreen); !ok {
		t.Fatalf("expected summary screen in replace message, got %T", replace.Screen)
	}
}

func TestQuitConfirmAbandons(t *testing.T) {
	p, repo := newTestScreen(t)
	run(t, p, p.startSession())

	p.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if !p.quitConfirm {
		t.Fatal("expected quit confirm after esc")
	}
	view := p.View(80, 24)
	if !strings.Contains(view, "Stop practicing?") {
		t.Error("quit confirm view missing prompt")
	}

	_, cmd := p.Update(tea.KeyPressMsg{Code: 'y'})
	run(t, p, cmd)

	rec := repo.sessions[p.session.ID]
	if rec.Status != store.StatusAbandoned {
		t.Errorf("session status = %q, want abandoned", rec.Status)
	}
}

func TestStatusLine(t *testing.T) {
	p, _ := newTestScreen(t)
	if p.Status() != "" {
		t.Errorf("expected empty status before start, got %q", p.Status())
	}
	run(t, p, p.startSession())
	status := p.Status()
	if !strings.Contains(status, "1/15") {
		t.Errorf("status = %q, want it to contain 1/15", status)
	}
	if !strings.Contains(status, "D1 V5") {
		t.Errorf("status = %q, want starting state D1 V5", status)
	}
}
