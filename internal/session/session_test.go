package session

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/mathspiral/mathspiral/internal/adaptation"
	"github.com/mathspiral/mathspiral/internal/facts"
	"github.com/mathspiral/mathspiral/internal/problemgen"
	"github.com/mathspiral/mathspiral/internal/store"
)

// fakeRepo implements the store repositories in memory for service
// tests.
type fakeRepo struct {
	sessions    map[string]*store.SessionRecord
	attempts    []store.AttemptData
	adaptations []store.AdaptationEventData
	factCalls   []string
	latest      *store.SessionRecord
	progress    store.SkillProgress
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{sessions: make(map[string]*store.SessionRecord)}
}

func (f *fakeRepo) Create(_ context.Context, rec *store.SessionRecord) error {
	cp := *rec
	f.sessions[rec.ID] = &cp
	return nil
}

func (f *fakeRepo) Get(_ context.Context, id string) (*store.SessionRecord, error) {
	return f.sessions[id], nil
}

func (f *fakeRepo) LatestCompleted(_ context.Context, skillID string) (*store.SessionRecord, error) {
	if f.latest != nil && f.latest.SkillID == skillID {
		return f.latest, nil
	}
	return nil, nil
}

func (f *fakeRepo) Complete(_ context.Context, id string, stats store.CompletionStats) error {
	rec, ok := f.sessions[id]
	if !ok {
		return errors.New("no such session")
	}
	rec.Status = store.StatusCompleted
	rec.TotalProblems = stats.TotalProblems
	rec.CorrectCount = stats.CorrectCount
	rec.AvgResponseMs = stats.AvgResponseMs
	rec.FinalDifficulty = stats.FinalDifficulty
	rec.FinalVisualLevel = stats.FinalVisualLevel
	rec.MaxDifficulty = stats.MaxDifficulty
	rec.TopTierCompleted = stats.TopTierCompleted
	return nil
}

func (f *fakeRepo) Abandon(_ context.Context, id string) error {
	rec, ok := f.sessions[id]
	if !ok {
		return errors.New("no such session")
	}
	rec.Status = store.StatusAbandoned
	return nil
}

func (f *fakeRepo) AppendAttempt(_ context.Context, data store.AttemptData) error {
	f.attempts = append(f.attempts, data)
	return nil
}

func (f *fakeRepo) AppendAdaptation(_ context.Context, data store.AdaptationEventData) error {
	f.adaptations = append(f.adaptations, data)
	return nil
}

func (f *fakeRepo) SkillProgress(_ context.Context, skillID string) (*store.SkillProgress, error) {
	p := f.progress
	p.SkillID = skillID
	return &p, nil
}

func (f *fakeRepo) LoadLedger(_ context.Context, _ string) (*facts.Ledger, error) {
	return facts.NewLedger(), nil
}

func (f *fakeRepo) RecordFact(_ context.Context, _, key string, _ bool) error {
	f.factCalls = append(f.factCalls, key)
	return nil
}

func (f *fakeRepo) ResetFacts(_ context.Context, _ string) error { return nil }

func newTestService(repo *fakeRepo) *Service {
	svc := NewService(repo, repo, repo, problemgen.New(1))
	n := 0
	svc.newID = func() string {
		n++
		return "session-" + strconv.Itoa(n)
	}
	svc.now = func() time.Time { return time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC) }
	return svc
}

func TestStartDefaultsForNewSkill(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	sess, err := svc.Start(context.Background(), "integer-addition")
	if err != nil {
		t.Fatal(err)
	}
	want := adaptation.DefaultState()
	if sess.State != want {
		t.Errorf("state = %+v, want %+v", sess.State, want)
	}
	if sess.Config.TotalProblems != 15 || sess.Config.GroupSize != 3 {
		t.Errorf("config = %+v, want 15/3", sess.Config)
	}
	rec := repo.sessions[sess.ID]
	if rec == nil || rec.Status != store.StatusActive {
		t.Fatalf("session record not created active: %+v", rec)
	}
	if rec.StartDifficulty != 1 || rec.StartVisualLevel != 5 {
		t.Errorf("recorded start state %d/%d, want 1/5", rec.StartDifficulty, rec.StartVisualLevel)
	}
}

func TestStartCarriesOverLatestCompleted(t *testing.T) {
	repo := newFakeRepo()
	repo.latest = &store.SessionRecord{
		SkillID:          "integer-addition",
		Status:           store.StatusCompleted,
		FinalDifficulty:  3,
		FinalVisualLevel: 2,
	}
	svc := newTestService(repo)

	sess, err := svc.Start(context.Background(), "integer-addition")
	if err != nil {
		t.Fatal(err)
	}
	want := adaptation.State{Difficulty: 3, VisualLevel: 2}
	if sess.State != want {
		t.Errorf("state = %+v, want carryover %+v", sess.State, want)
	}
}

func TestStartIgnoresCarryoverFromOtherSkill(t *testing.T) {
	repo := newFakeRepo()
	repo.latest = &store.SessionRecord{
		SkillID:          "fraction-comparison",
		Status:           store.StatusCompleted,
		FinalDifficulty:  4,
		FinalVisualLevel: 1,
	}
	svc := newTestService(repo)

	sess, err := svc.Start(context.Background(), "integer-addition")
	if err != nil {
		t.Fatal(err)
	}
	if sess.State != adaptation.DefaultState() {
		t.Errorf("state = %+v, want defaults", sess.State)
	}
}

func TestStartUnknownSkill(t *testing.T) {
	svc := newTestService(newFakeRepo())
	if _, err := svc.Start(context.Background(), "calculus"); err == nil {
		t.Fatal("expected error for unknown skill")
	}
}

func TestSubmitWithoutProblem(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	sess, err := svc.Start(context.Background(), "integer-addition")
	if err != nil {
		t.Fatal(err)
	}

	_, err = svc.SubmitAnswer(context.Background(), sess, "3", 1000)
	var oos *OutOfSequenceError
	if !errors.As(err, &oos) {
		t.Fatalf("error = %v, want *OutOfSequenceError", err)
	}
	if len(repo.attempts) != 0 {
		t.Error("attempt recorded without outstanding problem")
	}
}

func TestInvalidAnswerRecordsNothing(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	sess, err := svc.Start(context.Background(), "integer-addition")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.NextProblem(sess); err != nil {
		t.Fatal(err)
	}

	_, err = svc.SubmitAnswer(context.Background(), sess, "banana", 1000)
	var inv *problemgen.InvalidAnswerError
	if !errors.As(err, &inv) {
		t.Fatalf("error = %v, want *InvalidAnswerError", err)
	}
	if len(repo.attempts) != 0 {
		t.Error("invalid input must not be recorded as an attempt")
	}
	if sess.Sequence != 0 {
		t.Error("invalid input must not advance the sequence")
	}
	if sess.Current == nil {
		t.Error("problem should remain outstanding after invalid input")
	}
}

func TestNextProblemIsIdempotent(t *testing.T) {
	svc := newTestService(newFakeRepo())
	sess, err := svc.Start(context.Background(), "fraction-comparison")
	if err != nil {
		t.Fatal(err)
	}
	p1, err := svc.NextProblem(sess)
	if err != nil {
		t.Fatal(err)
	}
	p2, err := svc.NextProblem(sess)
	if err != nil {
		t.Fatal(err)
	}
	if p1 != p2 {
		t.Error("asking again before answering should return the same problem")
	}
}

func TestPerfectSessionFlow(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	sess, err := svc.Start(context.Background(), "integer-addition")
	if err != nil {
		t.Fatal(err)
	}

	var lastFb *Feedback
	for i := 0; i < 15; i++ {
		p, err := svc.NextProblem(sess)
		if err != nil {
			t.Fatalf("problem %d: %v", i+1, err)
		}
		lastFb, err = svc.SubmitAnswer(context.Background(), sess, p.Answer, 3000)
		if err != nil {
			t.Fatalf("answer %d: %v", i+1, err)
		}
		if !lastFb.Correct {
			t.Fatalf("answer %d judged wrong: %q vs %q", i+1, p.Answer, lastFb.CorrectAnswer)
		}
	}

	if !lastFb.Done {
		t.Error("final answer should report Done")
	}
	if sess.Status != StatusCompleted {
		t.Errorf("status = %q, want completed", sess.Status)
	}
	if len(repo.attempts) != 15 {
		t.Errorf("attempts recorded = %d, want 15", len(repo.attempts))
	}
	if len(repo.adaptations) != 5 {
		t.Fatalf("adaptation events = %d, want 5", len(repo.adaptations))
	}

	// Five perfect groups from {1,5}: visuals fade 5->4->3->2->1,
	// then the difficulty steps up and visuals reset to 4.
	want := adaptation.State{Difficulty: 2, VisualLevel: 4}
	if sess.State != want {
		t.Errorf("final state = %+v, want %+v", sess.State, want)
	}
	last := repo.adaptations[4]
	if last.FromDifficulty != 1 || last.FromVisualLevel != 1 || last.ToDifficulty != 2 || last.ToVisualLevel != 4 {
		t.Errorf("last adaptation = %+v, want 1/1 -> 2/4", last)
	}

	rec := repo.sessions[sess.ID]
	if rec.Status != store.StatusCompleted {
		t.Errorf("record status = %q", rec.Status)
	}
	if rec.CorrectCount != 15 || rec.TotalProblems != 15 {
		t.Errorf("record stats = %d/%d, want 15/15", rec.CorrectCount, rec.TotalProblems)
	}
	if rec.FinalDifficulty != 2 || rec.FinalVisualLevel != 4 {
		t.Errorf("record final state = %d/%d, want 2/4", rec.FinalDifficulty, rec.FinalVisualLevel)
	}

	// A finished session serves no more problems.
	if _, err := svc.NextProblem(sess); !errors.Is(err, ErrSessionComplete) {
		t.Errorf("NextProblem after completion = %v, want ErrSessionComplete", err)
	}
	if _, err := svc.SubmitAnswer(context.Background(), sess, "1", 1000); !errors.Is(err, ErrSessionComplete) {
		t.Errorf("SubmitAnswer after completion = %v, want ErrSessionComplete", err)
	}
}

func TestStrugglingSessionRaisesSupport(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	sess, err := svc.Start(context.Background(), "integer-addition")
	if err != nil {
		t.Fatal(err)
	}
	// Start from a mid state via carryover-free mutation.
	sess.State = adaptation.State{Difficulty: 3, VisualLevel: 3}

	for i := 0; i < 3; i++ {
		p, err := svc.NextProblem(sess)
		if err != nil {
			t.Fatal(err)
		}
		fb, err := svc.SubmitAnswer(context.Background(), sess, wrongAnswer(p), 15000)
		if err != nil {
			t.Fatal(err)
		}
		if fb.Correct {
			t.Fatalf("deliberately wrong answer judged correct for %q", p.Prompt)
		}
		if !fb.ShowVisual {
			t.Error("wrong answer should force the visual")
		}
	}

	want := adaptation.State{Difficulty: 2, VisualLevel: 4}
	if sess.State != want {
		t.Errorf("state after struggling group = %+v, want %+v", sess.State, want)
	}
}

func TestGroupAverageResponseRecorded(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	sess, err := svc.Start(context.Background(), "integer-addition")
	if err != nil {
		t.Fatal(err)
	}

	for _, ms := range []int{1000, 2000, 2500} {
		p, err := svc.NextProblem(sess)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := svc.SubmitAnswer(context.Background(), sess, p.Answer, ms); err != nil {
			t.Fatal(err)
		}
	}

	if len(repo.adaptations) != 1 {
		t.Fatalf("adaptation events = %d, want 1", len(repo.adaptations))
	}
	// 5500ms over 3 answers truncates to 1833 at the store boundary.
	if got := repo.adaptations[0].AvgResponseMs; got != 1833 {
		t.Errorf("recorded avg response = %d, want 1833", got)
	}
}

func TestMultiplicationSessionUsesLedger(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	sess, err := svc.Start(context.Background(), "multiplication-facts")
	if err != nil {
		t.Fatal(err)
	}
	if sess.Config.TotalProblems != 25 || sess.Config.GroupSize != 5 {
		t.Fatalf("config = %+v, want 25/5", sess.Config)
	}
	if sess.Ledger == nil {
		t.Fatal("fact skill should carry a ledger")
	}

	for i := 0; i < 25; i++ {
		p, err := svc.NextProblem(sess)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := svc.SubmitAnswer(context.Background(), sess, p.Answer, 4000); err != nil {
			t.Fatal(err)
		}
	}

	if sess.Status != StatusCompleted {
		t.Fatalf("status = %q", sess.Status)
	}
	if len(repo.factCalls) != 25 {
		t.Errorf("fact stats recorded = %d, want 25", len(repo.factCalls))
	}
	for _, a := range repo.attempts {
		if a.FactKey == "" {
			t.Errorf("attempt %d missing fact key", a.Sequence)
		}
	}
}

func TestAbandon(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	sess, err := svc.Start(context.Background(), "integer-addition")
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.Abandon(context.Background(), sess); err != nil {
		t.Fatal(err)
	}
	if sess.Status != StatusAbandoned {
		t.Errorf("status = %q", sess.Status)
	}
	if repo.sessions[sess.ID].Status != store.StatusAbandoned {
		t.Error("record not marked abandoned")
	}
	// Abandoning twice is a no-op.
	if err := svc.Abandon(context.Background(), sess); err != nil {
		t.Fatal(err)
	}
}

func TestBuildSummary(t *testing.T) {
	repo := newFakeRepo()
	repo.progress.RecentVisualLevels = []int{5, 4, 3}
	svc := newTestService(repo)
	sess, err := svc.Start(context.Background(), "integer-addition")
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 15; i++ {
		p, err := svc.NextProblem(sess)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := svc.SubmitAnswer(context.Background(), sess, p.Answer, 3000); err != nil {
			t.Fatal(err)
		}
	}

	sum, err := svc.BuildSummary(context.Background(), sess)
	if err != nil {
		t.Fatal(err)
	}
	if sum.TotalProblems != 15 || sum.CorrectCount != 15 {
		t.Errorf("summary counts = %d/%d", sum.CorrectCount, sum.TotalProblems)
	}
	if sum.Accuracy != 1.0 {
		t.Errorf("accuracy = %v", sum.Accuracy)
	}
	if sum.VisualTrend != "decreasing" {
		t.Errorf("trend = %q, want decreasing", sum.VisualTrend)
	}
	if sum.Message != "Excellent work! You really know this!" {
		t.Errorf("message = %q", sum.Message)
	}
	if len(sum.Decisions) != 5 {
		t.Errorf("decisions = %d, want 5", len(sum.Decisions))
	}
}

func TestSummaryRequiresCompletion(t *testing.T) {
	svc := newTestService(newFakeRepo())
	sess, err := svc.Start(context.Background(), "integer-addition")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.BuildSummary(context.Background(), sess); err == nil {
		t.Fatal("expected error for incomplete session")
	}
}

func TestImprovementMessagePrefersSpeed(t *testing.T) {
	sess := &Session{
		Sequence:          10,
		CorrectCount:      5,
		TotalResponseMs:   50000, // 5000ms avg
		hasPrev:           true,
		prevAvgResponseMs: 8000,
		prevCorrectCount:  9,
	}
	if got := improvementMessage(sess); got != "You're faster than last time! Great work!" {
		t.Errorf("message = %q", got)
	}
}

func TestImprovementMessageCorrectness(t *testing.T) {
	sess := &Session{
		Sequence:          10,
		CorrectCount:      8,
		TotalResponseMs:   90000,
		hasPrev:           true,
		prevAvgResponseMs: 5000,
		prevCorrectCount:  6,
	}
	if got := improvementMessage(sess); got != "More correct answers than last time. Keep it up!" {
		t.Errorf("message = %q", got)
	}
}

// wrongAnswer produces a parseable but incorrect answer for p.
func wrongAnswer(p *problemgen.Problem) string {
	if p.Format == problemgen.FormatMultipleChoice {
		for _, c := range p.Choices {
			if c != p.Answer {
				return c
			}
		}
	}
	n, err := strconv.Atoi(p.Answer)
	if err == nil {
		return strconv.Itoa(n + 1)
	}
	return "0/1"
}
