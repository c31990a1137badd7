package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/mathspiral/mathspiral/internal/adaptation"
	sess "github.com/mathspiral/mathspiral/internal/session"
)

func testSummary() *sess.Summary {
	return &sess.Summary{
		SessionID:     "s-1",
		SkillID:       "fraction-comparison",
		SkillName:     "Comparing Fractions",
		Duration:      6 * time.Minute,
		TotalProblems: 15,
		CorrectCount:  12,
		Accuracy:      float64(12) / float64(15),
		AvgResponseMs: 9000,
		StartState:    adaptation.State{Difficulty: 1, VisualLevel: 5},
		FinalState:    adaptation.State{Difficulty: 2, VisualLevel: 4},
		MaxDifficulty: 2,
		Decisions: []adaptation.Decision{
			{Outcome: adaptation.OutcomePerfect, VisualDelta: -1, Reason: "All correct, easing off the hints"},
			{Outcome: adaptation.OutcomeMixed, Reason: "Holding steady"},
		},
		Message:     "More correct answers than last time. Keep it up!",
		VisualTrend: "decreasing",
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := &SummaryScreen{summary: testSummary()}
	if s.Title() != "Session Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Session Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := &SummaryScreen{summary: testSummary()}
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty summary view")
	}
	for _, want := range []string{
		"Session complete!",
		"Comparing Fractions",
		"Accuracy: 80%",
		"More correct answers than last time. Keep it up!",
		"fewer hints over time",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_LoadingState(t *testing.T) {
	s := &SummaryScreen{}
	view := s.View(80, 24)
	if !strings.Contains(view, "Adding up your session") {
		t.Errorf("expected loading view, got %q", view)
	}
}

func TestSummaryScreen_ReadyMsg(t *testing.T) {
	s := &SummaryScreen{}
	s.Update(summaryReadyMsg{Summary: testSummary()})
	if s.summary == nil {
		t.Fatal("expected summary to be set")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := &SummaryScreen{summary: testSummary()}
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := &SummaryScreen{summary: testSummary()}
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := &SummaryScreen{summary: testSummary()}
	if len(s.KeyHints()) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(s.KeyHints()))
	}
}
