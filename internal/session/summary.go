package session

import (
	"context"
	"fmt"
	"time"

	"github.com/mathspiral/mathspiral/internal/adaptation"
	"github.com/mathspiral/mathspiral/internal/fluency"
)

// praiseLines rotate through short reactions so a streak of correct
// answers does not read the same line fifteen times.
var praiseLines = []string{
	"That's right!",
	"Nice work!",
	"Correct!",
	"You got it!",
}

func praiseLine(sequence int) string {
	return praiseLines[(sequence-1)%len(praiseLines)]
}

// Summary holds the data displayed after a session completes.
type Summary struct {
	SessionID     string
	SkillID       string
	SkillName     string
	Duration      time.Duration
	TotalProblems int
	CorrectCount  int
	Accuracy      float64
	AvgResponseMs int
	StartState    adaptation.State
	FinalState    adaptation.State
	MaxDifficulty int
	Decisions     []adaptation.Decision

	// Message is a single improvement line comparing this run to the
	// previous completed session on the skill.
	Message string

	// VisualTrend describes the direction of visual support across
	// recent completed sessions: decreasing, increasing, or stable.
	VisualTrend string
}

// BuildSummary assembles the end-of-session view. The visual trend
// draws on the skill's completed-session history.
func (svc *Service) BuildSummary(ctx context.Context, sess *Session) (*Summary, error) {
	if sess.Status != StatusCompleted {
		return nil, fmt.Errorf("session %s not completed", sess.ID)
	}

	prog, err := svc.progress.SkillProgress(ctx, sess.Skill.ID)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}

	return &Summary{
		SessionID:     sess.ID,
		SkillID:       sess.Skill.ID,
		SkillName:     sess.Skill.Name,
		Duration:      sess.CompletedAt.Sub(sess.StartedAt),
		TotalProblems: sess.Sequence,
		CorrectCount:  sess.CorrectCount,
		Accuracy:      sess.Accuracy(),
		AvgResponseMs: sess.AvgResponseMs(),
		StartState:    sess.StartState,
		FinalState:    sess.State,
		MaxDifficulty: sess.MaxDifficulty,
		Decisions:     sess.Decisions,
		Message:       improvementMessage(sess),
		VisualTrend:   fluency.Trend(prog.RecentVisualLevels),
	}, nil
}

// improvementMessage compares this run against the previous completed
// session, preferring speed gains, then correctness gains, then a
// line keyed to raw accuracy.
func improvementMessage(sess *Session) string {
	avgMs := sess.AvgResponseMs()
	switch {
	case sess.hasPrev && sess.prevAvgResponseMs > 0 && avgMs < sess.prevAvgResponseMs:
		return "You're faster than last time! Great work!"
	case sess.hasPrev && sess.CorrectCount > sess.prevCorrectCount:
		return "More correct answers than last time. Keep it up!"
	case sess.Accuracy() >= 0.85:
		return "Excellent work! You really know this!"
	case sess.Accuracy() >= 0.6:
		return "Good effort! You're getting better!"
	default:
		return "Keep practicing. You'll get there!"
	}
}
