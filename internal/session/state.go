package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/mathspiral/mathspiral/internal/adaptation"
	"github.com/mathspiral/mathspiral/internal/facts"
	"github.com/mathspiral/mathspiral/internal/problemgen"
	"github.com/mathspiral/mathspiral/internal/skills"
)

// ErrSessionComplete is returned when a problem is requested from, or
// an answer submitted to, a session that has already served its plan.
var ErrSessionComplete = errors.New("session complete")

// OutOfSequenceError is returned when an answer arrives with no
// outstanding problem to answer.
type OutOfSequenceError struct {
	SessionID string
}

func (e *OutOfSequenceError) Error() string {
	return fmt.Sprintf("session %s: no outstanding problem", e.SessionID)
}

// Status is the lifecycle state of a session.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusAbandoned Status = "abandoned"
)

// Session tracks the runtime state of one practice run. It is not
// safe for concurrent use; callers that share sessions across
// goroutines (the HTTP registry) serialize access themselves.
type Session struct {
	// ID is the UUID assigned at start.
	ID string

	// Skill is the catalog entry being practiced.
	Skill skills.Skill

	// Config is the length/grouping plan for this skill.
	Config adaptation.SessionConfig

	// StartState is what the session opened with (carryover or
	// defaults); State is the live pair the next problem is generated
	// under.
	StartState adaptation.State
	State      adaptation.State

	// Status is the lifecycle state.
	Status Status

	// Sequence counts answered problems, 1-based after the first
	// answer.
	Sequence int

	// Current is the outstanding problem, nil between problems.
	Current *problemgen.Problem

	// CorrectCount and TotalResponseMs accumulate session-wide stats.
	CorrectCount    int
	TotalResponseMs int64

	// group accumulates results since the last boundary.
	group           adaptation.GroupResult
	groupResponseMs int64

	// Decisions is the adaptation log, one entry per group boundary.
	Decisions []adaptation.Decision

	// MaxDifficulty is the highest difficulty reached at any point.
	MaxDifficulty int

	// TopTierCompleted is set once a full group is answered at the
	// top difficulty.
	TopTierCompleted bool

	// Ledger is the fact-coverage state, non-nil only for fact-drill
	// skills.
	Ledger *facts.Ledger

	// prevCorrectCount/prevAvgResponseMs snapshot the previous
	// completed session at start, for the improvement message.
	prevCorrectCount  int
	prevAvgResponseMs int
	hasPrev           bool

	StartedAt   time.Time
	CompletedAt time.Time
}

// Remaining returns how many problems are left to answer.
func (s *Session) Remaining() int {
	r := s.Config.TotalProblems - s.Sequence
	if r < 0 {
		return 0
	}
	return r
}

// Accuracy returns the session-wide correct ratio so far.
func (s *Session) Accuracy() float64 {
	if s.Sequence == 0 {
		return 0
	}
	return float64(s.CorrectCount) / float64(s.Sequence)
}

// AvgResponseMs returns the session-wide mean response time so far.
func (s *Session) AvgResponseMs() int {
	if s.Sequence == 0 {
		return 0
	}
	return int(s.TotalResponseMs / int64(s.Sequence))
}
