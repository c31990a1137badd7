package store

import (
	"context"
	"time"

	"github.com/mathspiral/mathspiral/internal/facts"
)

// Session status values.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusAbandoned = "abandoned"
)

// SessionRecord is the persisted shape of one practice session.
type SessionRecord struct {
	ID        string
	SkillID   string
	Status    string
	StartedAt time.Time

	// CompletedAt is zero while the session is open.
	CompletedAt time.Time

	// StartDifficulty/StartVisualLevel record what the session opened
	// with (carryover or defaults); the Final pair is written on
	// completion.
	StartDifficulty  int
	StartVisualLevel int
	FinalDifficulty  int
	FinalVisualLevel int

	TotalProblems    int
	CorrectCount     int
	AvgResponseMs    int
	MaxDifficulty    int
	TopTierCompleted bool
	DurationSecs     int
}

// AttemptData is one answered problem, appended per answer.
type AttemptData struct {
	SessionID      string
	SkillID        string
	Sequence       int // 1-based within the session
	GroupNumber    int
	Prompt         string
	CorrectAnswer  string
	GivenAnswer    string
	Correct        bool
	ResponseTimeMs int
	Difficulty     int
	VisualLevel    int

	// FactKey is the canonical fact label for fact-drill skills,
	// empty otherwise.
	FactKey string
}

// AdaptationEventData records one group-boundary state adjustment.
type AdaptationEventData struct {
	SessionID       string
	SkillID         string
	GroupNumber     int
	Outcome         string
	Reason          string
	FromDifficulty  int
	FromVisualLevel int
	ToDifficulty    int
	ToVisualLevel   int
	CorrectCount    int
	GroupSize       int
	AvgResponseMs   int
}

// CompletionStats is written onto the session record when it closes.
type CompletionStats struct {
	TotalProblems    int
	CorrectCount     int
	AvgResponseMs    int
	FinalDifficulty  int
	FinalVisualLevel int
	MaxDifficulty    int
	TopTierCompleted bool
	DurationSecs     int
}

// SkillProgress aggregates a skill's completed-session history for
// fluency classification and progress views.
type SkillProgress struct {
	SkillID           string
	SessionsCompleted int
	TotalProblems     int
	TotalCorrect      int
	AvgResponseMs     int
	MaxDifficulty     int
	TopTierSessions   int

	// RecentVisualLevels are the final visual levels of recent
	// completed sessions, oldest first.
	RecentVisualLevels []int

	LastPracticed time.Time
}

// Accuracy returns the lifetime correct ratio, 0 when unplayed.
func (p *SkillProgress) Accuracy() float64 {
	if p.TotalProblems == 0 {
		return 0
	}
	return float64(p.TotalCorrect) / float64(p.TotalProblems)
}

// SessionRepo persists sessions and their per-answer event streams.
type SessionRepo interface {
	// Create inserts a new active session record.
	Create(ctx context.Context, rec *SessionRecord) error

	// Get returns a session by id, or nil if absent.
	Get(ctx context.Context, id string) (*SessionRecord, error)

	// LatestCompleted returns the most recently completed session for
	// a skill, or nil if the skill has never been completed.
	LatestCompleted(ctx context.Context, skillID string) (*SessionRecord, error)

	// Complete marks the session finished and writes its stats.
	Complete(ctx context.Context, id string, stats CompletionStats) error

	// Abandon marks the session abandoned. Abandoned sessions never
	// feed carryover or fluency.
	Abandon(ctx context.Context, id string) error

	// AppendAttempt records one answered problem.
	AppendAttempt(ctx context.Context, data AttemptData) error

	// AppendAdaptation records one group-boundary adjustment.
	AppendAdaptation(ctx context.Context, data AdaptationEventData) error
}

// ProgressRepo aggregates completed-session history.
type ProgressRepo interface {
	// SkillProgress aggregates a single skill's history. Returns a
	// zero-valued aggregate (not nil) for unplayed skills.
	SkillProgress(ctx context.Context, skillID string) (*SkillProgress, error)
}

// FactRepo persists per-fact exposure counts for fact-drill skills.
type FactRepo interface {
	// LoadLedger rebuilds the fact ledger for a skill.
	LoadLedger(ctx context.Context, skillID string) (*facts.Ledger, error)

	// RecordFact upserts one exposure of a fact.
	RecordFact(ctx context.Context, skillID, key string, correct bool) error

	// ResetFacts clears the ledger for a skill.
	ResetFacts(ctx context.Context, skillID string) error
}
