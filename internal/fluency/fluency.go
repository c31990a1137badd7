package fluency

import "github.com/mathspiral/mathspiral/internal/skills"

// Thresholds for the dashboard fluency statuses.
const (
	// SpeedSlowMs is the mean response time above which an otherwise
	// fluent student is still classified as progressing.
	SpeedSlowMs = 20000

	supportAccuracy      = 0.50
	fluentAccuracy       = 0.85
	minSessionsForFluent = 3
	topDifficulty        = 5
)

// Status is the six-tier dashboard label, in order of mastery.
type Status string

const (
	StatusNotStarted   Status = "not_started"   // no completed sessions
	StatusNeedsData    Status = "needs_data"    // fewer than 2 completed sessions
	StatusNeedsSupport Status = "needs_support" // accuracy under 50%
	StatusDeveloping   Status = "developing"    // accuracy 50-84%, or under 3 sessions
	StatusProgressing  Status = "progressing"   // accurate but slow or not yet at max difficulty
	StatusFluent       Status = "fluent"        // accurate, fast, and at max difficulty
)

// Input aggregates a student's longitudinal performance on one skill.
type Input struct {
	SessionsCompleted int
	Accuracy          float64 // 0..1 over all completed sessions
	AvgResponseTimeMs float64
	MaxDifficulty     int // highest difficulty any completed session ran at
	TopTierSessions   int // completed sessions run entirely at difficulty 5
	ProblemType       skills.ProblemType
}

// Classify derives the dashboard status. Checks run in order; the
// first match wins, so session count gates before accuracy.
//
// For multiplication facts, "reached max difficulty" demands a
// completed session at difficulty 5 (the 10s-12s tier), not merely a
// stored state of 5: a student who regressed must re-earn tier-5
// exposure before being marked fluent.
func Classify(in Input) Status {
	if in.SessionsCompleted == 0 {
		return StatusNotStarted
	}
	if in.SessionsCompleted < 2 {
		return StatusNeedsData
	}
	if in.Accuracy < supportAccuracy {
		return StatusNeedsSupport
	}
	if in.Accuracy < fluentAccuracy || in.SessionsCompleted < minSessionsForFluent {
		return StatusDeveloping
	}

	reachedTop := in.MaxDifficulty >= topDifficulty
	if in.ProblemType == skills.TypeMultiplicationFacts {
		reachedTop = in.TopTierSessions > 0
	}

	if reachedTop && in.AvgResponseTimeMs <= SpeedSlowMs {
		return StatusFluent
	}
	return StatusProgressing
}

// Label returns a human-readable form of a status.
func (s Status) Label() string {
	switch s {
	case StatusNotStarted:
		return "Not started"
	case StatusNeedsData:
		return "Needs data"
	case StatusNeedsSupport:
		return "Needs support"
	case StatusDeveloping:
		return "Developing"
	case StatusProgressing:
		return "Progressing"
	case StatusFluent:
		return "Fluent"
	default:
		return string(s)
	}
}
