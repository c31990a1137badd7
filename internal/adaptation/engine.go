package adaptation

import "fmt"

// Thresholds for classifying a completed group.
//
// These are intentionally generous. Interactive visuals (dragging,
// shading) take time, so the speed threshold accounts for that.
const (
	// SpeedFastMs is the per-problem mean response time under which an
	// accurate group counts as fluent enough to advance.
	SpeedFastMs = 12000

	// strongAccuracy is the inclusive lower bound for the Strong and
	// Accurate-but-slow outcomes.
	strongAccuracy = 0.67

	// strugglingAccuracy is the exclusive upper bound for the
	// Struggling outcome. A group at exactly this accuracy is Mixed.
	strugglingAccuracy = 0.45

	// visualResetOnDifficultyUp is where visual support lands whenever
	// difficulty increases, so harder content is always scaffolded
	// again before the supports can fade. This reset overrides
	// whatever visual level was in effect before the transition.
	visualResetOnDifficultyUp = 4
)

// Outcome classifies a completed group's performance.
type Outcome string

const (
	OutcomePerfect      Outcome = "perfect"
	OutcomeStrong       Outcome = "strong"
	OutcomeAccurateSlow Outcome = "accurate_slow"
	OutcomeMixed        Outcome = "mixed"
	OutcomeStruggling   Outcome = "struggling"
)

// GroupResult aggregates a group's attempt records for evaluation.
// It is derived once per group boundary and never stored.
type GroupResult struct {
	CorrectCount      int
	Total             int
	AvgResponseTimeMs float64
}

// Accuracy returns the fraction of correct answers in the group.
func (g GroupResult) Accuracy() float64 {
	if g.Total == 0 {
		return 0
	}
	return float64(g.CorrectCount) / float64(g.Total)
}

// Decision records what the engine did at a group boundary, for the UI
// to render a one-line adaptation notice. It carries no control
// semantics of its own.
type Decision struct {
	Outcome         Outcome
	DifficultyDelta int
	VisualDelta     int
	Reason          string
}

// Adapt evaluates a completed group against the current state and
// returns the state for the next group.
//
// Rules, first match wins:
//
//  1. Perfect (all correct): reduce visual support; once visuals are
//     at the floor, increase difficulty instead and reset visuals to 4
//     (spiral scaffolding).
//  2. Strong (>= 67% correct, avg under 12s): reduce visual support,
//     floor 1. Never rolls over into a difficulty increase.
//  3. Accurate but slow (>= 67% correct, avg 12s or more): hold.
//  4. Mixed (45-66% correct): hold.
//  5. Struggling (under 45% correct): raise visual support (cap 5) and
//     lower difficulty (floor 1).
func Adapt(group GroupResult, current State) (State, Decision) {
	if group.Total == 0 {
		return current, Decision{Outcome: OutcomeMixed, Reason: "No answers in group; holding steady."}
	}

	acc := group.Accuracy()
	avgSecs := group.AvgResponseTimeMs / 1000

	next := current
	var d Decision

	switch {
	case group.CorrectCount == group.Total:
		d.Outcome = OutcomePerfect
		next = advance(current)
		switch {
		case next == current:
			d.Reason = fmt.Sprintf("Perfect (%d/%d, avg %.1fs). Already at the top level.",
				group.CorrectCount, group.Total, avgSecs)
		case next.Difficulty > current.Difficulty:
			d.Reason = fmt.Sprintf("Perfect (%d/%d, avg %.1fs), visuals already minimal. Increasing difficulty %d to %d, visuals reset to %d.",
				group.CorrectCount, group.Total, avgSecs, current.Difficulty, next.Difficulty, next.VisualLevel)
		default:
			d.Reason = fmt.Sprintf("Perfect (%d/%d, avg %.1fs). Reducing visual support %d to %d.",
				group.CorrectCount, group.Total, avgSecs, current.VisualLevel, next.VisualLevel)
		}

	case acc >= strongAccuracy && group.AvgResponseTimeMs < SpeedFastMs:
		d.Outcome = OutcomeStrong
		if current.VisualLevel > MinLevel {
			next.VisualLevel = current.VisualLevel - 1
			d.Reason = fmt.Sprintf("Strong (%d/%d, avg %.1fs). Reducing visual support %d to %d.",
				group.CorrectCount, group.Total, avgSecs, current.VisualLevel, next.VisualLevel)
		} else {
			d.Reason = fmt.Sprintf("Strong (%d/%d, avg %.1fs). Visual support already minimal; holding.",
				group.CorrectCount, group.Total, avgSecs)
		}

	case acc >= strongAccuracy:
		d.Outcome = OutcomeAccurateSlow
		d.Reason = fmt.Sprintf("Accurate (%d/%d) but working carefully (avg %.1fs). Holding steady.",
			group.CorrectCount, group.Total, avgSecs)

	case acc < strugglingAccuracy:
		d.Outcome = OutcomeStruggling
		next = retreat(current)
		d.Reason = fmt.Sprintf("Struggling (%d/%d). Adjusting to difficulty %d, visuals %d.",
			group.CorrectCount, group.Total, next.Difficulty, next.VisualLevel)

	default:
		d.Outcome = OutcomeMixed
		d.Reason = fmt.Sprintf("Mixed results (%d/%d, avg %.1fs). Holding steady.",
			group.CorrectCount, group.Total, avgSecs)
	}

	d.DifficultyDelta = next.Difficulty - current.Difficulty
	d.VisualDelta = next.VisualLevel - current.VisualLevel
	return next, d
}

// advance fades visual support first; once at the floor, raises
// difficulty and resets visuals so the harder content is scaffolded.
func advance(s State) State {
	if s.VisualLevel > MinLevel {
		return State{Difficulty: s.Difficulty, VisualLevel: s.VisualLevel - 1}
	}
	if s.Difficulty < MaxLevel {
		return State{Difficulty: s.Difficulty + 1, VisualLevel: visualResetOnDifficultyUp}
	}
	return s
}

// retreat raises visual support and lowers difficulty.
func retreat(s State) State {
	next := State{Difficulty: s.Difficulty - 1, VisualLevel: s.VisualLevel + 1}
	if next.Difficulty < MinLevel {
		next.Difficulty = MinLevel
	}
	if next.VisualLevel > MaxLevel {
		next.VisualLevel = MaxLevel
	}
	return next
}
