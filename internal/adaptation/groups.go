package adaptation

import "github.com/mathspiral/mathspiral/internal/skills"

// SessionConfig fixes the shape of a practice session: how many
// problems it serves and how they split into adaptation groups.
// Every problem in a group runs at the same State; the State only
// changes at group boundaries.
type SessionConfig struct {
	TotalProblems int
	GroupSize     int
	GroupCount    int
}

// Default session shape: 15 problems in 5 groups of 3.
var defaultConfig = SessionConfig{TotalProblems: 15, GroupSize: 3, GroupCount: 5}

// Multiplication facts need more reps to cover the fact space at each
// level: 25 problems in 5 groups of 5.
var multiplicationFactsConfig = SessionConfig{TotalProblems: 25, GroupSize: 5, GroupCount: 5}

// ConfigFor returns the session shape for a problem type.
func ConfigFor(pt skills.ProblemType) SessionConfig {
	if pt == skills.TypeMultiplicationFacts {
		return multiplicationFactsConfig
	}
	return defaultConfig
}

// GroupNumber returns the 1-based group for a 1-based sequence number.
func (c SessionConfig) GroupNumber(sequence int) int {
	g := ((sequence - 1) / c.GroupSize) + 1
	if g > c.GroupCount {
		g = c.GroupCount
	}
	return g
}

// IsGroupBoundary reports whether sequence is the last problem in its
// group.
func (c SessionConfig) IsGroupBoundary(sequence int) bool {
	return sequence%c.GroupSize == 0
}
