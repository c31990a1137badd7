package fluency

import (
	"testing"

	"github.com/mathspiral/mathspiral/internal/skills"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want Status
	}{
		{
			"no sessions",
			Input{},
			StatusNotStarted,
		},
		{
			// Session count gates before accuracy.
			"one perfect session still needs data",
			Input{SessionsCompleted: 1, Accuracy: 1.0, AvgResponseTimeMs: 5000, MaxDifficulty: 5},
			StatusNeedsData,
		},
		{
			"low accuracy needs support",
			Input{SessionsCompleted: 4, Accuracy: 0.40, AvgResponseTimeMs: 9000},
			StatusNeedsSupport,
		},
		{
			"mid accuracy developing",
			Input{SessionsCompleted: 4, Accuracy: 0.70, AvgResponseTimeMs: 9000},
			StatusDeveloping,
		},
		{
			"high accuracy but only two sessions developing",
			Input{SessionsCompleted: 2, Accuracy: 0.95, AvgResponseTimeMs: 9000, MaxDifficulty: 5},
			StatusDeveloping,
		},
		{
			"fluent at max difficulty",
			Input{SessionsCompleted: 5, Accuracy: 0.90, AvgResponseTimeMs: 15000, MaxDifficulty: 5},
			StatusFluent,
		},
		{
			"accurate but never reached max difficulty",
			Input{SessionsCompleted: 5, Accuracy: 0.90, AvgResponseTimeMs: 15000, MaxDifficulty: 4},
			StatusProgressing,
		},
		{
			"accurate at max difficulty but slow",
			Input{SessionsCompleted: 5, Accuracy: 0.90, AvgResponseTimeMs: 25000, MaxDifficulty: 5},
			StatusProgressing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.in); got != tt.want {
				t.Errorf("Classify(%+v) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestClassify_MultiplicationRequiresTopTierSession(t *testing.T) {
	in := Input{
		SessionsCompleted: 5,
		Accuracy:          0.92,
		AvgResponseTimeMs: 12000,
		MaxDifficulty:     5,
		ProblemType:       skills.TypeMultiplicationFacts,
	}

	// A stored difficulty of 5 is not enough without a completed
	// tier-5 session in the history.
	if got := Classify(in); got != StatusProgressing {
		t.Errorf("Classify without tier-5 session = %s, want progressing", got)
	}

	in.TopTierSessions = 1
	if got := Classify(in); got != StatusFluent {
		t.Errorf("Classify with tier-5 session = %s, want fluent", got)
	}
}

func TestTrend(t *testing.T) {
	tests := []struct {
		name   string
		levels []int
		want   string
	}{
		{"too few sessions", []int{5, 4}, "stable"},
		{"fading scaffolds", []int{5, 4, 3}, "decreasing"},
		{"leaning harder", []int{2, 4, 4}, "increasing"},
		{"flat", []int{3, 2, 3}, "stable"},
		{"only last three count", []int{1, 1, 5, 4, 3}, "decreasing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Trend(tt.levels); got != tt.want {
				t.Errorf("Trend(%v) = %q, want %q", tt.levels, got, tt.want)
			}
		})
	}
}
