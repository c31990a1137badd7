package adaptation

import (
	"testing"

	"github.com/mathspiral/mathspiral/internal/skills"
)

func TestConfigFor(t *testing.T) {
	def := ConfigFor(skills.TypeFractionComparison)
	if def != (SessionConfig{TotalProblems: 15, GroupSize: 3, GroupCount: 5}) {
		t.Errorf("default config = %+v", def)
	}

	mult := ConfigFor(skills.TypeMultiplicationFacts)
	if mult != (SessionConfig{TotalProblems: 25, GroupSize: 5, GroupCount: 5}) {
		t.Errorf("multiplication config = %+v", mult)
	}

	// Related facts and scaling use the default shape; only the raw
	// facts drill gets the bigger session.
	if ConfigFor(skills.TypeRelatedFacts) != def {
		t.Error("related facts should use the default config")
	}
}

func TestGroupNumber(t *testing.T) {
	c := SessionConfig{TotalProblems: 15, GroupSize: 3, GroupCount: 5}
	tests := []struct {
		seq, want int
	}{
		{1, 1}, {3, 1}, {4, 2}, {6, 2}, {13, 5}, {15, 5},
	}
	for _, tt := range tests {
		if got := c.GroupNumber(tt.seq); got != tt.want {
			t.Errorf("GroupNumber(%d) = %d, want %d", tt.seq, got, tt.want)
		}
	}
}

func TestIsGroupBoundary(t *testing.T) {
	c := SessionConfig{TotalProblems: 25, GroupSize: 5, GroupCount: 5}
	for seq := 1; seq <= 25; seq++ {
		want := seq%5 == 0
		if got := c.IsGroupBoundary(seq); got != want {
			t.Errorf("IsGroupBoundary(%d) = %v, want %v", seq, got, want)
		}
	}
}
