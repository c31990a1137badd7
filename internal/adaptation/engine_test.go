package adaptation

import (
	"strings"
	"testing"
)

func TestAdapt_PerfectReducesVisuals(t *testing.T) {
	next, d := Adapt(GroupResult{CorrectCount: 3, Total: 3, AvgResponseTimeMs: 8000}, State{Difficulty: 3, VisualLevel: 5})
	if next != (State{Difficulty: 3, VisualLevel: 4}) {
		t.Errorf("next = %+v, want {3 4}", next)
	}
	if d.Outcome != OutcomePerfect {
		t.Errorf("outcome = %s, want perfect", d.Outcome)
	}
	if d.VisualDelta != -1 || d.DifficultyDelta != 0 {
		t.Errorf("deltas = (%d, %d), want (0, -1)", d.DifficultyDelta, d.VisualDelta)
	}
}

func TestAdapt_PerfectAtVisualFloorRaisesDifficulty(t *testing.T) {
	// Advance rolls over from the scaffolding floor into difficulty,
	// then the spiral resets visuals to 4.
	next, d := Adapt(GroupResult{CorrectCount: 3, Total: 3, AvgResponseTimeMs: 6000}, State{Difficulty: 3, VisualLevel: 1})
	if next != (State{Difficulty: 4, VisualLevel: 4}) {
		t.Errorf("next = %+v, want {4 4}", next)
	}
	if d.DifficultyDelta != 1 {
		t.Errorf("difficulty delta = %d, want 1", d.DifficultyDelta)
	}
}

func TestAdapt_PerfectAtCeilingHolds(t *testing.T) {
	next, d := Adapt(GroupResult{CorrectCount: 5, Total: 5, AvgResponseTimeMs: 4000}, State{Difficulty: 5, VisualLevel: 1})
	if next != (State{Difficulty: 5, VisualLevel: 1}) {
		t.Errorf("next = %+v, want {5 1}", next)
	}
	if !strings.Contains(d.Reason, "top level") {
		t.Errorf("reason = %q, want top-level hold", d.Reason)
	}
}

func TestAdapt_SpiralResetFromAnyVisualLevel(t *testing.T) {
	// Whenever difficulty increases, visuals land on exactly 4.
	for _, diff := range []int{1, 2, 3, 4} {
		next, _ := Adapt(
			GroupResult{CorrectCount: 3, Total: 3, AvgResponseTimeMs: 5000},
			State{Difficulty: diff, VisualLevel: 1},
		)
		if next.Difficulty != diff+1 {
			t.Errorf("difficulty %d: next difficulty = %d, want %d", diff, next.Difficulty, diff+1)
		}
		if next.VisualLevel != 4 {
			t.Errorf("difficulty %d: visual level = %d, want 4", diff, next.VisualLevel)
		}
	}
}

func TestAdapt_StrongReducesVisualsOnly(t *testing.T) {
	// 4/5 = 0.80 and fast is Strong. Strong fades scaffolding but
	// never rolls into a difficulty bump, even at the visual floor.
	next, d := Adapt(GroupResult{CorrectCount: 4, Total: 5, AvgResponseTimeMs: 9000}, State{Difficulty: 2, VisualLevel: 1})
	if next != (State{Difficulty: 2, VisualLevel: 1}) {
		t.Errorf("next = %+v, want {2 1}", next)
	}
	if d.Outcome != OutcomeStrong {
		t.Errorf("outcome = %s, want strong", d.Outcome)
	}

	next, _ = Adapt(GroupResult{CorrectCount: 4, Total: 5, AvgResponseTimeMs: 9000}, State{Difficulty: 2, VisualLevel: 3})
	if next != (State{Difficulty: 2, VisualLevel: 2}) {
		t.Errorf("next = %+v, want {2 2}", next)
	}
}

func TestAdapt_AccurateButSlowHolds(t *testing.T) {
	cur := State{Difficulty: 3, VisualLevel: 3}
	next, d := Adapt(GroupResult{CorrectCount: 4, Total: 5, AvgResponseTimeMs: 15000}, cur)
	if next != cur {
		t.Errorf("next = %+v, want unchanged %+v", next, cur)
	}
	if d.Outcome != OutcomeAccurateSlow {
		t.Errorf("outcome = %s, want accurate_slow", d.Outcome)
	}
}

func TestAdapt_TwoOfThreeIsMixed(t *testing.T) {
	// 2/3 = 0.667 sits just under the 0.67 bound, so a fast 2/3 group
	// holds as Mixed rather than fading scaffolding.
	cur := State{Difficulty: 2, VisualLevel: 3}
	next, d := Adapt(GroupResult{CorrectCount: 2, Total: 3, AvgResponseTimeMs: 9000}, cur)
	if next != cur {
		t.Errorf("next = %+v, want unchanged %+v", next, cur)
	}
	if d.Outcome != OutcomeMixed {
		t.Errorf("outcome = %s, want mixed", d.Outcome)
	}
}

func TestAdapt_StrugglingRetreats(t *testing.T) {
	next, d := Adapt(GroupResult{CorrectCount: 0, Total: 3, AvgResponseTimeMs: 18000}, State{Difficulty: 3, VisualLevel: 3})
	if next != (State{Difficulty: 2, VisualLevel: 4}) {
		t.Errorf("next = %+v, want {2 4}", next)
	}
	if d.Outcome != OutcomeStruggling {
		t.Errorf("outcome = %s, want struggling", d.Outcome)
	}
}

func TestAdapt_StrugglingClampsAtBounds(t *testing.T) {
	next, _ := Adapt(GroupResult{CorrectCount: 1, Total: 5, AvgResponseTimeMs: 20000}, State{Difficulty: 1, VisualLevel: 5})
	if next != (State{Difficulty: 1, VisualLevel: 5}) {
		t.Errorf("next = %+v, want clamped {1 5}", next)
	}
}

func TestAdapt_AccuracyBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		correct int
		total   int
		timeMs  float64
		want    Outcome
	}{
		// 2/5 = 0.40 < 0.45 is Struggling, not Mixed.
		{"two of five struggles", 2, 5, 10000, OutcomeStruggling},
		// 9/20 = exactly 0.45 is Mixed.
		{"exact forty-five pct mixed", 9, 20, 10000, OutcomeMixed},
		// 13/20 = 0.65 < 0.67 is Mixed even when fast.
		{"just under strong stays mixed", 13, 20, 3000, OutcomeMixed},
		// 67/100 = exactly 0.67 and fast is Strong.
		{"exact strong boundary", 67, 100, 3000, OutcomeStrong},
		// 67/100 at the speed threshold is Accurate-but-slow.
		{"strong accuracy at slow speed", 67, 100, 12000, OutcomeAccurateSlow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, d := Adapt(
				GroupResult{CorrectCount: tt.correct, Total: tt.total, AvgResponseTimeMs: tt.timeMs},
				State{Difficulty: 3, VisualLevel: 3},
			)
			if d.Outcome != tt.want {
				t.Errorf("outcome = %s, want %s", d.Outcome, tt.want)
			}
		})
	}
}

func TestAdapt_StateAlwaysInBounds(t *testing.T) {
	// Exhaustive sweep over all states and all 3-problem group results.
	for diff := MinLevel; diff <= MaxLevel; diff++ {
		for vis := MinLevel; vis <= MaxLevel; vis++ {
			for correct := 0; correct <= 3; correct++ {
				for _, timeMs := range []float64{1000, 11999, 12000, 30000} {
					next, _ := Adapt(
						GroupResult{CorrectCount: correct, Total: 3, AvgResponseTimeMs: timeMs},
						State{Difficulty: diff, VisualLevel: vis},
					)
					if !next.Valid() {
						t.Fatalf("state {%d %d} + %d/3 @%.0fms produced out-of-bounds %+v",
							diff, vis, correct, timeMs, next)
					}
				}
			}
		}
	}
}

func TestAdapt_EmptyGroupHolds(t *testing.T) {
	cur := State{Difficulty: 2, VisualLevel: 2}
	next, _ := Adapt(GroupResult{}, cur)
	if next != cur {
		t.Errorf("next = %+v, want unchanged", next)
	}
}
