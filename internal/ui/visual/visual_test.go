package visual

import (
	"strings"
	"testing"

	"github.com/mathspiral/mathspiral/internal/problemgen"
)

func TestRenderNilAndTierNone(t *testing.T) {
	if got := Render(nil); got != "" {
		t.Errorf("nil hint rendered %q", got)
	}
	h := &problemgen.Hint{
		Kind:       problemgen.HintNumberLine,
		Tier:       problemgen.TierNone,
		NumberLine: &problemgen.NumberLineHint{LineMin: 0, LineMax: 10},
	}
	if got := Render(h); got != "" {
		t.Errorf("tier-none hint rendered %q", got)
	}
}

func TestRenderDispatch(t *testing.T) {
	h := &problemgen.Hint{
		Kind:       problemgen.HintArrayModel,
		Tier:       problemgen.TierStatic,
		ArrayModel: &problemgen.ArrayModelHint{Rows: 3, Cols: 4},
	}
	got := Render(h)
	if !strings.Contains(got, "3 rows of 4") {
		t.Errorf("expected array caption, got %q", got)
	}
}

func TestFractionBars(t *testing.T) {
	h := &problemgen.FractionBarsHint{
		Left:  problemgen.Fraction{Num: 3, Den: 4},
		Right: problemgen.Fraction{Num: 1, Den: 2},
	}
	got := FractionBars(h)
	if !strings.Contains(got, "3/4") || !strings.Contains(got, "1/2") {
		t.Errorf("expected both fraction labels, got %q", got)
	}
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Errorf("expected 2 lines, got %d", len(lines))
	}
}

func TestFractionBarsHiddenNumerator(t *testing.T) {
	h := &problemgen.FractionBarsHint{
		Left:                 problemgen.Fraction{Num: 1, Den: 2},
		Right:                problemgen.Fraction{Num: 4, Den: 8},
		EquivMode:            true,
		RightNumeratorHidden: true,
	}
	got := FractionBars(h)
	if !strings.Contains(got, "?/8") {
		t.Errorf("expected hidden numerator label, got %q", got)
	}
	if strings.Contains(got, "4/8") {
		t.Errorf("answer leaked into hint: %q", got)
	}
}

func TestNumberLineHop(t *testing.T) {
	h := &problemgen.NumberLineHint{
		LineMin: -10, LineMax: 10,
		Start: 3, Move: -5, Result: -2, HasHop: true,
	}
	got := NumberLine(h)
	if !strings.Contains(got, "Start at 3, hop 5 left, land on -2.") {
		t.Errorf("expected hop caption, got %q", got)
	}
}

func TestNumberLineCounters(t *testing.T) {
	h := &problemgen.NumberLineHint{
		LineMin: -10, LineMax: 10,
		Counters: &problemgen.CounterData{A: 3, B: -2},
	}
	got := NumberLine(h)
	if strings.Count(got, "⊕") != 3 {
		t.Errorf("expected 3 positive chips, got %q", got)
	}
	if strings.Count(got, "⊖") != 2 {
		t.Errorf("expected 2 negative chips, got %q", got)
	}
}

func TestNumberLineFractionTicks(t *testing.T) {
	h := &problemgen.NumberLineHint{
		LineMin: 0, LineMax: 2,
		FractionDenom: 4,
		Marked:        0.75, HasMarked: true,
	}
	got := NumberLine(h)
	if strings.Count(got, "●") != 1 {
		t.Errorf("expected exactly one marked tick, got %q", got)
	}
}

func TestArrayModelHighlights(t *testing.T) {
	double := ArrayModel(&problemgen.ArrayModelHint{Rows: 2, Cols: 3, Highlight: problemgen.HighlightDouble})
	if !strings.Contains(double, "doubled") {
		t.Errorf("expected doubled caption, got %q", double)
	}
	if n := strings.Count(double, "●"); n != 2*3*2 {
		t.Errorf("expected 12 dots in doubled array, got %d", n)
	}

	half := ArrayModel(&problemgen.ArrayModelHint{Rows: 4, Cols: 3, Highlight: problemgen.HighlightHalf})
	if !strings.Contains(half, "half of 4 rows") {
		t.Errorf("expected half caption, got %q", half)
	}
}

func TestScalingBarZeroMultiplier(t *testing.T) {
	got := ScalingBar(&problemgen.ScalingBarHint{Base: 4, Multiplier: 0})
	if !strings.Contains(got, "(empty)") {
		t.Errorf("expected empty scaled bar, got %q", got)
	}
	if !strings.Contains(got, "4 x 0") {
		t.Errorf("expected caption, got %q", got)
	}
}

func TestDoubleArray(t *testing.T) {
	got := DoubleArray(&problemgen.DoubleArrayHint{
		Left:  problemgen.ArrayModelHint{Rows: 2, Cols: 3},
		Right: problemgen.ArrayModelHint{Rows: 3, Cols: 3},
	})
	if !strings.Contains(got, "2 x 3") || !strings.Contains(got, "3 x 3") {
		t.Errorf("expected both captions, got %q", got)
	}
}
