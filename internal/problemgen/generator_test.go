package problemgen

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/mathspiral/mathspiral/internal/facts"
	"github.com/mathspiral/mathspiral/internal/skills"
)

const sampleRuns = 200

func TestGenerateRejectsOutOfRangeState(t *testing.T) {
	g := New(1)
	tests := []struct {
		name       string
		difficulty int
		visual     int
	}{
		{"difficulty zero", 0, 3},
		{"difficulty six", 6, 3},
		{"visual zero", 3, 0},
		{"visual six", 3, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.Generate(GenerateInput{
				Type:        skills.TypeFractionComparison,
				Difficulty:  tt.difficulty,
				VisualLevel: tt.visual,
			})
			var ce *ConfigurationError
			if !errors.As(err, &ce) {
				t.Fatalf("error = %v, want *ConfigurationError", err)
			}
		})
	}
}

func TestGenerateRejectsUnknownType(t *testing.T) {
	g := New(1)
	_, err := g.Generate(GenerateInput{Type: "long_division", Difficulty: 1, VisualLevel: 1})
	var ce *ConfigurationError
	if !errors.As(err, &ce) {
		t.Fatalf("error = %v, want *ConfigurationError", err)
	}
}

// TestGenerateAllTypes sweeps every catalog type across all valid
// states and checks the invariants every problem must satisfy.
func TestGenerateAllTypes(t *testing.T) {
	g := New(42)
	for _, sk := range skills.All() {
		for difficulty := 1; difficulty <= 5; difficulty++ {
			for visual := 1; visual <= 5; visual++ {
				p, err := g.Generate(GenerateInput{
					Type:        sk.ProblemType,
					Difficulty:  difficulty,
					VisualLevel: visual,
				})
				if err != nil {
					t.Fatalf("%s d=%d v=%d: %v", sk.ProblemType, difficulty, visual, err)
				}
				checkProblem(t, p, sk.ProblemType, difficulty, visual)
			}
		}
	}
}

func checkProblem(t *testing.T, p *Problem, pt skills.ProblemType, difficulty, visual int) {
	t.Helper()
	if p.Type != pt {
		t.Errorf("Type = %q, want %q", p.Type, pt)
	}
	if p.Difficulty != difficulty || p.VisualLevel != visual {
		t.Errorf("state recorded as (%d,%d), want (%d,%d)", p.Difficulty, p.VisualLevel, difficulty, visual)
	}
	if p.Prompt == "" {
		t.Error("empty prompt")
	}
	if p.Answer == "" {
		t.Error("empty answer")
	}
	if p.Explanation == "" {
		t.Error("empty explanation")
	}
	if p.Visual == nil {
		t.Fatal("nil visual hint")
	}
	if p.Visual.Tier != TierForLevel(visual) {
		t.Errorf("hint tier = %q, want %q for level %d", p.Visual.Tier, TierForLevel(visual), visual)
	}
	checkHintMatchesKind(t, p.Visual)

	switch p.Format {
	case FormatNumeric:
		if len(p.Choices) != 0 {
			t.Errorf("numeric problem carries choices %v", p.Choices)
		}
	case FormatMultipleChoice:
		if len(p.Choices) < 2 {
			t.Errorf("multiple choice with %d choices", len(p.Choices))
		}
		found := false
		for _, c := range p.Choices {
			if strings.EqualFold(strings.TrimSpace(c), p.Answer) {
				found = true
			}
		}
		if !found {
			t.Errorf("answer %q not among choices %v", p.Answer, p.Choices)
		}
		seen := map[string]bool{}
		for _, c := range p.Choices {
			if seen[c] {
				t.Errorf("duplicate choice %q in %v", c, p.Choices)
			}
			seen[c] = true
		}
	default:
		t.Errorf("unknown format %q", p.Format)
	}

	// The canonical answer must validate against its own problem.
	if err := ValidateAnswer(p.Answer, p); err != nil {
		t.Errorf("canonical answer %q does not validate: %v", p.Answer, err)
	}
	if !CheckAnswer(p.Answer, p) {
		t.Errorf("canonical answer %q does not check as correct", p.Answer)
	}
}

func checkHintMatchesKind(t *testing.T, h *Hint) {
	t.Helper()
	set := 0
	if h.FractionBars != nil {
		set++
		if h.Kind != HintFractionBars {
			t.Errorf("fraction bars payload under kind %q", h.Kind)
		}
	}
	if h.NumberLine != nil {
		set++
		if h.Kind != HintNumberLine {
			t.Errorf("number line payload under kind %q", h.Kind)
		}
	}
	if h.ArrayModel != nil {
		set++
		if h.Kind != HintArrayModel {
			t.Errorf("array model payload under kind %q", h.Kind)
		}
	}
	if h.ScalingBar != nil {
		set++
		if h.Kind != HintScalingBar {
			t.Errorf("scaling bar payload under kind %q", h.Kind)
		}
	}
	if h.DoubleArray != nil {
		set++
		if h.Kind != HintDoubleArray {
			t.Errorf("double array payload under kind %q", h.Kind)
		}
	}
	if set != 1 {
		t.Errorf("hint has %d payloads set, want exactly 1", set)
	}
}

func TestFractionComparisonNeverEqual(t *testing.T) {
	g := New(7)
	for i := 0; i < sampleRuns; i++ {
		for d := 1; d <= 5; d++ {
			p, err := g.Generate(GenerateInput{Type: skills.TypeFractionComparison, Difficulty: d, VisualLevel: 3})
			if err != nil {
				t.Fatal(err)
			}
			if p.Answer == "=" {
				t.Fatalf("comparison produced equal pair: %s", p.Prompt)
			}
			fb := p.Visual.FractionBars
			if sameValue(fb.Left, fb.Right) {
				t.Fatalf("hint fractions are equal: %v vs %v", fb.Left, fb.Right)
			}
			for _, f := range []Fraction{fb.Left, fb.Right} {
				if f.Num < 1 || f.Num >= f.Den {
					t.Fatalf("degenerate fraction %s in %q", f, p.Prompt)
				}
			}
		}
	}
}

func TestPickFractionIsProper(t *testing.T) {
	g := New(11)
	for i := 0; i < sampleRuns; i++ {
		for d := 1; d <= 5; d++ {
			f := g.pickFraction(d, nil)
			if f.Num < 1 || f.Num >= f.Den {
				t.Fatalf("difficulty %d: improper fraction %s", d, f)
			}
		}
	}
}

func TestEquivalentFractionsAreEquivalent(t *testing.T) {
	g := New(13)
	for i := 0; i < sampleRuns; i++ {
		p, err := g.Generate(GenerateInput{Type: skills.TypeEquivalentFractions, Difficulty: 4, VisualLevel: 2})
		if err != nil {
			t.Fatal(err)
		}
		fb := p.Visual.FractionBars
		if !fb.EquivMode {
			t.Fatal("equiv hint not in equiv mode")
		}
		if !sameValue(fb.Left, fb.Right) {
			t.Fatalf("hint fractions not equivalent: %v vs %v", fb.Left, fb.Right)
		}
		want := fb.Right.Den
		if fb.RightNumeratorHidden {
			want = fb.Right.Num
		}
		if p.Answer != strconv.Itoa(want) {
			t.Fatalf("answer %q does not match hidden part %d", p.Answer, want)
		}
	}
}

func TestIntegerAdditionSignVariety(t *testing.T) {
	g := New(17)
	sawNegative := false
	for i := 0; i < sampleRuns; i++ {
		p, err := g.Generate(GenerateInput{Type: skills.TypeIntegerAddition, Difficulty: 2, VisualLevel: 3})
		if err != nil {
			t.Fatal(err)
		}
		nl := p.Visual.NumberLine
		if !nl.HasHop {
			t.Fatal("addition hint missing hop")
		}
		if nl.Start+nl.Move != nl.Result {
			t.Fatalf("hop inconsistent: %d + %d != %d", nl.Start, nl.Move, nl.Result)
		}
		want := strconv.Itoa(nl.Result)
		if p.Answer != want {
			t.Fatalf("answer %q, hop result %s", p.Answer, want)
		}
		if nl.Start < 0 || nl.Move < 0 {
			sawNegative = true
		}
	}
	if !sawNegative {
		t.Error("difficulty 2 never produced a negative operand")
	}
}

func TestIntegerSubtractionHop(t *testing.T) {
	g := New(19)
	for i := 0; i < sampleRuns; i++ {
		p, err := g.Generate(GenerateInput{Type: skills.TypeIntegerSubtraction, Difficulty: 3, VisualLevel: 3})
		if err != nil {
			t.Fatal(err)
		}
		nl := p.Visual.NumberLine
		if nl.Start+nl.Move != nl.Result {
			t.Fatalf("hop inconsistent: %d + %d != %d", nl.Start, nl.Move, nl.Result)
		}
		if nl.Result < nl.LineMin || nl.Result > nl.LineMax {
			t.Fatalf("result %d outside line [%d,%d]", nl.Result, nl.LineMin, nl.LineMax)
		}
	}
}

func TestIntegerOperandsRespectRange(t *testing.T) {
	g := New(23)
	for d := 1; d <= 5; d++ {
		lo, hi := integerRange(d)
		for i := 0; i < sampleRuns; i++ {
			a, b := g.pickSignedPair(d)
			if a < lo || a > hi || b < lo || b > hi {
				t.Fatalf("difficulty %d: pair (%d,%d) outside [%d,%d]", d, a, b, lo, hi)
			}
			if d == 2 && a >= 0 && b >= 0 {
				t.Fatalf("difficulty 2: pair (%d,%d) has no negative", a, b)
			}
		}
	}
}

func TestMultiplicationFactsRespectCeiling(t *testing.T) {
	ceilings := map[int]int{1: 2, 2: 5, 3: 7, 4: 9, 5: 12}
	g := New(29)
	for d := 1; d <= 5; d++ {
		for i := 0; i < sampleRuns; i++ {
			p, err := g.Generate(GenerateInput{
				Type:        skills.TypeMultiplicationFacts,
				Difficulty:  d,
				VisualLevel: 2,
				Ledger:      facts.NewLedger(),
			})
			if err != nil {
				t.Fatal(err)
			}
			am := p.Visual.ArrayModel
			if am.Rows > ceilings[d] && am.Cols > ceilings[d] {
				t.Fatalf("difficulty %d: fact %dx%d exceeds family ceiling %d", d, am.Rows, am.Cols, ceilings[d])
			}
			want := strconv.Itoa(am.Rows * am.Cols)
			if p.Answer != want {
				t.Fatalf("answer %q for %dx%d", p.Answer, am.Rows, am.Cols)
			}
		}
	}
}

func TestRelatedFactsDerivation(t *testing.T) {
	g := New(31)
	for i := 0; i < sampleRuns; i++ {
		p, err := g.Generate(GenerateInput{Type: skills.TypeRelatedFacts, Difficulty: 3, VisualLevel: 2})
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(p.Prompt, "If ") {
			t.Fatalf("related fact prompt missing anchor: %q", p.Prompt)
		}
		am := p.Visual.ArrayModel
		switch am.Highlight {
		case HighlightNone, HighlightDouble, HighlightHalf:
		default:
			t.Fatalf("unknown highlight %q", am.Highlight)
		}
		if am.Highlight == HighlightHalf && am.Rows%2 != 0 {
			t.Fatalf("half variation on odd rows %d", am.Rows)
		}
	}
}

func TestScalingBiggerSmallerAnswers(t *testing.T) {
	g := New(37)
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		p := g.scalingBiggerSmaller(3)
		sb := p.Visual.ScalingBar
		switch p.Answer {
		case "zero":
			if sb.Multiplier != 0 {
				t.Fatalf("zero answer with multiplier %d", sb.Multiplier)
			}
		case "same":
			if sb.Multiplier != 1 {
				t.Fatalf("same answer with multiplier %d", sb.Multiplier)
			}
		case "bigger":
			if sb.Multiplier < 2 {
				t.Fatalf("bigger answer with multiplier %d", sb.Multiplier)
			}
		default:
			t.Fatalf("unexpected answer %q", p.Answer)
		}
		seen[p.Answer] = true
	}
	for _, want := range []string{"zero", "same", "bigger"} {
		if !seen[want] {
			t.Errorf("answer %q never produced", want)
		}
	}
}

func TestDeterministicForSeed(t *testing.T) {
	a := New(99)
	b := New(99)
	for i := 0; i < 50; i++ {
		pa, err := a.Generate(GenerateInput{Type: skills.TypeFractionComparison, Difficulty: 3, VisualLevel: 3})
		if err != nil {
			t.Fatal(err)
		}
		pb, err := b.Generate(GenerateInput{Type: skills.TypeFractionComparison, Difficulty: 3, VisualLevel: 3})
		if err != nil {
			t.Fatal(err)
		}
		if pa.Prompt != pb.Prompt || pa.Answer != pb.Answer {
			t.Fatalf("same seed diverged: %q vs %q", pa.Prompt, pb.Prompt)
		}
	}
}

func TestTierForLevel(t *testing.T) {
	tests := []struct {
		level int
		want  Tier
	}{
		{1, TierNone},
		{2, TierInteractive},
		{3, TierInteractive},
		{4, TierStatic},
		{5, TierStatic},
	}
	for _, tt := range tests {
		if got := TierForLevel(tt.level); got != tt.want {
			t.Errorf("TierForLevel(%d) = %q, want %q", tt.level, got, tt.want)
		}
	}
}
