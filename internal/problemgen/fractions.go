package problemgen

import "fmt"

// denominatorPools maps difficulty 1-5 to the eligible denominators.
// Pools grow monotonically richer: small halves/thirds/quarters first,
// awkward sevenths/elevenths only at the top.
var denominatorPools = [5][]int{
	{2, 3, 4},
	{2, 3, 4, 5, 6},
	{2, 3, 4, 5, 6, 8, 10},
	{3, 4, 5, 6, 7, 8, 9, 10, 12},
	{3, 5, 6, 7, 8, 9, 10, 11, 12},
}

// pickFraction draws a proper fraction for a difficulty, avoiding the
// excluded value if one is given. Numerator is always in [1, den-1].
func (g *Generator) pickFraction(difficulty int, exclude *Fraction) Fraction {
	pool := denominatorPools[difficulty-1]
	for i := 0; i < 50; i++ {
		d := pool[g.rng.Intn(len(pool))]
		n := g.intBetween(1, d-1)
		if exclude != nil && n == exclude.Num && d == exclude.Den {
			continue
		}
		return Fraction{Num: n, Den: d}
	}
	return Fraction{Num: 1, Den: 2}
}

// sameValue reports whether two fractions are equal, by cross
// multiplication.
func sameValue(a, b Fraction) bool {
	return a.Num*b.Den == b.Num*a.Den
}

func (g *Generator) fractionComparison(difficulty int) *Problem {
	left := g.pickFraction(difficulty, nil)
	right := g.pickFraction(difficulty, &left)

	// An equal pair would trivialize the comparison; nudge the right
	// numerator off the shared value, keeping it a proper fraction
	// with a nonzero numerator.
	if sameValue(left, right) {
		switch {
		case right.Num < right.Den-1:
			right.Num++
		case right.Num > 1:
			right.Num--
		default:
			// Right is 1/2 with nowhere to nudge; redraw instead.
			for i := 0; i < 50 && sameValue(left, right); i++ {
				right = g.pickFraction(difficulty, &left)
			}
			if sameValue(left, right) {
				right = Fraction{Num: 1, Den: 3}
			}
		}
	}

	answer := compareSymbol(left.Value(), right.Value())

	return &Problem{
		Prompt:      fmt.Sprintf("Compare: %s ___ %s", left, right),
		Format:      FormatMultipleChoice,
		AnswerType:  AnswerTypeSymbol,
		Answer:      answer,
		Choices:     []string{"<", "=", ">"},
		Explanation: fmt.Sprintf("%s = %.3f and %s = %.3f", left, left.Value(), right, right.Value()),
		Visual: &Hint{
			Kind:         HintFractionBars,
			FractionBars: &FractionBarsHint{Left: left, Right: right},
		},
	}
}

// benchmarks for fraction comparison: 0, 1/2, and 1.
var benchmarks = []Fraction{{0, 1}, {1, 2}, {1, 1}}

func (g *Generator) fractionBenchmark(difficulty int) *Problem {
	// Always compare to 1/2 at low difficulty.
	bench := benchmarks[1]
	if difficulty > 2 {
		bench = benchmarks[g.rng.Intn(len(benchmarks))]
	}

	frac := g.pickFraction(difficulty, nil)
	answer := compareSymbol(frac.Value(), bench.Value())

	label := bench.String()
	switch bench {
	case Fraction{0, 1}:
		label = "0"
	case Fraction{1, 1}:
		label = "1"
	case Fraction{1, 2}:
		label = "1/2"
	}

	// Express the benchmark on the fraction's denominator so the two
	// bars line up.
	benchOnDenom := Fraction{
		Num: int(bench.Value()*float64(frac.Den) + 0.5),
		Den: frac.Den,
	}

	return &Problem{
		Prompt:      fmt.Sprintf("Is %s less than, equal to, or greater than %s?", frac, label),
		Format:      FormatMultipleChoice,
		AnswerType:  AnswerTypeSymbol,
		Answer:      answer,
		Choices:     []string{"<", "=", ">"},
		Explanation: fmt.Sprintf("%s = %.3f, benchmark %s = %.3f", frac, frac.Value(), label, bench.Value()),
		Visual: &Hint{
			Kind: HintFractionBars,
			FractionBars: &FractionBarsHint{
				Left:       frac,
				Right:      benchOnDenom,
				RightLabel: label,
			},
		},
	}
}

// equivalenceMultipliers maps difficulty to the scaling factors used
// to build the target fraction.
func equivalenceMultipliers(difficulty int) []int {
	switch {
	case difficulty <= 2:
		return []int{2, 3}
	case difficulty <= 3:
		return []int{2, 3, 4}
	default:
		return []int{2, 3, 4, 5, 6}
	}
}

func (g *Generator) equivalentFractions(difficulty int) *Problem {
	// Base fractions stay simple even at high difficulty; the
	// multiplier carries the challenge.
	baseDifficulty := difficulty
	if baseDifficulty > 3 {
		baseDifficulty = 3
	}
	base := g.pickFraction(baseDifficulty, nil)

	mults := equivalenceMultipliers(difficulty)
	m := mults[g.rng.Intn(len(mults))]
	target := Fraction{Num: base.Num * m, Den: base.Den * m}

	explanation := fmt.Sprintf("%s x %d/%d = %s", base, m, m, target)

	if g.rng.Float64() < 0.5 {
		// Ask for the missing numerator.
		return &Problem{
			Prompt:      fmt.Sprintf("Find the missing number: %s = ?/%d", base, target.Den),
			Format:      FormatNumeric,
			AnswerType:  AnswerTypeInteger,
			Answer:      fmt.Sprintf("%d", target.Num),
			Explanation: explanation,
			Visual: &Hint{
				Kind: HintFractionBars,
				FractionBars: &FractionBarsHint{
					Left:                 base,
					Right:                target,
					EquivMode:            true,
					RightNumeratorHidden: true,
				},
			},
		}
	}

	// Ask for the missing denominator.
	return &Problem{
		Prompt:      fmt.Sprintf("Find the missing number: %s = %d/?", base, target.Num),
		Format:      FormatNumeric,
		AnswerType:  AnswerTypeInteger,
		Answer:      fmt.Sprintf("%d", target.Den),
		Explanation: explanation,
		Visual: &Hint{
			Kind: HintFractionBars,
			FractionBars: &FractionBarsHint{
				Left:      base,
				Right:     target,
				EquivMode: true,
			},
		},
	}
}

func (g *Generator) fractionNumberLine(difficulty int) *Problem {
	target := g.pickFraction(difficulty, nil)

	choices := []string{target.String()}
	for len(choices) < 4 {
		c := g.pickFraction(difficulty, nil)
		// Distractors must be visually distinguishable on the line.
		if absFloat(c.Value()-target.Value()) <= 0.05 {
			continue
		}
		if containsString(choices, c.String()) {
			continue
		}
		choices = append(choices, c.String())
	}
	g.shuffle(choices)

	return &Problem{
		Prompt:      "Which fraction is shown on the number line?",
		Format:      FormatMultipleChoice,
		AnswerType:  AnswerTypeFraction,
		Answer:      target.String(),
		Choices:     choices,
		Explanation: fmt.Sprintf("The point is at %s = %.3f", target, target.Value()),
		Visual: &Hint{
			Kind: HintNumberLine,
			NumberLine: &NumberLineHint{
				LineMin:       0,
				LineMax:       1,
				Marked:        target.Value(),
				HasMarked:     true,
				FractionDenom: target.Den,
			},
		},
	}
}

func absFloat(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
