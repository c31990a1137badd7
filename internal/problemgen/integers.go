package problemgen

import "fmt"

// integerRanges maps difficulty 1-5 to symmetric operand bounds.
var integerRanges = [5][2]int{
	{-10, 10},
	{-20, 20},
	{-50, 50},
	{-100, 100},
	{-200, 200},
}

func integerRange(difficulty int) (lo, hi int) {
	r := integerRanges[difficulty-1]
	return r[0], r[1]
}

// counterThreshold is the magnitude up to which a chip model is a
// sensible companion to the number line.
const counterThreshold = 10

// pickSignedPair draws two operands with difficulty-appropriate sign
// variety, guaranteed by construction rather than by redrawing:
//
//	difficulty 1: any combination (may be all positive for beginners)
//	difficulty 2: at least one operand is negative
//	difficulty 3+: an explicit sign pattern is drawn first, then the
//	operands are drawn inside that pattern, so "minus a negative" and
//	mixed-sign cases appear at a controlled rate and never degenerate
//	into same-sign arithmetic by chance.
func (g *Generator) pickSignedPair(difficulty int) (a, b int) {
	lo, hi := integerRange(difficulty)

	switch {
	case difficulty <= 1:
		return g.intBetween(lo, hi), g.intBetween(lo, hi)

	case difficulty == 2:
		if g.rng.Float64() < 0.5 {
			return g.intBetween(lo, -1), g.intBetween(lo, hi)
		}
		return g.intBetween(lo, hi), g.intBetween(lo, -1)

	default:
		switch g.rng.Intn(4) {
		case 0: // positive, negative
			return g.intBetween(1, hi), g.intBetween(lo, -1)
		case 1: // negative, positive
			return g.intBetween(lo, -1), g.intBetween(1, hi)
		case 2: // both negative
			return g.intBetween(lo, -1), g.intBetween(lo, -1)
		default:
			return g.intBetween(lo, hi), g.intBetween(lo, hi)
		}
	}
}

// formatOperand parenthesizes negative right-hand operands.
func formatOperand(n int) string {
	if n < 0 {
		return fmt.Sprintf("(%d)", n)
	}
	return fmt.Sprintf("%d", n)
}

// hopHint builds a number-line hop descriptor for start + move.
func hopHint(start, move, result int) *Hint {
	nl := &NumberLineHint{
		Start:   start,
		Move:    move,
		Result:  result,
		HasHop:  true,
		LineMin: minInt(minInt(start, result), 0) - 5,
		LineMax: maxInt(maxInt(start, result), 0) + 5,
	}
	return &Hint{Kind: HintNumberLine, NumberLine: nl}
}

func (g *Generator) integerAddition(difficulty int) *Problem {
	a, b := g.pickSignedPair(difficulty)
	result := a + b

	direction := "right"
	if b < 0 {
		direction = "left"
	}

	hint := hopHint(a, b, result)
	if absInt(a) <= counterThreshold && absInt(b) <= counterThreshold {
		hint.NumberLine.Counters = &CounterData{A: a, B: b}
	}

	return &Problem{
		Prompt:      fmt.Sprintf("What is %d + %s?", a, formatOperand(b)),
		Format:      FormatNumeric,
		AnswerType:  AnswerTypeInteger,
		Answer:      fmt.Sprintf("%d", result),
		Explanation: fmt.Sprintf("Start at %d, move %d %s to reach %d", a, absInt(b), direction, result),
		Visual:      hint,
	}
}

func (g *Generator) integerSubtraction(difficulty int) *Problem {
	a, b := g.pickSignedPair(difficulty)
	result := a - b

	// Subtracting moves opposite to b's sign.
	hint := hopHint(a, -b, result)
	if absInt(a) <= counterThreshold && absInt(b) <= counterThreshold {
		hint.NumberLine.Counters = &CounterData{A: a, B: b}
	}

	return &Problem{
		Prompt:      fmt.Sprintf("What is %d - %s?", a, formatOperand(b)),
		Format:      FormatNumeric,
		AnswerType:  AnswerTypeInteger,
		Answer:      fmt.Sprintf("%d", result),
		Explanation: fmt.Sprintf("Start at %d, subtract %d to reach %d", a, b, result),
		Visual:      hint,
	}
}

func (g *Generator) integerMagnitude(difficulty int) *Problem {
	lo, hi := integerRange(difficulty)
	a := g.intBetween(lo, hi)
	b := g.intBetween(lo, hi)
	// Equal magnitudes make "closer to zero" ambiguous.
	for absInt(a) == absInt(b) {
		b = g.intBetween(lo, hi)
	}

	hint := &Hint{
		Kind: HintNumberLine,
		NumberLine: &NumberLineHint{
			Points:  []int{a, b, 0},
			LineMin: minInt(minInt(a, b), 0) - 5,
			LineMax: maxInt(maxInt(a, b), 0) + 5,
		},
	}
	explanation := fmt.Sprintf("|%d| = %d, |%d| = %d", a, absInt(a), b, absInt(b))

	switch g.rng.Intn(3) {
	case 0:
		answer := a
		if absInt(b) < absInt(a) {
			answer = b
		}
		return &Problem{
			Prompt:      fmt.Sprintf("Which is closer to zero: %d or %d?", a, b),
			Format:      FormatMultipleChoice,
			AnswerType:  AnswerTypeInteger,
			Answer:      fmt.Sprintf("%d", answer),
			Choices:     []string{fmt.Sprintf("%d", a), fmt.Sprintf("%d", b)},
			Explanation: explanation,
			Visual:      hint,
		}
	case 1:
		answer := a
		if absInt(b) > absInt(a) {
			answer = b
		}
		return &Problem{
			Prompt:      fmt.Sprintf("Which is farther from zero: %d or %d?", a, b),
			Format:      FormatMultipleChoice,
			AnswerType:  AnswerTypeInteger,
			Answer:      fmt.Sprintf("%d", answer),
			Choices:     []string{fmt.Sprintf("%d", a), fmt.Sprintf("%d", b)},
			Explanation: explanation,
			Visual:      hint,
		}
	default:
		return &Problem{
			Prompt:      fmt.Sprintf("Compare: %d ___ %d", a, b),
			Format:      FormatMultipleChoice,
			AnswerType:  AnswerTypeSymbol,
			Answer:      compareSymbol(float64(a), float64(b)),
			Choices:     []string{"<", "=", ">"},
			Explanation: explanation,
			Visual:      hint,
		}
	}
}

func (g *Generator) integerNumberLine(difficulty int) *Problem {
	lo, hi := integerRange(difficulty)
	target := g.intBetween(lo, hi)

	choices := []string{fmt.Sprintf("%d", target)}
	for len(choices) < 4 {
		c := fmt.Sprintf("%d", g.intBetween(lo, hi))
		if !containsString(choices, c) {
			choices = append(choices, c)
		}
	}
	g.shuffle(choices)

	return &Problem{
		Prompt:      "Which integer is shown on the number line?",
		Format:      FormatMultipleChoice,
		AnswerType:  AnswerTypeInteger,
		Answer:      fmt.Sprintf("%d", target),
		Choices:     choices,
		Explanation: fmt.Sprintf("The point is at %d", target),
		Visual: &Hint{
			Kind: HintNumberLine,
			NumberLine: &NumberLineHint{
				LineMin:   lo,
				LineMax:   hi,
				Marked:    float64(target),
				HasMarked: true,
			},
		},
	}
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
