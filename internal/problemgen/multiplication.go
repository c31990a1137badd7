package problemgen

import (
	"fmt"
	"sort"

	"github.com/mathspiral/mathspiral/internal/facts"
)

// multiplicationRanges maps difficulty 1-5 to factor bounds for the
// related-facts and scaling generators. The facts drill itself draws
// from the coverage picker's fact-family curriculum instead.
var multiplicationRanges = [5][2]int{
	{0, 5},
	{0, 7},
	{0, 10},
	{0, 12},
	{2, 12},
}

func multiplicationRange(difficulty int) (lo, hi int) {
	r := multiplicationRanges[difficulty-1]
	return r[0], r[1]
}

// pickFactor draws a factor of at least 2, so derived-fact reasoning
// has something to work with.
func (g *Generator) pickFactor(difficulty int) int {
	lo, hi := multiplicationRange(difficulty)
	return g.intBetween(maxInt(lo, 2), hi)
}

func (g *Generator) multiplicationFacts(difficulty int, ledger *facts.Ledger) *Problem {
	a, b := g.picker.Pick(difficulty, ledger)

	// The picker returns canonical (small, large) pairs; flip half the
	// time so presentation order varies.
	if g.rng.Float64() < 0.5 {
		a, b = b, a
	}
	product := a * b

	return &Problem{
		Prompt:      fmt.Sprintf("What is %d x %d?", a, b),
		Format:      FormatNumeric,
		AnswerType:  AnswerTypeInteger,
		Answer:      fmt.Sprintf("%d", product),
		Explanation: fmt.Sprintf("%d x %d = %d", a, b, product),
		Visual: &Hint{
			Kind:       HintArrayModel,
			ArrayModel: &ArrayModelHint{Rows: a, Cols: b},
		},
	}
}

func (g *Generator) relatedFacts(difficulty int) *Problem {
	a := g.pickFactor(difficulty)
	b := g.pickFactor(difficulty)
	known := a * b

	variations := []string{"double", "plus_one", "commutative"}
	if a%2 == 0 {
		variations = append(variations, "half")
	}
	variation := variations[g.rng.Intn(len(variations))]

	var (
		prompt, explanation string
		answer              int
		highlight           Highlight
	)

	switch variation {
	case "double":
		answer = a * 2 * b
		prompt = fmt.Sprintf("If %d x %d = %d, what is %d x %d?", a, b, known, a*2, b)
		explanation = fmt.Sprintf("%d x %d = 2 x (%d x %d) = 2 x %d = %d", a*2, b, a, b, known, answer)
		highlight = HighlightDouble
	case "half":
		answer = a / 2 * b
		prompt = fmt.Sprintf("If %d x %d = %d, what is %d x %d?", a, b, known, a/2, b)
		explanation = fmt.Sprintf("%d x %d = half of (%d x %d) = %d / 2 = %d", a/2, b, a, b, known, answer)
		highlight = HighlightHalf
	case "plus_one":
		answer = (a + 1) * b
		prompt = fmt.Sprintf("If %d x %d = %d, what is %d x %d?", a, b, known, a+1, b)
		explanation = fmt.Sprintf("%d x %d = %d x %d + %d = %d + %d = %d", a+1, b, a, b, b, known, b, answer)
	default: // commutative
		answer = known
		prompt = fmt.Sprintf("If %d x %d = %d, what is %d x %d?", a, b, known, b, a)
		explanation = fmt.Sprintf("%d x %d = %d x %d = %d: order does not change the product", b, a, a, b, known)
	}

	return &Problem{
		Prompt:      prompt,
		Format:      FormatNumeric,
		AnswerType:  AnswerTypeInteger,
		Answer:      fmt.Sprintf("%d", answer),
		Explanation: explanation,
		Visual: &Hint{
			Kind:       HintArrayModel,
			ArrayModel: &ArrayModelHint{Rows: a, Cols: b, Highlight: highlight},
		},
	}
}

func (g *Generator) multiplicationScaling(difficulty int) *Problem {
	switch g.rng.Intn(3) {
	case 0:
		return g.scalingBiggerSmaller(difficulty)
	case 1:
		return g.scalingEstimate(difficulty)
	default:
		return g.scalingCompareProducts(difficulty)
	}
}

func (g *Generator) scalingBiggerSmaller(difficulty int) *Problem {
	base := g.pickFactor(difficulty)

	var multiplier int
	switch g.rng.Intn(3) {
	case 0:
		multiplier = 0
	case 1:
		multiplier = 1
	default:
		multiplier = g.intBetween(2, 5)
	}

	var answer, explanation string
	switch multiplier {
	case 0:
		answer = "zero"
		explanation = "Any number x 0 = 0"
	case 1:
		answer = "same"
		explanation = "Any number x 1 = the same number"
	default:
		answer = "bigger"
		explanation = fmt.Sprintf("%d x %d = %d, which is bigger than %d", base, multiplier, base*multiplier, base)
	}

	return &Problem{
		Prompt:      fmt.Sprintf("Is %d x %d bigger than, smaller than, or equal to %d?", base, multiplier, base),
		Format:      FormatMultipleChoice,
		AnswerType:  AnswerTypeWord,
		Answer:      answer,
		Choices:     []string{"bigger", "same", "zero", "smaller"},
		Explanation: explanation,
		Visual: &Hint{
			Kind:       HintScalingBar,
			ScalingBar: &ScalingBarHint{Base: base, Multiplier: multiplier},
		},
	}
}

func (g *Generator) scalingEstimate(difficulty int) *Problem {
	a := g.pickFactor(difficulty)
	b := g.pickFactor(difficulty)
	product := a * b

	// Build distractors near the true product, deduplicated.
	seen := map[int]bool{product: true}
	options := []int{product}
	offsets := []int{
		g.intBetween(1, 10),
		-g.intBetween(1, minInt(10, product-1)),
		g.intBetween(10, 20),
	}
	for _, off := range offsets {
		o := product + off
		if o > 0 && !seen[o] {
			seen[o] = true
			options = append(options, o)
		}
	}
	sort.Ints(options)

	choices := make([]string, len(options))
	for i, o := range options {
		choices[i] = fmt.Sprintf("%d", o)
	}
	g.shuffle(choices)

	return &Problem{
		Prompt:      fmt.Sprintf("Which is closest to %d x %d?", a, b),
		Format:      FormatMultipleChoice,
		AnswerType:  AnswerTypeInteger,
		Answer:      fmt.Sprintf("%d", product),
		Choices:     choices,
		Explanation: fmt.Sprintf("%d x %d = %d", a, b, product),
		Visual: &Hint{
			Kind:       HintArrayModel,
			ArrayModel: &ArrayModelHint{Rows: a, Cols: b},
		},
	}
}

func (g *Generator) scalingCompareProducts(difficulty int) *Problem {
	a1 := g.pickFactor(difficulty)
	b1 := g.pickFactor(difficulty)
	a2 := g.pickFactor(difficulty)
	b2 := g.pickFactor(difficulty)
	p1, p2 := a1*b1, a2*b2

	return &Problem{
		Prompt:      fmt.Sprintf("Without calculating exactly: %d x %d ___ %d x %d", a1, b1, a2, b2),
		Format:      FormatMultipleChoice,
		AnswerType:  AnswerTypeSymbol,
		Answer:      compareSymbol(float64(p1), float64(p2)),
		Choices:     []string{"<", "=", ">"},
		Explanation: fmt.Sprintf("%dx%d=%d, %dx%d=%d", a1, b1, p1, a2, b2, p2),
		Visual: &Hint{
			Kind: HintDoubleArray,
			DoubleArray: &DoubleArrayHint{
				Left:  ArrayModelHint{Rows: a1, Cols: b1},
				Right: ArrayModelHint{Rows: a2, Cols: b2},
			},
		},
	}
}
