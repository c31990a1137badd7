package problemgen

import (
	"fmt"
	"math/rand"

	"github.com/mathspiral/mathspiral/internal/facts"
	"github.com/mathspiral/mathspiral/internal/skills"
)

// Generator produces problems for every skill type. Structure is a
// deterministic function of the input; the random source only decides
// which concrete operands are drawn.
type Generator struct {
	rng    *rand.Rand
	picker *facts.Picker
}

// New creates a generator seeded from seed.
func New(seed int64) *Generator {
	return NewFromRand(rand.New(rand.NewSource(seed)))
}

// NewFromRand creates a generator drawing from rng.
func NewFromRand(rng *rand.Rand) *Generator {
	return &Generator{
		rng:    rng,
		picker: facts.NewPicker(rng),
	}
}

// Generate dispatches to the generator for in.Type. The switch is
// exhaustive over the catalog; anything else is a ConfigurationError.
func (g *Generator) Generate(in GenerateInput) (*Problem, error) {
	if in.Difficulty < 1 || in.Difficulty > 5 {
		return nil, &ConfigurationError{Detail: fmt.Sprintf("difficulty %d out of range [1,5]", in.Difficulty)}
	}
	if in.VisualLevel < 1 || in.VisualLevel > 5 {
		return nil, &ConfigurationError{Detail: fmt.Sprintf("visual level %d out of range [1,5]", in.VisualLevel)}
	}

	var p *Problem
	switch in.Type {
	case skills.TypeFractionComparison:
		p = g.fractionComparison(in.Difficulty)
	case skills.TypeFractionBenchmark:
		p = g.fractionBenchmark(in.Difficulty)
	case skills.TypeEquivalentFractions:
		p = g.equivalentFractions(in.Difficulty)
	case skills.TypeFractionNumberLine:
		p = g.fractionNumberLine(in.Difficulty)
	case skills.TypeIntegerAddition:
		p = g.integerAddition(in.Difficulty)
	case skills.TypeIntegerSubtraction:
		p = g.integerSubtraction(in.Difficulty)
	case skills.TypeIntegerMagnitude:
		p = g.integerMagnitude(in.Difficulty)
	case skills.TypeIntegerNumberLine:
		p = g.integerNumberLine(in.Difficulty)
	case skills.TypeMultiplicationFacts:
		p = g.multiplicationFacts(in.Difficulty, in.Ledger)
	case skills.TypeRelatedFacts:
		p = g.relatedFacts(in.Difficulty)
	case skills.TypeMultiplicationScale:
		p = g.multiplicationScaling(in.Difficulty)
	default:
		return nil, &ConfigurationError{Detail: fmt.Sprintf("unknown problem type %q", in.Type)}
	}

	p.Type = in.Type
	p.Difficulty = in.Difficulty
	p.VisualLevel = in.VisualLevel
	if p.Visual != nil {
		p.Visual.Tier = TierForLevel(in.VisualLevel)
	}
	return p, nil
}

// shuffle permutes choices in place.
func (g *Generator) shuffle(choices []string) {
	g.rng.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})
}

// intBetween draws uniformly from [lo, hi] inclusive.
func (g *Generator) intBetween(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

// compareSymbol returns "<", "=", or ">" for left vs right.
func compareSymbol(left, right float64) string {
	switch {
	case left > right:
		return ">"
	case left < right:
		return "<"
	default:
		return "="
	}
}
