package facts

import "math/rand"

const (
	// focusProbability is the chance a pick draws from the families
	// newly introduced at the current difficulty rather than the
	// review pool. It is a probability, not a per-group quota.
	focusProbability = 0.70

	// unseenWeight is the lottery weight of a never-presented fact
	// relative to a seen one. Unseen facts are preferred, not
	// guaranteed; once every fact in a pool has been seen the lottery
	// degenerates to uniform sampling.
	unseenWeight = 8
)

// Picker chooses which multiplication fact to test next, balancing new
// material against review of earlier families.
type Picker struct {
	rng *rand.Rand
}

// NewPicker creates a picker drawing from rng.
func NewPicker(rng *rand.Rand) *Picker {
	return &Picker{rng: rng}
}

// Pick selects the next fact for a difficulty level. Roughly 70% of
// picks come from the focus families (those introduced at the current
// tier) and 30% from all families below it. Difficulty 1 has no review
// pool yet, so every pick is a focus pick.
func (p *Picker) Pick(difficulty int, ledger *Ledger) (a, b int) {
	review := ReviewFamilies(difficulty)

	pool := FocusFamilies(difficulty)
	if len(review) > 0 && p.rng.Float64() >= focusProbability {
		pool = review
	}

	fact := p.drawWeighted(poolFacts(pool), ledger)
	return fact[0], fact[1]
}

// drawWeighted runs a weighted lottery over the pool, favoring facts
// the student has never been shown.
func (p *Picker) drawWeighted(pool [][2]int, ledger *Ledger) [2]int {
	total := 0
	for _, f := range pool {
		total += p.weight(f, ledger)
	}

	r := p.rng.Intn(total)
	for _, f := range pool {
		r -= p.weight(f, ledger)
		if r < 0 {
			return f
		}
	}
	return pool[len(pool)-1]
}

func (p *Picker) weight(f [2]int, ledger *Ledger) int {
	if ledger == nil || ledger.Seen(f[0], f[1]) == 0 {
		return unseenWeight
	}
	return 1
}
