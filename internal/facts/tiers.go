package facts

// familyTiers maps difficulty 1-5 to the fact families introduced at
// that level. A fact belongs to the family of its larger operand, so
// the "7s" family is every fact whose bigger factor is 7. Lower tiers
// stay eligible for review as difficulty climbs.
var familyTiers = [5][]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7},
	{8, 9},
	{10, 11, 12},
}

// clampDifficulty keeps a difficulty within the 1-5 curriculum.
func clampDifficulty(d int) int {
	if d < 1 {
		return 1
	}
	if d > len(familyTiers) {
		return len(familyTiers)
	}
	return d
}

// FocusFamilies returns the families newly introduced at a difficulty.
func FocusFamilies(difficulty int) []int {
	return familyTiers[clampDifficulty(difficulty)-1]
}

// ReviewFamilies returns every family below the current tier.
func ReviewFamilies(difficulty int) []int {
	var out []int
	for _, tier := range familyTiers[:clampDifficulty(difficulty)-1] {
		out = append(out, tier...)
	}
	return out
}

// FamilyOf returns the family a fact belongs to: its larger operand.
func FamilyOf(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// familyFacts enumerates the canonical facts of one family: every pair
// whose larger operand equals the family number.
func familyFacts(family int) [][2]int {
	out := make([][2]int, 0, family+1)
	for b := 0; b <= family; b++ {
		out = append(out, [2]int{b, family})
	}
	return out
}

// poolFacts enumerates the canonical facts of a set of families.
func poolFacts(families []int) [][2]int {
	var out [][2]int
	for _, f := range families {
		out = append(out, familyFacts(f)...)
	}
	return out
}
