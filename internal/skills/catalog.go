package skills

import "fmt"

// catalog holds every skill the system can assign, in display order
// within each domain. IDs double as URL-safe slugs.
var catalog = []Skill{
	{
		ID:           "fraction-comparison",
		Name:         "Compare Fractions",
		Description:  "Compare two fractions using reasoning and visual models.",
		Domain:       DomainFractions,
		GradeLevel:   4,
		ProblemType:  TypeFractionComparison,
		DisplayOrder: 1,
	},
	{
		ID:           "fraction-benchmark",
		Name:         "Compare Fractions to Benchmarks (0, 1/2, 1)",
		Description:  "Determine if a fraction is less than, equal to, or greater than benchmark values.",
		Domain:       DomainFractions,
		GradeLevel:   4,
		ProblemType:  TypeFractionBenchmark,
		DisplayOrder: 2,
	},
	{
		ID:           "equivalent-fractions",
		Name:         "Equivalent Fractions",
		Description:  "Find equivalent fractions by identifying multiplying patterns.",
		Domain:       DomainFractions,
		GradeLevel:   4,
		ProblemType:  TypeEquivalentFractions,
		DisplayOrder: 3,
	},
	{
		ID:           "fraction-number-line",
		Name:         "Fractions on a Number Line",
		Description:  "Place and identify fractions on a number line between 0 and 1.",
		Domain:       DomainFractions,
		GradeLevel:   4,
		ProblemType:  TypeFractionNumberLine,
		DisplayOrder: 4,
	},
	{
		ID:           "integer-number-line",
		Name:         "Integers on a Number Line",
		Description:  "Identify integers on a number line including negative values.",
		Domain:       DomainIntegers,
		GradeLevel:   5,
		ProblemType:  TypeIntegerNumberLine,
		DisplayOrder: 1,
	},
	{
		ID:           "integer-addition",
		Name:         "Adding Integers",
		Description:  "Add positive and negative integers using number line reasoning.",
		Domain:       DomainIntegers,
		GradeLevel:   5,
		ProblemType:  TypeIntegerAddition,
		DisplayOrder: 2,
	},
	{
		ID:           "integer-subtraction",
		Name:         "Subtracting Integers",
		Description:  "Subtract integers, reasoning about direction on a number line.",
		Domain:       DomainIntegers,
		GradeLevel:   5,
		ProblemType:  TypeIntegerSubtraction,
		DisplayOrder: 3,
	},
	{
		ID:           "integer-magnitude",
		Name:         "Integer Magnitude",
		Description:  "Reason about absolute value and distance from zero.",
		Domain:       DomainIntegers,
		GradeLevel:   5,
		ProblemType:  TypeIntegerMagnitude,
		DisplayOrder: 4,
	},
	{
		ID:           "multiplication-facts",
		Name:         "Multiplication Facts (0-12)",
		Description:  "Build fluency with basic multiplication facts from 0x0 to 12x12.",
		Domain:       DomainMultiplication,
		GradeLevel:   4,
		ProblemType:  TypeMultiplicationFacts,
		DisplayOrder: 1,
	},
	{
		ID:           "multiplication-related-facts",
		Name:         "Related Multiplication Facts",
		Description:  "Derive new facts from known ones using doubling, halving, and the distributive property.",
		Domain:       DomainMultiplication,
		GradeLevel:   4,
		ProblemType:  TypeRelatedFacts,
		DisplayOrder: 2,
	},
	{
		ID:           "multiplication-scaling",
		Name:         "Multiplication as Scaling",
		Description:  "Reason about products without computing them exactly.",
		Domain:       DomainMultiplication,
		GradeLevel:   4,
		ProblemType:  TypeMultiplicationScale,
		DisplayOrder: 3,
	},
}

// All returns the full skill catalog in display order.
func All() []Skill {
	out := make([]Skill, len(catalog))
	copy(out, catalog)
	return out
}

// ByDomain returns the skills for a single domain in display order.
func ByDomain(d Domain) []Skill {
	var out []Skill
	for _, s := range catalog {
		if s.Domain == d {
			out = append(out, s)
		}
	}
	return out
}

// Get returns the skill with the given ID.
func Get(id string) (Skill, error) {
	for _, s := range catalog {
		if s.ID == id {
			return s, nil
		}
	}
	return Skill{}, fmt.Errorf("unknown skill: %q", id)
}
