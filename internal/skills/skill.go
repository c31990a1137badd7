package skills

// Domain represents a math content domain.
type Domain string

const (
	DomainFractions      Domain = "fractions"
	DomainIntegers       Domain = "integers"
	DomainMultiplication Domain = "multiplication"
)

// AllDomains returns all domains in display order.
func AllDomains() []Domain {
	return []Domain{DomainFractions, DomainIntegers, DomainMultiplication}
}

// DomainDisplayName returns a human-readable name for a domain.
func DomainDisplayName(d Domain) string {
	switch d {
	case DomainFractions:
		return "Fractions"
	case DomainIntegers:
		return "Combining Integers"
	case DomainMultiplication:
		return "Multiplication Fluency"
	default:
		return string(d)
	}
}

// ProblemType identifies which generator produces problems for a skill.
// The set is closed: the generator dispatch switches exhaustively over
// these values and rejects anything else.
type ProblemType string

const (
	TypeFractionComparison  ProblemType = "fraction_comparison"
	TypeFractionBenchmark   ProblemType = "fraction_comparison_benchmark"
	TypeEquivalentFractions ProblemType = "equivalent_fractions"
	TypeFractionNumberLine  ProblemType = "fraction_number_line"
	TypeIntegerAddition     ProblemType = "integer_addition"
	TypeIntegerSubtraction  ProblemType = "integer_subtraction"
	TypeIntegerMagnitude    ProblemType = "integer_magnitude"
	TypeIntegerNumberLine   ProblemType = "integer_number_line"
	TypeMultiplicationFacts ProblemType = "multiplication_facts"
	TypeRelatedFacts        ProblemType = "multiplication_related_facts"
	TypeMultiplicationScale ProblemType = "multiplication_scaling"
)

// Skill represents a single practice skill in the catalog.
// Catalog entries are immutable; difficulty always spans [1,5].
type Skill struct {
	ID           string
	Name         string
	Description  string
	Domain       Domain
	GradeLevel   int
	ProblemType  ProblemType
	DisplayOrder int
}

// UsesFactLedger reports whether this skill's generator consults the
// multiplication fact-mastery ledger for coverage-aware picking.
func (s Skill) UsesFactLedger() bool {
	return s.ProblemType == TypeMultiplicationFacts
}
