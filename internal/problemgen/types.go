package problemgen

import (
	"fmt"

	"github.com/mathspiral/mathspiral/internal/facts"
	"github.com/mathspiral/mathspiral/internal/skills"
)

// Problem represents a generated math problem ready for presentation.
// Problems are immutable after generation.
type Problem struct {
	// Type is the generator key that produced this problem.
	Type skills.ProblemType

	// Prompt is the question text displayed to the student.
	// Plain ASCII, e.g. "What is -4 + 9?" or "Compare: 3/4 ___ 2/3".
	Prompt string

	// Format indicates how the student answers.
	Format AnswerFormat

	// AnswerType describes the representation of the answer for
	// validation and normalization.
	AnswerType AnswerType

	// Answer is the canonical correct answer as a string.
	Answer string

	// Choices is populated only when Format is FormatMultipleChoice.
	Choices []string

	// Explanation is a brief worked solution shown after answering.
	Explanation string

	// Visual is the scaffolding descriptor for a rendering
	// collaborator. Always populated (feedback can show it even when
	// scaffolding is off); Visual.Tier says whether to present it
	// while the student is solving.
	Visual *Hint

	// Difficulty and VisualLevel record the state the problem was
	// generated under.
	Difficulty  int
	VisualLevel int
}

// AnswerFormat describes how the student provides their answer.
type AnswerFormat string

const (
	// FormatNumeric means the student types a numeric answer.
	FormatNumeric AnswerFormat = "numeric"

	// FormatMultipleChoice means the student picks from fixed choices.
	FormatMultipleChoice AnswerFormat = "multiple_choice"
)

// AnswerType describes the representation of the correct answer.
type AnswerType string

const (
	AnswerTypeInteger  AnswerType = "integer"  // e.g. "42", "-15"
	AnswerTypeFraction AnswerType = "fraction" // e.g. "3/4"
	AnswerTypeSymbol   AnswerType = "symbol"   // one of "<", "=", ">"
	AnswerTypeWord     AnswerType = "word"     // e.g. "bigger", "same"
)

// GenerateInput holds everything a generator needs for one problem.
type GenerateInput struct {
	// Type selects which generator runs.
	Type skills.ProblemType

	// Difficulty (1-5) controls the numeric parameter ranges.
	Difficulty int

	// VisualLevel (1-5) selects the scaffolding tier the hint
	// descriptor is tagged with.
	VisualLevel int

	// Ledger drives coverage-aware fact picking. Consulted only by
	// the multiplication facts generator; may be nil.
	Ledger *facts.Ledger
}

// Fraction is a numerator/denominator pair with Den > 0.
type Fraction struct {
	Num int `json:"numerator"`
	Den int `json:"denominator"`
}

// Value returns the fraction as a float.
func (f Fraction) Value() float64 {
	return float64(f.Num) / float64(f.Den)
}

func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.Num, f.Den)
}

// ConfigurationError indicates the generator was asked for something
// outside its closed configuration: an unrecognized problem type or
// out-of-range difficulty/visual bounds. This is a programmer error
// and is never retried.
type ConfigurationError struct {
	Detail string
}

func (e *ConfigurationError) Error() string {
	return "problem generator configuration: " + e.Detail
}
