package problemgen

import (
	"fmt"
	"strconv"
	"strings"
)

// InvalidAnswerError indicates the raw input could not be interpreted
// as an answer of the expected type at all, as opposed to a wrong
// answer. Callers typically re-prompt without recording an attempt.
type InvalidAnswerError struct {
	Input  string
	Reason string
}

func (e *InvalidAnswerError) Error() string {
	return fmt.Sprintf("invalid answer %q: %s", e.Input, e.Reason)
}

// CheckAnswer compares the student's input against the problem's
// canonical answer. Returns true if the answer is correct.
//
// Normalization rules:
// - Whitespace is trimmed
// - Comparison is case-insensitive
// - For fractions: equivalent fractions are accepted (e.g., "2/4" matches "1/2")
// - For integers: leading zeros are ignored (e.g., "007" matches "7")
// - For multiple choice: matches against the choice text or index (1-N)
func CheckAnswer(input string, p *Problem) bool {
	input = strings.TrimSpace(input)
	if input == "" {
		return false
	}

	if p.Format == FormatMultipleChoice {
		return checkMultipleChoice(input, p)
	}

	normalizedInput, err := normalizeAnswer(input, p.AnswerType)
	if err != nil {
		return false
	}
	normalizedCorrect, err := normalizeAnswer(p.Answer, p.AnswerType)
	if err != nil {
		return false
	}
	return strings.EqualFold(normalizedInput, normalizedCorrect)
}

// ValidateAnswer reports whether the raw input is parseable as an
// answer to p, without judging correctness. Returns an
// *InvalidAnswerError describing the problem when it is not.
func ValidateAnswer(input string, p *Problem) error {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return &InvalidAnswerError{Input: input, Reason: "empty answer"}
	}

	if p.Format == FormatMultipleChoice {
		// Choice text wins over index interpretation: several problem
		// types have numeric choice texts, and typing one of those
		// must mean that choice, not a position.
		for _, c := range p.Choices {
			if strings.EqualFold(strings.TrimSpace(c), trimmed) {
				return nil
			}
		}
		if idx, err := strconv.Atoi(trimmed); err == nil {
			if idx < 1 || idx > len(p.Choices) {
				return &InvalidAnswerError{
					Input:  input,
					Reason: fmt.Sprintf("choice index out of range 1-%d", len(p.Choices)),
				}
			}
			return nil
		}
		return &InvalidAnswerError{Input: input, Reason: "not one of the choices"}
	}

	if _, err := normalizeAnswer(trimmed, p.AnswerType); err != nil {
		return &InvalidAnswerError{Input: input, Reason: err.Error()}
	}
	return nil
}

// checkMultipleChoice checks the input against MC choices, by choice
// text first and by 1-based index only when the input matches no
// choice text.
func checkMultipleChoice(input string, p *Problem) bool {
	answer := strings.TrimSpace(p.Answer)
	for _, c := range p.Choices {
		if strings.EqualFold(strings.TrimSpace(c), input) {
			return strings.EqualFold(strings.TrimSpace(c), answer)
		}
	}
	if idx, err := strconv.Atoi(input); err == nil && idx >= 1 && idx <= len(p.Choices) {
		return strings.EqualFold(strings.TrimSpace(p.Choices[idx-1]), answer)
	}
	return strings.EqualFold(input, answer)
}

// normalizeAnswer normalizes an answer string for comparison.
func normalizeAnswer(answer string, answerType AnswerType) (string, error) {
	answer = strings.TrimSpace(answer)

	switch answerType {
	case AnswerTypeInteger:
		n, err := strconv.ParseInt(answer, 10, 64)
		if err != nil {
			return "", fmt.Errorf("invalid integer: %w", err)
		}
		return strconv.FormatInt(n, 10), nil

	case AnswerTypeFraction:
		num, den, err := parseFraction(answer)
		if err != nil {
			return "", err
		}
		if den == 0 {
			return "", fmt.Errorf("zero denominator")
		}
		// Normalize sign: negative sign on numerator only.
		if den < 0 {
			num = -num
			den = -den
		}
		g := gcd(abs64(num), den)
		num /= g
		den /= g
		return fmt.Sprintf("%d/%d", num, den), nil

	case AnswerTypeSymbol:
		switch answer {
		case "<", "=", ">":
			return answer, nil
		}
		return "", fmt.Errorf("expected <, = or >")

	case AnswerTypeWord:
		return strings.ToLower(answer), nil

	default:
		return answer, nil
	}
}

// parseFraction parses "a/b" into numerator and denominator.
func parseFraction(s string) (int64, int64, error) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid fraction format: %q", s)
	}
	num, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid numerator: %w", err)
	}
	den, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid denominator: %w", err)
	}
	return num, den, nil
}

// gcd returns the greatest common divisor of a and b.
// Both a and b must be non-negative.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
