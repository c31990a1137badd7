package problemgen

import (
	"errors"
	"testing"
)

func TestCheckAnswerInteger(t *testing.T) {
	p := &Problem{Format: FormatNumeric, AnswerType: AnswerTypeInteger, Answer: "7"}

	tests := []struct {
		input string
		want  bool
	}{
		{"7", true},
		{" 7 ", true},
		{"007", true},
		{"+7", true},
		{"-7", false},
		{"8", false},
		{"seven", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := CheckAnswer(tt.input, p); got != tt.want {
			t.Errorf("CheckAnswer(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestCheckAnswerNegativeInteger(t *testing.T) {
	p := &Problem{Format: FormatNumeric, AnswerType: AnswerTypeInteger, Answer: "-15"}
	if !CheckAnswer("-15", p) {
		t.Error("exact negative should match")
	}
	if CheckAnswer("15", p) {
		t.Error("sign must matter")
	}
}

func TestCheckAnswerFraction(t *testing.T) {
	p := &Problem{Format: FormatNumeric, AnswerType: AnswerTypeFraction, Answer: "1/2"}

	tests := []struct {
		input string
		want  bool
	}{
		{"1/2", true},
		{"2/4", true},
		{"3/6", true},
		{" 2 / 4 ", true},
		{"-1/-2", true},
		{"1/3", false},
		{"2/3", false},
		{"1/0", false},
		{"half", false},
	}
	for _, tt := range tests {
		if got := CheckAnswer(tt.input, p); got != tt.want {
			t.Errorf("CheckAnswer(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestCheckAnswerMultipleChoice(t *testing.T) {
	p := &Problem{
		Format:     FormatMultipleChoice,
		AnswerType: AnswerTypeSymbol,
		Answer:     ">",
		Choices:    []string{"<", "=", ">"},
	}

	tests := []struct {
		input string
		want  bool
	}{
		{">", true},
		{"3", true}, // index of ">"
		{"1", false},
		{"<", false},
		{"4", false}, // out of range falls through to text match
		{"", false},
	}
	for _, tt := range tests {
		if got := CheckAnswer(tt.input, p); got != tt.want {
			t.Errorf("CheckAnswer(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestCheckAnswerNumericChoices(t *testing.T) {
	// Integer number line, magnitude, and scaling problems show
	// numbers as the choices. Typing one of those numbers must mean
	// that choice, never a position.
	p := &Problem{
		Format:     FormatMultipleChoice,
		AnswerType: AnswerTypeInteger,
		Answer:     "-16",
		Choices:    []string{"7", "-16", "3", "-4"},
	}

	if err := ValidateAnswer("-16", p); err != nil {
		t.Fatalf("canonical answer rejected: %v", err)
	}
	if !CheckAnswer("-16", p) {
		t.Error("canonical answer graded wrong")
	}
	// "3" names the third choice, not position 3.
	if CheckAnswer("3", p) {
		t.Error(`"3" should grade as the choice text, which is wrong here`)
	}
	// Input matching no choice text still selects by position.
	if err := ValidateAnswer("2", p); err != nil {
		t.Fatalf("positional input rejected: %v", err)
	}
	if !CheckAnswer("2", p) {
		t.Error("position 2 should select the correct choice")
	}
}

func TestCheckAnswerWordCaseInsensitive(t *testing.T) {
	p := &Problem{
		Format:     FormatMultipleChoice,
		AnswerType: AnswerTypeWord,
		Answer:     "bigger",
		Choices:    []string{"bigger", "same", "zero", "smaller"},
	}
	if !CheckAnswer("Bigger", p) {
		t.Error("word match should be case-insensitive")
	}
	if !CheckAnswer("1", p) {
		t.Error("index selection should work for word choices")
	}
}

func TestValidateAnswer(t *testing.T) {
	numeric := &Problem{Format: FormatNumeric, AnswerType: AnswerTypeInteger, Answer: "3"}
	mc := &Problem{
		Format:     FormatMultipleChoice,
		AnswerType: AnswerTypeFraction,
		Answer:     "1/2",
		Choices:    []string{"1/2", "1/3", "2/3", "3/4"},
	}

	tests := []struct {
		name    string
		p       *Problem
		input   string
		wantErr bool
	}{
		{"valid integer", numeric, "42", false},
		{"wrong but parseable", numeric, "41", false},
		{"empty", numeric, "", true},
		{"garbage", numeric, "banana", true},
		{"mc by index", mc, "2", false},
		{"mc by text", mc, "2/3", false},
		{"mc index out of range", mc, "5", true},
		{"mc not a choice", mc, "7/8", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAnswer(tt.input, tt.p)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateAnswer(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				var ie *InvalidAnswerError
				if !errors.As(err, &ie) {
					t.Fatalf("error type = %T, want *InvalidAnswerError", err)
				}
			}
		})
	}
}

func TestNormalizeFractionSign(t *testing.T) {
	got, err := normalizeAnswer("2/-4", AnswerTypeFraction)
	if err != nil {
		t.Fatal(err)
	}
	if got != "-1/2" {
		t.Errorf("normalizeAnswer(2/-4) = %q, want -1/2", got)
	}
}
