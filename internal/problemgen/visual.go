package problemgen

// Tier is the scaffolding intensity a hint descriptor requests.
// The generator only tags the tier; rendering belongs to a UI
// collaborator.
type Tier string

const (
	TierNone        Tier = "none"        // visual level 1
	TierInteractive Tier = "interactive" // visual levels 2-3
	TierStatic      Tier = "static"      // visual levels 4-5
)

// TierForLevel maps a visual-support level (1-5) to a rendering tier.
func TierForLevel(level int) Tier {
	switch {
	case level <= 1:
		return TierNone
	case level <= 3:
		return TierInteractive
	default:
		return TierStatic
	}
}

// HintKind tags which visual model a hint describes.
type HintKind string

const (
	HintFractionBars HintKind = "fraction_bars"
	HintNumberLine   HintKind = "number_line"
	HintArrayModel   HintKind = "array_model"
	HintScalingBar   HintKind = "scaling_bar"
	HintDoubleArray  HintKind = "double_array"
)

// Hint is the tagged visual descriptor attached to every problem.
// Exactly one of the kind-specific fields is set, matching Kind.
// The generator guarantees internal consistency of the fields (e.g.
// numerators never exceed denominators) but not visual fidelity.
type Hint struct {
	Kind HintKind `json:"kind"`
	Tier Tier     `json:"tier"`

	FractionBars *FractionBarsHint `json:"fraction_bars,omitempty"`
	NumberLine   *NumberLineHint   `json:"number_line,omitempty"`
	ArrayModel   *ArrayModelHint   `json:"array_model,omitempty"`
	ScalingBar   *ScalingBarHint   `json:"scaling_bar,omitempty"`
	DoubleArray  *DoubleArrayHint  `json:"double_array,omitempty"`
}

// FractionBarsHint describes two fraction bars side by side.
type FractionBarsHint struct {
	Left  Fraction `json:"left"`
	Right Fraction `json:"right"`

	// RightLabel overrides the right bar's caption, e.g. "1/2" for a
	// benchmark expressed on the left fraction's denominator.
	RightLabel string `json:"right_label,omitempty"`

	// EquivMode marks an equivalent-fractions task: same value, the
	// right bar cut into more parts.
	EquivMode bool `json:"equiv_mode,omitempty"`

	// RightNumeratorHidden is set in equiv mode when the right bar's
	// shaded count is the answer and must not be revealed.
	RightNumeratorHidden bool `json:"right_numerator_hidden,omitempty"`
}

// NumberLineHint describes a number line between LineMin and LineMax.
type NumberLineHint struct {
	LineMin int `json:"line_min"`
	LineMax int `json:"line_max"`

	// Hop-style feedback for integer operations: start at Start, move
	// by Move, land on Result.
	Start  int  `json:"start,omitempty"`
	Move   int  `json:"move,omitempty"`
	Result int  `json:"result,omitempty"`
	HasHop bool `json:"has_hop,omitempty"`

	// Marked is a highlighted position for identification tasks.
	Marked    float64 `json:"marked,omitempty"`
	HasMarked bool    `json:"has_marked,omitempty"`

	// FractionDenom sets tick granularity for fractional placement.
	// Zero means integer ticks.
	FractionDenom int `json:"fraction_denom,omitempty"`

	// Points are highlighted values for magnitude comparisons.
	Points []int `json:"points,omitempty"`

	// Counters requests a two-color chip model alongside the line for
	// small-magnitude integer pairs.
	Counters *CounterData `json:"counter_data,omitempty"`
}

// CounterData is the operand pair for a chip model.
type CounterData struct {
	A int `json:"a"`
	B int `json:"b"`
}

// Highlight marks a derived-fact teaching overlay on an array model.
type Highlight string

const (
	HighlightNone   Highlight = ""
	HighlightDouble Highlight = "double"
	HighlightHalf   Highlight = "half"
)

// ArrayModelHint describes a rows-by-cols dot array.
type ArrayModelHint struct {
	Rows      int       `json:"rows"`
	Cols      int       `json:"cols"`
	Highlight Highlight `json:"highlight,omitempty"`
}

// ScalingBarHint describes a base bar and its scaled copy.
type ScalingBarHint struct {
	Base       int `json:"base"`
	Multiplier int `json:"multiplier"`
}

// DoubleArrayHint describes two arrays for product comparison.
type DoubleArrayHint struct {
	Left  ArrayModelHint `json:"left"`
	Right ArrayModelHint `json:"right"`
}
