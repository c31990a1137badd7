package adaptation

// MinLevel and MaxLevel bound both adaptation axes.
const (
	MinLevel = 1
	MaxLevel = 5
)

// State holds the two adaptation axes for a (student, skill) pair.
// Difficulty governs the complexity of generated problems; VisualLevel
// governs how much visual scaffolding is requested:
//
//	5-4 = full static visuals
//	3-2 = interactive visuals
//	1   = no visuals
//
// Both fields are always within [MinLevel, MaxLevel].
type State struct {
	Difficulty  int `json:"difficulty"`
	VisualLevel int `json:"visual_level"`
}

// DefaultState is the starting point for a student with no completed
// sessions on a skill: easiest content, full scaffolding.
func DefaultState() State {
	return State{Difficulty: MinLevel, VisualLevel: MaxLevel}
}

// Valid reports whether both axes are within bounds.
func (s State) Valid() bool {
	return s.Difficulty >= MinLevel && s.Difficulty <= MaxLevel &&
		s.VisualLevel >= MinLevel && s.VisualLevel <= MaxLevel
}
