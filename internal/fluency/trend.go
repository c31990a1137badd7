package fluency

// Trend summarizes how visual-support usage is moving across a
// student's recent completed sessions: "decreasing" means scaffolding
// is fading (good), "increasing" means the student is leaning on it
// more. Fewer than three sessions reads as stable.
func Trend(visualLevels []int) string {
	if len(visualLevels) < 3 {
		return "stable"
	}
	recent := visualLevels[len(visualLevels)-3:]
	switch {
	case recent[2] < recent[0]:
		return "decreasing"
	case recent[2] > recent[0]:
		return "increasing"
	default:
		return "stable"
	}
}
