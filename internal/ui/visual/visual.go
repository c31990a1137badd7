// Package visual renders problem hint descriptors as terminal art.
// Each renderer takes the descriptor from problemgen and returns a
// plain multi-line string; styling is applied here, layout by the
// calling screen.
package visual

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mathspiral/mathspiral/internal/problemgen"
	"github.com/mathspiral/mathspiral/internal/ui/theme"
)

// Render dispatches on the hint kind. A nil hint or TierNone hint
// renders as the empty string.
func Render(h *problemgen.Hint) string {
	if h == nil || h.Tier == problemgen.TierNone {
		return ""
	}
	switch h.Kind {
	case problemgen.HintFractionBars:
		if h.FractionBars != nil {
			return FractionBars(h.FractionBars)
		}
	case problemgen.HintNumberLine:
		if h.NumberLine != nil {
			return NumberLine(h.NumberLine)
		}
	case problemgen.HintArrayModel:
		if h.ArrayModel != nil {
			return ArrayModel(h.ArrayModel)
		}
	case problemgen.HintScalingBar:
		if h.ScalingBar != nil {
			return ScalingBar(h.ScalingBar)
		}
	case problemgen.HintDoubleArray:
		if h.DoubleArray != nil {
			return DoubleArray(h.DoubleArray)
		}
	}
	return ""
}

const cellWidth = 3

// bar renders a single fraction bar of den cells with num shaded.
func bar(num, den int, accent lipgloss.Style) string {
	if den <= 0 {
		return ""
	}
	shaded := accent.Render(strings.Repeat("█", cellWidth))
	blank := lipgloss.NewStyle().Foreground(theme.TextDim).Render(strings.Repeat("░", cellWidth))

	var b strings.Builder
	b.WriteString("|")
	for i := 0; i < den; i++ {
		if i < num {
			b.WriteString(shaded)
		} else {
			b.WriteString(blank)
		}
		b.WriteString("|")
	}
	return b.String()
}

// FractionBars renders two labeled bars stacked vertically.
func FractionBars(h *problemgen.FractionBarsHint) string {
	accent := lipgloss.NewStyle().Foreground(theme.Fractions)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	leftLabel := fmt.Sprintf("%d/%d", h.Left.Num, h.Left.Den)
	lines := []string{
		bar(h.Left.Num, h.Left.Den, accent) + "  " + dim.Render(leftLabel),
	}

	rightNum := h.Right.Num
	rightLabel := fmt.Sprintf("%d/%d", h.Right.Num, h.Right.Den)
	if h.RightLabel != "" {
		rightLabel = h.RightLabel
	}
	if h.RightNumeratorHidden {
		rightNum = 0
		rightLabel = fmt.Sprintf("?/%d", h.Right.Den)
	}
	lines = append(lines, bar(rightNum, h.Right.Den, accent)+"  "+dim.Render(rightLabel))

	if h.EquivMode {
		lines = append(lines, dim.Render("Same length, different cuts."))
	}
	return strings.Join(lines, "\n")
}

// NumberLine renders an integer line with optional hop, marker,
// highlighted points, fractional ticks and counter chips.
func NumberLine(h *problemgen.NumberLineHint) string {
	if h.LineMax <= h.LineMin {
		return ""
	}
	if h.FractionDenom > 0 {
		return fractionLine(h)
	}

	span := h.LineMax - h.LineMin
	step := 1
	// Keep the rendered line under roughly 60 cells.
	for span/step > 20 {
		step *= 2
	}

	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	accent := lipgloss.NewStyle().Foreground(theme.Integers).Bold(true)

	highlighted := func(v int) bool {
		if h.HasMarked && int(h.Marked) == v && h.Marked == float64(int(h.Marked)) {
			return true
		}
		for _, p := range h.Points {
			if p == v {
				return true
			}
		}
		if h.HasHop && (v == h.Start || v == h.Result) {
			return true
		}
		return false
	}

	var ticks, labels strings.Builder
	for v := h.LineMin; v <= h.LineMax; v += step {
		mark := "·"
		if v == 0 {
			mark = "+"
		}
		if highlighted(v) {
			ticks.WriteString(accent.Render("●"))
		} else {
			ticks.WriteString(dim.Render(mark))
		}
		label := fmt.Sprintf("%d", v)
		if v+step <= h.LineMax {
			ticks.WriteString(dim.Render("──"))
			labels.WriteString(padTo(label, 3))
		} else {
			labels.WriteString(label)
		}
	}

	lines := []string{ticks.String(), dim.Render(labels.String())}

	if h.HasHop {
		dir := "right"
		if h.Move < 0 {
			dir = "left"
		}
		hop := fmt.Sprintf("Start at %d, hop %d %s, land on %d.", h.Start, absInt(h.Move), dir, h.Result)
		lines = append(lines, dim.Render(hop))
	}
	if h.Counters != nil {
		lines = append(lines, counters(h.Counters))
	}
	return strings.Join(lines, "\n")
}

// fractionLine renders a 0..LineMax line with FractionDenom ticks per
// unit and the marked value as a dot.
func fractionLine(h *problemgen.NumberLineHint) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	accent := lipgloss.NewStyle().Foreground(theme.Fractions).Bold(true)

	den := h.FractionDenom
	total := (h.LineMax - h.LineMin) * den

	var ticks strings.Builder
	for i := 0; i <= total; i++ {
		value := float64(h.LineMin) + float64(i)/float64(den)
		switch {
		case h.HasMarked && closeEnough(value, h.Marked):
			ticks.WriteString(accent.Render("●"))
		case i%den == 0:
			ticks.WriteString(dim.Render("+"))
		default:
			ticks.WriteString(dim.Render("·"))
		}
		if i < total {
			ticks.WriteString(dim.Render("──"))
		}
	}

	var labels strings.Builder
	for v := h.LineMin; v <= h.LineMax; v++ {
		label := fmt.Sprintf("%d", v)
		if v < h.LineMax {
			labels.WriteString(padTo(label, 3*den))
		} else {
			labels.WriteString(label)
		}
	}

	return ticks.String() + "\n" + dim.Render(labels.String())
}

// counters renders a two-color chip row for an integer pair.
func counters(c *problemgen.CounterData) string {
	pos := lipgloss.NewStyle().Foreground(theme.Success)
	neg := lipgloss.NewStyle().Foreground(theme.Error)

	chip := func(v int) string {
		n := absInt(v)
		if n > 12 {
			n = 12
		}
		if v >= 0 {
			return pos.Render(strings.Repeat("⊕ ", n))
		}
		return neg.Render(strings.Repeat("⊖ ", n))
	}
	return strings.TrimRight(chip(c.A), " ") + "\n" + strings.TrimRight(chip(c.B), " ")
}

// ArrayModel renders a rows-by-cols dot grid. A double highlight adds
// a second copy of the rows; a half highlight dims the bottom half.
func ArrayModel(h *problemgen.ArrayModelHint) string {
	if h.Rows <= 0 || h.Cols <= 0 {
		return ""
	}
	base := lipgloss.NewStyle().Foreground(theme.Multiplication)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	row := strings.TrimRight(strings.Repeat("● ", h.Cols), " ")

	var lines []string
	switch h.Highlight {
	case problemgen.HighlightDouble:
		for i := 0; i < h.Rows; i++ {
			lines = append(lines, base.Render(row))
		}
		for i := 0; i < h.Rows; i++ {
			lines = append(lines, dim.Render(row))
		}
		lines = append(lines, dim.Render(fmt.Sprintf("%d rows, doubled", h.Rows)))
	case problemgen.HighlightHalf:
		keep := h.Rows / 2
		for i := 0; i < keep; i++ {
			lines = append(lines, base.Render(row))
		}
		for i := keep; i < h.Rows; i++ {
			lines = append(lines, dim.Render(row))
		}
		lines = append(lines, dim.Render(fmt.Sprintf("half of %d rows", h.Rows)))
	default:
		for i := 0; i < h.Rows; i++ {
			lines = append(lines, base.Render(row))
		}
		lines = append(lines, dim.Render(fmt.Sprintf("%d rows of %d", h.Rows, h.Cols)))
	}
	return strings.Join(lines, "\n")
}

// ScalingBar renders a base bar and its scaled copy. Multiplier zero
// renders an empty scaled bar.
func ScalingBar(h *problemgen.ScalingBarHint) string {
	if h.Base <= 0 {
		return ""
	}
	accent := lipgloss.NewStyle().Foreground(theme.Multiplication)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	unit := h.Base
	if unit > 12 {
		unit = 12
	}
	baseBar := accent.Render(strings.Repeat("▰", unit))

	scaledLen := unit * h.Multiplier
	if scaledLen > 48 {
		scaledLen = 48
	}
	scaled := dim.Render("(empty)")
	if scaledLen > 0 {
		scaled = accent.Render(strings.Repeat("▰", scaledLen))
	}

	return baseBar + "  " + dim.Render(fmt.Sprintf("%d", h.Base)) + "\n" +
		scaled + "  " + dim.Render(fmt.Sprintf("%d x %d", h.Base, h.Multiplier))
}

// DoubleArray renders two labeled arrays side by side for product
// comparison.
func DoubleArray(h *problemgen.DoubleArrayHint) string {
	left := plainArray(h.Left)
	right := plainArray(h.Right)

	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	leftBlock := left + "\n" + dim.Render(fmt.Sprintf("%d x %d", h.Left.Rows, h.Left.Cols))
	rightBlock := right + "\n" + dim.Render(fmt.Sprintf("%d x %d", h.Right.Rows, h.Right.Cols))

	return lipgloss.JoinHorizontal(lipgloss.Top, leftBlock, "    ", rightBlock)
}

func plainArray(a problemgen.ArrayModelHint) string {
	style := lipgloss.NewStyle().Foreground(theme.Multiplication)
	row := strings.TrimRight(strings.Repeat("● ", a.Cols), " ")
	rows := make([]string, 0, a.Rows)
	for i := 0; i < a.Rows; i++ {
		rows = append(rows, style.Render(row))
	}
	return strings.Join(rows, "\n")
}

func padTo(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func closeEnough(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}
