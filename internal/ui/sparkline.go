package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline block characters representing 8 vertical levels (lowest to highest).
const sparklineBlocks = "▁▂▃▄▅▆▇█"

// sparklineBlockRunes provides indexed access to block characters.
var sparklineBlockRunes = []rune(sparklineBlocks)

// sparklineGap stands in for values that can't be placed (NaN, ±Inf).
const sparklineGap = ' '

// RenderSparkline creates a one-line picture of the most recent width values.
// Levels are scaled between the finite min and max. The color follows the
// overall direction: green when the series ends lower than it started (a loss
// going down), yellow when it ends higher.
func RenderSparkline(data []float64, width int) string {
	if len(data) == 0 || width <= 0 {
		return ""
	}

	if len(data) > width {
		data = data[len(data)-width:]
	}

	minVal, maxVal := math.Inf(1), math.Inf(-1)
	for _, v := range data {
		if !isFinite(v) {
			continue
		}
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}

	var sb strings.Builder
	sb.Grow(len(data) * 3)

	numLevels := len(sparklineBlockRunes)
	valueRange := maxVal - minVal

	for _, v := range data {
		if !isFinite(v) {
			sb.WriteRune(sparklineGap)
			continue
		}

		level := numLevels / 2
		if valueRange > 0 && isFinite(valueRange) {
			normalized := (v - minVal) / valueRange
			level = int(normalized * float64(numLevels-1))
			if level < 0 {
				level = 0
			} else if level >= numLevels {
				level = numLevels - 1
			}
		}
		sb.WriteRune(sparklineBlockRunes[level])
	}

	return lipgloss.NewStyle().Foreground(trendColor(data)).Render(sb.String())
}

// trendColor compares the first and last finite values.
func trendColor(data []float64) lipgloss.Color {
	first, last := math.NaN(), math.NaN()
	for _, v := range data {
		if !isFinite(v) {
			continue
		}
		if math.IsNaN(first) {
			first = v
		}
		last = v
	}

	switch {
	case math.IsNaN(first):
		return ColorMuted
	case last < first:
		return ColorSuccess
	case last > first:
		return ColorWarning
	default:
		return ColorInfo
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
