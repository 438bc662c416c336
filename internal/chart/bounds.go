package chart

import (
	"fmt"
	"math"

	"github.com/rileyhilliard/gradtop/internal/window"
)

// AxisBounds is the displayed range of one axis.
type AxisBounds struct {
	Min float64
	Max float64
}

// fallbackBounds is used for an axis with nothing to show.
var fallbackBounds = AxisBounds{Min: 0, Max: 1}

// Mid returns the midpoint. Halving first keeps it finite for any finite bounds.
func (a AxisBounds) Mid() float64 {
	return a.Min/2 + a.Max/2
}

// Ticks returns the start, midpoint, and end of the range.
func (a AxisBounds) Ticks() [3]float64 {
	return [3]float64{a.Min, a.Mid(), a.Max}
}

// Bounds holds both axis ranges for one frame.
type Bounds struct {
	Step  AxisBounds
	Value AxisBounds
}

// ComputeBounds derives the axis ranges for the given window contents.
//
// The step axis spans the first to the last step, or 0..1 when empty. The
// value axis spans the smallest to the largest finite value, or 0..1 when
// there is none. NaN and infinite values are plotted as gaps and never
// stretch the range.
func ComputeBounds(samples []window.Sample) Bounds {
	b := Bounds{Step: fallbackBounds, Value: fallbackBounds}
	if len(samples) == 0 {
		return b
	}

	b.Step = AxisBounds{
		Min: float64(samples[0].Step),
		Max: float64(samples[len(samples)-1].Step),
	}

	if v, ok := valueBounds(samples); ok {
		b.Value = v
	}
	return b
}

func valueBounds(samples []window.Sample) (AxisBounds, bool) {
	minVal, maxVal := math.Inf(1), math.Inf(-1)
	found := false
	for _, s := range samples {
		if !isFinite(s.Value) {
			continue
		}
		found = true
		if s.Value < minVal {
			minVal = s.Value
		}
		if s.Value > maxVal {
			maxVal = s.Value
		}
	}
	if !found {
		return AxisBounds{}, false
	}
	return AxisBounds{Min: minVal, Max: maxVal}, true
}

// StepLabels formats the step axis ticks as whole numbers.
func StepLabels(a AxisBounds) [3]string {
	return formatTicks(a, "%.0f")
}

// ValueLabels formats the value axis ticks with three decimals.
func ValueLabels(a AxisBounds) [3]string {
	return formatTicks(a, "%.3f")
}

func formatTicks(a AxisBounds, format string) [3]string {
	var out [3]string
	for i, v := range a.Ticks() {
		out[i] = formatLabel(format, v)
	}
	return out
}

// formatLabel never lets NaN or Inf reach the screen.
func formatLabel(format string, v float64) string {
	if !isFinite(v) {
		return "-"
	}
	return fmt.Sprintf(format, v)
}

// normalize maps v into 0..1 within a. A zero-width range maps to the middle.
func normalize(v float64, a AxisBounds) float64 {
	span := a.Max/2 - a.Min/2
	if span <= 0 || !isFinite(span) {
		return 0.5
	}
	return (v/2 - a.Min/2) / span
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
