package ui

import (
	"fmt"
	"strings"
)

// RunSummary describes a finished chart session.
type RunSummary struct {
	// Outcome is what ended the session, e.g. "closed" or "key press".
	Outcome string
	// Submitted counts values the host sent.
	Submitted int
	// Skipped counts input that couldn't be turned into a value.
	Skipped int
	// Shown holds the values in the final frame.
	Shown []float64
	// Failed marks a session the renderer gave up on.
	Failed bool
}

// summarySparkWidth caps the sparkline so the summary fits one line.
const summarySparkWidth = 40

// RenderRunSummary prints one line about a finished session, for the normal
// screen after the chart has gone:
//
//	✓ 300 samples (closed)  ▇▆▅▄▃▂▂▁  last 0.1234
func RenderRunSummary(s RunSummary) string {
	symbol, style := SymbolSuccess, SuccessStyle()
	switch {
	case s.Failed:
		symbol, style = SymbolFail, ErrorStyle()
	case s.Outcome == "key press":
		symbol, style = SymbolStopped, WarningStyle()
	case s.Skipped > 0:
		symbol, style = SymbolWarning, WarningStyle()
	}

	parts := []string{style.Render(symbol) + fmt.Sprintf(" %d samples", s.Submitted)}
	if s.Outcome != "" {
		parts[0] += MutedStyle().Render(" (" + s.Outcome + ")")
	}
	if spark := RenderSparkline(s.Shown, summarySparkWidth); spark != "" {
		parts = append(parts, spark)
	}
	if len(s.Shown) > 0 {
		parts = append(parts, fmt.Sprintf("last %.4f", s.Shown[len(s.Shown)-1]))
	}
	if s.Skipped > 0 {
		parts = append(parts, WarningStyle().Render(fmt.Sprintf("%d lines skipped", s.Skipped)))
	}

	return strings.Join(parts, "  ")
}
