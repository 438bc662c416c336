package chart

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/gradtop/internal/window"
)

// Default chart dimensions and titles
const (
	DefaultWidth      = 80
	DefaultHeight     = 24
	DefaultStepTitle  = "Epoch"
	DefaultValueTitle = "Loss"
	DefaultSeries     = "loss"
)

// Minimum inner size (inside the border) needed to draw a plot.
// Rows: title line, one plot row, axis line, step labels, step title.
const (
	minInnerWidth  = 12
	minInnerHeight = 5
)

// legendMarker precedes the series name in the legend.
const legendMarker = "⣿"

// Options controls the size and text of a rendered chart.
type Options struct {
	// Width and Height are the full size of the chart region, border included.
	Width  int
	Height int

	StepTitle  string
	ValueTitle string
	Series     string
}

// DefaultOptions returns options for an 80x24 chart with the default titles.
func DefaultOptions() Options {
	return Options{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		StepTitle:  DefaultStepTitle,
		ValueTitle: DefaultValueTitle,
		Series:     DefaultSeries,
	}
}

// Render draws one frame: a bordered region with the value axis on the left,
// the step axis along the bottom, and the samples as a braille line.
//
// Each axis is labeled at its start, midpoint, and end. Steps are printed as
// whole numbers, values with three decimals. Regions too small to hold a
// plot get a short notice instead.
func Render(samples []window.Sample, opts Options) string {
	innerW := opts.Width - 2
	innerH := opts.Height - 2
	if innerW < minInnerWidth || innerH < minInnerHeight {
		return renderTooSmall(opts)
	}

	b := ComputeBounds(samples)
	valueLabels := ValueLabels(b.Value)
	stepLabels := StepLabels(b.Step)

	labelW := 0
	for _, l := range valueLabels {
		labelW = max(labelW, lipgloss.Width(l))
	}

	plotW := innerW - labelW - 1
	plotH := innerH - 4
	if plotW < 2 {
		return renderTooSmall(opts)
	}

	c := newCanvas(plotW, plotH)
	plotSeries(c, samples, b)

	lines := make([]string, 0, innerH)
	lines = append(lines, renderHeader(opts, innerW))

	rowLabels := valueAxisLabels(valueLabels, plotH)
	for i, row := range c.rows() {
		label := padLeft(rowLabels[i], labelW)
		lines = append(lines, AxisStyle.Render(label+"│")+SeriesStyle.Render(row))
	}

	lines = append(lines, AxisStyle.Render(strings.Repeat(" ", labelW)+"└"+strings.Repeat("─", plotW)))
	lines = append(lines, AxisStyle.Render(strings.Repeat(" ", labelW+1)+spreadLabels(stepLabels, plotW)))
	lines = append(lines, alignRight(TitleStyle.Render(opts.StepTitle), innerW))

	return FrameStyle.Width(innerW).Render(strings.Join(lines, "\n"))
}

// plotSeries connects consecutive finite samples with line segments.
// Non-finite values break the line.
func plotSeries(c *canvas, samples []window.Sample, b Bounds) {
	var px, py int
	connected := false
	for _, s := range samples {
		if !isFinite(s.Value) {
			connected = false
			continue
		}
		x := scaleToDots(float64(s.Step), b.Step, c.dotsWide())
		y := scaleToDots(s.Value, b.Value, c.dotsHigh())
		if connected {
			c.line(px, py, x, y)
		} else {
			c.set(x, y)
		}
		px, py, connected = x, y, true
	}
}

// scaleToDots maps v onto 0..dots-1.
func scaleToDots(v float64, a AxisBounds, dots int) int {
	pos := normalize(v, a) * float64(dots-1)
	return clampInt(int(pos+0.5), dots-1)
}

// valueAxisLabels places max at the top row, min at the bottom row, and the
// midpoint on the middle row when there are at least three rows.
func valueAxisLabels(labels [3]string, rows int) []string {
	out := make([]string, rows)
	out[rows-1] = labels[0]
	if rows >= 3 {
		out[(rows-1)/2] = labels[1]
	}
	out[0] = labels[2]
	return out
}

// spreadLabels lays out start, mid, and end labels across width columns.
// The mid label is dropped when it would collide with either end.
func spreadLabels(labels [3]string, width int) string {
	line := []rune(strings.Repeat(" ", width))
	start, mid, end := []rune(labels[0]), []rune(labels[1]), []rune(labels[2])

	put := func(at int, text []rune) {
		for i, r := range text {
			if at+i >= 0 && at+i < len(line) {
				line[at+i] = r
			}
		}
	}

	put(0, start)
	endAt := width - len(end)
	if endAt > len(start) {
		put(endAt, end)
	} else {
		endAt = width
	}

	midAt := (width - len(mid)) / 2
	if midAt > len(start) && midAt+len(mid) < endAt {
		put(midAt, mid)
	}

	return string(line)
}

func renderHeader(opts Options, width int) string {
	title := TitleStyle.Render(opts.ValueTitle)
	if opts.Series == "" {
		return title
	}
	legend := LegendStyle.Render(SeriesStyle.Render(legendMarker) + " " + opts.Series)
	gap := width - lipgloss.Width(title) - lipgloss.Width(legend)
	if gap < 1 {
		return title
	}
	return title + strings.Repeat(" ", gap) + legend
}

func renderTooSmall(opts Options) string {
	w := max(opts.Width-2, 0)
	return FrameStyle.Width(w).Render(NoticeStyle.Render("terminal too small"))
}

func padLeft(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return strings.Repeat(" ", gap) + s
}

func alignRight(s string, width int) string {
	return padLeft(s, width)
}
