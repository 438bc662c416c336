package monitor

import (
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/gradtop/internal/chart"
	"github.com/rileyhilliard/gradtop/internal/config"
	"github.com/rileyhilliard/gradtop/internal/errors"
	"github.com/rileyhilliard/gradtop/internal/logger"
	"github.com/rileyhilliard/gradtop/internal/window"
)

// DefaultInterval is the render cycle: one drain, redraw, and input poll.
const DefaultInterval = 16 * time.Millisecond

// maxFPS is the highest frame rate Bubble Tea's renderer accepts.
const maxFPS = 120

// Options configures a Monitor.
type Options struct {
	// Capacity is the number of most recent samples shown.
	Capacity int

	// Interval is the render cycle period.
	Interval time.Duration

	// QueueLimit caps samples waiting for the render goroutine. Zero means
	// unbounded. At the limit the oldest waiting sample is dropped.
	QueueLimit int

	// Chart holds titles and the size used until the terminal reports its own.
	Chart chart.Options

	// AltScreen draws on the alternate screen so the host's scrollback is
	// untouched. Without it the last frame stays visible after closing.
	AltScreen bool

	// ShowHelp adds a one-line key hint under the chart.
	ShowHelp bool

	// Input is read for key presses. Nil means stdin, falling back to the
	// controlling terminal when stdin is not one.
	Input io.Reader

	// InputTTY reads keys from the controlling terminal even when stdin is a
	// terminal. Used when stdin carries data.
	InputTTY bool

	// DisableInput turns key handling off entirely.
	DisableInput bool

	// Output receives frames. Nil means stdout.
	Output io.Writer

	// Logger receives diagnostics. It must not write to the terminal the
	// chart is drawn on.
	Logger logger.Logger
}

// DefaultOptions returns the stock 30-sample, 16ms configuration.
func DefaultOptions() Options {
	return Options{
		Capacity:  window.DefaultCapacity,
		Interval:  DefaultInterval,
		Chart:     chart.DefaultOptions(),
		AltScreen: true,
		ShowHelp:  true,
		Logger:    logger.Noop(),
	}
}

// FromConfig builds options from a loaded config file.
func FromConfig(cfg *config.Config) Options {
	opts := DefaultOptions()
	if cfg == nil {
		return opts
	}

	opts.Capacity = cfg.Window.Capacity
	opts.Interval = cfg.Render.Interval
	opts.AltScreen = cfg.Render.AltScreen
	opts.ShowHelp = cfg.Render.ShowHelp
	opts.QueueLimit = cfg.Queue.Limit
	if cfg.Render.Width > 0 {
		opts.Chart.Width = cfg.Render.Width
	}
	if cfg.Render.Height > 0 {
		opts.Chart.Height = cfg.Render.Height
	}
	if cfg.Chart.StepTitle != "" {
		opts.Chart.StepTitle = cfg.Chart.StepTitle
	}
	if cfg.Chart.ValueTitle != "" {
		opts.Chart.ValueTitle = cfg.Chart.ValueTitle
	}
	if cfg.Chart.Series != "" {
		opts.Chart.Series = cfg.Chart.Series
	}
	return opts
}

// normalize fills zero values with defaults and rejects the rest.
func (o Options) normalize() (Options, error) {
	if o.Capacity <= 0 {
		o.Capacity = window.DefaultCapacity
	}
	if o.Interval <= 0 {
		o.Interval = DefaultInterval
	}
	if o.QueueLimit < 0 {
		return o, errors.New(errors.ErrConfig,
			fmt.Sprintf("Queue limit can't be negative (got %d)", o.QueueLimit),
			"Use 0 for an unbounded queue, or a positive number of samples.")
	}
	if o.Chart.Width <= 0 {
		o.Chart.Width = chart.DefaultWidth
	}
	if o.Chart.Height <= 0 {
		o.Chart.Height = chart.DefaultHeight
	}
	if o.Logger == nil {
		o.Logger = logger.Noop()
	}
	return o, nil
}

// programOptions translates options into Bubble Tea program options.
// The host process keeps its own signal handling.
func (o Options) programOptions() []tea.ProgramOption {
	opts := []tea.ProgramOption{
		tea.WithoutSignalHandler(),
		tea.WithFPS(fpsFor(o.Interval)),
	}
	if o.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	switch {
	case o.DisableInput:
		opts = append(opts, tea.WithInput(nil))
	case o.Input != nil:
		opts = append(opts, tea.WithInput(o.Input))
	case o.InputTTY:
		opts = append(opts, tea.WithInputTTY())
	}

	if o.Output != nil {
		opts = append(opts, tea.WithOutput(o.Output))
	}
	return opts
}

// fpsFor matches the renderer's frame rate to the render cycle.
func fpsFor(interval time.Duration) int {
	if interval <= 0 {
		return maxFPS
	}
	fps := int(time.Second / interval)
	if fps < 1 {
		return 1
	}
	if fps > maxFPS {
		return maxFPS
	}
	return fps
}
