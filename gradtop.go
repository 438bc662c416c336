// Package gradtop draws a live terminal chart of a scalar metric, such as a
// training loss, while the computation producing it keeps running.
//
// The chart runs on its own goroutine. Feeding it never blocks and never
// fails, and closing it restores the terminal exactly once:
//
//	m, err := gradtop.New(ctx, gradtop.WithTitles("Step", "Train loss"))
//	if err != nil {
//		return err
//	}
//	defer m.Close()
//
//	for step := range steps {
//		m.Tick(trainStep(step))
//	}
//
// Pressing any key in the chart ends the session early; later samples are
// discarded and IsRunning reports false.
package gradtop

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/rileyhilliard/gradtop/internal/config"
	"github.com/rileyhilliard/gradtop/internal/logger"
	"github.com/rileyhilliard/gradtop/internal/monitor"
	"github.com/rileyhilliard/gradtop/internal/window"
)

// Monitor is a running chart. See New.
type Monitor = monitor.Monitor

// Sample is one plotted point: the step it was accepted at and its value.
type Sample = window.Sample

// Config is the file-backed configuration (.gradtop.yaml).
type Config = config.Config

// Logger receives diagnostics from the render goroutine.
type Logger = logger.Logger

// State is the lifecycle phase of a Monitor.
type State = monitor.State

// Lifecycle states.
const (
	StateRunning      = monitor.StateRunning
	StateShuttingDown = monitor.StateShuttingDown
	StateTerminated   = monitor.StateTerminated
)

// DefaultCapacity is the number of samples shown when none is configured.
const DefaultCapacity = window.DefaultCapacity

// Option customizes a Monitor.
type Option func(*monitor.Options)

// New starts a chart and returns immediately. The caller must call Close,
// which waits until the terminal has been restored.
func New(ctx context.Context, opts ...Option) (*Monitor, error) {
	o := monitor.DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return monitor.New(ctx, o)
}

// LoadConfig finds and loads .gradtop.yaml (or the file at explicit, when
// set), applies GRADTOP_ environment overrides and validates the result.
func LoadConfig(explicit string) (*Config, error) {
	cfg, _, err := config.LoadOrDefault(explicit)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WithConfig applies a loaded config. Options given after it override it.
func WithConfig(cfg *Config) Option {
	return func(o *monitor.Options) {
		c := monitor.FromConfig(cfg)
		o.Capacity = c.Capacity
		o.Interval = c.Interval
		o.QueueLimit = c.QueueLimit
		o.Chart = c.Chart
		o.AltScreen = c.AltScreen
		o.ShowHelp = c.ShowHelp
	}
}

// WithCapacity sets how many of the most recent samples are shown.
func WithCapacity(n int) Option {
	return func(o *monitor.Options) {
		o.Capacity = n
	}
}

// WithInterval sets the render cycle. Shorter is smoother and costs more CPU.
func WithInterval(d time.Duration) Option {
	return func(o *monitor.Options) {
		o.Interval = d
	}
}

// WithTitles sets the step (x) and value (y) axis titles.
func WithTitles(step, value string) Option {
	return func(o *monitor.Options) {
		o.Chart.StepTitle = step
		o.Chart.ValueTitle = value
	}
}

// WithSeriesName sets the legend text for the plotted line.
func WithSeriesName(name string) Option {
	return func(o *monitor.Options) {
		o.Chart.Series = name
	}
}

// WithSize sets the chart size used until the terminal reports its own.
func WithSize(width, height int) Option {
	return func(o *monitor.Options) {
		o.Chart.Width = width
		o.Chart.Height = height
	}
}

// WithQueueLimit caps samples waiting to be drawn; at the limit the oldest
// waiting sample is dropped. Zero, the default, means unbounded.
func WithQueueLimit(n int) Option {
	return func(o *monitor.Options) {
		o.QueueLimit = n
	}
}

// WithLogger sends diagnostics to l. Don't point it at the chart's terminal.
func WithLogger(l Logger) Option {
	return func(o *monitor.Options) {
		o.Logger = l
	}
}

// WithAltScreen chooses whether to draw on the alternate screen. Without it
// the final frame stays in the scrollback after Close.
func WithAltScreen(enabled bool) Option {
	return func(o *monitor.Options) {
		o.AltScreen = enabled
	}
}

// WithHelp shows or hides the key hint under the chart.
func WithHelp(enabled bool) Option {
	return func(o *monitor.Options) {
		o.ShowHelp = enabled
	}
}

// WithInput reads key presses from r instead of stdin.
func WithInput(r io.Reader) Option {
	return func(o *monitor.Options) {
		o.Input = r
		o.DisableInput = false
	}
}

// WithTTYInput reads key presses from the controlling terminal. Use it when
// stdin carries data.
func WithTTYInput() Option {
	return func(o *monitor.Options) {
		o.InputTTY = true
		o.DisableInput = false
	}
}

// WithoutKeyboard ignores key presses; only Close, Stop or ctx end the chart.
func WithoutKeyboard() Option {
	return func(o *monitor.Options) {
		o.DisableInput = true
	}
}

// WithOutput draws frames to w instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(o *monitor.Options) {
		o.Output = w
	}
}

// Run starts a chart, hands it to fn and closes it when fn returns, even if
// fn panics. The error from fn comes first; a render failure is joined to it.
//
//	err := gradtop.Run(ctx, func(m *gradtop.Monitor) error {
//		for batch := range batches {
//			m.Tick(train(batch))
//		}
//		return nil
//	})
func Run(ctx context.Context, fn func(m *Monitor) error, opts ...Option) (err error) {
	m, err := New(ctx, opts...)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, m.Close())
	}()
	return fn(m)
}
