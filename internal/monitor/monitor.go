package monitor

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/gradtop/internal/errors"
	"github.com/rileyhilliard/gradtop/internal/logger"
	"github.com/rileyhilliard/gradtop/internal/window"
)

// Monitor is the host's handle on a running chart.
//
// All methods are safe to call from any goroutine. Submit and Tick never
// block. Close blocks until the terminal has been restored.
type Monitor struct {
	link      *link
	log       logger.Logger
	done      chan struct{}
	closeOnce sync.Once

	// Written by the render goroutine before done is closed.
	err    error
	final  []window.Sample
	reason StopReason
}

// New starts a chart on a background goroutine and returns immediately.
// Cancelling ctx ends the session like Stop. The caller must call Close.
func New(ctx context.Context, opts Options) (*Monitor, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	opts, err := opts.normalize()
	if err != nil {
		return nil, err
	}

	m := newMonitor(opts)
	p := tea.NewProgram(newModel(ctx, m.link, opts), opts.programOptions()...)

	m.log.Debug("starting chart (capacity %d, interval %s)", opts.Capacity, opts.Interval)
	go m.run(p)
	return m, nil
}

func newMonitor(opts Options) *Monitor {
	return &Monitor{
		link: newLink(opts.QueueLimit),
		log:  opts.Logger,
		done: make(chan struct{}),
	}
}

// run owns the program for its whole life. Bubble Tea restores the terminal
// before Run returns, on every path including recovered panics.
func (m *Monitor) run(p *tea.Program) {
	final, err := p.Run()

	// Nothing sent from here on can reach the window.
	m.link.queue.Close()

	mdl, ok := final.(model)
	if ok {
		m.reason = mdl.reason
		m.final = mdl.win.Samples()
	}
	switch {
	case err != nil:
		m.fail(err)
	case !ok:
		m.fail(errors.New(errors.ErrRender, "Chart renderer returned no state", ""))
	}

	if dropped := m.link.queue.Dropped(); dropped > 0 {
		m.log.Warn("dropped %d samples at the queue limit", dropped)
	}
	m.log.Debug("chart stopped: %s", m.reason)

	m.link.state.Store(int32(StateTerminated))
	close(m.done)
}

func (m *Monitor) fail(cause error) {
	m.reason = ReasonFailed
	m.err = errors.WrapWithCode(cause, errors.ErrRender,
		"Chart rendering stopped",
		"The terminal has been restored. Samples submitted from now on are discarded.")
	m.log.Error("%v", cause)
}

// Submit queues one sample. It never blocks and never fails; samples sent
// once the chart is shutting down are discarded.
func (m *Monitor) Submit(value float64) {
	if m.link.closing.Load() {
		return
	}
	m.link.queue.Send(valueMessage(value))
}

// Tick is Submit under the name training loops usually call it by.
func (m *Monitor) Tick(value float64) {
	m.Submit(value)
}

// IsRunning reports whether the chart is still accepting and drawing samples.
func (m *Monitor) IsRunning() bool {
	return m.link.State() == StateRunning
}

// State returns the current lifecycle state.
func (m *Monitor) State() State {
	return m.link.State()
}

// Stop asks the chart to shut down at the next render cycle without waiting.
// Samples still queued at that point may be discarded; use Close to keep them.
func (m *Monitor) Stop() {
	m.link.stop.Store(true)
}

// Close queues a shutdown request behind every sample already submitted and
// waits for the render goroutine to exit. Every sample submitted before Close
// reaches the window first. Close is idempotent: later calls wait for the same
// exit and return the same error.
func (m *Monitor) Close() error {
	m.closeOnce.Do(func() {
		m.link.closing.Store(true)
		m.link.queue.Force(shutdownMessage())
	})
	<-m.done
	return m.err
}

// Done is closed once the render goroutine has exited and the terminal is restored.
func (m *Monitor) Done() <-chan struct{} {
	return m.done
}

// Err returns the render failure, if any. It is nil until Done is closed.
func (m *Monitor) Err() error {
	select {
	case <-m.done:
		return m.err
	default:
		return nil
	}
}

// Reason reports what ended the session. It is ReasonNone until Done is closed.
func (m *Monitor) Reason() StopReason {
	select {
	case <-m.done:
		return m.reason
	default:
		return ReasonNone
	}
}

// Window returns the samples shown in the last frame. It is nil until Done
// is closed.
func (m *Monitor) Window() []window.Sample {
	select {
	case <-m.done:
		return m.final
	default:
		return nil
	}
}
