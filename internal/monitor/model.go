package monitor

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/gradtop/internal/chart"
	"github.com/rileyhilliard/gradtop/internal/logger"
	"github.com/rileyhilliard/gradtop/internal/queue"
	"github.com/rileyhilliard/gradtop/internal/window"
)

// link is the state shared between a Monitor and its render goroutine.
// Everything else in the model is owned by the render goroutine.
type link struct {
	queue   *queue.Queue[message]
	stop    atomic.Bool // out-of-band stop request
	closing atomic.Bool // Close has queued the sentinel
	state   atomic.Int32
}

func newLink(limit int) *link {
	l := &link{queue: queue.New[message](queue.WithLimit(limit))}
	l.state.Store(int32(StateRunning))
	return l
}

func (l *link) State() State {
	return State(l.state.Load())
}

// model is the Bubble Tea model for the chart.
type model struct {
	ctx      context.Context
	link     *link
	win      *window.Window
	chart    chart.Options
	interval time.Duration
	reason   StopReason
	keys     keyMap
	help     help.Model
	showHelp bool
	log      logger.Logger
}

func newModel(ctx context.Context, l *link, opts Options) model {
	h := help.New()
	h.ShortSeparator = " • "

	return model{
		ctx:      ctx,
		link:     l,
		win:      window.New(opts.Capacity),
		chart:    opts.Chart,
		interval: opts.Interval,
		keys:     defaultKeys,
		help:     h,
		showHelp: opts.ShowHelp,
		log:      opts.Logger,
	}
}

// Init starts the render cycle.
func (m model) Init() tea.Cmd {
	return m.tickCmd()
}

// Update handles messages and updates the model state.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.link.State() != StateRunning {
		return m, nil
	}

	switch msg := msg.(type) {
	case tickMsg:
		if m.drain() {
			return m.shutdown(ReasonClosed)
		}
		if m.link.closing.Load() && m.link.queue.Len() == 0 {
			// Close has begun and everything sent before it has been drained.
			// The sentinel is either still on its way or was pushed out by a
			// racing Submit at the queue limit.
			return m.shutdown(ReasonClosed)
		}
		if m.link.stop.Load() {
			return m.shutdown(ReasonStopped)
		}
		if m.ctx.Err() != nil {
			return m.shutdown(ReasonContext)
		}
		return m, m.tickCmd()

	case tea.KeyMsg:
		m.log.Debug("key %q pressed, closing chart", msg.String())
		return m.shutdown(ReasonKeyPress)

	case tea.WindowSizeMsg:
		m.chart.Width = msg.Width
		m.chart.Height = msg.Height
		if m.showHelp {
			m.chart.Height--
		}
		m.help.Width = msg.Width
	}

	return m, nil
}

// View renders the chart, with the key hint underneath when enabled.
func (m model) View() string {
	frame := chart.Render(m.win.Samples(), m.chart)
	if !m.showHelp {
		return frame
	}
	return lipgloss.JoinVertical(lipgloss.Left, frame, chart.NoticeStyle.Render(m.help.View(m.keys)))
}

// drain moves every pending message into the window in send order.
// It reports whether the shutdown sentinel was reached; anything queued
// behind the sentinel is left alone.
func (m *model) drain() bool {
	sawShutdown := false
	m.link.queue.Drain(func(msg message) bool {
		if msg.kind == kindShutdown {
			sawShutdown = true
			return false
		}
		m.win.Push(msg.value)
		return true
	})
	return sawShutdown
}

// shutdown leaves the running state and asks Bubble Tea to restore the
// terminal and return from Run.
func (m model) shutdown(reason StopReason) (tea.Model, tea.Cmd) {
	m.reason = reason
	m.link.state.Store(int32(StateShuttingDown))
	m.log.Debug("chart shutting down: %s (%d samples accepted)", reason, m.win.Accepted())
	return m, tea.Quit
}

// tickCmd returns a command that sends a tick after the render interval.
func (m model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
