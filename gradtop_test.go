package gradtop

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rileyhilliard/gradtop/internal/config"
	"github.com/rileyhilliard/gradtop/internal/logger"
	"github.com/rileyhilliard/gradtop/internal/monitor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func apply(opts ...Option) monitor.Options {
	o := monitor.DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func TestOptions(t *testing.T) {
	in := strings.NewReader("")
	log := logger.NewBufferLogger()

	o := apply(
		WithCapacity(50),
		WithInterval(40*time.Millisecond),
		WithTitles("Step", "Train loss"),
		WithSeriesName("train"),
		WithSize(100, 30),
		WithQueueLimit(256),
		WithLogger(log),
		WithAltScreen(false),
		WithHelp(false),
		WithInput(in),
		WithOutput(io.Discard),
	)

	assert.Equal(t, 50, o.Capacity)
	assert.Equal(t, 40*time.Millisecond, o.Interval)
	assert.Equal(t, "Step", o.Chart.StepTitle)
	assert.Equal(t, "Train loss", o.Chart.ValueTitle)
	assert.Equal(t, "train", o.Chart.Series)
	assert.Equal(t, 100, o.Chart.Width)
	assert.Equal(t, 30, o.Chart.Height)
	assert.Equal(t, 256, o.QueueLimit)
	assert.Same(t, log, o.Logger)
	assert.False(t, o.AltScreen)
	assert.False(t, o.ShowHelp)
	assert.Equal(t, in, o.Input)
	assert.Equal(t, io.Discard, o.Output)
}

func TestOptions_Keyboard(t *testing.T) {
	assert.True(t, apply(WithoutKeyboard()).DisableInput)
	assert.False(t, apply(WithoutKeyboard(), WithTTYInput()).DisableInput, "last option wins")
	assert.True(t, apply(WithTTYInput()).InputTTY)
}

func TestWithConfig_LaterOptionsWin(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Window.Capacity = 10
	cfg.Chart.ValueTitle = "Accuracy"

	o := apply(WithConfig(cfg), WithCapacity(20))

	assert.Equal(t, 20, o.Capacity)
	assert.Equal(t, "Accuracy", o.Chart.ValueTitle)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window:\n  capacity: 8\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Window.Capacity)
}

func TestLoadConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window:\n  capacity: -1\n"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestNew_TrainingLoop(t *testing.T) {
	m, err := New(context.Background(),
		WithOutput(io.Discard),
		WithoutKeyboard(),
		WithAltScreen(false),
		WithInterval(2*time.Millisecond),
		WithCapacity(10),
	)
	require.NoError(t, err)
	assert.True(t, m.IsRunning())

	for step := 0; step < 25; step++ {
		m.Tick(1 / float64(step+1))
	}
	require.NoError(t, m.Close())

	got := m.Window()
	require.Len(t, got, 10)
	assert.Equal(t, uint64(15), got[0].Step)
	assert.Equal(t, uint64(24), got[9].Step)
	assert.Equal(t, StateTerminated, m.State())
	assert.False(t, m.IsRunning())
}

func headless() []Option {
	return []Option{
		WithOutput(io.Discard),
		WithoutKeyboard(),
		WithAltScreen(false),
		WithInterval(2 * time.Millisecond),
	}
}

func TestRun(t *testing.T) {
	var handle *Monitor
	err := Run(context.Background(), func(m *Monitor) error {
		handle = m
		m.Tick(0.9)
		m.Tick(0.6)
		return nil
	}, headless()...)

	require.NoError(t, err)
	require.NotNil(t, handle)
	assert.False(t, handle.IsRunning(), "Run closes the chart")
	assert.Len(t, handle.Window(), 2)
}

func TestRun_ReturnsCallbackError(t *testing.T) {
	boom := errors.New("diverged")
	var handle *Monitor

	err := Run(context.Background(), func(m *Monitor) error {
		handle = m
		return boom
	}, headless()...)

	assert.ErrorIs(t, err, boom)
	assert.False(t, handle.IsRunning())
}

func TestRun_ClosesOnPanic(t *testing.T) {
	var handle *Monitor

	assert.Panics(t, func() {
		_ = Run(context.Background(), func(m *Monitor) error {
			handle = m
			panic("nan loss")
		}, headless()...)
	})
	require.NotNil(t, handle)
	assert.False(t, handle.IsRunning())
}

func TestRun_InvalidOptions(t *testing.T) {
	called := false
	err := Run(context.Background(), func(*Monitor) error {
		called = true
		return nil
	}, WithQueueLimit(-1))

	assert.Error(t, err)
	assert.False(t, called)
}
