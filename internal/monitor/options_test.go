package monitor

import (
	"testing"
	"time"

	"github.com/rileyhilliard/gradtop/internal/chart"
	"github.com/rileyhilliard/gradtop/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_NormalizeFillsDefaults(t *testing.T) {
	opts, err := Options{}.normalize()
	require.NoError(t, err)

	assert.Equal(t, 30, opts.Capacity)
	assert.Equal(t, DefaultInterval, opts.Interval)
	assert.Equal(t, chart.DefaultWidth, opts.Chart.Width)
	assert.Equal(t, chart.DefaultHeight, opts.Chart.Height)
	assert.NotNil(t, opts.Logger)
}

func TestFpsFor(t *testing.T) {
	tests := []struct {
		interval time.Duration
		want     int
	}{
		{16 * time.Millisecond, 62},
		{time.Millisecond, maxFPS},
		{0, maxFPS},
		{100 * time.Millisecond, 10},
		{5 * time.Second, 1},
	}

	for _, tt := range tests {
		t.Run(tt.interval.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, fpsFor(tt.interval))
		})
	}
}

func TestFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Window.Capacity = 12
	cfg.Render.Interval = 40 * time.Millisecond
	cfg.Render.AltScreen = false
	cfg.Render.Width = 100
	cfg.Chart.ValueTitle = "Accuracy"
	cfg.Chart.Series = "val"
	cfg.Queue.Limit = 500

	opts := FromConfig(cfg)

	assert.Equal(t, 12, opts.Capacity)
	assert.Equal(t, 40*time.Millisecond, opts.Interval)
	assert.False(t, opts.AltScreen)
	assert.True(t, opts.ShowHelp)
	assert.Equal(t, 100, opts.Chart.Width)
	assert.Equal(t, chart.DefaultHeight, opts.Chart.Height)
	assert.Equal(t, "Epoch", opts.Chart.StepTitle)
	assert.Equal(t, "Accuracy", opts.Chart.ValueTitle)
	assert.Equal(t, "val", opts.Chart.Series)
	assert.Equal(t, 500, opts.QueueLimit)
}

func TestFromConfig_Nil(t *testing.T) {
	assert.Equal(t, DefaultOptions().Capacity, FromConfig(nil).Capacity)
}

func TestState_String(t *testing.T) {
	tests := []struct {
		state  State
		expect string
	}{
		{StateRunning, "running"},
		{StateShuttingDown, "shutting down"},
		{StateTerminated, "terminated"},
		{State(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expect, func(t *testing.T) {
			assert.Equal(t, tt.expect, tt.state.String())
		})
	}
}

func TestStopReason_String(t *testing.T) {
	assert.Equal(t, "closed", ReasonClosed.String())
	assert.Equal(t, "key press", ReasonKeyPress.String())
	assert.Equal(t, "render failure", ReasonFailed.String())
	assert.Equal(t, "unknown", StopReason(42).String())
}
