package cli

import (
	"context"
	"io"
	"math"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/rileyhilliard/gradtop/internal/errors"
	"github.com/rileyhilliard/gradtop/internal/monitor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// headlessOptions runs the chart without a terminal.
func headlessOptions() monitor.Options {
	opts := monitor.DefaultOptions()
	opts.Interval = 2 * time.Millisecond
	opts.AltScreen = false
	opts.DisableInput = true
	opts.Output = io.Discard
	return opts
}

func TestRunDemo_ClosesWithEverySample(t *testing.T) {
	summary, err := runDemo(context.Background(), headlessOptions(), demoParams{Steps: 40, Seed: 7})
	require.NoError(t, err)

	assert.Equal(t, "closed", summary.Outcome)
	assert.Equal(t, 40, summary.Submitted)
	assert.Len(t, summary.Shown, 30, "the window keeps the last 30")
	assert.False(t, summary.Failed)

	var want []float64
	for step := 10; step < 40; step++ {
		want = append(want, syntheticLoss(step, 0, nil))
	}
	assert.Equal(t, want, summary.Shown, "no noise was asked for, so the curve is exact")
}

func TestRunDemo_KeyPressStopsEarly(t *testing.T) {
	opts := headlessOptions()
	opts.DisableInput = false
	opts.Input = strings.NewReader("q")

	summary, err := runDemo(context.Background(), opts, demoParams{Steps: 100000, Delay: time.Millisecond})
	require.NoError(t, err)

	assert.Equal(t, "key press", summary.Outcome)
	assert.Less(t, summary.Submitted, 100000)
}

func TestRunDemo_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	summary, err := runDemo(ctx, headlessOptions(), demoParams{Steps: 100000, Delay: time.Millisecond})
	require.NoError(t, err)
	assert.Less(t, summary.Submitted, 100000)
}

func TestRunDemo_HoldWaitsForSessionEnd(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	start := time.Now()
	summary, err := runDemo(ctx, headlessOptions(), demoParams{Steps: 5, Hold: true})
	require.NoError(t, err)

	assert.Equal(t, 5, summary.Submitted)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond, "held until the context ended")
}

func TestRunDemo_InvalidOptions(t *testing.T) {
	opts := headlessOptions()
	opts.QueueLimit = -1

	summary, err := runDemo(context.Background(), opts, demoParams{Steps: 5})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.True(t, summary.Failed)
	assert.Zero(t, summary.Submitted)
}

func TestSyntheticLoss(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	smooth := make([]float64, 200)
	for i := range smooth {
		smooth[i] = syntheticLoss(i, 0, rng)
	}
	assert.InDelta(t, 2.45, smooth[0], 1e-9)
	assert.IsDecreasing(t, smooth)
	assert.Greater(t, smooth[199], 0.15, "decays toward a floor")

	for i := 0; i < 200; i++ {
		v := syntheticLoss(i, 0.1, rng)
		base := smooth[i]
		assert.False(t, math.IsNaN(v))
		assert.InDelta(t, base, v, base*0.1+1e-12)
	}
}

func TestDemoParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  demoParams
		wantErr bool
	}{
		{"defaults", demoParams{Steps: 300, Delay: 50 * time.Millisecond, Noise: 0.08}, false},
		{"zero everything", demoParams{}, false},
		{"negative steps", demoParams{Steps: -1}, true},
		{"negative delay", demoParams{Delay: -time.Second}, true},
		{"negative noise", demoParams{Noise: -0.1}, true},
		{"NaN noise", demoParams{Noise: math.NaN()}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrInput))
				return
			}
			assert.NoError(t, err)
		})
	}
}
