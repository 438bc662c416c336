package cli

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rileyhilliard/gradtop/internal/errors"
	"github.com/rileyhilliard/gradtop/internal/monitor"
	"github.com/rileyhilliard/gradtop/internal/ui"
	"github.com/spf13/cobra"
)

// demoParams shapes the simulated training run.
type demoParams struct {
	Steps int
	Delay time.Duration
	Noise float64
	Seed  uint64
	Hold  bool
}

var demoFlags demoParams

// demoCmd charts a simulated training loop
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Chart a simulated training run",
	Long: `Run a fake training loop that emits a decaying, noisy loss and chart it.

Handy for checking how the chart looks in your terminal and for trying out
config changes. Press any key to stop early.

Examples:
  gradtop demo
  gradtop demo --steps 1000 --delay 10ms
  gradtop demo --noise 0 --hold`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := demoFlags.validate(); err != nil {
			return err
		}

		s, err := openSession(configFlag, logFileFlag, debugFlag)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		summary, err := runDemo(ctx, s.monitorOptions(), demoFlags)
		fmt.Fprintln(cmd.OutOrStdout(), ui.RenderRunSummary(summary))
		return err
	},
}

func init() {
	demoCmd.Flags().IntVar(&demoFlags.Steps, "steps", 300, "number of training steps to simulate")
	demoCmd.Flags().DurationVar(&demoFlags.Delay, "delay", 50*time.Millisecond, "time per simulated step")
	demoCmd.Flags().Float64Var(&demoFlags.Noise, "noise", 0.08, "relative noise on the loss (0 for a smooth curve)")
	demoCmd.Flags().Uint64Var(&demoFlags.Seed, "seed", 0, "random seed (0 picks one)")
	demoCmd.Flags().BoolVar(&demoFlags.Hold, "hold", false, "keep the chart up after the last step until a key is pressed")

	rootCmd.AddCommand(demoCmd)
}

func (p demoParams) validate() error {
	switch {
	case p.Steps < 0:
		return errors.New(errors.ErrInput, fmt.Sprintf("--steps can't be negative (got %d)", p.Steps), "Use 0 or more steps.")
	case p.Delay < 0:
		return errors.New(errors.ErrInput, fmt.Sprintf("--delay can't be negative (got %v)", p.Delay), "Try something like 50ms.")
	case p.Noise < 0 || math.IsNaN(p.Noise):
		return errors.New(errors.ErrInput, fmt.Sprintf("--noise needs to be 0 or more (got %v)", p.Noise), "Try something like 0.05.")
	}
	return nil
}

// runDemo plays the simulated loop into a chart and closes it. It returns
// early if the chart ends first (key press) or ctx is cancelled.
func runDemo(ctx context.Context, opts monitor.Options, p demoParams) (ui.RunSummary, error) {
	m, err := monitor.New(ctx, opts)
	if err != nil {
		return ui.RunSummary{Outcome: "not started", Failed: true}, err
	}

	seed := p.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed>>1|1))

	var tick <-chan time.Time
	if p.Delay > 0 {
		ticker := time.NewTicker(p.Delay)
		defer ticker.Stop()
		tick = ticker.C
	}

	submitted := 0
loop:
	for step := 0; step < p.Steps; step++ {
		if tick != nil {
			select {
			case <-tick:
			case <-m.Done():
				break loop
			case <-ctx.Done():
				break loop
			}
		} else if !m.IsRunning() {
			break
		}
		m.Tick(syntheticLoss(step, p.Noise, rng))
		submitted++
	}

	if p.Hold && ctx.Err() == nil {
		// Wait for a key press (or Ctrl+C) instead of closing.
		select {
		case <-m.Done():
		case <-ctx.Done():
		}
	}

	err = m.Close()
	return summarize(m, submitted, 0), err
}

// syntheticLoss is a typical training curve: fast early decay toward a floor,
// with multiplicative noise.
func syntheticLoss(step int, noise float64, rng *rand.Rand) float64 {
	base := 2.3*math.Exp(-float64(step)/60) + 0.15
	if noise == 0 {
		return base
	}
	return base * (1 + noise*(2*rng.Float64()-1))
}

// summarize builds the result line for a closed monitor.
func summarize(m *monitor.Monitor, submitted, skipped int) ui.RunSummary {
	samples := m.Window()
	shown := make([]float64, len(samples))
	for i, s := range samples {
		shown[i] = s.Value
	}
	return ui.RunSummary{
		Outcome:   m.Reason().String(),
		Submitted: submitted,
		Skipped:   skipped,
		Shown:     shown,
		Failed:    m.Err() != nil,
	}
}
