package config

import (
	"fmt"
	"time"

	"github.com/rileyhilliard/gradtop/internal/errors"
)

// Render interval bounds. Below the floor the terminal can't keep up; above
// the ceiling key presses feel ignored.
const (
	MinInterval = time.Millisecond
	MaxInterval = 10 * time.Second
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but gradtop only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Grab the latest gradtop: https://github.com/rileyhilliard/gradtop/releases")
	}

	checks := []func() error{
		func() error { return validateWindow(cfg.Window) },
		func() error { return validateRender(cfg.Render) },
		func() error { return validateQueue(cfg.Queue) },
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Config has a problem",
				"Fix the value in your .gradtop.yaml or the matching GRADTOP_ environment variable")
		}
	}

	return nil
}

// validateWindow checks window configuration.
func validateWindow(w WindowConfig) error {
	if w.Capacity <= 0 {
		return fmt.Errorf("window.capacity needs to be at least 1 (got %d)", w.Capacity)
	}
	return nil
}

// validateRender checks render configuration.
func validateRender(r RenderConfig) error {
	if r.Interval < MinInterval || r.Interval > MaxInterval {
		return fmt.Errorf("render.interval %v is out of range - use something between %v and %v, like '16ms'", r.Interval, MinInterval, MaxInterval)
	}
	if r.Width < 0 {
		return fmt.Errorf("render.width can't be negative (got %d) - use 0 for the default", r.Width)
	}
	if r.Height < 0 {
		return fmt.Errorf("render.height can't be negative (got %d) - use 0 for the default", r.Height)
	}
	return nil
}

// validateQueue checks queue configuration.
func validateQueue(q QueueConfig) error {
	if q.Limit < 0 {
		return fmt.Errorf("queue.limit can't be negative (got %d) - use 0 for no limit", q.Limit)
	}
	return nil
}
