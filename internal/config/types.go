package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .gradtop.yaml configuration file.
type Config struct {
	Version int          `yaml:"version" mapstructure:"version"`
	Window  WindowConfig `yaml:"window" mapstructure:"window"`
	Render  RenderConfig `yaml:"render" mapstructure:"render"`
	Chart   ChartConfig  `yaml:"chart" mapstructure:"chart"`
	Queue   QueueConfig  `yaml:"queue" mapstructure:"queue"`
	Log     LogConfig    `yaml:"log" mapstructure:"log"`
}

// WindowConfig controls how much history is shown.
type WindowConfig struct {
	// Capacity is the number of most recent samples kept on screen.
	Capacity int `yaml:"capacity" mapstructure:"capacity"`
}

// RenderConfig controls the render cycle and terminal handling.
type RenderConfig struct {
	// Interval between render cycles. Each cycle drains pending samples,
	// redraws, and checks for a key press.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// AltScreen draws on the alternate screen, leaving scrollback untouched.
	AltScreen bool `yaml:"alt_screen" mapstructure:"alt_screen"`

	// ShowHelp adds the key hint line under the chart.
	ShowHelp bool `yaml:"show_help" mapstructure:"show_help"`

	// Width and Height size the chart until the terminal reports its size.
	// Zero uses 80x24.
	Width  int `yaml:"width" mapstructure:"width"`
	Height int `yaml:"height" mapstructure:"height"`
}

// MarshalYAML writes the interval as a duration string instead of nanoseconds.
func (r RenderConfig) MarshalYAML() (interface{}, error) {
	return struct {
		Interval  string `yaml:"interval"`
		AltScreen bool   `yaml:"alt_screen"`
		ShowHelp  bool   `yaml:"show_help"`
		Width     int    `yaml:"width"`
		Height    int    `yaml:"height"`
	}{
		Interval:  r.Interval.String(),
		AltScreen: r.AltScreen,
		ShowHelp:  r.ShowHelp,
		Width:     r.Width,
		Height:    r.Height,
	}, nil
}

// ChartConfig holds the text drawn around the plot.
type ChartConfig struct {
	StepTitle  string `yaml:"step_title" mapstructure:"step_title"`
	ValueTitle string `yaml:"value_title" mapstructure:"value_title"`

	// Series is the legend name for the plotted line.
	Series string `yaml:"series" mapstructure:"series"`
}

// QueueConfig bounds the handoff between the host and the render goroutine.
type QueueConfig struct {
	// Limit caps samples waiting to be drawn. 0 means unbounded; at the
	// limit the oldest waiting sample is dropped.
	Limit int `yaml:"limit" mapstructure:"limit"`
}

// LogConfig controls diagnostics. The terminal belongs to the chart while it
// runs, so logs only go to a file.
type LogConfig struct {
	// File receives log output. Supports ~ and ${HOME}, ${USER}, ${PROJECT}.
	File string `yaml:"file" mapstructure:"file"`

	// Debug includes debug-level messages.
	Debug bool `yaml:"debug" mapstructure:"debug"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Window: WindowConfig{
			Capacity: 30,
		},
		Render: RenderConfig{
			Interval:  16 * time.Millisecond,
			AltScreen: true,
			ShowHelp:  true,
		},
		Chart: ChartConfig{
			StepTitle:  "Epoch",
			ValueTitle: "Loss",
			Series:     "loss",
		},
	}
}
