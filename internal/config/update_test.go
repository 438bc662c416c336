package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/rileyhilliard/gradtop/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeys(t *testing.T) {
	keys := Keys()

	for _, want := range []string{
		"version",
		"window.capacity",
		"render.interval",
		"render.alt_screen",
		"render.show_help",
		"chart.step_title",
		"chart.value_title",
		"chart.series",
		"queue.limit",
		"log.file",
	} {
		assert.Contains(t, keys, want)
	}
	assert.IsNonDecreasing(t, keys)
}

func TestEncode(t *testing.T) {
	out, err := Encode(DefaultConfig())
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "capacity: 30")
	assert.Contains(t, text, "interval: 16ms", "durations are written as strings")
	assert.Contains(t, text, "value_title: Loss")
}

func TestSettings(t *testing.T) {
	settings, err := Settings(DefaultConfig())
	require.NoError(t, err)

	values := make(map[string]string, len(settings))
	for _, s := range settings {
		values[s.Key] = s.Value
	}

	assert.Equal(t, "30", values["window.capacity"])
	assert.Equal(t, "16ms", values["render.interval"])
	assert.Equal(t, "true", values["render.alt_screen"])
	assert.Equal(t, "Loss", values["chart.value_title"])
	assert.Equal(t, "1", values["version"])
	assert.Len(t, settings, len(Keys()), "every key shows up once")
	assert.True(t, sort.SliceIsSorted(settings, func(i, j int) bool {
		return settings[i].Key < settings[j].Key
	}))
}

func TestEncode_RoundTripsThroughLoad(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Window.Capacity = 45
	cfg.Render.Interval = 40 * time.Millisecond
	cfg.Chart.Series = "train"

	out, err := Encode(cfg)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, out, 0644))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSetValue_NewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)

	require.NoError(t, SetValue(path, "chart.value_title", "Train loss"))
	require.NoError(t, SetValue(path, "window.capacity", "60"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Train loss", cfg.Chart.ValueTitle)
	assert.Equal(t, 60, cfg.Window.Capacity)
}

func TestSetValue_PreservesComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	content := `# experiment 12
window:
  capacity: 30 # last minute of steps
render:
  interval: 16ms
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	require.NoError(t, SetValue(path, "render.interval", "32ms"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "# experiment 12")
	assert.Contains(t, text, "# last minute of steps")
	assert.Contains(t, text, "interval: 32ms")
	assert.Equal(t, 1, strings.Count(text, "interval:"))
}

func TestSetValue_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown key", "window.size", "10"},
		{"invalid value", "window.capacity", "0"},
		{"bad duration", "render.interval", "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ConfigFileName)
			original := []byte("window:\n  capacity: 30\n")
			require.NoError(t, os.WriteFile(path, original, 0644))

			err := SetValue(path, tt.key, tt.value)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrConfig))

			data, readErr := os.ReadFile(path)
			require.NoError(t, readErr)
			assert.Equal(t, original, data, "file is untouched on error")
		})
	}
}
