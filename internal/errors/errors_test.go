package errors

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	codes := []string{
		ErrConfig,
		ErrTerminal,
		ErrRender,
		ErrInput,
	}

	seen := make(map[string]bool)
	for _, code := range codes {
		assert.NotEmpty(t, code, "error code should not be empty")
		assert.False(t, seen[code], "error code %q should be unique", code)
		seen[code] = true
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		suggestion string
	}{
		{
			name:       "config error",
			code:       ErrConfig,
			message:    "window.capacity must be positive",
			suggestion: "Set window.capacity in .gradtop.yaml",
		},
		{
			name:       "terminal error",
			code:       ErrTerminal,
			message:    "No terminal available for keyboard input",
			suggestion: "Run gradtop from an interactive shell",
		},
		{
			name:       "render error",
			code:       ErrRender,
			message:    "Chart rendering stopped",
			suggestion: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message, tt.suggestion)

			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.suggestion, err.Suggestion)
			assert.Nil(t, err.Cause)
		})
	}
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name          string
		err           *Error
		expectedParts []string
		notExpected   []string
	}{
		{
			name: "basic error formatting",
			err:  New(ErrConfig, "Invalid configuration", "Check .gradtop.yaml syntax"),
			expectedParts: []string{
				"✗",
				"Invalid configuration",
				"Check .gradtop.yaml syntax",
			},
		},
		{
			name:          "error without suggestion",
			err:           New(ErrRender, "Chart rendering stopped", ""),
			expectedParts: []string{"Chart rendering stopped"},
			notExpected:   []string{"\n\n  \n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := tt.err.Error()

			for _, part := range tt.expectedParts {
				assert.Contains(t, output, part)
			}
			for _, part := range tt.notExpected {
				assert.NotContains(t, output, part)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("write /dev/tty: broken pipe")
	wrapped := Wrap(cause, "Chart rendering stopped")

	require.NotNil(t, wrapped)
	assert.Equal(t, ErrRender, wrapped.Code, "Wrap should default to ErrRender code")
	assert.Equal(t, cause, wrapped.Cause)
	assert.Contains(t, wrapped.Error(), "broken pipe")
}

func TestWrapWithCode(t *testing.T) {
	cause := errors.New("file not found")
	wrapped := WrapWithCode(cause, ErrConfig, "Failed to load config", "Create a .gradtop.yaml file")

	require.NotNil(t, wrapped)
	assert.Equal(t, ErrConfig, wrapped.Code)
	assert.Equal(t, "Failed to load config", wrapped.Message)
	assert.Equal(t, "Create a .gradtop.yaml file", wrapped.Suggestion)
	assert.Equal(t, cause, wrapped.Unwrap())
}

func TestErrorsIsAndAs(t *testing.T) {
	cause := errors.New("specific error")
	wrapped := WrapWithCode(cause, ErrTerminal, "Terminal error", "")

	assert.True(t, errors.Is(wrapped, cause))

	var gtErr *Error
	require.True(t, errors.As(wrapped, &gtErr))
	assert.Equal(t, ErrTerminal, gtErr.Code)
}

func TestIsCode(t *testing.T) {
	err := New(ErrConfig, "Config error", "")

	assert.True(t, IsCode(err, ErrConfig))
	assert.False(t, IsCode(err, ErrRender))
	assert.False(t, IsCode(errors.New("standard error"), ErrConfig))
	assert.False(t, IsCode(nil, ErrConfig))
}

func TestErrorMessageStructure(t *testing.T) {
	err := WrapWithCode(
		errors.New("inappropriate ioctl for device"),
		ErrTerminal,
		"Cannot enter raw mode",
		"Run gradtop from an interactive shell",
	)

	lines := strings.Split(err.Error(), "\n")

	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[0]), "✗"), "first line should start with failure symbol")
	assert.Contains(t, lines[0], "Cannot enter raw mode")
}
