package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("USER", "trainer")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty string", input: "", expected: ""},
		{name: "HOME expands", input: "${HOME}/logs", expected: home + "/logs"},
		{name: "USER expands", input: "/tmp/${USER}.log", expected: "/tmp/trainer.log"},
		{name: "PROJECT expands", input: "/tmp/${PROJECT}.log", expected: "/tmp/" + getProject() + ".log"},
		{name: "tilde unchanged", input: "~/gradtop.log", expected: "~/gradtop.log"},
		{name: "plain path unchanged", input: "/var/log/gradtop.log", expected: "/var/log/gradtop.log"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Expand(tt.input))
		})
	}
}

func TestExpandTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, "", ExpandTilde(""))
	assert.Equal(t, home, ExpandTilde("~"))
	assert.Equal(t, filepath.Join(home, "logs/run.log"), ExpandTilde("~/logs/run.log"))
	assert.Equal(t, "~other/run.log", ExpandTilde("~other/run.log"), "~user is not supported")
	assert.Equal(t, "/abs/run.log", ExpandTilde("/abs/run.log"))
}

func TestExtractRepoName(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"git@github.com:rileyhilliard/gradtop.git", "gradtop"},
		{"https://github.com/rileyhilliard/gradtop.git", "gradtop"},
		{"https://github.com/rileyhilliard/gradtop", "gradtop"},
		{"ssh://git@example.com/team/trainer.git", "trainer"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, extractRepoName(tt.url))
		})
	}
}
