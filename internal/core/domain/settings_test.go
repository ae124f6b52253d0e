package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultAppSettings(t *testing.T) {
	settings := DefaultAppSettings()

	assert.Equal(t, "/bin/sh", settings.Shell.Path)
	assert.Equal(t, 30*time.Second, settings.Shell.Timeout)
	assert.Empty(t, settings.Shell.Allow)
	assert.True(t, settings.History.Enabled)
	assert.Equal(t, 0.0, settings.Limits.Rate)
	assert.Equal(t, 10, settings.Limits.Burst)
}

func TestShellSettings_Allowed(t *testing.T) {
	tests := []struct {
		name       string
		allow      []string
		executable string
		expected   bool
	}{
		{name: "empty list allows all", allow: nil, executable: "rm", expected: true},
		{name: "listed executable", allow: []string{"ls", "echo"}, executable: "echo", expected: true},
		{name: "unlisted executable", allow: []string{"ls", "echo"}, executable: "rm", expected: false},
		{name: "match is exact", allow: []string{"ls"}, executable: "/bin/ls", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ShellSettings{Allow: tt.allow}
			assert.Equal(t, tt.expected, s.Allowed(tt.executable))
		})
	}
}
