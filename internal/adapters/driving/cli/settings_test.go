package cli

import (
	"bufio"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/dsctl/internal/core/domain"
)

func TestParseChoice(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		maxVal     int
		defaultVal int
		expected   int
	}{
		{
			name:       "Empty input returns default",
			input:      "",
			maxVal:     2,
			defaultVal: 1,
			expected:   1,
		},
		{
			name:       "Valid choice within range",
			input:      "2",
			maxVal:     2,
			defaultVal: 1,
			expected:   2,
		},
		{
			name:       "Choice below minimum returns default",
			input:      "0",
			maxVal:     2,
			defaultVal: 1,
			expected:   1,
		},
		{
			name:       "Choice above maximum returns default",
			input:      "3",
			maxVal:     2,
			defaultVal: 2,
			expected:   2,
		},
		{
			name:       "Non-numeric returns default",
			input:      "yes",
			maxVal:     2,
			defaultVal: 1,
			expected:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parseChoice(tt.input, tt.maxVal, tt.defaultVal)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestApplySetting(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		check   func(t *testing.T, s *domain.AppSettings)
		wantErr bool
	}{
		{
			name:  "shell path",
			key:   "shell.path",
			value: "/bin/bash",
			check: func(t *testing.T, s *domain.AppSettings) { assert.Equal(t, "/bin/bash", s.Shell.Path) },
		},
		{name: "empty shell path", key: "shell.path", value: "", wantErr: true},
		{
			name:  "timeout as duration",
			key:   "shell.timeout",
			value: "2m",
			check: func(t *testing.T, s *domain.AppSettings) { assert.Equal(t, 2*time.Minute, s.Shell.Timeout) },
		},
		{
			name:  "timeout as seconds",
			key:   "shell.timeout",
			value: "45",
			check: func(t *testing.T, s *domain.AppSettings) { assert.Equal(t, 45*time.Second, s.Shell.Timeout) },
		},
		{name: "invalid timeout", key: "shell.timeout", value: "soon", wantErr: true},
		{name: "sub-second timeout", key: "shell.timeout", value: "1500ms", wantErr: true},
		{
			name:  "allow list",
			key:   "shell.allow",
			value: "ls, echo,,git",
			check: func(t *testing.T, s *domain.AppSettings) {
				assert.Equal(t, []string{"ls", "echo", "git"}, s.Shell.Allow)
			},
		},
		{
			name:  "history disabled",
			key:   "history.enabled",
			value: "false",
			check: func(t *testing.T, s *domain.AppSettings) { assert.False(t, s.History.Enabled) },
		},
		{name: "invalid bool", key: "history.enabled", value: "maybe", wantErr: true},
		{
			name:  "rate",
			key:   "limits.rate",
			value: "2.5",
			check: func(t *testing.T, s *domain.AppSettings) { assert.Equal(t, 2.5, s.Limits.Rate) },
		},
		{name: "negative rate", key: "limits.rate", value: "-1", wantErr: true},
		{
			name:  "burst",
			key:   "limits.burst",
			value: "4",
			check: func(t *testing.T, s *domain.AppSettings) { assert.Equal(t, 4, s.Limits.Burst) },
		},
		{name: "zero burst", key: "limits.burst", value: "0", wantErr: true},
		{name: "unknown key", key: "shell.colour", value: "blue", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := domain.DefaultAppSettings()
			err := applySetting(&settings, tt.key, tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			tt.check(t, &settings)
		})
	}
}

func TestSettingsShowCmd(t *testing.T) {
	setupServices(t)

	out, err := execute(t, "settings", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "[Shell]")
	assert.Contains(t, out, "Path: /bin/sh")
	assert.Contains(t, out, "Timeout: 30s")
	assert.Contains(t, out, "Allow: (any)")
	assert.Contains(t, out, "Enabled: true")
	assert.Contains(t, out, "Rate: (unlimited)")
	assert.Contains(t, out, "Burst: 10")
}

func TestSettingsSetCmd(t *testing.T) {
	stack := setupServices(t)

	out, err := execute(t, "settings", "set", "limits.rate", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "limits.rate updated.")

	settings, err := stack.settings.Get()
	require.NoError(t, err)
	assert.Equal(t, 5.0, settings.Limits.Rate)
}

func TestSettingsSetCmd_InvalidValue(t *testing.T) {
	setupServices(t)

	_, err := execute(t, "settings", "set", "limits.burst", "many")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRunWizard(t *testing.T) {
	settings := domain.DefaultAppSettings()
	input := strings.Join([]string{
		"/bin/zsh", // shell path
		"bogus",    // invalid timeout, prompt repeats
		"10s",      // timeout
		"",         // allow list unchanged
		"1.5",      // rate
		"",         // burst unchanged
		"2",        // history off
	}, "\n") + "\n"

	cmd := &cobra.Command{}
	out := new(strings.Builder)
	cmd.SetOut(out)

	err := runWizard(cmd, bufio.NewReader(strings.NewReader(input)), &settings)

	require.NoError(t, err)
	assert.Equal(t, "/bin/zsh", settings.Shell.Path)
	assert.Equal(t, 10*time.Second, settings.Shell.Timeout)
	assert.Empty(t, settings.Shell.Allow)
	assert.Equal(t, 1.5, settings.Limits.Rate)
	assert.Equal(t, 10, settings.Limits.Burst)
	assert.False(t, settings.History.Enabled)
	assert.Contains(t, out.String(), "shell.timeout must be whole seconds")
}

func TestRunWizard_EOFKeepsDefaults(t *testing.T) {
	settings := domain.DefaultAppSettings()
	cmd := &cobra.Command{}
	cmd.SetOut(new(strings.Builder))

	err := runWizard(cmd, bufio.NewReader(strings.NewReader("")), &settings)

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings(), settings)
}
