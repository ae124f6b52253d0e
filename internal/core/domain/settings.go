package domain

import "time"

// DefaultShellPath is the shell used when none is configured.
const DefaultShellPath = "/bin/sh"

// ShellSettings configures the built-in shell command module.
type ShellSettings struct {
	// Path is the shell binary used by shell_exec.
	Path string

	// Timeout bounds a single shell_exec call.
	Timeout time.Duration

	// Allow restricts shell_exec to these executables. Empty allows all.
	Allow []string
}

// HistorySettings configures invocation history.
type HistorySettings struct {
	// Enabled records every invocation in the history store.
	Enabled bool
}

// LimitSettings configures invocation throttling.
type LimitSettings struct {
	// Rate is the sustained number of invocations per second. Zero disables throttling.
	Rate float64

	// Burst is the maximum number of invocations admitted at once.
	Burst int
}

// AppSettings represents the complete application configuration.
type AppSettings struct {
	Shell   ShellSettings
	History HistorySettings
	Limits  LimitSettings
}

// DefaultAppSettings returns settings with sensible defaults.
// Throttling is off unless configured.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Shell: ShellSettings{
			Path:    DefaultShellPath,
			Timeout: 30 * time.Second,
		},
		History: HistorySettings{
			Enabled: true,
		},
		Limits: LimitSettings{
			Rate:  0,
			Burst: 10,
		},
	}
}

// Allowed reports whether shell_exec may run the named executable.
func (s ShellSettings) Allowed(executable string) bool {
	if len(s.Allow) == 0 {
		return true
	}
	for _, a := range s.Allow {
		if a == executable {
			return true
		}
	}
	return false
}
