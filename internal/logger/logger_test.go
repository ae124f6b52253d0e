package logger

import (
	"bytes"
	"os"
	"testing"
)

func withBuffer(t *testing.T, verboseMode bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(verboseMode)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestSetVerbose(t *testing.T) {
	withBuffer(t, false)

	if IsVerbose() {
		t.Error("expected verbose to be false initially")
	}
	SetVerbose(true)
	if !IsVerbose() {
		t.Error("expected verbose to be true after SetVerbose(true)")
	}
}

func TestLevels_WhenVerbose(t *testing.T) {
	tests := []struct {
		name string
		log  func(string, ...any)
		want string
	}{
		{"debug", Debug, "[DEBUG] invoke shell_echo\n"},
		{"info", Info, "[INFO] invoke shell_echo\n"},
		{"warn", Warn, "[WARN] invoke shell_echo\n"},
		{"error", Error, "[ERROR] invoke shell_echo\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := withBuffer(t, true)
			tt.log("invoke %s", "shell_echo")
			if got := buf.String(); got != tt.want {
				t.Errorf("unexpected output: %q", got)
			}
		})
	}
}

func TestLevels_WhenNotVerbose(t *testing.T) {
	buf := withBuffer(t, false)

	Debug("hidden")
	Info("hidden")
	Warn("hidden")
	Section("hidden")

	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestError_AlwaysPrints(t *testing.T) {
	buf := withBuffer(t, false)

	Error("history store: %s", "locked")

	if got := buf.String(); got != "[ERROR] history store: locked\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestSection_WhenVerbose(t *testing.T) {
	buf := withBuffer(t, true)

	Section("Registration")

	if got := buf.String(); got != "\n=== Registration ===\n" {
		t.Errorf("unexpected output: %q", got)
	}
}
