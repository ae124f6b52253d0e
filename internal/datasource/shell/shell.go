// Package shell provides the shell data-source module: commands that echo,
// inspect the session environment and run shell command lines.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/custodia-labs/dsctl/internal/core/command"
	"github.com/custodia-labs/dsctl/internal/core/domain"
	"github.com/custodia-labs/dsctl/internal/logger"
)

// ModuleName is the name the module registers under.
const ModuleName = "shell"

// waitDelay bounds how long Exec waits for output after the shell exits.
const waitDelay = time.Second

// ErrNotAllowed is returned when shell_exec is asked to run an executable
// outside the configured allow list.
var ErrNotAllowed = errors.New("shell: executable not allowed")

// Commands returns the shell module's command table bound to sess.
// Parameter indexes count the session, so the first store-backed
// argument of a session command sits at index 1.
func Commands(sess *domain.Session) []command.Definition {
	return []command.Definition{
		command.Define("shell_echo", "Return the argument unchanged",
			command.Pure1(Echo, command.Arg[string](0))),
		command.Define("shell_exec", "Run a command line with the configured shell",
			command.Func2(Exec, command.Ambient(sess), command.Arg[string](1))),
		command.Define("shell_env", "Look up a session environment variable",
			command.Pure2(Env, command.Ambient(sess), command.Arg[string](1))),
		command.Define("shell_pwd", "Print the session working directory",
			command.Pure1(Pwd, command.Ambient(sess))),
		command.Define("shell_which", "Locate an executable in PATH",
			command.Func1(Which, command.Arg[string](0))),
		command.Define("shell_hostname", "Print the host name",
			command.Func0(os.Hostname)),
	}
}

// Echo returns s.
func Echo(s string) string {
	return s
}

// Exec runs cmdline with "<shell> -c" in the session working directory and
// returns its trimmed standard output. A non-zero exit status is returned
// as an error carrying the command's standard error.
//
// With a non-empty allow list the shell is bypassed: cmdline is split on
// whitespace and the first word is executed directly, so operators such as
// ";", "|" or "$(...)" reach the program as plain arguments.
func Exec(sess *domain.Session, cmdline string) (string, error) {
	fields := strings.Fields(cmdline)
	if len(fields) == 0 {
		return "", fmt.Errorf("%w: empty command line", domain.ErrInvalidInput)
	}
	if !sess.Shell.Allowed(fields[0]) {
		return "", fmt.Errorf("%w: %s", ErrNotAllowed, fields[0])
	}

	ctx := context.Background()
	if sess.Shell.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, sess.Shell.Timeout)
		defer cancel()
	}

	shellPath := sess.Shell.Path
	if shellPath == "" {
		shellPath = domain.DefaultShellPath
	}

	var cmd *exec.Cmd
	if len(sess.Shell.Allow) > 0 {
		cmd = exec.CommandContext(ctx, fields[0], fields[1:]...)
		logger.Debug("shell_exec: %q in %s", fields, sess.WorkDir)
	} else {
		cmd = exec.CommandContext(ctx, shellPath, "-c", cmdline)
		logger.Debug("shell_exec: %s -c %q in %s", shellPath, cmdline, sess.WorkDir)
	}
	cmd.Dir = sess.WorkDir
	// Children of the shell may keep the output pipes open after a kill.
	cmd.WaitDelay = waitDelay
	if len(sess.Env) > 0 {
		cmd.Env = sess.Environ()
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("shell_exec: timed out after %s", sess.Shell.Timeout)
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("shell_exec: %w: %s", err, msg)
		}
		return "", fmt.Errorf("shell_exec: %w", err)
	}

	return strings.TrimSpace(stdout.String()), nil
}

// Env returns the session variable key, or Nil when it is unset.
func Env(sess *domain.Session, key string) domain.Value {
	if v, ok := sess.Lookup(key); ok {
		return domain.StringValue(v)
	}
	return domain.Nil
}

// Pwd returns the session working directory.
func Pwd(sess *domain.Session) string {
	return sess.WorkDir
}

// Which returns the path of the named executable.
func Which(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("shell_which: %w", err)
	}
	return path, nil
}
