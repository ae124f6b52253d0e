package domain

import (
	"maps"
	"time"
)

// Session is the ambient context of a connection. Commands receive it as a
// reference parameter; it never comes from the argument store.
type Session struct {
	// ID identifies the connection.
	ID string

	// WorkDir is the working directory for commands that touch the filesystem.
	WorkDir string

	// Env holds the environment visible to commands.
	Env map[string]string

	// Shell configures the shell module.
	Shell ShellSettings

	// CreatedAt is when the session was opened.
	CreatedAt time.Time
}

// Lookup returns an environment variable of the session.
func (s *Session) Lookup(key string) (string, bool) {
	v, ok := s.Env[key]
	return v, ok
}

// Environ returns the environment in KEY=VALUE form.
func (s *Session) Environ() []string {
	out := make([]string, 0, len(s.Env))
	for k, v := range s.Env {
		out = append(out, k+"="+v)
	}
	return out
}

// WithEnv returns a copy of the session with key set.
func (s *Session) WithEnv(key, value string) *Session {
	cp := *s
	cp.Env = maps.Clone(s.Env)
	if cp.Env == nil {
		cp.Env = make(map[string]string)
	}
	cp.Env[key] = value
	return &cp
}
