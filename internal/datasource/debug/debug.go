// Package debug registers the built-in data sources: the shell module and a
// handful of introspection commands useful when wiring new modules.
package debug

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/dsctl/internal/core/command"
	"github.com/custodia-labs/dsctl/internal/core/domain"
	"github.com/custodia-labs/dsctl/internal/core/ports/driven"
	"github.com/custodia-labs/dsctl/internal/datasource/shell"
)

// ModuleName is the name the introspection commands register under.
const ModuleName = "debug"

// Register installs the shell module bound to sess and the debug module
// on conn.
func Register(conn driven.SourceRegistrar, sess *domain.Session) error {
	if err := conn.RegisterSource(shell.ModuleName, shell.Commands(sess)); err != nil {
		return err
	}
	return conn.RegisterSource(ModuleName, Commands())
}

// Commands returns the debug command table. The adapters are derived from
// the function signatures at startup.
func Commands() []command.Definition {
	return []command.Definition{
		command.Define("debug_typeof", "Print the variant name of the argument",
			command.MustFromFunc(TypeOf)),
		command.Define("debug_parse", "Infer a typed value from text",
			command.MustFromFunc(domain.Parse)),
		command.Define("debug_repeat", "Repeat a string n times",
			command.MustFromFunc(Repeat)),
		command.Define("debug_sum", "Add two integers",
			command.MustFromFunc(Sum)),
	}
}

// TypeOf returns the variant name of v.
func TypeOf(v domain.Value) string {
	return v.Type().String()
}

// maxRepeatLen caps the length of a debug_repeat result in bytes.
const maxRepeatLen = 1 << 20

// Repeat returns s repeated n times. Results longer than maxRepeatLen are
// rejected.
func Repeat(s string, n int64) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: negative repeat count %d", domain.ErrInvalidInput, n)
	}
	if len(s) > 0 && n > maxRepeatLen/int64(len(s)) {
		return "", fmt.Errorf("%w: repeat result exceeds %d bytes", domain.ErrInvalidInput, maxRepeatLen)
	}
	return strings.Repeat(s, int(n)), nil
}

// Sum returns a + b with wrapping overflow.
func Sum(a, b int64) int64 {
	return a + b
}
