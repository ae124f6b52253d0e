package driven

import "github.com/custodia-labs/dsctl/internal/core/command"

// SourceRegistrar is the connection-side hook a data-source module uses to
// install its commands. A module calls RegisterSource once with the full
// list of its command definitions.
type SourceRegistrar interface {
	// RegisterSource installs every definition under module.
	// Registration stops at the first rejected definition.
	RegisterSource(module string, defs []command.Definition) error
}
