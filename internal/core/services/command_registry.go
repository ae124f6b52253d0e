package services

import (
	"fmt"
	"sort"

	"github.com/custodia-labs/dsctl/internal/core/command"
	"github.com/custodia-labs/dsctl/internal/core/domain"
	"github.com/custodia-labs/dsctl/internal/core/ports/driven"
	"github.com/custodia-labs/dsctl/internal/logger"
)

// Ensure CommandRegistry implements the interface.
var _ driven.SourceRegistrar = (*CommandRegistry)(nil)

// CommandRegistry maps command names to adapters.
//
// Registration happens during setup and must finish before the first
// Invoke. After that the registry is only read, so concurrent lookups need
// no locking. Registering a name twice is rejected with ErrAlreadyExists.
type CommandRegistry struct {
	commands map[string]registeredCommand
}

type registeredCommand struct {
	info    domain.CommandInfo
	adapter *command.Adapter
}

// NewCommandRegistry creates an empty registry.
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		commands: make(map[string]registeredCommand),
	}
}

// Register installs adapter under name.
func (r *CommandRegistry) Register(name string, adapter *command.Adapter) error {
	return r.register("", command.Define(name, "", adapter))
}

// RegisterSource installs every definition of a data-source module.
// It stops at the first rejected definition; earlier ones stay registered.
func (r *CommandRegistry) RegisterSource(module string, defs []command.Definition) error {
	logger.Debug("registering %d command(s) from module %q", len(defs), module)
	for _, def := range defs {
		if err := r.register(module, def); err != nil {
			return fmt.Errorf("registering module %s: %w", module, err)
		}
	}
	return nil
}

// RegisterAll installs definitions that belong to no module.
func (r *CommandRegistry) RegisterAll(defs []command.Definition) error {
	for _, def := range defs {
		if err := r.register("", def); err != nil {
			return err
		}
	}
	return nil
}

func (r *CommandRegistry) register(module string, def command.Definition) error {
	if def.Name == "" {
		return fmt.Errorf("%w: empty command name", domain.ErrInvalidInput)
	}
	if def.Adapter == nil {
		return fmt.Errorf("%w: command %s has no adapter", domain.ErrInvalidInput, def.Name)
	}
	if _, exists := r.commands[def.Name]; exists {
		return fmt.Errorf("command %s: %w", def.Name, domain.ErrAlreadyExists)
	}

	r.commands[def.Name] = registeredCommand{
		info: domain.CommandInfo{
			Name:        def.Name,
			Module:      module,
			Description: def.Description,
			Params:      def.Adapter.Params(),
			Arity:       def.Adapter.Arity(),
		},
		adapter: def.Adapter,
	}
	logger.Debug("registered command %s (arity %d)", def.Name, def.Adapter.Arity())
	return nil
}

// Invoke runs the named command. Errors from the adapter, including those
// of the wrapped function, are returned unchanged.
func (r *CommandRegistry) Invoke(name string, args domain.Args) (domain.Value, error) {
	cmd, ok := r.commands[name]
	if !ok {
		return domain.Nil, &domain.CommandNotFoundError{Name: name}
	}
	return cmd.adapter.Invoke(args)
}

// Get returns the adapter registered under name.
func (r *CommandRegistry) Get(name string) (*command.Adapter, error) {
	cmd, ok := r.commands[name]
	if !ok {
		return nil, &domain.CommandNotFoundError{Name: name}
	}
	return cmd.adapter, nil
}

// Describe returns the descriptor of a registered command.
func (r *CommandRegistry) Describe(name string) (*domain.CommandInfo, error) {
	cmd, ok := r.commands[name]
	if !ok {
		return nil, &domain.CommandNotFoundError{Name: name}
	}
	info := cmd.info
	return &info, nil
}

// Has returns true if a command with the given name is registered.
func (r *CommandRegistry) Has(name string) bool {
	_, ok := r.commands[name]
	return ok
}

// Names returns all registered command names, sorted.
func (r *CommandRegistry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns all command descriptors, sorted by name.
func (r *CommandRegistry) List() []domain.CommandInfo {
	result := make([]domain.CommandInfo, 0, len(r.commands))
	for _, name := range r.Names() {
		result = append(result, r.commands[name].info)
	}
	return result
}

// Len returns the number of registered commands.
func (r *CommandRegistry) Len() int {
	return len(r.commands)
}
