package command

import (
	"slices"

	"github.com/custodia-labs/dsctl/internal/core/domain"
)

// Handler is the uniform invocation shape every command is reduced to.
type Handler func(args domain.Args) (domain.Value, error)

// Adapter binds a native function to the uniform Handler shape.
// Adapters are immutable and safe for concurrent use as long as the
// wrapped function and its ambient values are.
type Adapter struct {
	params  []domain.Param
	handler Handler
}

// New wraps a handler that already has the uniform shape. params describes
// the store entries the handler reads and is used for introspection only.
func New(handler Handler, params ...domain.Param) *Adapter {
	return &Adapter{params: slices.Clone(params), handler: handler}
}

// Invoke runs the command against args.
func (a *Adapter) Invoke(args domain.Args) (domain.Value, error) {
	return a.handler(args)
}

// Params returns the store-backed parameters in declaration order.
func (a *Adapter) Params() []domain.Param {
	return slices.Clone(a.params)
}

// Arity returns the minimum store length the adapter needs.
func (a *Adapter) Arity() int {
	n := 0
	for _, p := range a.params {
		if p.Index+1 > n {
			n = p.Index + 1
		}
	}
	return n
}

// Definition pairs a command name with its adapter.
type Definition struct {
	Name        string
	Description string
	Adapter     *Adapter
}

// Define returns a Definition.
func Define(name, description string, adapter *Adapter) Definition {
	return Definition{Name: name, Description: description, Adapter: adapter}
}
