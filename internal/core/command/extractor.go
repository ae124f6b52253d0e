package command

import (
	"github.com/custodia-labs/dsctl/internal/core/domain"
)

// Extractor produces one parameter of a native function. It either reads
// and coerces an entry of the argument store (Arg) or hands back a value
// captured at construction (Ambient).
type Extractor[T any] struct {
	param *domain.Param
	get   func(args domain.Args) (T, error)
}

// Arg extracts the store entry at index and coerces it into T.
// index is the parameter's position in the original signature, counting
// ambient parameters, so store entries at ambient positions are skipped.
func Arg[T domain.Native](index int) Extractor[T] {
	return Extractor[T]{
		param: &domain.Param{
			Index:   index,
			Type:    domain.TypeName[T](),
			Variant: domain.VariantOf[T](),
		},
		get: func(args domain.Args) (T, error) {
			return domain.Arg[T](args, index)
		},
	}
}

// Ambient supplies v for a reference parameter such as a session handle.
// It never touches the argument store.
func Ambient[T any](v T) Extractor[T] {
	return Extractor[T]{
		get: func(domain.Args) (T, error) { return v, nil },
	}
}

// Extract produces the parameter value from args.
func (e Extractor[T]) Extract(args domain.Args) (T, error) {
	return e.get(args)
}

func (e Extractor[T]) paramInfo() *domain.Param { return e.param }

type paramSource interface{ paramInfo() *domain.Param }

func collect(extractors ...paramSource) []domain.Param {
	var params []domain.Param
	for _, e := range extractors {
		if p := e.paramInfo(); p != nil {
			params = append(params, *p)
		}
	}
	return params
}
