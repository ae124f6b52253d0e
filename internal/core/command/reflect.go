package command

import (
	"fmt"
	"reflect"

	"github.com/custodia-labs/dsctl/internal/core/domain"
)

// conversion describes how one native type crosses the Value boundary.
type conversion struct {
	name    string
	variant domain.DataType
	to      func(domain.Value) (reflect.Value, error)
	from    func(reflect.Value) domain.Value
}

func conversionFor[T domain.Native]() conversion {
	return conversion{
		name:    domain.TypeName[T](),
		variant: domain.VariantOf[T](),
		to: func(v domain.Value) (reflect.Value, error) {
			x, err := domain.To[T](v)
			if err != nil {
				return reflect.Value{}, err
			}
			return reflect.ValueOf(x), nil
		},
		from: func(rv reflect.Value) domain.Value {
			return domain.From(rv.Interface().(T))
		},
	}
}

var conversions = map[reflect.Type]conversion{
	reflect.TypeFor[int]():          conversionFor[int](),
	reflect.TypeFor[int8]():         conversionFor[int8](),
	reflect.TypeFor[int16]():        conversionFor[int16](),
	reflect.TypeFor[int32]():        conversionFor[int32](),
	reflect.TypeFor[int64]():        conversionFor[int64](),
	reflect.TypeFor[uint]():         conversionFor[uint](),
	reflect.TypeFor[uint8]():        conversionFor[uint8](),
	reflect.TypeFor[uint16]():       conversionFor[uint16](),
	reflect.TypeFor[uint32]():       conversionFor[uint32](),
	reflect.TypeFor[uint64]():       conversionFor[uint64](),
	reflect.TypeFor[float32]():      conversionFor[float32](),
	reflect.TypeFor[float64]():      conversionFor[float64](),
	reflect.TypeFor[bool]():         conversionFor[bool](),
	reflect.TypeFor[string]():       conversionFor[string](),
	reflect.TypeFor[[]byte]():       conversionFor[[]byte](),
	reflect.TypeFor[domain.Value](): conversionFor[domain.Value](),
	reflect.TypeFor[domain.Unit]():  conversionFor[domain.Unit](),
}

var errorType = reflect.TypeFor[error]()

type step func(args domain.Args) (reflect.Value, error)

// FromFunc builds an adapter for an arbitrary Go function by inspecting
// its signature once. Pointer and interface parameters are reference
// parameters: each is filled with the first ambient value assignable to
// it and never read from the argument store. Every other parameter is read
// from the store at its position in the signature.
//
// Supported result shapes are (), (error), (R) and (R, error) where R is a
// domain.Native type. Variadic functions and parameters of unsupported
// types are rejected with ErrUnsupportedSignature.
func FromFunc(fn any, ambient ...any) (*Adapter, error) {
	fv := reflect.ValueOf(fn)
	if fv.Kind() != reflect.Func || fv.IsNil() {
		return nil, fmt.Errorf("%w: %T is not a function", domain.ErrUnsupportedSignature, fn)
	}
	ft := fv.Type()
	if ft.IsVariadic() {
		return nil, fmt.Errorf("%w: variadic function %s", domain.ErrUnsupportedSignature, ft)
	}

	steps := make([]step, ft.NumIn())
	var params []domain.Param
	for i := range ft.NumIn() {
		in := ft.In(i)
		if isReference(in) {
			rv, ok := resolveAmbient(in, ambient)
			if !ok {
				return nil, fmt.Errorf("%w: no ambient value for parameter %d of type %s",
					domain.ErrUnsupportedSignature, i, in)
			}
			steps[i] = func(domain.Args) (reflect.Value, error) { return rv, nil }
			continue
		}

		conv, ok := conversions[in]
		if !ok {
			return nil, fmt.Errorf("%w: parameter %d has unsupported type %s",
				domain.ErrUnsupportedSignature, i, in)
		}
		index := i
		steps[i] = func(args domain.Args) (reflect.Value, error) {
			v, err := args.Get(index)
			if err != nil {
				return reflect.Value{}, err
			}
			return conv.to(v)
		}
		params = append(params, domain.Param{Index: i, Type: conv.name, Variant: conv.variant})
	}

	wrap, err := resultWrapper(ft)
	if err != nil {
		return nil, err
	}

	return &Adapter{
		params: params,
		handler: func(args domain.Args) (domain.Value, error) {
			in := make([]reflect.Value, len(steps))
			for i, s := range steps {
				rv, err := s(args)
				if err != nil {
					return domain.Nil, err
				}
				in[i] = rv
			}
			return wrap(fv.Call(in))
		},
	}, nil
}

// MustFromFunc is like FromFunc but panics on error. It is meant for
// package-level command tables whose signatures are fixed at compile time.
func MustFromFunc(fn any, ambient ...any) *Adapter {
	a, err := FromFunc(fn, ambient...)
	if err != nil {
		panic(err)
	}
	return a
}

func isReference(t reflect.Type) bool {
	return t.Kind() == reflect.Pointer || t.Kind() == reflect.Interface
}

func resolveAmbient(t reflect.Type, ambient []any) (reflect.Value, bool) {
	for _, a := range ambient {
		if a == nil {
			continue
		}
		rv := reflect.ValueOf(a)
		if rv.Type().AssignableTo(t) {
			return rv, true
		}
	}
	return reflect.Value{}, false
}

func resultWrapper(ft reflect.Type) (func([]reflect.Value) (domain.Value, error), error) {
	switch ft.NumOut() {
	case 0:
		return func([]reflect.Value) (domain.Value, error) { return domain.Nil, nil }, nil
	case 1:
		if ft.Out(0) == errorType {
			return func(out []reflect.Value) (domain.Value, error) {
				return domain.Nil, asError(out[0])
			}, nil
		}
		conv, ok := conversions[ft.Out(0)]
		if !ok {
			return nil, fmt.Errorf("%w: unsupported result type %s", domain.ErrUnsupportedSignature, ft.Out(0))
		}
		return func(out []reflect.Value) (domain.Value, error) {
			return conv.from(out[0]), nil
		}, nil
	case 2:
		conv, ok := conversions[ft.Out(0)]
		if !ok || ft.Out(1) != errorType {
			return nil, fmt.Errorf("%w: results must be (R, error), got (%s, %s)",
				domain.ErrUnsupportedSignature, ft.Out(0), ft.Out(1))
		}
		return func(out []reflect.Value) (domain.Value, error) {
			if err := asError(out[1]); err != nil {
				return domain.Nil, err
			}
			return conv.from(out[0]), nil
		}, nil
	default:
		return nil, fmt.Errorf("%w: too many results in %s", domain.ErrUnsupportedSignature, ft)
	}
}

func asError(rv reflect.Value) error {
	if rv.IsNil() {
		return nil
	}
	return rv.Interface().(error)
}
