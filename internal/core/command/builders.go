package command

import (
	"github.com/custodia-labs/dsctl/internal/core/domain"
)

// The FuncN builders wrap a fallible function of N parameters. Extractors
// run in declaration order; the first failure aborts the invocation before
// fn is called. An error from fn is returned unchanged.
//
// PureN wraps an infallible function and ProcN a function returning only an
// error, whose successful result is Nil.

func result[R domain.Native](r R, err error) (domain.Value, error) {
	if err != nil {
		return domain.Nil, err
	}
	return domain.From(r), nil
}

// Func0 adapts a fallible function of 0 parameters.
func Func0[R domain.Native](fn func() (R, error)) *Adapter {
	return &Adapter{
		params: nil,
		handler: func(_ domain.Args) (domain.Value, error) {
			return result(fn())
		},
	}
}

// Pure0 adapts an infallible function of 0 parameters.
func Pure0[R domain.Native](fn func() R) *Adapter {
	return Func0[R](func() (R, error) {
		return fn(), nil
	})
}

// Proc0 adapts a function of 0 parameters that returns only an error.
func Proc0(fn func() error) *Adapter {
	return Func0[domain.Unit](func() (domain.Unit, error) {
		return domain.Unit{}, fn()
	})
}

// Func1 adapts a fallible function of 1 parameter.
func Func1[A any, R domain.Native](fn func(A) (R, error), a Extractor[A]) *Adapter {
	return &Adapter{
		params: collect(a),
		handler: func(args domain.Args) (domain.Value, error) {
			av, err := a.Extract(args)
			if err != nil {
				return domain.Nil, err
			}
			return result(fn(av))
		},
	}
}

// Pure1 adapts an infallible function of 1 parameter.
func Pure1[A any, R domain.Native](fn func(A) R, a Extractor[A]) *Adapter {
	return Func1[A, R](func(av A) (R, error) {
		return fn(av), nil
	}, a)
}

// Proc1 adapts a function of 1 parameter that returns only an error.
func Proc1[A any](fn func(A) error, a Extractor[A]) *Adapter {
	return Func1[A, domain.Unit](func(av A) (domain.Unit, error) {
		return domain.Unit{}, fn(av)
	}, a)
}

// Func2 adapts a fallible function of 2 parameters.
func Func2[A, B any, R domain.Native](fn func(A, B) (R, error), a Extractor[A], b Extractor[B]) *Adapter {
	return &Adapter{
		params: collect(a, b),
		handler: func(args domain.Args) (domain.Value, error) {
			av, err := a.Extract(args)
			if err != nil {
				return domain.Nil, err
			}
			bv, err := b.Extract(args)
			if err != nil {
				return domain.Nil, err
			}
			return result(fn(av, bv))
		},
	}
}

// Pure2 adapts an infallible function of 2 parameters.
func Pure2[A, B any, R domain.Native](fn func(A, B) R, a Extractor[A], b Extractor[B]) *Adapter {
	return Func2[A, B, R](func(av A, bv B) (R, error) {
		return fn(av, bv), nil
	}, a, b)
}

// Proc2 adapts a function of 2 parameters that returns only an error.
func Proc2[A, B any](fn func(A, B) error, a Extractor[A], b Extractor[B]) *Adapter {
	return Func2[A, B, domain.Unit](func(av A, bv B) (domain.Unit, error) {
		return domain.Unit{}, fn(av, bv)
	}, a, b)
}

// Func3 adapts a fallible function of 3 parameters.
func Func3[A, B, C any, R domain.Native](
	fn func(A, B, C) (R, error),
	a Extractor[A],
	b Extractor[B],
	c Extractor[C],
) *Adapter {
	return &Adapter{
		params: collect(a, b, c),
		handler: func(args domain.Args) (domain.Value, error) {
			av, err := a.Extract(args)
			if err != nil {
				return domain.Nil, err
			}
			bv, err := b.Extract(args)
			if err != nil {
				return domain.Nil, err
			}
			cv, err := c.Extract(args)
			if err != nil {
				return domain.Nil, err
			}
			return result(fn(av, bv, cv))
		},
	}
}

// Pure3 adapts an infallible function of 3 parameters.
func Pure3[A, B, C any, R domain.Native](
	fn func(A, B, C) R,
	a Extractor[A],
	b Extractor[B],
	c Extractor[C],
) *Adapter {
	return Func3[A, B, C, R](func(av A, bv B, cv C) (R, error) {
		return fn(av, bv, cv), nil
	}, a, b, c)
}

// Proc3 adapts a function of 3 parameters that returns only an error.
func Proc3[A, B, C any](fn func(A, B, C) error, a Extractor[A], b Extractor[B], c Extractor[C]) *Adapter {
	return Func3[A, B, C, domain.Unit](func(av A, bv B, cv C) (domain.Unit, error) {
		return domain.Unit{}, fn(av, bv, cv)
	}, a, b, c)
}

// Func4 adapts a fallible function of 4 parameters.
func Func4[A, B, C, D any, R domain.Native](
	fn func(A, B, C, D) (R, error),
	a Extractor[A],
	b Extractor[B],
	c Extractor[C],
	d Extractor[D],
) *Adapter {
	return &Adapter{
		params: collect(a, b, c, d),
		handler: func(args domain.Args) (domain.Value, error) {
			av, err := a.Extract(args)
			if err != nil {
				return domain.Nil, err
			}
			bv, err := b.Extract(args)
			if err != nil {
				return domain.Nil, err
			}
			cv, err := c.Extract(args)
			if err != nil {
				return domain.Nil, err
			}
			dv, err := d.Extract(args)
			if err != nil {
				return domain.Nil, err
			}
			return result(fn(av, bv, cv, dv))
		},
	}
}

// Pure4 adapts an infallible function of 4 parameters.
func Pure4[A, B, C, D any, R domain.Native](
	fn func(A, B, C, D) R,
	a Extractor[A],
	b Extractor[B],
	c Extractor[C],
	d Extractor[D],
) *Adapter {
	return Func4[A, B, C, D, R](func(av A, bv B, cv C, dv D) (R, error) {
		return fn(av, bv, cv, dv), nil
	}, a, b, c, d)
}

// Proc4 adapts a function of 4 parameters that returns only an error.
func Proc4[A, B, C, D any](
	fn func(A, B, C, D) error,
	a Extractor[A],
	b Extractor[B],
	c Extractor[C],
	d Extractor[D],
) *Adapter {
	return Func4[A, B, C, D, domain.Unit](func(av A, bv B, cv C, dv D) (domain.Unit, error) {
		return domain.Unit{}, fn(av, bv, cv, dv)
	}, a, b, c, d)
}
