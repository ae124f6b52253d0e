package domain

// Args is the ordered, read-only argument store of one invocation.
type Args struct {
	values []Value
}

// NewArgs returns a store holding copies of values.
func NewArgs(values ...Value) Args {
	copied := make([]Value, len(values))
	for i, v := range values {
		copied[i] = v.Clone()
	}
	return Args{values: copied}
}

// ParseArgs returns a store built from untyped text using Parse.
func ParseArgs(texts ...string) Args {
	values := make([]Value, len(texts))
	for i, s := range texts {
		values[i] = Parse(s)
	}
	return Args{values: values}
}

// Len returns the number of arguments.
func (a Args) Len() int { return len(a.values) }

// Get returns the argument at index i.
func (a Args) Get(i int) (Value, error) {
	if i < 0 || i >= len(a.values) {
		return Nil, &MissingArgumentError{Index: i, Len: len(a.values)}
	}
	return a.values[i], nil
}

// Values returns a copy of all arguments.
func (a Args) Values() []Value {
	out := make([]Value, len(a.values))
	for i, v := range a.values {
		out[i] = v.Clone()
	}
	return out
}

// Strings returns the display form of every argument.
func (a Args) Strings() []string {
	out := make([]string, len(a.values))
	for i, v := range a.values {
		out[i] = v.String()
	}
	return out
}

// Arg fetches the argument at index i and coerces it into T.
func Arg[T Native](a Args, i int) (T, error) {
	v, err := a.Get(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return To[T](v)
}
