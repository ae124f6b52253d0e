package domain

import "fmt"

// Unit is the empty native type. It converts to Nil.
type Unit = struct{}

// Native lists the Go types that convert to and from a Value.
// Value itself is included as a passthrough.
type Native interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64 |
		bool | string | []byte |
		Value | Unit
}

// From converts a native value into its Value variant. Integers of any
// width become Integer (unsigned 64-bit values wrap), floats become Number
// and Unit becomes Nil.
func From[T Native](v T) Value {
	switch x := any(v).(type) {
	case int:
		return IntegerValue(int64(x))
	case int8:
		return IntegerValue(int64(x))
	case int16:
		return IntegerValue(int64(x))
	case int32:
		return IntegerValue(int64(x))
	case int64:
		return IntegerValue(x)
	case uint:
		return IntegerValue(int64(x))
	case uint8:
		return IntegerValue(int64(x))
	case uint16:
		return IntegerValue(int64(x))
	case uint32:
		return IntegerValue(int64(x))
	case uint64:
		return IntegerValue(int64(x))
	case float32:
		return NumberValue(float64(x))
	case float64:
		return NumberValue(x)
	case bool:
		return BooleanValue(x)
	case string:
		return StringValue(x)
	case []byte:
		return BytesValue(x)
	case Value:
		return x.Clone()
	default:
		return Nil
	}
}

// To coerces v into the native type T. Coercion is strict: the variant of
// v must be the one T maps to, and there is no widening between Integer
// and Number. Integer targets narrower than 64 bits truncate.
//
// Two targets are lenient by construction: string accepts every variant
// through Value.Text, and Value accepts anything unchanged.
func To[T Native](v Value) (T, error) {
	var out T
	switch p := any(&out).(type) {
	case *int:
		n, err := integer[int](v)
		*p = int(n)
		return out, err
	case *int8:
		n, err := integer[int8](v)
		*p = int8(n)
		return out, err
	case *int16:
		n, err := integer[int16](v)
		*p = int16(n)
		return out, err
	case *int32:
		n, err := integer[int32](v)
		*p = int32(n)
		return out, err
	case *int64:
		n, err := integer[int64](v)
		*p = n
		return out, err
	case *uint:
		n, err := integer[uint](v)
		*p = uint(n)
		return out, err
	case *uint8:
		n, err := integer[uint8](v)
		*p = uint8(n)
		return out, err
	case *uint16:
		n, err := integer[uint16](v)
		*p = uint16(n)
		return out, err
	case *uint32:
		n, err := integer[uint32](v)
		*p = uint32(n)
		return out, err
	case *uint64:
		n, err := integer[uint64](v)
		*p = uint64(n)
		return out, err
	case *float32:
		f, err := number[float32](v)
		*p = float32(f)
		return out, err
	case *float64:
		f, err := number[float64](v)
		*p = f
		return out, err
	case *bool:
		b, ok := v.AsBoolean()
		if !ok {
			return out, typeErr[bool](v)
		}
		*p = b
		return out, nil
	case *[]byte:
		b, ok := v.AsBytes()
		if !ok {
			return out, typeErr[[]byte](v)
		}
		*p = b
		return out, nil
	case *string:
		s, err := v.Text()
		*p = s
		return out, err
	case *Value:
		*p = v.Clone()
		return out, nil
	case *Unit:
		if !v.IsNil() {
			return out, typeErr[Unit](v)
		}
		return out, nil
	}
	return out, &TypeError{Expected: fmt.Sprintf("%T", out), Actual: v}
}

func integer[T Native](v Value) (int64, error) {
	n, ok := v.AsInteger()
	if !ok {
		return 0, typeErr[T](v)
	}
	return n, nil
}

func number[T Native](v Value) (float64, error) {
	f, ok := v.AsNumber()
	if !ok {
		return 0, typeErr[T](v)
	}
	return f, nil
}

func typeErr[T Native](v Value) error {
	return &TypeError{Expected: TypeName[T](), Actual: v}
}

// TypeName returns the name used for T in error messages and command
// descriptions.
func TypeName[T Native]() string {
	var zero T
	switch any(zero).(type) {
	case []byte:
		return "bytes"
	case Value:
		return "value"
	case Unit:
		return "unit"
	default:
		return fmt.Sprintf("%T", zero)
	}
}

// VariantOf returns the Value variant a native type T coerces from.
// String and Value targets accept any variant and report TypeString and
// TypeNil respectively.
func VariantOf[T Native]() DataType {
	var zero T
	switch any(zero).(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return TypeInteger
	case float32, float64:
		return TypeNumber
	case bool:
		return TypeBoolean
	case []byte:
		return TypeBytes
	case string:
		return TypeString
	default:
		return TypeNil
	}
}
