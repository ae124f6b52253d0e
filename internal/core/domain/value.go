package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// DataType identifies the active variant of a Value.
type DataType int

// Value variants. The zero DataType is Nil so that the zero Value is Nil.
const (
	TypeNil DataType = iota
	TypeString
	TypeInteger
	TypeNumber
	TypeBoolean
	TypeBytes
)

// String returns the variant name.
func (t DataType) String() string {
	switch t {
	case TypeString:
		return "String"
	case TypeInteger:
		return "Integer"
	case TypeNumber:
		return "Number"
	case TypeBoolean:
		return "Boolean"
	case TypeBytes:
		return "Bytes"
	case TypeNil:
		return "Nil"
	default:
		return fmt.Sprintf("DataType(%d)", int(t))
	}
}

// ParseDataType maps a variant name back to its DataType.
func ParseDataType(name string) (DataType, bool) {
	for t := TypeNil; t <= TypeBytes; t++ {
		if t.String() == name {
			return t, true
		}
	}
	return TypeNil, false
}

// Value is the dynamic value flowing through the command layer.
// Exactly one variant is active; the payload fields of the other
// variants are always zero. The zero Value is Nil.
type Value struct {
	kind DataType
	str  string
	num  int64
	flt  float64
	bln  bool
	raw  []byte
}

// Nil is the absent value.
var Nil = Value{}

// StringValue returns a String value.
func StringValue(s string) Value { return Value{kind: TypeString, str: s} }

// IntegerValue returns an Integer value.
func IntegerValue(i int64) Value { return Value{kind: TypeInteger, num: i} }

// NumberValue returns a Number value.
func NumberValue(f float64) Value { return Value{kind: TypeNumber, flt: f} }

// BooleanValue returns a Boolean value.
func BooleanValue(b bool) Value { return Value{kind: TypeBoolean, bln: b} }

// BytesValue returns a Bytes value holding a copy of b.
func BytesValue(b []byte) Value {
	return Value{kind: TypeBytes, raw: bytes.Clone(nonNil(b))}
}

func nonNil(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	return b
}

// Type returns the active variant.
func (v Value) Type() DataType { return v.kind }

// IsNil reports whether v is the Nil variant.
func (v Value) IsNil() bool { return v.kind == TypeNil }

// AsString returns the payload of a String value.
func (v Value) AsString() (string, bool) { return v.str, v.kind == TypeString }

// AsInteger returns the payload of an Integer value.
func (v Value) AsInteger() (int64, bool) { return v.num, v.kind == TypeInteger }

// AsNumber returns the payload of a Number value.
func (v Value) AsNumber() (float64, bool) { return v.flt, v.kind == TypeNumber }

// AsBoolean returns the payload of a Boolean value.
func (v Value) AsBoolean() (bool, bool) { return v.bln, v.kind == TypeBoolean }

// AsBytes returns a copy of the payload of a Bytes value.
func (v Value) AsBytes() ([]byte, bool) {
	if v.kind != TypeBytes {
		return nil, false
	}
	return bytes.Clone(v.raw), true
}

// Equal reports structural equality. Numbers compare with ==, so NaN is
// never equal to itself.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case TypeString:
		return v.str == o.str
	case TypeInteger:
		return v.num == o.num
	case TypeNumber:
		return v.flt == o.flt
	case TypeBoolean:
		return v.bln == o.bln
	case TypeBytes:
		return bytes.Equal(v.raw, o.raw)
	default:
		return true
	}
}

// Clone returns an independent copy of v.
func (v Value) Clone() Value {
	if v.kind == TypeBytes {
		v.raw = bytes.Clone(v.raw)
	}
	return v
}

// String renders the canonical display form.
func (v Value) String() string {
	switch v.kind {
	case TypeString:
		return v.str
	case TypeInteger:
		return strconv.FormatInt(v.num, 10)
	case TypeNumber:
		return formatNumber(v.flt)
	case TypeBoolean:
		return strconv.FormatBool(v.bln)
	case TypeBytes:
		return formatBytes(v.raw)
	default:
		return "Nil"
	}
}

// GoString renders the debug form, e.g. Integer(10), Number(1.0) or
// String("x"). Finite numbers always carry a fractional part.
func (v Value) GoString() string {
	switch v.kind {
	case TypeString:
		return fmt.Sprintf("String(%q)", v.str)
	case TypeNumber:
		s := formatNumber(v.flt)
		if !math.IsInf(v.flt, 0) && !math.IsNaN(v.flt) && !strings.Contains(s, ".") {
			s += ".0"
		}
		return "Number(" + s + ")"
	case TypeNil:
		return "Nil"
	default:
		return fmt.Sprintf("%s(%s)", v.kind, v.String())
	}
}

// Text converts v to text. It differs from String only for Bytes, which
// are decoded as UTF-8 instead of dumped.
func (v Value) Text() (string, error) {
	if v.kind != TypeBytes {
		return v.String(), nil
	}
	if !utf8.Valid(v.raw) {
		return "", &DecodeError{Bytes: bytes.Clone(v.raw)}
	}
	return string(v.raw), nil
}

// MarshalJSON encodes v as its natural JSON form. Bytes encode as base64.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case TypeString:
		return json.Marshal(v.str)
	case TypeInteger:
		return json.Marshal(v.num)
	case TypeNumber:
		if math.IsNaN(v.flt) || math.IsInf(v.flt, 0) {
			return json.Marshal(formatNumber(v.flt))
		}
		return json.Marshal(v.flt)
	case TypeBoolean:
		return json.Marshal(v.bln)
	case TypeBytes:
		return json.Marshal(v.raw)
	default:
		return []byte("null"), nil
	}
}

func formatNumber(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatBytes(b []byte) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, c := range b {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(int(c)))
	}
	sb.WriteByte(']')
	return sb.String()
}

// Parse infers a Value from free-form text. It never fails: text that
// matches no other variant becomes a String holding the input verbatim.
//
// Inference order:
//  1. text containing "true" or "false": Boolean if it is exactly one of them
//  2. text containing ".": Number if it parses as a decimal float
//  3. "null" in any case, "nil" or "Nil": Nil
//  4. Integer if it parses as a base-10 int64
func Parse(s string) Value {
	switch {
	case strings.Contains(s, "false") || strings.Contains(s, "true"):
		switch s {
		case "true":
			return BooleanValue(true)
		case "false":
			return BooleanValue(false)
		}
	case strings.Contains(s, "."):
		// strconv also accepts hex floats and digit underscores; decimal
		// text only.
		if strings.ContainsAny(s, "xX_") {
			break
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil || isRangeErr(err) {
			return NumberValue(f)
		}
	case strings.EqualFold(s, "null") || s == "nil" || s == "Nil":
		return Nil
	default:
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return IntegerValue(i)
		}
	}
	return StringValue(s)
}

// isRangeErr reports whether err is an out-of-range float error, for which
// strconv still returns the correctly rounded infinity or zero.
func isRangeErr(err error) bool {
	return errors.Is(err, strconv.ErrRange)
}
