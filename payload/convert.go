package payload

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Symbol marks a Go string as an enumerated tag when passed to From.
type Symbol string

// From converts a dynamic Go value into a Value. nil becomes Absent; Go
// numbers, bool, string, Symbol and time.Time map onto their kinds. Anything
// else fails with ErrUnsupported.
func From(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Absent(), nil
	case Value:
		return x, nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return fromUint(uint64(x))
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		return fromUint(x)
	case float32:
		return Float(float64(x)), nil
	case float64:
		return Float(x), nil
	case bool:
		return Bool(x), nil
	case string:
		return Str(x), nil
	case Symbol:
		return Sym(string(x)), nil
	case time.Time:
		return Time(x), nil
	case *time.Time:
		if x == nil {
			return Absent(), nil
		}
		return Time(*x), nil
	}
	return Absent(), fmt.Errorf("%w: %T", ErrUnsupported, v)
}

func fromUint(u uint64) (Value, error) {
	if u > 1<<63-1 {
		return Float(float64(u)), nil
	}
	return Int(int64(u)), nil
}

// MustFrom is From for literals known to be supported.
func MustFrom(v any) Value {
	val, err := From(v)
	if err != nil {
		panic(err)
	}
	return val
}

// Parse reads the "kind:literal" form:
//
//	absent | nil
//	number:42  number:3.14
//	bool:true
//	symbol:test_symbol
//	text:any text, colons included
//	time:2020-01-02T03:04:05Z
//
// The kind may also be written as its full name ("boolean", "timestamp").
func Parse(s string) (Value, error) {
	if s == "absent" || s == "nil" {
		return Absent(), nil
	}

	kind, lit, ok := strings.Cut(s, ":")
	if !ok {
		return Absent(), fmt.Errorf("%w: %q has no kind prefix", ErrParse, s)
	}

	switch kind {
	case "number", "num":
		if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
			return Int(i), nil
		}
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return Absent(), fmt.Errorf("%w: number %q", ErrParse, lit)
		}
		return Float(f), nil
	case "bool", "boolean":
		b, err := strconv.ParseBool(lit)
		if err != nil {
			return Absent(), fmt.Errorf("%w: boolean %q", ErrParse, lit)
		}
		return Bool(b), nil
	case "symbol", "sym":
		if lit == "" {
			return Absent(), fmt.Errorf("%w: empty symbol", ErrParse)
		}
		return Sym(lit), nil
	case "text", "str":
		return Str(lit), nil
	case "time", "timestamp":
		t, err := time.Parse(time.RFC3339Nano, lit)
		if err != nil {
			return Absent(), fmt.Errorf("%w: timestamp %q: %v", ErrParse, lit, err)
		}
		return Time(t), nil
	}
	return Absent(), fmt.Errorf("%w: unknown kind %q", ErrParse, kind)
}
