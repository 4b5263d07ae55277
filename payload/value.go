// Package payload defines the closed set of values a node may carry and the
// validators that decide whether a value is acceptable.
//
// A Value holds one of the kinds absent, number, boolean, symbol, text or
// timestamp. Values are immutable; the zero Value is absent.
package payload

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Kind tags the variant held by a Value.
type Kind uint8

const (
	KindAbsent Kind = iota
	KindNumber
	KindBoolean
	KindSymbol
	KindText
	KindTimestamp
)

var kindNames = [...]string{
	KindAbsent:    "absent",
	KindNumber:    "number",
	KindBoolean:   "boolean",
	KindSymbol:    "symbol",
	KindText:      "text",
	KindTimestamp: "timestamp",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k <= KindTimestamp
}

// Kinds returns every declared kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindAbsent, KindNumber, KindBoolean, KindSymbol, KindText, KindTimestamp}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), true
		}
	}
	return KindAbsent, false
}

// TimeLayout is the layout used by Value.String for timestamps.
const TimeLayout = "2006-01-02 15:04:05 -0700"

// Value is a node payload.
type Value struct {
	kind    Kind
	integer bool
	i       int64
	f       float64
	b       bool
	s       string
	t       time.Time
}

func Absent() Value { return Value{} }

func Int(v int64) Value { return Value{kind: KindNumber, integer: true, i: v} }

func Float(v float64) Value { return Value{kind: KindNumber, f: v} }

func Bool(v bool) Value { return Value{kind: KindBoolean, b: v} }

// Sym returns a Symbol value. Symbols are enumerated tags and never compare
// equal to Text values, even with the same spelling.
func Sym(name string) Value { return Value{kind: KindSymbol, s: name} }

func Str(v string) Value { return Value{kind: KindText, s: v} }

func Time(v time.Time) Value { return Value{kind: KindTimestamp, t: v} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// IsInteger reports whether a Number holds an integer representation.
func (v Value) IsInteger() bool { return v.kind == KindNumber && v.integer }

// Int64 returns the integer form of a Number. Float numbers are truncated.
func (v Value) Int64() (int64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	if v.integer {
		return v.i, true
	}
	return int64(v.f), true
}

// Float64 returns a Number as a float.
func (v Value) Float64() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	if v.integer {
		return float64(v.i), true
	}
	return v.f, true
}

func (v Value) BoolValue() (bool, bool) {
	return v.b, v.kind == KindBoolean
}

// Name returns the tag of a Symbol.
func (v Value) Name() (string, bool) {
	return v.s, v.kind == KindSymbol
}

// Text returns the content of a Text value.
func (v Value) Text() (string, bool) {
	return v.s, v.kind == KindText
}

func (v Value) Time() (time.Time, bool) {
	return v.t, v.kind == KindTimestamp
}

// Finite reports whether a Number is neither NaN nor infinite. Non-numbers
// are finite.
func (v Value) Finite() bool {
	if v.kind != KindNumber || v.integer {
		return true
	}
	return !math.IsNaN(v.f) && !math.IsInf(v.f, 0)
}

// Equal compares by value. Numbers compare numerically regardless of
// representation and timestamps compare by instant.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindAbsent:
		return true
	case KindNumber:
		if v.integer && o.integer {
			return v.i == o.i
		}
		a, _ := v.Float64()
		b, _ := o.Float64()
		return a == b
	case KindBoolean:
		return v.b == o.b
	case KindSymbol, KindText:
		return v.s == o.s
	case KindTimestamp:
		return v.t.Equal(o.t)
	}
	return false
}

// String renders the payload text used in diagrams: "" for absent, shortest
// decimal for numbers with ".0" kept on integral floats, the raw name or text
// otherwise, and TimeLayout for timestamps.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		if v.integer {
			return strconv.FormatInt(v.i, 10)
		}
		return formatFloat(v.f)
	case KindBoolean:
		return strconv.FormatBool(v.b)
	case KindSymbol, KindText:
		return v.s
	case KindTimestamp:
		return v.t.Format(TimeLayout)
	}
	return ""
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	if abs := math.Abs(f); abs == 0 || (abs >= 1e-4 && abs < 1e16) {
		s := strconv.FormatFloat(f, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}
	s := strconv.FormatFloat(f, 'e', -1, 64)
	if mant, exp, ok := strings.Cut(s, "e"); ok && !strings.Contains(mant, ".") {
		s = mant + ".0e" + exp
	}
	return s
}
