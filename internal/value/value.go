// Package value implements the structured-value tree that request and
// response payloads are built from, plus its text parser and printer.
//
// A Value is a closed sum type: Null, Bool, Int, Float, String, Array, or
// Dict. Construction goes through the small set of constructors below, or
// through Builder (builder.go) for the fluent, state-machine-checked path
// the orchestrator uses to assemble response documents.
package value

import "github.com/pkg/errors"

// Kind discriminates the Value sum type.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindDict
)

// Value is an immutable node in the structured-value tree.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	arr  []Value
	dict map[string]Value
}

// Null returns the null value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integer value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a floating-point value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Array returns an array value. The given slice is copied.
func Array(items ...Value) Value {
	cp := make([]Value, len(items))
	copy(cp, items)
	return Value{kind: KindArray, arr: cp}
}

// Dict returns a dict value. The given map is copied.
func Dict(fields map[string]Value) Value {
	cp := make(map[string]Value, len(fields))
	for k, v := range fields {
		cp[k] = v
	}
	return Value{kind: KindDict, dict: cp}
}

// Kind reports the value's kind.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null (or the zero Value).
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean payload and whether v is a Bool.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsInt returns the integer payload and whether v is an Int.
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == KindInt }

// AsFloat returns v as a float64. Int values are widened. ok is false for
// any other kind.
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindInt:
		return float64(v.i), true
	default:
		return 0, false
	}
}

// AsString returns the string payload and whether v is a String.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsArray returns the element slice and whether v is an Array.
func (v Value) AsArray() ([]Value, bool) { return v.arr, v.kind == KindArray }

// AsDict returns the field map and whether v is a Dict.
func (v Value) AsDict() (map[string]Value, bool) { return v.dict, v.kind == KindDict }

// Field looks up a key in a Dict value. Returns (Null, false) if v is not a
// Dict or the key is absent.
func (v Value) Field(key string) (Value, bool) {
	if v.kind != KindDict {
		return Null(), false
	}
	val, ok := v.dict[key]
	return val, ok
}

// MustString returns the string payload, panicking if v is not a String.
// Intended for internal call sites that have already validated the shape.
func (v Value) MustString() string {
	s, ok := v.AsString()
	if !ok {
		panic(errors.Errorf("value: MustString on kind %d", v.kind))
	}
	return s
}
