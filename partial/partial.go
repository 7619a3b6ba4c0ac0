// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package partial decodes JSON text that may be cut off at an arbitrary
// point, such as the prefix of a document still being generated by a
// language model.
//
// # Decoding
//
// The [Decode] function decodes a complete or cut-off document. The
// [DecodeLast] function accepts a buffer holding a sequence of documents and
// decodes the last, which is the useful reading when a stream repeatedly
// re-sends a growing snapshot of the same value.
//
// Both functions tolerate input that ends in the middle of a value, and
// materialize as much of the value as the text so far determines:
//
//   - A string cut off before its closing quote yields its decoded prefix.
//   - An object or array cut off before its closing bracket yields the
//     members or elements whose values have arrived.
//   - An object member whose value is a cut-off string is kept; a member
//     whose key or value is otherwise incomplete is omitted.
//   - A number or constant cut off partway (such as "12." or "tru") is
//     omitted, as its value cannot be known yet.
//   - A number that is complete as written, such as "12", is kept even if
//     more digits might follow.
//
// Ill-formed input that no further text could repair, such as mismatched
// brackets or a misspelled constant, is reported as a [SyntaxError].
package partial

import (
	"strconv"
	"strings"
)

// A Value is a JSON value materialized from source text.
type Value interface {
	// JSON encodes the value as compact JSON text.
	JSON() string
}

// An Object is a collection of key-value members, in order of appearance.
type Object []*Member

// Find returns the first member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	for _, m := range o {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// JSON satisfies the Value interface.
func (o Object) JSON() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(m.JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// Field constructs an object member with the given key and value.
func Field(key string, value Value) *Member { return &Member{Key: key, Value: value} }

// JSON satisfies the Value interface.
func (m *Member) JSON() string { return Quote(m.Key) + ":" + m.Value.JSON() }

// An Array is a sequence of values.
type Array []Value

// JSON satisfies the Value interface.
func (a Array) JSON() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(v.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

// A String is a string value. Its contents may be the decoded prefix of a
// longer string whose remainder has not arrived yet.
type String string

// JSON satisfies the Value interface.
func (s String) JSON() string { return Quote(string(s)) }

// An Integer is an integer value. Decoding produces an Integer for numbers
// without a fraction or exponent that fit in an int64; other numbers become
// a Number.
type Integer int64

// JSON satisfies the Value interface.
func (z Integer) JSON() string { return strconv.FormatInt(int64(z), 10) }

// A Number is a floating-point value.
type Number float64

// JSON satisfies the Value interface.
func (n Number) JSON() string { return strconv.FormatFloat(float64(n), 'g', -1, 64) }

// A Bool is a Boolean constant, true or false.
type Bool bool

// JSON satisfies the Value interface.
func (b Bool) JSON() string {
	if b {
		return "true"
	}
	return "false"
}

// Null represents the null constant.
type Null struct{}

// JSON satisfies the Value interface.
func (Null) JSON() string { return "null" }
