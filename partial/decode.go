// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package partial

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/creachadair/jfill/internal/escape"

	"go4.org/mem"
)

// Decode decodes data as a single JSON value. The input may be cut off at an
// arbitrary point, and Decode materializes as much of the value as the text
// determines; see the package documentation for the rules. Decode reports a
// SyntaxError if data is ill-formed, if it contains more than one value, or
// if it ends before any part of a value has arrived.
func Decode(data []byte) (_ Value, err error) {
	d := &decoder{s: newScanner(data)}
	defer d.recoverSyntaxError(&err)

	if !d.advance() {
		return nil, d.endOfInput()
	}
	v := d.parseElement()
	if v == nil {
		return nil, d.endOfInput()
	}
	if !d.truncated && d.advance() {
		d.failf("unexpected data after value")
	}
	return v, nil
}

// DecodeLast decodes data as a sequence of JSON values separated by
// whitespace and returns the last. The final value may be cut off at an
// arbitrary point, as for Decode; the values before it must be complete.
// If no part of any value has arrived, DecodeLast reports a SyntaxError.
func DecodeLast(data []byte) (_ Value, err error) {
	d := &decoder{s: newScanner(data)}
	defer d.recoverSyntaxError(&err)

	var last Value
	for {
		if !d.advance() {
			break
		}
		if v := d.parseElement(); v != nil {
			last = v
		}
		if d.truncated {
			break
		}
	}
	if last == nil {
		return nil, d.endOfInput()
	}
	return last, nil
}

// SyntaxError is the concrete type of errors reported by Decode and
// DecodeLast. It reflects text that no further input could repair, not text
// that has merely been cut off early.
type SyntaxError struct {
	Offset  int    // byte offset in the input where the error was detected
	Message string // a human-readable description of the error

	err error
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("at offset %d: %s", e.Offset, e.Message)
}

// Unwrap returns the underlying error wrapped by e, if any.
func (e *SyntaxError) Unwrap() error { return e.err }

// A decoder wraps a scanner with the JSON grammar. Grammar and lexical
// errors abort decoding by panicking with a *SyntaxError, which the
// top-level entry points recover into an ordinary error return.
type decoder struct {
	s         *scanner
	truncated bool // the input ended before the last value was complete
}

// advance moves to the next token of the input, reporting false at the end
// of input.
func (d *decoder) advance() bool {
	if err := d.s.next(); err == io.EOF {
		return false
	} else if err != nil {
		d.fail(err)
	}
	return true
}

// parseElement decodes the value beginning at the current token. It returns
// nil, setting d.truncated, if the input ended before any part of the value
// was determined.
func (d *decoder) parseElement() Value {
	switch tok := d.s.tok; tok {
	case tokLBrace:
		return d.parseMembers()
	case tokLSquare:
		return d.parseElements()
	case tokString:
		return d.decodeString()
	case tokStringPart:
		d.truncated = true
		return String(escape.UnquoteTail(mem.B(d.s.text())))
	case tokInteger:
		text := string(d.s.text())
		if z, err := strconv.ParseInt(text, 10, 64); err == nil {
			return Integer(z)
		}
		return d.decodeNumber(text) // out of range for int64
	case tokNumber:
		return d.decodeNumber(string(d.s.text()))
	case tokTrue:
		return Bool(true)
	case tokFalse:
		return Bool(false)
	case tokNull:
		return Null{}
	case tokTruncated:
		d.truncated = true
		return nil
	default:
		d.failf("expected a value, got %v", tok)
		return nil
	}
}

// parseMembers decodes the members of an object whose opening brace is the
// current token. An object cut off before its closing brace is treated as
// closed. A member cut off before its value is determined is omitted, except
// that a member whose value is a cut-off string is kept.
func (d *decoder) parseMembers() Value {
	obj := Object{}
	if !d.advance() {
		d.truncated = true
		return obj
	}
	if d.s.tok == tokRBrace {
		return obj
	}
	for {
		// Parse the key.
		switch d.s.tok {
		case tokString:
			// ok
		case tokStringPart, tokTruncated:
			d.truncated = true
			return obj
		default:
			d.failf("expected object key, got %v", d.s.tok)
		}
		key := string(d.decodeString())

		if !d.advance() {
			d.truncated = true
			return obj
		}
		if d.s.tok != tokColon {
			d.failf("expected %v, got %v", tokColon, d.s.tok)
		}
		if !d.advance() {
			d.truncated = true
			return obj
		}

		// Parse the value.
		if v := d.parseElement(); v != nil {
			obj = append(obj, &Member{Key: key, Value: v})
		}
		if d.truncated {
			return obj
		}

		if !d.advance() {
			d.truncated = true
			return obj
		}
		if d.s.tok == tokRBrace {
			return obj
		}
		if d.s.tok != tokComma {
			d.failf("expected %v or %v, got %v", tokComma, tokRBrace, d.s.tok)
		}
		if !d.advance() {
			d.truncated = true
			return obj
		}
	}
}

// parseElements decodes the elements of an array whose opening bracket is
// the current token. An array cut off before its closing bracket is treated
// as closed, omitting a final element whose value is not yet determined.
func (d *decoder) parseElements() Value {
	arr := Array{}
	if !d.advance() {
		d.truncated = true
		return arr
	}
	if d.s.tok == tokRSquare {
		return arr
	}
	for {
		if v := d.parseElement(); v != nil {
			arr = append(arr, v)
		}
		if d.truncated {
			return arr
		}

		if !d.advance() {
			d.truncated = true
			return arr
		}
		if d.s.tok == tokRSquare {
			return arr
		}
		if d.s.tok != tokComma {
			d.failf("expected %v or %v, got %v", tokComma, tokRSquare, d.s.tok)
		}
		if !d.advance() {
			d.truncated = true
			return arr
		}
	}
}

// decodeString decodes the contents of the string at the current token.
func (d *decoder) decodeString() String {
	text, err := escape.Unquote(mem.B(d.s.text()))
	if err != nil {
		d.failf("invalid string: %v", err)
	}
	return String(text)
}

// decodeNumber decodes text as a floating-point value. Values out of range
// saturate rather than failing, since the scanner has already validated the
// syntax.
func (d *decoder) decodeNumber(text string) Value {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		d.failf("invalid number %q", text)
	}
	return Number(f)
}

// fail aborts decoding with a lexical error at the scanner's position.
func (d *decoder) fail(err error) {
	panic(&SyntaxError{Offset: d.s.end, Message: err.Error(), err: err})
}

// failf aborts decoding with a grammar error at the current token.
func (d *decoder) failf(msg string, args ...any) {
	panic(&SyntaxError{Offset: d.s.start, Message: fmt.Sprintf(msg, args...)})
}

// endOfInput returns the error reported when the input ends before any part
// of a value has arrived.
func (d *decoder) endOfInput() error {
	return &SyntaxError{Offset: d.s.pos, Message: "unexpected end of input"}
}

// recoverSyntaxError recovers a *SyntaxError panic out of the decoder and
// stores it in *errp. Any other panic is resumed.
func (d *decoder) recoverSyntaxError(errp *error) {
	if v := recover(); v != nil {
		serr, ok := v.(*SyntaxError)
		if !ok {
			panic(v)
		}
		*errp = serr
	}
}
