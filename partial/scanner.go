// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package partial

import (
	"fmt"
	"io"
	"strings"

	"go4.org/mem"
)

// token is the type of a lexical token in the JSON grammar.
type token byte

// Constants defining the valid token values.
const (
	tokInvalid token = iota // invalid token
	tokLBrace               // left brace "{"
	tokRBrace               // right brace "}"
	tokLSquare              // left square bracket "["
	tokRSquare              // right square bracket "]"
	tokComma                // comma ","
	tokColon                // colon ":"
	tokInteger              // number: integer with no fraction or exponent
	tokNumber               // number with fraction and/or exponent
	tokString               // quoted string
	tokTrue                 // constant: true
	tokFalse                // constant: false
	tokNull                 // constant: null

	tokStringPart // string cut off by the end of input
	tokTruncated  // number or constant cut off by the end of input

	// Do not modify the order of these constants without updating the
	// self-delimiting token check below.
)

var tokenStr = [...]string{
	tokInvalid: "invalid token",
	tokLBrace:  `"{"`,
	tokRBrace:  `"}"`,
	tokLSquare: `"["`,
	tokRSquare: `"]"`,
	tokComma:   `","`,
	tokColon:   `":"`,
	tokInteger: "integer",
	tokNumber:  "number",
	tokString:  "string",
	tokTrue:    "true",
	tokFalse:   "false",
	tokNull:    "null",

	tokStringPart: "partial string",
	tokTruncated:  "truncated value",
}

func (t token) String() string {
	v := int(t)
	if v >= len(tokenStr) {
		return tokenStr[tokInvalid]
	}
	return tokenStr[v]
}

// A scanner reads lexical tokens from a byte buffer. Each call to next
// advances the scanner to the next token, or reports an error. The end of
// input partway through a token is not an error: the scanner reports the
// cut-off text as a partial string or truncated value token.
type scanner struct {
	data []byte
	pos  int // offset of the next unread byte

	tok        token
	start, end int // offsets of the current token
}

func newScanner(data []byte) *scanner { return &scanner{data: data} }

// next advances s to the next token of the input, or reports an error.
// At the end of the input, next returns io.EOF.
func (s *scanner) next() error {
	s.tok = tokInvalid
	for s.pos < len(s.data) {
		ch := s.data[s.pos]

		// Discard whitespace.
		if isSpace(ch) {
			s.pos++
			continue
		}
		s.start = s.pos

		// Handle punctuation.
		if t, ok := selfDelim(ch); ok {
			s.pos++
			s.end = s.pos
			s.tok = t
			return nil
		}

		// Handle numbers.
		if isNumStart(ch) {
			return s.scanNumber()
		}

		// Handle string values.
		if ch == '"' {
			return s.scanString()
		}

		// Handle constants: true, false, null
		if isNameByte(ch) {
			return s.scanName()
		}
		return s.failf("unexpected %q", ch)
	}
	s.start, s.end = s.pos, s.pos
	return io.EOF
}

// text returns the undecoded text of the current token. For string tokens
// the surrounding quotation marks are excluded.
func (s *scanner) text() []byte {
	switch s.tok {
	case tokString:
		return s.data[s.start+1 : s.end-1]
	case tokStringPart:
		return s.data[s.start+1 : s.end]
	}
	return s.data[s.start:s.end]
}

// scanString scans a string value whose opening quote is at the current
// position.
func (s *scanner) scanString() error {
	s.pos++ // discard open quote
	for s.pos < len(s.data) {
		ch := s.data[s.pos]
		switch {
		case ch == '"':
			s.pos++
			s.end = s.pos
			s.tok = tokString
			return nil
		case ch == '\\':
			if err := s.scanEscape(); err != nil {
				return err
			}
		case ch < ' ':
			return s.failf("unescaped control %q", ch)
		default:
			s.pos++
		}
	}

	// The input ended before the closing quote.
	s.end = s.pos
	s.tok = tokStringPart
	return nil
}

// scanEscape scans a backslash escape, validating it if it is complete.
// An escape cut off by the end of input is consumed as part of a partial
// string and decoding deals with the remnant.
func (s *scanner) scanEscape() error {
	s.pos++ // discard backslash
	if s.pos == len(s.data) {
		return nil
	}
	ch := s.data[s.pos]
	switch ch {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
		s.pos++
	case 'u':
		s.pos++
		for i := 0; i < 4 && s.pos < len(s.data); i++ {
			if !isHexDigit(s.data[s.pos]) {
				return s.failf("invalid Unicode escape: not a hex digit %q", s.data[s.pos])
			}
			s.pos++
		}
	default:
		return s.failf("invalid %q after escape", ch)
	}
	return nil
}

// scanNumber scans a number beginning at the current position.
func (s *scanner) scanNumber() error {
	if s.data[s.pos] == '-' {
		// If there is a leading sign, we need at least one digit.
		s.pos++
		if s.pos == len(s.data) {
			return s.truncate()
		}
		if !isDigit(s.data[s.pos]) {
			return s.failf("got %q, want digit", s.data[s.pos])
		}
	}

	// Consume the remainder of an integer.
	s.digits()

	// Check for extra leading zeroes, which are disallowed by the JSON spec.
	// That is: 0.12 is OK, 01.2 is not.
	if hasExtraLeadingZeroes(s.data[s.start:s.pos]) {
		return s.failf("extra leading zeroes")
	}
	s.tok = tokInteger

	// If a decimal point follows, consume a fractional part.
	if s.pos < len(s.data) && s.data[s.pos] == '.' {
		s.pos++
		if s.pos == len(s.data) {
			return s.truncate()
		}
		if s.digits() == 0 {
			return s.failf("no digits after decimal point")
		}
		s.tok = tokNumber
	}

	// If an exponent follows, consume it.
	if s.pos < len(s.data) && (s.data[s.pos] == 'e' || s.data[s.pos] == 'E') {
		s.pos++
		if s.pos == len(s.data) {
			return s.truncate()
		}
		if s.data[s.pos] == '+' || s.data[s.pos] == '-' {
			s.pos++
			if s.pos == len(s.data) {
				return s.truncate()
			}
		}
		if s.digits() == 0 {
			return s.failf("missing exponent digits")
		}
		s.tok = tokNumber
	}
	s.end = s.pos
	return nil
}

// scanName scans a run of lowercase name characters beginning at the current
// position and checks it against the JSON constants.
func (s *scanner) scanName() error {
	for s.pos < len(s.data) && isNameByte(s.data[s.pos]) {
		s.pos++
	}
	s.end = s.pos

	got := mem.B(s.data[s.start:s.end])
	switch {
	case got.Equal(mem.S("true")):
		s.tok = tokTrue
	case got.Equal(mem.S("false")):
		s.tok = tokFalse
	case got.Equal(mem.S("null")):
		s.tok = tokNull
	case s.pos == len(s.data) && isNamePrefix(got):
		s.tok = tokTruncated
	default:
		return s.failf("unknown constant %q", got.StringCopy())
	}
	return nil
}

// digits consumes a run of decimal digits, reporting how many were consumed.
func (s *scanner) digits() int {
	var n int
	for s.pos < len(s.data) && isDigit(s.data[s.pos]) {
		s.pos++
		n++
	}
	return n
}

// truncate marks the current token as cut off by the end of input.
func (s *scanner) truncate() error {
	s.end = s.pos
	s.tok = tokTruncated
	return nil
}

func (s *scanner) failf(msg string, args ...any) error {
	s.end = s.pos
	return fmt.Errorf(msg, args...)
}

func isSpace(ch byte) bool    { return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t' }
func isNumStart(ch byte) bool { return ch == '-' || isDigit(ch) }
func isDigit(ch byte) bool    { return '0' <= ch && ch <= '9' }
func isNameByte(ch byte) bool { return ch >= 'a' && ch <= 'z' }

func isHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

// isNamePrefix reports whether name is a proper prefix of one of the JSON
// constants true, false, or null.
func isNamePrefix(name mem.RO) bool {
	for _, full := range []string{"true", "false", "null"} {
		if name.Len() < len(full) && mem.S(full).SliceTo(name.Len()).Equal(name) {
			return true
		}
	}
	return false
}

// hasExtraLeadingZeroes reports whether the representation of an integer in
// buf has redundant leading zeroes, disallowed by the spec.
//
// OK: 0, 0.1, -1.0, -0.1 are all OK.
// Bad: -01, 01.2, -01.0, 00.1.
func hasExtraLeadingZeroes(buf []byte) bool {
	if buf[0] == '-' {
		buf = buf[1:] // skip leading sign
	}
	if buf[0] == '0' {
		// A leading zero is OK if it's the only digit.
		return len(buf) > 1
	}
	return false
}

var self = [...]token{tokLBrace, tokRBrace, tokLSquare, tokRSquare, tokComma, tokColon}

func selfDelim(ch byte) (token, bool) {
	i := strings.IndexByte("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return tokInvalid, false
}
