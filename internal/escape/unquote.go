// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON strings.
package escape

import (
	"errors"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

// Unquote decodes a byte slice containing the JSON encoding of a string. The
// input must have the enclosing double quotation marks already removed.
//
// Escape sequences are replaced with their unescaped equivalents. A surrogate
// pair of Unicode escapes is combined into the rune it encodes. Invalid
// escapes and unpaired surrogate halves are replaced by the Unicode
// replacement rune. Unquote reports an error for an incomplete escape
// sequence.
func Unquote(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	for src.Len() != 0 {
		i := mem.IndexByte(src, '\\')
		if i < 0 {
			return mem.Append(dec, src), nil
		}
		dec = mem.Append(dec, src.SliceTo(i))

		// Decode the rune after the escape to figure out what to substitute.
		// There should not be decoding errors here, but if there are, insert
		// replacement runes (utf8.RuneError == '\ufffd').
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}
		r, n := mem.DecodeRune(src)
		if n == 0 {
			n++
		}

		src = src.SliceFrom(n)
		switch r {
		case '"', '\\', '/':
			dec = append(dec, byte(r))
		case 'b':
			dec = append(dec, '\b')
		case 'f':
			dec = append(dec, '\f')
		case 'n':
			dec = append(dec, '\n')
		case 'r':
			dec = append(dec, '\r')
		case 't':
			dec = append(dec, '\t')
		case 'u':
			if src.Len() < 4 {
				return nil, errors.New("incomplete Unicode escape")
			}
			v, err := parseHex(src.SliceTo(4))
			src = src.SliceFrom(4)
			if err != nil {
				dec = utf8.AppendRune(dec, utf8.RuneError)
				continue
			}
			r := rune(v)
			switch {
			case isHighSurrogate(r):
				if w, ok := lowSurrogate(src); ok {
					src = src.SliceFrom(6)
					r = utf16.DecodeRune(r, w)
				} else {
					r = utf8.RuneError
				}
			case isLowSurrogate(r):
				r = utf8.RuneError
			}
			dec = utf8.AppendRune(dec, r)
		default:
			dec = utf8.AppendRune(dec, utf8.RuneError)
		}
	}
	return dec, nil
}

// UnquoteTail decodes a byte slice containing the JSON encoding of a string
// that may have been cut off before its closing quotation mark. Decoding
// never fails: an escape sequence or multibyte encoding made incomplete by
// the cut is dropped, as is a leading surrogate whose trailing partner has
// not arrived yet.
func UnquoteTail(src mem.RO) []byte {
	src = trimPartialRune(src)
	dec := make([]byte, 0, src.Len())
	for src.Len() != 0 {
		i := mem.IndexByte(src, '\\')
		if i < 0 {
			return mem.Append(dec, src)
		}
		dec = mem.Append(dec, src.SliceTo(i))

		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return dec // cut off at the backslash
		}
		r, n := mem.DecodeRune(src)
		if n == 0 {
			n++
		}

		src = src.SliceFrom(n)
		switch r {
		case '"', '\\', '/':
			dec = append(dec, byte(r))
		case 'b':
			dec = append(dec, '\b')
		case 'f':
			dec = append(dec, '\f')
		case 'n':
			dec = append(dec, '\n')
		case 'r':
			dec = append(dec, '\r')
		case 't':
			dec = append(dec, '\t')
		case 'u':
			if src.Len() < 4 {
				return dec // cut off inside the hex digits
			}
			v, err := parseHex(src.SliceTo(4))
			src = src.SliceFrom(4)
			if err != nil {
				dec = utf8.AppendRune(dec, utf8.RuneError)
				continue
			}
			r := rune(v)
			switch {
			case isHighSurrogate(r):
				if w, ok := lowSurrogate(src); ok {
					src = src.SliceFrom(6)
					dec = utf8.AppendRune(dec, utf16.DecodeRune(r, w))
				} else if tailMayPair(src) {
					return dec // the trailing half may still arrive
				} else {
					dec = utf8.AppendRune(dec, utf8.RuneError)
				}
			case isLowSurrogate(r):
				dec = utf8.AppendRune(dec, utf8.RuneError)
			default:
				dec = utf8.AppendRune(dec, r)
			}
		default:
			dec = utf8.AppendRune(dec, utf8.RuneError)
		}
	}
	return dec
}

// lowSurrogate reports whether src begins with a complete Unicode escape
// encoding a low surrogate half, and if so returns its value.
func lowSurrogate(src mem.RO) (rune, bool) {
	if src.Len() >= 6 && src.At(0) == '\\' && src.At(1) == 'u' {
		if v, err := parseHex(src.SliceFrom(2).SliceTo(4)); err == nil && isLowSurrogate(rune(v)) {
			return rune(v), true
		}
	}
	return 0, false
}

// tailMayPair reports whether src is a proper prefix of a Unicode escape, so
// that a low surrogate could still complete it when more input arrives.
func tailMayPair(src mem.RO) bool {
	if src.Len() >= 6 {
		return false
	}
	for i := 0; i < src.Len(); i++ {
		b := src.At(i)
		switch {
		case i == 0:
			if b != '\\' {
				return false
			}
		case i == 1:
			if b != 'u' {
				return false
			}
		default:
			if !isHexDigit(b) {
				return false
			}
		}
	}
	return true
}

// trimPartialRune discards a multibyte UTF-8 encoding that src ends in the
// middle of.
func trimPartialRune(src mem.RO) mem.RO {
	n := src.Len()
	for i := 1; i <= 3 && i <= n; i++ {
		b := src.At(n - i)
		if !utf8.RuneStart(b) {
			continue
		}
		if runeLen(b) > i {
			return src.SliceTo(n - i)
		}
		break
	}
	return src
}

func runeLen(b byte) int {
	switch {
	case b < 0xC0:
		return 1
	case b < 0xE0:
		return 2
	case b < 0xF0:
		return 3
	default:
		return 4
	}
}

func isHighSurrogate(r rune) bool { return r >= 0xD800 && r < 0xDC00 }
func isLowSurrogate(r rune) bool  { return r >= 0xDC00 && r < 0xE000 }

func isHexDigit(b byte) bool {
	return '0' <= b && b <= '9' || 'a' <= b && b <= 'f' || 'A' <= b && b <= 'F'
}

func parseHex(data mem.RO) (int64, error) {
	var v int64
	for i := 0; i < data.Len(); i++ {
		b := data.At(i)
		v <<= 4
		if '0' <= b && b <= '9' {
			v += int64(b - '0')
		} else if 'a' <= b && b <= 'f' {
			v += int64(b - 'a' + 10)
		} else if 'A' <= b && b <= 'F' {
			v += int64(b - 'A' + 10)
		} else {
			return 0, errors.New("invalid hex digit")
		}
	}
	return v, nil
}
