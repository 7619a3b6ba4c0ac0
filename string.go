// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jfill

import (
	"strings"

	"github.com/creachadair/jfill/partial"
)

// A String accumulates the text of a JSON string that grows across
// snapshots, such as a message being generated token by token. Each update
// reports only the newly arrived text to append observers.
type String struct {
	buf        strings.Builder
	onAppend   []func(string)
	onComplete []func(string)
}

// NewString constructs a new empty String node.
func NewString() *String { return new(String) }

// Update applies a snapshot of the string's full text so far. The chunk of
// text the snapshot adds beyond the accumulated value is appended and
// reported to append observers. A snapshot no longer than the accumulated
// value is ignored as stale.
func (s *String) Update(v partial.Value) {
	sv, ok := v.(partial.String)
	if !ok {
		return
	}
	snap := string(sv)
	cur := s.buf.String()

	var chunk string
	switch {
	case cur == "":
		chunk = snap
	case len(snap) == len(cur):
		return
	case len(snap) > len(cur):
		chunk = strings.Replace(snap, cur, "", 1)
	}
	if chunk == "" {
		return
	}
	s.buf.WriteString(chunk)
	for _, fn := range s.onAppend {
		fn(chunk)
	}
}

// Finalize reports the accumulated text to completion observers.
func (s *String) Finalize() {
	text := s.buf.String()
	for _, fn := range s.onComplete {
		fn(text)
	}
}

// OnAppend registers fn to be called with each newly arrived chunk of text.
// Observers are invoked synchronously, in order of registration.
func (s *String) OnAppend(fn func(chunk string)) { s.onAppend = append(s.onAppend, fn) }

// OnComplete registers fn to be called with the full text when the node is
// finalized.
func (s *String) OnComplete(fn func(text string)) { s.onComplete = append(s.onComplete, fn) }

// Value returns the text accumulated so far.
func (s *String) Value() string { return s.buf.String() }

func (s *String) snapshot() any { return s.buf.String() }
