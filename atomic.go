// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jfill

import (
	"encoding/json"

	"github.com/creachadair/jfill/partial"
)

// An Atomic holds a single value of type T that each snapshot replaces
// wholesale. Use it for values that are not streamed piecewise: numbers,
// Booleans, or any shape that json.Unmarshal can populate a T from.
type Atomic[T any] struct {
	value      T
	set        bool
	onComplete []func(T)
}

// NewAtomic constructs a new empty Atomic node for values of type T.
func NewAtomic[T any]() *Atomic[T] { return new(Atomic[T]) }

// Update replaces the held value with the snapshot. A snapshot that does not
// unmarshal into T leaves the zero value; either way the node is counted as
// updated.
func (a *Atomic[T]) Update(v partial.Value) {
	var next T
	if v != nil {
		// Shapes are not validated; a mismatch keeps the zero value.
		if err := json.Unmarshal([]byte(v.JSON()), &next); err != nil {
			var zero T
			next = zero
		}
	}
	a.value = next
	a.set = true
}

// Finalize reports the held value to completion observers. A node that was
// never updated does not fire; one explicitly updated to its zero value
// does.
func (a *Atomic[T]) Finalize() {
	if !a.set {
		return
	}
	for _, fn := range a.onComplete {
		fn(a.value)
	}
}

// OnComplete registers fn to be called with the held value when the node is
// finalized. Observers are invoked synchronously, in order of registration.
func (a *Atomic[T]) OnComplete(fn func(T)) { a.onComplete = append(a.onComplete, fn) }

// Value returns the held value, or the zero value of T if the node has
// never been updated.
func (a *Atomic[T]) Value() T { return a.value }

// IsEmpty reports whether the node has never been updated.
func (a *Atomic[T]) IsEmpty() bool { return !a.set }

func (a *Atomic[T]) snapshot() any { return a.value }
