// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jfill

import "github.com/creachadair/jfill/partial"

// A List is an append-only sequence of child nodes of a single kind.
// Snapshots update existing children in place by position; elements past the
// end of the sequence construct new children. Children are never removed or
// reordered.
type List[T Node] struct {
	newItem    func() T
	items      []T
	onAppend   []func(T)
	onComplete []func([]T)
}

// NewList constructs a new empty List whose children are built by newItem.
// NewList panics if newItem is nil.
func NewList[T Node](newItem func() T) *List[T] {
	if newItem == nil {
		panic("jfill: List has no item constructor")
	}
	return &List[T]{newItem: newItem}
}

// Update applies an array snapshot. Each element updates the child at its
// position. The arrival of an element at a new position finalizes the
// previous last child, whose value can no longer change, then constructs a
// new child and reports it to append observers.
func (l *List[T]) Update(v partial.Value) {
	arr, ok := v.(partial.Array)
	if !ok || len(arr) == 0 {
		return
	}
	for i, elt := range arr {
		if i < len(l.items) {
			l.items[i].Update(elt)
			continue
		}

		if n := len(l.items); n > 0 {
			l.items[n-1].Finalize()
		}
		item := l.newItem()
		item.Update(elt)
		l.items = append(l.items, item)
		for _, fn := range l.onAppend {
			fn(item)
		}
	}
}

// Finalize reports the current children to completion observers. The
// children themselves are not finalized.
func (l *List[T]) Finalize() {
	for _, fn := range l.onComplete {
		fn(l.items)
	}
}

// OnAppend registers fn to be called with each newly constructed child. The
// child is live: snapshots that follow keep updating it through the same
// reference. Observers are invoked synchronously, in order of registration.
func (l *List[T]) OnAppend(fn func(item T)) { l.onAppend = append(l.onAppend, fn) }

// OnComplete registers fn to be called with all children when the node is
// finalized.
func (l *List[T]) OnComplete(fn func(items []T)) { l.onComplete = append(l.onComplete, fn) }

// Values returns the current children. The returned slice is shared with the
// list and must not be modified by the caller.
func (l *List[T]) Values() []T { return l.items }

// Len reports the number of children.
func (l *List[T]) Len() int { return len(l.items) }

func (l *List[T]) snapshot() any { return l.items }
