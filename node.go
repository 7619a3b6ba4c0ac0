// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jfill

import "github.com/creachadair/jfill/partial"

// A Node is a value in a tree being materialized from the growing text of a
// JSON document. Each node accepts successive decoded snapshots of its value
// and reports the changes between them to registered observers.
//
// The implementations of Node are [String], [Atomic], [List], and [Struct].
// A node is not safe for concurrent use without external synchronization.
type Node interface {
	// Update applies a decoded snapshot of the node's value. Snapshots of a
	// different shape than the node expects are ignored.
	Update(partial.Value)

	// Finalize declares the node's value closed and reports it to completion
	// observers. Finalize may be called more than once; observers are
	// re-invoked with the value at each call.
	Finalize()

	// snapshot returns the current materialized value of the node.
	snapshot() any
}
