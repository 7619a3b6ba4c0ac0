// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jfill

import (
	"fmt"

	"github.com/creachadair/jfill/partial"
	"github.com/creachadair/mds/mapset"
)

// A Field binds a key to its child node in a Struct schema.
type Field struct {
	Key  string
	Node Node
}

// A Struct materializes a JSON object with a fixed set of named fields.
// Members of a snapshot update the child nodes of the matching fields; keys
// outside the schema are ignored.
//
// A Struct tracks which field the incoming text is currently extending. The
// first snapshot that mentions a key not seen before marks the previously
// active field complete: the arrival of a later member is the only evidence
// that an earlier member's value has stopped growing.
type Struct struct {
	fields     []Field
	byKey      map[string]Node
	parsed     []string // keys in order of first appearance
	seen       mapset.Set[string]
	onComplete []func(map[string]any)
}

// NewStruct constructs a Struct with the given fields. The field set is
// fixed for the life of the node. NewStruct panics if a key is empty or
// duplicated, or if a field has no node.
func NewStruct(fields ...Field) *Struct {
	st := &Struct{
		fields: fields,
		byKey:  make(map[string]Node, len(fields)),
		seen:   mapset.New[string](),
	}
	for _, f := range fields {
		if f.Key == "" {
			panic("jfill: empty field key")
		}
		if f.Node == nil {
			panic(fmt.Sprintf("jfill: field %q has no node", f.Key))
		}
		if _, ok := st.byKey[f.Key]; ok {
			panic(fmt.Sprintf("jfill: duplicate field %q", f.Key))
		}
		st.byKey[f.Key] = f.Node
	}
	return st
}

// Update applies an object snapshot. Members update the nodes of matching
// fields, in order of appearance. When a member's key is observed for the
// first time, the previously active field is finalized before the new member
// is applied.
func (st *Struct) Update(v partial.Value) {
	obj, ok := v.(partial.Object)
	if !ok {
		return
	}
	for _, m := range obj {
		node, ok := st.byKey[m.Key]
		if !ok {
			continue
		}
		if !st.seen.Has(m.Key) {
			if n := len(st.parsed); n > 0 {
				st.byKey[st.parsed[n-1]].Finalize()
			}
			st.seen.Add(m.Key)
			st.parsed = append(st.parsed, m.Key)
		}
		node.Update(m.Value)
	}
}

// Finalize finalizes the active field, if any, and then reports the value of
// every field to completion observers. The report maps each declared key to
// its node's current value; fields never seen in a snapshot carry their zero
// values.
func (st *Struct) Finalize() {
	if n := len(st.parsed); n > 0 {
		st.byKey[st.parsed[n-1]].Finalize()
	}
	snap := st.snapshotMap()
	for _, fn := range st.onComplete {
		fn(snap)
	}
}

// OnComplete registers fn to be called with the value of every field when
// the node is finalized. Observers are invoked synchronously, in order of
// registration.
func (st *Struct) OnComplete(fn func(fields map[string]any)) {
	st.onComplete = append(st.onComplete, fn)
}

func (st *Struct) snapshotMap() map[string]any {
	snap := make(map[string]any, len(st.fields))
	for _, f := range st.fields {
		snap[f.Key] = f.Node.snapshot()
	}
	return snap
}

func (st *Struct) snapshot() any { return st.snapshotMap() }
