// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jfill_test

import (
	"testing"

	"github.com/creachadair/jfill"
	"github.com/creachadair/jfill/partial"
	"github.com/google/go-cmp/cmp"
)

func TestAtomicUpdate(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		a := jfill.NewAtomic[string]()
		if !a.IsEmpty() {
			t.Error("IsEmpty: got false, want true")
		}
		a.Update(partial.String("hello"))
		a.Update(partial.String("world")) // replaced wholesale
		if a.IsEmpty() {
			t.Error("IsEmpty: got true, want false")
		}
		if got := a.Value(); got != "world" {
			t.Errorf("Value: got %q, want %q", got, "world")
		}
	})

	t.Run("Int", func(t *testing.T) {
		a := jfill.NewAtomic[int]()
		a.Update(partial.Integer(42))
		if got := a.Value(); got != 42 {
			t.Errorf("Value: got %d, want 42", got)
		}
	})

	t.Run("Bool", func(t *testing.T) {
		a := jfill.NewAtomic[bool]()
		a.Update(partial.Bool(false))
		if a.IsEmpty() {
			t.Error("IsEmpty: got true, want false")
		}
		if got := a.Value(); got != false {
			t.Errorf("Value: got %v, want false", got)
		}
	})

	t.Run("Null", func(t *testing.T) {
		a := jfill.NewAtomic[any]()
		a.Update(partial.Null{})
		if a.IsEmpty() {
			t.Error("IsEmpty: got true, want false")
		}
		if got := a.Value(); got != nil {
			t.Errorf("Value: got %v, want nil", got)
		}
	})

	t.Run("Slice", func(t *testing.T) {
		a := jfill.NewAtomic[[]string]()
		a.Update(partial.Array{partial.String("a"), partial.String("b")})
		if diff := cmp.Diff([]string{"a", "b"}, a.Value()); diff != "" {
			t.Errorf("Value: (-want, +got)\n%s", diff)
		}
	})

	t.Run("Map", func(t *testing.T) {
		a := jfill.NewAtomic[map[string]any]()
		a.Update(partial.Object{
			partial.Field("key", partial.String("value")),
			partial.Field("n", partial.Integer(3)),
		})
		want := map[string]any{"key": "value", "n": float64(3)}
		if diff := cmp.Diff(want, a.Value()); diff != "" {
			t.Errorf("Value: (-want, +got)\n%s", diff)
		}
	})

	t.Run("WrongShape", func(t *testing.T) {
		a := jfill.NewAtomic[int]()
		a.Update(partial.String("not a number"))
		if a.IsEmpty() {
			t.Error("IsEmpty: got true, want false")
		}
		if got := a.Value(); got != 0 {
			t.Errorf("Value: got %d, want 0", got)
		}
	})
}

func TestAtomicFinalize(t *testing.T) {
	a := jfill.NewAtomic[int]()
	var got []int
	a.OnComplete(func(v int) { got = append(got, v) })

	a.Finalize() // never updated, no report
	if len(got) != 0 {
		t.Errorf("Completions before update: got %v, want none", got)
	}

	a.Update(partial.Integer(0)) // an explicit zero does report
	a.Finalize()
	a.Update(partial.Integer(5))
	a.Finalize()
	a.Finalize()

	want := []int{0, 5, 5}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Completions: (-want, +got)\n%s", diff)
	}
}
