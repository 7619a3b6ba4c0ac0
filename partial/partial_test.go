// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package partial_test

import (
	"testing"

	"github.com/creachadair/jfill/partial"
)

func TestValueJSON(t *testing.T) {
	tests := []struct {
		input partial.Value
		want  string
	}{
		{partial.Null{}, "null"},

		{partial.Bool(false), "false"},
		{partial.Bool(true), "true"},

		{partial.String(""), `""`},
		{partial.String("a \t b"), `"a \t b"`},

		{partial.Number(-0.00239), `-0.00239`},

		{partial.Integer(0), `0`},
		{partial.Integer(15), `15`},
		{partial.Integer(-25), `-25`},

		{partial.Array{}, `[]`},
		{partial.Array{
			partial.Bool(false),
		}, `[false]`},
		{partial.Array{
			partial.Bool(true),
			partial.Integer(199),
		}, `[true,199]`},
		{partial.Array{
			partial.String("free"),
			partial.String("your"),
			partial.String("mind"),
		}, `["free","your","mind"]`},

		{partial.Object{}, `{}`},
		{partial.Object{
			partial.Field("xs", partial.Null{}),
		}, `{"xs":null}`},
		{partial.Object{
			partial.Field("name", partial.String("Dennis")),
			partial.Field("age", partial.Integer(37)),
			partial.Field("isOld", partial.Bool(false)),
		}, `{"name":"Dennis","age":37,"isOld":false}`},

		{partial.Object{
			partial.Field("values", partial.Array{
				partial.Integer(5),
				partial.Integer(10),
				partial.Bool(true),
			}),
			partial.Field("page", partial.Object{
				partial.Field("token", partial.String("xyz-pdq-zvm")),
				partial.Field("count", partial.Integer(100)),
			}),
		}, `{"values":[5,10,true],"page":{"token":"xyz-pdq-zvm","count":100}}`},
	}
	for _, test := range tests {
		got := test.input.JSON()
		if got != test.want {
			t.Errorf("Input: %+v\nGot:  %s\nWant: %s", test.input, got, test.want)
		}
	}
}

func TestObjectFind(t *testing.T) {
	obj := partial.Object{
		partial.Field("first", partial.Integer(1)),
		partial.Field("second", partial.String("two")),
		partial.Field("first", partial.Bool(true)), // shadowed by the first "first"
	}

	if m := obj.Find("missing"); m != nil {
		t.Errorf(`Find("missing"): got %v, want nil`, m)
	}
	if m := obj.Find("second"); m == nil {
		t.Error(`Find("second"): got nil, want a member`)
	} else if got := m.Value.JSON(); got != `"two"` {
		t.Errorf(`Find("second") value: got %s, want "two"`, got)
	}
	if m := obj.Find("first"); m == nil {
		t.Error(`Find("first"): got nil, want a member`)
	} else if got := m.Value.JSON(); got != `1` {
		t.Errorf(`Find("first") value: got %s, want 1 (the first match)`, got)
	}
}
