// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package jfill incrementally materializes a tree of typed values from the
// growing text of a single JSON document, such as the output of a language
// model generating JSON token by token.
//
// # Nodes
//
// A tree is assembled from Node values mirroring the expected shape of the
// document:
//
//	Node    | JSON shape | Reports
//	------- | ---------- | -----------------------------------------
//	String  | string     | each newly arrived chunk of text
//	Atomic  | any        | its final value, replaced wholesale
//	List    | array      | each newly arrived element, then all of them
//	Struct  | object     | the values of its fields
//
// Construct the leaves first and keep the references; values are read back
// from the same nodes as the document grows:
//
//	name := jfill.NewString()
//	tags := jfill.NewList(jfill.NewString)
//	root := jfill.NewStruct(
//	   jfill.Field{Key: "name", Node: name},
//	   jfill.Field{Key: "tags", Node: tags},
//	)
//
// # Streaming
//
// A Parser accumulates document text pushed to it in arbitrary fragments,
// and after each push applies a freshly decoded snapshot of the whole
// accumulated text to the root node. Nodes compare each snapshot with what
// they already hold, so observers see each change exactly once no matter how
// the text was split:
//
//	p := jfill.NewParser(root)
//	err := p.Run(func(p *jfill.Parser) error {
//	   for fragment := range fragments {
//	      if err := p.Push(fragment); err != nil {
//	         return err
//	      }
//	   }
//	   return nil
//	})
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// Push reports an error of concrete type *partial.SyntaxError if the
// accumulated text is ill-formed beyond repair by further input. Text that
// is merely cut off mid-value is not an error; see the partial package for
// the decoding rules.
//
// # Completion
//
// A node cannot observe the end of its own value directly, since a cut-off
// snapshot always looks the same as a finished one. Completion is therefore
// inferred from context and reported to OnComplete observers:
//
//   - A List finalizes its previous last element when a new element arrives,
//     since elements are appended in order.
//   - A Struct finalizes the previously active field when a member with a
//     new key first appears.
//   - Run finalizes the root when its callback returns, closing whatever
//     value was still growing when the stream ended.
//
// Finalizing a Struct reports every declared field, including those the
// document never mentioned, which carry their zero values.
//
// To apply a complete document to a tree without streaming, use Fill. Fill
// also accepts human-edited documents with comments and trailing commas.
package jfill
