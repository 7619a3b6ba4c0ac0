// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jfill

import (
	"bytes"
	"strings"

	"github.com/creachadair/jfill/partial"
)

// A Parser owns the accumulating text of one streamed JSON document and
// drives a node tree from it.
type Parser struct {
	root Node
	buf  bytes.Buffer
}

// NewParser constructs a Parser that applies decoded snapshots of the
// accumulated text to root, typically a [Struct] matching the document's
// expected shape.
func NewParser(root Node) *Parser { return &Parser{root: root} }

// Push appends fragment to the accumulated text, decodes the text as a
// whole, and applies the decoded snapshot to the root node. Fragments that
// are empty or all whitespace are ignored.
//
// If the accumulated text is ill-formed, Push reports a [partial.SyntaxError]
// without updating the tree. The fragment remains in the accumulated text
// even when the decode fails.
func (p *Parser) Push(fragment string) error {
	if strings.TrimSpace(fragment) == "" {
		return nil
	}
	p.buf.WriteString(fragment)

	v, err := partial.DecodeLast(p.buf.Bytes())
	if err != nil {
		return err
	}
	p.root.Update(v)
	return nil
}

// Run invokes fn with p, and finalizes the root node when fn returns or
// panics. The root is finalized exactly once per call; an error reported by
// fn is returned after finalization.
func (p *Parser) Run(fn func(*Parser) error) error {
	defer p.root.Finalize()
	return fn(p)
}

// Root returns the node the parser was constructed with.
func (p *Parser) Root() Node { return p.root }

// Buffer returns the accumulated text of the document. The contents are only
// valid until the next call to Push.
func (p *Parser) Buffer() []byte { return p.buf.Bytes() }
