// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jfill

import (
	"fmt"

	"github.com/creachadair/jfill/partial"
	"github.com/tailscale/hujson"
)

// Fill applies a complete JSON document to root and finalizes it, invoking
// the same observers a streamed document would. The input may carry comments
// and trailing commas; it is normalized to standard JSON before decoding.
//
// Unlike [Parser.Push], input after the end of the document is an error, and
// nothing is applied or finalized if the document is ill-formed.
func Fill(root Node, data []byte) error {
	std, err := hujson.Standardize(data)
	if err != nil {
		return fmt.Errorf("standardize: %w", err)
	}
	v, err := partial.Decode(std)
	if err != nil {
		return err
	}
	root.Update(v)
	root.Finalize()
	return nil
}
