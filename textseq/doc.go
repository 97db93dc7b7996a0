/*
Package textseq loads UTF-8 text files as persistent sequences of lines.

Loading happens asynchronously in the background: the file is read in
fragments, fragments are split into lines, and lines are appended to a
sequence. Clients either block on Lines until loading is complete, or
subscribe to broadcast progress events while the load is running.

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textseq

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fingertree'
func tracer() tracing.Trace {
	return tracing.Select("fingertree")
}
