/*
Package seq provides a persistent random-access sequence with deque
operations, built on a finger tree measured by element count.

Sequences are immutable values: every operation returns a new sequence
sharing structure with its input. The zero value Seq[T]{} is a valid empty
sequence.

Positional operations (At, SplitAt, InsertAt, DeleteAt) run in O(log n) by
splitting the underlying tree at an accumulated-count boundary; access and
insertion at either end is amortized O(1).

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package seq

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fingertree'
func tracer() tracing.Trace {
	return tracing.Select("fingertree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
