/*
Package ordered provides a persistent sequence of keys kept in ascending
order, built on a finger tree measured by greatest key.

Insertion, lookup and deletion run in O(log n) by splitting the underlying
tree at a key boundary. Sequences are immutable values: every operation
returns a new sequence sharing structure with its input. The zero value
Seq[K]{} is a valid empty sequence.

Keys may repeat; the sequence has multiset semantics. Delete removes a
single occurrence.

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package ordered

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
