/*
Package pqueue provides a persistent max-priority queue, built on a finger
tree measured by maximum priority.

Insertion is amortized O(1); finding the maximum is O(1), as it is the
cached measure at the tree root, and removing it is O(log n) via a
measure-predicate split. Queues are immutable values: every operation
returns a new queue sharing structure with its input. The zero value
Queue{} is a valid empty queue.

Items of equal priority are extracted in insertion order.

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package pqueue

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
