/*
Package fingertree implements a persistent 2-3 finger tree, annotated with a
client-supplied monoid.

Finger trees

Finger trees are a general purpose functional sequence structure, described
by Hinze & Paterson in “Finger trees: a simple general-purpose data
structure” (Journal of Functional Programming, 2006). A single structure,
parameterized over a monoid and a per-element measuring function, subsumes a
whole family of containers: sequences and deques, priority queues, ordered
(search) sequences, and so on. Sub-packages of this module provide
ready-made instantiations.

Both ends of a finger tree are held in shallow buffers (“digits”), making
access and insertion at either end amortized O(1). The middle of the tree is
again a finger tree, one level deeper, holding 2-3-nodes of elements. This
telescoping shape yields O(log n) concatenation and O(log n) splitting at an
arbitrary position described by a predicate over accumulated measures.

Performance characteristics compared to a slice:

	Operation     |   Finger tree   |  Slice
	--------------+-----------------+--------
	First/Last    |   O(1)          |   O(1)
	Cons/Snoc     |   O(1) amort.   |   O(n) / O(1) amort.
	Concatenate   |   O(log n)      |   O(n)
	Split         |   O(log n)      |   O(n)
	Iterate       |   O(n)          |   O(n)

All trees are immutable: every operation returns a new tree which shares
untouched substructure with its input. No node is ever mutated after
construction, so trees may be used from multiple goroutines without
coordination.

# BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the License file in the repository root.
*/
package fingertree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// TreeError is an error type for the fingertree module.
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrEmptyTree is flagged when a reduction is requested for a tree without
// any elements.
const ErrEmptyTree = TreeError("operation undefined on empty tree")

// ErrNoMeasure is flagged when a tree is created without a measure.
const ErrNoMeasure = TreeError("tree construction requires a measure")

// ErrTreeSealed signals that a builder has already completed a tree and it's
// illegal to further add elements.
const ErrTreeSealed = TreeError("forbidden to add elements; tree has been completed")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
