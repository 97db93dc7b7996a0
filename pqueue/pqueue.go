package pqueue

import (
	"cmp"
	"errors"

	"github.com/npillmayer/fingertree"
	"github.com/npillmayer/fingertree/measure"
)

var (
	// ErrEmptyQueue signals an extraction from a queue without elements.
	ErrEmptyQueue = errors.New("pqueue: queue is empty")
)

// entry pairs a client item with its priority.
type entry[P cmp.Ordered, T any] struct {
	prio P
	item T
}

// prioritized measures entries by their priority.
type prioritized[P cmp.Ordered, T any] struct {
	measure.PrioMonoid[P]
}

func (prioritized[P, T]) Measure(e entry[P, T]) measure.Prio[P] {
	return measure.Prio[P]{Present: true, Value: e.prio}
}

// Queue is a persistent max-priority queue of items of type T with
// priorities of type P.
type Queue[P cmp.Ordered, T any] struct {
	tree fingertree.Tree[measure.Prio[P], entry[P, T]]
	set  bool
}

func newTree[P cmp.Ordered, T any]() fingertree.Tree[measure.Prio[P], entry[P, T]] {
	tree, err := fingertree.New[measure.Prio[P], entry[P, T]](prioritized[P, T]{})
	assert(err == nil, "pqueue: cannot create finger tree")
	return tree
}

func (q Queue[P, T]) ft() fingertree.Tree[measure.Prio[P], entry[P, T]] {
	if q.set {
		return q.tree
	}
	return newTree[P, T]()
}

func wrap[P cmp.Ordered, T any](tree fingertree.Tree[measure.Prio[P], entry[P, T]]) Queue[P, T] {
	return Queue[P, T]{tree: tree, set: true}
}

// New creates an empty queue.
func New[P cmp.Ordered, T any]() Queue[P, T] {
	return wrap(newTree[P, T]())
}

// Len returns the number of queued items. Len runs in O(n); clients
// needing a cheap count should track it alongside the queue.
func (q Queue[P, T]) Len() int {
	n := 0
	q.ft().Each(func(entry[P, T]) bool {
		n++
		return true
	})
	return n
}

// IsEmpty reports whether the queue has no items.
func (q Queue[P, T]) IsEmpty() bool {
	return q.ft().IsEmpty()
}

// Insert returns a new queue with item queued at priority prio.
func (q Queue[P, T]) Insert(prio P, item T) Queue[P, T] {
	return wrap(q.ft().Snoc(entry[P, T]{prio: prio, item: item}))
}

// Max returns the item with the greatest priority without removing it.
func (q Queue[P, T]) Max() (T, P, error) {
	tree := q.ft()
	top := tree.Measure()
	if !top.Present {
		var noneT T
		var noneP P
		return noneT, noneP, ErrEmptyQueue
	}
	e := maxEntry(tree, top)
	return e.item, e.prio, nil
}

// PopMax removes the item with the greatest priority and returns it
// together with the remaining queue.
func (q Queue[P, T]) PopMax() (T, P, Queue[P, T], error) {
	tree := q.ft()
	top := tree.Measure()
	if !top.Present {
		tracer().Debugf("pop from empty priority queue")
		var noneT T
		var noneP P
		return noneT, noneP, q, ErrEmptyQueue
	}
	left, right := tree.Split(func(v measure.Prio[P]) bool {
		return v.Present && v.Value >= top.Value
	})
	e, rest, ok := right.ViewLeft()
	assert(ok, "pqueue: non-empty queue yields no maximum")
	return e.item, e.prio, wrap(left.Append(rest)), nil
}

// maxEntry locates the first entry carrying the maximum priority.
//
// The accumulated maximum is monotonic from the left, so the predicate
// flips exactly at the first occurrence of the overall maximum.
func maxEntry[P cmp.Ordered, T any](
	tree fingertree.Tree[measure.Prio[P], entry[P, T]], top measure.Prio[P],
) entry[P, T] {
	right := tree.DropUntil(func(v measure.Prio[P]) bool {
		return v.Present && v.Value >= top.Value
	})
	e, _, ok := right.ViewLeft()
	assert(ok, "pqueue: non-empty queue yields no maximum")
	return e
}
