package seq

import (
	"errors"
	"iter"

	"github.com/npillmayer/fingertree"
	"github.com/npillmayer/fingertree/measure"
)

var (
	// ErrIndexOutOfBounds signals an invalid positional index.
	ErrIndexOutOfBounds = errors.New("seq: index out of bounds")
)

// Seq is a persistent sequence of elements of type T.
//
// A sequence created by
//
//	Seq[T]{}
//
// is a valid object and behaves like the empty sequence.
type Seq[T any] struct {
	tree fingertree.Tree[uint64, T]
	set  bool
}

func newTree[T any]() fingertree.Tree[uint64, T] {
	tree, err := fingertree.New[uint64, T](measure.Count[T]{})
	assert(err == nil, "seq: cannot create finger tree")
	return tree
}

// ft returns the underlying tree, materializing one for the zero value.
func (s Seq[T]) ft() fingertree.Tree[uint64, T] {
	if s.set {
		return s.tree
	}
	return newTree[T]()
}

func wrap[T any](tree fingertree.Tree[uint64, T]) Seq[T] {
	return Seq[T]{tree: tree, set: true}
}

// New creates an empty sequence.
func New[T any]() Seq[T] {
	return wrap(newTree[T]())
}

// FromSlice creates a sequence holding the given elements in order.
func FromSlice[T any](xs []T) Seq[T] {
	tree, err := fingertree.FromSlice[uint64, T](measure.Count[T]{}, xs)
	assert(err == nil, "seq: cannot create finger tree")
	return wrap(tree)
}

// Len returns the number of elements.
func (s Seq[T]) Len() int {
	return int(s.ft().Measure())
}

// IsEmpty reports whether the sequence has no elements.
func (s Seq[T]) IsEmpty() bool {
	return s.ft().IsEmpty()
}

// Prepend returns a new sequence with x at the front.
func (s Seq[T]) Prepend(x T) Seq[T] {
	return wrap(s.ft().Cons(x))
}

// Append returns a new sequence with x at the back.
func (s Seq[T]) Append(x T) Seq[T] {
	return wrap(s.ft().Snoc(x))
}

// First returns the front element, if any.
func (s Seq[T]) First() (T, bool) {
	x, _, ok := s.ft().ViewLeft()
	return x, ok
}

// Last returns the back element, if any.
func (s Seq[T]) Last() (T, bool) {
	x, _, ok := s.ft().ViewRight()
	return x, ok
}

// PopFront removes the front element and returns it together with the
// remaining sequence.
func (s Seq[T]) PopFront() (T, Seq[T], bool) {
	x, rest, ok := s.ft().ViewLeft()
	if !ok {
		return x, s, false
	}
	return x, wrap(rest), true
}

// PopBack removes the back element and returns it together with the
// remaining sequence.
func (s Seq[T]) PopBack() (T, Seq[T], bool) {
	x, rest, ok := s.ft().ViewRight()
	if !ok {
		return x, s, false
	}
	return x, wrap(rest), true
}

// Concat concatenates sequences and returns a new sequence.
func Concat[T any](s Seq[T], others ...Seq[T]) Seq[T] {
	tree := s.ft()
	for _, o := range others {
		tree = tree.Append(o.ft())
	}
	return wrap(tree)
}

// At returns the element at index i.
func (s Seq[T]) At(i int) (T, error) {
	var none T
	if i < 0 || i >= s.Len() {
		tracer().Debugf("seq index %d out of bounds", i)
		return none, ErrIndexOutOfBounds
	}
	boundary := uint64(i)
	right := s.ft().DropUntil(func(v uint64) bool { return v > boundary })
	x, _, ok := right.ViewLeft()
	assert(ok, "seq: in-bounds index yields no element")
	return x, nil
}

// SplitAt splits a sequence right before index i and returns both parts.
// Split(s, i) => s1 = x0,…,xi-1 and s2 = xi,…,xn.
func (s Seq[T]) SplitAt(i int) (Seq[T], Seq[T], error) {
	if i < 0 || i > s.Len() {
		return Seq[T]{}, Seq[T]{}, ErrIndexOutOfBounds
	}
	boundary := uint64(i)
	left, right := s.ft().Split(func(v uint64) bool { return v > boundary })
	return wrap(left), wrap(right), nil
}

// InsertAt inserts x right before index i, resulting in a new sequence.
// i may equal Len(), appending at the back.
func (s Seq[T]) InsertAt(i int, x T) (Seq[T], error) {
	left, right, err := s.SplitAt(i)
	if err != nil {
		return s, err
	}
	return wrap(left.ft().Append(right.ft().Cons(x))), nil
}

// DeleteAt removes the element at index i, resulting in a new sequence.
func (s Seq[T]) DeleteAt(i int) (Seq[T], error) {
	if i < 0 || i >= s.Len() {
		return s, ErrIndexOutOfBounds
	}
	left, right, err := s.SplitAt(i)
	if err != nil {
		return s, err
	}
	_, rest, ok := right.ft().ViewLeft()
	assert(ok, "seq: in-bounds delete yields no element")
	return wrap(left.ft().Append(rest)), nil
}

// Each visits all elements in order. Iteration stops early if the callback
// returns false.
func (s Seq[T]) Each(fn func(x T, i int) bool) {
	i := 0
	s.ft().Each(func(x T) bool {
		keep := fn(x, i)
		i++
		return keep
	})
}

// All returns an iterator over all elements in logical order.
func (s Seq[T]) All() iter.Seq[T] {
	return s.ft().All()
}

// Backward returns an iterator over all elements in reverse order.
func (s Seq[T]) Backward() iter.Seq[T] {
	return s.ft().Backward()
}

// Slice collects all elements into a fresh slice. This may be an expensive
// operation, as it will allocate room for all elements of the sequence.
func (s Seq[T]) Slice() []T {
	return s.ft().Slice()
}
