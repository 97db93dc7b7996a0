package ordered

import (
	"cmp"
	"errors"
	"iter"

	"github.com/npillmayer/fingertree"
	"github.com/npillmayer/fingertree/measure"
)

var (
	// ErrEmptySeq signals an extraction from a sequence without keys.
	ErrEmptySeq = errors.New("ordered: sequence is empty")
	// ErrKeyNotFound signals a deletion of a key not in the sequence.
	ErrKeyNotFound = errors.New("ordered: key not found")
)

// Seq is a persistent sequence of keys of type K, kept in ascending order.
type Seq[K cmp.Ordered] struct {
	tree fingertree.Tree[measure.Key[K], K]
	set  bool
}

func newTree[K cmp.Ordered]() fingertree.Tree[measure.Key[K], K] {
	tree, err := fingertree.New[measure.Key[K], K](measure.Keyed[K]{})
	assert(err == nil, "ordered: cannot create finger tree")
	return tree
}

func (s Seq[K]) ft() fingertree.Tree[measure.Key[K], K] {
	if s.set {
		return s.tree
	}
	return newTree[K]()
}

func wrap[K cmp.Ordered](tree fingertree.Tree[measure.Key[K], K]) Seq[K] {
	return Seq[K]{tree: tree, set: true}
}

// atLeast is the split predicate for key boundary k: it flips at the first
// key >= k. Keys are stored in ascending order, so the predicate is
// monotone over accumulated measures.
func atLeast[K cmp.Ordered](k K) func(measure.Key[K]) bool {
	return func(v measure.Key[K]) bool {
		return v.Present && v.Value >= k
	}
}

// New creates an empty ordered sequence.
func New[K cmp.Ordered]() Seq[K] {
	return wrap(newTree[K]())
}

// FromSlice creates an ordered sequence holding all keys of xs.
func FromSlice[K cmp.Ordered](xs []K) Seq[K] {
	s := New[K]()
	for _, x := range xs {
		s = s.Insert(x)
	}
	return s
}

// Len returns the number of keys. Len runs in O(n); clients needing a
// cheap count should track it alongside the sequence.
func (s Seq[K]) Len() int {
	n := 0
	s.ft().Each(func(K) bool {
		n++
		return true
	})
	return n
}

// IsEmpty reports whether the sequence has no keys.
func (s Seq[K]) IsEmpty() bool {
	return s.ft().IsEmpty()
}

// Insert returns a new sequence with k added at its ordered position,
// before any equal keys already present.
func (s Seq[K]) Insert(k K) Seq[K] {
	left, right := s.ft().Split(atLeast(k))
	return wrap(left.Append(right.Cons(k)))
}

// Contains reports whether k occurs in the sequence.
func (s Seq[K]) Contains(k K) bool {
	right := s.ft().DropUntil(atLeast(k))
	x, _, ok := right.ViewLeft()
	return ok && x == k
}

// Delete removes one occurrence of k, resulting in a new sequence.
func (s Seq[K]) Delete(k K) (Seq[K], error) {
	left, right := s.ft().Split(atLeast(k))
	x, rest, ok := right.ViewLeft()
	if !ok || x != k {
		tracer().Debugf("cannot delete key not in sequence")
		return s, ErrKeyNotFound
	}
	return wrap(left.Append(rest)), nil
}

// Min returns the smallest key.
func (s Seq[K]) Min() (K, error) {
	x, _, ok := s.ft().ViewLeft()
	if !ok {
		var none K
		return none, ErrEmptySeq
	}
	return x, nil
}

// Max returns the greatest key.
func (s Seq[K]) Max() (K, error) {
	x, _, ok := s.ft().ViewRight()
	if !ok {
		var none K
		return none, ErrEmptySeq
	}
	return x, nil
}

// Partition splits the sequence at key boundary k. The left part holds all
// keys smaller than k, the right part all keys greater than or equal to k.
func (s Seq[K]) Partition(k K) (Seq[K], Seq[K]) {
	left, right := s.ft().Split(atLeast(k))
	return wrap(left), wrap(right)
}

// Union merges two ordered sequences, keeping all occurrences of either.
// The smaller sequence is folded into the larger one, key by key.
func Union[K cmp.Ordered](s, other Seq[K]) Seq[K] {
	a, b := s, other
	if a.Len() < b.Len() {
		a, b = b, a
	}
	b.ft().Each(func(k K) bool {
		a = a.Insert(k)
		return true
	})
	return a
}

// Each visits all keys in ascending order. Iteration stops early if the
// callback returns false.
func (s Seq[K]) Each(fn func(k K) bool) {
	s.ft().Each(fn)
}

// All returns an iterator over all keys in ascending order.
func (s Seq[K]) All() iter.Seq[K] {
	return s.ft().All()
}

// Slice returns all keys as a slice, in ascending order.
func (s Seq[K]) Slice() []K {
	return s.ft().Slice()
}
