package measure

import "cmp"

// Size aggregates element counts for sequence-shaped trees.
type Size struct{}

// Zero returns the neutral count.
func (Size) Zero() uint64 { return 0 }

// Add combines two counts.
func (Size) Add(left, right uint64) uint64 { return left + right }

// Count measures every element as one, making the tree measure the element
// count. It is the measured instance behind sequences and deques.
type Count[A any] struct{ Size }

// Measure returns 1 for any element.
func (Count[A]) Measure(A) uint64 { return 1 }

// Key annotates a subtree with the greatest key it holds. The zero value
// marks the measure of an empty subtree.
type Key[K cmp.Ordered] struct {
	Present bool
	Value   K
}

// KeyMonoid aggregates keys of ordered sequences. For sequences kept in
// ascending key order, the rightmost present key is the greatest one.
type KeyMonoid[K cmp.Ordered] struct{}

// Zero returns the absent key.
func (KeyMonoid[K]) Zero() Key[K] { return Key[K]{} }

// Add combines two key annotations; the right one wins when present.
func (KeyMonoid[K]) Add(left, right Key[K]) Key[K] {
	if right.Present {
		return right
	}
	return left
}

// Keyed measures ordered-sequence elements by themselves.
type Keyed[K cmp.Ordered] struct{ KeyMonoid[K] }

// Measure annotates an element with its own key.
func (Keyed[K]) Measure(k K) Key[K] { return Key[K]{Present: true, Value: k} }

// Prio annotates a subtree with the maximum priority it holds. The zero
// value marks the measure of an empty subtree.
type Prio[P cmp.Ordered] struct {
	Present bool
	Value   P
}

// PrioMonoid aggregates priorities by maximum.
type PrioMonoid[P cmp.Ordered] struct{}

// Zero returns the absent priority.
func (PrioMonoid[P]) Zero() Prio[P] { return Prio[P]{} }

// Add combines two priority annotations, keeping the greater one.
func (PrioMonoid[P]) Add(left, right Prio[P]) Prio[P] {
	switch {
	case !left.Present:
		return right
	case !right.Present:
		return left
	case right.Value > left.Value:
		return right
	default:
		return left
	}
}
