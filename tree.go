package fingertree

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Tree is a persistent, monoid-annotated 2-3 finger tree over elements of
// type A with measures of type V.
//
// A tree is created through New, Single or FromSlice and is immutable from
// then on: every operation returns a new tree sharing untouched
// substructure with its input. The zero value Tree{} carries no measure and
// is not usable; this is asserted by all operations.
//
// Trees passed to binary operations (Append) must have been created with
// the same Measured instance. This is a documented precondition, not
// checked at runtime: measured instances may hold functions, which Go
// cannot compare.
type Tree[V, A any] struct {
	meas Measured[V, A]
	root spine[V]
}

// New creates an empty tree measured by m.
func New[V, A any](m Measured[V, A]) (Tree[V, A], error) {
	if m == nil {
		return Tree[V, A]{}, ErrNoMeasure
	}
	return Tree[V, A]{meas: m, root: emptyTree[V]{}}, nil
}

// Single creates a tree holding exactly one element.
func Single[V, A any](m Measured[V, A], a A) (Tree[V, A], error) {
	if m == nil {
		return Tree[V, A]{}, ErrNoMeasure
	}
	return Tree[V, A]{
		meas: m,
		root: singleTree[V]{el: leaf[V, A]{m: m.Measure(a), a: a}},
	}, nil
}

// FromSlice creates a tree holding the given elements in order.
func FromSlice[V, A any](m Measured[V, A], as []A) (Tree[V, A], error) {
	t, err := New(m)
	if err != nil {
		return t, err
	}
	for _, a := range as {
		t = t.Snoc(a)
	}
	return t, nil
}

func (t Tree[V, A]) ensure() {
	assert(t.meas != nil, "tree is not initialized; use fingertree.New")
}

// spine returns the root spine, mapping an unset root to the empty tree.
func (t Tree[V, A]) spine() spine[V] {
	if t.root == nil {
		return emptyTree[V]{}
	}
	return t.root
}

func (t Tree[V, A]) with(root spine[V]) Tree[V, A] {
	return Tree[V, A]{meas: t.meas, root: root}
}

func (t Tree[V, A]) wrap(a A) leaf[V, A] {
	return leaf[V, A]{m: t.meas.Measure(a), a: a}
}

func (t Tree[V, A]) unwrap(el element[V]) A {
	lf, ok := el.(leaf[V, A])
	assert(ok, "outermost tree level must hold client values")
	return lf.a
}

// Measure returns the combined measure of all elements, in left-to-right
// order. O(1): measures are cached on every node.
func (t Tree[V, A]) Measure() V {
	t.ensure()
	return t.spine().measureWith(t.meas)
}

// IsEmpty reports whether the tree has no elements.
func (t Tree[V, A]) IsEmpty() bool {
	_, ok := t.spine().(emptyTree[V])
	return ok
}

// IsSingle reports whether the tree holds exactly one element.
func (t Tree[V, A]) IsSingle() bool {
	_, ok := t.spine().(singleTree[V])
	return ok
}

// IsDeep reports whether the tree has the three-part prefix/middle/suffix
// shape, i.e. holds at least two elements.
func (t Tree[V, A]) IsDeep() bool {
	_, ok := t.spine().(*deepTree[V])
	return ok
}

// Cons returns a new tree with a prepended to the left end.
func (t Tree[V, A]) Cons(a A) Tree[V, A] {
	t.ensure()
	return t.with(cons[V](t.meas, t.spine(), t.wrap(a)))
}

// Snoc returns a new tree with a appended to the right end.
func (t Tree[V, A]) Snoc(a A) Tree[V, A] {
	t.ensure()
	return t.with(snoc[V](t.meas, t.spine(), t.wrap(a)))
}

// ViewLeft uncovers the leftmost element. It returns the element, the tree
// of the remaining elements, and false iff the tree is empty.
func (t Tree[V, A]) ViewLeft() (A, Tree[V, A], bool) {
	t.ensure()
	el, rest, ok := viewLeft[V](t.meas, t.spine())
	if !ok {
		var none A
		return none, t, false
	}
	return t.unwrap(el), t.with(rest), true
}

// ViewRight uncovers the rightmost element. It returns the element, the
// tree of the remaining elements, and false iff the tree is empty.
func (t Tree[V, A]) ViewRight() (A, Tree[V, A], bool) {
	t.ensure()
	el, rest, ok := viewRight[V](t.meas, t.spine())
	if !ok {
		var none A
		return none, t, false
	}
	return t.unwrap(el), t.with(rest), true
}

// --- Spine -----------------------------------------------------------------

// spine is the recursive container shape: empty, a single element, or the
// deep three-part form. All spine variants are immutable after construction.
type spine[V any] interface {
	measureWith(mo Monoid[V]) V
}

type emptyTree[V any] struct{}

type singleTree[V any] struct {
	el element[V]
}

// deepTree caches the combined measure of prefix, middle and suffix in m.
// The cached value must equal the recomputed combine at all times; this is
// a structural invariant verified by Check in tests, never at runtime.
type deepTree[V any] struct {
	m   V
	pr  digit[V]
	mid spine[V] // elements are *node[V], one level down
	sf  digit[V]
}

func (emptyTree[V]) measureWith(mo Monoid[V]) V { return mo.Zero() }
func (t singleTree[V]) measureWith(Monoid[V]) V { return t.el.measure() }
func (t *deepTree[V]) measureWith(Monoid[V]) V  { return t.m }

// deep is the smart constructor for the three-part shape; it combines the
// cached part measures into the new total.
func deep[V any](mo Monoid[V], pr digit[V], mid spine[V], sf digit[V]) *deepTree[V] {
	return &deepTree[V]{
		m:   mo.Add(mo.Add(pr.m, mid.measureWith(mo)), sf.m),
		pr:  pr,
		mid: mid,
		sf:  sf,
	}
}

// cons prepends one element to a spine.
//
// A full prefix of four elements overflows: the inner three are packed into
// a 3-node pushed one level down, leaving a two-element prefix.
func cons[V any](mo Monoid[V], t spine[V], el element[V]) spine[V] {
	switch t := t.(type) {
	case emptyTree[V]:
		return singleTree[V]{el: el}
	case singleTree[V]:
		return deep(mo, newDigit(mo, el), emptyTree[V]{}, newDigit(mo, t.el))
	case *deepTree[V]:
		if len(t.pr.els) < 4 {
			return &deepTree[V]{
				m:   mo.Add(el.measure(), t.m),
				pr:  t.pr.prepend(mo, el),
				mid: t.mid,
				sf:  t.sf,
			}
		}
		b := t.pr.els
		mid := cons[V](mo, t.mid, node3(mo, b[1], b[2], b[3]))
		return deep(mo, newDigit(mo, el, b[0]), mid, t.sf)
	}
	assert(false, "cons: unknown tree variant")
	return nil
}

// snoc appends one element to a spine; mirror image of cons.
func snoc[V any](mo Monoid[V], t spine[V], el element[V]) spine[V] {
	switch t := t.(type) {
	case emptyTree[V]:
		return singleTree[V]{el: el}
	case singleTree[V]:
		return deep(mo, newDigit(mo, t.el), emptyTree[V]{}, newDigit(mo, el))
	case *deepTree[V]:
		if len(t.sf.els) < 4 {
			return &deepTree[V]{
				m:   mo.Add(t.m, el.measure()),
				pr:  t.pr,
				mid: t.mid,
				sf:  t.sf.extend(mo, el),
			}
		}
		b := t.sf.els
		mid := snoc[V](mo, t.mid, node3(mo, b[0], b[1], b[2]))
		return deep(mo, t.pr, mid, newDigit(mo, b[3], el))
	}
	assert(false, "snoc: unknown tree variant")
	return nil
}

// viewLeft uncovers the leftmost element of a spine. The third return value
// is false iff the spine is empty.
func viewLeft[V any](mo Monoid[V], t spine[V]) (element[V], spine[V], bool) {
	switch t := t.(type) {
	case emptyTree[V]:
		return nil, t, false
	case singleTree[V]:
		return t.el, emptyTree[V]{}, true
	case *deepTree[V]:
		return t.pr.head(), deepL(mo, t.pr.els[1:], t.mid, t.sf), true
	}
	assert(false, "viewLeft: unknown tree variant")
	return nil, nil, false
}

// viewRight uncovers the rightmost element of a spine.
func viewRight[V any](mo Monoid[V], t spine[V]) (element[V], spine[V], bool) {
	switch t := t.(type) {
	case emptyTree[V]:
		return nil, t, false
	case singleTree[V]:
		return t.el, emptyTree[V]{}, true
	case *deepTree[V]:
		n := len(t.sf.els)
		return t.sf.last(), deepR(mo, t.pr, t.mid, t.sf.els[:n-1]), true
	}
	assert(false, "viewRight: unknown tree variant")
	return nil, nil, false
}

// deepL rebuilds a deep spine whose prefix may have run empty. An empty
// prefix borrows a node from the middle; an empty middle collapses the
// suffix into a shallow tree.
func deepL[V any](mo Monoid[V], pr []element[V], mid spine[V], sf digit[V]) spine[V] {
	if len(pr) > 0 {
		return deep(mo, newDigit(mo, pr...), mid, sf)
	}
	el, rest, ok := viewLeft(mo, mid)
	if !ok {
		return digitToTree(mo, sf.els)
	}
	n, isNode := el.(*node[V])
	assert(isNode, "middle tree must hold nodes")
	return deep(mo, n.toDigit(), rest, sf)
}

// deepR rebuilds a deep spine whose suffix may have run empty; mirror image
// of deepL.
func deepR[V any](mo Monoid[V], pr digit[V], mid spine[V], sf []element[V]) spine[V] {
	if len(sf) > 0 {
		return deep(mo, pr, mid, newDigit(mo, sf...))
	}
	el, rest, ok := viewRight(mo, mid)
	if !ok {
		return digitToTree(mo, pr.els)
	}
	n, isNode := el.(*node[V])
	assert(isNode, "middle tree must hold nodes")
	return deep(mo, pr, rest, n.toDigit())
}

// digitToTree lifts up to four loose elements into a shallow spine.
func digitToTree[V any](mo Monoid[V], els []element[V]) spine[V] {
	assert(len(els) <= 4, "too many loose elements for a shallow tree")
	var t spine[V] = emptyTree[V]{}
	for i := len(els) - 1; i >= 0; i-- {
		t = cons(mo, t, els[i])
	}
	return t
}
