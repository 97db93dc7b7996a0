package fingertree

// element is the uniform item stored at any level of the tree spine: either
// a leaf carrying one client value, or a node grouping 2 or 3 elements of
// the level below. The measure of an element is cached at construction and
// read in O(1) thereafter; tree code never re-measures.
//
// Erasing the level distinction behind one interface keeps the telescoping
// element types (client values at the bottom, nodes of nodes above) out of
// the type system. Go generics reject the polymorphically recursive
// instantiation a fully typed middle tree would need.
type element[V any] interface {
	measure() V
}

// leaf wraps one client value together with its measure.
//
// Leaves occur only at the outermost tree level; all deeper levels hold
// nodes. The public API wraps and unwraps client values at the boundary.
type leaf[V, A any] struct {
	m V
	a A
}

func (l leaf[V, A]) measure() V { return l.m }

// node groups exactly 2 or 3 children of the level below, annotated with
// the combined measure of its children. Nodes are the elements of a deep
// tree's middle spine.
type node[V any] struct {
	m    V
	kids []element[V] // exactly 2 or 3, left to right
}

func (n *node[V]) measure() V { return n.m }

func node2[V any](mo Monoid[V], a, b element[V]) *node[V] {
	return &node[V]{
		m:    mo.Add(a.measure(), b.measure()),
		kids: []element[V]{a, b},
	}
}

func node3[V any](mo Monoid[V], a, b, c element[V]) *node[V] {
	return &node[V]{
		m:    mo.Add(mo.Add(a.measure(), b.measure()), c.measure()),
		kids: []element[V]{a, b, c},
	}
}

// toDigit repacks a node as a digit of the same elements. The cached measure
// carries over without re-combining.
func (n *node[V]) toDigit() digit[V] {
	assert(len(n.kids) == 2 || len(n.kids) == 3, "node arity out of range")
	return digit[V]{m: n.m, els: n.kids}
}

// digit is an ordered buffer of 1 to 4 elements, forming the exposed
// prefix/suffix of a deep tree. Its measure is the left-to-right combine of
// the element measures, cached at construction.
type digit[V any] struct {
	m   V
	els []element[V] // 1 to 4, left to right
}

// newDigit builds a digit from 1 to 4 elements. The element slice is stored
// as-is; digits are immutable, so callers must not retain a mutable alias.
func newDigit[V any](mo Monoid[V], els ...element[V]) digit[V] {
	assert(len(els) >= 1 && len(els) <= 4, "digit arity out of range")
	m := els[0].measure()
	for _, el := range els[1:] {
		m = mo.Add(m, el.measure())
	}
	return digit[V]{m: m, els: els}
}

func (d digit[V]) head() element[V] { return d.els[0] }
func (d digit[V]) last() element[V] { return d.els[len(d.els)-1] }

// prepend grows the digit at the left end. Precondition: the digit holds at
// most 3 elements; overflow handling is the caller's concern.
func (d digit[V]) prepend(mo Monoid[V], el element[V]) digit[V] {
	assert(len(d.els) <= 3, "digit overflow on prepend")
	els := make([]element[V], 0, len(d.els)+1)
	els = append(els, el)
	els = append(els, d.els...)
	return digit[V]{m: mo.Add(el.measure(), d.m), els: els}
}

// extend grows the digit at the right end. Precondition as for prepend.
func (d digit[V]) extend(mo Monoid[V], el element[V]) digit[V] {
	assert(len(d.els) <= 3, "digit overflow on extend")
	els := make([]element[V], 0, len(d.els)+1)
	els = append(els, d.els...)
	els = append(els, el)
	return digit[V]{m: mo.Add(d.m, el.measure()), els: els}
}
