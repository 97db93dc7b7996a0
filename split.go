package fingertree

// Split partitions the tree at the position where pred flips from false to
// true over the accumulated measure from the left. The element at the flip
// position starts the right tree.
//
// pred must be monotonic over accumulated measures (false…false,true…true)
// for the result to be meaningful; this is a caller obligation and is not
// validated. If pred is false for the total measure, Split returns
// (t, empty).
func (t Tree[V, A]) Split(pred func(V) bool) (Tree[V, A], Tree[V, A]) {
	t.ensure()
	if t.IsEmpty() || !pred(t.Measure()) {
		return t, t.with(emptyTree[V]{})
	}
	left, focus, right := splitTree[V](t.meas, pred, t.meas.Zero(), t.spine())
	return t.with(left), t.with(cons[V](t.meas, right, focus))
}

// TakeUntil returns the maximal prefix for which pred stays false.
func (t Tree[V, A]) TakeUntil(pred func(V) bool) Tree[V, A] {
	left, _ := t.Split(pred)
	return left
}

// DropUntil returns the remainder after TakeUntil.
func (t Tree[V, A]) DropUntil(pred func(V) bool) Tree[V, A] {
	_, right := t.Split(pred)
	return right
}

// splitTree locates the element at which pred first becomes true, carrying
// the accumulated measure acc of everything strictly to the left.
//
// The descent commits to one of three regions per deep level — prefix,
// middle, suffix — by probing the accumulated measure at the region
// boundaries; there is no backtracking. Preconditions: the spine is
// non-empty, and pred(acc combined with the spine measure) is true. If pred
// never flips inside the committed region, the focus defaults to the
// region's last element.
func splitTree[V any](mo Monoid[V], pred func(V) bool, acc V, t spine[V]) (spine[V], element[V], spine[V]) {
	switch t := t.(type) {
	case emptyTree[V]:
		assert(false, "splitTree called on empty tree")
	case singleTree[V]:
		return emptyTree[V]{}, t.el, emptyTree[V]{}
	case *deepTree[V]:
		vpr := mo.Add(acc, t.pr.m)
		if pred(vpr) {
			// Flip position is inside the prefix.
			pre, focus, post := splitDigit(mo, pred, acc, t.pr.els)
			return digitToTree(mo, pre), focus, deepL(mo, post, t.mid, t.sf)
		}
		vmid := mo.Add(vpr, t.mid.measureWith(mo))
		if pred(vmid) {
			// Flip position is inside the middle: split the middle spine
			// over nodes, then decompose the focus node.
			ml, el, mr := splitTree(mo, pred, vpr, t.mid)
			n, ok := el.(*node[V])
			assert(ok, "middle split focus must be a node")
			pre, focus, post := splitDigit(mo, pred, mo.Add(vpr, ml.measureWith(mo)), n.kids)
			return deepR(mo, t.pr, ml, pre), focus, deepL(mo, post, mr, t.sf)
		}
		// Flip position is inside the suffix.
		pre, focus, post := splitDigit(mo, pred, vmid, t.sf.els)
		return deepR(mo, t.pr, t.mid, pre), focus, digitToTree(mo, post)
	}
	assert(false, "splitTree: unknown tree variant")
	return nil, nil, nil
}

// splitDigit scans up to four elements left to right for the flip position.
// It returns the elements before the focus, the focus, and the elements
// after it; either side may be empty. The focus defaults to the last
// element when pred never flips.
//
// splitDigit also decomposes a focus node's children (arity 2 or 3); the
// accumulation logic is identical, just at smaller arity.
func splitDigit[V any](mo Monoid[V], pred func(V) bool, acc V, els []element[V]) ([]element[V], element[V], []element[V]) {
	assert(len(els) >= 1, "splitDigit called on empty element list")
	for i := 0; i < len(els)-1; i++ {
		acc = mo.Add(acc, els[i].measure())
		if pred(acc) {
			return els[:i], els[i], els[i+1:]
		}
	}
	last := len(els) - 1
	return els[:last], els[last], nil
}
