package fingertree

// Append concatenates other to the right end of t and returns a new tree.
//
// Both trees must have been created with the same Measured instance. Cost
// is O(log min(n, m)); empty or single operands short-circuit.
func (t Tree[V, A]) Append(other Tree[V, A]) Tree[V, A] {
	t.ensure()
	other.ensure()
	return t.with(app3[V](t.meas, t.spine(), nil, other.spine()))
}

// app3 concatenates two spines with up to four carried elements in between.
//
// Shallow operands degenerate to repeated cons/snoc. Two deep operands merge
// the left suffix, the carried elements and the right prefix into 2-3-nodes,
// which are threaded into the recursive concatenation of the two middles,
// one level down. Each level handles O(1) elements, so the total cost is
// proportional to the smaller tree's height.
func app3[V any](mo Monoid[V], t1 spine[V], carried []element[V], t2 spine[V]) spine[V] {
	switch l := t1.(type) {
	case emptyTree[V]:
		return consAll(mo, carried, t2)
	case singleTree[V]:
		return cons(mo, consAll(mo, carried, t2), l.el)
	case *deepTree[V]:
		switch r := t2.(type) {
		case emptyTree[V]:
			return snocAll(mo, t1, carried)
		case singleTree[V]:
			return snoc(mo, snocAll(mo, t1, carried), r.el)
		case *deepTree[V]:
			seam := make([]element[V], 0, len(l.sf.els)+len(carried)+len(r.pr.els))
			seam = append(seam, l.sf.els...)
			seam = append(seam, carried...)
			seam = append(seam, r.pr.els...)
			mid := app3(mo, l.mid, packNodes(mo, seam), r.mid)
			return deep(mo, l.pr, mid, r.sf)
		}
	}
	assert(false, "append: unknown tree variant")
	return nil
}

// packNodes groups 2 to 12 seam elements into 2-3-nodes for the level below.
//
// The case analysis is exhaustive over every count two digits of up to four
// elements plus up to four carried nodes can produce. Packing prefers
// 3-nodes and spends 2-nodes only on remainders that do not divide by
// three, so the result never exceeds four nodes.
func packNodes[V any](mo Monoid[V], els []element[V]) []element[V] {
	switch len(els) {
	case 2:
		return []element[V]{node2(mo, els[0], els[1])}
	case 3:
		return []element[V]{node3(mo, els[0], els[1], els[2])}
	case 4:
		return []element[V]{
			node2(mo, els[0], els[1]),
			node2(mo, els[2], els[3])}
	case 5:
		return []element[V]{
			node3(mo, els[0], els[1], els[2]),
			node2(mo, els[3], els[4])}
	case 6:
		return []element[V]{
			node3(mo, els[0], els[1], els[2]),
			node3(mo, els[3], els[4], els[5])}
	case 7:
		return []element[V]{
			node3(mo, els[0], els[1], els[2]),
			node2(mo, els[3], els[4]),
			node2(mo, els[5], els[6])}
	case 8:
		return []element[V]{
			node3(mo, els[0], els[1], els[2]),
			node3(mo, els[3], els[4], els[5]),
			node2(mo, els[6], els[7])}
	case 9:
		return []element[V]{
			node3(mo, els[0], els[1], els[2]),
			node3(mo, els[3], els[4], els[5]),
			node3(mo, els[6], els[7], els[8])}
	case 10:
		return []element[V]{
			node3(mo, els[0], els[1], els[2]),
			node3(mo, els[3], els[4], els[5]),
			node2(mo, els[6], els[7]),
			node2(mo, els[8], els[9])}
	case 11:
		return []element[V]{
			node3(mo, els[0], els[1], els[2]),
			node3(mo, els[3], els[4], els[5]),
			node3(mo, els[6], els[7], els[8]),
			node2(mo, els[9], els[10])}
	case 12:
		return []element[V]{
			node3(mo, els[0], els[1], els[2]),
			node3(mo, els[3], els[4], els[5]),
			node3(mo, els[6], els[7], els[8]),
			node3(mo, els[9], els[10], els[11])}
	}
	assert(false, "node packing: seam element count out of range")
	return nil
}

// consAll prepends elements right-to-left, preserving order.
func consAll[V any](mo Monoid[V], els []element[V], t spine[V]) spine[V] {
	for i := len(els) - 1; i >= 0; i-- {
		t = cons(mo, t, els[i])
	}
	return t
}

// snocAll appends elements left-to-right.
func snocAll[V any](mo Monoid[V], t spine[V], els []element[V]) spine[V] {
	for _, el := range els {
		t = snoc(mo, t, el)
	}
	return t
}
