package fingertree

// Map transforms every element of t with f and rebuilds the tree under the
// target measure. The result has the same shape as t; measures are
// recomputed with the target monoid at every level.
func Map[V, A, W, B any](t Tree[V, A], target Measured[W, B], f func(A) B) (Tree[W, B], error) {
	t.ensure()
	if target == nil {
		return Tree[W, B]{}, ErrNoMeasure
	}
	if f == nil {
		return Tree[W, B]{}, TreeError("map requires a transformer function")
	}
	return Tree[W, B]{meas: target, root: mapSpine[V, A](target, f, t.spine())}, nil
}

func mapSpine[V, A, W, B any](target Measured[W, B], f func(A) B, t spine[V]) spine[W] {
	switch t := t.(type) {
	case emptyTree[V]:
		return emptyTree[W]{}
	case singleTree[V]:
		return singleTree[W]{el: mapElement[V, A](target, f, t.el)}
	case *deepTree[V]:
		pr := mapDigit[V, A](target, f, t.pr)
		mid := mapSpine[V, A](target, f, t.mid)
		sf := mapDigit[V, A](target, f, t.sf)
		return deep[W](target, pr, mid, sf)
	}
	assert(false, "mapSpine: unknown tree variant")
	return nil
}

func mapDigit[V, A, W, B any](target Measured[W, B], f func(A) B, d digit[V]) digit[W] {
	els := make([]element[W], len(d.els))
	for i, el := range d.els {
		els[i] = mapElement[V, A](target, f, el)
	}
	return newDigit[W](target, els...)
}

func mapElement[V, A, W, B any](target Measured[W, B], f func(A) B, el element[V]) element[W] {
	if n, ok := el.(*node[V]); ok {
		kids := make([]element[W], len(n.kids))
		for i, kid := range n.kids {
			kids[i] = mapElement[V, A](target, f, kid)
		}
		switch len(kids) {
		case 2:
			return node2[W](target, kids[0], kids[1])
		case 3:
			return node3[W](target, kids[0], kids[1], kids[2])
		}
		assert(false, "map: node arity out of range")
	}
	lf, ok := el.(leaf[V, A])
	assert(ok, "map: unexpected element type")
	b := f(lf.a)
	return leaf[W, B]{m: target.Measure(b), a: b}
}
