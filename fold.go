package fingertree

import "iter"

// Each visits all elements in left-to-right order. Iteration stops early if
// the callback returns false.
func (t Tree[V, A]) Each(fn func(A) bool) {
	t.ensure()
	if fn == nil {
		return
	}
	eachElement(t.spine(), func(el element[V]) bool {
		return fn(t.unwrap(el))
	})
}

// EachReverse visits all elements in right-to-left order. Iteration stops
// early if the callback returns false.
func (t Tree[V, A]) EachReverse(fn func(A) bool) {
	t.ensure()
	if fn == nil {
		return
	}
	eachElementReverse(t.spine(), func(el element[V]) bool {
		return fn(t.unwrap(el))
	})
}

// All returns an iterator over all elements in left-to-right order.
func (t Tree[V, A]) All() iter.Seq[A] {
	return func(yield func(A) bool) {
		t.Each(yield)
	}
}

// Backward returns an iterator over all elements in right-to-left order.
func (t Tree[V, A]) Backward() iter.Seq[A] {
	return func(yield func(A) bool) {
		t.EachReverse(yield)
	}
}

// Slice collects all elements into a fresh slice. This may be an expensive
// operation on large trees.
func (t Tree[V, A]) Slice() []A {
	var out []A
	t.Each(func(a A) bool {
		out = append(out, a)
		return true
	})
	return out
}

// FoldLeft folds all elements of t left to right, starting from zero.
func FoldLeft[V, A, R any](t Tree[V, A], zero R, f func(R, A) R) R {
	acc := zero
	t.Each(func(a A) bool {
		acc = f(acc, a)
		return true
	})
	return acc
}

// FoldRight folds all elements of t right to left, starting from zero.
func FoldRight[V, A, R any](t Tree[V, A], zero R, f func(A, R) R) R {
	acc := zero
	t.EachReverse(func(a A) bool {
		acc = f(a, acc)
		return true
	})
	return acc
}

// ReduceLeft combines all elements left to right with f. A tree without
// elements has no reduction and yields ErrEmptyTree.
func (t Tree[V, A]) ReduceLeft(f func(A, A) A) (A, error) {
	var acc A
	first := true
	t.Each(func(a A) bool {
		if first {
			acc, first = a, false
		} else {
			acc = f(acc, a)
		}
		return true
	})
	if first {
		return acc, ErrEmptyTree
	}
	return acc, nil
}

// ReduceRight combines all elements right to left with f. A tree without
// elements has no reduction and yields ErrEmptyTree.
func (t Tree[V, A]) ReduceRight(f func(A, A) A) (A, error) {
	var acc A
	first := true
	t.EachReverse(func(a A) bool {
		if first {
			acc, first = a, false
		} else {
			acc = f(a, acc)
		}
		return true
	})
	if first {
		return acc, ErrEmptyTree
	}
	return acc, nil
}

// eachElement walks a spine in order: prefix, middle, suffix, with nodes
// unrolled at their bounded arity.
func eachElement[V any](t spine[V], visit func(element[V]) bool) bool {
	switch t := t.(type) {
	case emptyTree[V]:
		return true
	case singleTree[V]:
		return visitElement(t.el, visit)
	case *deepTree[V]:
		for _, el := range t.pr.els {
			if !visitElement(el, visit) {
				return false
			}
		}
		if !eachElement(t.mid, visit) {
			return false
		}
		for _, el := range t.sf.els {
			if !visitElement(el, visit) {
				return false
			}
		}
		return true
	}
	assert(false, "eachElement: unknown tree variant")
	return false
}

func visitElement[V any](el element[V], visit func(element[V]) bool) bool {
	if n, ok := el.(*node[V]); ok {
		for _, kid := range n.kids {
			if !visitElement(kid, visit) {
				return false
			}
		}
		return true
	}
	return visit(el)
}

func eachElementReverse[V any](t spine[V], visit func(element[V]) bool) bool {
	switch t := t.(type) {
	case emptyTree[V]:
		return true
	case singleTree[V]:
		return visitElementReverse(t.el, visit)
	case *deepTree[V]:
		for i := len(t.sf.els) - 1; i >= 0; i-- {
			if !visitElementReverse(t.sf.els[i], visit) {
				return false
			}
		}
		if !eachElementReverse(t.mid, visit) {
			return false
		}
		for i := len(t.pr.els) - 1; i >= 0; i-- {
			if !visitElementReverse(t.pr.els[i], visit) {
				return false
			}
		}
		return true
	}
	assert(false, "eachElementReverse: unknown tree variant")
	return false
}

func visitElementReverse[V any](el element[V], visit func(element[V]) bool) bool {
	if n, ok := el.(*node[V]); ok {
		for i := len(n.kids) - 1; i >= 0; i-- {
			if !visitElementReverse(n.kids[i], visit) {
				return false
			}
		}
		return true
	}
	return visit(el)
}
