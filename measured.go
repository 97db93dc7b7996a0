package fingertree

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Monoid defines how measures are aggregated up the tree.
//
// For measures u, v, w, Add must be associative:
//
//	Add(Add(u, v), w) == Add(u, Add(v, w))
//
// and Zero must be the neutral element:
//
//	Add(Zero(), v) == v == Add(v, Zero())
//
// The tree never verifies these laws; violating them breaks all
// measure-based reasoning (splitting, sizing) in unspecified ways.
type Monoid[V any] interface {
	Zero() V
	Add(left, right V) V
}

// Measured ties an element type A to its measure type V. It extends a monoid
// over V with a per-element measuring function.
//
// Measuring must be pure: the measure of an element may be cached at tree
// construction time and will never be recomputed.
type Measured[V, A any] interface {
	Monoid[V]
	Measure(a A) V
}

// MeasuredFunc builds a Measured instance from a monoid and a measuring
// function.
func MeasuredFunc[V, A any](monoid Monoid[V], measure func(A) V) Measured[V, A] {
	if monoid == nil || measure == nil {
		return nil
	}
	return funcMeasured[V, A]{Monoid: monoid, f: measure}
}

type funcMeasured[V, A any] struct {
	Monoid[V]
	f func(A) V
}

func (m funcMeasured[V, A]) Measure(a A) V {
	return m.f(a)
}
