package fingertree

import "fmt"

// ErrInvariant signals a violated structural invariant, reported by Check.
const ErrInvariant = TreeError("structural tree invariant violated")

// Check validates structural tree invariants: digit and node arities, node
// placement per level, and cached measures against recomputation.
//
// Measures are compared with eq, since measure types are not comparable in
// general. This checker is intentionally strict and meant for tests; the
// operational code never validates invariants at runtime.
func Check[V, A any](t Tree[V, A], eq func(V, V) bool) error {
	if t.meas == nil {
		return fmt.Errorf("%w: tree has no measure", ErrInvariant)
	}
	if eq == nil {
		return fmt.Errorf("%w: measure comparison is required", ErrInvariant)
	}
	c := checker[V]{mo: t.meas, eq: eq}
	_, err := c.checkSpine(t.spine(), 0)
	return err
}

type checker[V any] struct {
	mo Monoid[V]
	eq func(V, V) bool
}

// checkSpine validates one spine level and returns its recomputed measure.
// level 0 is the outermost tree, holding client leaves; level k holds nodes
// nested k deep.
func (c checker[V]) checkSpine(t spine[V], level int) (V, error) {
	switch t := t.(type) {
	case emptyTree[V]:
		return c.mo.Zero(), nil
	case singleTree[V]:
		return c.checkElement(t.el, level)
	case *deepTree[V]:
		prm, err := c.checkDigit(t.pr, level)
		if err != nil {
			return c.mo.Zero(), err
		}
		midm, err := c.checkSpine(t.mid, level+1)
		if err != nil {
			return c.mo.Zero(), err
		}
		sfm, err := c.checkDigit(t.sf, level)
		if err != nil {
			return c.mo.Zero(), err
		}
		total := c.mo.Add(c.mo.Add(prm, midm), sfm)
		if !c.eq(total, t.m) {
			return c.mo.Zero(), fmt.Errorf("%w: cached deep measure differs from recomputation at level %d",
				ErrInvariant, level)
		}
		return total, nil
	}
	return c.mo.Zero(), fmt.Errorf("%w: unknown spine variant %T", ErrInvariant, t)
}

func (c checker[V]) checkDigit(d digit[V], level int) (V, error) {
	if len(d.els) < 1 || len(d.els) > 4 {
		return c.mo.Zero(), fmt.Errorf("%w: digit arity %d out of range", ErrInvariant, len(d.els))
	}
	total, err := c.checkElement(d.els[0], level)
	if err != nil {
		return c.mo.Zero(), err
	}
	for _, el := range d.els[1:] {
		m, err := c.checkElement(el, level)
		if err != nil {
			return c.mo.Zero(), err
		}
		total = c.mo.Add(total, m)
	}
	if !c.eq(total, d.m) {
		return c.mo.Zero(), fmt.Errorf("%w: cached digit measure differs from recomputation at level %d",
			ErrInvariant, level)
	}
	return total, nil
}

func (c checker[V]) checkElement(el element[V], level int) (V, error) {
	n, isNode := el.(*node[V])
	if !isNode {
		if level != 0 {
			return c.mo.Zero(), fmt.Errorf("%w: client value below the outermost level (level %d)",
				ErrInvariant, level)
		}
		return el.measure(), nil
	}
	if level == 0 {
		return c.mo.Zero(), fmt.Errorf("%w: node at the outermost level", ErrInvariant)
	}
	if len(n.kids) < 2 || len(n.kids) > 3 {
		return c.mo.Zero(), fmt.Errorf("%w: node arity %d out of range", ErrInvariant, len(n.kids))
	}
	total, err := c.checkElement(n.kids[0], level-1)
	if err != nil {
		return c.mo.Zero(), err
	}
	for _, kid := range n.kids[1:] {
		m, err := c.checkElement(kid, level-1)
		if err != nil {
			return c.mo.Zero(), err
		}
		total = c.mo.Add(total, m)
	}
	if !c.eq(total, n.m) {
		return c.mo.Zero(), fmt.Errorf("%w: cached node measure differs from recomputation at level %d",
			ErrInvariant, level)
	}
	return total, nil
}
