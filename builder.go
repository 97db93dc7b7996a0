package fingertree

// Builder incrementally stages elements and finalizes them into a Tree.
//
// Builder collects prepended and appended elements in plain slices and
// materializes the tree only when Tree() is called. Staging is cheaper than
// building through repeated Cons/Snoc when a tree is assembled in bulk.
//
// Builders are not safe for concurrent use.
type Builder[V, A any] struct {
	meas Measured[V, A]

	// front keeps prepended elements in reverse logical order.
	front []A
	// back keeps appended elements in logical order.
	back []A

	done  bool
	dirty bool
	tree  Tree[V, A]
}

// NewBuilder creates a new and empty tree builder.
func NewBuilder[V, A any](m Measured[V, A]) (*Builder[V, A], error) {
	if m == nil {
		return nil, ErrNoMeasure
	}
	return &Builder[V, A]{meas: m, tree: Tree[V, A]{meas: m, root: emptyTree[V]{}}}, nil
}

// Tree returns the tree built from all staged elements.
//
// It is illegal to continue adding elements after Tree has been called, but
// Tree may be called multiple times.
func (b *Builder[V, A]) Tree() Tree[V, A] {
	assert(b != nil, "builder: Tree called on nil builder")
	if b.dirty {
		b.tree = b.buildTree()
		b.dirty = false
	}
	b.done = true
	if b.tree.IsEmpty() {
		T().Debugf("tree builder: tree is empty")
	}
	return b.tree
}

// Reset drops the staged build and prepares the builder for a fresh build.
func (b *Builder[V, A]) Reset() {
	b.front = nil
	b.back = nil
	b.done = false
	b.dirty = false
	b.tree = Tree[V, A]{meas: b.meas, root: emptyTree[V]{}}
}

// Append appends elements to the staged build.
func (b *Builder[V, A]) Append(as ...A) error {
	assert(b != nil, "builder: Append called on nil builder")
	if b.done {
		return ErrTreeSealed
	}
	b.back = append(b.back, as...)
	if len(as) > 0 {
		b.dirty = true
	}
	return nil
}

// Prepend prepends elements to the staged build.
func (b *Builder[V, A]) Prepend(as ...A) error {
	assert(b != nil, "builder: Prepend called on nil builder")
	if b.done {
		return ErrTreeSealed
	}
	// front is stored in reverse logical order.
	for i := len(as) - 1; i >= 0; i-- {
		b.front = append(b.front, as[i])
	}
	if len(as) > 0 {
		b.dirty = true
	}
	return nil
}

func (b *Builder[V, A]) buildTree() Tree[V, A] {
	tree, err := New(b.meas)
	assert(err == nil, "builder: fingertree.New failed")
	for i := len(b.front) - 1; i >= 0; i-- {
		tree = tree.Snoc(b.front[i])
	}
	for _, a := range b.back {
		tree = tree.Snoc(a)
	}
	return tree
}
