package fingertree

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// sizeMonoid counts elements: the canonical sequence measure.
type sizeMonoid struct{}

func (sizeMonoid) Zero() uint64           { return 0 }
func (sizeMonoid) Add(l, r uint64) uint64 { return l + r }

type countInts struct{ sizeMonoid }

func (countInts) Measure(int) uint64 { return 1 }

func eqUint64(l, r uint64) bool { return l == r }

func newIntTree(t *testing.T) Tree[uint64, int] {
	t.Helper()
	tree, err := New[uint64, int](countInts{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return tree
}

func intTreeOf(t *testing.T, n int) Tree[uint64, int] {
	t.Helper()
	tree := newIntTree(t)
	for i := 1; i <= n; i++ {
		tree = tree.Snoc(i)
	}
	return tree
}

func checkIntTree(t *testing.T, tree Tree[uint64, int]) {
	t.Helper()
	if err := Check(tree, eqUint64); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func equalSlices(l, r []int) bool {
	if len(l) != len(r) {
		return false
	}
	for i := range l {
		if l[i] != r[i] {
			return false
		}
	}
	return true
}

func TestNewTree(t *testing.T) {
	tree := newIntTree(t)
	if !tree.IsEmpty() {
		t.Errorf("expected new tree to be empty, is not")
	}
	if tree.Measure() != 0 {
		t.Errorf("expected measure of empty tree to be 0, is %d", tree.Measure())
	}
	if _, err := New[uint64, int](nil); err != ErrNoMeasure {
		t.Errorf("expected ErrNoMeasure for nil measure, got %v", err)
	}
}

func TestSingle(t *testing.T) {
	tree, err := Single[uint64, int](countInts{}, 7)
	if err != nil {
		t.Fatalf("Single failed: %v", err)
	}
	if !tree.IsSingle() {
		t.Errorf("expected single tree, is not")
	}
	if tree.Measure() != 1 {
		t.Errorf("expected measure 1, is %d", tree.Measure())
	}
	checkIntTree(t, tree)
}

// Cons integers 10..1 onto the empty tree, i.e. building [1..10] right to
// left with the size monoid.
func TestConsScenario(t *testing.T) {
	tree := newIntTree(t)
	for i := 10; i >= 1; i-- {
		tree = tree.Cons(i)
		checkIntTree(t, tree)
	}
	want := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	if !equalSlices(tree.Slice(), want) {
		t.Errorf("expected tree elements %v, got %v", want, tree.Slice())
	}
	if tree.Measure() != 10 {
		t.Errorf("expected measure 10, is %d", tree.Measure())
	}
	left, right := tree.Split(func(v uint64) bool { return v > 5 })
	if !equalSlices(left.Slice(), []int{1, 2, 3, 4, 5}) {
		t.Errorf("expected left split [1..5], got %v", left.Slice())
	}
	if !equalSlices(right.Slice(), []int{6, 7, 8, 9, 10}) {
		t.Errorf("expected right split [6..10], got %v", right.Slice())
	}
}

func TestConsSnocRoundTrip(t *testing.T) {
	for n := 0; n <= 40; n++ {
		tree := intTreeOf(t, n)
		consed := tree.Cons(0)
		checkIntTree(t, consed)
		want := append([]int{0}, tree.Slice()...)
		if !equalSlices(consed.Slice(), want) {
			t.Fatalf("n=%d: cons round trip mismatch: got %v", n, consed.Slice())
		}
		snoced := tree.Snoc(n + 1)
		checkIntTree(t, snoced)
		want = append(tree.Slice(), n+1)
		if !equalSlices(snoced.Slice(), want) {
			t.Fatalf("n=%d: snoc round trip mismatch: got %v", n, snoced.Slice())
		}
	}
}

func TestViews(t *testing.T) {
	tree := intTreeOf(t, 25)
	// Drain from the left.
	for i := 1; i <= 25; i++ {
		head, rest, ok := tree.ViewLeft()
		if !ok {
			t.Fatalf("premature empty view at %d", i)
		}
		if head != i {
			t.Fatalf("expected leftmost element %d, got %d", i, head)
		}
		checkIntTree(t, rest)
		tree = rest
	}
	if _, _, ok := tree.ViewLeft(); ok {
		t.Errorf("expected empty view on drained tree")
	}
	// Drain from the right.
	tree = intTreeOf(t, 25)
	for i := 25; i >= 1; i-- {
		last, rest, ok := tree.ViewRight()
		if !ok {
			t.Fatalf("premature empty view at %d", i)
		}
		if last != i {
			t.Fatalf("expected rightmost element %d, got %d", i, last)
		}
		checkIntTree(t, rest)
		tree = rest
	}
}

func TestFoldAndReduce(t *testing.T) {
	tree := intTreeOf(t, 10)
	sum := FoldLeft(tree, 0, func(acc, a int) int { return acc + a })
	if sum != 55 {
		t.Errorf("expected fold-left sum 55, is %d", sum)
	}
	concat := FoldRight(tree, "", func(a int, acc string) string {
		return acc + "x"
	})
	if len(concat) != 10 {
		t.Errorf("expected 10 fold-right visits, got %d", len(concat))
	}
	red, err := tree.ReduceLeft(func(l, r int) int { return l + r })
	if err != nil {
		t.Fatalf("ReduceLeft failed: %v", err)
	}
	if red != 55 {
		t.Errorf("expected reduce-left sum 55, is %d", red)
	}
	red, err = tree.ReduceRight(func(l, r int) int { return l + r })
	if err != nil {
		t.Fatalf("ReduceRight failed: %v", err)
	}
	if red != 55 {
		t.Errorf("expected reduce-right sum 55, is %d", red)
	}
}

func TestReduceEmptyFails(t *testing.T) {
	tree := newIntTree(t)
	if _, err := tree.ReduceLeft(func(l, r int) int { return l + r }); err != ErrEmptyTree {
		t.Errorf("expected ErrEmptyTree for empty reduce-left, got %v", err)
	}
	if _, err := tree.ReduceRight(func(l, r int) int { return l + r }); err != ErrEmptyTree {
		t.Errorf("expected ErrEmptyTree for empty reduce-right, got %v", err)
	}
}

func TestIterators(t *testing.T) {
	tree := intTreeOf(t, 8)
	var fwd []int
	for a := range tree.All() {
		fwd = append(fwd, a)
	}
	if !equalSlices(fwd, tree.Slice()) {
		t.Errorf("forward iterator mismatch: %v", fwd)
	}
	var bwd []int
	for a := range tree.Backward() {
		bwd = append(bwd, a)
	}
	for i, j := 0, len(bwd)-1; i < j; i, j = i+1, j-1 {
		bwd[i], bwd[j] = bwd[j], bwd[i]
	}
	if !equalSlices(bwd, tree.Slice()) {
		t.Errorf("backward iterator mismatch: %v", bwd)
	}
}

type sumMonoid struct{}

func (sumMonoid) Zero() int        { return 0 }
func (sumMonoid) Add(l, r int) int { return l + r }

type sumStrings struct{ sumMonoid }

func (sumStrings) Measure(s string) int { return len(s) }

func TestMapRemeasures(t *testing.T) {
	tree := intTreeOf(t, 30)
	mapped, err := Map(tree, sumStrings{}, func(a int) string {
		return strings.Repeat("*", a%3)
	})
	if err != nil {
		t.Fatalf("Map failed: %v", err)
	}
	if err := Check(mapped, func(l, r int) bool { return l == r }); err != nil {
		t.Fatalf("invariant check after map failed: %v", err)
	}
	wantLen := 0
	for i := 1; i <= 30; i++ {
		wantLen += i % 3
	}
	if mapped.Measure() != wantLen {
		t.Errorf("expected mapped measure %d, is %d", wantLen, mapped.Measure())
	}
	if len(mapped.Slice()) != 30 {
		t.Errorf("expected 30 mapped elements, got %d", len(mapped.Slice()))
	}
}

func TestBuilder(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	b, err := NewBuilder[uint64, int](countInts{})
	if err != nil {
		t.Fatalf("NewBuilder failed: %v", err)
	}
	if err := b.Append(4, 5, 6); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := b.Prepend(1, 2, 3); err != nil {
		t.Fatalf("Prepend failed: %v", err)
	}
	tree := b.Tree()
	if !equalSlices(tree.Slice(), []int{1, 2, 3, 4, 5, 6}) {
		t.Errorf("expected built tree [1..6], got %v", tree.Slice())
	}
	checkIntTree(t, tree)
	if err := b.Append(7); err != ErrTreeSealed {
		t.Errorf("expected ErrTreeSealed after Tree(), got %v", err)
	}
	b.Reset()
	if err := b.Append(9); err != nil {
		t.Fatalf("Append after Reset failed: %v", err)
	}
	if !equalSlices(b.Tree().Slice(), []int{9}) {
		t.Errorf("expected rebuilt tree [9], got %v", b.Tree().Slice())
	}
}

func TestBuilderNilReceiverPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for nil builder")
		}
	}()
	var b *Builder[uint64, int]
	_ = b.Append(1)
}

func TestDebugOutput(t *testing.T) {
	tree := intTreeOf(t, 12)
	var dot strings.Builder
	Tree2Dot(tree, &dot)
	if !strings.Contains(dot.String(), "digraph") || !strings.Contains(dot.String(), "deep") {
		t.Errorf("unexpected dot output:\n%s", dot.String())
	}
	var dump strings.Builder
	Dump(tree, &dump)
	if !strings.Contains(dump.String(), "prefix") || !strings.Contains(dump.String(), "suffix") {
		t.Errorf("unexpected dump output:\n%s", dump.String())
	}
}
