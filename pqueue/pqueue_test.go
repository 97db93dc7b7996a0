package pqueue

import (
	"math/rand"
	"sort"
	"testing"
)

func TestZeroValueQueue(t *testing.T) {
	var q Queue[int, string]
	if !q.IsEmpty() {
		t.Errorf("expected zero value queue to be empty")
	}
	if _, _, err := q.Max(); err != ErrEmptyQueue {
		t.Errorf("expected ErrEmptyQueue from Max, got %v", err)
	}
	if _, _, _, err := q.PopMax(); err != ErrEmptyQueue {
		t.Errorf("expected ErrEmptyQueue from PopMax, got %v", err)
	}
}

func TestInsertAndMax(t *testing.T) {
	q := New[int, string]()
	q = q.Insert(3, "three")
	q = q.Insert(7, "seven")
	q = q.Insert(5, "five")
	if q.Len() != 3 {
		t.Errorf("expected 3 queued items, have %d", q.Len())
	}
	item, prio, err := q.Max()
	if err != nil {
		t.Fatalf("Max on non-empty queue failed: %v", err)
	}
	if item != "seven" || prio != 7 {
		t.Errorf("expected max (seven, 7), have (%s, %d)", item, prio)
	}
	if q.Len() != 3 {
		t.Errorf("Max must not modify the queue, length now %d", q.Len())
	}
}

func TestPopMaxOrder(t *testing.T) {
	q := New[int, rune]()
	for i, r := range "golang" {
		q = q.Insert(i, r)
	}
	want := []rune("gnalog")
	for i := 0; i < len(want); i++ {
		item, prio, rest, err := q.PopMax()
		if err != nil {
			t.Fatalf("PopMax #%d failed: %v", i, err)
		}
		if prio != len(want)-1-i {
			t.Errorf("PopMax #%d: expected priority %d, have %d", i, len(want)-1-i, prio)
		}
		if item != want[i] {
			t.Errorf("PopMax #%d: expected %q, have %q", i, want[i], item)
		}
		q = rest
	}
	if !q.IsEmpty() {
		t.Errorf("expected drained queue to be empty")
	}
}

func TestEqualPrioritiesKeepInsertionOrder(t *testing.T) {
	q := New[int, string]()
	q = q.Insert(1, "first")
	q = q.Insert(1, "second")
	q = q.Insert(1, "third")
	var got []string
	for !q.IsEmpty() {
		item, _, rest, err := q.PopMax()
		if err != nil {
			t.Fatalf("PopMax failed: %v", err)
		}
		got = append(got, item)
		q = rest
	}
	want := []string{"first", "second", "third"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected insertion order %v, have %v", want, got)
			break
		}
	}
}

func TestQueueAgainstSortedModel(t *testing.T) {
	seed := int64(4711)
	rand := rand.New(rand.NewSource(seed))
	q := New[int, int]()
	var model []int
	for i := 0; i < 500; i++ {
		p := rand.Intn(100)
		q = q.Insert(p, i)
		model = append(model, p)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(model)))
	for i, want := range model {
		_, prio, rest, err := q.PopMax()
		if err != nil {
			t.Fatalf("PopMax #%d failed: %v", i, err)
		}
		if prio != want {
			t.Fatalf("PopMax #%d: expected priority %d, have %d", i, want, prio)
		}
		q = rest
	}
	if !q.IsEmpty() {
		t.Errorf("expected drained queue to be empty")
	}
}
