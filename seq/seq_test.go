package seq

import (
	"math/rand"
	"testing"
)

func TestZeroValueSeq(t *testing.T) {
	var s Seq[string]
	if !s.IsEmpty() || s.Len() != 0 {
		t.Errorf("expected zero value to behave like the empty sequence")
	}
	s = s.Append("a").Append("b").Prepend("z")
	if got := s.Slice(); len(got) != 3 || got[0] != "z" || got[2] != "b" {
		t.Errorf("unexpected elements %v", got)
	}
}

func TestSeqEnds(t *testing.T) {
	s := FromSlice([]int{1, 2, 3, 4})
	first, ok := s.First()
	if !ok || first != 1 {
		t.Errorf("expected first element 1, got %d", first)
	}
	last, ok := s.Last()
	if !ok || last != 4 {
		t.Errorf("expected last element 4, got %d", last)
	}
	x, rest, ok := s.PopFront()
	if !ok || x != 1 || rest.Len() != 3 {
		t.Errorf("PopFront mismatch: %d %v", x, rest.Slice())
	}
	y, rest2, ok := rest.PopBack()
	if !ok || y != 4 || rest2.Len() != 2 {
		t.Errorf("PopBack mismatch: %d %v", y, rest2.Slice())
	}
}

func TestSeqAt(t *testing.T) {
	s := FromSlice([]int{10, 20, 30, 40, 50})
	for i := 0; i < 5; i++ {
		x, err := s.At(i)
		if err != nil {
			t.Fatalf("At(%d) failed: %v", i, err)
		}
		if x != (i+1)*10 {
			t.Errorf("At(%d) = %d, expected %d", i, x, (i+1)*10)
		}
	}
	if _, err := s.At(5); err != ErrIndexOutOfBounds {
		t.Errorf("expected out-of-bounds error, got %v", err)
	}
	if _, err := s.At(-1); err != ErrIndexOutOfBounds {
		t.Errorf("expected out-of-bounds error, got %v", err)
	}
}

func TestSeqSplitAndConcat(t *testing.T) {
	s := FromSlice([]int{1, 2, 3, 4, 5, 6, 7})
	left, right, err := s.SplitAt(3)
	if err != nil {
		t.Fatalf("SplitAt failed: %v", err)
	}
	if left.Len() != 3 || right.Len() != 4 {
		t.Errorf("split lengths %d/%d, expected 3/4", left.Len(), right.Len())
	}
	joined := Concat(left, right)
	if got := joined.Slice(); len(got) != 7 || got[0] != 1 || got[6] != 7 {
		t.Errorf("concat does not reconstruct: %v", got)
	}
}

func TestSeqSplitAtOutOfBounds(t *testing.T) {
	s := FromSlice([]int{1, 2, 3})
	for _, i := range []int{-1, 4} {
		left, right, err := s.SplitAt(i)
		if err != ErrIndexOutOfBounds {
			t.Fatalf("SplitAt(%d): expected ErrIndexOutOfBounds, got %v", i, err)
		}
		if !left.IsEmpty() || !right.IsEmpty() {
			t.Errorf("SplitAt(%d): expected empty halves on error, have %v / %v",
				i, left.Slice(), right.Slice())
		}
	}
}

func TestSeqInsertDelete(t *testing.T) {
	s := FromSlice([]int{1, 2, 4, 5})
	s2, err := s.InsertAt(2, 3)
	if err != nil {
		t.Fatalf("InsertAt failed: %v", err)
	}
	want := []int{1, 2, 3, 4, 5}
	for i, x := range s2.Slice() {
		if x != want[i] {
			t.Fatalf("after insert, got %v", s2.Slice())
		}
	}
	s3, err := s2.DeleteAt(0)
	if err != nil {
		t.Fatalf("DeleteAt failed: %v", err)
	}
	if got := s3.Slice(); got[0] != 2 || len(got) != 4 {
		t.Errorf("after delete, got %v", got)
	}
	if _, err := s3.DeleteAt(17); err != ErrIndexOutOfBounds {
		t.Errorf("expected out-of-bounds error, got %v", err)
	}
	// The original sequences are untouched.
	if s.Len() != 4 || s2.Len() != 5 {
		t.Errorf("persistence violated: %v / %v", s.Slice(), s2.Slice())
	}
}

func TestSeqRandomizedAgainstModel(t *testing.T) {
	r := rand.New(rand.NewSource(271828))
	s := New[int]()
	model := make([]int, 0, 64)
	for step := 0; step < 400; step++ {
		switch r.Intn(5) {
		case 0:
			v := r.Intn(1000)
			s = s.Append(v)
			model = append(model, v)
		case 1:
			v := r.Intn(1000)
			s = s.Prepend(v)
			model = append([]int{v}, model...)
		case 2:
			if len(model) == 0 {
				continue
			}
			i := r.Intn(len(model))
			var err error
			s, err = s.DeleteAt(i)
			if err != nil {
				t.Fatalf("step %d: DeleteAt failed: %v", step, err)
			}
			model = append(model[:i:i], model[i+1:]...)
		case 3:
			i := 0
			if len(model) > 0 {
				i = r.Intn(len(model) + 1)
			}
			v := r.Intn(1000)
			var err error
			s, err = s.InsertAt(i, v)
			if err != nil {
				t.Fatalf("step %d: InsertAt failed: %v", step, err)
			}
			model = append(model[:i:i], append([]int{v}, model[i:]...)...)
		case 4:
			if len(model) == 0 {
				continue
			}
			i := r.Intn(len(model))
			x, err := s.At(i)
			if err != nil {
				t.Fatalf("step %d: At failed: %v", step, err)
			}
			if x != model[i] {
				t.Fatalf("step %d: At(%d) = %d, model has %d", step, i, x, model[i])
			}
		}
		if s.Len() != len(model) {
			t.Fatalf("step %d: length mismatch %d != %d", step, s.Len(), len(model))
		}
		got := s.Slice()
		for i := range model {
			if got[i] != model[i] {
				t.Fatalf("step %d: mismatch at %d: got %d want %d", step, i, got[i], model[i])
			}
		}
	}
}
