package iter

import "testing"

func TestRange(t *testing.T) {
	r := NewRange(0, 10)

	expected := uint32(0)
	for v, ok := r.Next(); ok; v, ok = r.Next() {
		if v != expected {
			t.Fatalf("Next() = %d, want %d", v, expected)
		}
		expected++
	}
	if expected != 10 {
		t.Fatalf("range yielded %d values, want 10", expected)
	}

	// Exhausted iterators stay exhausted.
	if _, ok := r.Next(); ok {
		t.Fatal("exhausted range yielded a value")
	}
}

func TestRangeEmpty(t *testing.T) {
	for _, r := range []*Range{NewRange(5, 5), NewRange(7, 3)} {
		if _, ok := r.Next(); ok {
			t.Fatalf("empty range %+v yielded a value", r)
		}
	}
}

func TestListIter(t *testing.T) {
	third := &List[int]{Data: 3}
	second := &List[int]{Next: third, Data: 2}
	root := &List[int]{Next: second, Data: 1}

	it := NewListIter(root)

	want := 1
	for node, ok := it.Next(); ok; node, ok = it.Next() {
		if node == nil {
			t.Fatal("Next() returned a nil node with ok=true")
		}
		if node.Data != want {
			t.Fatalf("node data = %d, want %d", node.Data, want)
		}
		want++
	}
	if want != 4 {
		t.Fatalf("walked %d nodes, want 3", want-1)
	}
}

func TestListIterNilRoot(t *testing.T) {
	it := NewListIter[string](nil)
	if _, ok := it.Next(); ok {
		t.Fatal("nil list yielded a node")
	}
}

func TestCollect(t *testing.T) {
	got := Collect[uint32](NewRange(3, 7))
	want := []uint32{3, 4, 5, 6}
	if len(got) != len(want) {
		t.Fatalf("Collect returned %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Collect returned %v, want %v", got, want)
		}
	}
}
