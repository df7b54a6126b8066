package numberset

import (
	"math/rand"
	"sort"
	"testing"
	"time"
)

func treeKeys(t *RBTree) []uint64 {
	var keys []uint64
	t.ForEachAscending(func(e Entry) bool {
		keys = append(keys, e.Number)
		return true
	})
	return keys
}

func TestRBTree_InsertAscendingOrder(t *testing.T) {
	tr := NewRBTree()
	input := []uint64{42, 7, 1000, 3, 99, 2, 500}

	for _, k := range input {
		if !tr.Insert(k, Entry{Number: k}) {
			t.Fatalf("insert %d failed", k)
		}
	}
	if tr.Size() != len(input) {
		t.Fatalf("size = %d, want %d", tr.Size(), len(input))
	}

	keys := treeKeys(tr)
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			t.Fatalf("not strictly ascending at %d: %v", i, keys)
		}
	}
}

func TestRBTree_DuplicateInsert(t *testing.T) {
	tr := NewRBTree()
	if !tr.Insert(5, Entry{Number: 5}) {
		t.Fatal("first insert failed")
	}
	if tr.Insert(5, Entry{Number: 5}) {
		t.Fatal("duplicate insert succeeded")
	}
	if tr.Size() != 1 {
		t.Fatalf("size = %d after duplicate, want 1", tr.Size())
	}
}

func TestRBTree_DeleteAndMin(t *testing.T) {
	tr := NewRBTree()
	for _, k := range []uint64{10, 5, 20} {
		tr.Insert(k, Entry{Number: k})
	}

	if min, ok := tr.Min(); !ok || min.Number != 5 {
		t.Fatalf("min = %v %v, want 5", min.Number, ok)
	}
	if !tr.Delete(5) {
		t.Fatal("delete 5 failed")
	}
	if tr.Delete(5) {
		t.Fatal("second delete of 5 succeeded")
	}
	if min, ok := tr.Min(); !ok || min.Number != 10 {
		t.Fatalf("min after delete = %v %v, want 10", min.Number, ok)
	}
	if max, ok := tr.Max(); !ok || max.Number != 20 {
		t.Fatalf("max = %v %v, want 20", max.Number, ok)
	}
}

// Random churn against a reference map: the tree must agree on
// membership and always enumerate in sorted order.
func TestRBTree_RandomOpsAgainstReference(t *testing.T) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	tr := NewRBTree()
	ref := map[uint64]bool{}

	for i := 0; i < 5000; i++ {
		k := uint64(rng.Intn(500)) + 2
		if rng.Intn(3) == 0 {
			got := tr.Delete(k)
			want := ref[k]
			if got != want {
				t.Fatalf("delete %d = %v, reference says %v", k, got, want)
			}
			delete(ref, k)
		} else {
			got := tr.Insert(k, Entry{Number: k})
			want := !ref[k]
			if got != want {
				t.Fatalf("insert %d = %v, reference says %v", k, got, want)
			}
			ref[k] = true
		}
	}

	if tr.Size() != len(ref) {
		t.Fatalf("size = %d, reference has %d", tr.Size(), len(ref))
	}

	want := make([]uint64, 0, len(ref))
	for k := range ref {
		want = append(want, k)
	}
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

	got := treeKeys(tr)
	if len(got) != len(want) {
		t.Fatalf("enumerated %d keys, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("key[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestRBTree_Clear(t *testing.T) {
	tr := NewRBTree()
	for k := uint64(2); k < 100; k++ {
		tr.Insert(k, Entry{Number: k})
	}
	tr.Clear()
	if tr.Size() != 0 {
		t.Fatalf("size = %d after clear, want 0", tr.Size())
	}
	if keys := treeKeys(tr); len(keys) != 0 {
		t.Fatalf("enumeration after clear: %v", keys)
	}
	if !tr.Insert(7, Entry{Number: 7}) {
		t.Fatal("insert after clear failed")
	}
}

func TestRBTree_ForEachEarlyStop(t *testing.T) {
	tr := NewRBTree()
	for k := uint64(2); k <= 10; k++ {
		tr.Insert(k, Entry{Number: k})
	}
	seen := 0
	tr.ForEachAscending(func(e Entry) bool {
		seen++
		return seen < 3
	})
	if seen != 3 {
		t.Fatalf("visited %d entries, want 3", seen)
	}
}
