package Trees

import (
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/emirpasic/gods/trees/avltree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// The tests here replay the same random operations on other ordered containers and compare.

const (
	oOpN        = 20000
	oValRange   = 4000
	oCheckEvery = 500
)

func TestOracle_Gods(t *testing.T) {
	tree := New[int, uint32]()
	ref := avltree.NewWithIntComparator()
	for i := range oOpN {
		v := rg.Intn(oValRange)
		if rg.Intn(2) == 0 {
			_, found := ref.Get(v)
			ref.Put(v, struct{}{})
			if tree.Insert(v) == found {
				t.Fatalf("insert %d disagrees with gods", v)
			}
		} else {
			_, found := ref.Get(v)
			ref.Remove(v)
			if tree.Remove(v) != found {
				t.Fatalf("remove %d disagrees with gods", v)
			}
		}
		if int(tree.Size()) != ref.Size() {
			t.Fatalf("tree size is %d, gods has %d", tree.Size(), ref.Size())
		}
		if i%oCheckEvery != 0 {
			continue
		}
		// ranks match the positions of gods' in-order keys.
		for k, key := range ref.Keys() {
			if a, _ := tree.RankK(uint32(k)); a != key.(int) {
				t.Fatalf("rank %d is %d, gods has %d", k, a, key)
			}
			if r, ok := tree.RankOf(key.(int)); !ok || int(r) != k {
				t.Fatalf("rank of %d is %d, want %d", key, r, k)
			}
		}
	}
	it, refIt := tree.Iterator(), ref.Iterator()
	for refIt.Next() {
		if v, err := it.Next(); err != nil || v != refIt.Key().(int) {
			t.Fatalf("got %d, %v, gods has %d", v, err, refIt.Key())
		}
	}
	if it.HasNext() {
		t.Fatal("iterator has more elements than gods")
	}
}

func TestOracle_BTree(t *testing.T) {
	tree := New[int, uint32]()
	ref := btree.NewOrderedG[int](8)
	for i := range oOpN {
		v := rg.Intn(oValRange)
		if rg.Intn(3) != 0 {
			_, found := ref.ReplaceOrInsert(v)
			if tree.Insert(v) == found {
				t.Fatalf("insert %d disagrees with btree", v)
			}
		} else {
			_, found := ref.Delete(v)
			if tree.Remove(v) != found {
				t.Fatalf("remove %d disagrees with btree", v)
			}
		}
		if i%oCheckEvery != 0 || ref.Len() == 0 {
			continue
		}
		// starting the iteration at the rank of a pivot equals ascending from the pivot.
		pivot := rg.Intn(oValRange)
		k, _ := tree.RankOf(pivot)
		next := tree.AllFrom(int(k))
		var got []int
		for v := range next {
			got = append(got, v)
		}
		j := 0
		ref.AscendGreaterOrEqual(pivot, func(item int) bool {
			if j >= len(got) || got[j] != item {
				t.Fatalf("from %d: position %d differs from btree's %d", pivot, j, item)
			}
			j++
			return true
		})
		if j != len(got) {
			t.Fatalf("from %d: got %d elements, btree has %d", pivot, len(got), j)
		}
	}
	if tree.Corrupt() {
		t.Fatal("tree is corrupt")
	}
}

func TestOracle_LLRB(t *testing.T) {
	tree := New[int, uint32]()
	ref := llrb.New()
	for i := range oOpN {
		v := rg.Intn(oValRange)
		if rg.Intn(2) == 0 {
			had := ref.Has(llrb.Int(v))
			ref.ReplaceOrInsert(llrb.Int(v))
			if tree.Insert(v) == had {
				t.Fatalf("insert %d disagrees with llrb", v)
			}
		} else if tree.Remove(v) != (ref.Delete(llrb.Int(v)) != nil) {
			t.Fatalf("remove %d disagrees with llrb", v)
		}
		if i%oCheckEvery != 0 {
			continue
		}
		for range 100 {
			p := rg.Intn(oValRange)
			var want llrb.Item
			ref.DescendLessOrEqual(llrb.Int(p-1), func(item llrb.Item) bool {
				want = item
				return false
			})
			if got, ok := tree.Predecessor(p); ok != (want != nil) || (ok && llrb.Int(got) != want) {
				t.Fatalf("predecessor of %d is %d, %v, llrb has %v", p, got, ok, want)
			}
			want = nil
			ref.AscendGreaterOrEqual(llrb.Int(p+1), func(item llrb.Item) bool {
				want = item
				return false
			})
			if got, ok := tree.Successor(p); ok != (want != nil) || (ok && llrb.Int(got) != want) {
				t.Fatalf("successor of %d is %d, %v, llrb has %v", p, got, ok, want)
			}
		}
	}
	if tree.Size() != uint32(ref.Len()) {
		t.Fatalf("tree size is %d, llrb has %d", tree.Size(), ref.Len())
	}
	if m, ok := tree.Minimum(); ref.Len() > 0 && (!ok || llrb.Int(m) != ref.Min()) {
		t.Fatalf("minimum %d, llrb has %v", m, ref.Min())
	}
	if m, ok := tree.Maximum(); ref.Len() > 0 && (!ok || llrb.Int(m) != ref.Max()) {
		t.Fatalf("maximum %d, llrb has %v", m, ref.Max())
	}
}

// haxmap only ever gets Set, present keys map to true; its Del isn't used.
func TestOracle_HaxMap(t *testing.T) {
	tree := New[int, uint32]()
	ref := haxmap.New[int, bool]()
	count := 0
	for range oOpN {
		v := rg.Intn(oValRange)
		in, _ := ref.Get(v)
		if rg.Intn(2) == 0 {
			if tree.Insert(v) == in {
				t.Fatalf("insert %d disagrees with haxmap", v)
			}
			if !in {
				ref.Set(v, true)
				count++
			}
		} else {
			if tree.Remove(v) != in {
				t.Fatalf("remove %d disagrees with haxmap", v)
			}
			if in {
				ref.Set(v, false)
				count--
			}
		}
	}
	if int(tree.Size()) != count {
		t.Fatalf("tree size is %d, want %d", tree.Size(), count)
	}
	for v := range oValRange {
		if in, _ := ref.Get(v); in != tree.Has(v) {
			t.Fatalf("membership of %d disagrees with haxmap", v)
		}
	}
}
