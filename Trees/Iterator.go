package Trees

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Iterator walks an AVLTree in ascending order using a stack of the nodes whose
// left subtrees are being visited. It never modifies the tree.
// Inserting into or removing from the tree after the Iterator is created leaves
// the Iterator's later results undefined; this isn't detected.
type Iterator[T any, S constraints.Unsigned] struct {
	cur *node[T, S]
	st  []*node[T, S]
}

// Iterator returns an iterator positioned before the minimum.
// Time: O(1)
func (u *AVLTree[T, S]) Iterator() *Iterator[T, S] {
	return &Iterator[T, S]{cur: u.root}
}

// IteratorAt returns an iterator positioned before the element of rank k, counting from 0,
// so that the first k elements are skipped. k==Size() gives an iterator with nothing left.
// Returns a *RankError if k<0 or k>Size().
// The subtree sizes are used to skip whole subtrees on the way down, so only the
// nodes on one root to leaf path are visited.
// Time: O(D)
func (u *AVLTree[T, S]) IteratorAt(k int) (*Iterator[T, S], error) {
	if n := int(u.Size()); k < 0 || k > n {
		return nil, &RankError{k, n}
	}
	it := &Iterator[T, S]{cur: u.root}
	for rem := S(k); rem > 0 && it.cur != nil; {
		if lsz := size(it.cur.l); rem < lsz {
			it.st = append(it.st, it.cur)
			it.cur = it.cur.l
		} else if rem == lsz {
			// everything left of cur is skipped, cur itself comes next.
			it.st = append(it.st, it.cur)
			it.cur = nil
			break
		} else {
			rem -= lsz + 1
			it.cur = it.cur.r
		}
	}
	return it, nil
}

// HasNext reports whether Next has an element to return.
func (it *Iterator[T, S]) HasNext() bool {
	return it.cur != nil || len(it.st) > 0
}

// Next returns the next element in ascending order, or ErrExhausted if HasNext is false.
// Time: amortized O(1), O(D) worst case.
func (it *Iterator[T, S]) Next() (r T, err error) {
	if !it.HasNext() {
		return r, ErrExhausted
	}
	for ; it.cur != nil; it.cur = it.cur.l {
		it.st = append(it.st, it.cur)
	}
	top := it.st[len(it.st)-1]
	it.st[len(it.st)-1] = nil
	it.st = it.st[:len(it.st)-1]
	it.cur = top.r
	return top.v, nil
}

// Remove always fails; the tree can't be modified through an Iterator.
func (it *Iterator[T, S]) Remove() error {
	return &UnsupportedError{"Iterator.Remove"}
}

func (it *Iterator[T, S]) seq(yield func(T) bool) {
	for it.HasNext() {
		v, _ := it.Next()
		if !yield(v) {
			return
		}
	}
}

// All elements in ascending order.
func (u *AVLTree[T, S]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		u.Iterator().seq(yield)
	}
}

// AllFrom yields the elements in ascending order with the first k skipped. The sequence is
// empty if k isn't in [0, Size()].
func (u *AVLTree[T, S]) AllFrom(k int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if it, err := u.IteratorAt(k); err == nil {
			it.seq(yield)
		}
	}
}
