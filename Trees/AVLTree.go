package Trees

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// AVLTree is a binary search tree with no repeated values. It keeps the heights of
// the two subtrees of every node within 1 of each other through rotations, and it
// additionally tracks the size of every subtree so that rank based lookups are O(D).
// T is the type of values it will hold, S is the type of the variables
// used for storing the sizes of different subtrees; S must be able to hold the size
// of the tree. Sizes aren't checked by Insert and silently wrap past the maximum of S.
// The height D of the tree is less than 1.44*log2(n+2).
// The zero value isn't usable, create it with New or NewFunc.
// An AVLTree isn't safe for concurrent use.
type AVLTree[T any, S constraints.Unsigned] struct {
	root *node[T, S]
	cmp  func(T, T) int
	path []**node[T, S] // reused by Insert and Remove.
}

// New returns an empty tree ordered by cmp.Compare.
func New[T cmp.Ordered, S constraints.Unsigned]() *AVLTree[T, S] {
	return &AVLTree[T, S]{cmp: cmp.Compare[T]}
}

// NewFunc returns an empty tree ordered by compare, which returns a negative number when
// a<b, a positive number when a>b, and 0 when they are equal.
func NewFunc[T any, S constraints.Unsigned](compare func(a, b T) int) *AVLTree[T, S] {
	return &AVLTree[T, S]{cmp: compare}
}

// From builds a tree by inserting vs one by one. vs needn't be sorted; repeated
// elements are dropped.
// Time: O(n*log(n)).
func From[T cmp.Ordered, S constraints.Unsigned](vs ...T) *AVLTree[T, S] {
	u := New[T, S]()
	for _, v := range vs {
		u.Insert(v)
	}
	return u
}

// Build a tree using the given sorted slice recursively. This is faster than
// repeatedly calling Insert.
// The given slice must be sorted in ascending order and mustn't contain duplicate elements.
// If safe==true, this function will check if the conditions are met and panic with InvalidSliceError
// if the conditions are broken. Otherwise, it is up to the user to ensure the conditions are met,
// otherwise the tree will be corrupt. Order is checked with cmp.Compare, the same order the tree uses,
// so a NaN anywhere but first is rejected.
// len(sli) must fit in S, otherwise Build panics with SizeOverflowError regardless of safe.
// Time: O(n).
func Build[T cmp.Ordered, S constraints.Unsigned](sli []T, safe bool) *AVLTree[T, S] {
	if uint64(len(sli)) > uint64(^S(0)) {
		panic(SizeOverflowError{len(sli), uint64(^S(0))})
	}
	if safe {
		for i := 1; i < len(sli); i++ {
			if cmp.Compare(sli[i-1], sli[i]) >= 0 {
				panic(InvalidSliceError[T]{i, sli[i-1], sli[i]})
			}
		}
	}
	var build func([]T) *node[T, S]
	build = func(s []T) *node[T, S] {
		if len(s) == 0 {
			return nil
		}
		mid := len(s) >> 1
		n := &node[T, S]{v: s[mid], l: build(s[:mid]), r: build(s[mid+1:])}
		n.update()
		return n
	}
	return &AVLTree[T, S]{root: build(sli), cmp: cmp.Compare[T]}
}

// Size returns the number of elements in the tree.
// Time: O(1); Space: O(1)
func (u *AVLTree[T, S]) Size() S {
	return size(u.root)
}

// Height of the tree, -1 when it's empty.
func (u *AVLTree[T, S]) Height() int {
	return int(height(u.root))
}

// Clear drops all elements. O(1).
func (u *AVLTree[T, S]) Clear() {
	u.root = nil
	clear(u.path)
	u.path = u.path[:0]
}

// Insert [Tree.Insert].
// The new leaf is attached at the end of the search path, then every node on the path
// is rebalanced bottom up. The tree must not already hold the maximum of S elements.
// Time: O(D)
func (u *AVLTree[T, S]) Insert(v T) bool {
	st := u.pathTo(v)
	last := st[len(st)-1]
	if *last != nil {
		clear(st)
		u.path = st[:0]
		return false
	}
	*last = &node[T, S]{v: v, sz: 1}
	u.balancePath(st)
	return true
}

// Remove [Tree.Remove].
// A node without a left child is replaced by its right child. Otherwise the node takes
// the value of the rightmost node in its left subtree, and that rightmost node is
// replaced by its own left child. Rebalancing starts at the parent of the node that
// was physically unlinked.
// Time: O(D)
func (u *AVLTree[T, S]) Remove(v T) bool {
	st := u.pathTo(v)
	last := st[len(st)-1]
	cur := *last
	if cur == nil {
		clear(st)
		u.path = st[:0]
		return false
	}
	if cur.l == nil {
		*last = cur.r
		st[len(st)-1] = nil
		st = st[:len(st)-1]
	} else {
		rm := &cur.l
		for (*rm).r != nil {
			st = append(st, rm)
			rm = &(*rm).r
		}
		cur.v = (*rm).v
		*rm = (*rm).l
	}
	u.balancePath(st)
	return true
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *AVLTree[T, S]) Has(v T) bool {
	for cur := u.root; cur != nil; {
		if c := u.cmp(v, cur.v); c < 0 {
			cur = cur.l
		} else if c > 0 {
			cur = cur.r
		} else {
			return true
		}
	}
	return false
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *AVLTree[T, S]) Minimum() (r T, has bool) {
	if cur := u.root; cur != nil {
		for cur.l != nil {
			cur = cur.l
		}
		return cur.v, true
	}
	return
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *AVLTree[T, S]) Maximum() (r T, has bool) {
	if cur := u.root; cur != nil {
		for cur.r != nil {
			cur = cur.r
		}
		return cur.v, true
	}
	return
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u *AVLTree[T, S]) Predecessor(v T) (r T, has bool) {
	var p *node[T, S]
	for cur := u.root; cur != nil; {
		if u.cmp(v, cur.v) <= 0 {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	if p != nil {
		return p.v, true
	}
	return
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u *AVLTree[T, S]) Successor(v T) (r T, has bool) {
	var p *node[T, S]
	for cur := u.root; cur != nil; {
		if u.cmp(v, cur.v) < 0 {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	if p != nil {
		return p.v, true
	}
	return
}

// RankK [Tree.RankK]
// Time: O(D); Space: O(1)
func (u *AVLTree[T, S]) RankK(k S) (r T, has bool) {
	for cur := u.root; cur != nil; {
		if lsz := size(cur.l); k < lsz {
			cur = cur.l
		} else if k > lsz {
			k -= lsz + 1
			cur = cur.r
		} else {
			return cur.v, true
		}
	}
	return
}

// RankOf [Tree.RankOf]
// Time: O(D); Space: O(1)
func (u *AVLTree[T, S]) RankOf(v T) (S, bool) {
	var ra S = 0
	for cur := u.root; cur != nil; {
		if c := u.cmp(v, cur.v); c < 0 {
			cur = cur.l
		} else if c > 0 {
			ra += size(cur.l) + 1
			cur = cur.r
		} else {
			return ra + size(cur.l), true
		}
	}
	return ra, false
}

// corrupt checks the subtree at cur whose values must lie strictly between lo and hi
// when those are given.
func (u *AVLTree[T, S]) corrupt(cur, lo, hi *node[T, S]) bool {
	if cur == nil {
		return false
	}
	if (lo != nil && u.cmp(lo.v, cur.v) >= 0) || (hi != nil && u.cmp(cur.v, hi.v) >= 0) {
		return true
	}
	if u.corrupt(cur.l, lo, cur) || u.corrupt(cur.r, cur, hi) {
		return true
	}
	if b := cur.balance(); b < -1 || b > 1 {
		return true
	}
	return cur.h != max(height(cur.l), height(cur.r))+1 || cur.sz != size(cur.l)+size(cur.r)+1
}

// Corrupt [Tree.Corrupt]. Recursive.
// Time: O(n)
func (u *AVLTree[T, S]) Corrupt() bool {
	return u.corrupt(u.root, nil, nil)
}
