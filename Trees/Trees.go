// Package Trees implements an AVL tree whose nodes also record the sizes of their subtrees,
// so that besides the usual ordered set operations it can find elements by rank and start an
// in-order iteration at any rank in O(log n).
package Trees

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Tree represents an ordered set of unique elements implemented using nodes.
// Receivers that have a bool as a second return value indicate whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool), and x is the
// zero value of T that shouldn't be used.
// Methods implemented recursively are noted, otherwise they are implemented iteratively.
// A Tree isn't safe for concurrent use; callers must synchronize every operation.
type Tree[T any, S constraints.Unsigned] interface {
	//Insert v to the Tree. Returns false and leaves the Tree unchanged if v is already in it.
	Insert(v T) bool
	//Remove v from the Tree. Returns false and leaves the Tree unchanged if v isn't in it.
	Remove(v T) bool
	//Has element v.
	Has(v T) bool
	//Size of the tree.
	Size() S
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(v T) (T, bool)
	//RankK returns the element with k elements less than it.
	//0<=k<Size().
	RankK(k S) (T, bool)
	//RankOf v, starting from 0. If v isn't found, returns the rank as if v is added to the tree.
	RankOf(v T) (S, bool)
	//Iterator starting before the smallest element.
	Iterator() *Iterator[T, S]
	//IteratorAt returns an Iterator that has already skipped the k smallest elements.
	//0<=k<=Size(), otherwise a *RankError is returned.
	IteratorAt(k int) (*Iterator[T, S], error)
	//All elements in ascending order.
	All() iter.Seq[T]
	//Corrupt returns whether the tree has corrupt structures, when the value, height, or size
	//at some node violates the properties of that specific implementation, including balance.
	Corrupt() bool
}

var _ Tree[int, uint] = (*AVLTree[int, uint])(nil)
