package Trees

import "golang.org/x/exp/constraints"

// A node in the AVLTree.
// h is the height of the subtree rooted here, 0 for a leaf. sz is the number of
// nodes in that subtree. A nil *node is an empty subtree with height -1 and size 0.
type node[T any, S constraints.Unsigned] struct {
	v    T
	l, r *node[T, S]
	sz   S
	h    int8
}

func height[T any, S constraints.Unsigned](n *node[T, S]) int8 {
	if n == nil {
		return -1
	}
	return n.h
}

func size[T any, S constraints.Unsigned](n *node[T, S]) S {
	if n == nil {
		return 0
	}
	return n.sz
}

// update recomputes h and sz of n from its children.
// Time: O(1); Space: O(1)
func (n *node[T, S]) update() {
	n.h = max(height(n.l), height(n.r)) + 1
	n.sz = size(n.l) + size(n.r) + 1
}

// balance factor of n: height(right)-height(left).
func (n *node[T, S]) balance() int8 {
	return height(n.r) - height(n.l)
}

// rotateLeft performs a left rotation on the subtree held by slot n. n is passed by reference in order
// to modify its content, which is either the tree's root or a child field of the parent.
// Time: O(1); Space: O(1)
func rotateLeft[T any, S constraints.Unsigned](n **node[T, S]) {
	r := *n
	rc := r.r
	r.r = rc.l
	rc.l = r
	r.update()
	rc.update()
	*n = rc
}

// rotateRight is the mirror of rotateLeft.
// Time: O(1); Space: O(1)
func rotateRight[T any, S constraints.Unsigned](n **node[T, S]) {
	r := *n
	lc := r.l
	r.l = lc.r
	lc.r = r
	r.update()
	lc.update()
	*n = lc
}
