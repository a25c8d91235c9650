package Trees

import "golang.org/x/exp/constraints"

// A node in the AVLTree
// The zero value is meaningless.
type node[T any, S constraints.Unsigned] struct {
	v    T
	l, r nodePtr[T, S]
	h    S
}

// Pointer to a node
// nil Pointer is meaningless. A nodePtr is considered to be nil if the
// pointer is equal to the nilPtr in AVLTree. The value of this node has
// both node.l, node.r = itself, and h=0. v is the zero value of T
type nodePtr[T any, S constraints.Unsigned] *node[T, S]

// rotateLeft performs a left rotation on nodePtr n. n is passed by reference in order
// to modify its content. The heights of the two restructured nodes are recomputed.
// Time: O(1); Space: O(1)
func rotateLeft[T any, S constraints.Unsigned](n *nodePtr[T, S]) {
	r := *n
	rc := r.r
	r.r = rc.l
	rc.l = r
	r.h = max(r.l.h, r.r.h) + 1
	rc.h = max(rc.l.h, rc.r.h) + 1
	*n = rc
}

// rotateRight performs a right rotation on nodePtr n. n is passed by reference in order
// to modify its content. The heights of the two restructured nodes are recomputed.
// Time: O(1); Space: O(1)
func rotateRight[T any, S constraints.Unsigned](n *nodePtr[T, S]) {
	r := *n
	lc := r.l
	r.l = lc.r
	lc.r = r
	r.h = max(r.l.h, r.r.h) + 1
	lc.h = max(lc.l.h, lc.r.h) + 1
	*n = lc
}

// rebalance recomputes the height of *n and, if the heights of its subtrees
// differ by more than 1, restores the height rule at this node with a single
// or double rotation. The comparisons stay on the unsigned side (a.h > b.h+1
// instead of subtracting) so S never underflows. The >= on the inner test
// picks the single rotation when the taller child's subtrees tie, which only
// happens on the removal path.
// Time: O(1); Space: O(1)
func rebalance[T any, S constraints.Unsigned](n *nodePtr[T, S]) {
	cur := *n
	if lc, rc := cur.l, cur.r; lc.h > rc.h+1 {
		if lc.l.h >= lc.r.h {
			rotateRight(n)
		} else {
			rotateLeft(&cur.l)
			rotateRight(n)
		}
	} else if rc.h > lc.h+1 {
		if rc.r.h >= rc.l.h {
			rotateLeft(n)
		} else {
			rotateRight(&cur.r)
			rotateLeft(n)
		}
	} else {
		cur.h = max(lc.h, rc.h) + 1
	}
}
