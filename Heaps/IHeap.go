package Heaps

import (
	"cmp"
	"slices"
)

// IHeap is a max-heap over T's natural ordering. The backing array is a
// complete binary tree: the children of position i sit at 2i+1 and 2i+2.
// pos maps every stored element to its current position; both structures
// change only through swap, moveTo and the append/truncate in the exported
// methods, so pos never holds a stale index between operations.
type IHeap[T cmp.Ordered] struct {
	data []T
	pos  map[T]int
}

// MakeIHeap returns an empty IHeap with capacity for hint elements.
// IHeap shouldn't be created directly using struct literal.
func MakeIHeap[T cmp.Ordered](hint uint) *IHeap[T] {
	return &IHeap[T]{make([]T, 0, hint), make(map[T]int, hint)}
}

// BuildIHeap returns an IHeap holding vs, heapified in O(n). vs follows the
// [Heap.Build] contract.
func BuildIHeap[T cmp.Ordered](vs []T) *IHeap[T] {
	u := new(IHeap[T])
	u.Build(vs)
	return u
}

// swap the elements at positions i and j. Both pos entries are updated
// together with the array; every position change during sifting goes
// through here.
func (u *IHeap[T]) swap(i, j int) {
	u.data[i], u.data[j] = u.data[j], u.data[i]
	u.pos[u.data[i]], u.pos[u.data[j]] = i, j
}

// moveTo overwrites position i with the element at position j and records
// its new position. The old element at i must already be deleted from pos.
func (u *IHeap[T]) moveTo(i, j int) {
	u.data[i] = u.data[j]
	u.pos[u.data[i]] = i
}

// siftUp moves the element at position i toward the root while it ranks
// strictly above its parent. A no-op when the order already holds.
func (u *IHeap[T]) siftUp(i int) {
	for i > 0 {
		if p := (i - 1) >> 1; u.data[p] < u.data[i] {
			u.swap(i, p)
			i = p
		} else {
			break
		}
	}
}

// siftDown moves the element at position i toward the leaves, at each step
// comparing against the larger child; the left child wins ties. A no-op
// when the order already holds.
func (u *IHeap[T]) siftDown(i int) {
	for {
		c := i<<1 + 1
		if c >= len(u.data) {
			break
		}
		if r := c + 1; r < len(u.data) && u.data[c] < u.data[r] {
			c = r
		}
		if u.data[i] < u.data[c] {
			u.swap(i, c)
			i = c
		} else {
			break
		}
	}
}

// Insert [Heap.Insert]
// Time: O(log n)
func (u *IHeap[T]) Insert(v T) bool {
	if _, in := u.pos[v]; in {
		return false
	}
	u.data = append(u.data, v)
	u.pos[v] = len(u.data) - 1
	u.siftUp(len(u.data) - 1)
	return true
}

// Peek [Heap.Peek]
// Time: O(1); Space: O(1)
func (u *IHeap[T]) Peek() (T, bool) {
	if len(u.data) == 0 {
		return *new(T), false
	}
	return u.data[0], true
}

// Pop [Heap.Pop]
// The last element takes the root's place and sifts down.
// Time: O(log n)
func (u *IHeap[T]) Pop() (T, bool) {
	if len(u.data) == 0 {
		return *new(T), false
	}
	top := u.data[0]
	delete(u.pos, top)
	if last := len(u.data) - 1; last > 0 {
		u.moveTo(0, last)
		u.data[last] = *new(T)
		u.data = u.data[:last]
		u.siftDown(0)
	} else {
		u.data[0] = *new(T)
		u.data = u.data[:0]
	}
	return top, true
}

// Remove [Heap.Remove]
// The freed slot receives the last element, which then sifts in both
// directions; at most one direction actually moves it and the other is a
// harmless no-op.
// Time: O(log n)
func (u *IHeap[T]) Remove(v T) bool {
	i, in := u.pos[v]
	if !in {
		return false
	}
	delete(u.pos, v)
	last := len(u.data) - 1
	if i != last {
		u.moveTo(i, last)
	}
	u.data[last] = *new(T)
	u.data = u.data[:last]
	if i != last {
		u.siftDown(i)
		u.siftUp(i)
	}
	return true
}

// Update [Heap.Update]
// For an ordered T equal rank means equal value, so replacing old with an
// equal v is a no-op that still reports true.
// Time: O(log n)
func (u *IHeap[T]) Update(old, v T) bool {
	i, in := u.pos[old]
	if !in {
		return false
	}
	if v == old {
		return true
	}
	if _, taken := u.pos[v]; taken {
		return false
	}
	delete(u.pos, old)
	u.data[i], u.pos[v] = v, i
	u.siftDown(i)
	u.siftUp(i)
	return true
}

// Has [Heap.Has]
// Time: O(1); Space: O(1)
func (u *IHeap[T]) Has(v T) bool {
	_, in := u.pos[v]
	return in
}

// Build [Heap.Build]
// Standard bottom-up heapify: sift down from the last non-leaf position to
// the root.
// Time: O(n)
func (u *IHeap[T]) Build(vs []T) {
	u.data = vs
	u.pos = make(map[T]int, len(vs))
	for i, v := range vs {
		u.pos[v] = i
	}
	for i := len(vs)>>1 - 1; i >= 0; i-- {
		u.siftDown(i)
	}
}

// Size [Heap.Size]
func (u *IHeap[T]) Size() uint {
	return uint(len(u.data))
}

// Empty [Heap.Empty]
func (u *IHeap[T]) Empty() bool {
	return len(u.data) == 0
}

// Clear [Heap.Clear]
func (u *IHeap[T]) Clear() {
	clear(u.data)
	u.data = u.data[:0]
	clear(u.pos)
}

// ToSlice [Heap.ToSlice]
// Time: O(n)
func (u *IHeap[T]) ToSlice() []T {
	return slices.Clone(u.data)
}

// Drain [Heap.Drain]
func (u *IHeap[T]) Drain() func() (T, bool) {
	return func() (T, bool) {
		return u.Pop()
	}
}

// Corrupt [Heap.Corrupt]
// Checks that every non-root element ranks no higher than its parent and
// that pos agrees with an independent scan of the array.
// Time: O(n)
func (u *IHeap[T]) Corrupt() bool {
	if len(u.data) != len(u.pos) {
		return true
	}
	for i, v := range u.data {
		if j, in := u.pos[v]; !in || j != i {
			return true
		}
		if i > 0 && u.data[(i-1)>>1] < v {
			return true
		}
	}
	return false
}
