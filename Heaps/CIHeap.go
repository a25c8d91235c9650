package Heaps

import "slices"

// CIHeap is the version of IHeap ranked by a user-supplied comparator.
// The position table still keys on Go's == over T, so two elements may
// compare equal under Cmp (same rank) while being distinct entries; ties
// carry no ordering guarantee. All methods are implemented exactly as
// IHeap except for using Cmp for rank comparisons.
type CIHeap[T comparable] struct {
	data []T
	pos  map[T]int
	//returns positive number if first ranks above second, 0 if they tie, negative number otherwise.
	Cmp func(T, T) int
}

// MakeCIHeap is the CIHeap equivalence of MakeIHeap.
func MakeCIHeap[T comparable](hint uint, cmp func(T, T) int) *CIHeap[T] {
	return &CIHeap[T]{make([]T, 0, hint), make(map[T]int, hint), cmp}
}

// BuildCIHeap is the CIHeap equivalence of BuildIHeap.
func BuildCIHeap[T comparable](vs []T, cmp func(T, T) int) *CIHeap[T] {
	u := &CIHeap[T]{Cmp: cmp}
	u.Build(vs)
	return u
}

func (u *CIHeap[T]) swap(i, j int) {
	u.data[i], u.data[j] = u.data[j], u.data[i]
	u.pos[u.data[i]], u.pos[u.data[j]] = i, j
}

func (u *CIHeap[T]) moveTo(i, j int) {
	u.data[i] = u.data[j]
	u.pos[u.data[i]] = i
}

func (u *CIHeap[T]) siftUp(i int) {
	for i > 0 {
		if p := (i - 1) >> 1; u.Cmp(u.data[i], u.data[p]) > 0 {
			u.swap(i, p)
			i = p
		} else {
			break
		}
	}
}

func (u *CIHeap[T]) siftDown(i int) {
	for {
		c := i<<1 + 1
		if c >= len(u.data) {
			break
		}
		if r := c + 1; r < len(u.data) && u.Cmp(u.data[r], u.data[c]) > 0 {
			c = r
		}
		if u.Cmp(u.data[c], u.data[i]) > 0 {
			u.swap(i, c)
			i = c
		} else {
			break
		}
	}
}

func (u *CIHeap[T]) Insert(v T) bool {
	if _, in := u.pos[v]; in {
		return false
	}
	u.data = append(u.data, v)
	u.pos[v] = len(u.data) - 1
	u.siftUp(len(u.data) - 1)
	return true
}

func (u *CIHeap[T]) Peek() (T, bool) {
	if len(u.data) == 0 {
		return *new(T), false
	}
	return u.data[0], true
}

func (u *CIHeap[T]) Pop() (T, bool) {
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

func (u *CIHeap[T]) Remove(v T) bool {
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
// When old and v tie under Cmp only the stored value and its pos key change;
// the heap keeps its shape. Otherwise the slot is reranked in place by
// sifting in both directions, of which one is a harmless no-op.
func (u *CIHeap[T]) Update(old, v T) bool {
	i, in := u.pos[old]
	if !in {
		return false
	}
	if v != old {
		if _, taken := u.pos[v]; taken {
			return false
		}
		delete(u.pos, old)
		u.data[i], u.pos[v] = v, i
	}
	if u.Cmp(v, old) != 0 {
		u.siftDown(i)
		u.siftUp(i)
	}
	return true
}

func (u *CIHeap[T]) Has(v T) bool {
	_, in := u.pos[v]
	return in
}

func (u *CIHeap[T]) Build(vs []T) {
	u.data = vs
	u.pos = make(map[T]int, len(vs))
	for i, v := range vs {
		u.pos[v] = i
	}
	for i := len(vs)>>1 - 1; i >= 0; i-- {
		u.siftDown(i)
	}
}

func (u *CIHeap[T]) Size() uint {
	return uint(len(u.data))
}

func (u *CIHeap[T]) Empty() bool {
	return len(u.data) == 0
}

func (u *CIHeap[T]) Clear() {
	clear(u.data)
	u.data = u.data[:0]
	clear(u.pos)
}

func (u *CIHeap[T]) ToSlice() []T {
	return slices.Clone(u.data)
}

func (u *CIHeap[T]) Drain() func() (T, bool) {
	return func() (T, bool) {
		return u.Pop()
	}
}

func (u *CIHeap[T]) Corrupt() bool {
	if len(u.data) != len(u.pos) {
		return true
	}
	for i, v := range u.data {
		if j, in := u.pos[v]; !in || j != i {
			return true
		}
		if i > 0 && u.Cmp(u.data[(i-1)>>1], v) < 0 {
			return true
		}
	}
	return false
}
