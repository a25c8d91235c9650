package Heaps

// Heap is an array backed binary max-heap augmented with a lookup table
// from element to its current array position, so removing or reprioritizing
// an arbitrary element costs O(log n) instead of a linear scan.
// Elements are unique under Go's == on T; inserting a present element is a
// refused no-op. Receivers that have a bool as a second return value
// indicate whether the first return value is defined, like the Tree
// interface in package Trees.
// Implementations are not synchronized; wrap the whole structure in a lock
// if multiple goroutines share it.
type Heap[T any] interface {
	//Insert v into the heap. Returns false if v is already present, in which
	//case the heap is unchanged.
	Insert(v T) bool
	//Peek returns the highest ranked element without removing it.
	Peek() (T, bool)
	//Pop removes and returns the highest ranked element.
	Pop() (T, bool)
	//Remove the element equal to v. Returns false if v isn't present.
	Remove(v T) bool
	//Update replaces the element equal to old with v, reordering the heap
	//if their ranks differ. Returns false if old isn't present, or if v is
	//already present as a distinct element.
	Update(old, v T) bool
	//Has reports whether v is present. O(1) through the position table.
	Has(v T) bool
	//Build replaces the entire contents with vs and heapifies bottom-up.
	//vs is handed to the heap and mustn't be modified by the caller later;
	//it mustn't contain duplicate elements.
	Build(vs []T)
	//Size of the heap.
	Size() uint
	//Empty reports whether the heap holds no elements.
	Empty() bool
	//Clear empties the backing array and the position table together,
	//keeping their capacity.
	Clear()
	//ToSlice returns a copy of the backing array in heap order. Mutating it
	//doesn't affect the heap.
	ToSlice() []T
	//Drain returns a closure iterator yielding elements in descending rank
	//order by repeatedly popping. It destructively consumes the heap: the
	//iteration isn't restartable and a second Drain observes an empty heap.
	Drain() func() (T, bool)
	//Corrupt returns whether the heap order or the position table is
	//violated anywhere. This is a diagnostic full scan; the mutation path
	//never calls it.
	Corrupt() bool
}
