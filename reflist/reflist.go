package reflist

import "iter"

// RefList is a growable sequence of value records with in-place access.
//
// Elements in [0, Len()) are live and contiguous. The zero value is not
// usable; create lists with New, Empty, FromSlice, or Create.
type RefList[T any] struct {
	data  []T
	count int
}

// New returns an empty list whose capacity is NextCapacity(capacity).
func New[T any](capacity int) *RefList[T] {
	return &RefList[T]{data: make([]T, NextCapacity(capacity))}
}

// Empty returns an empty list with the smallest capacity step.
func Empty[T any]() *RefList[T] {
	return New[T](0)
}

// FromSlice returns a list holding copies of items.
func FromSlice[T any](items []T) *RefList[T] {
	l := New[T](len(items))
	l.count = copy(l.data, items)

	return l
}

// Create returns a list holding sel applied to every element of src.
func Create[S, T any](src []S, sel func(S) T) *RefList[T] {
	l := New[T](len(src))
	for i, item := range src {
		l.data[i] = sel(item)
	}

	l.count = len(src)

	return l
}

// CreateOrNil is Create, except that a nil src yields a nil list.
func CreateOrNil[S, T any](src []S, sel func(S) T) *RefList[T] {
	if src == nil {
		return nil
	}

	return Create(src, sel)
}

// Len returns the number of live elements.
func (l *RefList[T]) Len() int {
	return l.count
}

// Cap returns the size of the backing storage.
func (l *RefList[T]) Cap() int {
	return len(l.data)
}

// At returns a pointer to the element at index. The pointer is invalidated by
// the next operation that grows the list.
func (l *RefList[T]) At(index int) *T {
	if index < 0 || index >= l.count {
		panic(&IndexError{Index: index, Len: l.count})
	}

	return &l.data[index]
}

// Ref returns a handle to the element at index that stays usable across
// growth. The index is checked on every Get.
func (l *RefList[T]) Ref(index int) Ref[T] {
	return Ref[T]{list: l, index: index}
}

// Add appends item, growing the backing storage first when it is full.
func (l *RefList[T]) Add(item T) {
	l.ensureSize(l.count + 1)
	l.data[l.count] = item
	l.count++
}

// Insert places item at index, shifting later elements one position right.
// An index at or beyond Len behaves as Add.
func (l *RefList[T]) Insert(index int, item T) {
	if index < 0 {
		panic(&IndexError{Index: index, Len: l.count})
	}

	if index >= l.count {
		l.Add(item)
		return
	}

	l.ensureSize(l.count + 1)
	copy(l.data[index+1:l.count+1], l.data[index:l.count])
	l.data[index] = item
	l.count++
}

// RemoveAt removes the element at index, shifting later elements one
// position left.
func (l *RefList[T]) RemoveAt(index int) {
	if index < 0 || index >= l.count {
		panic(&IndexError{Index: index, Len: l.count})
	}

	copy(l.data[index:l.count-1], l.data[index+1:l.count])
	l.count--
	clear(l.data[l.count : l.count+1])
}

// RemoveIndices removes every element whose position before the call is in
// indices and returns how many were removed. Indices outside [0, Len()) are
// ignored. Survivors keep their relative order.
func (l *RefList[T]) RemoveIndices(indices map[int]struct{}) int {
	return l.compact(func(original int, _ *T) bool {
		_, ok := indices[original]
		return ok
	})
}

// RemoveAll removes every element for which pred returns true and returns
// how many were removed. pred is called once per element, in index order.
// Survivors keep their relative order.
func (l *RefList[T]) RemoveAll(pred func(*T) bool) int {
	return l.compact(func(_ int, item *T) bool {
		return pred(item)
	})
}

// Swap exchanges the elements at i and j.
func (l *RefList[T]) Swap(i, j int) {
	if i < 0 || i >= l.count {
		panic(&ArgumentError{Name: "i", Value: i, Len: l.count})
	}

	if j < 0 || j >= l.count {
		panic(&ArgumentError{Name: "j", Value: j, Len: l.count})
	}

	if i == j {
		return
	}

	l.data[i], l.data[j] = l.data[j], l.data[i]
}

// Clear drops all elements and keeps the backing storage.
func (l *RefList[T]) Clear() {
	clear(l.data[:l.count])
	l.count = 0
}

// FindIndex returns the index of the first element for which pred returns
// true, or -1.
func (l *RefList[T]) FindIndex(pred func(*T) bool) int {
	for i := range l.count {
		if pred(&l.data[i]) {
			return i
		}
	}

	return -1
}

// All iterates over the live elements in index order.
func (l *RefList[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < l.count; i++ {
			if !yield(i, &l.data[i]) {
				return
			}
		}
	}
}

// Slice returns a copy of the live elements.
func (l *RefList[T]) Slice() []T {
	out := make([]T, l.count)
	copy(out, l.data[:l.count])

	return out
}

// compact removes, in one left-to-right pass, every element for which
// remove reports true. remove sees each element's position before the call.
func (l *RefList[T]) compact(remove func(original int, item *T) bool) int {
	write := 0
	for read := 0; read < l.count; read++ {
		if remove(read, &l.data[read]) {
			continue
		}

		if write != read {
			l.data[write] = l.data[read]
		}

		write++
	}

	removed := l.count - write
	clear(l.data[write:l.count])
	l.count = write

	return removed
}

func (l *RefList[T]) ensureSize(desired int) {
	if desired <= len(l.data) {
		return
	}

	data := make([]T, NextCapacity(desired))
	copy(data, l.data[:l.count])
	l.data = data
}

// IndexOf returns the index of the first live element equal to item, or -1.
func IndexOf[T comparable](l *RefList[T], item T) int {
	return l.FindIndex(func(v *T) bool {
		return *v == item
	})
}

// Ref is a bounded handle to one position of a RefList.
type Ref[T any] struct {
	list  *RefList[T]
	index int
}

// Index returns the position the handle refers to.
func (r Ref[T]) Index() int {
	return r.index
}

// Valid reports whether the position currently holds a live element.
func (r Ref[T]) Valid() bool {
	return r.list != nil && r.index >= 0 && r.index < r.list.count
}

// Get resolves the handle against the list's current backing storage.
func (r Ref[T]) Get() *T {
	return r.list.At(r.index)
}
