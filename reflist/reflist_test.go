package reflist

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequence(n int) *RefList[int] {
	l := New[int](n)
	for i := range n {
		l.Add(i)
	}

	return l
}

// panicValue runs fn and returns the error it panicked with.
func panicValue(t *testing.T, fn func()) (err error) {
	t.Helper()

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")

		e, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)

		err = e
	}()

	fn()

	return nil
}

func TestNextCapacity(t *testing.T) {
	tests := []struct {
		size int
		want int
	}{
		{0, 4},
		{1, 4},
		{4, 4},
		{5, 8},
		{17, 32},
		{33, 48},
		{49, 64},
		{65, 80},
		{81, 96},
		{97, 128},
		{129, 192},
		{193, 256},
		{257, 1024},
		{1025, 4096},
		{4097, 16384},
		{16384, 16384},
		{16385, 16385},
		{100000, 100000},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NextCapacity(tt.size), "size %d", tt.size)
	}
}

func TestRefList_CapacityFollowsSteps(t *testing.T) {
	l := Empty[int]()
	prev := l.Cap()

	for n := 1; n <= 17000; n++ {
		l.Add(n)

		assert.Equal(t, NextCapacity(n), l.Cap(), "after %d additions", n)
		assert.GreaterOrEqual(t, l.Cap(), prev, "capacity must never decrease")

		prev = l.Cap()
	}
}

func TestRefList_AddThenAt(t *testing.T) {
	l := Empty[string]()

	for _, s := range []string{"a", "b", "c", "d", "e", "f"} {
		l.Add(s)
		assert.Equal(t, s, *l.At(l.Len()-1))
	}

	assert.Equal(t, 6, l.Len())
}

func TestRefList_AtReturnsReference(t *testing.T) {
	type record struct {
		Name  string
		Count int
	}

	l := FromSlice([]record{{Name: "a"}, {Name: "b"}})
	l.At(1).Count = 42

	assert.Equal(t, 42, l.At(1).Count)
	assert.Equal(t, 0, l.At(0).Count)
}

func TestRefList_AtOutOfRange(t *testing.T) {
	l := sequence(3)

	err := panicValue(t, func() { l.At(3) })
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))

	var idxErr *IndexError
	require.ErrorAs(t, err, &idxErr)
	assert.Equal(t, 3, idxErr.Index)
	assert.Equal(t, 3, idxErr.Len)

	err = panicValue(t, func() { l.At(-1) })
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestRefList_RefSurvivesGrowth(t *testing.T) {
	l := sequence(4)
	ref := l.Ref(2)
	stale := l.At(2)

	// Forces reallocation from 4 to 8.
	l.Add(4)
	*ref.Get() = 20

	assert.Equal(t, 20, *l.At(2))
	assert.Equal(t, 2, *stale, "pointer into the old backing array is detached")
	assert.True(t, ref.Valid())
	assert.Equal(t, 2, ref.Index())

	l.Clear()
	assert.False(t, ref.Valid())
}

func TestRefList_Insert(t *testing.T) {
	l := FromSlice([]int{1, 2, 4})
	l.Insert(2, 3)
	l.Insert(0, 0)

	assert.Empty(t, cmp.Diff([]int{0, 1, 2, 3, 4}, l.Slice()))
}

func TestRefList_InsertBeyondCountActsAsAdd(t *testing.T) {
	a := FromSlice([]int{1, 2, 3})
	b := FromSlice([]int{1, 2, 3})

	a.Insert(3, 9)
	b.Add(9)
	assert.Equal(t, b.Slice(), a.Slice())

	a.Insert(100, 10)
	b.Add(10)
	assert.Equal(t, b.Slice(), a.Slice())
	assert.Equal(t, b.Cap(), a.Cap())
}

func TestRefList_InsertNegative(t *testing.T) {
	l := sequence(2)

	err := panicValue(t, func() { l.Insert(-1, 5) })
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Equal(t, 2, l.Len())
}

func TestRefList_InsertGrows(t *testing.T) {
	l := sequence(4)
	require.Equal(t, 4, l.Cap())

	l.Insert(1, 100)

	assert.Equal(t, 8, l.Cap())
	assert.Equal(t, []int{0, 100, 1, 2, 3}, l.Slice())
}

func TestRefList_RemoveAt(t *testing.T) {
	l := sequence(5)
	l.RemoveAt(0)
	l.RemoveAt(3)
	l.RemoveAt(1)

	assert.Equal(t, []int{1, 3}, l.Slice())
	assert.Equal(t, 8, l.Cap())

	err := panicValue(t, func() { l.RemoveAt(2) })
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	err = panicValue(t, func() { l.RemoveAt(-1) })
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestRefList_RemoveAll(t *testing.T) {
	l := sequence(24)

	removed := l.RemoveAll(func(v *int) bool { return *v%2 == 0 })

	assert.Equal(t, 12, removed)
	require.Equal(t, 12, l.Len())

	for i := range 12 {
		assert.Equal(t, i*2+1, *l.At(i))
	}
}

func TestRefList_RemoveAllAdjacentMatches(t *testing.T) {
	l := FromSlice([]int{7, 7, 1, 7, 7, 7, 2, 7})

	calls := 0
	removed := l.RemoveAll(func(v *int) bool {
		calls++
		return *v == 7
	})

	assert.Equal(t, 6, removed)
	assert.Equal(t, 8, calls, "predicate runs exactly once per element")
	assert.Equal(t, []int{1, 2}, l.Slice())
}

func TestRefList_RemoveIndices(t *testing.T) {
	l := sequence(24)

	indices := map[int]struct{}{}
	for i := 0; i <= 24; i += 2 {
		indices[i] = struct{}{}
	}

	removed := l.RemoveIndices(indices)

	assert.Equal(t, 12, removed)
	require.Equal(t, 12, l.Len())

	for i := range 12 {
		assert.Equal(t, i*2+1, *l.At(i))
	}
}

func TestRefList_RemoveIndicesUsesOriginalPositions(t *testing.T) {
	l := FromSlice([]string{"a", "b", "c", "d", "e"})

	removed := l.RemoveIndices(map[int]struct{}{0: {}, 1: {}, 3: {}, -4: {}, 99: {}})

	assert.Equal(t, 3, removed)
	assert.Equal(t, []string{"c", "e"}, l.Slice())
}

func TestRefList_RemoveIndicesEmptySet(t *testing.T) {
	l := sequence(3)

	assert.Equal(t, 0, l.RemoveIndices(nil))
	assert.Equal(t, []int{0, 1, 2}, l.Slice())
}

func TestRefList_Swap(t *testing.T) {
	l := sequence(4)

	l.Swap(0, 3)
	assert.Equal(t, []int{3, 1, 2, 0}, l.Slice())

	l.Swap(2, 2)
	assert.Equal(t, []int{3, 1, 2, 0}, l.Slice())
}

func TestRefList_SwapOutOfRange(t *testing.T) {
	l := sequence(4)

	err := panicValue(t, func() { l.Swap(4, 0) })
	assert.ErrorIs(t, err, ErrArgumentOutOfRange)

	var argErr *ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "i", argErr.Name)

	err = panicValue(t, func() { l.Swap(0, -1) })
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "j", argErr.Name)

	err = panicValue(t, func() { l.Swap(5, 5) })
	assert.ErrorIs(t, err, ErrArgumentOutOfRange)
}

func TestRefList_ClearKeepsCapacity(t *testing.T) {
	l := sequence(20)
	l.Clear()

	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 32, l.Cap())

	l.Add(1)
	assert.Equal(t, []int{1}, l.Slice())
}

func TestRefList_FindIndexAndIndexOf(t *testing.T) {
	l := FromSlice([]int{5, 6, 7, 6})

	assert.Equal(t, 1, IndexOf(l, 6))
	assert.Equal(t, -1, IndexOf(l, 9))
	assert.Equal(t, 2, l.FindIndex(func(v *int) bool { return *v > 6 }))

	l.Clear()
	assert.Equal(t, -1, IndexOf(l, 0), "dead slots are never matched")
}

func TestRefList_All(t *testing.T) {
	l := sequence(5)

	var seen []int
	for i, v := range l.All() {
		if i == 3 {
			break
		}

		*v *= 10
		seen = append(seen, i)
	}

	assert.Equal(t, []int{0, 1, 2}, seen)
	assert.Equal(t, []int{0, 10, 20, 3, 4}, l.Slice())
}

func TestCreate(t *testing.T) {
	l := Create([]string{"a", "bb", "ccc"}, func(s string) int { return len(s) })

	assert.Equal(t, []int{1, 2, 3}, l.Slice())
	assert.Equal(t, 4, l.Cap())

	assert.Nil(t, CreateOrNil([]string(nil), func(s string) int { return len(s) }))
	assert.NotNil(t, CreateOrNil([]string{}, func(s string) int { return len(s) }))
}
