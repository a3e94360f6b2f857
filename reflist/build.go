package reflist

import "slices"

// Build applies fn to every live element in index order and returns the
// results.
func Build[T, R any](l *RefList[T], fn func(*T) R) []R {
	out := make([]R, 0, l.count)
	for i := range l.count {
		out = append(out, fn(&l.data[i]))
	}

	return out
}

// BuildOptional is Build, except that elements for which fn reports false
// are left out of the result.
func BuildOptional[T, R any](l *RefList[T], fn func(*T) (R, bool)) []R {
	out := make([]R, 0, l.count)
	for i := range l.count {
		if v, ok := fn(&l.data[i]); ok {
			out = append(out, v)
		}
	}

	return out
}

// BuildOrEmpty is Build, except that a nil list yields an empty, non-nil
// slice.
func BuildOrEmpty[T, R any](l *RefList[T], fn func(*T) R) []R {
	if l == nil {
		return []R{}
	}

	return Build(l, fn)
}

// CloneOrEmpty returns a copy of s, or an empty non-nil slice when s is nil.
func CloneOrEmpty[S ~[]E, E any](s S) S {
	if s == nil {
		return S{}
	}

	return slices.Clone(s)
}
