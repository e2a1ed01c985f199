package seq

import "iter"

// Iterable is anything that can hand out a fresh traversal of its elements.
// [Sequence][T] satisfies it, and so does any type with an All method in the
// style of the standard library containers.
//
// Accept Iterable in your own functions so that callers can pass either a
// Sequence or their own container without converting.
type Iterable[T any] interface {
	// All returns an iterator over every element. Each call starts a new
	// traversal.
	All() iter.Seq[T]
}

// FromIterable wraps an Iterable. The result is multi-pass exactly when
// the Iterable's traversals are.
func FromIterable[T any](it Iterable[T]) *Sequence[T] {
	if s, ok := it.(*Sequence[T]); ok {
		return s
	}
	return &Sequence[T]{source: func(yield func(T) bool) {
		for v := range it.All() {
			if !yield(v) {
				return
			}
		}
	}}
}
