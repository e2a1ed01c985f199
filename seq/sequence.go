package seq

import (
	"cmp"
	"encoding/json"
	"iter"
	"maps"
	"slices"
)

// Sequence is a generic, immutable, lazily evaluated view over a source of
// elements.
//
// A Sequence wraps an iter.Seq that acts as a cursor factory: every call to
// [Sequence.All] starts a new traversal of the whole operator chain. Lazy
// methods return a new Sequence that closes over its parent and never
// modify the receiver.
//
// # Creating a sequence
//
//	s := seq.Of(1, 2, 3, 4, 5)
//	s := seq.FromSlice([]string{"a", "b", "c"})
//	s := seq.FromSeq(maps.Keys(m))
//	s := seq.Empty[int]()
//
// # Method chaining
//
//	result := seq.Of(5, 1, 4, 2, 3).
//	    Filter(func(n int) bool { return n > 1 }).
//	    SortFunc(cmp.Compare[int]).
//	    Take(2).
//	    ToSlice() // → [2 3]
//
// The zero value is an empty sequence. Element callbacks receive the
// element only; use [Enumerate] when the position is needed.
type Sequence[T any] struct {
	source iter.Seq[T]
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// Empty returns a sequence that yields nothing.
func Empty[T any]() *Sequence[T] {
	return &Sequence[T]{}
}

// Of creates a multi-pass sequence from a variadic list of items (copied).
func Of[T any](items ...T) *Sequence[T] {
	return FromSlice(items)
}

// FromSlice creates a multi-pass sequence from a slice (the slice is copied).
func FromSlice[T any](items []T) *Sequence[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return fromOwned(dst)
}

// fromOwned wraps a slice the caller will not touch again.
func fromOwned[T any](items []T) *Sequence[T] {
	return &Sequence[T]{source: slices.Values(items)}
}

// Single creates a one-element sequence.
func Single[T any](item T) *Sequence[T] {
	return fromOwned([]T{item})
}

// FromMap creates a sequence of key/value pairs read from m at traversal
// time. Go maps do not preserve insertion order, so the pair order is
// unspecified and may differ between traversals; use [FromMapSorted] when
// a stable order matters.
func FromMap[K comparable, V any](m map[K]V) *Sequence[Pair[K, V]] {
	return &Sequence[Pair[K, V]]{source: func(yield func(Pair[K, V]) bool) {
		for k, v := range m {
			if !yield(Pair[K, V]{First: k, Second: v}) {
				return
			}
		}
	}}
}

// FromMapSorted is like [FromMap] but yields pairs in ascending key order.
func FromMapSorted[K cmp.Ordered, V any](m map[K]V) *Sequence[Pair[K, V]] {
	return &Sequence[Pair[K, V]]{source: func(yield func(Pair[K, V]) bool) {
		for _, k := range slices.Sorted(maps.Keys(m)) {
			if !yield(Pair[K, V]{First: k, Second: m[k]}) {
				return
			}
		}
	}}
}

// FromSeq wraps an iter.Seq. The sequence is multi-pass exactly when src
// is. A nil src produces an empty sequence.
func FromSeq[T any](src iter.Seq[T]) *Sequence[T] {
	return &Sequence[T]{source: src}
}

// FromFunc wraps a single-use generator. next returns the following element
// and true, or false once the generator is exhausted; it is not called
// again after that.
//
// The resulting sequence is single-pass: a traversal resumes where the
// previous one stopped, and once the generator is drained every further
// traversal yields nothing. Use [Sequence.Cache] to replay it.
func FromFunc[T any](next func() (T, bool)) *Sequence[T] {
	done := false
	return &Sequence[T]{source: func(yield func(T) bool) {
		for !done {
			v, ok := next()
			if !ok {
				done = true
				return
			}
			if !yield(v) {
				return
			}
		}
	}}
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration protocol
// ─────────────────────────────────────────────────────────────────────────────

// All returns an iterator over the sequence. Each call starts a new
// traversal of the whole chain; see the package documentation for which
// sources support more than one.
//
//	for v := range s.All() { ... }
func (s *Sequence[T]) All() iter.Seq[T] {
	if s == nil || s.source == nil {
		return func(func(T) bool) {}
	}
	return s.source
}

// Cursor starts a traversal and returns it in pull form: next yields the
// following element and true, or the zero value and false once the
// sequence is exhausted. stop must be called when the caller abandons the
// cursor early; calling it after exhaustion is harmless.
func (s *Sequence[T]) Cursor() (next func() (T, bool), stop func()) {
	return iter.Pull(s.All())
}

// ─────────────────────────────────────────────────────────────────────────────
// Lazy operators
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a sequence of the items for which fn returns true.
// Chained filters apply in declaration order and behave as a logical AND.
func (s *Sequence[T]) Filter(fn func(T) bool) *Sequence[T] {
	src := s.All()
	return &Sequence[T]{source: func(yield func(T) bool) {
		for v := range src {
			if fn(v) && !yield(v) {
				return
			}
		}
	}}
}

// Reject is the complement of [Sequence.Filter].
func (s *Sequence[T]) Reject(fn func(T) bool) *Sequence[T] {
	return s.Filter(func(item T) bool { return !fn(item) })
}

// Map returns a sequence of fn(item) for every item.
//
// For type-changing transformations use the package-level [Map].
func (s *Sequence[T]) Map(fn func(T) T) *Sequence[T] {
	src := s.All()
	return &Sequence[T]{source: func(yield func(T) bool) {
		for v := range src {
			if !yield(fn(v)) {
				return
			}
		}
	}}
}

// FlatMap maps every item to an inner sequence and yields the inner
// sequences one after another. Neither the outer nor the inner sequences
// are read ahead.
//
// For type-changing flat-mapping use the package-level [FlatMap].
func (s *Sequence[T]) FlatMap(fn func(T) *Sequence[T]) *Sequence[T] {
	src := s.All()
	return &Sequence[T]{source: func(yield func(T) bool) {
		for v := range src {
			for inner := range fn(v).All() {
				if !yield(inner) {
					return
				}
			}
		}
	}}
}

// Take returns a sequence of at most the first n items. Positions are
// counted on the receiver's output. Take never pulls the item after the
// n-th, and Take(n) with n <= 0 pulls nothing at all.
func (s *Sequence[T]) Take(n int) *Sequence[T] {
	src := s.All()
	return &Sequence[T]{source: func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		taken := 0
		for v := range src {
			if !yield(v) {
				return
			}
			taken++
			if taken >= n {
				return
			}
		}
	}}
}

// Skip returns a sequence without the first n items. The skipped prefix is
// still pulled and discarded. Skip(n) with n <= 0 yields everything.
func (s *Sequence[T]) Skip(n int) *Sequence[T] {
	src := s.All()
	return &Sequence[T]{source: func(yield func(T) bool) {
		skipped := 0
		for v := range src {
			if skipped < n {
				skipped++
				continue
			}
			if !yield(v) {
				return
			}
		}
	}}
}

// TakeWhile yields items from the start while fn returns true.
func (s *Sequence[T]) TakeWhile(fn func(T) bool) *Sequence[T] {
	src := s.All()
	return &Sequence[T]{source: func(yield func(T) bool) {
		for v := range src {
			if !fn(v) || !yield(v) {
				return
			}
		}
	}}
}

// SkipWhile skips items while fn returns true, then yields the rest.
func (s *Sequence[T]) SkipWhile(fn func(T) bool) *Sequence[T] {
	src := s.All()
	return &Sequence[T]{source: func(yield func(T) bool) {
		skipping := true
		for v := range src {
			if skipping && fn(v) {
				continue
			}
			skipping = false
			if !yield(v) {
				return
			}
		}
	}}
}

// NotNull drops items whose key is nil. A nil key function tests the item
// itself. Nil pointers, maps, slices, channels, funcs and interfaces all
// count as nil.
func (s *Sequence[T]) NotNull(key func(T) any) *Sequence[T] {
	if key == nil {
		key = func(item T) any { return item }
	}
	return s.Filter(func(item T) bool { return !isNil(key(item)) })
}

// Append returns a sequence of every item of s followed by every item of
// other. Both are read lazily.
func (s *Sequence[T]) Append(other Iterable[T]) *Sequence[T] {
	parts := [2]iter.Seq[T]{s.All(), FromIterable(other).All()}
	return &Sequence[T]{source: func(yield func(T) bool) {
		for _, part := range parts {
			for v := range part {
				if !yield(v) {
					return
				}
			}
		}
	}}
}

// Add returns a sequence of every item of s followed by item.
func (s *Sequence[T]) Add(item T) *Sequence[T] {
	return s.Append(Single(item))
}

// Prepend returns a sequence of items followed by every item of s.
func (s *Sequence[T]) Prepend(items ...T) *Sequence[T] {
	return FromSlice(items).Append(s)
}

// Tap calls fn for every item as it flows past, for side-effects such as
// logging, and yields the item unchanged.
func (s *Sequence[T]) Tap(fn func(T)) *Sequence[T] {
	return s.Map(func(item T) T {
		fn(item)
		return item
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Eager operators
// ─────────────────────────────────────────────────────────────────────────────

// Cache consumes s and returns a slice-backed sequence holding the result.
// The cached sequence is multi-pass and safe to traverse from several
// goroutines at once.
func (s *Sequence[T]) Cache() *Sequence[T] {
	return fromOwned(s.ToSlice())
}

// Unique consumes s and returns a sequence without duplicates, keeping the
// first occurrence of every key in its original position. key extracts
// the comparison key; pass nil to compare the items themselves.
//
// Returns [ErrUnhashableKey] as soon as a key cannot be used as a map key.
// For compile-time checked keys use [Distinct] or [DistinctBy].
func (s *Sequence[T]) Unique(key func(T) any) (*Sequence[T], error) {
	if key == nil {
		key = func(item T) any { return item }
	}
	seen := make(map[any]struct{})
	out := make([]T, 0)
	for v := range s.All() {
		k := key(v)
		if err := checkHashable(k); err != nil {
			return nil, err
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, v)
	}
	return fromOwned(out), nil
}

// IsUnique reports whether no two items share a key, stopping at the first
// duplicate. A nil key compares the items themselves.
func (s *Sequence[T]) IsUnique(key func(T) any) (bool, error) {
	if key == nil {
		key = func(item T) any { return item }
	}
	seen := make(map[any]struct{})
	for v := range s.All() {
		k := key(v)
		if err := checkHashable(k); err != nil {
			return false, err
		}
		if _, ok := seen[k]; ok {
			return false, nil
		}
		seen[k] = struct{}{}
	}
	return true, nil
}

// SortFunc consumes s and returns its items sorted by cmp. The sort is
// stable: equal items keep their original order.
func (s *Sequence[T]) SortFunc(cmp func(a, b T) int) *Sequence[T] {
	out := s.ToSlice()
	slices.SortStableFunc(out, cmp)
	return fromOwned(out)
}

// Reverse consumes s and returns its items in reverse order.
func (s *Sequence[T]) Reverse() *Sequence[T] {
	out := s.ToSlice()
	slices.Reverse(out)
	return fromOwned(out)
}

// ─────────────────────────────────────────────────────────────────────────────
// Terminal operators
// ─────────────────────────────────────────────────────────────────────────────

// ToSlice consumes s and returns its items in order. The result is never
// nil.
func (s *Sequence[T]) ToSlice() []T {
	out := make([]T, 0)
	for v := range s.All() {
		out = append(out, v)
	}
	return out
}

// ToJSON serialises the items to a JSON array.
func (s *Sequence[T]) ToJSON() ([]byte, error) {
	return json.Marshal(s.ToSlice())
}

// Each calls fn for every item, in order.
func (s *Sequence[T]) Each(fn func(T)) {
	for v := range s.All() {
		fn(v)
	}
}

// Reduce folds the items left to right: carry = fn(carry, item), starting
// from initial. An empty sequence returns initial.
//
// For reductions that change the type use the package-level [Reduce].
func (s *Sequence[T]) Reduce(fn func(carry, item T) T, initial T) T {
	result := initial
	for v := range s.All() {
		result = fn(result, v)
	}
	return result
}

// Count consumes s and returns the number of items.
func (s *Sequence[T]) Count() int {
	n := 0
	for range s.All() {
		n++
	}
	return n
}

// IsEmpty reports whether s yields no items. It pulls at most one item.
func (s *Sequence[T]) IsEmpty() bool {
	for range s.All() {
		return false
	}
	return true
}

// First returns the first item, optionally matching fns[0].
// Returns the zero value and false when the sequence is empty or no item
// satisfies the predicate.
func (s *Sequence[T]) First(fns ...func(T) bool) (T, bool) {
	for v := range s.All() {
		if len(fns) == 0 || fns[0](v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Any reports whether fn returns true for at least one item, stopping at
// the first match. A nil fn reports whether any item is non-zero. An empty
// sequence returns false.
func (s *Sequence[T]) Any(fn func(T) bool) bool {
	if fn == nil {
		fn = func(item T) bool { return !isZero(item) }
	}
	for v := range s.All() {
		if fn(v) {
			return true
		}
	}
	return false
}

// Every reports whether fn returns true for all items, stopping at the
// first failure. An empty sequence returns true.
func (s *Sequence[T]) Every(fn func(T) bool) bool {
	return !s.Any(func(item T) bool { return !fn(item) })
}

// Sum returns the sum of all items using fn to extract numeric values.
// An empty sequence sums to 0.
func (s *Sequence[T]) Sum(fn func(T) float64) float64 {
	return SumBy(s, fn)
}

// Min returns the item with the smallest value extracted by fn. Ties go to
// the first occurrence. Returns the zero value and false if the sequence
// is empty.
func (s *Sequence[T]) Min(fn func(T) float64) (T, bool) {
	return MinBy(s, fn)
}

// Max returns the item with the largest value extracted by fn. Ties go to
// the first occurrence. Returns the zero value and false if the sequence
// is empty.
func (s *Sequence[T]) Max(fn func(T) float64) (T, bool) {
	return MaxBy(s, fn)
}
