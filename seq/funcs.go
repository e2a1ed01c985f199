package seq

import (
	"cmp"
	"fmt"
	"reflect"

	"golang.org/x/exp/constraints"
)

// This file contains package-level generic functions for operations that
// change the element type of a Sequence or need a constraint on it.
//
// Go generics do not allow methods to introduce their own type parameters, so
// these operations must be stand-alone functions. They compose with method
// chains:
//
//	labels := seq.Map(
//	    seq.Of(1, 2, 3, 4, 5).Filter(func(n int) bool { return n%2 == 0 }),
//	    strconv.Itoa,
//	)

// Number is satisfied by every built-in integer and floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// ─────────────────────────────────────────────────────────────────────────────
// Lazy transformations
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn to every item as it is pulled.
//
//	squares := seq.Map(seq.Of(1, 2, 3), func(n int) string { return strconv.Itoa(n * n) })
func Map[T, U any](s *Sequence[T], fn func(T) U) *Sequence[U] {
	src := s.All()
	return &Sequence[U]{source: func(yield func(U) bool) {
		for v := range src {
			if !yield(fn(v)) {
				return
			}
		}
	}}
}

// FlatMap maps every item to an inner sequence and yields the inner
// sequences in outer order. It is a nested lazy pull: the next outer item
// is not read until the current inner sequence is exhausted.
//
//	words := seq.FlatMap(seq.Of("hello world", "foo bar"),
//	    func(s string) *seq.Sequence[string] { return seq.FromSlice(strings.Fields(s)) })
//	// → ["hello", "world", "foo", "bar"]
func FlatMap[T, U any](s *Sequence[T], fn func(T) *Sequence[U]) *Sequence[U] {
	return Flatten(Map(s, fn))
}

// Flatten concatenates a sequence of sequences, one level deep.
func Flatten[T any](s *Sequence[*Sequence[T]]) *Sequence[T] {
	src := s.All()
	return &Sequence[T]{source: func(yield func(T) bool) {
		for inner := range src {
			for v := range inner.All() {
				if !yield(v) {
					return
				}
			}
		}
	}}
}

// Collapse concatenates a sequence of slices, one level deep.
//
//	flat := seq.Collapse(seq.Of([]int{1, 2}, []int{3}))
//	// → [1, 2, 3]
func Collapse[T any](s *Sequence[[]T]) *Sequence[T] {
	src := s.All()
	return &Sequence[T]{source: func(yield func(T) bool) {
		for chunk := range src {
			for _, v := range chunk {
				if !yield(v) {
					return
				}
			}
		}
	}}
}

// Enumerate pairs every item with its position in s, starting at 0.
func Enumerate[T any](s *Sequence[T]) *Sequence[Pair[int, T]] {
	src := s.All()
	return &Sequence[Pair[int, T]]{source: func(yield func(Pair[int, T]) bool) {
		i := 0
		for v := range src {
			if !yield(Pair[int, T]{First: i, Second: v}) {
				return
			}
			i++
		}
	}}
}

// Chunk groups consecutive items into slices of size. The last chunk may
// be shorter. A size <= 0 yields nothing. Every chunk is a fresh slice.
//
//	seq.Chunk(seq.Of(1, 2, 3, 4, 5), 2) // → [[1 2] [3 4] [5]]
func Chunk[T any](s *Sequence[T], size int) *Sequence[[]T] {
	src := s.All()
	return &Sequence[[]T]{source: func(yield func([]T) bool) {
		if size <= 0 {
			return
		}
		chunk := make([]T, 0, size)
		for v := range src {
			chunk = append(chunk, v)
			if len(chunk) < size {
				continue
			}
			if !yield(chunk) {
				return
			}
			chunk = make([]T, 0, size)
		}
		if len(chunk) > 0 {
			yield(chunk)
		}
	}}
}

// Zip pairs items of a and b by position and stops at the shorter one.
// b is pulled before a, so a is never read past the last pair when b is
// the shorter one.
func Zip[A, B any](a *Sequence[A], b *Sequence[B]) *Sequence[Pair[A, B]] {
	return &Sequence[Pair[A, B]]{source: func(yield func(Pair[A, B]) bool) {
		nextA, stopA := a.Cursor()
		defer stopA()
		nextB, stopB := b.Cursor()
		defer stopB()
		for {
			vb, ok := nextB()
			if !ok {
				return
			}
			va, ok := nextA()
			if !ok || !yield(Pair[A, B]{First: va, Second: vb}) {
				return
			}
		}
	}}
}

// Keys yields the first half of every pair.
func Keys[K, V any](s *Sequence[Pair[K, V]]) *Sequence[K] {
	return Map(s, func(p Pair[K, V]) K { return p.First })
}

// Values yields the second half of every pair.
func Values[K, V any](s *Sequence[Pair[K, V]]) *Sequence[V] {
	return Map(s, func(p Pair[K, V]) V { return p.Second })
}

// ─────────────────────────────────────────────────────────────────────────────
// Eager operators
// ─────────────────────────────────────────────────────────────────────────────

// GroupBy consumes s and groups its items by the key fn extracts.
//
// Groups come out in the order their key was first seen; inside a group
// items keep their original order. Every group is materialized and can be
// traversed any number of times. A key that never equals itself, such as
// a float NaN, opens a new group for each item.
//
//	byDept := seq.GroupBy(employees, func(e Employee) string { return e.Department })
func GroupBy[T any, K comparable](s *Sequence[T], fn func(T) K) *Sequence[Pair[K, *Sequence[T]]] {
	var g groups[K, T]
	for v := range s.All() {
		g.add(fn(v), v)
	}
	return fromOwned(g.sequences())
}

// GroupByAny is [GroupBy] for keys only known to be comparable at run time.
// Returns [ErrUnhashableKey] at the first key that cannot be used as a map
// key.
func GroupByAny[T any](s *Sequence[T], fn func(T) any) (*Sequence[Pair[any, *Sequence[T]]], error) {
	var g groups[any, T]
	for v := range s.All() {
		k := fn(v)
		if err := checkHashable(k); err != nil {
			return nil, err
		}
		g.add(k, v)
	}
	return fromOwned(g.sequences()), nil
}

// groups accumulates items per key in first-seen key order.
type groups[K comparable, T any] struct {
	index map[K]int
	list  []Pair[K, []T]
}

func (g *groups[K, T]) add(k K, v T) {
	if g.index == nil {
		g.index = make(map[K]int)
	}
	i, ok := g.index[k]
	if !ok {
		i = len(g.list)
		g.list = append(g.list, Pair[K, []T]{First: k})
		g.index[k] = i
	}
	g.list[i].Second = append(g.list[i].Second, v)
}

func (g *groups[K, T]) sequences() []Pair[K, *Sequence[T]] {
	out := make([]Pair[K, *Sequence[T]], len(g.list))
	for i, p := range g.list {
		out[i] = Pair[K, *Sequence[T]]{First: p.First, Second: fromOwned(p.Second)}
	}
	return out
}

// Distinct consumes s and returns its items without duplicates, keeping the
// first occurrence of each in its original position.
//
//	seq.Distinct(seq.Of(1, 2, 2, 3, 1)) // → [1 2 3]
func Distinct[T comparable](s *Sequence[T]) *Sequence[T] {
	return DistinctBy(s, func(item T) T { return item })
}

// DistinctBy is [Distinct] comparing the keys fn extracts.
func DistinctBy[T any, K comparable](s *Sequence[T], fn func(T) K) *Sequence[T] {
	seen := make(map[K]struct{})
	out := make([]T, 0)
	for v := range s.All() {
		k := fn(v)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, v)
	}
	return fromOwned(out)
}

// IsDistinct reports whether no item occurs twice, stopping at the first
// duplicate.
func IsDistinct[T comparable](s *Sequence[T]) bool {
	return IsDistinctBy(s, func(item T) T { return item })
}

// IsDistinctBy is [IsDistinct] comparing the keys fn extracts.
func IsDistinctBy[T any, K comparable](s *Sequence[T], fn func(T) K) bool {
	seen := make(map[K]struct{})
	for v := range s.All() {
		k := fn(v)
		if _, ok := seen[k]; ok {
			return false
		}
		seen[k] = struct{}{}
	}
	return true
}

// Same reports whether s holds exactly one distinct value. An empty
// sequence has no shared value and returns false.
func Same[T comparable](s *Sequence[T]) bool {
	var first T
	seen := false
	for v := range s.All() {
		if !seen {
			first, seen = v, true
			continue
		}
		if v != first {
			return false
		}
	}
	return seen
}

// ─────────────────────────────────────────────────────────────────────────────
// Terminal operators
// ─────────────────────────────────────────────────────────────────────────────

// Reduce folds s left to right into a value of another type.
//
//	csv := seq.Reduce(seq.Of(1, 2, 3), func(acc string, n int) string {
//	    return acc + strconv.Itoa(n)
//	}, "")
func Reduce[T, U any](s *Sequence[T], fn func(U, T) U, initial U) U {
	result := initial
	for v := range s.All() {
		result = fn(result, v)
	}
	return result
}

// ToSet consumes s into a set.
func ToSet[T comparable](s *Sequence[T]) map[T]struct{} {
	out := make(map[T]struct{})
	for v := range s.All() {
		out[v] = struct{}{}
	}
	return out
}

// ToMap consumes s into a map built from the key/value pairs fn returns.
// When several items share a key, the last one wins.
//
//	byID := seq.ToMap(users, func(u User) (int, User) { return u.ID, u })
func ToMap[T any, K comparable, V any](s *Sequence[T], fn func(T) (K, V)) map[K]V {
	out := make(map[K]V)
	for v := range s.All() {
		k, val := fn(v)
		out[k] = val
	}
	return out
}

// PairsToMap consumes a sequence of pairs into a map. Later pairs overwrite
// earlier ones with the same key.
func PairsToMap[K comparable, V any](s *Sequence[Pair[K, V]]) map[K]V {
	return ToMap(s, func(p Pair[K, V]) (K, V) { return p.First, p.Second })
}

// unpacker is implemented by every Pair instantiation.
type unpacker interface {
	Unpack() (any, any)
}

// ToMapAny consumes s into a map from loosely typed pairs. fn must return a
// Pair, or a slice or array of exactly two elements; a nil fn uses the
// item itself. Later pairs overwrite earlier ones with the same key.
//
// Returns [ErrInvalidPairShape] for any other value and [ErrUnhashableKey]
// for a key that cannot be used as a map key.
func ToMapAny[T any](s *Sequence[T], fn func(T) any) (map[any]any, error) {
	if fn == nil {
		fn = func(item T) any { return item }
	}
	out := make(map[any]any)
	for v := range s.All() {
		k, val, err := unpackPair(fn(v))
		if err != nil {
			return nil, err
		}
		if err := checkHashable(k); err != nil {
			return nil, err
		}
		out[k] = val
	}
	return out, nil
}

func unpackPair(v any) (any, any, error) {
	if p, ok := v.(unpacker); ok {
		k, val := p.Unpack()
		return k, val, nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Len() == 2 {
			return rv.Index(0).Interface(), rv.Index(1).Interface(), nil
		}
	}
	return nil, nil, fmt.Errorf("%w: %T", ErrInvalidPairShape, v)
}

// Sum adds up the items. An empty sequence sums to 0.
func Sum[N Number](s *Sequence[N]) N {
	return SumBy(s, func(n N) N { return n })
}

// SumBy adds up the values fn extracts, left to right. An empty sequence
// sums to 0.
func SumBy[T any, N Number](s *Sequence[T], fn func(T) N) N {
	var total N
	for v := range s.All() {
		total += fn(v)
	}
	return total
}

// Max returns the largest item; ties go to the first occurrence.
// Returns the zero value and false if the sequence is empty.
func Max[T cmp.Ordered](s *Sequence[T]) (T, bool) {
	return MaxBy(s, func(item T) T { return item })
}

// Min returns the smallest item; ties go to the first occurrence.
// Returns the zero value and false if the sequence is empty.
func Min[T cmp.Ordered](s *Sequence[T]) (T, bool) {
	return MinBy(s, func(item T) T { return item })
}

// MaxBy returns the item with the largest key; ties go to the first
// occurrence. Returns the zero value and false if the sequence is empty.
func MaxBy[T any, K cmp.Ordered](s *Sequence[T], fn func(T) K) (T, bool) {
	return extreme(s, fn, func(candidate, best K) bool { return candidate > best })
}

// MinBy returns the item with the smallest key; ties go to the first
// occurrence. Returns the zero value and false if the sequence is empty.
func MinBy[T any, K cmp.Ordered](s *Sequence[T], fn func(T) K) (T, bool) {
	return extreme(s, fn, func(candidate, best K) bool { return candidate < best })
}

func extreme[T any, K cmp.Ordered](s *Sequence[T], fn func(T) K, better func(candidate, best K) bool) (T, bool) {
	var (
		best    T
		bestKey K
		found   bool
	)
	for v := range s.All() {
		k := fn(v)
		if !found || better(k, bestKey) {
			best, bestKey, found = v, k, true
		}
	}
	return best, found
}
