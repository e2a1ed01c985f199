package arr

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/djachenko/justin-utils/seq"
)

// ─────────────────────────────────────────────────────────────────────────────
// Searching & testing
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element, optionally matching fns[0].
// Returns the zero value and false when items is empty or no element matches.
func First[T any](items []T, fns ...func(T) bool) (T, bool) {
	return seq.FromSlice(items).First(fns...)
}

// Same reports whether items holds exactly one distinct value. An empty
// slice returns false.
func Same[T comparable](items []T) bool {
	return seq.Same(seq.FromSlice(items))
}

// AllSameType reports whether every element has the same dynamic type. An
// empty slice returns false.
func AllSameType(items []any) bool {
	return seq.Same(seq.Map(seq.FromSlice(items), reflect.TypeOf))
}

// IsDistinct reports whether no two elements share the key fn extracts.
func IsDistinct[T any, K comparable](items []T, fn func(T) K) bool {
	return seq.IsDistinctBy(seq.FromSlice(items), fn)
}

// Distinct returns items without duplicates, keeping first occurrences in
// their original order.
func Distinct[T comparable](items []T) []T {
	return seq.Distinct(seq.FromSlice(items)).ToSlice()
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & restructuring
// ─────────────────────────────────────────────────────────────────────────────

// SplitByPredicates returns one slice per predicate, each holding the
// elements that satisfy it. An element may land in several slices or in
// none.
func SplitByPredicates[T any](items []T, preds ...func(T) bool) [][]T {
	src := seq.FromSlice(items)
	out := make([][]T, len(preds))
	for i, pred := range preds {
		out[i] = src.Filter(pred).ToSlice()
	}
	return out
}

// Stride splits items into consecutive groups of step elements. The last
// group may be shorter. Returns an empty [][]T if step <= 0.
func Stride[T any](items []T, step int) [][]T {
	return seq.Chunk(seq.FromSlice(items), step).ToSlice()
}

// Flatten concatenates a slice of slices into a single flat slice.
func Flatten[T any](lists [][]T) []T {
	return seq.Collapse(seq.FromSlice(lists)).ToSlice()
}

// GroupBy groups items by the key fn extracts. Use [seq.GroupBy] when the
// order of the groups matters.
func GroupBy[T any, K comparable](items []T, fn func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, item := range items {
		k := fn(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}

// Prefixes returns every leading run of sep-separated segments of s.
//
//	Prefixes("a.b.c", ".") // → ["a", "a.b", "a.b.c"]
func Prefixes(s, sep string) []string {
	segments := strings.Split(s, sep)
	out := make([]string, len(segments))
	for i := range segments {
		out[i] = strings.Join(segments[:i+1], sep)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Maps
// ─────────────────────────────────────────────────────────────────────────────

// ConcatMaps unions maps that must not overlap. Returns [ErrDuplicateKey]
// naming the first key found in more than one map.
func ConcatMaps[K comparable, V any](maps ...map[K]V) (map[K]V, error) {
	out := make(map[K]V)
	for _, m := range maps {
		for k, v := range m {
			if _, ok := out[k]; ok {
				return nil, fmt.Errorf("%w: %v", ErrDuplicateKey, k)
			}
			out[k] = v
		}
	}
	return out, nil
}

// MergeMaps unions maps, combining the values of a shared key with merger.
// merger receives the value accumulated so far and the value from the
// later map.
func MergeMaps[K comparable, V any](merger func(V, V) V, maps ...map[K]V) map[K]V {
	out := make(map[K]V)
	for _, m := range maps {
		for k, v := range m {
			if prev, ok := out[k]; ok {
				v = merger(prev, v)
			}
			out[k] = v
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Traversal
// ─────────────────────────────────────────────────────────────────────────────

// BFS lazily visits start and everything reachable through provider in
// breadth-first order. provider is called once per visited node, when the
// traversal reaches it. Nodes are not de-duplicated: on a graph with
// cycles the sequence is unbounded, so bound it with Take or TakeWhile.
func BFS[T any](start T, provider func(T) []T) *seq.Sequence[T] {
	return seq.FromSeq(func(yield func(T) bool) {
		queue := []T{start}
		for len(queue) > 0 {
			node := queue[0]
			queue = queue[1:]
			if !yield(node) {
				return
			}
			queue = append(queue, provider(node)...)
		}
	})
}
