// Package seq provides a generic, lazily evaluated Sequence type: a fluent
// query layer over any source of elements, in the spirit of LINQ or Java
// streams.
//
// # Overview
//
// The central type is [Sequence][T]. A Sequence does not hold elements; it
// holds a recipe for producing them. Chaining operators builds a new recipe
// on top of the previous one and nothing is read from the source until the
// sequence is consumed:
//
//	firstSquares := seq.Of(1, 2, 3, 4, 5, 6, 7, 8, 9, 10).
//	    Filter(func(n int) bool { return n%2 == 0 }).
//	    Map(func(n int) int { return n * n }).
//	    Take(3).
//	    ToSlice() // → [4 16 36]
//
// # Lazy, eager and terminal operators
//
// Lazy operators ([Sequence.Filter], [Sequence.Map], [Sequence.Take],
// [Sequence.Skip], [FlatMap], [Chunk], ...) return a new Sequence and read
// nothing. They pull from their parent one element at a time and never read
// further than the consumer asks for, so they work on unbounded sources.
//
// Eager operators ([Sequence.Cache], [Distinct], [GroupBy], [Sequence.Unique],
// [Sequence.SortFunc], ...) consume their parent when called and return a
// Sequence backed by the materialized result.
//
// Terminal operators ([Sequence.ToSlice], [ToMap], [Sequence.Each],
// [Sequence.Reduce], [Sum], [MaxBy], [Sequence.Any], ...) end the chain.
//
// # Re-entrancy
//
// Every traversal of a Sequence re-runs the whole chain against its source.
// Whether that is safe depends on how the Sequence was constructed:
//
//   - [Of], [FromSlice], [Single], [FromMap] and [Empty] are multi-pass; every
//     traversal starts from the beginning.
//   - [FromSeq] is multi-pass exactly when the wrapped iter.Seq is.
//   - [FromFunc] wraps a single-use generator. The first traversal drains
//     it; later traversals (of it or of anything derived from it) yield
//     nothing.
//
// [Sequence.Cache] turns any Sequence into a slice-backed, multi-pass one.
//
// A Sequence is immutable, but traversing the same single-pass Sequence from
// several goroutines at once is undefined. Cache it first.
//
// # Type-transforming operations
//
// Go methods cannot introduce type parameters, so operations that change the
// element type are package-level functions:
//
//	names := seq.Map(users, func(u User) string { return u.Name })
//	byDept := seq.GroupBy(users, func(u User) string { return u.Dept })
//
// Package-level functions: [Map], [FlatMap], [Flatten], [Collapse],
// [Enumerate], [Chunk], [Zip], [Keys], [Values], [Reduce], [GroupBy],
// [GroupByAny], [Distinct], [DistinctBy], [IsDistinct], [IsDistinctBy],
// [Same], [ToSet], [ToMap], [PairsToMap], [ToMapAny], [Sum], [SumBy],
// [Max], [Min], [MaxBy], [MinBy].
//
// # Macros (runtime extension)
//
// Register named sequence transformations at runtime via [RegisterMacro] and
// call them through [Sequence.Macro]:
//
//	seq.RegisterMacro("evens", func(s *seq.Sequence[int], _ ...any) *seq.Sequence[int] {
//	    return s.Filter(func(n int) bool { return n%2 == 0 })
//	})
//
//	evens, _ := seq.Of(1, 2, 3, 4).Macro("evens")
package seq
