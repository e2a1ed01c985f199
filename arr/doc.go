// Package arr provides standalone helpers for plain Go slices and maps that
// sit next to the [seq] package: splitting, striding, distinctness checks,
// grouping, prefix expansion, map merging and breadth-first
// traversal.
//
// Every helper takes and returns ordinary slices and maps, so callers that
// do not need a lazy pipeline can skip building a Sequence:
//
//	arr.SplitByPredicates([]int{1, 2, 3, 4}, isEven, isOdd) // → [[2 4] [1 3]]
//	arr.Stride([]int{1, 2, 3, 4, 5}, 2)                     // → [[1 2] [3 4] [5]]
//	arr.Prefixes("a/b/c", "/")                              // → [a a/b a/b/c]
//
// [BFS] is the one lazy helper: it returns a *seq.Sequence so an unbounded
// graph can be explored step by step.
package arr
