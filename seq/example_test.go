package seq_test

import (
	"cmp"
	"fmt"
	"strconv"

	"github.com/djachenko/justin-utils/seq"
)

func ExampleOf() {
	s := seq.Of(1, 2, 3, 4, 5)
	fmt.Println(s.Count(), seq.Sum(s))
	// Output: 5 15
}

func ExampleSequence_Filter() {
	result := seq.Of(1, 2, 3, 4, 5, 6).
		Filter(func(n int) bool { return n%2 == 0 }).
		ToSlice()
	fmt.Println(result)
	// Output: [2 4 6]
}

func ExampleSequence_Take() {
	naturals := seq.FromSeq(func(yield func(int) bool) {
		for i := 1; yield(i); i++ {
		}
	})
	fmt.Println(naturals.Map(func(n int) int { return n * n }).Take(4).ToSlice())
	// Output: [1 4 9 16]
}

func ExampleSequence_SortFunc() {
	result := seq.Of(5, 3, 1, 4, 2).SortFunc(cmp.Compare[int]).ToSlice()
	fmt.Println(result)
	// Output: [1 2 3 4 5]
}

func ExampleSequence_Cache() {
	n := 0
	gen := seq.FromFunc(func() (int, bool) {
		n++
		return n, n <= 3
	})
	cached := gen.Cache()
	fmt.Println(cached.ToSlice(), cached.ToSlice(), gen.ToSlice())
	// Output: [1 2 3] [1 2 3] []
}

func ExampleMap() {
	result := seq.Map(seq.Of(1, 2, 3), func(n int) string { return strconv.Itoa(n * n) })
	fmt.Println(result.ToSlice())
	// Output: [1 4 9]
}

func ExampleFlatten() {
	fmt.Println(seq.Flatten(seq.Of(seq.Of(1, 2), seq.Of(3))).ToSlice())
	// Output: [1 2 3]
}

func ExampleChunk() {
	seq.Chunk(seq.Of(1, 2, 3, 4, 5), 2).Each(func(chunk []int) {
		fmt.Println(chunk)
	})
	// Output:
	// [1 2]
	// [3 4]
	// [5]
}

func ExampleGroupBy() {
	type entry struct {
		key   string
		value int
	}
	entries := seq.Of(entry{"a", 1}, entry{"b", 2}, entry{"a", 3})
	seq.GroupBy(entries, func(e entry) string { return e.key }).
		Each(func(g seq.Pair[string, *seq.Sequence[entry]]) {
			values := seq.Map(g.Second, func(e entry) int { return e.value })
			fmt.Println(g.First, values.ToSlice())
		})
	// Output:
	// a [1 3]
	// b [2]
}

func ExampleDistinct() {
	fmt.Println(seq.Distinct(seq.Of(1, 2, 2, 3, 1)).ToSlice())
	// Output: [1 2 3]
}

func ExampleMaxBy() {
	best, ok := seq.MaxBy(seq.Of("go", "rust", "zig"), func(s string) int { return len(s) })
	fmt.Println(best, ok)
	_, ok = seq.MaxBy(seq.Empty[string](), func(s string) int { return len(s) })
	fmt.Println(ok)
	// Output:
	// rust true
	// false
}

func ExampleReduce() {
	sum := seq.Reduce(seq.Of(1, 2, 3, 4, 5), func(acc, n int) int { return acc + n }, 0)
	fmt.Println(sum)
	// Output: 15
}
