package arr_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/djachenko/justin-utils/arr"
)

func assertSlice[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("slice length: got %d want %d  (got=%v want=%v)", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func isEven(n int) bool { return n%2 == 0 }

// ─── Searching & testing ──────────────────────────────────────────────────────

func TestFirst(t *testing.T) {
	v, ok := arr.First([]int{10, 20, 30})
	if !ok || v != 10 {
		t.Fatalf("First = %v, %v; want 10, true", v, ok)
	}
	v, ok = arr.First([]int{1, 2, 3, 4}, func(n int) bool { return n > 2 })
	if !ok || v != 3 {
		t.Fatalf("First predicate = %v, %v; want 3, true", v, ok)
	}
	if _, ok = arr.First([]int{}); ok {
		t.Fatal("First on empty should return false")
	}
}

func TestSame(t *testing.T) {
	if arr.Same([]int{}) {
		t.Fatal("Same(empty) = true")
	}
	if !arr.Same([]string{"x", "x"}) {
		t.Fatal("Same([x x]) = false")
	}
	if arr.Same([]int{1, 2}) {
		t.Fatal("Same([1 2]) = true")
	}
}

func TestAllSameType(t *testing.T) {
	if !arr.AllSameType([]any{1, 2, 3}) {
		t.Fatal("AllSameType(ints) = false")
	}
	if arr.AllSameType([]any{1, "2"}) {
		t.Fatal("AllSameType(int, string) = true")
	}
}

func TestIsDistinct(t *testing.T) {
	id := func(n int) int { return n }
	if !arr.IsDistinct([]int{1, 2, 3}, id) {
		t.Fatal("IsDistinct([1 2 3]) = false")
	}
	if arr.IsDistinct([]int{1, 2, 11}, func(n int) int { return n % 10 }) {
		t.Fatal("IsDistinct by last digit of [1 2 11] = true")
	}
}

func TestDistinct(t *testing.T) {
	assertSlice(t, arr.Distinct([]int{3, 1, 3, 2, 1}), []int{3, 1, 2})
}

// ─── Slicing & restructuring ──────────────────────────────────────────────────

func TestSplitByPredicates(t *testing.T) {
	got := arr.SplitByPredicates([]int{1, 2, 3, 4, 5, 6},
		isEven,
		func(n int) bool { return n > 3 },
	)
	want := [][]int{{2, 4, 6}, {4, 5, 6}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("SplitByPredicates mismatch (-want +got):\n%s", diff)
	}
}

func TestStride(t *testing.T) {
	got := arr.Stride([]int{1, 2, 3, 4, 5}, 2)
	if diff := cmp.Diff([][]int{{1, 2}, {3, 4}, {5}}, got); diff != "" {
		t.Fatalf("Stride mismatch (-want +got):\n%s", diff)
	}
	if got := arr.Stride([]int{1, 2}, 0); len(got) != 0 {
		t.Fatalf("Stride(0) = %v; want []", got)
	}
}

func TestFlatten(t *testing.T) {
	assertSlice(t, arr.Flatten([][]int{{1, 2}, {}, {3}}), []int{1, 2, 3})
}

func TestGroupBy(t *testing.T) {
	got := arr.GroupBy([]int{1, 2, 3, 4, 5}, isEven)
	if diff := cmp.Diff(map[bool][]int{true: {2, 4}, false: {1, 3, 5}}, got); diff != "" {
		t.Fatalf("GroupBy mismatch (-want +got):\n%s", diff)
	}
}

func TestPrefixes(t *testing.T) {
	assertSlice(t, arr.Prefixes("a.b.c", "."), []string{"a", "a.b", "a.b.c"})
	assertSlice(t, arr.Prefixes("solo", "."), []string{"solo"})
}

// ─── Maps ─────────────────────────────────────────────────────────────────────

func TestConcatMaps(t *testing.T) {
	got, err := arr.ConcatMaps(map[string]int{"a": 1}, map[string]int{"b": 2})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]int{"a": 1, "b": 2}, got); diff != "" {
		t.Fatalf("ConcatMaps mismatch (-want +got):\n%s", diff)
	}
}

func TestConcatMapsDuplicateKey(t *testing.T) {
	_, err := arr.ConcatMaps(map[string]int{"a": 1}, map[string]int{"a": 2})
	if !errors.Is(err, arr.ErrDuplicateKey) {
		t.Fatalf("ConcatMaps error = %v; want ErrDuplicateKey", err)
	}
}

func TestMergeMaps(t *testing.T) {
	sum := func(a, b int) int { return a + b }
	got := arr.MergeMaps(sum, map[string]int{"a": 1, "b": 2}, map[string]int{"a": 10}, map[string]int{"a": 100})
	if diff := cmp.Diff(map[string]int{"a": 111, "b": 2}, got); diff != "" {
		t.Fatalf("MergeMaps mismatch (-want +got):\n%s", diff)
	}
}

// ─── Traversal ────────────────────────────────────────────────────────────────

func TestBFS(t *testing.T) {
	tree := map[string][]string{
		"root": {"a", "b"},
		"a":    {"a1", "a2"},
		"b":    {"b1"},
	}
	got := arr.BFS("root", func(n string) []string { return tree[n] }).ToSlice()
	assertSlice(t, got, []string{"root", "a", "b", "a1", "a2", "b1"})
}

func TestBFSUnboundedIsLazy(t *testing.T) {
	calls := 0
	children := func(n int) []int {
		calls++
		return []int{2 * n, 2*n + 1}
	}
	got := arr.BFS(1, children).Take(5).ToSlice()
	assertSlice(t, got, []int{1, 2, 3, 4, 5})
	if calls != 4 {
		t.Fatalf("provider called %d times; want 4", calls)
	}
}
