package arr_test

import (
	"fmt"

	"github.com/djachenko/justin-utils/arr"
)

func ExampleStride() {
	for _, row := range arr.Stride([]int{1, 2, 3, 4, 5}, 2) {
		fmt.Println(row)
	}
	// Output:
	// [1 2]
	// [3 4]
	// [5]
}

func ExamplePrefixes() {
	fmt.Println(arr.Prefixes("a/b/c", "/"))
	// Output: [a a/b a/b/c]
}

func ExampleSplitByPredicates() {
	isEven := func(n int) bool { return n%2 == 0 }
	isOdd := func(n int) bool { return n%2 != 0 }
	fmt.Println(arr.SplitByPredicates([]int{1, 2, 3, 4}, isEven, isOdd))
	// Output: [[2 4] [1 3]]
}
