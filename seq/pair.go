package seq

import "fmt"

// Pair holds two values of possibly different types.
// It is the element type produced by [FromMap], [Zip], [Enumerate] and
// [GroupBy].
type Pair[A, B any] struct {
	First  A
	Second B
}

// MakePair builds a Pair, letting the compiler infer both type arguments.
func MakePair[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Unpack returns both halves. It lets [ToMapAny] accept any Pair
// instantiation as a key/value pair.
func (p Pair[A, B]) Unpack() (any, any) {
	return p.First, p.Second
}

// String returns a human-readable representation: "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}
