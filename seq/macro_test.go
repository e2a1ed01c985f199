package seq_test

import (
	"errors"
	"testing"

	"github.com/djachenko/justin-utils/seq"
)

func TestMacro(t *testing.T) {
	seq.FlushMacros()
	t.Cleanup(seq.FlushMacros)

	seq.RegisterMacro("above", func(s *seq.Sequence[int], args ...any) *seq.Sequence[int] {
		limit := args[0].(int)
		return s.Filter(func(n int) bool { return n > limit })
	})
	if !seq.HasMacro("above") {
		t.Fatal("HasMacro(above) = false after RegisterMacro")
	}

	res, err := ints(1, 5, 10).Macro("above", 4)
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, res.ToSlice(), []int{5, 10})
}

func TestMacroNotFound(t *testing.T) {
	seq.FlushMacros()
	_, err := ints(1).Macro("missing")
	if !errors.Is(err, seq.ErrMacroNotFound) {
		t.Fatalf("Macro(missing) error = %v; want ErrMacroNotFound", err)
	}
}

func TestMacroWrongElementType(t *testing.T) {
	seq.FlushMacros()
	t.Cleanup(seq.FlushMacros)

	seq.RegisterMacro("upper", func(s *seq.Sequence[string], _ ...any) *seq.Sequence[string] { return s })
	_, err := ints(1).Macro("upper")
	if !errors.Is(err, seq.ErrMacroType) {
		t.Fatalf("Macro(upper) on ints error = %v; want ErrMacroType", err)
	}
}

func TestMacroReplace(t *testing.T) {
	seq.FlushMacros()
	t.Cleanup(seq.FlushMacros)

	seq.RegisterMacro("m", func(s *seq.Sequence[int], _ ...any) *seq.Sequence[int] { return s.Take(1) })
	seq.RegisterMacro("m", func(s *seq.Sequence[int], _ ...any) *seq.Sequence[int] { return s.Skip(1) })

	res, err := ints(1, 2, 3).Macro("m")
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, res.ToSlice(), []int{2, 3})
}
