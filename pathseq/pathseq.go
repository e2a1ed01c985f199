// Package pathseq expands glob patterns into lazy sequences of absolute
// paths.
//
// Patterns use gobwas/glob syntax with '/' as the separator: '*' and '?'
// stay inside one path segment, '**' crosses directories, and '[...]' and
// '{a,b}' work as usual. Names starting with a dot are only matched when
// the pattern spells the dot out. A pattern without metacharacters is a
// literal path and yields itself if it exists.
//
//	for path := range pathseq.Resolve("photos/*/*.jpg").All() {
//	    ...
//	}
//
// Directories are walked while the sequence is pulled, so stopping early
// stops the walk.
package pathseq

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gobwas/glob"

	"github.com/djachenko/justin-utils/seq"
)

// ErrBadPattern is returned for a pattern that does not compile.
var ErrBadPattern = errors.New("pathseq: bad pattern")

// Macros registered on Sequence[string] for filtering resolved paths.
const (
	DirsMacro  = "pathseq.dirs"
	FilesMacro = "pathseq.files"
)

func init() {
	seq.RegisterMacro(DirsMacro, func(s *seq.Sequence[string], _ ...any) *seq.Sequence[string] {
		return s.Filter(isDir)
	})
	seq.RegisterMacro(FilesMacro, func(s *seq.Sequence[string], _ ...any) *seq.Sequence[string] {
		return s.Filter(func(path string) bool {
			info, err := os.Stat(path)
			return err == nil && info.Mode().IsRegular()
		})
	})
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

const separator = '/'

// Pattern is a compiled path pattern.
type Pattern struct {
	raw  string
	base string

	matcher glob.Glob // nil for a literal path
	depth   int       // segments below base a match can sit at; -1 when unbounded
	hidden  bool      // pattern spells out a leading dot
}

func hasMeta(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}

// Compile makes pattern absolute against the working directory and
// compiles it.
func Compile(pattern string) (*Pattern, error) {
	if strings.TrimSpace(pattern) == "" {
		return nil, fmt.Errorf("%w: empty pattern", ErrBadPattern)
	}
	abs, err := filepath.Abs(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrBadPattern, pattern, err)
	}

	slashed := filepath.ToSlash(abs)
	if !hasMeta(slashed) {
		return &Pattern{raw: pattern, base: abs}, nil
	}

	segments := strings.Split(slashed, "/")
	first := slices.IndexFunc(segments, hasMeta)
	base := strings.Join(segments[:first], "/")
	if base == "" || strings.HasSuffix(base, ":") {
		base += "/"
	}

	g, err := glob.Compile(slashed, separator)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrBadPattern, pattern, err)
	}

	rest := segments[first:]
	depth := len(rest)
	if slices.ContainsFunc(rest, func(s string) bool { return strings.Contains(s, "**") }) {
		depth = -1
	}

	return &Pattern{
		raw:     pattern,
		base:    filepath.FromSlash(base),
		matcher: g,
		depth:   depth,
		hidden:  slices.ContainsFunc(rest, func(s string) bool { return strings.HasPrefix(s, ".") }),
	}, nil
}

// MustCompile is [Compile] that panics on a bad pattern.
func MustCompile(pattern string) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Pattern) String() string { return p.raw }

// Match reports whether the absolute path matches the pattern.
func (p *Pattern) Match(path string) bool {
	if p.matcher == nil {
		return filepath.Clean(path) == p.base
	}
	return p.matcher.Match(filepath.ToSlash(path))
}

// Paths lazily yields every existing path matching p in lexical walk
// order. Unreadable directories are skipped.
func (p *Pattern) Paths() *seq.Sequence[string] {
	return seq.FromSeq(func(yield func(string) bool) {
		if p.matcher == nil {
			if _, err := os.Lstat(p.base); err == nil {
				yield(p.base)
			}
			return
		}

		_ = filepath.WalkDir(p.base, func(path string, d fs.DirEntry, err error) error {
			if err != nil || path == p.base {
				return nil
			}
			if !p.hidden && strings.HasPrefix(d.Name(), ".") {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if p.Match(path) && !yield(path) {
				return filepath.SkipAll
			}
			if d.IsDir() && p.depth >= 0 && p.depthOf(path) >= p.depth {
				return filepath.SkipDir
			}
			return nil
		})
	})
}

func (p *Pattern) depthOf(path string) int {
	rel, err := filepath.Rel(p.base, path)
	if err != nil {
		return 0
	}
	return strings.Count(filepath.ToSlash(rel), "/") + 1
}

// Resolve lazily expands patterns, one after another, into absolute
// paths. Patterns that do not compile yield nothing; use [ResolveErr] to
// see why.
func Resolve(patterns ...string) *seq.Sequence[string] {
	return seq.FlatMap(seq.FromSlice(patterns), func(raw string) *seq.Sequence[string] {
		p, err := Compile(raw)
		if err != nil {
			return seq.Empty[string]()
		}
		return p.Paths()
	})
}

// ResolveErr compiles every pattern up front and returns the first
// compile error, or a lazy sequence like [Resolve].
func ResolveErr(patterns ...string) (*seq.Sequence[string], error) {
	compiled := make([]*Pattern, 0, len(patterns))
	for _, raw := range patterns {
		p, err := Compile(raw)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, p)
	}
	return seq.FlatMap(seq.FromSlice(compiled), (*Pattern).Paths), nil
}
