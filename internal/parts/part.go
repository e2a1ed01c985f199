// Package parts keeps numbered sub-folders ("01", "02.intro", ...) in
// order: it creates missing ones, renumbers them densely and shifts them.
package parts

import (
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/djachenko/justin-utils/seq"
)

const (
	separator  = "."
	indexStart = 1
)

var (
	ErrNegativeIndex = errors.New("parts: index would become negative")
	ErrPartExists    = errors.New("parts: part already exists")
	ErrInvalidCount  = errors.New("parts: count must not be negative")
)

// Part is a sub-folder named "<index>" or "<index>.<name>".
type Part struct {
	Index int
	Name  string
	Path  string
}

// ParsePart reads a part from the base name of path.
func ParsePart(path string) (Part, bool) {
	head, name, _ := strings.Cut(filepath.Base(path), separator)
	if head == "" || strings.Trim(head, "0123456789") != "" {
		return Part{}, false
	}
	index, err := strconv.Atoi(head)
	if err != nil {
		return Part{}, false
	}
	return Part{Index: index, Name: name, Path: path}, true
}

// FileName is the base name of p renumbered to index with width digits.
func (p Part) FileName(index, width int) string {
	name := Pad(index, width)
	if p.Name != "" {
		name += separator + p.Name
	}
	return name
}

func byIndex(a, b Part) int { return cmp.Compare(a.Index, b.Index) }

// Scan returns the parts directly under root in name order.
func Scan(root string) ([]Part, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	dirs := seq.FromSlice(entries).Filter(fs.DirEntry.IsDir)
	return seq.FlatMap(dirs, func(e fs.DirEntry) *seq.Sequence[Part] {
		if p, ok := ParsePart(filepath.Join(root, e.Name())); ok {
			return seq.Single(p)
		}
		return seq.Empty[Part]()
	}).ToSlice(), nil
}

// IndexWidth is the number of decimal digits in index.
func IndexWidth(index int) int {
	if index < 0 {
		index = -index
	}
	return len(strconv.Itoa(index))
}

// Pad formats index zero-padded to width digits.
func Pad(index, width int) string {
	return fmt.Sprintf("%0*d", width, index)
}
