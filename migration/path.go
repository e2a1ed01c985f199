package migration

import (
	"fmt"
	"strings"
)

// Paths are dot-separated keys into nested Documents:
//
//	doc := Document{"user": Document{"address": Document{"city": "London"}}}
//
//	Get(doc, "user.address.city")  // "London", true
//	Set(doc, "user.age", 30)
//	Rename(doc, "user.address", "user.home")

// walk follows every segment of path except the last and returns the map
// holding it. With create, missing or non-map intermediates are replaced by
// empty maps.
func walk(doc Document, path string, create bool) (Document, string, bool) {
	segments := strings.Split(path, ".")
	current := doc
	for _, seg := range segments[:len(segments)-1] {
		nested, ok := current[seg].(map[string]any)
		if !ok {
			if !create {
				return nil, "", false
			}
			nested = make(map[string]any)
			current[seg] = nested
		}
		current = nested
	}
	return current, segments[len(segments)-1], true
}

// Get returns the value at path.
func Get(doc Document, path string) (any, bool) {
	parent, key, ok := walk(doc, path, false)
	if !ok {
		return nil, false
	}
	v, ok := parent[key]
	return v, ok
}

// Has reports whether path exists in doc.
func Has(doc Document, path string) bool {
	_, ok := Get(doc, path)
	return ok
}

// Set writes value at path, creating intermediate maps as needed.
func Set(doc Document, path string, value any) {
	parent, key, _ := walk(doc, path, true)
	parent[key] = value
}

// Delete removes path from doc and reports whether it was there.
// Emptied intermediate maps are left in place.
func Delete(doc Document, path string) bool {
	parent, key, ok := walk(doc, path, false)
	if !ok {
		return false
	}
	if _, ok := parent[key]; !ok {
		return false
	}
	delete(parent, key)
	return true
}

// Rename moves the value at from to to. Returns [ErrPathNotFound] when from
// does not exist.
func Rename(doc Document, from, to string) error {
	v, ok := Get(doc, from)
	if !ok {
		return fmt.Errorf("%w: %s", ErrPathNotFound, from)
	}
	Delete(doc, from)
	Set(doc, to, v)
	return nil
}
