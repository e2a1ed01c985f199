package migration_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/djachenko/justin-utils/migration"
)

func makeDocument() migration.Document {
	return migration.Document{
		"user": map[string]any{
			"name": "Alice",
			"address": map[string]any{
				"city":    "London",
				"country": "UK",
			},
		},
		"score": 42,
	}
}

func TestGet(t *testing.T) {
	doc := makeDocument()
	if v, ok := migration.Get(doc, "user.address.city"); !ok || v != "London" {
		t.Fatalf("Get city = %v, %v; want London, true", v, ok)
	}
	if v, ok := migration.Get(doc, "score"); !ok || v != 42 {
		t.Fatalf("Get score = %v, %v; want 42, true", v, ok)
	}
	if _, ok := migration.Get(doc, "user.missing"); ok {
		t.Fatal("Get user.missing should return false")
	}
	if _, ok := migration.Get(doc, "score.value"); ok {
		t.Fatal("Get through a scalar should return false")
	}
}

func TestHas(t *testing.T) {
	doc := makeDocument()
	if !migration.Has(doc, "user.name") {
		t.Fatal("Has user.name = false")
	}
	if migration.Has(doc, "user.age") {
		t.Fatal("Has user.age = true")
	}
}

func TestSetCreatesIntermediates(t *testing.T) {
	doc := migration.Document{"flag": true}
	migration.Set(doc, "a.b.c", 1)
	migration.Set(doc, "flag.on", "yes")

	want := migration.Document{
		"a":    map[string]any{"b": map[string]any{"c": 1}},
		"flag": map[string]any{"on": "yes"},
	}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Fatalf("Set mismatch (-want +got):\n%s", diff)
	}
}

func TestDelete(t *testing.T) {
	doc := makeDocument()
	if !migration.Delete(doc, "user.address.city") {
		t.Fatal("Delete city = false")
	}
	if migration.Has(doc, "user.address.city") {
		t.Fatal("city still present after Delete")
	}
	if !migration.Has(doc, "user.address.country") {
		t.Fatal("Delete removed a sibling")
	}
	if migration.Delete(doc, "nope.nothing") {
		t.Fatal("Delete of a missing path = true")
	}
}

func TestRename(t *testing.T) {
	doc := makeDocument()
	if err := migration.Rename(doc, "user.address", "user.home"); err != nil {
		t.Fatal(err)
	}
	if v, _ := migration.Get(doc, "user.home.city"); v != "London" {
		t.Fatalf("Get user.home.city = %v; want London", v)
	}
	if migration.Has(doc, "user.address") {
		t.Fatal("old path still present after Rename")
	}
}

func TestRenameMissing(t *testing.T) {
	err := migration.Rename(makeDocument(), "user.phone", "user.mobile")
	if err == nil {
		t.Fatal("Rename of a missing path returned nil")
	}
}
