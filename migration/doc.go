// Package migration upgrades versioned documents, such as JSON or YAML
// settings files, through a chain of registered migrations.
//
// A document is a map[string]any with an integer "version" field (a
// missing field means version 0). Each [Migration] declares the version it
// upgrades a document to. [Migrator.Migrate] runs, in ascending order,
// every registered migration newer than the document and stamps the
// document with each version as it goes.
//
//	m := migration.NewMigrator()
//	m.Register(migration.Func(1, func(doc migration.Document) error {
//	    return migration.Rename(doc, "user.login", "user.name")
//	}))
//	err := m.Migrate(doc) // doc["version"] == 1
//
// [Default] returns a process-wide migrator for programs that register
// their migrations from init functions.
//
// The path helpers ([Get], [Set], [Has], [Delete], [Rename]) address nested
// maps with dot-separated keys and are meant for writing migrations.
package migration
