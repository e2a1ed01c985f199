package migration

import (
	"fmt"
	"math"
	"sync"

	"github.com/djachenko/justin-utils/seq"
)

// VersionKey is the document field holding its version.
const VersionKey = "version"

// Document is a decoded JSON or YAML object.
type Document = map[string]any

// Migration upgrades a document to Version.
type Migration interface {
	Version() int
	Migrate(doc Document) error
}

type funcMigration struct {
	version int
	fn      func(Document) error
}

func (f funcMigration) Version() int                { return f.version }
func (f funcMigration) Migrate(doc Document) error { return f.fn(doc) }

// Func wraps fn as the migration to version.
func Func(version int, fn func(Document) error) Migration {
	return funcMigration{version: version, fn: fn}
}

// Migrator holds migrations keyed by version. It is safe for concurrent
// use.
type Migrator struct {
	mu         sync.RWMutex
	migrations map[int]Migration
}

// NewMigrator returns an empty migrator.
func NewMigrator() *Migrator {
	return &Migrator{migrations: make(map[int]Migration)}
}

// Default returns the process-wide migrator, creating it on first use.
var Default = sync.OnceValue(NewMigrator)

// Register adds mig. Returns [ErrDuplicateVersion] if its version is taken.
func (m *Migrator) Register(mig Migration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	v := mig.Version()
	if _, ok := m.migrations[v]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateVersion, v)
	}
	m.migrations[v] = mig
	return nil
}

// MustRegister is [Migrator.Register] that panics on a duplicate version.
// Intended for init functions.
func (m *Migrator) MustRegister(mig Migration) {
	if err := m.Register(mig); err != nil {
		panic(err)
	}
}

// Latest returns the highest registered version, or 0 when nothing is
// registered.
func (m *Migrator) Latest() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	latest, _ := seq.Max(seq.Keys(seq.FromMap(m.migrations)))
	return latest
}

// pending returns the migrations newer than version in ascending order.
func (m *Migrator) pending(version int) []Migration {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return seq.Values(
		seq.FromMapSorted(m.migrations).
			Filter(func(p seq.Pair[int, Migration]) bool { return p.First > version }),
	).ToSlice()
}

// Migrate applies every migration newer than doc's version, oldest first,
// and sets doc's version after each one. On error doc keeps the changes
// and the version of the migrations that succeeded.
func (m *Migrator) Migrate(doc Document) error {
	version, err := DocumentVersion(doc)
	if err != nil {
		return err
	}

	for _, mig := range m.pending(version) {
		if err := mig.Migrate(doc); err != nil {
			return fmt.Errorf("migrate to version %d: %w", mig.Version(), err)
		}
		doc[VersionKey] = mig.Version()
	}
	return nil
}

// DocumentVersion reads doc's version field. A missing field is version 0.
// Decoders produce the version as int, int64, uint64 or float64; all of
// them are accepted as long as they hold a whole number.
func DocumentVersion(doc Document) (int, error) {
	raw, ok := doc[VersionKey]
	if !ok || raw == nil {
		return 0, nil
	}

	switch v := raw.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case uint64:
		if v <= math.MaxInt {
			return int(v), nil
		}
	case float64:
		if v == math.Trunc(v) && math.Abs(v) <= math.MaxInt32 {
			return int(v), nil
		}
	}
	return 0, fmt.Errorf("%w: %v", ErrInvalidVersion, raw)
}
