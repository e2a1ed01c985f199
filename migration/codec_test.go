package migration_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/djachenko/justin-utils/migration"
)

func renameLogin() migration.Migration {
	return migration.Func(1, func(doc migration.Document) error {
		return migration.Rename(doc, "user.login", "user.name")
	})
}

func TestFormatOf(t *testing.T) {
	for path, want := range map[string]migration.Format{
		"a.json": migration.JSON,
		"b.YAML": migration.YAML,
		"c.yml":  migration.YAML,
	} {
		got, err := migration.FormatOf(path)
		require.NoError(t, err)
		assert.Equal(t, want, got, path)
	}
	_, err := migration.FormatOf("d.toml")
	require.ErrorIs(t, err, migration.ErrUnknownFormat)
}

func TestDecodeEncodeYAML(t *testing.T) {
	doc, err := migration.Decode(strings.NewReader("version: 2\nuser:\n  name: bob\n"), migration.YAML)
	require.NoError(t, err)

	v, err := migration.DocumentVersion(doc)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	name, _ := migration.Get(doc, "user.name")
	assert.Equal(t, "bob", name)

	var buf bytes.Buffer
	require.NoError(t, migration.Encode(&buf, doc, migration.YAML))
	assert.Contains(t, buf.String(), "name: bob")
}

func TestDecodeEmpty(t *testing.T) {
	for _, format := range []migration.Format{migration.JSON, migration.YAML} {
		doc, err := migration.Decode(strings.NewReader(""), format)
		require.NoError(t, err, format)
		assert.Empty(t, doc)
	}
}

func TestMigrateFileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"user": {"login": "bob"}}`), 0o600))

	m := migration.NewMigrator()
	m.MustRegister(renameLogin())

	changed, err := m.MigrateFile(path)
	require.NoError(t, err)
	assert.True(t, changed)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	doc, err := migration.Decode(f, migration.JSON)
	require.NoError(t, err)

	name, _ := migration.Get(doc, "user.name")
	assert.Equal(t, "bob", name)
	assert.Equal(t, float64(1), doc["version"])

	changed, err = m.MigrateFile(path)
	require.NoError(t, err)
	assert.False(t, changed)
}
