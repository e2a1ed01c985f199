package migration

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a document encoding.
type Format int

const (
	JSON Format = iota
	YAML
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Decode reads one document from r. An empty input is an empty document.
func Decode(r io.Reader, format Format) (Document, error) {
	doc := make(Document)
	var err error
	switch format {
	case JSON:
		err = json.NewDecoder(r).Decode(&doc)
	case YAML:
		err = yaml.NewDecoder(r).Decode(&doc)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode %v: %w", format, err)
	}
	return doc, nil
}

// Encode writes doc to w.
func Encode(w io.Writer, doc Document, format Format) error {
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
	return nil
}

// MigrateFile migrates the JSON or YAML document at path in place. The file
// is rewritten only when its version changed; the returned bool reports
// whether it was.
func (m *Migrator) MigrateFile(path string) (bool, error) {
	format, err := FormatOf(path)
	if err != nil {
		return false, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read document: %w", err)
	}
	doc, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return false, fmt.Errorf("%s: %w", path, err)
	}

	before, err := DocumentVersion(doc)
	if err != nil {
		return false, fmt.Errorf("%s: %w", path, err)
	}
	if err := m.Migrate(doc); err != nil {
		return false, fmt.Errorf("%s: %w", path, err)
	}
	if after, _ := DocumentVersion(doc); after == before {
		return false, nil
	}

	var buf bytes.Buffer
	if err := Encode(&buf, doc, format); err != nil {
		return false, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("stat document: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), info.Mode().Perm()); err != nil {
		return false, fmt.Errorf("write document: %w", err)
	}
	return true, nil
}
