package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/scaffoldctl/internal/scaffold"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnsupportedFormat = errors.New("manifest: unsupported format")
	ErrInvalidEntry      = errors.New("manifest: invalid files entry")
)

// Manifest declares the file list for one scaffolding run.
type Manifest struct {
	DefaultContent string
	Files          []Entry
}

// Entry is one canonical file declaration. On the wire it may be a bare
// path, a [path, content] pair, or a path/content record; all three
// normalize to this shape. A blank path is kept so the scaffolder can
// report it as a per-entry failure.
type Entry struct {
	Path    string
	Content *string
}

type wireManifest struct {
	DefaultContent string `toml:"default_content" yaml:"default_content"`
	Files          []any  `toml:"files" yaml:"files"`
}

func Load(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("manifest load failed (%s): %w", path, err)
	}

	var raw wireManifest
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return Manifest{}, fmt.Errorf("manifest parse failed (%s): %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Manifest{}, fmt.Errorf("manifest parse failed (%s): %w", path, err)
		}
	default:
		return Manifest{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	m := Manifest{DefaultContent: raw.DefaultContent}
	m.Files = make([]Entry, 0, len(raw.Files))
	for i, item := range raw.Files {
		entry, err := normalizeEntry(item)
		if err != nil {
			return Manifest{}, fmt.Errorf("files[%d] invalid: %w", i, err)
		}
		m.Files = append(m.Files, entry)
	}
	return m, nil
}

func (m Manifest) Descriptors() []scaffold.Descriptor {
	descriptors := make([]scaffold.Descriptor, 0, len(m.Files))
	for _, entry := range m.Files {
		descriptors = append(descriptors, scaffold.Descriptor{
			Path:    entry.Path,
			Content: entry.Content,
		})
	}
	return descriptors
}

// normalizeEntry folds the three wire forms into a canonical Entry.
// TOML and YAML both decode unknown shapes into strings, []any, and
// string-keyed maps, so one switch covers either format.
func normalizeEntry(item any) (Entry, error) {
	switch v := item.(type) {
	case string:
		return Entry{Path: v}, nil
	case []any:
		if len(v) != 2 {
			return Entry{}, fmt.Errorf("%w: pair form wants [path, content], got %d elements", ErrInvalidEntry, len(v))
		}
		path, ok := v[0].(string)
		if !ok {
			return Entry{}, fmt.Errorf("%w: pair path must be a string", ErrInvalidEntry)
		}
		content, ok := v[1].(string)
		if !ok {
			return Entry{}, fmt.Errorf("%w: pair content must be a string", ErrInvalidEntry)
		}
		return Entry{Path: path, Content: &content}, nil
	case map[string]any:
		entry := Entry{}
		if raw, ok := v["path"]; ok && raw != nil {
			path, ok := raw.(string)
			if !ok {
				return Entry{}, fmt.Errorf("%w: record path must be a string", ErrInvalidEntry)
			}
			entry.Path = path
		}
		if raw, ok := v["content"]; ok && raw != nil {
			content, ok := raw.(string)
			if !ok {
				return Entry{}, fmt.Errorf("%w: record content must be a string", ErrInvalidEntry)
			}
			entry.Content = &content
		}
		return entry, nil
	default:
		return Entry{}, fmt.Errorf("%w: unsupported entry shape %T", ErrInvalidEntry, item)
	}
}
