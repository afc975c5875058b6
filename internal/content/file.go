package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/idilsaglam/faq/internal/model"
)

var ErrUnsupportedFormat = errors.New("unsupported content format")

// document is the on-disk shape. JSON and TOML share it.
type document struct {
	Entries []model.Entry `json:"entries" toml:"entries"`
}

// File reads entries from a .json or .toml file on every call.
type File struct {
	Path string
}

func (f File) Entries(ctx context.Context) ([]model.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	var doc document
	switch ext := strings.ToLower(filepath.Ext(f.Path)); ext {
	case ".json":
		if err := json.Unmarshal(b, &doc); err != nil {
			return nil, fmt.Errorf("json unmarshal: %w", err)
		}
	case ".toml":
		if _, err := toml.Decode(string(b), &doc); err != nil {
			return nil, fmt.Errorf("toml decode: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return doc.Entries, nil
}

// Save writes entries to path in the format its extension selects.
func Save(path string, entries []model.Entry) error {
	doc := document{Entries: entries}
	var (
		b   []byte
		err error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		b, err = json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("json marshal: %w", err)
		}
	case ".toml":
		var sb strings.Builder
		if err := toml.NewEncoder(&sb).Encode(doc); err != nil {
			return fmt.Errorf("toml encode: %w", err)
		}
		b = []byte(sb.String())
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// FromPath picks the provider for a configured path. An empty path means
// the builtin content.
func FromPath(path string) Provider {
	if path == "" {
		return Builtin
	}
	return File{Path: path}
}
