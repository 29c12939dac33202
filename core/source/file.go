package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// FileSource reads a section from a TOML or YAML file on disk.
type FileSource struct {
	Path    string
	Section string
	// Optional makes a missing file load as an empty section.
	Optional bool
}

// NewFileSource creates a file source for section of path.
func NewFileSource(path, section string) *FileSource {
	return &FileSource{Path: path, Section: section}
}

// Name implements Source.
func (s *FileSource) Name() string {
	return "file:" + s.Path
}

// Load implements Source.
func (s *FileSource) Load(ctx context.Context) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		if s.Optional && errors.Is(err, fs.ErrNotExist) {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", s.Path, err)
	}

	entries, err := ParseSection(data, FormatFromPath(s.Path), s.Section)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}
	return entries, nil
}
