package profile

import (
	"context"
	"fmt"
	"os"
)

// Loader provides profile loading capabilities. It abstracts the source of a
// profile so it can come from files or be embedded by the application.
type Loader interface {
	// Load retrieves, parses, and validates the profile.
	Load(ctx context.Context) (*Profile, error)
}

// FileLoader loads a profile from a YAML file on disk.
type FileLoader struct {
	// path is the filesystem path to the profile.
	path string
}

// NewFileLoader creates a new FileLoader for the profile at path.
func NewFileLoader(path string) *FileLoader { return &FileLoader{path: path} }

// Load reads and parses the profile file specified in FileLoader.path.
func (l *FileLoader) Load(ctx context.Context) (*Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}

	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", l.path, err)
	}
	return p, nil
}
