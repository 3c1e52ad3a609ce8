package file

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/aretw0/akinator/pkg/codec"
	"github.com/aretw0/akinator/pkg/domain"
)

// DefaultPath is the tree file used when no path is configured, relative to the working directory.
const DefaultPath = "akinator.tree"

// Store implements ports.TreeStore using a single file on the local filesystem.
type Store struct {
	Path string
}

// New creates a new Store for the given path.
// If path is empty, it defaults to DefaultPath.
func New(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{Path: path}
}

// Save persists the tree atomically.
// It writes to a temporary file first, syncs via fsync, and then renames it to the destination.
func (s *Store) Save(ctx context.Context, root *domain.Node) error {
	data, err := codec.Marshal(root)
	if err != nil {
		return fmt.Errorf("failed to encode tree: %w", err)
	}

	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to ensure tree directory: %w", err)
	}

	// Same directory as the destination so the rename stays on one filesystem.
	tmpFile, err := os.CreateTemp(dir, "tmp-"+filepath.Base(s.Path)+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath) // no-op once renamed
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	// Windows cannot rename an open file.
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// On Windows, os.Rename fails if dest exists. Elsewhere the rename replaces
	// it atomically and the old tree survives a failed rename.
	if runtime.GOOS == "windows" {
		if _, err := os.Stat(s.Path); err == nil {
			if err := os.Remove(s.Path); err != nil {
				return fmt.Errorf("failed to remove existing tree file for overwrite: %w", err)
			}
		}
	}

	if err := os.Rename(tmpPath, s.Path); err != nil {
		return fmt.Errorf("failed to rename temp file to tree file: %w", err)
	}
	return nil
}

// Load reads and decodes the tree file.
func (s *Store) Load(ctx context.Context) (*domain.Node, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrTreeNotFound
		}
		return nil, fmt.Errorf("failed to read tree file: %w", err)
	}

	root, err := codec.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", s.Path, err)
	}
	return root, nil
}

// Delete removes the tree file.
func (s *Store) Delete(ctx context.Context) error {
	err := os.Remove(s.Path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete tree file: %w", err)
	}
	return nil
}
