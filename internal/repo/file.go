package repo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileRepository keeps each snapshot in its own file under root.
type FileRepository struct {
	root string
}

func NewFileRepository(root string) (*FileRepository, error) {
	if root == "" {
		root = "."
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &FileRepository{root: root}, nil
}

func (r *FileRepository) pathFor(key string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", fmt.Errorf("empty key")
	}
	if strings.Contains(key, "..") || filepath.IsAbs(key) {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(r.root, filepath.Clean(key)), nil
}

func (r *FileRepository) Load(_ context.Context, key string) ([]byte, error) {
	path, err := r.pathFor(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	return data, err
}

func (r *FileRepository) Save(_ context.Context, key string, payload []byte) error {
	path, err := r.pathFor(key)
	if err != nil {
		return err
	}
	return WriteFileAtomic(path, payload, 0o644)
}

func (r *FileRepository) Close() error { return nil }

// WriteFileAtomic writes data next to path and renames it into place, so a
// reader sees either the old content or the new one, never a partial file.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) (retErr error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dirs: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()
	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
