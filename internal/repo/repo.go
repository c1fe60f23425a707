package repo

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Load when nothing has been saved under a key.
var ErrNotFound = errors.New("snapshot not found")

// Repository stores whole snapshots by key. Every Save replaces the previous
// snapshot in full; a failed Save leaves the previous one readable.
type Repository interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, payload []byte) error
	Close() error
}

const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

// Open selects a Repository implementation by driver name.
//
//	file:   path is the root directory, each key is a file in it
//	sqlite: path is the database file
func Open(ctx context.Context, driver, path string) (Repository, error) {
	switch driver {
	case "", DriverFile:
		return NewFileRepository(path)
	case DriverSQLite:
		return NewSQLiteRepository(ctx, path)
	default:
		return nil, fmt.Errorf("unknown storage driver %s", driver)
	}
}
