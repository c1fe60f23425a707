package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// SQLiteRepository keeps snapshots as rows of a single table.
type SQLiteRepository struct {
	db   *sql.DB
	path string
}

func NewSQLiteRepository(ctx context.Context, path string) (*SQLiteRepository, error) {
	if path == "" {
		path = "catalyst.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS snapshots (
		key        TEXT PRIMARY KEY,
		payload    BLOB NOT NULL,
		updated_at DATETIME NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create snapshots table: %w", err)
	}
	return &SQLiteRepository{db: db, path: path}, nil
}

func (r *SQLiteRepository) Path() string { return r.path }

func (r *SQLiteRepository) Load(ctx context.Context, key string) ([]byte, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx, `SELECT payload FROM snapshots WHERE key = ?`, key).Scan(&payload)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return payload, nil
}

func (r *SQLiteRepository) Save(ctx context.Context, key string, payload []byte) (retErr error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO snapshots (key, payload, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		key, payload, time.Now().UTC(),
	); err != nil {
		return fmt.Errorf("upsert snapshot %s: %w", key, err)
	}
	return tx.Commit()
}

func (r *SQLiteRepository) Close() error { return r.db.Close() }
