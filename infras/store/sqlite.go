package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hotel/shared/constant"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS collections (
	name TEXT PRIMARY KEY,
	payload BLOB NOT NULL,
	modified_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

type sqliteStore struct {
	db *sql.DB
}

// NewSQLite creates the collections table when missing.
func NewSQLite(ctx context.Context, db *sql.DB) (Store, error) {
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		return nil, fmt.Errorf("create sqlite schema: %w", err)
	}

	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Driver() string {
	return constant.StorageDriverSQLite
}

func (s *sqliteStore) Get(ctx context.Context, collection string) ([]byte, bool, error) {
	if err := ValidateCollection(collection); err != nil {
		return nil, false, err
	}

	var payload []byte

	err := s.db.QueryRowContext(ctx, `SELECT payload FROM collections WHERE name = ?`, collection).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("select collection %s: %w", collection, err)
	}

	return payload, true, nil
}

func (s *sqliteStore) Put(ctx context.Context, collection string, payload []byte) error {
	if err := ValidateCollection(collection); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `INSERT INTO collections (name, payload, modified_at)
VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(name) DO UPDATE SET payload = excluded.payload, modified_at = excluded.modified_at`,
		collection, payload)
	if err != nil {
		return fmt.Errorf("upsert collection %s: %w", collection, err)
	}

	return nil
}
