package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hotel/infras/postgres"
	"hotel/shared/constant"
)

type collectionRow struct {
	Name    string `db:"name"`
	Payload string `db:"payload"`
}

type postgresStore struct {
	db *postgres.Connection
}

// NewPostgres reads from the replica and writes to the primary. The
// collections table is created by the migrations under migrations/postgres.
func NewPostgres(db *postgres.Connection) Store {
	return &postgresStore{db: db}
}

func (p *postgresStore) Driver() string {
	return constant.StorageDriverPostgres
}

func (p *postgresStore) Get(ctx context.Context, collection string) ([]byte, bool, error) {
	if err := ValidateCollection(collection); err != nil {
		return nil, false, err
	}

	var row collectionRow

	err := p.db.Read.GetContext(ctx, &row, `SELECT name, payload::text AS payload FROM collections WHERE name = $1`, collection)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("select collection %s: %w", collection, err)
	}

	return []byte(row.Payload), true, nil
}

// Put sends the payload as text so lib/pq binds it to jsonb rather than bytea.
func (p *postgresStore) Put(ctx context.Context, collection string, payload []byte) error {
	if err := ValidateCollection(collection); err != nil {
		return err
	}

	_, err := p.db.Write.NamedExecContext(ctx, `INSERT INTO collections (name, payload, modified_at)
VALUES (:name, CAST(:payload AS jsonb), NOW())
ON CONFLICT (name) DO UPDATE SET payload = EXCLUDED.payload, modified_at = EXCLUDED.modified_at`,
		collectionRow{Name: collection, Payload: string(payload)})
	if err != nil {
		return fmt.Errorf("upsert collection %s: %w", collection, err)
	}

	return nil
}
