package sqlite

//nolint:revive
import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"hotel/config"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

const (
	driverName = "sqlite"
	dirMode    = 0o750
)

// New opens the SQLite database configured by STORAGE_SQLITE_PATH.
func New(config *config.Config) *sql.DB {
	db, err := Open(config.Storage.SQLite.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", config.Storage.SQLite.Path).Msg("Failed to open SQLite database")
	}

	log.Info().Str("path", config.Storage.SQLite.Path).Msg("Opened SQLite database")

	return db
}

// Open opens (creating if needed) the database file at path. ":memory:" keeps it in memory.
func Open(path string) (*sql.DB, error) {
	if path == "" {
		path = "hotel.db"
	}

	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}

	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// a single connection keeps ":memory:" databases shared and serialises writers
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}
