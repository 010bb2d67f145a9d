package storage

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/samber/oops"

	_ "modernc.org/sqlite"
)

// SQLite keeps every table as a JSON document in a single state table.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the database at dbPath
func NewSQLite(dbPath string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, oops.With("db_path", dbPath, "context", "failed to create db directory").Wrap(err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, oops.With("db_path", dbPath, "context", "failed to open database").Wrap(err)
	}

	db.SetMaxOpenConns(1)

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS state (
			name TEXT PRIMARY KEY,
			data TEXT NOT NULL,
			updated_at INTEGER NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, oops.With("db_path", dbPath, "context", "failed to create state table").Wrap(err)
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) Read(table string, v any) (bool, error) {
	var data string
	err := s.db.QueryRow(`SELECT data FROM state WHERE name = ?`, table).Scan(&data)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, oops.With("table", table, "context", "failed to query table").Wrap(err)
	}

	if err := json.Unmarshal([]byte(data), v); err != nil {
		return false, oops.With("table", table, "context", "failed to unmarshal table").Wrap(err)
	}
	return true, nil
}

func (s *SQLite) Write(table string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return oops.With("table", table, "context", "failed to marshal table").Wrap(err)
	}

	_, err = s.db.Exec(`
		INSERT INTO state (name, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`, table, string(data), time.Now().Unix())
	if err != nil {
		return oops.With("table", table, "context", "failed to upsert table").Wrap(err)
	}
	return nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
