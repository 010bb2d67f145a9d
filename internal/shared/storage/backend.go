package storage

import (
	"github.com/reshetovitsme/group-moderator-bot/internal/shared/errors"
	"github.com/samber/oops"
)

// Backend persists whole logical tables. Every Write replaces the table;
// there is no incremental format.
// This abstraction allows easy replacement of storage implementations
// (e.g., Memory -> File -> SQLite)
type Backend interface {
	// Read decodes the table into v. It reports false when the table was never written.
	Read(table string, v any) (bool, error)
	Write(table string, v any) error
	Close() error
}

// Open creates the backend selected by kind. path is a directory for the
// file backend and a database file for sqlite; memory ignores it.
func Open(kind Kind, path string) (Backend, error) {
	switch kind {
	case KindMemory:
		return NewMemory(), nil
	case KindFile:
		return NewFile(path)
	case KindSqlite:
		return NewSQLite(path)
	default:
		return nil, oops.With("kind", kind).Wrap(errors.ErrUnknownBackend)
	}
}
