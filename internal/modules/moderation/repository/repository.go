package repository

import (
	"github.com/reshetovitsme/group-moderator-bot/internal/shared/storage"
	"github.com/samber/oops"
)

const table = "warnings"

// Repository persists warning counters keyed by member
type Repository interface {
	LoadWarnings() (map[string]int, error)
	SaveWarnings(warnings map[string]int) error
}

type BackendRepository struct {
	backend storage.Backend
}

func New(backend storage.Backend) Repository {
	return &BackendRepository{backend: backend}
}

func (r *BackendRepository) LoadWarnings() (map[string]int, error) {
	warnings := make(map[string]int)
	if _, err := r.backend.Read(table, &warnings); err != nil {
		return nil, oops.With("table", table, "context", "failed to load warnings").Wrap(err)
	}
	return warnings, nil
}

func (r *BackendRepository) SaveWarnings(warnings map[string]int) error {
	if err := r.backend.Write(table, warnings); err != nil {
		return oops.With("table", table, "context", "failed to save warnings").Wrap(err)
	}
	return nil
}
