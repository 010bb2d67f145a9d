package repository

import (
	"github.com/reshetovitsme/group-moderator-bot/internal/modules/schedule/domain"
	"github.com/reshetovitsme/group-moderator-bot/internal/shared/storage"
	"github.com/samber/oops"
)

// Repository persists one queue per item kind
type Repository interface {
	LoadQueue(kind domain.ItemKind) ([]domain.Item, error)
	SaveQueue(kind domain.ItemKind, items []domain.Item) error
}

type BackendRepository struct {
	backend storage.Backend
}

func New(backend storage.Backend) Repository {
	return &BackendRepository{backend: backend}
}

// TableName maps a kind to its table; messages keep the historical "scheduled" name
func TableName(kind domain.ItemKind) string {
	if kind == domain.ItemKindReminder {
		return "reminders"
	}
	return "scheduled"
}

func (r *BackendRepository) LoadQueue(kind domain.ItemKind) ([]domain.Item, error) {
	table := TableName(kind)
	doc := make(map[string]domain.Item)
	if _, err := r.backend.Read(table, &doc); err != nil {
		return nil, oops.With("table", table, "context", "failed to load queue").Wrap(err)
	}

	items := make([]domain.Item, 0, len(doc))
	for id, item := range doc {
		item.ID = id
		item.Kind = kind
		items = append(items, item)
	}
	return items, nil
}

// SaveQueue writes the queue as an object keyed by item id
func (r *BackendRepository) SaveQueue(kind domain.ItemKind, items []domain.Item) error {
	table := TableName(kind)
	doc := make(map[string]domain.Item, len(items))
	for _, item := range items {
		doc[item.ID] = item
	}
	if err := r.backend.Write(table, doc); err != nil {
		return oops.With("table", table, "items", len(items), "context", "failed to save queue").Wrap(err)
	}
	return nil
}
