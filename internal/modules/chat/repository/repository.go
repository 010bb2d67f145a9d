package repository

import (
	"github.com/reshetovitsme/group-moderator-bot/internal/modules/chat/domain"
	"github.com/reshetovitsme/group-moderator-bot/internal/shared/storage"
	"github.com/samber/oops"
)

const table = "groups"

// Repository defines the interface for chat state persistence
type Repository interface {
	LoadAll() (map[string]*domain.ChatState, error)
	SaveAll(chats map[string]*domain.ChatState) error
}

// BackendRepository stores all chats as one table of the configured backend
type BackendRepository struct {
	backend storage.Backend
}

func New(backend storage.Backend) Repository {
	return &BackendRepository{backend: backend}
}

func (r *BackendRepository) LoadAll() (map[string]*domain.ChatState, error) {
	chats := make(map[string]*domain.ChatState)
	if _, err := r.backend.Read(table, &chats); err != nil {
		return nil, oops.With("table", table, "context", "failed to load chats").Wrap(err)
	}
	for id, c := range chats {
		if c == nil {
			delete(chats, id)
			continue
		}
		c.Normalize()
	}
	return chats, nil
}

func (r *BackendRepository) SaveAll(chats map[string]*domain.ChatState) error {
	if err := r.backend.Write(table, chats); err != nil {
		return oops.With("table", table, "chats", len(chats), "context", "failed to save chats").Wrap(err)
	}
	return nil
}
