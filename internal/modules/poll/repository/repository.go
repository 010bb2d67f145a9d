package repository

import (
	"github.com/reshetovitsme/group-moderator-bot/internal/modules/poll/domain"
	"github.com/reshetovitsme/group-moderator-bot/internal/shared/storage"
	"github.com/samber/oops"
)

const table = "polls"

type Repository interface {
	LoadPolls() (map[string]*domain.Poll, error)
	SavePolls(polls map[string]*domain.Poll) error
}

type BackendRepository struct {
	backend storage.Backend
}

func New(backend storage.Backend) Repository {
	return &BackendRepository{backend: backend}
}

func (r *BackendRepository) LoadPolls() (map[string]*domain.Poll, error) {
	polls := make(map[string]*domain.Poll)
	if _, err := r.backend.Read(table, &polls); err != nil {
		return nil, oops.With("table", table, "context", "failed to load polls").Wrap(err)
	}
	for id, p := range polls {
		if p == nil {
			delete(polls, id)
			continue
		}
		p.ID = id
		if p.Voters == nil {
			p.Voters = make(map[string]bool)
		}
	}
	return polls, nil
}

func (r *BackendRepository) SavePolls(polls map[string]*domain.Poll) error {
	if err := r.backend.Write(table, polls); err != nil {
		return oops.With("table", table, "polls", len(polls), "context", "failed to save polls").Wrap(err)
	}
	return nil
}
