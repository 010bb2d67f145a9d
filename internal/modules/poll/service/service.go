package service

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/reshetovitsme/group-moderator-bot/internal/modules/poll/domain"
	"github.com/reshetovitsme/group-moderator-bot/internal/modules/poll/repository"
	"github.com/reshetovitsme/group-moderator-bot/internal/shared/errors"
	"github.com/samber/oops"
)

const idLength = 8

// Service is the poll registry
type Service struct {
	repo  repository.Repository
	polls map[string]*domain.Poll
	dirty bool
	mu    sync.RWMutex
	newID func() string
}

func New(repo repository.Repository) *Service {
	polls, err := repo.LoadPolls()
	if err != nil {
		slog.Error("Failed to load polls, starting empty", "error", err)
		polls = make(map[string]*domain.Poll)
	}
	return &Service{
		repo:  repo,
		polls: polls,
		newID: func() string { return uuid.NewString()[:idLength] },
	}
}

// Create registers a poll under a fresh short id
func (s *Service) Create(chatID, question string, now time.Time) *domain.Poll {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.newID()
	for _, taken := s.polls[id]; taken; _, taken = s.polls[id] {
		id = s.newID()
	}

	p := &domain.Poll{
		ID:        id,
		ChatID:    chatID,
		Question:  question,
		Voters:    make(map[string]bool),
		CreatedAt: now,
	}
	s.polls[id] = p
	s.dirty = true

	slog.Info("Poll created", "poll_id", id, "chat_id", chatID)
	return p
}

// Vote records the voter's choice. The membership check and the increment
// happen under one lock so a voter can never be counted twice.
func (s *Service) Vote(id, voter string, choice domain.Choice) (domain.Votes, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.polls[normalizeID(id)]
	if !ok {
		return domain.Votes{}, oops.With("poll_id", id).Wrap(errors.ErrPollNotFound)
	}
	if p.Voters[voter] {
		return p.Votes, oops.With("poll_id", id, "voter", voter).Wrap(errors.ErrAlreadyVoted)
	}

	switch choice {
	case domain.ChoiceYes:
		p.Votes.Yes++
	case domain.ChoiceNo:
		p.Votes.No++
	default:
		return p.Votes, oops.With("choice", choice).Wrap(domain.ErrInvalidChoice)
	}
	p.Voters[voter] = true
	s.dirty = true
	return p.Votes, nil
}

// Results returns the poll's tally
func (s *Service) Results(id string) (domain.Results, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.polls[normalizeID(id)]
	if !ok {
		return domain.Results{}, oops.With("poll_id", id).Wrap(errors.ErrPollNotFound)
	}
	return p.Tally(), nil
}

func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.polls)
}

func (s *Service) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.dirty {
		return nil
	}
	if err := s.repo.SavePolls(s.polls); err != nil {
		return oops.With("context", "failed to flush polls").Wrap(err)
	}
	s.dirty = false
	return nil
}

// ids are lowercase hex; users may retype them in any case
func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
