package service

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/reshetovitsme/group-moderator-bot/internal/modules/schedule/domain"
	"github.com/reshetovitsme/group-moderator-bot/internal/modules/schedule/repository"
	"github.com/reshetovitsme/group-moderator-bot/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

var kinds = []domain.ItemKind{domain.ItemKindMessage, domain.ItemKindReminder}

// Service holds the scheduled message and reminder queues
type Service struct {
	repo   repository.Repository
	loc    *time.Location
	queues map[domain.ItemKind][]domain.Item
	dirty  map[domain.ItemKind]bool
	mu     sync.RWMutex
}

// New creates the service and loads both queues. A queue that fails to load
// starts empty.
func New(repo repository.Repository, loc *time.Location) *Service {
	s := &Service{
		repo:   repo,
		loc:    loc,
		queues: make(map[domain.ItemKind][]domain.Item),
		dirty:  make(map[domain.ItemKind]bool),
	}
	for _, kind := range kinds {
		items, err := repo.LoadQueue(kind)
		if err != nil {
			slog.Error("Failed to load queue, starting empty", "kind", kind, "error", err)
			continue
		}
		sortByFireAt(items)
		s.queues[kind] = items
	}
	return s
}

// Schedule parses clock, computes the next occurrence and queues the text
func (s *Service) Schedule(kind domain.ItemKind, chatID, clock, text string, now time.Time) (domain.Item, error) {
	c, err := ParseClock(clock)
	if err != nil {
		return domain.Item{}, err
	}

	item := domain.Item{
		ID:        uuid.NewString(),
		Kind:      kind,
		ChatID:    chatID,
		Text:      text,
		FireAt:    NextOccurrence(c, now, s.loc),
		CreatedAt: now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.queues[kind] = append(s.queues[kind], item)
	sortByFireAt(s.queues[kind])
	s.dirty[kind] = true

	slog.Info("Item scheduled", "kind", kind, "chat_id", chatID, "id", item.ID, "fire_at", item.FireAt)
	return item, nil
}

// Pending returns a copy of the queue ordered by fire time
func (s *Service) Pending(kind domain.ItemKind) []domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Item(nil), s.queues[kind]...)
}

// PendingForChat returns both queues' items for one chat, soonest first
func (s *Service) PendingForChat(chatID string) []domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var items []domain.Item
	for _, kind := range kinds {
		items = append(items, lo.Filter(s.queues[kind], func(item domain.Item, _ int) bool {
			return item.ChatID == chatID
		})...)
	}
	sortByFireAt(items)
	return items
}

// Due returns the items of kind whose fire time has arrived
func (s *Service) Due(kind domain.ItemKind, now time.Time) []domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.Filter(s.queues[kind], func(item domain.Item, _ int) bool {
		return item.IsDue(now)
	})
}

// Delivered removes the item; it never fires again
func (s *Service) Delivered(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kind, idx, ok := s.find(id)
	if !ok {
		return oops.With("id", id).Wrap(errors.ErrItemNotFound)
	}
	s.remove(kind, idx)
	return nil
}

// Failed records a failed delivery attempt. Once maxAttempts is reached the
// item is dropped and dropped is true.
func (s *Service) Failed(id string, maxAttempts int) (dropped bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kind, idx, ok := s.find(id)
	if !ok {
		return false, oops.With("id", id).Wrap(errors.ErrItemNotFound)
	}
	s.queues[kind][idx].Attempts++
	s.dirty[kind] = true
	if s.queues[kind][idx].Attempts >= maxAttempts {
		s.remove(kind, idx)
		return true, nil
	}
	return false, nil
}

func (s *Service) Count(kind domain.ItemKind) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.queues[kind])
}

// Flush writes every queue that changed since the last flush
func (s *Service) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, kind := range kinds {
		if !s.dirty[kind] {
			continue
		}
		if err := s.repo.SaveQueue(kind, s.queues[kind]); err != nil {
			return oops.With("kind", kind, "context", "failed to flush queue").Wrap(err)
		}
		s.dirty[kind] = false
	}
	return nil
}

func (s *Service) find(id string) (domain.ItemKind, int, bool) {
	for _, kind := range kinds {
		for i, item := range s.queues[kind] {
			if item.ID == id {
				return kind, i, true
			}
		}
	}
	return "", 0, false
}

func (s *Service) remove(kind domain.ItemKind, idx int) {
	q := s.queues[kind]
	s.queues[kind] = append(q[:idx:idx], q[idx+1:]...)
	s.dirty[kind] = true
}

func sortByFireAt(items []domain.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].FireAt.Before(items[j].FireAt)
	})
}
