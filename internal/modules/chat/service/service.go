package service

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/reshetovitsme/group-moderator-bot/internal/modules/chat/domain"
	"github.com/reshetovitsme/group-moderator-bot/internal/modules/chat/repository"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// Service owns the per-chat state. Chats are created on first touch and
// never deleted.
type Service struct {
	repo  repository.Repository
	chats map[string]*domain.ChatState
	dirty bool
	mu    sync.RWMutex
}

// New creates the chat service and loads persisted chats. A failed load is
// logged and the service starts empty.
func New(repo repository.Repository) *Service {
	chats, err := repo.LoadAll()
	if err != nil {
		slog.Error("Failed to load chat state, starting empty", "error", err)
		chats = make(map[string]*domain.ChatState)
	}
	return &Service{repo: repo, chats: chats}
}

func (s *Service) get(chatID string) *domain.ChatState {
	c, ok := s.chats[chatID]
	if !ok {
		c = domain.NewChatState()
		s.chats[chatID] = c
		s.dirty = true
	}
	return c
}

// Get returns a copy of the chat's state, creating it with defaults if needed
func (s *Service) Get(chatID string) domain.ChatState {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := *s.get(chatID)
	c.LastActivity = lo.Assign(c.LastActivity)
	c.MutedUsers = lo.Assign(c.MutedUsers)
	return c
}

// RecordActivity stamps the member's latest message time in the chat
func (s *Service) RecordActivity(chatID, member string, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.get(chatID).LastActivity[member] = now
	s.dirty = true
}

// LastActivity reports when the member last wrote in the chat
func (s *Service) LastActivity(chatID, member string) (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.chats[chatID]
	if !ok {
		return time.Time{}, false
	}
	t, ok := c.LastActivity[member]
	return t, ok
}

// Mute silences the member until the given instant
func (s *Service) Mute(chatID, member string, until time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.get(chatID).MutedUsers[member] = until
	s.dirty = true
}

// IsMuted reports whether the member is muted at now. An expired mute is
// removed as a side effect.
func (s *Service) IsMuted(chatID, member string, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.chats[chatID]
	if !ok {
		return false
	}
	until, ok := c.MutedUsers[member]
	if !ok {
		return false
	}
	if now.Before(until) {
		return true
	}
	delete(c.MutedUsers, member)
	s.dirty = true
	return false
}

func (s *Service) SetRules(chatID, rules string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.get(chatID).Rules = rules
	s.dirty = true
}

// Rules returns the chat rules; empty when unset or disabled
func (s *Service) Rules(chatID string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.chats[chatID]
	if !ok || !c.Settings.RulesEnabled {
		return ""
	}
	return c.Rules
}

func (s *Service) SetWelcome(chatID, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.get(chatID).WelcomeMessage = text
	s.dirty = true
}

// Welcome returns the welcome template; empty when unset or disabled
func (s *Service) Welcome(chatID string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.chats[chatID]
	if !ok || !c.Settings.WelcomeEnabled {
		return ""
	}
	return c.WelcomeMessage
}

// ToggleAntiSpam flips the flag and returns the new value
func (s *Service) ToggleAntiSpam(chatID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.get(chatID)
	c.AntiSpam = !c.AntiSpam
	s.dirty = true
	return c.AntiSpam
}

// ToggleLinkFilter flips the flag and returns the new value
func (s *Service) ToggleLinkFilter(chatID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.get(chatID)
	c.LinkFilter = !c.LinkFilter
	s.dirty = true
	return c.LinkFilter
}

func (s *Service) LinkFilterEnabled(chatID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.chats[chatID]
	return ok && c.LinkFilter
}

// InactiveMembers returns, in input order, the members whose last activity
// is missing or older than cutoff.
func (s *Service) InactiveMembers(chatID string, members []string, cutoff time.Time) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var activity map[string]time.Time
	if c, ok := s.chats[chatID]; ok {
		activity = c.LastActivity
	}
	return lo.Filter(members, func(m string, _ int) bool {
		last, ok := activity[m]
		return !ok || last.Before(cutoff)
	})
}

// Count is the number of chats the bot has state for
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.chats)
}

// ChatIDs lists known chats in sorted order
func (s *Service) ChatIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := lo.Keys(s.chats)
	sort.Strings(ids)
	return ids
}

// Flush writes the chats table if anything changed since the last flush
func (s *Service) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.dirty {
		return nil
	}
	if err := s.repo.SaveAll(s.chats); err != nil {
		return oops.With("context", "failed to flush chats").Wrap(err)
	}
	s.dirty = false
	return nil
}
