package service

import (
	"log/slog"
	"sync"

	"github.com/reshetovitsme/group-moderator-bot/internal/modules/moderation/domain"
	"github.com/reshetovitsme/group-moderator-bot/internal/modules/moderation/repository"
	"github.com/samber/oops"
)

// Warnings counts warnings per member across all chats. A counter never
// rests at or above the threshold: the warning that reaches it clears it.
type Warnings struct {
	repo      repository.Repository
	threshold int
	counts    map[string]int
	dirty     bool
	mu        sync.RWMutex
}

func NewWarnings(repo repository.Repository, threshold int) *Warnings {
	if threshold < 1 {
		threshold = 1
	}
	counts, err := repo.LoadWarnings()
	if err != nil {
		slog.Error("Failed to load warnings, starting empty", "error", err)
		counts = make(map[string]int)
	}
	for member, n := range counts {
		if n <= 0 || n >= threshold {
			delete(counts, member)
		}
	}
	return &Warnings{repo: repo, threshold: threshold, counts: counts}
}

// Warn adds one warning to the member
func (w *Warnings) Warn(member string) domain.WarnResult {
	w.mu.Lock()
	defer w.mu.Unlock()

	n := w.counts[member] + 1
	w.dirty = true
	if n >= w.threshold {
		delete(w.counts, member)
		return domain.WarnResult{Count: n, Threshold: w.threshold, Reached: true}
	}
	w.counts[member] = n
	return domain.WarnResult{Count: n, Threshold: w.threshold}
}

func (w *Warnings) Count(member string) int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.counts[member]
}

func (w *Warnings) Threshold() int {
	return w.threshold
}

func (w *Warnings) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.dirty {
		return nil
	}
	if err := w.repo.SaveWarnings(w.counts); err != nil {
		return oops.With("context", "failed to flush warnings").Wrap(err)
	}
	w.dirty = false
	return nil
}
