package service

import (
	"sync"
	"time"

	"github.com/reshetovitsme/group-moderator-bot/internal/modules/moderation/domain"
	"github.com/samber/lo"
)

// RateLimiter allows max commands per member per fixed window. The window
// starts with the first command after the previous one expired.
type RateLimiter struct {
	window  time.Duration
	max     int
	windows map[string]*domain.RateWindow
	mu      sync.Mutex
}

// NewRateLimiter creates a limiter; max is raised to 1 so a window always
// has a budget to run out of
func NewRateLimiter(window time.Duration, max int) *RateLimiter {
	max = lo.Max([]int{max, 1})
	return &RateLimiter{
		window:  window,
		max:     max,
		windows: make(map[string]*domain.RateWindow),
	}
}

// Allow counts the command and reports whether it is within the budget.
// Denied commands do not extend or consume the window.
func (r *RateLimiter) Allow(member string, now time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.windows[member]
	if !ok || !now.Before(w.ResetAt) {
		r.windows[member] = &domain.RateWindow{Count: 1, ResetAt: now.Add(r.window)}
		return true
	}
	if w.Count >= r.max {
		return false
	}
	w.Count++
	return true
}

// Prune drops expired windows and returns how many were removed
func (r *RateLimiter) Prune(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for member, w := range r.windows {
		if !now.Before(w.ResetAt) {
			delete(r.windows, member)
			removed++
		}
	}
	return removed
}

// Tracked is the number of members with a live window
func (r *RateLimiter) Tracked() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.windows)
}
