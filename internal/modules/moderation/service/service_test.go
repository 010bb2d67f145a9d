package service

import (
	"testing"
	"time"

	"github.com/reshetovitsme/group-moderator-bot/internal/modules/moderation/repository"
	"github.com/reshetovitsme/group-moderator-bot/internal/shared/storage"
)

func TestWarn_ThresholdClearsCounter(t *testing.T) {
	w := NewWarnings(repository.New(storage.NewMemory()), 3)

	for i := 1; i <= 2; i++ {
		res := w.Warn("u1")
		if res.Reached || res.Count != i {
			t.Fatalf("Warn #%d = %+v", i, res)
		}
	}

	res := w.Warn("u1")
	if !res.Reached || res.Count != 3 || res.Threshold != 3 {
		t.Fatalf("Third warn = %+v, want reached at 3", res)
	}
	if w.Count("u1") != 0 {
		t.Errorf("Counter = %d after reaching threshold, want 0", w.Count("u1"))
	}

	if res := w.Warn("u1"); res.Count != 1 {
		t.Errorf("Warn after reset = %+v, want count 1", res)
	}
}

func TestWarnings_AreGlobalPerMember(t *testing.T) {
	w := NewWarnings(repository.New(storage.NewMemory()), 3)
	w.Warn("u1")
	w.Warn("u2")
	w.Warn("u1")

	if w.Count("u1") != 2 || w.Count("u2") != 1 {
		t.Errorf("Counts u1=%d u2=%d", w.Count("u1"), w.Count("u2"))
	}
}

func TestWarnings_FlushAndReloadDropsOutOfRange(t *testing.T) {
	backend := storage.NewMemory()
	if err := backend.Write("warnings", map[string]int{"bad": 7, "zero": 0, "ok": 2}); err != nil {
		t.Fatal(err)
	}

	w := NewWarnings(repository.New(backend), 3)
	if w.Count("bad") != 0 || w.Count("zero") != 0 || w.Count("ok") != 2 {
		t.Fatalf("Unexpected counts after load")
	}

	w.Warn("new")
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	var stored map[string]int
	if _, err := backend.Read("warnings", &stored); err != nil {
		t.Fatal(err)
	}
	if len(stored) != 2 || stored["new"] != 1 {
		t.Errorf("Stored = %v", stored)
	}
}

func TestRateLimiter_Window(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	r := NewRateLimiter(time.Minute, 10)

	for i := 1; i <= 10; i++ {
		if !r.Allow("u1", now.Add(time.Duration(i)*time.Second)) {
			t.Fatalf("Command %d should be allowed", i)
		}
	}
	if r.Allow("u1", now.Add(30*time.Second)) {
		t.Fatal("11th command inside the window should be denied")
	}
	if !r.Allow("u2", now.Add(30*time.Second)) {
		t.Fatal("Other members have their own budget")
	}

	// window opened at now+1s
	if r.Allow("u1", now.Add(60*time.Second)) {
		t.Fatal("Still inside the window")
	}
	if !r.Allow("u1", now.Add(61*time.Second)) {
		t.Fatal("Expected a fresh window at resetAt")
	}
}

func TestRateLimiter_Prune(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	r := NewRateLimiter(time.Minute, 10)
	r.Allow("old", now)
	r.Allow("fresh", now.Add(50*time.Second))

	if n := r.Prune(now.Add(time.Minute)); n != 1 {
		t.Errorf("Prune removed %d, want 1", n)
	}
	if r.Tracked() != 1 {
		t.Errorf("Tracked = %d, want 1", r.Tracked())
	}
}

func TestRateLimiter_NonPositiveMaxAllowsOne(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, max := range []int{0, -3} {
		r := NewRateLimiter(time.Minute, max)
		if !r.Allow("u1", now) {
			t.Errorf("max=%d: first command denied", max)
		}
		if r.Allow("u1", now.Add(time.Second)) {
			t.Errorf("max=%d: second command allowed in the same window", max)
		}
	}
}
