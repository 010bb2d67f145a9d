package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	chatRepo "github.com/reshetovitsme/group-moderator-bot/internal/modules/chat/repository"
	chatService "github.com/reshetovitsme/group-moderator-bot/internal/modules/chat/service"
	feedService "github.com/reshetovitsme/group-moderator-bot/internal/modules/feed/service"
	pollRepo "github.com/reshetovitsme/group-moderator-bot/internal/modules/poll/repository"
	pollService "github.com/reshetovitsme/group-moderator-bot/internal/modules/poll/service"
	scheduleDomain "github.com/reshetovitsme/group-moderator-bot/internal/modules/schedule/domain"
	scheduleRepo "github.com/reshetovitsme/group-moderator-bot/internal/modules/schedule/repository"
	scheduleService "github.com/reshetovitsme/group-moderator-bot/internal/modules/schedule/service"
	sessionDomain "github.com/reshetovitsme/group-moderator-bot/internal/modules/session/domain"
	sessionService "github.com/reshetovitsme/group-moderator-bot/internal/modules/session/service"
	"github.com/reshetovitsme/group-moderator-bot/internal/shared/config"
	"github.com/reshetovitsme/group-moderator-bot/internal/shared/storage"
)

type testServer struct {
	*Server
	session  *sessionService.Service
	schedule *scheduleService.Service
}

func newTestServer(t *testing.T, method sessionDomain.AuthMethod) *testServer {
	t.Helper()

	backend := storage.NewMemory()
	session := sessionService.New(method, "+1 555 0100", nil)
	schedule := scheduleService.New(scheduleRepo.New(backend), time.UTC)
	polls := pollService.New(pollRepo.New(backend))
	chats := chatService.New(chatRepo.New(backend))

	s := New(&config.Config{HTTPPort: "0"}, session, schedule, polls, chats, feedService.New(schedule, nil))
	return &testServer{Server: s, session: session, schedule: schedule}
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestStatus(t *testing.T) {
	s := newTestServer(t, sessionDomain.AuthMethodToken)
	now := time.Now()
	if _, err := s.schedule.Schedule(scheduleDomain.ItemKindReminder, "42", "10:00", "standup", now); err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	s.session.SetReady(true)

	rec := get(t, s.Handler(), "/status")
	if rec.Code != http.StatusOK {
		t.Fatalf("Status code = %d", rec.Code)
	}

	var body statusResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !body.Ready || body.Status != "connected" || body.AuthMethod != "token" {
		t.Errorf("Unexpected status %+v", body)
	}
	if body.Reminders != 1 || body.ScheduledMessages != 0 || body.Polls != 0 {
		t.Errorf("Unexpected counts %+v", body)
	}
}

func TestQR(t *testing.T) {
	s := newTestServer(t, sessionDomain.AuthMethodQr)

	if rec := get(t, s.Handler(), "/qr"); rec.Code != http.StatusNotFound {
		t.Fatalf("Without a code: status = %d, want 404", rec.Code)
	}

	s.session.SetQRCode("2@abc")
	rec := get(t, s.Handler(), "/qr")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "2@abc") {
		t.Fatalf("With a code: %d %s", rec.Code, rec.Body.String())
	}

	s.session.SetReady(true)
	if rec := get(t, s.Handler(), "/qr"); rec.Code != http.StatusNotFound {
		t.Errorf("After linking: status = %d, want 404", rec.Code)
	}
}

func TestQR_PairingCode(t *testing.T) {
	s := newTestServer(t, sessionDomain.AuthMethodPairingCode)

	rec := get(t, s.Handler(), "/qr")
	if rec.Code != http.StatusOK {
		t.Fatalf("Status code = %d", rec.Code)
	}
	code := s.session.Snapshot().PairingCode
	if code == "" || !strings.Contains(rec.Body.String(), code) {
		t.Errorf("Body %q does not carry pairing code %q", rec.Body.String(), code)
	}
}

func TestFeed(t *testing.T) {
	s := newTestServer(t, sessionDomain.AuthMethodToken)
	if _, err := s.schedule.Schedule(scheduleDomain.ItemKindMessage, "42", "08:15", "Weekly <digest>", time.Now()); err != nil {
		t.Fatalf("Schedule: %v", err)
	}

	rec := get(t, s.Handler(), "/feed/42")
	if rec.Code != http.StatusOK {
		t.Fatalf("Status code = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/rss+xml") {
		t.Errorf("Content-Type = %q", ct)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<rss") || !strings.Contains(body, "/feed/42") {
		t.Errorf("Unexpected feed %s", body)
	}
	if strings.Contains(body, "<digest>") {
		t.Error("Item text must be escaped")
	}

	other := get(t, s.Handler(), "/feed/7").Body.String()
	if strings.Contains(other, "Weekly") {
		t.Error("Feed leaks another chat's items")
	}
}

func TestHealthAndRoot(t *testing.T) {
	s := newTestServer(t, sessionDomain.AuthMethodToken)

	rec := get(t, s.Handler(), "/health")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("Health = %d %s", rec.Code, rec.Body.String())
	}

	rec = get(t, s.Handler(), "/")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "/feed/{chatID}") {
		t.Errorf("Root = %d", rec.Code)
	}

	if rec := get(t, s.Handler(), "/nope"); rec.Code != http.StatusNotFound {
		t.Errorf("Unknown path = %d, want 404", rec.Code)
	}
}
