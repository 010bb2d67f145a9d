package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chatService "github.com/reshetovitsme/group-moderator-bot/internal/modules/chat/service"
	feedService "github.com/reshetovitsme/group-moderator-bot/internal/modules/feed/service"
	pollService "github.com/reshetovitsme/group-moderator-bot/internal/modules/poll/service"
	scheduleDomain "github.com/reshetovitsme/group-moderator-bot/internal/modules/schedule/domain"
	scheduleService "github.com/reshetovitsme/group-moderator-bot/internal/modules/schedule/service"
	sessionService "github.com/reshetovitsme/group-moderator-bot/internal/modules/session/service"
	"github.com/reshetovitsme/group-moderator-bot/internal/shared/config"
	sloghttp "github.com/samber/slog-http"
)

// Server exposes the bot's link status, health and per-chat feeds
type Server struct {
	cfg      *config.Config
	session  *sessionService.Service
	schedule *scheduleService.Service
	polls    *pollService.Service
	chats    *chatService.Service
	feeds    *feedService.Service
	logger   *slog.Logger
	now      func() time.Time

	server *http.Server
}

// New creates a new HTTP server
func New(
	cfg *config.Config,
	session *sessionService.Service,
	schedule *scheduleService.Service,
	polls *pollService.Service,
	chats *chatService.Service,
	feeds *feedService.Service,
) *Server {
	return &Server{
		cfg:      cfg,
		session:  session,
		schedule: schedule,
		polls:    polls,
		chats:    chats,
		feeds:    feeds,
		logger:   slog.Default(),
		now:      time.Now,
	}
}

// SetLogger sets the logger
func (s *Server) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Handler returns the routed handler wrapped in logging and recovery middleware
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(sloghttp.Recovery)
	r.Use(sloghttp.New(s.logger))

	r.Get("/status", s.handleStatus)
	r.Get("/qr", s.handleQR)
	r.Get("/health", s.handleHealth)
	r.Get("/feed/{chatID}", s.handleFeed)
	r.Get("/", s.handleRoot)
	return r
}

// Start listens until Shutdown is called
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%s", s.cfg.HTTPPort)
	s.logger.Info("HTTP server starting", "addr", addr)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

type statusResponse struct {
	Status            string    `json:"status"`
	Ready             bool      `json:"ready"`
	AuthMethod        string    `json:"auth_method"`
	QRCode            string    `json:"qr_code,omitempty"`
	PairingCode       string    `json:"pairing_code,omitempty"`
	ScheduledMessages int       `json:"scheduled_messages"`
	Reminders         int       `json:"reminders"`
	Polls             int       `json:"polls"`
	Chats             int       `json:"chats"`
	Timestamp         time.Time `json:"timestamp"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	st := s.session.Snapshot()

	status := "waiting"
	if st.Ready {
		status = "connected"
	}

	writeJSON(w, http.StatusOK, statusResponse{
		Status:            status,
		Ready:             st.Ready,
		AuthMethod:        st.Method.String(),
		QRCode:            st.QRCode,
		PairingCode:       st.PairingCode,
		ScheduledMessages: s.schedule.Count(scheduleDomain.ItemKindMessage),
		Reminders:         s.schedule.Count(scheduleDomain.ItemKindReminder),
		Polls:             s.polls.Count(),
		Chats:             s.chats.Count(),
		Timestamp:         s.now(),
	})
}

// handleQR serves the code the operator needs to link the account
func (s *Server) handleQR(w http.ResponseWriter, r *http.Request) {
	st := s.session.Snapshot()
	code := st.LinkCode()
	if code == "" || st.Ready {
		http.Error(w, "No link code available", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"method": st.Method.String(),
		"code":   code,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	chatID := chi.URLParam(r, "chatID")
	if chatID == "" {
		http.Error(w, "Chat ID is required", http.StatusBadRequest)
		return
	}

	baseURL := fmt.Sprintf("%s://%s", getScheme(r), r.Host)
	feed := s.feeds.GenerateFeed(chatID, baseURL)

	rss, err := feed.ToRss()
	if err != nil {
		s.logger.Error("Error converting feed to RSS", "chat_id", chatID, "error", err)
		http.Error(w, "Failed to generate RSS", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=60")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(rss))
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	html := `<!DOCTYPE html>
<html>
<head>
    <title>Group Moderator Bot</title>
    <style>
        body { font-family: Arial, sans-serif; max-width: 800px; margin: 50px auto; padding: 20px; }
        h1 { color: #333; }
        .info { background: #f5f5f5; padding: 15px; border-radius: 5px; margin: 20px 0; }
        code { background: #e8e8e8; padding: 2px 6px; border-radius: 3px; }
    </style>
</head>
<body>
    <h1>Group Moderator Bot</h1>
    <div class="info">
        <p>Bot state: <a href="/status"><code>/status</code></a></p>
        <p>Link code while the account is not linked: <a href="/qr"><code>/qr</code></a></p>
        <p>Upcoming announcements of a chat: <code>/feed/{chatID}</code></p>
    </div>
    <p><a href="/health">Health Check</a></p>
</body>
</html>`
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func getScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	if scheme := r.Header.Get("X-Forwarded-Proto"); scheme != "" {
		return scheme
	}
	return "http"
}
