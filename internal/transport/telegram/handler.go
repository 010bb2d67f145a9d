package telegram

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/reshetovitsme/group-moderator-bot/internal/modules/command/domain"
	"github.com/reshetovitsme/group-moderator-bot/internal/shared/eventloop"
)

// Dispatcher consumes platform-neutral events
type Dispatcher interface {
	HandleMessage(ctx context.Context, msg *domain.Message)
	HandleJoin(ctx context.Context, ev *domain.JoinEvent)
}

// Submitter queues work on the event loop
type Submitter interface {
	Submit(ctx context.Context, name string, task eventloop.Task) error
}

// Handler turns Telegram updates into events on the event loop
type Handler struct {
	client     *Client
	dispatcher Dispatcher
	loop       Submitter
}

// New creates a new Telegram handler
func New(client *Client, dispatcher Dispatcher, loop Submitter) *Handler {
	return &Handler{
		client:     client,
		dispatcher: dispatcher,
		loop:       loop,
	}
}

// HandleUpdate processes incoming updates
func (h *Handler) HandleUpdate(ctx context.Context, _ *bot.Bot, update *models.Update) {
	msg := update.Message
	if msg == nil {
		return
	}

	h.client.Observe(msg)

	if ev := toJoinEvent(msg); ev != nil {
		h.submit(ctx, "join", func(ctx context.Context) {
			h.dispatcher.HandleJoin(ctx, ev)
		})
		return
	}

	// Messages without text still go through mute enforcement and activity
	m := toMessage(msg)
	if m.SenderID == "" {
		return
	}
	h.submit(ctx, "message", func(ctx context.Context) {
		h.dispatcher.HandleMessage(ctx, m)
	})
}

func (h *Handler) submit(ctx context.Context, name string, task eventloop.Task) {
	if err := h.loop.Submit(ctx, name, task); err != nil {
		slog.Warn("Dropped update", "event", name, "error", err)
	}
}
