package service

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"runtime/debug"
	"strings"
	"time"

	chatService "github.com/reshetovitsme/group-moderator-bot/internal/modules/chat/service"
	"github.com/reshetovitsme/group-moderator-bot/internal/modules/command/domain"
	moderationService "github.com/reshetovitsme/group-moderator-bot/internal/modules/moderation/service"
	pollService "github.com/reshetovitsme/group-moderator-bot/internal/modules/poll/service"
	scheduleService "github.com/reshetovitsme/group-moderator-bot/internal/modules/schedule/service"
	sessionService "github.com/reshetovitsme/group-moderator-bot/internal/modules/session/service"
	"github.com/reshetovitsme/group-moderator-bot/internal/shared/locale"
	"github.com/samber/lo"
)

const defaultCleanCount = 10

// Config holds the dispatcher settings
type Config struct {
	Prefix             string
	AdminCommands      []string
	DefaultMuteMinutes int
	MaxCleanMessages   int
	CleanupAfter       time.Duration
	InactiveAfter      time.Duration
}

// Deps are the collaborators and state stores the handlers work with
type Deps struct {
	Client   domain.Client
	Chats    *chatService.Service
	Warnings *moderationService.Warnings
	Limiter  *moderationService.RateLimiter
	Schedule *scheduleService.Service
	Polls    *pollService.Service
	Session  *sessionService.Service
	Locale   *locale.Translator
	Now      func() time.Time
	// Rand returns a number in [0, n)
	Rand func(n int) int
}

// Dispatcher turns inbound messages into command invocations
type Dispatcher struct {
	cfg      Config
	client   domain.Client
	chats    *chatService.Service
	warnings *moderationService.Warnings
	limiter  *moderationService.RateLimiter
	schedule *scheduleService.Service
	polls    *pollService.Service
	session  *sessionService.Service
	tr       *locale.Translator
	now      func() time.Time
	rand     func(n int) int

	table    []*Command
	keywords map[string]*Command
}

func New(cfg Config, deps Deps) *Dispatcher {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Rand == nil {
		deps.Rand = rand.IntN
	}
	if cfg.DefaultMuteMinutes <= 0 {
		cfg.DefaultMuteMinutes = 60
	}
	if cfg.MaxCleanMessages <= 0 {
		cfg.MaxCleanMessages = 50
	}

	d := &Dispatcher{
		cfg:      cfg,
		client:   deps.Client,
		chats:    deps.Chats,
		warnings: deps.Warnings,
		limiter:  deps.Limiter,
		schedule: deps.Schedule,
		polls:    deps.Polls,
		session:  deps.Session,
		tr:       deps.Locale,
		now:      deps.Now,
		rand:     deps.Rand,
		keywords: make(map[string]*Command),
	}
	d.table = d.commands()

	admin := lo.SliceToMap(cfg.AdminCommands, func(name string) (string, bool) {
		return strings.ToLower(name), true
	})
	for _, cmd := range d.table {
		for _, kw := range cmd.Keywords() {
			if admin[strings.ToLower(kw)] {
				cmd.RequiresAdmin = true
			}
			d.keywords[strings.ToLower(kw)] = cmd
		}
	}
	return d
}

// Commands returns the command table
func (d *Dispatcher) Commands() []*Command {
	return d.table
}

// Lookup finds a command by name or alias, case-insensitively
func (d *Dispatcher) Lookup(keyword string) (*Command, bool) {
	cmd, ok := d.keywords[strings.ToLower(keyword)]
	return cmd, ok
}

// HandleMessage runs every gate for one inbound message and, if it is a
// command, its handler. Nothing that happens here escapes as a panic.
func (d *Dispatcher) HandleMessage(ctx context.Context, msg *domain.Message) {
	now := d.now()

	if msg.IsGroup && !d.enforce(ctx, msg, now) {
		return
	}

	if !strings.HasPrefix(msg.Text, d.cfg.Prefix) {
		return
	}
	body := strings.TrimSpace(strings.TrimPrefix(msg.Text, d.cfg.Prefix))
	tokens := strings.Fields(body)
	if len(tokens) == 0 {
		return
	}

	req := &Request{
		Message: msg,
		Keyword: strings.ToLower(tokens[0]),
		Args:    tokens[1:],
		body:    body,
		d:       d,
	}

	if !d.limiter.Allow(msg.SenderID, now) {
		slog.Info("Rate limited", "sender_id", msg.SenderID, "chat_id", msg.ChatID)
		d.reply(ctx, msg, locale.MsgRateLimited)
		return
	}

	cmd, ok := d.keywords[req.Keyword]
	if !ok || (cmd.NoArgs && len(req.Args) > 0) {
		slog.Debug("Unknown command", "keyword", req.Keyword, "chat_id", msg.ChatID)
		return
	}
	req.Command = cmd

	if !d.admit(ctx, req) {
		return
	}
	d.run(ctx, req)
}

// enforce applies per-chat rules to any group message. It returns false when
// the message was removed and must not be processed further.
func (d *Dispatcher) enforce(ctx context.Context, msg *domain.Message, now time.Time) bool {
	d.chats.RecordActivity(msg.ChatID, msg.SenderID, now)

	if d.chats.IsMuted(msg.ChatID, msg.SenderID, now) {
		if err := d.client.DeleteMessage(ctx, msg.ChatID, msg.ID); err != nil {
			slog.Warn("Failed to delete message from muted member", "chat_id", msg.ChatID, "sender_id", msg.SenderID, "error", err)
		}
		return false
	}

	if d.chats.LinkFilterEnabled(msg.ChatID) && containsLink(msg.Text) {
		if err := d.client.DeleteMessage(ctx, msg.ChatID, msg.ID); err != nil {
			slog.Warn("Failed to delete message with link", "chat_id", msg.ChatID, "sender_id", msg.SenderID, "error", err)
		}
		d.reply(ctx, msg, locale.MsgLinkBlocked)
		return false
	}
	return true
}

// admit checks the per-command requirements in order
func (d *Dispatcher) admit(ctx context.Context, req *Request) bool {
	cmd, msg := req.Command, req.Message

	if (cmd.GroupOnly || cmd.RequiresAdmin) && !msg.IsGroup {
		d.reply(ctx, msg, locale.MsgGroupOnly)
		return false
	}

	if cmd.RequiresAdmin {
		chat, err := req.Chat(ctx)
		if err != nil {
			slog.Error("Failed to load chat for admin check", "chat_id", msg.ChatID, "error", err)
			d.reply(ctx, msg, locale.MsgGenericError)
			return false
		}
		if !chat.IsAdmin(msg.SenderID) {
			d.reply(ctx, msg, locale.MsgAdminOnly)
			return false
		}
	}

	if cmd.RequiresQuote && msg.Quoted == nil {
		d.reply(ctx, msg, locale.MsgQuoteRequired)
		return false
	}
	if cmd.RequiresMedia && msg.Media == nil {
		d.reply(ctx, msg, locale.MsgMediaRequired)
		return false
	}
	if len(req.Args) < cmd.MinArgs {
		if err := req.Usage(ctx); err != nil {
			slog.Warn("Failed to send usage", "command", cmd.Name, "error", err)
		}
		return false
	}
	return true
}

func (d *Dispatcher) run(ctx context.Context, req *Request) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Command panicked",
				"command", req.Command.Name,
				"chat_id", req.Message.ChatID,
				"panic", r,
				"stack", string(debug.Stack()),
			)
			d.reply(ctx, req.Message, locale.MsgGenericError)
		}
	}()

	if err := req.Command.Handler(ctx, req); err != nil {
		slog.Error("Command error",
			"command", req.Command.Name,
			"chat_id", req.Message.ChatID,
			"sender_id", req.Message.SenderID,
			"error", err,
		)
		d.reply(ctx, req.Message, locale.MsgGenericError)
		return
	}
	slog.Debug("Command handled", "command", req.Command.Name, "chat_id", req.Message.ChatID)
}

// HandleJoin greets new members with the chat's welcome message
func (d *Dispatcher) HandleJoin(ctx context.Context, ev *domain.JoinEvent) {
	now := d.now()
	for _, member := range ev.MemberIDs {
		d.chats.RecordActivity(ev.ChatID, member, now)
	}

	welcome := d.chats.Welcome(ev.ChatID)
	if welcome == "" {
		return
	}

	for _, member := range ev.MemberIDs {
		text := strings.ReplaceAll(welcome, "{user}", d.mention(ctx, member))
		err := d.client.SendMessage(ctx, ev.ChatID, d.tr.T(locale.MsgWelcome, map[string]any{"Text": text}), domain.SendOptions{
			Mentions: []string{member},
		})
		if err != nil {
			slog.Error("Failed to send welcome message", "chat_id", ev.ChatID, "member_id", member, "error", err)
		}
	}
}

// reply sends a localized notice and only logs a failure
func (d *Dispatcher) reply(ctx context.Context, msg *domain.Message, id string) {
	err := d.client.SendMessage(ctx, msg.ChatID, d.tr.T(id), domain.SendOptions{ReplyTo: msg.ID})
	if err != nil {
		slog.Warn("Failed to send reply", "message", id, "chat_id", msg.ChatID, "error", err)
	}
}

// mention resolves a member to its mention text, falling back to the raw id
func (d *Dispatcher) mention(ctx context.Context, member string) string {
	contact, err := d.client.GetContact(ctx, member)
	if err != nil || contact == nil {
		return "@" + member
	}
	return contact.Mention()
}

func containsLink(text string) bool {
	lower := strings.ToLower(text)
	return strings.Contains(lower, "http") || strings.Contains(lower, "www.")
}
