package service

import (
	"context"
	"log/slog"
	"strings"
	"unicode"

	"github.com/reshetovitsme/group-moderator-bot/internal/modules/command/domain"
	"github.com/reshetovitsme/group-moderator-bot/internal/shared/locale"
)

// HandlerFunc runs a command. Expected platform failures are answered with
// Request.Fail; a returned error is logged and answered with a generic reply.
type HandlerFunc func(ctx context.Context, r *Request) error

// Command is one entry of the command table
type Command struct {
	Name    string
	Aliases []string
	Usage   string
	// MinArgs is the number of whitespace separated arguments required
	MinArgs int
	// NoArgs commands match only the bare keyword
	NoArgs        bool
	GroupOnly     bool
	RequiresAdmin bool
	RequiresQuote bool
	RequiresMedia bool
	Handler       HandlerFunc
}

// Keywords returns the name followed by the aliases
func (c *Command) Keywords() []string {
	return append([]string{c.Name}, c.Aliases...)
}

// Request is a parsed command invocation
type Request struct {
	Message *domain.Message
	Command *Command
	Keyword string
	Args    []string

	body string
	chat *domain.Chat
	d    *Dispatcher
}

// Tail returns the raw text after the first n tokens of the command body,
// keyword included, with the original case and inner spacing preserved.
func (r *Request) Tail(n int) string {
	return tail(r.body, n)
}

// Chat loads the chat once per request
func (r *Request) Chat(ctx context.Context) (*domain.Chat, error) {
	if r.chat != nil {
		return r.chat, nil
	}
	chat, err := r.d.client.GetChat(ctx, r.Message.ChatID)
	if err != nil {
		return nil, err
	}
	r.chat = chat
	return chat, nil
}

// Reply quotes the command message
func (r *Request) Reply(ctx context.Context, text string, mentions ...string) error {
	return r.d.client.SendMessage(ctx, r.Message.ChatID, text, domain.SendOptions{
		ReplyTo:  r.Message.ID,
		Mentions: mentions,
	})
}

// ReplyT replies with a localized message
func (r *Request) ReplyT(ctx context.Context, id string, data map[string]any, mentions ...string) error {
	return r.Reply(ctx, r.d.tr.T(id, data), mentions...)
}

// Send posts to the chat without quoting
func (r *Request) Send(ctx context.Context, text string, mentions ...string) error {
	return r.d.client.SendMessage(ctx, r.Message.ChatID, text, domain.SendOptions{Mentions: mentions})
}

// Fail logs a failed platform operation and answers with the failure notice
func (r *Request) Fail(ctx context.Context, id string, err error) error {
	slog.Warn("Command failed",
		"command", r.Command.Name,
		"chat_id", r.Message.ChatID,
		"sender_id", r.Message.SenderID,
		"error", err,
	)
	return r.ReplyT(ctx, id, nil)
}

// Usage answers with the command's usage line
func (r *Request) Usage(ctx context.Context) error {
	return r.ReplyT(ctx, locale.MsgUsage, map[string]any{
		"Usage": strings.TrimSpace(r.d.cfg.Prefix + r.Command.Name + " " + r.Command.Usage),
	})
}

func tail(s string, n int) string {
	for i := 0; i < n; i++ {
		s = strings.TrimLeftFunc(s, unicode.IsSpace)
		idx := strings.IndexFunc(s, unicode.IsSpace)
		if idx < 0 {
			return ""
		}
		s = s[idx:]
	}
	return strings.TrimSpace(s)
}
