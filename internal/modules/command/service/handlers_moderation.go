package service

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/reshetovitsme/group-moderator-bot/internal/shared/locale"
)

// handleWarn adds a warning to the quoted author. The warning that reaches
// the threshold clears the counter and removes the member.
func (d *Dispatcher) handleWarn(ctx context.Context, r *Request) error {
	target := r.Message.Quoted.AuthorID
	mention := d.mention(ctx, target)

	res := d.warnings.Warn(target)
	if err := r.ReplyT(ctx, locale.MsgWarn, map[string]any{
		"Target":    mention,
		"Count":     res.Count,
		"Threshold": res.Threshold,
	}, target); err != nil {
		slog.Warn("Failed to send warning notice", "chat_id", r.Message.ChatID, "error", err)
	}
	if !res.Reached {
		return nil
	}

	if err := d.client.RemoveParticipants(ctx, r.Message.ChatID, []string{target}); err != nil {
		return r.Fail(ctx, locale.MsgWarnKickFailed, err)
	}
	slog.Info("Member removed after warnings", "chat_id", r.Message.ChatID, "member_id", target, "warnings", res.Count)
	return r.ReplyT(ctx, locale.MsgWarnKicked, map[string]any{
		"Target":    mention,
		"Threshold": res.Threshold,
	}, target)
}

func (d *Dispatcher) handleWarnings(ctx context.Context, r *Request) error {
	target := r.Message.Quoted.AuthorID
	return r.ReplyT(ctx, locale.MsgWarnings, map[string]any{
		"Target":    d.mention(ctx, target),
		"Count":     d.warnings.Count(target),
		"Threshold": d.warnings.Threshold(),
	}, target)
}

// handleMute silences the quoted author for the given minutes; a missing or
// non-numeric duration uses the default
func (d *Dispatcher) handleMute(ctx context.Context, r *Request) error {
	target := r.Message.Quoted.AuthorID

	minutes := d.cfg.DefaultMuteMinutes
	if len(r.Args) > 0 {
		if n, err := strconv.Atoi(r.Args[0]); err == nil && n > 0 {
			minutes = n
		}
	}

	d.chats.Mute(r.Message.ChatID, target, d.now().Add(time.Duration(minutes)*time.Minute))
	return r.ReplyT(ctx, locale.MsgMuted, map[string]any{
		"Target":  d.mention(ctx, target),
		"Minutes": minutes,
	}, target)
}
