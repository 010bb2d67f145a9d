package service

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/reshetovitsme/group-moderator-bot/internal/modules/command/domain"
	"github.com/reshetovitsme/group-moderator-bot/internal/shared/locale"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

func (d *Dispatcher) handleChangeGroupName(ctx context.Context, r *Request) error {
	name := r.Tail(1)
	if err := d.client.SetSubject(ctx, r.Message.ChatID, name); err != nil {
		return r.Fail(ctx, locale.MsgGroupNameFailed, err)
	}
	return r.ReplyT(ctx, locale.MsgGroupNameOK, map[string]any{"Name": name})
}

func (d *Dispatcher) handleChangeGroupPic(ctx context.Context, r *Request) error {
	if err := d.client.SetPicture(ctx, r.Message.ChatID, *r.Message.Media); err != nil {
		return r.Fail(ctx, locale.MsgGroupPicFailed, err)
	}
	return r.ReplyT(ctx, locale.MsgGroupPicOK, nil)
}

func (d *Dispatcher) handleChangeGroupDesc(ctx context.Context, r *Request) error {
	if err := d.client.SetDescription(ctx, r.Message.ChatID, r.Tail(1)); err != nil {
		return r.Fail(ctx, locale.MsgGroupDescFailed, err)
	}
	return r.ReplyT(ctx, locale.MsgGroupDescOK, nil)
}

// membershipOp is promote, demote or remove
type membershipOp func(ctx context.Context, chatID string, members []string) error

func (d *Dispatcher) handlePromote(ctx context.Context, r *Request) error {
	return d.changeMembership(ctx, r, d.client.PromoteParticipants, locale.MsgPromoteOK, locale.MsgPromoteFailed)
}

func (d *Dispatcher) handleDemote(ctx context.Context, r *Request) error {
	return d.changeMembership(ctx, r, d.client.DemoteParticipants, locale.MsgDemoteOK, locale.MsgDemoteFailed)
}

func (d *Dispatcher) handleKick(ctx context.Context, r *Request) error {
	return d.changeMembership(ctx, r, d.client.RemoveParticipants, locale.MsgKickOK, locale.MsgKickFailed)
}

func (d *Dispatcher) changeMembership(ctx context.Context, r *Request, op membershipOp, okID, failedID string) error {
	target, ok, err := d.target(ctx, r)
	if !ok {
		return r.Usage(ctx)
	}
	if err != nil {
		return r.Fail(ctx, failedID, err)
	}

	if err := op(ctx, r.Message.ChatID, []string{target}); err != nil {
		return r.Fail(ctx, failedID, err)
	}
	return r.ReplyT(ctx, okID, map[string]any{"Target": d.mention(ctx, target)}, target)
}

// target resolves the member a command acts on: the quoted message's author,
// otherwise the number given as first argument. ok is false when neither
// was supplied.
func (d *Dispatcher) target(ctx context.Context, r *Request) (member string, ok bool, err error) {
	if r.Message.Quoted != nil && r.Message.Quoted.AuthorID != "" {
		return r.Message.Quoted.AuthorID, true, nil
	}
	if len(r.Args) == 0 {
		return "", false, nil
	}
	number := digitsOnly(r.Args[0])
	if number == "" {
		return "", false, nil
	}
	member, err = d.client.ResolveMember(ctx, r.Message.ChatID, number)
	if err != nil {
		return "", true, oops.With("number", number).Wrap(err)
	}
	return member, true, nil
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

func (d *Dispatcher) handleMentionAll(ctx context.Context, r *Request) error {
	chat, err := r.Chat(ctx)
	if err != nil {
		return r.Fail(ctx, locale.MsgMentionAllFailed, err)
	}

	members := lo.Map(chat.Participants, func(p domain.Participant, _ int) string { return p.ID })
	text := d.tr.T(locale.MsgMentionAllHeader) + "\n" + d.mentionList(ctx, members)
	if err := r.Send(ctx, text, members...); err != nil {
		return r.Fail(ctx, locale.MsgMentionAllFailed, err)
	}
	return nil
}

func (d *Dispatcher) mentionList(ctx context.Context, members []string) string {
	return strings.Join(lo.Map(members, func(m string, _ int) string {
		return d.mention(ctx, m)
	}), " ")
}

func (d *Dispatcher) handlePin(ctx context.Context, r *Request) error {
	if err := d.client.PinMessage(ctx, r.Message.ChatID, r.Message.Quoted.ID); err != nil {
		return r.Fail(ctx, locale.MsgPinFailed, err)
	}
	return r.ReplyT(ctx, locale.MsgPinOK, nil)
}

func (d *Dispatcher) handleUnpin(ctx context.Context, r *Request) error {
	if err := d.client.UnpinMessage(ctx, r.Message.ChatID, r.Message.Quoted.ID); err != nil {
		return r.Fail(ctx, locale.MsgUnpinFailed, err)
	}
	return r.ReplyT(ctx, locale.MsgUnpinOK, nil)
}

// inactive lists the chat's members, other than the bot, whose last activity
// is missing or older than the window
func (d *Dispatcher) inactive(ctx context.Context, r *Request, window time.Duration) ([]string, error) {
	chat, err := r.Chat(ctx)
	if err != nil {
		return nil, err
	}

	self := ""
	if info, err := d.client.AccountInfo(ctx); err == nil && info != nil {
		self = info.ID
	}
	members := lo.FilterMap(chat.Participants, func(p domain.Participant, _ int) (string, bool) {
		return p.ID, p.ID != self
	})

	cutoff := d.now().Add(-window)
	return d.chats.InactiveMembers(r.Message.ChatID, members, cutoff), nil
}

func (d *Dispatcher) handleCleanup(ctx context.Context, r *Request) error {
	inactive, err := d.inactive(ctx, r, d.cfg.CleanupAfter)
	if err != nil {
		return r.Fail(ctx, locale.MsgCleanupFailed, err)
	}

	removed := 0
	for _, member := range inactive {
		if err := d.client.RemoveParticipants(ctx, r.Message.ChatID, []string{member}); err != nil {
			slog.Warn("Failed to remove inactive member", "chat_id", r.Message.ChatID, "member_id", member, "error", err)
			continue
		}
		removed++
	}

	slog.Info("Inactive members removed", "chat_id", r.Message.ChatID, "removed", removed, "candidates", len(inactive))
	return r.ReplyT(ctx, locale.MsgCleanupOK, map[string]any{"Count": removed})
}

func (d *Dispatcher) handleInactive(ctx context.Context, r *Request) error {
	inactive, err := d.inactive(ctx, r, d.cfg.InactiveAfter)
	if err != nil {
		return r.Fail(ctx, locale.MsgInactiveFailed, err)
	}
	if len(inactive) == 0 {
		return r.ReplyT(ctx, locale.MsgInactiveNone, nil)
	}

	text := d.tr.T(locale.MsgInactiveHeader) + "\n" + d.mentionList(ctx, inactive)
	if err := r.Send(ctx, text, inactive...); err != nil {
		return r.Fail(ctx, locale.MsgInactiveFailed, err)
	}
	return nil
}

func (d *Dispatcher) handleStats(ctx context.Context, r *Request) error {
	chat, err := r.Chat(ctx)
	if err != nil {
		return r.Fail(ctx, locale.MsgStatsFailed, err)
	}

	admins := lo.CountBy(chat.Participants, func(p domain.Participant) bool {
		return p.IsAdmin || p.IsOwner
	})
	created := d.tr.T(locale.MsgNotSet)
	if !chat.CreatedAt.IsZero() {
		created = chat.CreatedAt.Format("2006-01-02")
	}

	return r.ReplyT(ctx, locale.MsgStats, map[string]any{
		"Total":   len(chat.Participants),
		"Admins":  admins,
		"Members": len(chat.Participants) - admins,
		"Created": created,
	})
}

func (d *Dispatcher) handleWelcome(ctx context.Context, r *Request) error {
	d.chats.SetWelcome(r.Message.ChatID, r.Tail(1))
	return r.ReplyT(ctx, locale.MsgWelcomeSet, nil)
}

func (d *Dispatcher) handleRules(ctx context.Context, r *Request) error {
	d.chats.SetRules(r.Message.ChatID, r.Tail(1))
	return r.ReplyT(ctx, locale.MsgRulesSet, nil)
}

func (d *Dispatcher) handleShowRules(ctx context.Context, r *Request) error {
	rules := d.chats.Rules(r.Message.ChatID)
	if rules == "" {
		return r.ReplyT(ctx, locale.MsgRulesNone, nil)
	}
	return r.ReplyT(ctx, locale.MsgRulesShow, map[string]any{"Rules": rules})
}

func (d *Dispatcher) handleAntiSpam(ctx context.Context, r *Request) error {
	if d.chats.ToggleAntiSpam(r.Message.ChatID) {
		return r.ReplyT(ctx, locale.MsgAntiSpamOn, nil)
	}
	return r.ReplyT(ctx, locale.MsgAntiSpamOff, nil)
}

func (d *Dispatcher) handleLinkFilter(ctx context.Context, r *Request) error {
	if d.chats.ToggleLinkFilter(r.Message.ChatID) {
		return r.ReplyT(ctx, locale.MsgLinkFilterOn, nil)
	}
	return r.ReplyT(ctx, locale.MsgLinkFilterOff, nil)
}

// handleClean deletes the chat's latest messages, 10 unless a count is given
func (d *Dispatcher) handleClean(ctx context.Context, r *Request) error {
	count := defaultCleanCount
	if len(r.Args) > 0 {
		if n, err := strconv.Atoi(r.Args[0]); err == nil && n > 0 {
			count = n
		}
	}
	if count > d.cfg.MaxCleanMessages {
		return r.ReplyT(ctx, locale.MsgCleanTooMany, map[string]any{"Max": d.cfg.MaxCleanMessages})
	}

	deleted, err := d.client.DeleteRecentMessages(ctx, r.Message.ChatID, count)
	if err != nil {
		return r.Fail(ctx, locale.MsgCleanFailed, err)
	}
	return r.ReplyT(ctx, locale.MsgCleanOK, map[string]any{"Count": deleted})
}
