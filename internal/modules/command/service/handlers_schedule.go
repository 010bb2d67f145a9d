package service

import (
	"context"
	stderrors "errors"

	pollDomain "github.com/reshetovitsme/group-moderator-bot/internal/modules/poll/domain"
	scheduleDomain "github.com/reshetovitsme/group-moderator-bot/internal/modules/schedule/domain"
	"github.com/reshetovitsme/group-moderator-bot/internal/shared/errors"
	"github.com/reshetovitsme/group-moderator-bot/internal/shared/locale"
)

func (d *Dispatcher) handleSchedule(ctx context.Context, r *Request) error {
	return d.scheduleItem(ctx, r, scheduleDomain.ItemKindMessage, locale.MsgScheduled)
}

func (d *Dispatcher) handleRemind(ctx context.Context, r *Request) error {
	return d.scheduleItem(ctx, r, scheduleDomain.ItemKindReminder, locale.MsgReminderSet)
}

// scheduleItem queues "<HH:MM> <text...>" for this chat
func (d *Dispatcher) scheduleItem(ctx context.Context, r *Request, kind scheduleDomain.ItemKind, okID string) error {
	clock := r.Args[0]
	_, err := d.schedule.Schedule(kind, r.Message.ChatID, clock, r.Tail(2), d.now())
	if stderrors.Is(err, errors.ErrInvalidClock) {
		return r.ReplyT(ctx, locale.MsgInvalidTime, nil)
	}
	if err != nil {
		return err
	}
	return r.ReplyT(ctx, okID, map[string]any{"Time": clock})
}

func (d *Dispatcher) handlePoll(ctx context.Context, r *Request) error {
	p := d.polls.Create(r.Message.ChatID, r.Tail(1), d.now())
	return r.ReplyT(ctx, locale.MsgPollCreated, map[string]any{
		"Question": p.Question,
		"Prefix":   d.cfg.Prefix,
		"ID":       p.ID,
	})
}

func (d *Dispatcher) handleVoteYes(ctx context.Context, r *Request) error {
	return d.vote(ctx, r, pollDomain.ChoiceYes, locale.MsgVoteYes)
}

func (d *Dispatcher) handleVoteNo(ctx context.Context, r *Request) error {
	return d.vote(ctx, r, pollDomain.ChoiceNo, locale.MsgVoteNo)
}

// vote records one ballot; unknown poll ids get no reply
func (d *Dispatcher) vote(ctx context.Context, r *Request, choice pollDomain.Choice, okID string) error {
	_, err := d.polls.Vote(r.Args[0], r.Message.SenderID, choice)
	switch {
	case stderrors.Is(err, errors.ErrPollNotFound):
		return nil
	case stderrors.Is(err, errors.ErrAlreadyVoted):
		return r.ReplyT(ctx, locale.MsgAlreadyVoted, nil)
	case err != nil:
		return err
	}
	return r.ReplyT(ctx, okID, nil)
}

func (d *Dispatcher) handleResults(ctx context.Context, r *Request) error {
	res, err := d.polls.Results(r.Args[0])
	if stderrors.Is(err, errors.ErrPollNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return r.ReplyT(ctx, locale.MsgResults, map[string]any{
		"Question":   res.Question,
		"Yes":        res.Yes,
		"No":         res.No,
		"YesPercent": res.YesPercent,
		"NoPercent":  res.NoPercent,
		"Total":      res.Total,
	})
}
