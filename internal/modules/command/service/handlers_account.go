package service

import (
	"context"
	"fmt"
	"strings"

	scheduleDomain "github.com/reshetovitsme/group-moderator-bot/internal/modules/schedule/domain"
	"github.com/reshetovitsme/group-moderator-bot/internal/shared/locale"
)

func (d *Dispatcher) handleHelp(ctx context.Context, r *Request) error {
	var b strings.Builder
	b.WriteString(d.tr.T(locale.MsgHelpHeader))
	b.WriteString("\n")
	for _, cmd := range d.table {
		keywords := make([]string, 0, len(cmd.Aliases)+1)
		for _, kw := range cmd.Keywords() {
			keywords = append(keywords, d.cfg.Prefix+kw)
		}
		line := strings.Join(keywords, " / ")
		if cmd.Usage != "" {
			line += " " + cmd.Usage
		}
		fmt.Fprintf(&b, "\n• %s - %s", line, d.tr.T(locale.HelpKey(cmd.Name)))
	}
	return r.Reply(ctx, b.String())
}

func (d *Dispatcher) handleStatus(ctx context.Context, r *Request) error {
	data := d.accountData(ctx)
	data["Scheduled"] = d.schedule.Count(scheduleDomain.ItemKindMessage)
	data["Reminders"] = d.schedule.Count(scheduleDomain.ItemKindReminder)
	data["Polls"] = d.polls.Count()
	return r.ReplyT(ctx, locale.MsgStatus, data)
}

func (d *Dispatcher) handleInfo(ctx context.Context, r *Request) error {
	st := d.session.Snapshot()
	data := d.accountData(ctx)
	data["Method"] = st.Method.String()
	data["Code"] = orNotSet(d, st.PairingCode)
	data["Phone"] = orNotSet(d, st.PhoneNumber)
	data["Minutes"] = int(d.session.Uptime().Minutes())
	return r.ReplyT(ctx, locale.MsgInfo, data)
}

func (d *Dispatcher) handleNewCode(ctx context.Context, r *Request) error {
	code := d.session.NewPairingCode()
	return r.ReplyT(ctx, locale.MsgNewCode, map[string]any{"Code": code})
}

// accountData is the template data shared by status and info
func (d *Dispatcher) accountData(ctx context.Context) map[string]any {
	data := map[string]any{
		"State":    d.tr.T(locale.MsgOffline),
		"Name":     d.tr.T(locale.MsgNotSet),
		"ID":       d.tr.T(locale.MsgNotSet),
		"Platform": d.tr.T(locale.MsgNotSet),
	}
	if d.session.Snapshot().Ready {
		data["State"] = d.tr.T(locale.MsgConnected)
	}
	if info, err := d.client.AccountInfo(ctx); err == nil && info != nil {
		data["Name"] = orNotSet(d, info.Name)
		data["ID"] = orNotSet(d, info.ID)
		data["Platform"] = orNotSet(d, info.Platform)
	}
	return data
}

func orNotSet(d *Dispatcher, s string) string {
	if s == "" {
		return d.tr.T(locale.MsgNotSet)
	}
	return s
}

func (d *Dispatcher) handleChangeName(ctx context.Context, r *Request) error {
	name := r.Tail(1)
	if err := d.client.SetDisplayName(ctx, name); err != nil {
		return r.Fail(ctx, locale.MsgChangeNameFailed, err)
	}
	return r.ReplyT(ctx, locale.MsgChangeNameOK, map[string]any{"Name": name})
}

func (d *Dispatcher) handleChangeProfilePic(ctx context.Context, r *Request) error {
	if err := d.client.SetProfilePicture(ctx, *r.Message.Media); err != nil {
		return r.Fail(ctx, locale.MsgProfilePicFailed, err)
	}
	return r.ReplyT(ctx, locale.MsgProfilePicOK, nil)
}

// handleWeather answers with canned data; there is no weather provider
func (d *Dispatcher) handleWeather(ctx context.Context, r *Request) error {
	return r.ReplyT(ctx, locale.MsgWeather, map[string]any{"City": r.Tail(1)})
}

// handleTranslate echoes the quoted text tagged with the target language
func (d *Dispatcher) handleTranslate(ctx context.Context, r *Request) error {
	return r.ReplyT(ctx, locale.MsgTranslate, map[string]any{
		"Lang": r.Args[0],
		"Text": r.Message.Quoted.Text,
	})
}

var rockChoices = []string{locale.MsgRockRock, locale.MsgRockPaper, locale.MsgRockScissors}

// handleRock plays rock for the user against a random pick
func (d *Dispatcher) handleRock(ctx context.Context, r *Request) error {
	botChoice := rockChoices[d.rand(len(rockChoices))]

	result := locale.MsgRockLose
	switch botChoice {
	case locale.MsgRockRock:
		result = locale.MsgRockDraw
	case locale.MsgRockScissors:
		result = locale.MsgRockWin
	}

	return r.ReplyT(ctx, locale.MsgRock, map[string]any{
		"User":   d.tr.T(locale.MsgRockRock),
		"Bot":    d.tr.T(botChoice),
		"Result": d.tr.T(result),
	})
}
