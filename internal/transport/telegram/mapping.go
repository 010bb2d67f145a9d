package telegram

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf16"

	"github.com/go-telegram/bot/models"
	"github.com/reshetovitsme/group-moderator-bot/internal/modules/command/domain"
	"github.com/samber/lo"
)

type mentionTarget struct {
	userID int64
	text   string
}

// mentionEntities links every target's mention text to the user. Offsets and
// lengths are in UTF-16 code units as the Bot API requires.
func mentionEntities(text string, targets []mentionTarget) []models.MessageEntity {
	entities := make([]models.MessageEntity, 0, len(targets))
	from := 0
	for _, t := range targets {
		if t.text == "" {
			continue
		}
		idx := strings.Index(text[from:], t.text)
		if idx < 0 {
			continue
		}
		idx += from
		entities = append(entities, models.MessageEntity{
			Type:   "text_mention",
			Offset: utf16Len(text[:idx]),
			Length: utf16Len(t.text),
			User:   &models.User{ID: t.userID},
		})
		from = idx + len(t.text)
	}
	return entities
}

func utf16Len(s string) int {
	return len(utf16.Encode([]rune(s)))
}

func displayName(u models.User) string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	switch {
	case name != "":
		return name
	case u.Username != "":
		return u.Username
	default:
		return formatID(u.ID)
	}
}

// sortParticipants orders the owner first, then admins, then by id
func sortParticipants(ps []domain.Participant) {
	rank := func(p domain.Participant) int {
		switch {
		case p.IsOwner:
			return 0
		case p.IsAdmin:
			return 1
		default:
			return 2
		}
	}
	slices.SortFunc(ps, func(a, b domain.Participant) int {
		if c := cmp.Compare(rank(a), rank(b)); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

func isGroup(chat models.Chat) bool {
	return chat.Type == "group" || chat.Type == "supergroup"
}

// toMessage maps a Telegram message to the platform-neutral form. Captions
// count as text so media with a command caption can be commands.
func toMessage(msg *models.Message) *domain.Message {
	text := msg.Text
	if text == "" {
		text = msg.Caption
	}

	m := &domain.Message{
		ID:        strconv.Itoa(msg.ID),
		ChatID:    formatID(msg.Chat.ID),
		IsGroup:   isGroup(msg.Chat),
		Text:      text,
		Media:     mediaOf(msg),
		Timestamp: time.Unix(int64(msg.Date), 0),
	}
	if msg.From != nil {
		m.SenderID = formatID(msg.From.ID)
		m.SenderName = displayName(*msg.From)
	}

	if reply := msg.ReplyToMessage; reply != nil {
		quoted := &domain.QuotedMessage{
			ID:   strconv.Itoa(reply.ID),
			Text: lo.CoalesceOrEmpty(reply.Text, reply.Caption),
		}
		if reply.From != nil {
			quoted.AuthorID = formatID(reply.From.ID)
		}
		m.Quoted = quoted
	}
	return m
}

// mediaOf returns the attached image, picking the largest photo size
func mediaOf(msg *models.Message) *domain.Media {
	if len(msg.Photo) > 0 {
		photo := msg.Photo[len(msg.Photo)-1]
		return &domain.Media{FileID: photo.FileID, MimeType: "image/jpeg"}
	}
	if msg.Document != nil && strings.HasPrefix(msg.Document.MimeType, "image/") {
		return &domain.Media{FileID: msg.Document.FileID, MimeType: msg.Document.MimeType}
	}
	return nil
}

// toJoinEvent maps a service message announcing new human members
func toJoinEvent(msg *models.Message) *domain.JoinEvent {
	members := lo.FilterMap(msg.NewChatMembers, func(u models.User, _ int) (string, bool) {
		return formatID(u.ID), !u.IsBot
	})
	if len(members) == 0 {
		return nil
	}
	return &domain.JoinEvent{ChatID: formatID(msg.Chat.ID), MemberIDs: members}
}
