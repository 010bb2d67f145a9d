package telegram

import (
	"context"
	"testing"

	"github.com/go-telegram/bot/models"
	"github.com/reshetovitsme/group-moderator-bot/internal/modules/command/domain"
	"github.com/reshetovitsme/group-moderator-bot/internal/shared/eventloop"
)

func TestMentionEntities_UTF16Offsets(t *testing.T) {
	text := "📢 تنبيه:\n@Ali_Hassan @Bob"
	got := mentionEntities(text, []mentionTarget{
		{userID: 1, text: "@Ali_Hassan"},
		{userID: 2, text: "@Bob"},
		{userID: 3, text: "@Missing"},
	})

	if len(got) != 2 {
		t.Fatalf("Expected 2 entities, got %d", len(got))
	}
	// 📢 is a surrogate pair: 2 units, then " تنبيه:\n" is 8
	if got[0].Offset != 10 || got[0].Length != 11 || got[0].User.ID != 1 {
		t.Errorf("Unexpected first entity %+v", got[0])
	}
	if got[1].Offset != 22 || got[1].Length != 4 || got[1].User.ID != 2 {
		t.Errorf("Unexpected second entity %+v", got[1])
	}
	if got[0].Type != "text_mention" {
		t.Errorf("Type = %q", got[0].Type)
	}
}

func TestMentionEntities_RepeatedText(t *testing.T) {
	got := mentionEntities("@Sam @Sam", []mentionTarget{
		{userID: 1, text: "@Sam"},
		{userID: 2, text: "@Sam"},
	})
	if len(got) != 2 || got[0].Offset != 0 || got[1].Offset != 5 {
		t.Errorf("Unexpected entities %+v", got)
	}
}

func TestToMessage(t *testing.T) {
	msg := &models.Message{
		ID:      77,
		Date:    1700000000,
		Chat:    models.Chat{ID: -100123, Type: "supergroup"},
		From:    &models.User{ID: 42, FirstName: "Ada", LastName: "L"},
		Caption: "!changegrouppic",
		Photo: []models.PhotoSize{
			{FileID: "small"},
			{FileID: "large"},
		},
		ReplyToMessage: &models.Message{
			ID:   70,
			From: &models.User{ID: 9},
			Text: "quoted",
		},
	}

	m := toMessage(msg)
	if m.ID != "77" || m.ChatID != "-100123" || m.SenderID != "42" || !m.IsGroup {
		t.Errorf("Unexpected message %+v", m)
	}
	if m.Text != "!changegrouppic" {
		t.Errorf("Caption not used as text: %q", m.Text)
	}
	if m.SenderName != "Ada L" {
		t.Errorf("SenderName = %q", m.SenderName)
	}
	if m.Media == nil || m.Media.FileID != "large" {
		t.Errorf("Media = %+v, want the largest photo", m.Media)
	}
	if m.Quoted == nil || m.Quoted.ID != "70" || m.Quoted.AuthorID != "9" || m.Quoted.Text != "quoted" {
		t.Errorf("Quoted = %+v", m.Quoted)
	}
	if m.Timestamp.Unix() != 1700000000 {
		t.Errorf("Timestamp = %v", m.Timestamp)
	}
}

func TestToMessage_PrivateChatAndDocument(t *testing.T) {
	m := toMessage(&models.Message{
		ID:       1,
		Chat:     models.Chat{ID: 5, Type: "private"},
		From:     &models.User{ID: 5, Username: "neo"},
		Document: &models.Document{FileID: "doc", MimeType: "application/pdf"},
	})
	if m.IsGroup {
		t.Error("Private chat mapped as group")
	}
	if m.Media != nil {
		t.Error("Non-image document must not count as media")
	}
	if m.SenderName != "neo" {
		t.Errorf("SenderName = %q", m.SenderName)
	}
}

func TestToJoinEvent(t *testing.T) {
	ev := toJoinEvent(&models.Message{
		Chat: models.Chat{ID: -1, Type: "group"},
		NewChatMembers: []models.User{
			{ID: 10, FirstName: "New"},
			{ID: 11, IsBot: true},
		},
	})
	if ev == nil || ev.ChatID != "-1" || len(ev.MemberIDs) != 1 || ev.MemberIDs[0] != "10" {
		t.Fatalf("Unexpected event %+v", ev)
	}

	if toJoinEvent(&models.Message{Chat: models.Chat{ID: -1}}) != nil {
		t.Error("Message without joins produced an event")
	}
}

func TestSortParticipants(t *testing.T) {
	ps := []domain.Participant{
		{ID: "3"},
		{ID: "2", IsAdmin: true},
		{ID: "1"},
		{ID: "9", IsAdmin: true, IsOwner: true},
	}
	sortParticipants(ps)

	want := []string{"9", "2", "1", "3"}
	for i, p := range ps {
		if p.ID != want[i] {
			t.Fatalf("Order = %+v, want %v", ps, want)
		}
	}
}

func TestAdminOf(t *testing.T) {
	if _, _, ok := adminOf(models.ChatMember{}); ok {
		t.Error("Plain member reported as admin")
	}
}

type fakeDispatcher struct {
	messages []*domain.Message
	joins    []*domain.JoinEvent
}

func (f *fakeDispatcher) HandleMessage(_ context.Context, msg *domain.Message) {
	f.messages = append(f.messages, msg)
}

func (f *fakeDispatcher) HandleJoin(_ context.Context, ev *domain.JoinEvent) {
	f.joins = append(f.joins, ev)
}

type inlineLoop struct{ names []string }

func (l *inlineLoop) Submit(ctx context.Context, name string, task eventloop.Task) error {
	l.names = append(l.names, name)
	task(ctx)
	return nil
}

func TestHandleUpdate(t *testing.T) {
	client := NewClient()
	d := &fakeDispatcher{}
	loop := &inlineLoop{}
	h := New(client, d, loop)
	ctx := context.Background()

	group := models.Chat{ID: -100, Type: "supergroup"}
	h.HandleUpdate(ctx, nil, &models.Update{Message: &models.Message{
		ID: 1, Chat: group, From: &models.User{ID: 7, FirstName: "Ann"}, Text: "!help",
	}})
	h.HandleUpdate(ctx, nil, &models.Update{Message: &models.Message{
		ID: 2, Chat: group, From: &models.User{ID: 7}, NewChatMembers: []models.User{{ID: 8, FirstName: "Ben"}},
	}})
	h.HandleUpdate(ctx, nil, &models.Update{Message: &models.Message{
		ID: 3, Chat: group, From: &models.User{ID: 7}, Sticker: &models.Sticker{FileID: "s"},
	}})
	h.HandleUpdate(ctx, nil, &models.Update{Message: &models.Message{
		ID: 4, Chat: group, From: &models.User{ID: 7}, Photo: []models.PhotoSize{{FileID: "p"}},
	}})
	h.HandleUpdate(ctx, nil, &models.Update{Message: &models.Message{
		ID: 5, Chat: group, Text: "anonymous",
	}})
	h.HandleUpdate(ctx, nil, &models.Update{})

	if len(d.messages) != 3 || d.messages[0].Text != "!help" {
		t.Fatalf("Messages = %+v", d.messages)
	}
	// sticker and uncaptioned photo reach the dispatcher for enforcement
	if d.messages[1].ID != "3" || d.messages[1].Text != "" || d.messages[2].ID != "4" || d.messages[2].Media == nil {
		t.Errorf("Media messages = %+v %+v", d.messages[1], d.messages[2])
	}
	if len(d.joins) != 1 || d.joins[0].MemberIDs[0] != "8" {
		t.Errorf("Joins = %+v", d.joins)
	}

	contact, err := client.GetContact(ctx, "8")
	if err != nil || contact.Name != "Ben" {
		t.Errorf("Joined member not in roster: %+v %v", contact, err)
	}
	if ids := client.recent[-100]; len(ids) != 5 {
		t.Errorf("Recent ids = %v, want 5", ids)
	}
}

func TestMentionTargets_SkipsUsernames(t *testing.T) {
	client := NewClient()
	client.Observe(&models.Message{
		ID:   1,
		Chat: models.Chat{ID: -1, Type: "group"},
		From: &models.User{ID: 5, FirstName: "Mary Ann"},
	})
	client.Observe(&models.Message{
		ID:   2,
		Chat: models.Chat{ID: -1, Type: "group"},
		From: &models.User{ID: 6, FirstName: "Joe", Username: "joe"},
	})

	targets := client.mentionTargets([]string{"5", "6", "x"})
	if len(targets) != 1 || targets[0].userID != 5 || targets[0].text != "@Mary_Ann" {
		t.Errorf("Targets = %+v", targets)
	}
}
