package service

import (
	"context"
	"sync"

	"github.com/reshetovitsme/group-moderator-bot/internal/modules/command/domain"
	"github.com/reshetovitsme/group-moderator-bot/internal/shared/errors"
)

type sentMessage struct {
	chatID string
	text   string
	opts   domain.SendOptions
}

type membershipCall struct {
	op      string
	chatID  string
	members []string
}

// fakeClient is an in-memory chat platform
type fakeClient struct {
	mu sync.Mutex

	chats   map[string]*domain.Chat
	account domain.AccountInfo

	sent        []sentMessage
	deleted     []string
	pinned      []string
	membership  []membershipCall
	subject     string
	displayName string

	// failing operations by name, e.g. "promote"
	fail      map[string]error
	panicOn   string
	cleanable int
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		chats:     make(map[string]*domain.Chat),
		account:   domain.AccountInfo{ID: "bot", Name: "Moderator", Platform: "test"},
		fail:      make(map[string]error),
		cleanable: 100,
	}
}

func (f *fakeClient) check(op string) error {
	if f.panicOn == op {
		panic("fake client: " + op)
	}
	return f.fail[op]
}

func (f *fakeClient) SendMessage(_ context.Context, chatID, text string, opts domain.SendOptions) error {
	if err := f.check("send"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMessage{chatID: chatID, text: text, opts: opts})
	return nil
}

func (f *fakeClient) GetChat(_ context.Context, chatID string) (*domain.Chat, error) {
	if err := f.check("chat"); err != nil {
		return nil, err
	}
	chat, ok := f.chats[chatID]
	if !ok {
		return &domain.Chat{ID: chatID}, nil
	}
	return chat, nil
}

func (f *fakeClient) GetContact(_ context.Context, memberID string) (*domain.Contact, error) {
	if err := f.check("contact"); err != nil {
		return nil, err
	}
	return &domain.Contact{ID: memberID, Number: memberID}, nil
}

func (f *fakeClient) ResolveMember(_ context.Context, _ string, number string) (string, error) {
	if err := f.check("resolve"); err != nil {
		return "", err
	}
	return number, nil
}

func (f *fakeClient) AccountInfo(context.Context) (*domain.AccountInfo, error) {
	info := f.account
	return &info, nil
}

func (f *fakeClient) membershipOp(op, chatID string, members []string) error {
	if err := f.check(op); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range members {
		if err := f.fail[op+":"+m]; err != nil {
			return err
		}
	}
	f.membership = append(f.membership, membershipCall{op: op, chatID: chatID, members: members})
	return nil
}

func (f *fakeClient) PromoteParticipants(_ context.Context, chatID string, members []string) error {
	return f.membershipOp("promote", chatID, members)
}

func (f *fakeClient) DemoteParticipants(_ context.Context, chatID string, members []string) error {
	return f.membershipOp("demote", chatID, members)
}

func (f *fakeClient) RemoveParticipants(_ context.Context, chatID string, members []string) error {
	return f.membershipOp("remove", chatID, members)
}

func (f *fakeClient) DeleteMessage(_ context.Context, _ string, messageID string) error {
	if err := f.check("delete"); err != nil {
		return err
	}
	f.deleted = append(f.deleted, messageID)
	return nil
}

func (f *fakeClient) PinMessage(_ context.Context, _ string, messageID string) error {
	if err := f.check("pin"); err != nil {
		return err
	}
	f.pinned = append(f.pinned, messageID)
	return nil
}

func (f *fakeClient) UnpinMessage(context.Context, string, string) error {
	return f.check("unpin")
}

func (f *fakeClient) DeleteRecentMessages(_ context.Context, _ string, n int) (int, error) {
	if err := f.check("clean"); err != nil {
		return 0, err
	}
	return min(n, f.cleanable), nil
}

func (f *fakeClient) SetSubject(_ context.Context, _ string, subject string) error {
	if err := f.check("subject"); err != nil {
		return err
	}
	f.subject = subject
	return nil
}

func (f *fakeClient) SetDescription(context.Context, string, string) error {
	return f.check("description")
}

func (f *fakeClient) SetPicture(context.Context, string, domain.Media) error {
	return f.check("picture")
}

func (f *fakeClient) SetDisplayName(_ context.Context, name string) error {
	if err := f.check("name"); err != nil {
		return err
	}
	f.displayName = name
	return nil
}

func (f *fakeClient) SetProfilePicture(context.Context, domain.Media) error {
	if err := f.check("profile"); err != nil {
		return err
	}
	return errors.ErrUnsupported
}

func (f *fakeClient) lastText() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.sent) == 0 {
		return ""
	}
	return f.sent[len(f.sent)-1].text
}
