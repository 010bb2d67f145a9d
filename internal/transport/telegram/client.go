package telegram

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strconv"
	"sync"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/reshetovitsme/group-moderator-bot/internal/modules/command/domain"
	"github.com/reshetovitsme/group-moderator-bot/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// recentLimit is how many message ids per chat are kept for clean
const recentLimit = 200

var _ domain.Client = (*Client)(nil)

type rosterEntry struct {
	name     string
	username string
	lastSeen time.Time
}

// Client implements the chat client port on the Telegram Bot API. Telegram
// does not list group members to bots, so the client keeps a roster of the
// members it has seen together with the latest message ids of every chat.
type Client struct {
	bot *bot.Bot

	mu     sync.Mutex
	roster map[int64]map[int64]rosterEntry
	recent map[int64][]int
	users  map[int64]rosterEntry
	me     *models.User
}

// NewClient creates a client adapter; SetBot must be called before use
func NewClient() *Client {
	return &Client{
		roster: make(map[int64]map[int64]rosterEntry),
		recent: make(map[int64][]int),
		users:  make(map[int64]rosterEntry),
	}
}

// SetBot sets the bot the client talks through
func (c *Client) SetBot(b *bot.Bot) {
	c.bot = b
}

// Observe records the sender and the message id of an inbound message
func (c *Client) Observe(msg *models.Message) {
	if msg == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	ids := append(c.recent[msg.Chat.ID], msg.ID)
	if len(ids) > recentLimit {
		ids = ids[len(ids)-recentLimit:]
	}
	c.recent[msg.Chat.ID] = ids

	if msg.From != nil {
		c.remember(msg.Chat.ID, *msg.From, time.Unix(int64(msg.Date), 0))
	}
	for _, u := range msg.NewChatMembers {
		c.remember(msg.Chat.ID, u, time.Unix(int64(msg.Date), 0))
	}
	if msg.LeftChatMember != nil {
		c.forget(msg.Chat.ID, msg.LeftChatMember.ID)
	}
}

func (c *Client) remember(chatID int64, u models.User, seen time.Time) {
	if u.IsBot {
		return
	}
	entry := rosterEntry{name: displayName(u), username: u.Username, lastSeen: seen}
	members, ok := c.roster[chatID]
	if !ok {
		members = make(map[int64]rosterEntry)
		c.roster[chatID] = members
	}
	members[u.ID] = entry
	c.users[u.ID] = entry
}

func (c *Client) forget(chatID, userID int64) {
	delete(c.roster[chatID], userID)
}

// SendMessage sends text, turning mentions of members without a username
// into text_mention entities
func (c *Client) SendMessage(ctx context.Context, chatID, text string, opts domain.SendOptions) error {
	id, err := parseID(chatID)
	if err != nil {
		return err
	}

	params := &bot.SendMessageParams{
		ChatID: id,
		Text:   text,
	}
	if opts.ReplyTo != "" {
		if replyTo, err := strconv.Atoi(opts.ReplyTo); err == nil {
			params.ReplyParameters = &models.ReplyParameters{MessageID: replyTo}
		}
	}
	if len(opts.Mentions) > 0 {
		params.Entities = mentionEntities(text, c.mentionTargets(opts.Mentions))
	}

	sent, err := c.bot.SendMessage(ctx, params)
	if err != nil {
		return oops.With("chat_id", chatID).Wrap(err)
	}
	c.Observe(sent)
	return nil
}

// SendText posts a plain message, used for scheduled deliveries
func (c *Client) SendText(ctx context.Context, chatID, text string) error {
	return c.SendMessage(ctx, chatID, text, domain.SendOptions{})
}

func (c *Client) mentionTargets(members []string) []mentionTarget {
	c.mu.Lock()
	defer c.mu.Unlock()

	return lo.FilterMap(members, func(member string, _ int) (mentionTarget, bool) {
		id, err := strconv.ParseInt(member, 10, 64)
		if err != nil {
			return mentionTarget{}, false
		}
		entry, ok := c.users[id]
		if !ok || entry.username != "" {
			return mentionTarget{}, false
		}
		contact := domain.Contact{ID: member, Name: entry.name}
		return mentionTarget{userID: id, text: contact.Mention()}, true
	})
}

// GetChat combines the chat info, its administrators and the roster
func (c *Client) GetChat(ctx context.Context, chatID string) (*domain.Chat, error) {
	id, err := parseID(chatID)
	if err != nil {
		return nil, err
	}

	info, err := c.bot.GetChat(ctx, &bot.GetChatParams{ChatID: id})
	if err != nil {
		return nil, oops.With("chat_id", chatID).Wrap(err)
	}

	chat := &domain.Chat{
		ID:          chatID,
		Title:       info.Title,
		Description: info.Description,
		IsGroup:     info.Type == "group" || info.Type == "supergroup",
	}
	if !chat.IsGroup {
		return chat, nil
	}

	admins, err := c.bot.GetChatAdministrators(ctx, &bot.GetChatAdministratorsParams{ChatID: id})
	if err != nil {
		return nil, oops.With("chat_id", chatID).Wrap(err)
	}

	participants := make(map[int64]domain.Participant)
	for _, m := range admins {
		userID, owner, ok := adminOf(m)
		if !ok {
			continue
		}
		participants[userID] = domain.Participant{ID: formatID(userID), IsAdmin: true, IsOwner: owner}
	}

	c.mu.Lock()
	for userID := range c.roster[id] {
		if _, ok := participants[userID]; !ok {
			participants[userID] = domain.Participant{ID: formatID(userID)}
		}
	}
	c.mu.Unlock()

	chat.Participants = lo.Values(participants)
	sortParticipants(chat.Participants)
	return chat, nil
}

// adminOf extracts the user of an owner or administrator entry
func adminOf(m models.ChatMember) (userID int64, owner bool, ok bool) {
	switch {
	case m.Owner != nil:
		return m.Owner.User.ID, true, true
	case m.Administrator != nil:
		return m.Administrator.User.ID, false, true
	default:
		return 0, false, false
	}
}

// GetContact returns what the roster knows about the member
func (c *Client) GetContact(_ context.Context, memberID string) (*domain.Contact, error) {
	id, err := parseID(memberID)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	entry, ok := c.users[id]
	c.mu.Unlock()
	if !ok {
		return &domain.Contact{ID: memberID}, nil
	}
	return &domain.Contact{ID: memberID, Name: entry.name, Number: entry.username}, nil
}

// ResolveMember accepts a numeric user id that belongs to the chat.
// Telegram does not expose phone numbers to bots.
func (c *Client) ResolveMember(ctx context.Context, chatID, number string) (string, error) {
	id, err := parseID(chatID)
	if err != nil {
		return "", err
	}
	userID, err := strconv.ParseInt(number, 10, 64)
	if err != nil {
		return "", oops.With("number", number).Wrap(errors.ErrMemberNotResolved)
	}
	if _, err := c.bot.GetChatMember(ctx, &bot.GetChatMemberParams{ChatID: id, UserID: userID}); err != nil {
		return "", oops.With("chat_id", chatID, "number", number, "cause", err.Error()).Wrap(errors.ErrMemberNotResolved)
	}
	return number, nil
}

func (c *Client) AccountInfo(ctx context.Context) (*domain.AccountInfo, error) {
	me, err := c.self(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.AccountInfo{ID: formatID(me.ID), Name: displayName(me), Platform: "telegram"}, nil
}

func (c *Client) self(ctx context.Context) (models.User, error) {
	c.mu.Lock()
	if c.me != nil {
		me := *c.me
		c.mu.Unlock()
		return me, nil
	}
	c.mu.Unlock()

	me, err := c.bot.GetMe(ctx)
	if err != nil {
		return models.User{}, oops.With("context", "get bot account").Wrap(err)
	}
	c.mu.Lock()
	c.me = me
	c.mu.Unlock()
	return *me, nil
}

func (c *Client) PromoteParticipants(ctx context.Context, chatID string, members []string) error {
	return c.eachMember(chatID, members, func(chat, user int64) error {
		_, err := c.bot.PromoteChatMember(ctx, &bot.PromoteChatMemberParams{
			ChatID:             chat,
			UserID:             user,
			CanChangeInfo:      true,
			CanDeleteMessages:  true,
			CanInviteUsers:     true,
			CanRestrictMembers: true,
			CanPinMessages:     true,
		})
		return err
	})
}

// DemoteParticipants promotes with no rights, which Telegram treats as a demotion
func (c *Client) DemoteParticipants(ctx context.Context, chatID string, members []string) error {
	return c.eachMember(chatID, members, func(chat, user int64) error {
		_, err := c.bot.PromoteChatMember(ctx, &bot.PromoteChatMemberParams{ChatID: chat, UserID: user})
		return err
	})
}

// RemoveParticipants bans and immediately unbans so the member can rejoin
func (c *Client) RemoveParticipants(ctx context.Context, chatID string, members []string) error {
	return c.eachMember(chatID, members, func(chat, user int64) error {
		if _, err := c.bot.BanChatMember(ctx, &bot.BanChatMemberParams{ChatID: chat, UserID: user}); err != nil {
			return err
		}
		if _, err := c.bot.UnbanChatMember(ctx, &bot.UnbanChatMemberParams{ChatID: chat, UserID: user, OnlyIfBanned: true}); err != nil {
			slog.Warn("Failed to unban removed member", "chat_id", chat, "user_id", user, "error", err)
		}
		c.mu.Lock()
		c.forget(chat, user)
		c.mu.Unlock()
		return nil
	})
}

func (c *Client) eachMember(chatID string, members []string, fn func(chat, user int64) error) error {
	chat, err := parseID(chatID)
	if err != nil {
		return err
	}
	for _, member := range members {
		user, err := parseID(member)
		if err != nil {
			return err
		}
		if err := fn(chat, user); err != nil {
			return oops.With("chat_id", chatID, "member_id", member).Wrap(err)
		}
	}
	return nil
}

func (c *Client) DeleteMessage(ctx context.Context, chatID, messageID string) error {
	chat, msg, err := parseMessageRef(chatID, messageID)
	if err != nil {
		return err
	}
	if _, err := c.bot.DeleteMessage(ctx, &bot.DeleteMessageParams{ChatID: chat, MessageID: msg}); err != nil {
		return oops.With("chat_id", chatID, "message_id", messageID).Wrap(err)
	}
	c.dropRecent(chat, msg)
	return nil
}

func (c *Client) PinMessage(ctx context.Context, chatID, messageID string) error {
	chat, msg, err := parseMessageRef(chatID, messageID)
	if err != nil {
		return err
	}
	if _, err := c.bot.PinChatMessage(ctx, &bot.PinChatMessageParams{ChatID: chat, MessageID: msg}); err != nil {
		return oops.With("chat_id", chatID, "message_id", messageID).Wrap(err)
	}
	return nil
}

func (c *Client) UnpinMessage(ctx context.Context, chatID, messageID string) error {
	chat, msg, err := parseMessageRef(chatID, messageID)
	if err != nil {
		return err
	}
	if _, err := c.bot.UnpinChatMessage(ctx, &bot.UnpinChatMessageParams{ChatID: chat, MessageID: msg}); err != nil {
		return oops.With("chat_id", chatID, "message_id", messageID).Wrap(err)
	}
	return nil
}

// DeleteRecentMessages deletes up to n of the newest messages the client has
// seen in the chat and returns how many were deleted
func (c *Client) DeleteRecentMessages(ctx context.Context, chatID string, n int) (int, error) {
	chat, err := parseID(chatID)
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	ids := c.recent[chat]
	targets := make([]int, 0, n)
	for i := len(ids) - 1; i >= 0 && len(targets) < n; i-- {
		targets = append(targets, ids[i])
	}
	c.mu.Unlock()

	deleted := 0
	for _, msg := range targets {
		if _, err := c.bot.DeleteMessage(ctx, &bot.DeleteMessageParams{ChatID: chat, MessageID: msg}); err != nil {
			slog.Debug("Failed to delete message", "chat_id", chatID, "message_id", msg, "error", err)
			continue
		}
		c.dropRecent(chat, msg)
		deleted++
	}
	return deleted, nil
}

func (c *Client) dropRecent(chat int64, msg int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recent[chat] = lo.Without(c.recent[chat], msg)
}

func (c *Client) SetSubject(ctx context.Context, chatID, subject string) error {
	id, err := parseID(chatID)
	if err != nil {
		return err
	}
	if _, err := c.bot.SetChatTitle(ctx, &bot.SetChatTitleParams{ChatID: id, Title: subject}); err != nil {
		return oops.With("chat_id", chatID).Wrap(err)
	}
	return nil
}

func (c *Client) SetDescription(ctx context.Context, chatID, description string) error {
	id, err := parseID(chatID)
	if err != nil {
		return err
	}
	if _, err := c.bot.SetChatDescription(ctx, &bot.SetChatDescriptionParams{ChatID: id, Description: description}); err != nil {
		return oops.With("chat_id", chatID).Wrap(err)
	}
	return nil
}

// SetPicture re-uploads the attached image, setChatPhoto does not take file ids
func (c *Client) SetPicture(ctx context.Context, chatID string, media domain.Media) error {
	id, err := parseID(chatID)
	if err != nil {
		return err
	}

	data, name, err := c.download(ctx, media.FileID)
	if err != nil {
		return oops.With("chat_id", chatID, "file_id", media.FileID).Wrap(err)
	}

	_, err = c.bot.SetChatPhoto(ctx, &bot.SetChatPhotoParams{
		ChatID: id,
		Photo:  &models.InputFileUpload{Filename: name, Data: data},
	})
	data.Close()
	if err != nil {
		return oops.With("chat_id", chatID).Wrap(err)
	}
	return nil
}

func (c *Client) download(ctx context.Context, fileID string) (io.ReadCloser, string, error) {
	file, err := c.bot.GetFile(ctx, &bot.GetFileParams{FileID: fileID})
	if err != nil {
		return nil, "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.bot.FileDownloadLink(file), nil)
	if err != nil {
		return nil, "", err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, "", err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, "", oops.With("file_path", file.FilePath).Errorf("download failed: %s", resp.Status)
	}
	return resp.Body, path.Base(file.FilePath), nil
}

func (c *Client) SetDisplayName(ctx context.Context, name string) error {
	if _, err := c.bot.SetMyName(ctx, &bot.SetMyNameParams{Name: name}); err != nil {
		return oops.With("name", name).Wrap(err)
	}
	c.mu.Lock()
	if c.me != nil {
		c.me.FirstName = name
		c.me.LastName = ""
	}
	c.mu.Unlock()
	return nil
}

// SetProfilePicture is not available to bots; the photo is set in BotFather
func (c *Client) SetProfilePicture(context.Context, domain.Media) error {
	return errors.ErrUnsupported
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, oops.With("id", s).Wrap(err)
	}
	return id, nil
}

func parseMessageRef(chatID, messageID string) (int64, int, error) {
	chat, err := parseID(chatID)
	if err != nil {
		return 0, 0, err
	}
	msg, err := strconv.Atoi(messageID)
	if err != nil {
		return 0, 0, oops.With("message_id", messageID).Wrap(err)
	}
	return chat, msg, nil
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
