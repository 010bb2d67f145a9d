package service

import (
	"fmt"
	"html"
	"time"

	"github.com/gorilla/feeds"
	scheduleDomain "github.com/reshetovitsme/group-moderator-bot/internal/modules/schedule/domain"
	"github.com/samber/lo"
)

// PendingSource lists a chat's queued scheduled items
type PendingSource interface {
	PendingForChat(chatID string) []scheduleDomain.Item
}

// Service renders a chat's upcoming announcements as an RSS feed
type Service struct {
	source PendingSource
	now    func() time.Time
}

func New(source PendingSource, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{source: source, now: now}
}

// GenerateFeed builds the feed of pending scheduled messages and reminders
// for the chat. A chat with nothing queued gets an empty feed.
func (s *Service) GenerateFeed(chatID string, baseURL string) *feeds.Feed {
	items := s.source.PendingForChat(chatID)

	feed := &feeds.Feed{
		Title:       fmt.Sprintf("Chat %s - upcoming announcements", chatID),
		Link:        &feeds.Link{Href: fmt.Sprintf("%s/feed/%s", baseURL, chatID)},
		Description: "Scheduled messages and reminders waiting to be delivered",
		Created:     s.now(),
		Updated:     s.now(),
	}
	if len(items) > 0 {
		last := lo.MaxBy(items, func(a, b scheduleDomain.Item) bool {
			return a.CreatedAt.After(b.CreatedAt)
		})
		feed.Updated = last.CreatedAt
	}

	feed.Items = lo.Map(items, func(item scheduleDomain.Item, _ int) *feeds.Item {
		return itemToFeedItem(item, feed.Link.Href)
	})
	return feed
}

func itemToFeedItem(item scheduleDomain.Item, link string) *feeds.Item {
	description := fmt.Sprintf("%s due %s", item.Kind, item.FireAt.Format(time.RFC1123))
	if item.Attempts > 0 {
		description += fmt.Sprintf(" (%d failed attempts)", item.Attempts)
	}

	return &feeds.Item{
		Title:       truncate(item.Text, 100),
		Link:        &feeds.Link{Href: link + "#" + item.ID},
		Description: description,
		Content:     fmt.Sprintf("<p>%s</p>", html.EscapeString(item.Text)),
		Created:     item.CreatedAt,
		Updated:     item.FireAt,
		Id:          item.ID,
	}
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
