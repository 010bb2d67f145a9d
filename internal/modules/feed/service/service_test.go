package service

import (
	"strings"
	"testing"
	"time"

	scheduleDomain "github.com/reshetovitsme/group-moderator-bot/internal/modules/schedule/domain"
)

type fakeSource map[string][]scheduleDomain.Item

func (f fakeSource) PendingForChat(chatID string) []scheduleDomain.Item {
	return f[chatID]
}

func TestGenerateFeed(t *testing.T) {
	created := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	src := fakeSource{"g1": {
		{ID: "a", Kind: scheduleDomain.ItemKindMessage, ChatID: "g1", Text: "Meeting <now>", FireAt: created.Add(time.Hour), CreatedAt: created},
		{ID: "b", Kind: scheduleDomain.ItemKindReminder, ChatID: "g1", Text: strings.Repeat("ب", 120), FireAt: created.Add(2 * time.Hour), CreatedAt: created.Add(time.Minute), Attempts: 1},
	}}
	s := New(src, func() time.Time { return created.Add(time.Hour) })

	feed := s.GenerateFeed("g1", "http://localhost:3000")
	if len(feed.Items) != 2 {
		t.Fatalf("Items = %d, want 2", len(feed.Items))
	}
	if feed.Link.Href != "http://localhost:3000/feed/g1" {
		t.Errorf("Link = %s", feed.Link.Href)
	}
	if !feed.Updated.Equal(created.Add(time.Minute)) {
		t.Errorf("Updated = %v", feed.Updated)
	}
	if feed.Items[0].Content != "<p>Meeting &lt;now&gt;</p>" {
		t.Errorf("Content = %q", feed.Items[0].Content)
	}
	if n := len([]rune(feed.Items[1].Title)); n != 103 {
		t.Errorf("Title rune length = %d, want 103", n)
	}
	if !strings.Contains(feed.Items[1].Description, "1 failed attempts") {
		t.Errorf("Description = %q", feed.Items[1].Description)
	}

	rss, err := feed.ToRss()
	if err != nil {
		t.Fatalf("ToRss failed: %v", err)
	}
	if !strings.Contains(rss, "<rss") {
		t.Errorf("Unexpected RSS output")
	}
}

func TestGenerateFeed_Empty(t *testing.T) {
	s := New(fakeSource{}, nil)
	if feed := s.GenerateFeed("none", ""); len(feed.Items) != 0 {
		t.Errorf("Items = %d, want 0", len(feed.Items))
	}
}
