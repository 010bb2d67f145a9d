package domain

import (
	"strings"
	"time"
)

// Message is an inbound chat message as seen by the dispatcher
type Message struct {
	ID         string
	ChatID     string
	SenderID   string
	SenderName string
	IsGroup    bool
	Text       string
	Quoted     *QuotedMessage
	Media      *Media
	Timestamp  time.Time
}

// QuotedMessage is the message a command replies to
type QuotedMessage struct {
	ID       string
	AuthorID string
	Text     string
}

// Media is an attachment; FileID is opaque to everything but the client
type Media struct {
	FileID   string
	MimeType string
}

// JoinEvent reports members that joined a group
type JoinEvent struct {
	ChatID    string
	MemberIDs []string
}

// Chat is a snapshot of a conversation and its participants
type Chat struct {
	ID           string
	Title        string
	Description  string
	IsGroup      bool
	Participants []Participant
	CreatedAt    time.Time
}

// Participant is a member of a group chat
type Participant struct {
	ID      string
	IsAdmin bool
	// IsOwner is set for the group creator, who is an admin as well
	IsOwner bool
}

// IsAdmin reports whether member is an admin of the chat
func (c *Chat) IsAdmin(member string) bool {
	for _, p := range c.Participants {
		if p.ID == member {
			return p.IsAdmin || p.IsOwner
		}
	}
	return false
}

// Contact is a member's public identity
type Contact struct {
	ID     string
	Name   string
	Number string
}

// Mention is the text used to mention the contact in a message
func (c *Contact) Mention() string {
	if c.Number != "" {
		return "@" + c.Number
	}
	if c.Name != "" {
		return "@" + strings.ReplaceAll(c.Name, " ", "_")
	}
	return "@" + c.ID
}

// AccountInfo describes the account the bot runs as
type AccountInfo struct {
	ID       string
	Name     string
	Platform string
}

// SendOptions modify an outgoing message
type SendOptions struct {
	// ReplyTo quotes the given message id
	ReplyTo string
	// Mentions are member ids whose mention text appears in the message
	Mentions []string
}
