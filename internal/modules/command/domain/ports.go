package domain

import "context"

// Client is the chat platform the bot is connected to. Every call may fail
// with a platform error such as missing permissions.
type Client interface {
	SendMessage(ctx context.Context, chatID, text string, opts SendOptions) error
	GetChat(ctx context.Context, chatID string) (*Chat, error)
	GetContact(ctx context.Context, memberID string) (*Contact, error)
	// ResolveMember turns a user-typed number into a member id
	ResolveMember(ctx context.Context, chatID, number string) (string, error)
	AccountInfo(ctx context.Context) (*AccountInfo, error)

	PromoteParticipants(ctx context.Context, chatID string, members []string) error
	DemoteParticipants(ctx context.Context, chatID string, members []string) error
	RemoveParticipants(ctx context.Context, chatID string, members []string) error

	DeleteMessage(ctx context.Context, chatID, messageID string) error
	PinMessage(ctx context.Context, chatID, messageID string) error
	UnpinMessage(ctx context.Context, chatID, messageID string) error
	// DeleteRecentMessages deletes up to n of the chat's most recent messages
	// and returns how many were deleted
	DeleteRecentMessages(ctx context.Context, chatID string, n int) (int, error)

	SetSubject(ctx context.Context, chatID, subject string) error
	SetDescription(ctx context.Context, chatID, description string) error
	SetPicture(ctx context.Context, chatID string, media Media) error
	SetDisplayName(ctx context.Context, name string) error
	SetProfilePicture(ctx context.Context, media Media) error
}
