package errors

import "errors"

var (
	ErrMissingBotToken   = errors.New("TELEGRAM_BOT_TOKEN environment variable is required")
	ErrChatNotGroup      = errors.New("chat is not a group")
	ErrPollNotFound      = errors.New("poll not found")
	ErrAlreadyVoted      = errors.New("voter already voted")
	ErrInvalidClock      = errors.New("invalid clock time, expected HH:MM")
	ErrItemNotFound      = errors.New("scheduled item not found")
	ErrUnsupported       = errors.New("operation not supported by the chat client")
	ErrQueueClosed       = errors.New("event loop is closed")
	ErrUnknownBackend    = errors.New("unknown storage backend")
	ErrMemberNotResolved = errors.New("target member could not be resolved")
)
