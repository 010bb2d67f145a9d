//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// AuthMethod is how the bot account gets linked to the chat platform
// ENUM(qr,pairing_code,token)
type AuthMethod string
