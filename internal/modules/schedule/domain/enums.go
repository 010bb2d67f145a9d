//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// ItemKind selects the queue a scheduled item lives in
// ENUM(message,reminder)
type ItemKind string
