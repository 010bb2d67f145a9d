//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// Choice is a yes/no ballot
// ENUM(yes,no)
type Choice string
