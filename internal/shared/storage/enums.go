//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package storage

// Kind selects where process state is persisted
// ENUM(memory,file,sqlite)
type Kind string
