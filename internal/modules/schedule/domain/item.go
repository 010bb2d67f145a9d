package domain

import "time"

// Item is a pending scheduled message or reminder
type Item struct {
	ID        string    `json:"id"`
	Kind      ItemKind  `json:"kind"`
	ChatID    string    `json:"chat_id"`
	Text      string    `json:"text"`
	FireAt    time.Time `json:"fire_at"`
	Attempts  int       `json:"attempts"`
	CreatedAt time.Time `json:"created_at"`
}

// IsDue reports whether the item should fire at now
func (i Item) IsDue(now time.Time) bool {
	return !now.Before(i.FireAt)
}

// Clock is a time of day parsed from HH:MM
type Clock struct {
	Hour   int
	Minute int
}
