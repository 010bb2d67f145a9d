package domain

import (
	"math"
	"time"
)

// Votes is the yes/no tally of a poll
type Votes struct {
	Yes int `json:"yes"`
	No  int `json:"no"`
}

// Poll is a yes/no question; every voter votes at most once
type Poll struct {
	ID        string          `json:"id"`
	ChatID    string          `json:"chat_id"`
	Question  string          `json:"question"`
	Votes     Votes           `json:"votes"`
	Voters    map[string]bool `json:"voters"`
	CreatedAt time.Time       `json:"created_at"`
}

// Results is a read-only view of a poll's tally
type Results struct {
	Question   string
	Yes        int
	No         int
	Total      int
	YesPercent int
	NoPercent  int
}

// Tally computes the results; percentages round to the nearest integer
// and are 0 when nobody voted.
func (p *Poll) Tally() Results {
	r := Results{
		Question: p.Question,
		Yes:      p.Votes.Yes,
		No:       p.Votes.No,
		Total:    p.Votes.Yes + p.Votes.No,
	}
	if r.Total > 0 {
		r.YesPercent = percent(r.Yes, r.Total)
		r.NoPercent = percent(r.No, r.Total)
	}
	return r
}

func percent(part, total int) int {
	return int(math.Floor(float64(part)*100/float64(total) + 0.5))
}
