package domain

import (
	"encoding/json"
	"time"
)

// ChatState is everything the bot remembers about one group chat
type ChatState struct {
	Rules          string               `json:"rules"`
	WelcomeMessage string               `json:"welcome_message"`
	AntiSpam       bool                 `json:"anti_spam"`
	LinkFilter     bool                 `json:"link_filter"`
	LastActivity   map[string]time.Time `json:"last_activity"`
	MutedUsers     map[string]time.Time `json:"muted_users"`
	Settings       Settings             `json:"settings"`
}

// Settings are feature switches that default to on
type Settings struct {
	WelcomeEnabled bool `json:"welcome_enabled"`
	RulesEnabled   bool `json:"rules_enabled"`
}

// NewChatState returns the state a chat gets on first touch
func NewChatState() *ChatState {
	return &ChatState{
		LastActivity: make(map[string]time.Time),
		MutedUsers:   make(map[string]time.Time),
		Settings: Settings{
			WelcomeEnabled: true,
			RulesEnabled:   true,
		},
	}
}

// Normalize fills maps that an older or hand-edited document left out
func (c *ChatState) Normalize() {
	if c.LastActivity == nil {
		c.LastActivity = make(map[string]time.Time)
	}
	if c.MutedUsers == nil {
		c.MutedUsers = make(map[string]time.Time)
	}
}

// UnmarshalJSON starts from the first-touch defaults so switches missing
// from a stored document stay on
func (c *ChatState) UnmarshalJSON(data []byte) error {
	type plain ChatState
	p := plain(*NewChatState())
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*c = ChatState(p)
	c.Normalize()
	return nil
}
