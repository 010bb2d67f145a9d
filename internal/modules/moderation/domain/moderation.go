package domain

import "time"

// RateWindow is one member's command budget for the current window
type RateWindow struct {
	Count   int       `json:"count"`
	ResetAt time.Time `json:"reset_at"`
}

// WarnResult is the outcome of a single warning
type WarnResult struct {
	Count     int
	Threshold int
	// Reached is set when this warning hit the threshold; the counter has
	// already been cleared and the member should be removed.
	Reached bool
}
