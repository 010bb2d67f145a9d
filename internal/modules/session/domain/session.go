package domain

import "time"

// Status is the link state of the bot account as reported by the transport
type Status struct {
	Method      AuthMethod `json:"method"`
	Ready       bool       `json:"ready"`
	QRCode      string     `json:"qr_code,omitempty"`
	PairingCode string     `json:"pairing_code,omitempty"`
	PhoneNumber string     `json:"phone_number,omitempty"`
	StartedAt   time.Time  `json:"started_at"`
	ReadyAt     time.Time  `json:"ready_at,omitempty"`
}

// LinkCode returns whichever credential the method displays to the operator
func (s Status) LinkCode() string {
	switch s.Method {
	case AuthMethodQr:
		return s.QRCode
	case AuthMethodPairingCode:
		return s.PairingCode
	default:
		return ""
	}
}
