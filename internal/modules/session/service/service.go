package service

import (
	"crypto/rand"
	"log/slog"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/reshetovitsme/group-moderator-bot/internal/modules/session/domain"
)

const pairingAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Service tracks whether the bot is linked and which code links it
type Service struct {
	status domain.Status
	mu     sync.RWMutex
	now    func() time.Time
}

// New creates a session service; phone is only used by the pairing-code method
func New(method domain.AuthMethod, phone string, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	s := &Service{
		status: domain.Status{
			Method:      method,
			PhoneNumber: normalizePhone(phone),
			StartedAt:   now(),
		},
		now: now,
	}
	if method == domain.AuthMethodPairingCode {
		s.NewPairingCode()
	}
	return s
}

// SetReady marks the client connected (or disconnected)
func (s *Service) SetReady(ready bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status.Ready = ready
	if ready {
		s.status.ReadyAt = s.now()
		s.status.QRCode = ""
	}
}

// SetQRCode stores the latest QR payload pushed by the client
func (s *Service) SetQRCode(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status.QRCode = code
}

// NewPairingCode generates and stores a fresh code in the XXXX-XXXX format
func (s *Service) NewPairingCode() string {
	code := GeneratePairingCode()

	s.mu.Lock()
	s.status.PairingCode = code
	s.mu.Unlock()

	slog.Info("Pairing code generated", "code", code, "phone", s.status.PhoneNumber)
	return code
}

// Snapshot returns a copy of the current status
func (s *Service) Snapshot() domain.Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Uptime is the time since the service was created
func (s *Service) Uptime() time.Duration {
	return s.now().Sub(s.Snapshot().StartedAt)
}

// GeneratePairingCode returns 8 random characters from A-Z0-9 with a dash
// after the fourth one.
func GeneratePairingCode() string {
	var b strings.Builder
	max := big.NewInt(int64(len(pairingAlphabet)))
	for i := 0; i < 8; i++ {
		if i == 4 {
			b.WriteByte('-')
		}
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			n = big.NewInt(int64(time.Now().UnixNano() % int64(len(pairingAlphabet))))
		}
		b.WriteByte(pairingAlphabet[n.Int64()])
	}
	return b.String()
}

func normalizePhone(phone string) string {
	return strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '+' {
			return r
		}
		return -1
	}, phone)
}
