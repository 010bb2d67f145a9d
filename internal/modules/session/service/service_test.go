package service

import (
	"regexp"
	"testing"
	"time"

	"github.com/reshetovitsme/group-moderator-bot/internal/modules/session/domain"
)

var pairingPattern = regexp.MustCompile(`^[A-Z0-9]{4}-[A-Z0-9]{4}$`)

func TestGeneratePairingCode_Format(t *testing.T) {
	for i := 0; i < 50; i++ {
		if code := GeneratePairingCode(); !pairingPattern.MatchString(code) {
			t.Fatalf("Unexpected pairing code format: %q", code)
		}
	}
}

func TestNew_PairingMethodStartsWithCode(t *testing.T) {
	s := New(domain.AuthMethodPairingCode, "+44 (20) 7946-0958", nil)

	st := s.Snapshot()
	if !pairingPattern.MatchString(st.PairingCode) {
		t.Errorf("Expected a pairing code, got %q", st.PairingCode)
	}
	if st.PhoneNumber != "+442079460958" {
		t.Errorf("PhoneNumber = %q", st.PhoneNumber)
	}
	if st.LinkCode() != st.PairingCode {
		t.Error("Expected pairing code to be the link code")
	}
}

func TestSetReady_ClearsQRCode(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s := New(domain.AuthMethodQr, "", func() time.Time { return now })
	s.SetQRCode("2@abc")
	if s.Snapshot().LinkCode() != "2@abc" {
		t.Fatal("Expected QR code to be served before ready")
	}

	now = now.Add(90 * time.Second)
	s.SetReady(true)

	st := s.Snapshot()
	if !st.Ready || st.QRCode != "" || !st.ReadyAt.Equal(now) {
		t.Errorf("Unexpected status after ready: %+v", st)
	}
	if s.Uptime() != 90*time.Second {
		t.Errorf("Uptime = %v", s.Uptime())
	}
}
