package config

import (
	"reflect"
	"testing"
	"time"

	sessionDomain "github.com/reshetovitsme/group-moderator-bot/internal/modules/session/domain"
	"github.com/reshetovitsme/group-moderator-bot/internal/shared/storage"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	if cfg.CommandPrefix != "!" {
		t.Errorf("CommandPrefix = %q, want !", cfg.CommandPrefix)
	}
	if cfg.MaxWarnings != 3 || cfg.RateLimitMax != 10 || cfg.RateWindow() != time.Minute {
		t.Errorf("Unexpected moderation defaults: %+v", cfg)
	}
	if cfg.CleanupAfter() != 48*time.Hour || cfg.InactiveAfter() != 24*time.Hour {
		t.Errorf("Unexpected inactivity defaults: %v / %v", cfg.CleanupAfter(), cfg.InactiveAfter())
	}
	if cfg.ScanEvery() != time.Minute {
		t.Errorf("ScanEvery = %v, want 1m", cfg.ScanEvery())
	}
	if cfg.StorageBackend != storage.KindFile {
		t.Errorf("StorageBackend = %q, want file", cfg.StorageBackend)
	}
	if cfg.AuthMethod != sessionDomain.AuthMethodToken {
		t.Errorf("AuthMethod = %q, want token", cfg.AuthMethod)
	}
	if !reflect.DeepEqual(cfg.AdminCommands, DefaultAdminCommands) {
		t.Errorf("AdminCommands = %v", cfg.AdminCommands)
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("COMMAND_PREFIX", ".")
	t.Setenv("RATE_LIMIT_MAX", "5")
	t.Setenv("STORAGE_BACKEND", "SQLite")
	t.Setenv("ADMIN_COMMANDS", "Kick, warn,,mute")
	t.Setenv("AUTH_METHOD", "pairing_code")
	t.Setenv("APP_ENV", "nonsense")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.CommandPrefix != "." {
		t.Errorf("CommandPrefix = %q, want .", cfg.CommandPrefix)
	}
	if cfg.RateLimitMax != 5 {
		t.Errorf("RateLimitMax = %d, want 5", cfg.RateLimitMax)
	}
	if cfg.StorageBackend != storage.KindSqlite {
		t.Errorf("StorageBackend = %q, want sqlite", cfg.StorageBackend)
	}
	if want := []string{"kick", "warn", "mute"}; !reflect.DeepEqual(cfg.AdminCommands, want) {
		t.Errorf("AdminCommands = %v, want %v", cfg.AdminCommands, want)
	}
	if cfg.AuthMethod != sessionDomain.AuthMethodPairingCode {
		t.Errorf("AuthMethod = %q", cfg.AuthMethod)
	}
	if cfg.AppEnv != AppEnvProduction {
		t.Errorf("AppEnv = %q, want fallback to production", cfg.AppEnv)
	}
}

func TestLoad_InvalidBackend(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "mongo")
	if _, err := Load(); err == nil {
		t.Fatal("Expected error for unknown storage backend")
	}
}

func TestValidate_MissingToken(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("Expected missing token error")
	}
}

func TestValidate_RateLimit(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")

	for _, env := range []string{"RATE_LIMIT_MAX", "RATE_LIMIT_WINDOW"} {
		t.Run(env, func(t *testing.T) {
			t.Setenv(env, "0")
			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if err := cfg.Validate(); err == nil {
				t.Errorf("Expected %s=0 to be rejected", env)
			}
		})
	}
}
