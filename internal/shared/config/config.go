package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	sessionDomain "github.com/reshetovitsme/group-moderator-bot/internal/modules/session/domain"
	"github.com/reshetovitsme/group-moderator-bot/internal/shared/errors"
	"github.com/reshetovitsme/group-moderator-bot/internal/shared/storage"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// DefaultAdminCommands are the commands only group admins may run unless
// admin_commands overrides them.
var DefaultAdminCommands = []string{"promote", "demote", "kick", "cleanup", "rules", "clean"}

type Config struct {
	TelegramBotToken string `koanf:"telegram_bot_token"`
	TelegramAPIURL   string `koanf:"telegram_api_url"`
	AppEnv           AppEnv `koanf:"app_env"`
	LogLevel         string `koanf:"log_level"`
	HTTPPort         string `koanf:"http_port"`

	StorageBackend storage.Kind `koanf:"storage_backend"`
	StoragePath    string       `koanf:"storage_path"`

	CommandPrefix string   `koanf:"command_prefix"`
	Language      string   `koanf:"language"`
	Timezone      string   `koanf:"timezone"`
	AdminCommands []string `koanf:"-"`

	ScanInterval        int `koanf:"scan_interval"`
	FlushInterval       int `koanf:"flush_interval"`
	MaxWarnings         int `koanf:"max_warnings"`
	RateLimitWindow     int `koanf:"rate_limit_window"`
	RateLimitMax        int `koanf:"rate_limit_max"`
	CleanupAfterHours   int `koanf:"cleanup_after_hours"`
	InactiveAfterHours  int `koanf:"inactive_after_hours"`
	DefaultMuteMinutes  int `koanf:"default_mute_minutes"`
	MaxCleanMessages    int `koanf:"max_clean_messages"`
	MaxDeliveryAttempts int `koanf:"max_delivery_attempts"`

	AuthMethod   sessionDomain.AuthMethod `koanf:"auth_method"`
	PairingPhone string                   `koanf:"pairing_phone"`

	location *time.Location
}

var defaults = map[string]any{
	"telegram_api_url":      "https://api.telegram.org",
	"app_env":               "production",
	"log_level":             "info",
	"http_port":             "3000",
	"storage_backend":       "file",
	"storage_path":          "./bot_data",
	"command_prefix":        "!",
	"language":              "en",
	"timezone":              "Local",
	"scan_interval":         60,
	"flush_interval":        300,
	"max_warnings":          3,
	"rate_limit_window":     60,
	"rate_limit_max":        10,
	"cleanup_after_hours":   48,
	"inactive_after_hours":  24,
	"default_mute_minutes":  60,
	"max_clean_messages":    50,
	"max_delivery_attempts": 3,
	"auth_method":           "token",
}

// Load reads config.{yaml,yml,json,toml} when present, then .env and the
// process environment (environment wins), then fills defaults.
// The bot token is checked by Validate so offline tools can load config too.
func Load() (*Config, error) {
	k := koanf.New(".")

	configFiles := []string{
		"config.yaml",
		"config.yml",
		"config.json",
		"config.toml",
	}

	configFile, found := lo.Find(configFiles, func(file string) bool {
		_, err := os.Stat(file)
		return err == nil
	})

	if found {
		var parser koanf.Parser
		ext := filepath.Ext(configFile)

		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		case ".toml":
			parser = toml.Parser()
		default:
			return nil, oops.Errorf("unsupported config file extension: %s", ext)
		}

		if err := k.Load(file.Provider(configFile), parser); err != nil {
			return nil, oops.With("config_file", configFile).Wrap(err)
		}
	}

	// .env is optional; real environment variables are never overwritten by it
	_ = godotenv.Load()

	if err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ToLower(s)
	}), nil); err != nil {
		return nil, oops.With("context", "loading environment variables").Wrap(err)
	}

	for key, value := range defaults {
		if !k.Exists(key) {
			k.Set(key, value)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.With("context", "unmarshaling config").Wrap(err)
	}

	if appEnv, err := ParseAppEnv(k.String("app_env")); err == nil {
		cfg.AppEnv = appEnv
	} else {
		cfg.AppEnv = AppEnvProduction
	}

	backend, err := storage.ParseKind(k.String("storage_backend"))
	if err != nil {
		return nil, oops.With("storage_backend", k.String("storage_backend")).Wrap(err)
	}
	cfg.StorageBackend = backend

	method, err := sessionDomain.ParseAuthMethod(k.String("auth_method"))
	if err != nil {
		return nil, oops.With("auth_method", k.String("auth_method")).Wrap(err)
	}
	cfg.AuthMethod = method

	cfg.AdminCommands = DefaultAdminCommands
	if raw := k.Get("admin_commands"); raw != nil {
		switch v := raw.(type) {
		case string:
			cfg.AdminCommands = ParseList(v)
		case []interface{}:
			cfg.AdminCommands = lo.FilterMap(v, func(item interface{}, _ int) (string, bool) {
				s, ok := item.(string)
				s = strings.ToLower(strings.TrimSpace(s))
				return s, ok && s != ""
			})
		}
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, oops.With("timezone", cfg.Timezone).Wrap(err)
	}
	cfg.location = loc

	return &cfg, nil
}

// Validate checks the fields the running bot cannot start without
func (c *Config) Validate() error {
	if c.TelegramBotToken == "" {
		return errors.ErrMissingBotToken
	}
	if c.CommandPrefix == "" {
		return oops.Errorf("command_prefix must not be empty")
	}
	if c.RateLimitMax < 1 || c.RateLimitWindow < 1 {
		return oops.With("rate_limit_max", c.RateLimitMax, "rate_limit_window", c.RateLimitWindow).
			Errorf("rate_limit_max and rate_limit_window must be at least 1")
	}
	return nil
}

// ParseList parses a comma-separated list, lower-casing and dropping blanks
func ParseList(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	return lo.FilterMap(parts, func(part string, _ int) (string, bool) {
		part = strings.ToLower(strings.TrimSpace(part))
		return part, part != ""
	})
}

// Location is the time zone HH:MM schedules are interpreted in
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.Local
	}
	return c.location
}

func (c *Config) ScanEvery() time.Duration {
	return time.Duration(c.ScanInterval) * time.Second
}

func (c *Config) FlushEvery() time.Duration {
	return time.Duration(c.FlushInterval) * time.Second
}

func (c *Config) RateWindow() time.Duration {
	return time.Duration(c.RateLimitWindow) * time.Second
}

func (c *Config) CleanupAfter() time.Duration {
	return time.Duration(c.CleanupAfterHours) * time.Hour
}

func (c *Config) InactiveAfter() time.Duration {
	return time.Duration(c.InactiveAfterHours) * time.Hour
}

// SQLitePath is the database file used by the sqlite backend
func (c *Config) SQLitePath() string {
	return filepath.Join(c.StoragePath, "state.db")
}
