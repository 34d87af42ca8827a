// Package config loads bot settings from .env, an optional YAML file and
// the environment, in that order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/AlexYaroshenko/tgwire/internal/store"
	"github.com/AlexYaroshenko/tgwire/internal/telegram"
)

type Config struct {
	Telegram TelegramConfig `yaml:"telegram"`
	Store    StoreConfig    `yaml:"store"`
	Web      WebConfig      `yaml:"web"`
	Log      LogConfig      `yaml:"log"`
}

type TelegramConfig struct {
	Token       string        `yaml:"token"`
	APIURL      string        `yaml:"api_url"`
	PollTimeout time.Duration `yaml:"poll_timeout"`
	// AdminChatIDs receive membership notifications. Comma-separated ids
	// or @usernames.
	AdminChatIDs string `yaml:"admin_chat_ids"`
}

type StoreConfig struct {
	Driver      string `yaml:"driver"`
	BoltPath    string `yaml:"bolt_path"`
	DatabaseURL string `yaml:"database_url"`
	TablePrefix string `yaml:"table_prefix"`
}

type WebConfig struct {
	Port          string `yaml:"port"`
	WebhookURL    string `yaml:"webhook_url"`
	WebhookSecret string `yaml:"webhook_secret"`
	KeepAliveURL  string `yaml:"keepalive_url"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Telegram: TelegramConfig{
			APIURL:      telegram.DefaultAPIURL,
			PollTimeout: 30 * time.Second,
		},
		Store: StoreConfig{
			Driver:   store.DriverMemory,
			BoltPath: "tgwire.db",
		},
		Web: WebConfig{Port: "8080"},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads .env from the working directory if there is one, then the
// YAML file at path (skipped when path is empty), then the environment.
// The result is not validated; see Validate.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	strs := map[string]*string{
		"TELEGRAM_BOT_TOKEN": &c.Telegram.Token,
		"TELEGRAM_API_URL":   &c.Telegram.APIURL,
		"TELEGRAM_CHAT_IDS":  &c.Telegram.AdminChatIDs,
		"STORE_DRIVER":       &c.Store.Driver,
		"BOLT_PATH":          &c.Store.BoltPath,
		"DATABASE_URL":       &c.Store.DatabaseURL,
		"DB_TABLE_PREFIX":    &c.Store.TablePrefix,
		"PORT":               &c.Web.Port,
		"WEBHOOK_URL":        &c.Web.WebhookURL,
		"WEBHOOK_SECRET":     &c.Web.WebhookSecret,
		"KEEPALIVE_URL":      &c.Web.KeepAliveURL,
		"LOG_LEVEL":          &c.Log.Level,
	}
	for key, dst := range strs {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	if v := os.Getenv("POLL_TIMEOUT"); v != "" {
		d, err := parseSeconds(v)
		if err != nil {
			return fmt.Errorf("config: POLL_TIMEOUT: %w", err)
		}
		c.Telegram.PollTimeout = d
	}
	return nil
}

// parseSeconds accepts a Go duration ("45s") or a bare number of seconds.
func parseSeconds(v string) (time.Duration, error) {
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	return time.ParseDuration(v)
}

var secretPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,256}$`)

// Validate checks the settings needed to talk to Telegram and open the
// configured store.
func (c *Config) Validate() error {
	if c.Telegram.Token == "" {
		return errors.New("config: telegram token not configured (set TELEGRAM_BOT_TOKEN)")
	}
	if c.Telegram.PollTimeout < 0 {
		return fmt.Errorf("config: negative poll timeout %s", c.Telegram.PollTimeout)
	}
	if _, err := c.AdminChats(); err != nil {
		return err
	}

	switch c.Store.Driver {
	case store.DriverMemory:
	case store.DriverBolt:
		if c.Store.BoltPath == "" {
			return errors.New("config: bolt store needs a path (set BOLT_PATH)")
		}
	case store.DriverPostgres:
		if c.Store.DatabaseURL == "" {
			return errors.New("config: postgres store needs a url (set DATABASE_URL)")
		}
	default:
		return fmt.Errorf("config: unknown store driver %q (valid: memory, bolt, postgres)", c.Store.Driver)
	}

	if _, err := strconv.Atoi(c.Web.Port); err != nil {
		return fmt.Errorf("config: invalid port %q", c.Web.Port)
	}
	if c.Web.WebhookSecret != "" && !secretPattern.MatchString(c.Web.WebhookSecret) {
		return errors.New("config: webhook secret must be 1-256 characters of A-Z, a-z, 0-9, _ and -")
	}
	return nil
}

// AdminChats parses the admin chat list.
func (c *Config) AdminChats() ([]telegram.ChatID, error) {
	if c.Telegram.AdminChatIDs == "" {
		return nil, nil
	}
	ids, err := telegram.ParseChatIDs(c.Telegram.AdminChatIDs)
	if err != nil {
		return nil, fmt.Errorf("config: admin chat ids: %w", err)
	}
	return ids, nil
}

func (c *Config) StoreOptions() store.Options {
	return store.Options{
		Driver:      c.Store.Driver,
		BoltPath:    c.Store.BoltPath,
		DatabaseURL: c.Store.DatabaseURL,
		TablePrefix: c.Store.TablePrefix,
	}
}
