// Package config loads the bot settings from an optional YAML file, a
// .env file and the process environment, in that order of precedence
// from lowest to highest.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var ErrMissingToken = errors.New("config: bot token is required (TEAMLY_BOT_TOKEN)")

type Config struct {
	BotToken      string `yaml:"bot_token"`
	GatewayURL    string `yaml:"gateway_url"`
	APIURL        string `yaml:"api_url"`
	StatusAddress string `yaml:"status_address"`
	// StatusToken guards the status server. Empty leaves it open.
	StatusToken  string `yaml:"status_token"`
	Reconnect    bool   `yaml:"reconnect"`
	StrictErrors bool   `yaml:"strict_errors"`
	LogLevel     string `yaml:"log_level"`
	// NotifyChannelID is where the example bot announces members leaving.
	NotifyChannelID string `yaml:"notify_channel_id"`
}

type Options struct {
	// EnvFile is loaded with godotenv. Defaults to ".env"; a missing
	// default file is not an error.
	EnvFile string
	// File is an optional YAML file.
	File string
}

func Load(opts Options) (Config, error) {
	cfg := Config{}
	if opts.File != "" {
		data, err := os.ReadFile(opts.File)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", opts.File, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", opts.File, err)
		}
	}

	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		if opts.EnvFile != "" || !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", envFile, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if cfg.BotToken == "" {
		return Config{}, ErrMissingToken
	}
	return cfg, nil
}

func (cfg *Config) applyEnv() error {
	strs := map[string]*string{
		"BOT_TOKEN":             &cfg.BotToken,
		"TEAMLY_BOT_TOKEN":      &cfg.BotToken,
		"TEAMLY_GATEWAY_URL":    &cfg.GatewayURL,
		"TEAMLY_API_URL":        &cfg.APIURL,
		"TEAMLY_STATUS_ADDRESS": &cfg.StatusAddress,
		"TEAMLY_STATUS_TOKEN":   &cfg.StatusToken,
		"TEAMLY_LOG_LEVEL":      &cfg.LogLevel,
		"TEAMLY_NOTIFY_CHANNEL": &cfg.NotifyChannelID,
	}
	// BOT_TOKEN first so TEAMLY_BOT_TOKEN wins when both are set.
	for _, k := range []string{
		"BOT_TOKEN", "TEAMLY_BOT_TOKEN", "TEAMLY_GATEWAY_URL", "TEAMLY_API_URL",
		"TEAMLY_STATUS_ADDRESS", "TEAMLY_STATUS_TOKEN", "TEAMLY_LOG_LEVEL", "TEAMLY_NOTIFY_CHANNEL",
	} {
		if val, ok := os.LookupEnv(k); ok && val != "" {
			*strs[k] = val
		}
	}

	bools := map[string]*bool{
		"TEAMLY_RECONNECT":     &cfg.Reconnect,
		"TEAMLY_STRICT_ERRORS": &cfg.StrictErrors,
	}
	for k, v := range bools {
		val, ok := os.LookupEnv(k)
		if !ok || val == "" {
			continue
		}
		b, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("config: %s: %w", k, err)
		}
		*v = b
	}
	return nil
}

// Level parses LogLevel, falling back to info.
func (cfg Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(cfg.LogLevel))); err != nil {
		return slog.LevelInfo
	}
	return level
}
