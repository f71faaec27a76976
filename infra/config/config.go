package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/CrestNiraj12/tootview/infra/auth"
)

// Config holds application-level configuration.
type Config struct {
	InstanceURL string `validate:"required,url,startswith=https://"` // e.g. "https://fedibird.com"
	Token       string // Bearer token; takes precedence over TokenPath
	TokenPath   string `validate:"required_without=Token"`
	Reaction    string `validate:"required"` // Emoji sent by the react key
	Limit       int    `validate:"min=1,max=40"`
	LogFile     string // Empty disables logging
	LogLevel    string `validate:"oneof=debug info warn error"`
	MetricsAddr string `validate:"omitempty,hostname_port"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads configuration from environment variables, after merging a .env
// file when one exists. Variables already set in the environment win.
//
//	TOOTVIEW_ENV_FILE      dotenv file to merge (default: ".env")
//	TOOTVIEW_INSTANCE      instance URL, https only (default: "https://fedibird.com")
//	TOOTVIEW_TOKEN         bearer token
//	TOOTVIEW_TOKEN_FILE    token file, used when TOOTVIEW_TOKEN is empty (default: ~/.config/tootview/token)
//	TOOTVIEW_REACTION      emoji for the react key (default: "👍")
//	TOOTVIEW_LIMIT         page size, 1..40 (default: 20)
//	TOOTVIEW_LOG_FILE      log output file (default: none)
//	TOOTVIEW_LOG_LEVEL     debug, info, warn or error (default: "info")
//	TOOTVIEW_METRICS_ADDR  host:port serving /metrics (default: none)
func Load() (Config, error) {
	envFile := os.Getenv("TOOTVIEW_ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
	}

	instance := getenv("TOOTVIEW_INSTANCE", "https://fedibird.com")
	parsed, err := url.Parse(instance)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return Config{}, fmt.Errorf("invalid TOOTVIEW_INSTANCE: must be an absolute URL")
	}
	if parsed.Scheme != "https" {
		return Config{}, fmt.Errorf("invalid TOOTVIEW_INSTANCE: only https is allowed")
	}

	tokenPath := os.Getenv("TOOTVIEW_TOKEN_FILE")
	if tokenPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("cannot determine home directory: %w", err)
		}
		tokenPath = filepath.Join(home, ".config", "tootview", "token")
	}

	limit := 20
	if raw := os.Getenv("TOOTVIEW_LIMIT"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid TOOTVIEW_LIMIT: %w", err)
		}
	}

	cfg := Config{
		InstanceURL: strings.TrimRight(parsed.String(), "/"),
		Token:       strings.TrimSpace(os.Getenv("TOOTVIEW_TOKEN")),
		TokenPath:   tokenPath,
		Reaction:    getenv("TOOTVIEW_REACTION", "👍"),
		Limit:       limit,
		LogFile:     os.Getenv("TOOTVIEW_LOG_FILE"),
		LogLevel:    strings.ToLower(getenv("TOOTVIEW_LOG_LEVEL", "info")),
		MetricsAddr: os.Getenv("TOOTVIEW_METRICS_ADDR"),
	}
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// TokenProvider returns where the access token comes from: the inline token
// when set, otherwise the token file.
func (c Config) TokenProvider() auth.TokenProvider {
	if c.Token != "" {
		return auth.StaticToken(c.Token)
	}
	return auth.NewFileTokenProvider(c.TokenPath)
}

// SlogLevel maps LogLevel to a slog.Level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
