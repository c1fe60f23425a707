// Package config loads settings from an optional .env file, an optional
// YAML file and the environment, in that order of increasing precedence.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultListenAddr      = "127.0.0.1:8080"
	DefaultStaticDir       = "./static/main"
	DefaultHistoryDriver   = "file"
	DefaultHistoryPath     = "history.json"
	DefaultHistoryCapacity = 100
	MaxHistoryCapacity     = 500
	DefaultCompoundsPath   = "custom_compounds.json"
	DefaultLocale          = "zh"
	DefaultRateLimit       = 5
	DefaultRateBurst       = 10
)

type Config struct {
	ListenAddr string `yaml:"listen_addr"`
	StaticDir  string `yaml:"static_dir"`

	HistoryDriver   string `yaml:"history_driver"`
	HistoryPath     string `yaml:"history_path"`
	HistoryCapacity int    `yaml:"history_capacity"`
	CompoundsPath   string `yaml:"compounds_path"`
	Locale          string `yaml:"locale"`

	TokenKey             string `yaml:"token_key"`
	OperatorPasswordHash string `yaml:"operator_password_hash"`
	SecureCookie         bool   `yaml:"secure_cookie"`

	RateLimit float64 `yaml:"rate_limit"`
	RateBurst int     `yaml:"rate_burst"`
}

// Load reads .env (if present), then CONFIG_PATH or ./config.yaml (if
// present), then environment overrides, and fills in defaults.
func Load() (Config, error) {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded .env")
	}

	var cfg Config
	configPath := "config.yaml"
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		configPath = envPath
	}
	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", configPath, err)
		}
		log.Printf("Loaded config from %s", configPath)
	}

	envOverride(&cfg.ListenAddr, "LISTEN_ADDR")
	envOverride(&cfg.StaticDir, "STATIC_DIR")
	envOverride(&cfg.HistoryDriver, "HISTORY_DRIVER")
	envOverride(&cfg.HistoryPath, "HISTORY_PATH")
	envOverride(&cfg.CompoundsPath, "COMPOUNDS_PATH")
	envOverride(&cfg.Locale, "LOCALE")
	envOverride(&cfg.TokenKey, "TOKEN_KEY")
	envOverride(&cfg.OperatorPasswordHash, "OPERATOR_PASSWORD_HASH")
	envOverrideBool(&cfg.SecureCookie, "SECURE_COOKIE")
	if err := envOverrideInt(&cfg.HistoryCapacity, "HISTORY_CAPACITY"); err != nil {
		return Config{}, err
	}
	if err := envOverrideInt(&cfg.RateBurst, "RATE_BURST"); err != nil {
		return Config{}, err
	}
	if err := envOverrideFloat(&cfg.RateLimit, "RATE_LIMIT"); err != nil {
		return Config{}, err
	}

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = DefaultListenAddr
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = DefaultStaticDir
	}
	if cfg.HistoryDriver == "" {
		cfg.HistoryDriver = DefaultHistoryDriver
	}
	if cfg.HistoryPath == "" {
		cfg.HistoryPath = DefaultHistoryPath
	}
	switch {
	case cfg.HistoryCapacity <= 0:
		cfg.HistoryCapacity = DefaultHistoryCapacity
	case cfg.HistoryCapacity > MaxHistoryCapacity:
		log.Printf("history_capacity %d exceeds %d, clamping", cfg.HistoryCapacity, MaxHistoryCapacity)
		cfg.HistoryCapacity = MaxHistoryCapacity
	}
	if cfg.CompoundsPath == "" {
		cfg.CompoundsPath = DefaultCompoundsPath
	}
	if cfg.Locale == "" {
		cfg.Locale = DefaultLocale
	}
	if cfg.RateLimit == 0 {
		cfg.RateLimit = DefaultRateLimit
	}
	if cfg.RateBurst == 0 {
		cfg.RateBurst = DefaultRateBurst
	}

	cfg.HistoryDriver = strings.ToLower(cfg.HistoryDriver)
	if cfg.HistoryDriver != "file" && cfg.HistoryDriver != "sqlite" {
		return Config{}, fmt.Errorf("history_driver must be 'file' or 'sqlite', got %q", cfg.HistoryDriver)
	}
	cfg.Locale = strings.ToLower(cfg.Locale)
	if cfg.Locale != "zh" && cfg.Locale != "en" {
		return Config{}, fmt.Errorf("locale must be 'zh' or 'en', got %q", cfg.Locale)
	}
	if cfg.RateLimit < 0 || cfg.RateBurst < 1 {
		return Config{}, fmt.Errorf("invalid rate limit %v/%d", cfg.RateLimit, cfg.RateBurst)
	}
	if cfg.OperatorPasswordHash != "" && cfg.TokenKey == "" {
		return Config{}, fmt.Errorf("token_key is required when operator_password_hash is set")
	}
	return cfg, nil
}

func envOverride(field *string, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		*field = val
	}
}

func envOverrideInt(field *int, envKey string) error {
	if val := os.Getenv(envKey); val != "" {
		parsed, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid %s '%s': %w", envKey, val, err)
		}
		*field = parsed
	}
	return nil
}

func envOverrideFloat(field *float64, envKey string) error {
	if val := os.Getenv(envKey); val != "" {
		parsed, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return fmt.Errorf("invalid %s '%s': %w", envKey, val, err)
		}
		*field = parsed
	}
	return nil
}

func envOverrideBool(field *bool, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		*field = strings.EqualFold(val, "true") || val == "1"
	}
}
