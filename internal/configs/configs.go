package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	toml "github.com/pelletier/go-toml/v2"
)

type Config struct {
	AppHost                string `toml:"app_host"`
	AppPort                string `toml:"app_port"`
	DatabaseDSN            string `toml:"database_dsn"`
	AutoMigrate            bool   `toml:"auto_migrate"`
	RateLimit              int    `toml:"rate_limit_per_minute"`
	RedisEnabled           bool   `toml:"redis_enabled"`
	RedisHost              string `toml:"redis_host"`
	RedisPort              string `toml:"redis_port"`
	RedisKeyPrefix         string `toml:"redis_key_prefix"`
	ShutdownTimeoutSeconds int    `toml:"shutdown_timeout_seconds"`
	LogLevel               string `toml:"log_level"`
	CookieSecure           bool   `toml:"cookie_secure"`
	SessionMaxAgeSeconds   int    `toml:"session_max_age_seconds"`
}

func Default() Config {
	return Config{
		AppHost:                "127.0.0.1",
		AppPort:                "8080",
		DatabaseDSN:            "activities.db",
		AutoMigrate:            true,
		RateLimit:              120,
		RedisHost:              "127.0.0.1",
		RedisPort:              "6379",
		RedisKeyPrefix:         "activity_tracker:ratelimit",
		ShutdownTimeoutSeconds: 20,
		LogLevel:               "info",
		SessionMaxAgeSeconds:   60 * 60 * 24 * 7,
	}
}

// Load builds the configuration from defaults, then the optional TOML file at
// path, then environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := toml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) AppURL() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}

func (c Config) RedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

func applyEnv(cfg *Config) error {
	overrideString(&cfg.AppHost, "APP_HOST")
	overrideString(&cfg.AppPort, "APP_PORT")
	overrideString(&cfg.DatabaseDSN, "DATABASE_DSN")
	overrideString(&cfg.RedisHost, "REDIS_HOST")
	overrideString(&cfg.RedisPort, "REDIS_PORT")
	overrideString(&cfg.RedisKeyPrefix, "REDIS_KEY_PREFIX")
	overrideString(&cfg.LogLevel, "LOG_LEVEL")

	for key, dst := range map[string]*int{
		"RATE_LIMIT_PER_MINUTE":    &cfg.RateLimit,
		"SHUTDOWN_TIMEOUT_SECONDS": &cfg.ShutdownTimeoutSeconds,
		"SESSION_MAX_AGE_SECONDS":  &cfg.SessionMaxAgeSeconds,
	} {
		if err := overrideInt(dst, key); err != nil {
			return err
		}
	}

	for key, dst := range map[string]*bool{
		"AUTO_MIGRATE":  &cfg.AutoMigrate,
		"REDIS_ENABLED": &cfg.RedisEnabled,
		"COOKIE_SECURE": &cfg.CookieSecure,
	} {
		if err := overrideBool(dst, key); err != nil {
			return err
		}
	}
	return nil
}

func validate(cfg Config) error {
	if cfg.AppHost == "" || cfg.AppPort == "" {
		return errors.New("APP_HOST and APP_PORT must not be empty (e.g. 127.0.0.1:8080)")
	}
	if cfg.DatabaseDSN == "" {
		return errors.New("DATABASE_DSN must not be empty")
	}
	if cfg.RateLimit <= 0 {
		return errors.New("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if cfg.ShutdownTimeoutSeconds <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0")
	}
	if cfg.SessionMaxAgeSeconds <= 0 {
		return errors.New("SESSION_MAX_AGE_SECONDS must be greater than 0")
	}
	if cfg.RedisEnabled && (cfg.RedisHost == "" || cfg.RedisPort == "") {
		return errors.New("REDIS_HOST and REDIS_PORT are required when REDIS_ENABLED is set")
	}
	return nil
}

func overrideString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func overrideInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid integer value for %s", key)
	}
	*dst = i
	return nil
}

func overrideBool(dst *bool, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("invalid boolean value for %s", key)
	}
	*dst = b
	return nil
}
