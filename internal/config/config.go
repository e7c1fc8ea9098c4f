package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultHTTPAddr       = ":5000"
	defaultDatabaseURL    = "bandroom.db"
	defaultJWTSecret      = "change-me-jwt-secret"
	defaultAdminTokenTTL  = "12h"
	defaultLoginPerMinute = 10
	defaultTimezone       = "Asia/Seoul"
)

type Config struct {
	AppEnv              string        `mapstructure:"APP_ENV"`
	HTTPAddr            string        `mapstructure:"HTTP_ADDR"`
	DatabaseURL         string        `mapstructure:"DATABASE_URL"`
	LogLevel            string        `mapstructure:"LOG_LEVEL"`
	AdminPassword       string        `mapstructure:"ADMIN_PASSWORD"`
	AdminPasswordHash   string        `mapstructure:"ADMIN_PASSWORD_HASH"`
	JWTSecret           string        `mapstructure:"JWT_SECRET"`
	AdminTokenTTL       time.Duration `mapstructure:"ADMIN_TOKEN_TTL"`
	AdminLoginPerMinute int           `mapstructure:"ADMIN_LOGIN_PER_MINUTE"`
	EnforceOpenTime     bool          `mapstructure:"ENFORCE_OPEN_TIME"`
	CORSAllowedOrigins  string        `mapstructure:"CORS_ALLOWED_ORIGINS"`
	Timezone            string        `mapstructure:"TIMEZONE"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "dev")
	v.SetDefault("HTTP_ADDR", defaultHTTPAddr)
	v.SetDefault("DATABASE_URL", defaultDatabaseURL)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("ADMIN_PASSWORD", "")
	v.SetDefault("ADMIN_PASSWORD_HASH", "")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("ADMIN_TOKEN_TTL", defaultAdminTokenTTL)
	v.SetDefault("ADMIN_LOGIN_PER_MINUTE", defaultLoginPerMinute)
	v.SetDefault("ENFORCE_OPEN_TIME", true)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
	v.SetDefault("TIMEZONE", defaultTimezone)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.AppEnv = strings.ToLower(strings.TrimSpace(cfg.AppEnv))
	cfg.AdminPassword = strings.TrimSpace(cfg.AdminPassword)
	cfg.AdminPasswordHash = strings.TrimSpace(cfg.AdminPasswordHash)
	cfg.JWTSecret = strings.TrimSpace(cfg.JWTSecret)

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.AdminPassword == "" && cfg.AdminPasswordHash == "" {
		return fmt.Errorf("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH must be set")
	}
	if cfg.AdminTokenTTL <= 0 {
		return fmt.Errorf("ADMIN_TOKEN_TTL must be > 0")
	}
	if cfg.AdminLoginPerMinute <= 0 {
		return fmt.Errorf("ADMIN_LOGIN_PER_MINUTE must be > 0")
	}
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return fmt.Errorf("invalid TIMEZONE %q: %w", cfg.Timezone, err)
	}

	if IsProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
	}

	return nil
}

// Origins returns the configured CORS origins merged with the local dev ones.
func (c *Config) Origins() []string {
	out := []string{
		"http://localhost:3000",
		"http://localhost:5173",
		"http://127.0.0.1:3000",
		"http://127.0.0.1:5173",
	}
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func IsProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}
