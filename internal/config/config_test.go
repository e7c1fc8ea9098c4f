package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "pw")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, ":5000", cfg.HTTPAddr)
	assert.Equal(t, 12*time.Hour, cfg.AdminTokenTTL)
	assert.True(t, cfg.EnforceOpenTime)
	assert.Equal(t, 10, cfg.AdminLoginPerMinute)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "pw")
	t.Setenv("ENFORCE_OPEN_TIME", "false")
	t.Setenv("ADMIN_TOKEN_TTL", "30m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://band.example, https://admin.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.EnforceOpenTime)
	assert.Equal(t, 30*time.Minute, cfg.AdminTokenTTL)
	assert.Contains(t, cfg.Origins(), "https://band.example")
	assert.Contains(t, cfg.Origins(), "https://admin.example")
}

func TestLoad_RequiresAdminCredential(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("ADMIN_PASSWORD_HASH", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_ProdRequiresJWTSecret(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "pw")
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "a-real-secret")
	_, err = Load()
	assert.NoError(t, err)
}
