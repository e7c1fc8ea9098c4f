package admin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"bandroom/internal/pkg/jwt"
)

func TestService_VerifyPassword_Plain(t *testing.T) {
	svc := NewService("letmein", "", jwt.New("secret", time.Hour))

	assert.True(t, svc.VerifyPassword("letmein"))
	assert.False(t, svc.VerifyPassword("letmein "))
	assert.False(t, svc.VerifyPassword(""))
}

func TestService_VerifyPassword_HashWins(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hashed-secret"), bcrypt.MinCost)
	require.NoError(t, err)

	svc := NewService("plain", string(hash), jwt.New("secret", time.Hour))

	assert.True(t, svc.VerifyPassword("hashed-secret"))
	assert.False(t, svc.VerifyPassword("plain"))
}

func TestService_NoSecretConfigured(t *testing.T) {
	svc := NewService("", "", jwt.New("secret", time.Hour))
	assert.False(t, svc.VerifyPassword("anything"))
}

func TestService_Login(t *testing.T) {
	svc := NewService("letmein", "", jwt.New("secret", time.Hour))

	res, err := svc.Login(LoginRequest{Password: "letmein"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.True(t, res.ExpiresAt.After(time.Now()))
	assert.True(t, svc.VerifyToken(res.Token))

	_, err = svc.Login(LoginRequest{Password: "nope"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(LoginRequest{})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_VerifyToken_RejectsForeignAndExpired(t *testing.T) {
	svc := NewService("letmein", "", jwt.New("secret", time.Hour))

	other, _, err := jwt.New("other-secret", time.Hour).GenerateToken(jwt.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, svc.VerifyToken(other))

	expired, _, err := jwt.New("secret", -time.Minute).GenerateToken(jwt.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, svc.VerifyToken(expired))

	notAdmin, _, err := jwt.New("secret", time.Hour).GenerateToken("band")
	require.NoError(t, err)
	assert.False(t, svc.VerifyToken(notAdmin))

	assert.False(t, svc.VerifyToken(""))
}
