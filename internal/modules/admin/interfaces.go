package admin

import (
	"time"

	"bandroom/internal/pkg/jwt"
)

// TokenService issues and checks admin session tokens.
type TokenService interface {
	GenerateToken(role string) (string, time.Time, error)
	ValidateToken(tokenStr string) (*jwt.Claims, error)
}
