package admin

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"bandroom/internal/pkg/jwt"
)

// Service holds the single shared admin secret. A bcrypt hash takes
// precedence over the plain password when both are configured.
type Service struct {
	password string
	hash     []byte
	tokens   TokenService
}

func NewService(password, passwordHash string, tokens TokenService) *Service {
	s := &Service{password: password, tokens: tokens}
	if passwordHash != "" {
		s.hash = []byte(passwordHash)
	}
	return s
}

// VerifyPassword compares a presented secret with the configured one.
func (s *Service) VerifyPassword(presented string) bool {
	if presented == "" {
		return false
	}
	if s.hash != nil {
		return bcrypt.CompareHashAndPassword(s.hash, []byte(presented)) == nil
	}
	if s.password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(presented), []byte(s.password)) == 1
}

// VerifyToken accepts only unexpired tokens carrying the admin role.
func (s *Service) VerifyToken(token string) bool {
	if token == "" || s.tokens == nil {
		return false
	}
	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		return false
	}
	return claims.Role == jwt.RoleAdmin
}

// Login exchanges the admin password for a signed session token.
func (s *Service) Login(req LoginRequest) (*LoginResponse, error) {
	if req.Password == "" {
		return nil, ErrValidation
	}
	if !s.VerifyPassword(req.Password) {
		return nil, ErrInvalidCredentials
	}

	token, exp, err := s.tokens.GenerateToken(jwt.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("sign admin token: %w", err)
	}
	return &LoginResponse{Token: token, ExpiresAt: exp}, nil
}
