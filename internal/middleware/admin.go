package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bandroom/internal/pkg/response"
)

const AdminPasswordHeader = "X-Admin-Password"

// AdminVerifier checks the two accepted admin credentials.
type AdminVerifier interface {
	VerifyPassword(presented string) bool
	VerifyToken(token string) bool
}

// AdminAuth admits a request carrying the shared secret in X-Admin-Password
// or an admin bearer token. Anything else gets the same 401.
func AdminAuth(v AdminVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if pw := c.GetHeader(AdminPasswordHeader); pw != "" && v.VerifyPassword(pw) {
			c.Set("role", "admin")
			c.Next()
			return
		}

		if token, ok := bearerToken(c.GetHeader("Authorization")); ok && v.VerifyToken(token) {
			c.Set("role", "admin")
			c.Next()
			return
		}

		zap.L().Info("admin request rejected",
			zap.String("path", c.Request.URL.Path),
			zap.String("client_ip", c.ClientIP()),
			zap.String("request_id", requestID(c)),
		)
		response.Abort(c, http.StatusUnauthorized, response.CodeUnauthorized, "Admin authentication required")
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
