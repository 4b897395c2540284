package middleware

import (
	"net/http"
	"strings"

	"resume-builder-backend/internal/delivery/http/response"
	"resume-builder-backend/internal/domain"
	"resume-builder-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware accepts "Authorization: Bearer <token>" only. The user id
// comes from the verified claims; the store is not consulted.
func AuthMiddleware(verifier domain.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		scheme, token, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			response.Abort(c, http.StatusUnauthorized, "Authorization header required")
			return
		}

		userID, err := verifier.Verify(strings.TrimSpace(token))
		if err != nil {
			logger.Log.Debug("token rejected", "path", c.FullPath(), "error", err)
			response.Abort(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		c.Set(string(domain.KeyUserID), userID)
		c.Next()
	}
}
