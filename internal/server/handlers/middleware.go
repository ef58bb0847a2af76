package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"poultryfarm/backend/pkg/clients/identity"
)

// contextKeyUID is the gin context key carrying the verified caller uid.
const contextKeyUID = "auth_uid"

// AuthMiddleware verifies the bearer token against the external identity
// service on every request.
func AuthMiddleware(identityClient identity.Client, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		account, err := identityClient.VerifyToken(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, identity.ErrInvalidToken) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
				return
			}
			logger.Error("token verification failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": "identity service unavailable"})
			return
		}

		c.Set(contextKeyUID, account.UID)
		c.Next()
	}
}
