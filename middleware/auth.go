// File: middleware/auth.go
package middleware

import (
	"net/http"
	"strings"
	"time"

	userRepo "oncall/database/repository/user"
	"oncall/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JWTAuthUserMiddleware authenticates requests by Bearer token. The token
// must validate as a JWT, and its SHA-256 hash must match the hash stored on
// the user record (so revocation works). Successful lookups are cached in
// Redis for a few minutes. Sets "userID" on the context.
func JWTAuthUserMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		tokenHash := utils.HashToken(tokenString)
		sessionClient := utils.GetAuthCacheClient()

		// Fast path: cached session for this exact token.
		if session, err := utils.GetAuthSession(sessionClient, tokenHash); err == nil && session != nil && session.UserID == userID {
			c.Set("userID", userID)
			c.Next()
			return
		}

		// Slow path: check the stored token hash on the user record.
		userRec, err := repo.GetByID(userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		if userRec.TokenHash == "" || userRec.TokenHash != tokenHash {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		session := utils.AuthSession{
			UserID:    userRec.ID,
			Email:     userRec.Email,
			Timezone:  userRec.Timezone,
			CreatedAt: time.Now(),
		}
		if err := utils.SaveAuthSession(sessionClient, tokenHash, session); err != nil {
			utils.GetLogger().Warn("JWTAuthUserMiddleware: failed to cache session", zap.Error(err))
		}

		c.Set("userID", userID)
		c.Next()
	}
}
