package auth

import (
	"strings"

	"github.com/LucasBaccaro/fullstack/internal/errors"
	"github.com/gin-gonic/gin"
)

// validates bearer tokens and adds user info to context.
// requests that fail verification are aborted before any handler runs
func AuthMiddleware(verifier *Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			errors.Unauthorized(c, "not authenticated")
			c.Abort()
			return
		}

		scheme, token, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			errors.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := verifier.Verify(strings.TrimSpace(token))
		if err != nil {
			errors.Unauthorized(c, "could not validate credentials")
			c.Abort()
			return
		}

		// every owner column is a uuid; anything else cannot own a row
		if !errors.IsValidUUID(claims.Subject) {
			errors.Unauthorized(c, "could not validate credentials")
			c.Abort()
			return
		}

		c.Set(contextUserID, claims.Subject)
		c.Set(contextUserEmail, claims.Email)
		c.Set(contextClaims, claims)

		c.Next()
	}
}

// extracts user_id from context after AuthMiddleware
func GetUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(contextUserID)
	return userID, userID != ""
}

// extracts the verified claims from context after AuthMiddleware
func GetClaims(c *gin.Context) (*Claims, bool) {
	v, exists := c.Get(contextClaims)
	if !exists {
		return nil, false
	}

	claims, ok := v.(*Claims)
	return claims, ok
}
