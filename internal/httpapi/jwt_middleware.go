package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"emotion-engine/internal/authtoken"
)

const authClaimsKey = "auth_claims"

// JWTAuthMiddleware validates the bearer token on mutation endpoints and
// stashes its claims in the request context.
func JWTAuthMiddleware(issuer *authtoken.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if issuer == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "auth not configured"})
			c.Abort()
			return
		}

		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			c.Abort()
			return
		}

		token := strings.TrimSpace(header[len("Bearer "):])
		claims, err := issuer.Parse(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(authClaimsKey, claims)
		c.Next()
	}
}

// GetAuthClaims retrieves the parsed claims stored by JWTAuthMiddleware.
func GetAuthClaims(c *gin.Context) (authtoken.Claims, bool) {
	val, ok := c.Get(authClaimsKey)
	if !ok {
		return authtoken.Claims{}, false
	}
	claims, ok := val.(authtoken.Claims)
	return claims, ok
}
