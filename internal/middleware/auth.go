package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"marinahub/api/internal/security"
)

const claimsKey = "auth_claims"

// bearerClaims is the single verification path shared by both auth
// variants; they differ only in what happens on failure.
func bearerClaims(c *gin.Context, secret string) (*security.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, false
	}

	claims, err := security.ParseToken(strings.TrimPrefix(authHeader, "Bearer "), secret)
	if err != nil {
		return nil, false
	}
	return claims, true
}

// Auth rejects the request outright when the bearer token is missing or
// fails verification. Claims are trusted as-is for the token lifetime;
// the user row is not re-fetched.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c, secret)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Authorization token required",
				"error":   "invalid_token",
			})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// OptionalAuth attaches claims when a valid token is present and
// otherwise continues with no identity. Booking-creation endpoints use
// it to work logged-out and personalize when logged-in.
func OptionalAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := bearerClaims(c, secret); ok {
			c.Set(claimsKey, claims)
		}
		c.Next()
	}
}

// ClaimsFrom returns the authenticated principal, or nil for a guest.
func ClaimsFrom(c *gin.Context) *security.Claims {
	val, exists := c.Get(claimsKey)
	if !exists {
		return nil
	}
	claims, ok := val.(*security.Claims)
	if !ok {
		return nil
	}
	return claims
}
