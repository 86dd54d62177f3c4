package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// TokenVerifier validates a bearer token string and returns the username
// it was issued for. *auth.TokenService satisfies it.
type TokenVerifier interface {
	Verify(tokenString string) (string, error)
}

// Auth guards protected routes. It expects an "Authorization: Bearer
// <token>" header and aborts with 401 when the header is missing,
// malformed or the token does not verify.
func Auth(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format (must be Bearer)"})
			c.Abort()
			return
		}

		username, err := tokens.Verify(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		// Make the verified identity available to the handlers.
		c.Set("username", username)
		c.Next()
	}
}
