package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/qrmenupro/qrmenu-golang/internal/auth"
)

func guardedRouter(tokens TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", Auth(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"username": c.GetString("username")})
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", 30*time.Minute)
	validToken, err := tokens.Issue("admin")
	assert.NoError(t, err)

	testCases := []struct {
		name               string
		header             string
		expectedStatusCode int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Token " + validToken, http.StatusUnauthorized},
		{"no token after scheme", "Bearer", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-real-token", http.StatusUnauthorized},
		{"valid token", "Bearer " + validToken, http.StatusOK},
	}

	router := guardedRouter(tokens)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
		})
	}
}

func TestAuthMiddlewareSetsUsername(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", 30*time.Minute)
	token, err := tokens.Issue("admin")
	assert.NoError(t, err)

	router := guardedRouter(tokens)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"admin"`)
}
