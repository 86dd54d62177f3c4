package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogin(t *testing.T) {
	testCases := []struct {
		name               string
		body               string
		expectedStatusCode int
	}{
		{"correct credentials", `{"username":"admin","password":"admin123"}`, http.StatusOK},
		{"wrong password", `{"username":"admin","password":"nope"}`, http.StatusUnauthorized},
		{"wrong username", `{"username":"root","password":"admin123"}`, http.StatusUnauthorized},
		{"missing fields", `{"username":"admin"}`, http.StatusBadRequest},
		{"invalid json", `{`, http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp(t)
			rec := app.do(http.MethodPost, "/api/auth/login", tc.body, false)
			assert.Equal(t, tc.expectedStatusCode, rec.Code)
		})
	}
}

func TestLoginReturnsUsableToken(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodPost, "/api/auth/login", `{"username":"admin","password":"admin123"}`, false)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)

	// The issued token must be accepted by the verify endpoint.
	unauthRec := app.do(http.MethodGet, "/api/auth/verify", "", false)
	assert.Equal(t, http.StatusUnauthorized, unauthRec.Code)

	verifyRec := app.doWithToken(http.MethodGet, "/api/auth/verify", "", resp.AccessToken)
	assert.Equal(t, http.StatusOK, verifyRec.Code)
	assert.Contains(t, verifyRec.Body.String(), `"username":"admin"`)
}

func TestHealthCheck(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodGet, "/api/health", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "healthy", resp["status"])
	assert.NotEmpty(t, resp["timestamp"])
}
