package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qrmenupro/qrmenu-golang/internal/models"
)

// Login checks the credential pair against the configured admin account
// and issues a bearer token on an exact match. Every other combination
// is a 401.
func (h *Handlers) Login(c *gin.Context) {
	var input models.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Username != h.AdminUsername || input.Password != h.AdminPassword {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect username or password"})
		return
	}

	token, err := h.Tokens.Issue(input.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// VerifyToken echoes the identity the auth middleware resolved. Useful
// for the admin UI to check whether its stored token is still valid.
func (h *Handlers) VerifyToken(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"username": c.GetString("username")})
}
