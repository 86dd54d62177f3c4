package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/qrmenupro/qrmenu-golang/internal/assets"
	"github.com/qrmenupro/qrmenu-golang/internal/auth"
	"github.com/qrmenupro/qrmenu-golang/internal/menu"
)

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	Categories *menu.CategoryService
	Products   *menu.ProductService
	Tokens     *auth.TokenService
	Assets     *assets.Service

	// The single configured admin credential pair.
	AdminUsername string
	AdminPassword string
}

// HealthCheck is the liveness probe.
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
	})
}
