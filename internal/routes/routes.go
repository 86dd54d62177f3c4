package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/qrmenupro/qrmenu-golang/internal/handlers"
	"github.com/qrmenupro/qrmenu-golang/internal/middleware"
)

// CORSMiddleware tells browsers the API may be called from any origin.
// The menu frontend is served from a different host, so this must run
// before anything else.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		// Reply to the browser's preflight check with 204 No Content.
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// SetupRouter wires every route. uploadDir is served statically under
// /uploads so stored assets and the QR image are reachable by path.
func SetupRouter(h *handlers.Handlers, uploadDir string) *gin.Engine {
	router := gin.Default()
	router.Use(CORSMiddleware())

	router.Static("/uploads", uploadDir)

	api := router.Group("/api")
	{
		// --- Public Routes ---
		api.GET("/health", h.HealthCheck)
		api.POST("/auth/login", h.Login)

		api.GET("/categories", h.ListCategories)
		api.GET("/categories/:id", h.GetCategory)

		api.GET("/products", h.ListProducts)
		api.GET("/products/:id", h.GetProduct)

		api.GET("/qr-code", h.GenerateQRCode)

		// --- Protected Routes (Admin Token Required) ---
		protected := api.Group("/")
		protected.Use(middleware.Auth(h.Tokens))
		{
			protected.GET("/auth/verify", h.VerifyToken)

			protected.POST("/categories", h.CreateCategory)
			protected.PUT("/categories/:id", h.UpdateCategory)
			protected.DELETE("/categories/:id", h.DeleteCategory)

			protected.POST("/products", h.CreateProduct)
			protected.PUT("/products/:id", h.UpdateProduct)
			protected.DELETE("/products/:id", h.DeleteProduct)

			protected.POST("/upload", h.UploadImage)
		}
	}

	return router
}
