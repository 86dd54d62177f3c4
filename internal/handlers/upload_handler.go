package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qrmenupro/qrmenu-golang/internal/assets"
)

// UploadImage handles POST /api/upload (Admin Only).
// It saves the image under a unique name and returns its public URL.
func (h *Handlers) UploadImage(c *gin.Context) {
	// 1. Get the file from the request
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}

	// 2. Validate and save; the assets service checks the declared type
	// and picks the unique name.
	imageURL, err := h.Assets.SaveImage(data, file.Header.Get("Content-Type"), file.Filename)
	if err != nil {
		if errors.Is(err, assets.ErrNotImage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "File must be an image"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"image_url": imageURL})
}

// GenerateQRCode handles GET /api/qr-code (Public).
// It encodes the target URL into a PNG under a fixed name and returns
// the path; each call overwrites the previous image.
func (h *Handlers) GenerateQRCode(c *gin.Context) {
	target := c.DefaultQuery("url", "http://localhost:3000")

	qrURL, err := h.Assets.GenerateQR(target)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate QR code"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"qr_code_url": qrURL})
}
