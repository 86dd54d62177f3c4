package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/qrmenupro/qrmenu-golang/internal/menu"
	"github.com/qrmenupro/qrmenu-golang/internal/models"
)

// --- Product Handlers ---

// ListProducts (Public) supports optional ?category_id= and
// ?active_only= filters.
func (h *Handlers) ListProducts(c *gin.Context) {
	categoryID := c.Query("category_id")
	activeOnly, _ := strconv.ParseBool(c.DefaultQuery("active_only", "false"))

	products, err := h.Products.List(c.Request.Context(), categoryID, activeOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct (Public)
func (h *Handlers) GetProduct(c *gin.Context) {
	product, err := h.Products.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, menu.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct (Admin Only). The referenced category must exist; the
// check happens before anything is persisted.
func (h *Handlers) CreateProduct(c *gin.Context) {
	var input models.CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.Products.Create(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, menu.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct (Admin Only) applies a partial update. A changed
// category_id is re-validated before the write.
func (h *Handlers) UpdateProduct(c *gin.Context) {
	var input models.UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.Products.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		switch {
		case errors.Is(err, menu.ErrNoFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		case errors.Is(err, menu.ErrCategoryNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		case errors.Is(err, menu.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		}
		return
	}
	c.JSON(http.StatusOK, product)
}

// DeleteProduct (Admin Only)
func (h *Handlers) DeleteProduct(c *gin.Context) {
	err := h.Products.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, menu.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
