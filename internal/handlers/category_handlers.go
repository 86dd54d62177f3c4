package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/qrmenupro/qrmenu-golang/internal/menu"
	"github.com/qrmenupro/qrmenu-golang/internal/models"
)

// --- Category Handlers ---

// ListCategories (Public)
func (h *Handlers) ListCategories(c *gin.Context) {
	activeOnly, _ := strconv.ParseBool(c.DefaultQuery("active_only", "false"))

	categories, err := h.Categories.List(c.Request.Context(), activeOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GetCategory (Public)
func (h *Handlers) GetCategory(c *gin.Context) {
	category, err := h.Categories.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, menu.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, category)
}

// CreateCategory (Admin Only)
func (h *Handlers) CreateCategory(c *gin.Context) {
	var input models.CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.Categories.Create(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, category)
}

// UpdateCategory (Admin Only) applies a partial update.
func (h *Handlers) UpdateCategory(c *gin.Context) {
	var input models.UpdateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.Categories.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		switch {
		case errors.Is(err, menu.ErrNoFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		case errors.Is(err, menu.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		}
		return
	}
	c.JSON(http.StatusOK, category)
}

// DeleteCategory (Admin Only) refuses with 409 while products still
// reference the category.
func (h *Handlers) DeleteCategory(c *gin.Context) {
	err := h.Categories.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, menu.ErrCategoryHasProducts):
			c.JSON(http.StatusConflict, gin.H{"error": "Cannot delete category with products"})
		case errors.Is(err, menu.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
