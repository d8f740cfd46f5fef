package pageControllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Biomedionics123/Biomedionics/models"
)

type PageInput struct {
	Slug    string `json:"slug" binding:"required"`
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}

// GET /pages
func GetPages(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var pages []models.DynamicPage
		if err := db.Order("created_at ASC").Find(&pages).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pages"})
			return
		}
		c.JSON(http.StatusOK, pages)
	}
}

// GET /pages/:slug
func GetPageBySlug(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var page models.DynamicPage
		if err := db.First(&page, "slug = ?", c.Param("slug")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch page"})
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// POST /admin/pages
func CreatePage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PageInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		page := models.DynamicPage{
			ID:      "page_" + strconv.FormatInt(time.Now().UnixMilli(), 10) + "_" + uuid.NewString()[:8],
			Slug:    strings.ToLower(strings.TrimSpace(input.Slug)),
			Title:   input.Title,
			Content: input.Content,
		}
		if err := db.Create(&page).Error; err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Failed to create page (slug may already exist)"})
			return
		}
		c.JSON(http.StatusCreated, page)
	}
}

// PUT /admin/pages/:id
func UpdatePage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PageInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var page models.DynamicPage
		if err := db.First(&page, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch page"})
			return
		}

		page.Slug = strings.ToLower(strings.TrimSpace(input.Slug))
		page.Title = input.Title
		page.Content = input.Content
		if err := db.Save(&page).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update page"})
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// DELETE /admin/pages/:id
func DeletePage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Where("id = ?", c.Param("id")).Delete(&models.DynamicPage{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete page"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Page deleted"})
	}
}
