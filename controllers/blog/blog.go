package blogControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Biomedionics123/Biomedionics/models"
)

type BlogPostInput struct {
	Title    string                `json:"title" binding:"required"`
	Content  string                `json:"content"`
	ImageURL string                `json:"imageUrl"`
	Author   string                `json:"author"`
	Files    []models.BlogPostFile `json:"files"`
}

// GET /blog
func GetBlogPosts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var posts []models.BlogPost
		if err := db.Order("date DESC, created_at DESC").Find(&posts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch blog posts"})
			return
		}
		c.JSON(http.StatusOK, posts)
	}
}

// GET /blog/:id
func GetBlogPostByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var post models.BlogPost
		if err := db.First(&post, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Blog post not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch blog post"})
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

// POST /admin/blog
func CreateBlogPost(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input BlogPostInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		now := time.Now()
		post := models.BlogPost{
			ID:       "post_" + strconv.FormatInt(now.UnixMilli(), 10) + "_" + uuid.NewString()[:8],
			Title:    input.Title,
			Content:  input.Content,
			ImageURL: input.ImageURL,
			Author:   input.Author,
			Date:     now.Format("2006-01-02"),
			Files:    input.Files,
		}
		if post.Files == nil {
			post.Files = []models.BlogPostFile{}
		}
		if err := db.Create(&post).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create blog post"})
			return
		}
		c.JSON(http.StatusCreated, post)
	}
}

// PUT /admin/blog/:id
func UpdateBlogPost(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input BlogPostInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var post models.BlogPost
		if err := db.First(&post, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Blog post not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch blog post"})
			return
		}

		post.Title = input.Title
		post.Content = input.Content
		post.ImageURL = input.ImageURL
		post.Author = input.Author
		if input.Files != nil {
			post.Files = input.Files
		}
		if err := db.Save(&post).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update blog post"})
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

// DELETE /admin/blog/:id
func DeleteBlogPost(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Where("id = ?", c.Param("id")).Delete(&models.BlogPost{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete blog post"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Blog post not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Blog post deleted"})
	}
}
