package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Biomedionics123/Biomedionics/middleware"
	"github.com/Biomedionics123/Biomedionics/store"
)

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// POST /auth/admin/login
func AdminLoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		settings := store.SiteSettings(db)
		if req.Password != settings.AdminPassword {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect password"})
			return
		}

		if err := middleware.SetAdmin(c, true); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Logged in"})
	}
}

// POST /auth/admin/logout
func AdminLogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := middleware.SetAdmin(c, false); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}
