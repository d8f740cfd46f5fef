package settingsControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Biomedionics123/Biomedionics/models"
	"github.com/Biomedionics123/Biomedionics/store"
)

type SiteSettingsInput struct {
	AwardImageURL string `json:"awardImageUrl"`
	AwardText     string `json:"awardText"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// GET /settings/site — public view; the admin password never leaves the store.
func GetSiteSettingsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := store.SiteSettings(db)
		c.JSON(http.StatusOK, gin.H{
			"awardImageUrl": s.AwardImageURL,
			"awardText":     s.AwardText,
		})
	}
}

// PUT /admin/settings/site
func UpdateSiteSettingsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SiteSettingsInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		s := store.SiteSettings(db)
		s.ID = 1
		s.AwardImageURL = input.AwardImageURL
		s.AwardText = input.AwardText
		if err := db.Save(&s).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Settings saved"})
	}
}

// PUT /admin/settings/password
func ChangePasswordHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ChangePasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		s := store.SiteSettings(db)
		if req.CurrentPassword != s.AdminPassword {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Current password is incorrect."})
			return
		}
		if req.NewPassword != req.ConfirmPassword {
			c.JSON(http.StatusBadRequest, gin.H{"error": "New passwords do not match."})
			return
		}
		if len(req.NewPassword) < 4 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "New password must be at least 4 characters long."})
			return
		}

		s.ID = 1
		s.AdminPassword = req.NewPassword
		if err := db.Save(&s).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save password"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully!"})
	}
}

// GET /settings/appearance
func GetAppearanceSettingsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, store.AppearanceSettings(db))
	}
}

// PUT /admin/settings/appearance — wholesale replace, matching the panel's
// save button which writes the whole form at once.
func UpdateAppearanceSettingsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.AppearanceSettings
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		switch input.VideoSource {
		case models.VideoSourceYouTube, models.VideoSourceUpload, models.VideoSourceGoogleDrive:
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "videoSource must be youtube, upload or googledrive"})
			return
		}

		input.ID = 1
		if err := db.Save(&input).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
			return
		}
		c.JSON(http.StatusOK, input)
	}
}
