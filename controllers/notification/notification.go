package notificationControllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Biomedionics123/Biomedionics/models"
)

// Add appends a notification to the inbox. Creation is the only way entries
// come into existence; afterwards only IsRead ever changes.
func Add(db *gorm.DB, typ models.NotificationType, subject, from, body string) (*models.Notification, error) {
	now := time.Now()
	n := models.Notification{
		ID:        "notif_" + strconv.FormatInt(now.UnixMilli(), 10) + "_" + uuid.NewString()[:8],
		Type:      typ,
		Subject:   subject,
		From:      from,
		Body:      body,
		CreatedAt: now,
	}
	if err := db.Create(&n).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

// GET /admin/notifications
func GetNotificationsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var notifications []models.Notification
		if err := db.Order("created_at DESC").Find(&notifications).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
			return
		}

		var unread int64
		db.Model(&models.Notification{}).Where("is_read = ?", false).Count(&unread)

		c.JSON(http.StatusOK, gin.H{"notifications": notifications, "unread_count": unread})
	}
}

// PUT /admin/notifications/:notificationID/read
func MarkNotificationReadHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Model(&models.Notification{}).
			Where("id = ?", c.Param("notificationID")).
			Update("is_read", true)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
	}
}

// PUT /admin/notifications/read-all
func MarkAllNotificationsReadHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Model(&models.Notification{}).Where("is_read = ?", false).
			Update("is_read", true).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notifications"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read"})
	}
}
