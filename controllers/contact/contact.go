package contactControllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	notificationControllers "github.com/Biomedionics123/Biomedionics/controllers/notification"
	"github.com/Biomedionics123/Biomedionics/models"
)

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Company string `json:"company"`
	Message string `json:"message" binding:"required"`
}

// POST /contact — turns a contact form submission into an inbox entry.
func SubmitContactFormHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ContactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		company := req.Company
		if company == "" {
			company = "N/A"
		}
		body := fmt.Sprintf("Name: %s\nEmail: %s\nCompany: %s\n\nMessage:\n%s",
			req.Name, req.Email, company, req.Message)

		_, err := notificationControllers.Add(db, models.NotificationContactInquiry,
			"New Contact Form Submission from "+req.Name, req.Email, body)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit inquiry"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Your message has been sent"})
	}
}
