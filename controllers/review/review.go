package reviewControllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Biomedionics123/Biomedionics/models"
)

type AddReviewRequest struct {
	OrderID string `json:"order_id" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required"`
}

type UpdateReviewStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

var (
	ErrOrderNotCompleted   = errors.New("reviews can only be added to completed orders")
	ErrAlreadyReviewed     = errors.New("a review has already been submitted for this order")
	ErrInvalidReviewStatus = errors.New("invalid review status")
)

func mapReviewStatus(status string) (models.ReviewStatus, error) {
	switch strings.ToLower(status) {
	case "pending":
		return models.ReviewStatusPending, nil
	case "approved":
		return models.ReviewStatusApproved, nil
	case "rejected":
		return models.ReviewStatusRejected, nil
	default:
		return "", ErrInvalidReviewStatus
	}
}

// AddReview attaches a review to a completed order. The reviewSubmitted flag is
// re-checked here, not just at the UI layer, so a duplicate call is rejected
// and exactly one review per order can ever exist.
func AddReview(db *gorm.DB, orderID string, rating int, comment string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, errors.New("rating must be between 1 and 5")
	}
	if strings.TrimSpace(comment) == "" {
		return nil, errors.New("comment must not be empty")
	}

	var review models.Review
	err := db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, "id = ?", orderID).Error; err != nil {
			return err
		}
		if order.Status != models.OrderStatusCompleted {
			return ErrOrderNotCompleted
		}
		if order.ReviewSubmitted {
			return ErrAlreadyReviewed
		}

		review = models.Review{
			ID:           "review_" + order.ID,
			OrderID:      order.ID,
			CustomerName: order.CustomerDetails.Name,
			Rating:       rating,
			Comment:      comment,
			CreatedAt:    time.Now(),
			Status:       models.ReviewStatusPending,
		}
		if err := tx.Create(&review).Error; err != nil {
			return err
		}
		return tx.Model(&order).Update("review_submitted", true).Error
	})
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// -------- Handlers --------

// POST /reviews
func AddReviewHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		review, err := AddReview(db, req.OrderID, req.Rating, req.Comment)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		case errors.Is(err, ErrOrderNotCompleted), errors.Is(err, ErrAlreadyReviewed):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case err != nil:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusCreated, review)
		}
	}
}

// GET /reviews — storefront listing, approved reviews only.
func GetApprovedReviewsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reviews []models.Review
		if err := db.Where("status = ?", models.ReviewStatusApproved).
			Order("created_at DESC").Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}

// GET /admin/reviews — moderation queue, all statuses.
func GetAllReviewsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reviews []models.Review
		if err := db.Order("created_at DESC").Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}

// PUT /admin/reviews/:reviewID/status — flat moderation, freely reversible.
func UpdateReviewStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateReviewStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapReviewStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result := db.Model(&models.Review{}).Where("id = ?", c.Param("reviewID")).
			Update("status", newStatus)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update review status"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "review not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Review status updated successfully"})
	}
}

// DELETE /admin/reviews/:reviewID
func DeleteReviewHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Where("id = ?", c.Param("reviewID")).Delete(&models.Review{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete review"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "review not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
	}
}
