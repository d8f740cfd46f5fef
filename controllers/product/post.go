package productcontroller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Biomedionics123/Biomedionics/models"
)

type ProductInput struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	LongDescription string  `json:"longDescription"`
	Category        string  `json:"category"`
	ImageURL        string  `json:"imageUrl"`
	Price           float64 `json:"price" binding:"min=0"`
	Stock           int     `json:"stock" binding:"min=0"`
	Currency        string  `json:"currency" binding:"required"`
}

func generateProductID(now time.Time) string {
	return "prod_" + strconv.FormatInt(now.UnixMilli(), 10) + "_" + uuid.NewString()[:8]
}

// POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if !models.ValidCurrency(input.Currency) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "currency must be USD or PKR"})
			return
		}

		category := input.Category
		if category == "" {
			category = "Uncategorized"
		}

		product := models.Product{
			ID:              generateProductID(time.Now()),
			Name:            input.Name,
			Description:     input.Description,
			LongDescription: input.LongDescription,
			Category:        category,
			ImageURL:        input.ImageURL,
			Price:           input.Price,
			Stock:           input.Stock,
			Currency:        models.Currency(input.Currency),
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
