package cartControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Biomedionics123/Biomedionics/middleware"
	"github.com/Biomedionics123/Biomedionics/models"
)

type AddItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type UpdateItemInput struct {
	Quantity int `json:"quantity"`
}

var ErrMixedCurrency = errors.New("cart already holds items in a different currency")

// AddToCart adds up to qty units of the product to the session cart, clamped
// to the stock headroom left over the quantity already carted. A fully clamped
// add (headroom <= 0) is a no-op, not an error. Returns the resulting line,
// or nil when the add was a no-op.
func AddToCart(db *gorm.DB, sessionID string, product models.Product, qty int) (*models.CartItem, error) {
	var existing models.CartItem
	inCart := 0
	err := db.Where("session_id = ? AND product_id = ?", sessionID, product.ID).First(&existing).Error
	switch {
	case err == nil:
		inCart = existing.Quantity
	case errors.Is(err, gorm.ErrRecordNotFound):
		// first add of this product
	default:
		return nil, err
	}

	if inCart == 0 {
		var other int64
		if err := db.Model(&models.CartItem{}).
			Where("session_id = ? AND currency <> ?", sessionID, product.Currency).
			Count(&other).Error; err != nil {
			return nil, err
		}
		if other > 0 {
			return nil, ErrMixedCurrency
		}
	}

	toAdd := qty
	if headroom := product.Stock - inCart; toAdd > headroom {
		toAdd = headroom
	}
	if toAdd <= 0 {
		return nil, nil
	}

	if inCart > 0 {
		existing.Quantity += toAdd
		if err := db.Save(&existing).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	}

	item := models.CartItem{
		SessionID:    sessionID,
		ProductID:    product.ID,
		ProductName:  product.Name,
		ProductImage: product.ImageURL,
		Price:        product.Price,
		Currency:     product.Currency,
		Quantity:     toAdd,
		AddedAt:      time.Now(),
	}
	if err := db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateQuantity sets the cart line for productID to qty. qty <= 0 removes the
// line; otherwise qty is clamped to the product's current stock.
func UpdateQuantity(db *gorm.DB, sessionID, productID string, qty int) error {
	if qty <= 0 {
		return db.Where("session_id = ? AND product_id = ?", sessionID, productID).
			Delete(&models.CartItem{}).Error
	}

	var product models.Product
	if err := db.First(&product, "id = ?", productID).Error; err != nil {
		return err
	}
	if qty > product.Stock {
		qty = product.Stock
	}
	if qty <= 0 {
		return db.Where("session_id = ? AND product_id = ?", sessionID, productID).
			Delete(&models.CartItem{}).Error
	}

	return db.Model(&models.CartItem{}).
		Where("session_id = ? AND product_id = ?", sessionID, productID).
		Update("quantity", qty).Error
}

// Items returns the session's cart lines in insertion order.
func Items(db *gorm.DB, sessionID string) ([]models.CartItem, error) {
	var items []models.CartItem
	err := db.Where("session_id = ?", sessionID).Order("added_at ASC, id ASC").Find(&items).Error
	return items, err
}

// Total sums price*quantity over the given lines.
func Total(items []models.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// -------- Handlers --------

// GET /cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := Items(db, middleware.SessionID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items, "total": Total(items)})
	}
}

// POST /cart
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		item, err := AddToCart(db, middleware.SessionID(c), product, input.Quantity)
		if err != nil {
			if errors.Is(err, ErrMixedCurrency) {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}
		if item == nil {
			// out of headroom; cart unchanged
			c.JSON(http.StatusOK, gin.H{"message": "No stock available to add"})
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// PUT /cart/:product_id
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		err := UpdateQuantity(db, middleware.SessionID(c), c.Param("product_id"), input.Quantity)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart updated"})
	}
}

// DELETE /cart/:product_id
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Where("session_id = ? AND product_id = ?", middleware.SessionID(c), c.Param("product_id")).
			Delete(&models.CartItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /cart
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Where("session_id = ?", middleware.SessionID(c)).Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
