package orderControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	cartControllers "github.com/Biomedionics123/Biomedionics/controllers/cart"
	"github.com/Biomedionics123/Biomedionics/middleware"
	"github.com/Biomedionics123/Biomedionics/models"
)

// -------- Request Structs --------

type PlaceOrderRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Address string `json:"address" binding:"required"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidTransition = errors.New("invalid order status transition")
)

// -------- Helpers --------

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case "pending":
		return models.OrderStatusPending, nil
	case "processing":
		return models.OrderStatusProcessing, nil
	case "shipped":
		return models.OrderStatusShipped, nil
	case "completed":
		return models.OrderStatusCompleted, nil
	case "cancelled":
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// transitionAllowed enforces the one-way admin flow. Cancelled is reachable
// from any non-terminal status.
func transitionAllowed(from, to models.OrderStatus) bool {
	if from == models.OrderStatusCompleted || from == models.OrderStatusCancelled {
		return false
	}
	if to == models.OrderStatusCancelled {
		return true
	}
	next := map[models.OrderStatus]models.OrderStatus{
		models.OrderStatusPending:    models.OrderStatusProcessing,
		models.OrderStatusProcessing: models.OrderStatusShipped,
		models.OrderStatusShipped:    models.OrderStatusCompleted,
	}
	return next[from] == to
}

// generateOrderID keeps the storefront's time-derived id shape and appends a
// short random suffix so two checkouts in the same millisecond cannot collide.
func generateOrderID(now time.Time) string {
	return "order_" + strconv.FormatInt(now.UnixMilli(), 10) + "_" + uuid.NewString()[:8]
}

func orderSummary(items []models.CartItem, total float64, details models.CustomerDetails) string {
	var lines []string
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("- %s (x%d) - $%.2f", item.ProductName, item.Quantity, item.Price*float64(item.Quantity)))
	}
	return fmt.Sprintf(`A new order has been placed on the website.

CUSTOMER DETAILS:
Name: %s
Email: %s
Address: %s

ORDER SUMMARY:
%s
-------------------------
TOTAL: $%.2f
`, details.Name, details.Email, details.Address, strings.Join(lines, "\n"), total)
}

// -------- Core Logic --------

// PlaceOrder converts the session cart into an immutable order as one
// transaction: snapshot the items, total them, create the order as Pending,
// decrement catalog stock, emit a NewOrder notification and clear the cart.
// Either every step commits or none do.
func PlaceOrder(db *gorm.DB, sessionID string, details models.CustomerDetails) (*models.Order, error) {
	if details.Name == "" || details.Email == "" || details.Address == "" {
		return nil, errors.New("name, email and address are required")
	}

	cartItems, err := cartControllers.Items(db, sessionID)
	if err != nil {
		return nil, err
	}
	if len(cartItems) == 0 {
		return nil, ErrEmptyCart
	}

	now := time.Now()
	order := models.Order{
		ID:              generateOrderID(now),
		CustomerDetails: details,
		Total:           cartControllers.Total(cartItems),
		Currency:        cartItems[0].Currency,
		Status:          models.OrderStatusPending,
		CreatedAt:       now,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		for _, item := range cartItems {
			var product models.Product
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, "id = ?", item.ProductID).Error; err != nil {
				return err
			}
			if product.Stock < item.Quantity {
				return errors.New("insufficient stock for product: " + item.ProductName)
			}
			product.Stock -= item.Quantity
			if err := tx.Save(&product).Error; err != nil {
				return err
			}

			order.Items = append(order.Items, models.OrderItem{
				ProductID:    item.ProductID,
				ProductName:  item.ProductName,
				ProductImage: item.ProductImage,
				Price:        item.Price,
				Currency:     item.Currency,
				Quantity:     item.Quantity,
			})
		}

		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		notification := models.Notification{
			ID:        "notif_" + strconv.FormatInt(now.UnixMilli(), 10) + "_" + uuid.NewString()[:8],
			Type:      models.NotificationNewOrder,
			Subject:   "New Order Received: " + order.ID,
			From:      details.Email,
			Body:      orderSummary(cartItems, order.Total, details),
			CreatedAt: now,
		}
		if err := tx.Create(&notification).Error; err != nil {
			return err
		}

		return tx.Where("session_id = ?", sessionID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}

	broadcastNewOrder(order)
	return &order, nil
}

// UpdateStatus advances an order through the admin state machine.
func UpdateStatus(db *gorm.DB, orderID string, target models.OrderStatus) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, "id = ?", orderID).Error; err != nil {
			return err
		}
		if !transitionAllowed(order.Status, target) {
			return ErrInvalidTransition
		}
		return tx.Model(&order).Update("status", target).Error
	})
}

// -------- Handlers --------

// POST /orders
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := PlaceOrder(db, middleware.SessionID(c), models.CustomerDetails{
			Name:    req.Name,
			Email:   req.Email,
			Address: req.Address,
		})
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

// GET /admin/orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/:orderID — the public track-order lookup.
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.Param("orderID"))
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		var order models.Order
		if err := db.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PUT /admin/orders/:orderID/status
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		err = UpdateStatus(db, c.Param("orderID"), newStatus)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		case errors.Is(err, ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
		default:
			c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
		}
	}
}

// DELETE /admin/orders/:orderID
func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			return tx.Where("id = ?", orderID).Delete(&models.Order{}).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}
