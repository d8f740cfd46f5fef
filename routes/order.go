package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/Biomedionics123/Biomedionics/controllers/order"
	reviewControllers "github.com/Biomedionics123/Biomedionics/controllers/review"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	{
		// Checkout: converts the session cart into an order
		orders.POST("", orderControllers.PlaceOrderHandler(db))

		// Public track-order lookup
		orders.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))
	}

	// Review submission for completed orders
	r.POST("/reviews", reviewControllers.AddReviewHandler(db))
}
