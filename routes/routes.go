package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the storefront, order
// and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public storefront routes (session only)
	SetupStorefrontRoutes(r, db)

	// Order placement and tracking
	SetupOrderRoutes(r, db)

	// Admin panel (session-login protected)
	SetupAdminRoutes(r, db)
}
