package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	blogControllers "github.com/Biomedionics123/Biomedionics/controllers/blog"
	dataControllers "github.com/Biomedionics123/Biomedionics/controllers/data"
	notificationControllers "github.com/Biomedionics123/Biomedionics/controllers/notification"
	orderControllers "github.com/Biomedionics123/Biomedionics/controllers/order"
	pageControllers "github.com/Biomedionics123/Biomedionics/controllers/page"
	productcontroller "github.com/Biomedionics123/Biomedionics/controllers/product"
	reviewControllers "github.com/Biomedionics123/Biomedionics/controllers/review"
	settingsControllers "github.com/Biomedionics123/Biomedionics/controllers/settings"
	"github.com/Biomedionics123/Biomedionics/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires an admin
// session established through the login endpoint.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAdmin)
	{
		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
			productAdmin.POST("/import-csv", productcontroller.ImportProductsFromCSVHandler(db))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(db))
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))
			orderAdmin.DELETE("/:orderID", orderControllers.DeleteOrderHandler(db))
			orderAdmin.GET("/ws", orderControllers.OrderWebSocketHandler)
		}

		// ─────────── Review Moderation ───────────
		reviewAdmin := adminGroup.Group("/reviews")
		{
			reviewAdmin.GET("", reviewControllers.GetAllReviewsHandler(db))
			reviewAdmin.PUT("/:reviewID/status", reviewControllers.UpdateReviewStatusHandler(db))
			reviewAdmin.DELETE("/:reviewID", reviewControllers.DeleteReviewHandler(db))
		}

		// ─────────── Notification Center ───────────
		notificationAdmin := adminGroup.Group("/notifications")
		{
			notificationAdmin.GET("", notificationControllers.GetNotificationsHandler(db))
			notificationAdmin.PUT("/read-all", notificationControllers.MarkAllNotificationsReadHandler(db))
			notificationAdmin.PUT("/:notificationID/read", notificationControllers.MarkNotificationReadHandler(db))
		}

		// ─────────── Content Management ───────────
		blogAdmin := adminGroup.Group("/blog")
		{
			blogAdmin.POST("", blogControllers.CreateBlogPost(db))
			blogAdmin.PUT("/:id", blogControllers.UpdateBlogPost(db))
			blogAdmin.DELETE("/:id", blogControllers.DeleteBlogPost(db))
		}
		pageAdmin := adminGroup.Group("/pages")
		{
			pageAdmin.POST("", pageControllers.CreatePage(db))
			pageAdmin.PUT("/:id", pageControllers.UpdatePage(db))
			pageAdmin.DELETE("/:id", pageControllers.DeletePage(db))
		}

		// ─────────── Settings ───────────
		settingsAdmin := adminGroup.Group("/settings")
		{
			settingsAdmin.PUT("/site", settingsControllers.UpdateSiteSettingsHandler(db))
			settingsAdmin.PUT("/appearance", settingsControllers.UpdateAppearanceSettingsHandler(db))
			settingsAdmin.PUT("/password", settingsControllers.ChangePasswordHandler(db))
		}

		// ─────────── Data Management ───────────
		dataAdmin := adminGroup.Group("/data")
		{
			dataAdmin.GET("/export", dataControllers.ExportAllDataHandler(db))
			dataAdmin.POST("/import", dataControllers.ImportAllDataHandler(db))
		}
	}
}
