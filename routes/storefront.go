package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Biomedionics123/Biomedionics/auth"
	blogControllers "github.com/Biomedionics123/Biomedionics/controllers/blog"
	cartControllers "github.com/Biomedionics123/Biomedionics/controllers/cart"
	contactControllers "github.com/Biomedionics123/Biomedionics/controllers/contact"
	pageControllers "github.com/Biomedionics123/Biomedionics/controllers/page"
	productcontroller "github.com/Biomedionics123/Biomedionics/controllers/product"
	reviewControllers "github.com/Biomedionics123/Biomedionics/controllers/review"
	settingsControllers "github.com/Biomedionics123/Biomedionics/controllers/settings"
	wishlistControllers "github.com/Biomedionics123/Biomedionics/controllers/wishlist"
	"github.com/Biomedionics123/Biomedionics/notifier"
)

// SetupStorefrontRoutes registers every public endpoint.
func SetupStorefrontRoutes(r *gin.Engine, db *gorm.DB) {
	// ──────────────── Catalog ────────────────
	r.GET("/products", productcontroller.GetProducts(db))
	r.GET("/products/:id", productcontroller.GetProductByID(db))

	// ──────────────── Shopping Cart ────────────────
	cartGroup := r.Group("/cart")
	{
		cartGroup.GET("", cartControllers.GetCart(db))
		cartGroup.POST("", cartControllers.AddCartItem(db))
		cartGroup.PUT("/:product_id", cartControllers.UpdateCartItem(db))
		cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(db))
		cartGroup.DELETE("", cartControllers.ClearCart(db))
	}

	// ──────────────── Wishlist ────────────────
	wishlistGroup := r.Group("/wishlist")
	{
		wishlistGroup.GET("", wishlistControllers.GetWishlist(db))
		wishlistGroup.POST("", wishlistControllers.AddWishlistItem(db))
		wishlistGroup.DELETE("/:product_id", wishlistControllers.DeleteWishlistItem(db))
	}

	// ──────────────── Content ────────────────
	r.GET("/blog", blogControllers.GetBlogPosts(db))
	r.GET("/blog/:id", blogControllers.GetBlogPostByID(db))
	r.GET("/pages", pageControllers.GetPages(db))
	r.GET("/pages/:slug", pageControllers.GetPageBySlug(db))
	r.GET("/reviews", reviewControllers.GetApprovedReviewsHandler(db))
	r.GET("/settings/site", settingsControllers.GetSiteSettingsHandler(db))
	r.GET("/settings/appearance", settingsControllers.GetAppearanceSettingsHandler(db))

	// ──────────────── Contact & external helpers ────────────────
	r.POST("/contact", contactControllers.SubmitContactFormHandler(db))
	r.GET("/geocode/reverse", notifier.ReverseGeocodeHandler())
	r.POST("/assistant/chat", notifier.ChatHandler(db))

	// ──────────────── Admin session ────────────────
	r.POST("/auth/admin/login", auth.AdminLoginHandler(db))
	r.POST("/auth/admin/logout", auth.AdminLogoutHandler())
}
