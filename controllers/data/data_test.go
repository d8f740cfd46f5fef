package dataControllers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	dataControllers "github.com/Biomedionics123/Biomedionics/controllers/data"
	"github.com/Biomedionics123/Biomedionics/models"
	"github.com/Biomedionics123/Biomedionics/store"
)

func setupDataTestDB(t *testing.T) *gorm.DB {
	db, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := store.Seed(db); err != nil {
		t.Fatalf("failed to seed: %v", err)
	}
	return db
}

func TestExportImportRoundtrip(t *testing.T) {
	src := setupDataTestDB(t)

	// Add an order with items so nested snapshots travel too.
	order := models.Order{
		ID: "order_42",
		CustomerDetails: models.CustomerDetails{
			Name: "Jane Doe", Email: "jane@example.com", Address: "1 Clinic Road",
		},
		Items: []models.OrderItem{
			{ProductID: "diasense-v1", ProductName: "Diasense DPN Scanner", Price: 4999.99, Currency: models.CurrencyUSD, Quantity: 1},
		},
		Total:     4999.99,
		Currency:  models.CurrencyUSD,
		Status:    models.OrderStatusCompleted,
		CreatedAt: time.Now(),
	}
	assert.NoError(t, src.Create(&order).Error)

	data, err := dataControllers.Collect(src)
	assert.NoError(t, err)
	assert.Len(t, data.Products, 2)
	assert.Len(t, data.Orders, 1)
	assert.Equal(t, "Biomedionics", data.AppearanceSettings.SiteName)
	assert.NotEmpty(t, data.SiteSettings.AdminPassword)

	// Restore into a fresh database.
	dst, err := store.Open(":memory:")
	assert.NoError(t, err)
	assert.NoError(t, dataControllers.Restore(dst, data))

	var products []models.Product
	assert.NoError(t, dst.Find(&products).Error)
	assert.Len(t, products, 2)

	var restored models.Order
	assert.NoError(t, dst.Preload("Items").First(&restored, "id = ?", "order_42").Error)
	assert.Len(t, restored.Items, 1)
	assert.Equal(t, "Jane Doe", restored.CustomerDetails.Name)

	assert.Equal(t, data.SiteSettings.AdminPassword, store.SiteSettings(dst).AdminPassword)
}

func TestRestoreReplacesWholesale(t *testing.T) {
	db := setupDataTestDB(t)

	// Existing content that the import must wipe out.
	assert.NoError(t, db.Create(&models.Product{ID: "old-product", Name: "Old", Currency: models.CurrencyUSD}).Error)
	assert.NoError(t, db.Create(&models.Notification{ID: "old-notif", Type: models.NotificationContactInquiry, Subject: "old", CreatedAt: time.Now()}).Error)

	incoming := &dataControllers.FullSiteData{
		Products: []models.Product{
			{ID: "new-product", Name: "New", Price: 9.99, Stock: 1, Currency: models.CurrencyPKR},
		},
		SiteSettings:       models.SiteSettings{AdminPassword: "s3cret"},
		AppearanceSettings: models.AppearanceSettings{SiteName: "Imported Site", VideoSource: models.VideoSourceYouTube},
	}
	assert.NoError(t, dataControllers.Restore(db, incoming))

	t.Run("Old collections are gone", func(t *testing.T) {
		var count int64
		db.Model(&models.Product{}).Where("id = ?", "old-product").Count(&count)
		assert.Equal(t, int64(0), count)
		db.Model(&models.Notification{}).Count(&count)
		assert.Equal(t, int64(0), count)
		db.Model(&models.BlogPost{}).Count(&count)
		assert.Equal(t, int64(0), count)
	})

	t.Run("Imported collections are in place", func(t *testing.T) {
		var product models.Product
		assert.NoError(t, db.First(&product, "id = ?", "new-product").Error)
		assert.Equal(t, models.CurrencyPKR, product.Currency)
		assert.Equal(t, "s3cret", store.SiteSettings(db).AdminPassword)
		assert.Equal(t, "Imported Site", store.AppearanceSettings(db).SiteName)
	})
}

func TestImportHandlerRequiresConfirm(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupDataTestDB(t)

	r := gin.New()
	r.POST("/admin/data/import", dataControllers.ImportAllDataHandler(db))

	body := `{"products":[],"siteSettings":{"adminPassword":"x"},"appearanceSettings":{"siteName":"X","videoSource":"youtube"}}`

	t.Run("Rejected without confirm", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin/data/import", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "confirm=true")

		// Seeded data untouched.
		var count int64
		db.Model(&models.Product{}).Count(&count)
		assert.Equal(t, int64(2), count)
	})

	t.Run("Accepted with confirm", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin/data/import?confirm=true", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var count int64
		db.Model(&models.Product{}).Count(&count)
		assert.Equal(t, int64(0), count)
		assert.Equal(t, "x", store.SiteSettings(db).AdminPassword)
	})
}
