package dataControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Biomedionics123/Biomedionics/models"
	"github.com/Biomedionics123/Biomedionics/store"
)

// FullSiteData is the interchange document: every top-level collection in one
// JSON object. The cart and wishlist are session-local and not part of it.
type FullSiteData struct {
	Products           []models.Product          `json:"products"`
	BlogPosts          []models.BlogPost         `json:"blogPosts"`
	SiteSettings       models.SiteSettings       `json:"siteSettings"`
	AppearanceSettings models.AppearanceSettings `json:"appearanceSettings"`
	DynamicPages       []models.DynamicPage      `json:"dynamicPages"`
	Reviews            []models.Review           `json:"reviews"`
	Orders             []models.Order            `json:"orders"`
	Notifications      []models.Notification     `json:"notifications"`
}

// Collect assembles the full interchange document from the store.
func Collect(db *gorm.DB) (*FullSiteData, error) {
	data := &FullSiteData{
		SiteSettings:       store.SiteSettings(db),
		AppearanceSettings: store.AppearanceSettings(db),
	}

	if err := db.Order("created_at ASC").Find(&data.Products).Error; err != nil {
		return nil, err
	}
	if err := db.Order("created_at ASC").Find(&data.BlogPosts).Error; err != nil {
		return nil, err
	}
	if err := db.Order("created_at ASC").Find(&data.DynamicPages).Error; err != nil {
		return nil, err
	}
	if err := db.Order("created_at ASC").Find(&data.Reviews).Error; err != nil {
		return nil, err
	}
	if err := db.Preload("Items").Order("created_at ASC").Find(&data.Orders).Error; err != nil {
		return nil, err
	}
	if err := db.Order("created_at ASC").Find(&data.Notifications).Error; err != nil {
		return nil, err
	}
	return data, nil
}

// Restore replaces every collection in the document wholesale, in one
// transaction. No merge, no partial update, no schema-version check.
func Restore(db *gorm.DB, data *FullSiteData) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&models.OrderItem{}, &models.Order{}, &models.Review{},
			&models.Notification{}, &models.Product{}, &models.BlogPost{},
			&models.DynamicPage{}, &models.SiteSettings{}, &models.AppearanceSettings{},
		} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return err
			}
		}

		if len(data.Products) > 0 {
			if err := tx.Create(&data.Products).Error; err != nil {
				return err
			}
		}
		if len(data.BlogPosts) > 0 {
			if err := tx.Create(&data.BlogPosts).Error; err != nil {
				return err
			}
		}
		if len(data.DynamicPages) > 0 {
			if err := tx.Create(&data.DynamicPages).Error; err != nil {
				return err
			}
		}
		if len(data.Reviews) > 0 {
			if err := tx.Create(&data.Reviews).Error; err != nil {
				return err
			}
		}
		if len(data.Orders) > 0 {
			if err := tx.Create(&data.Orders).Error; err != nil {
				return err
			}
		}
		if len(data.Notifications) > 0 {
			if err := tx.Create(&data.Notifications).Error; err != nil {
				return err
			}
		}

		data.SiteSettings.ID = 1
		if err := tx.Create(&data.SiteSettings).Error; err != nil {
			return err
		}
		data.AppearanceSettings.ID = 1
		return tx.Create(&data.AppearanceSettings).Error
	})
}

// GET /admin/data/export — downloads the full document as a JSON file.
func ExportAllDataHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := Collect(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export data"})
			return
		}

		filename := "biomedionics-data-" + time.Now().Format("2006-01-02") + ".json"
		c.Header("Content-Disposition", "attachment; filename="+filename)
		c.JSON(http.StatusOK, data)
	}
}

// POST /admin/data/import?confirm=true — destructive full-state overwrite.
func ImportAllDataHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Query("confirm") != "true" {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Import overwrites all site data. Re-send with confirm=true to proceed.",
			})
			return
		}

		var data FullSiteData
		if err := c.ShouldBindJSON(&data); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid import file: " + err.Error()})
			return
		}

		if err := Restore(db, &data); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import data"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Site data imported"})
	}
}
