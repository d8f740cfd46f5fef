package store

import (
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/Biomedionics123/Biomedionics/models"
)

// Seed populates empty collections with the vendor's starter content. Existing
// rows are never touched, so running it on every boot is safe.
func Seed(db *gorm.DB) error {
	var count int64

	db.Model(&models.Product{}).Count(&count)
	if count == 0 {
		products := seedProducts()
		if err := db.Create(&products).Error; err != nil {
			return err
		}
		log.Println("🌱 Seeded starter catalog")
	}

	db.Model(&models.BlogPost{}).Count(&count)
	if count == 0 {
		posts := seedBlogPosts()
		if err := db.Create(&posts).Error; err != nil {
			return err
		}
	}

	db.Model(&models.Review{}).Count(&count)
	if count == 0 {
		reviews := seedReviews()
		if err := db.Create(&reviews).Error; err != nil {
			return err
		}
	}

	db.Model(&models.SiteSettings{}).Count(&count)
	if count == 0 {
		s := defaultSiteSettings()
		if err := db.Create(&s).Error; err != nil {
			return err
		}
	}

	db.Model(&models.AppearanceSettings{}).Count(&count)
	if count == 0 {
		s := defaultAppearanceSettings()
		if err := db.Create(&s).Error; err != nil {
			return err
		}
	}

	return nil
}

func seedProducts() []models.Product {
	return []models.Product{
		{
			ID:              "diasense-v1",
			Name:            "Diasense DPN Scanner",
			Description:     "A revolutionary non-invasive device for early detection of Diabetic Peripheral Neuropathy.",
			LongDescription: "The Diasense DPN Scanner utilizes advanced biosensors to provide a rapid, painless, and accurate assessment of nerve function. It is designed for clinical use, enabling healthcare providers to detect DPN in its earliest stages, facilitating timely intervention and improved patient outcomes.",
			Category:        "Neuropathy Screening",
			ImageURL:        "https://picsum.photos/seed/diasense/600/400",
			Price:           4999.99,
			Stock:           10,
			Currency:        models.CurrencyUSD,
		},
		{
			ID:              "bioprinter-x1",
			Name:            "3D Bioprinter X1",
			Description:     "High-precision 3D bioprinter for creating complex biological structures and tissues for research.",
			LongDescription: "The 3D Bioprinter X1 offers exceptional resolution and multi-material capabilities, empowering researchers to fabricate intricate tissue scaffolds, organoids, and other biological constructs for regenerative medicine, drug discovery, and personalized therapeutics.",
			Category:        "Bioprinting",
			ImageURL:        "https://picsum.photos/seed/bioprinter/600/400",
			Price:           15000.00,
			Stock:           5,
			Currency:        models.CurrencyUSD,
		},
	}
}

func seedBlogPosts() []models.BlogPost {
	return []models.BlogPost{
		{
			ID:       "first-post",
			Title:    "The Future of DPN Detection is Here",
			Content:  "Diabetic Peripheral Neuropathy (DPN) is a common complication of diabetes, but early detection has always been a challenge. In this post, we explore how our non-invasive Diasense technology is changing the game, allowing for earlier and more accurate diagnoses.",
			ImageURL: "https://picsum.photos/seed/blog1/800/400",
			Author:   "Dr. Evelyn Reed",
			Date:     "2024-07-15",
			Files:    []models.BlogPostFile{},
		},
		{
			ID:       "second-post",
			Title:    "Unlocking New Frontiers with 3D Bioprinting",
			Content:  "3D bioprinting is no longer science fiction. From creating patient-specific tissue models for drug testing to developing scaffolds for regenerative medicine, the possibilities are endless. This article showcases how the Biomedionics 3D Bioprinter X1 is empowering scientists.",
			ImageURL: "https://picsum.photos/seed/blog2/800/400",
			Author:   "Admin",
			Date:     "2024-07-20",
			Files:    []models.BlogPostFile{},
		},
	}
}

func seedReviews() []models.Review {
	return []models.Review{
		{
			ID:           "review_1",
			OrderID:      "order_1625247600000",
			CustomerName: "John Doe",
			Rating:       5,
			Comment:      "The Diasense scanner has been a game-changer for our clinic. The non-invasive nature is a huge plus for our patients, and the accuracy is top-notch. Highly recommended!",
			CreatedAt:    time.Date(2024, 7, 25, 0, 0, 0, 0, time.UTC),
			Status:       models.ReviewStatusApproved,
		},
	}
}

func defaultSiteSettings() models.SiteSettings {
	return models.SiteSettings{
		ID:            1,
		AwardImageURL: "https://picsum.photos/seed/team/1200/600",
		AwardText:     "Proud Winners of the Pintech Expo 2025 Innovation Award for Diasense.",
		AdminPassword: "1234",
	}
}

func defaultAppearanceSettings() models.AppearanceSettings {
	return models.AppearanceSettings{
		ID:               1,
		SiteName:         "Biomedionics",
		LogoURL:          "",
		VideoSource:      models.VideoSourceYouTube,
		HomepageVideoURL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		PrimaryColor:     "#2563EB",
		SecondaryColor:   "#4F46E5",
		HeaderLinks: []models.CustomLink{
			{ID: "h1", Text: "Home", URL: "/", Category: "Company"},
			{ID: "h2", Text: "Products", URL: "/products", Category: "Company"},
			{ID: "h3", Text: "Blog", URL: "/blog", Category: "Company"},
			{ID: "h4", Text: "Contact", URL: "/contact", Category: "Company"},
		},
		FooterLinks: []models.CustomLink{
			{ID: "f1", Text: "Products", URL: "/products", Category: "Solutions"},
			{ID: "f2", Text: "Blog", URL: "/blog", Category: "Solutions"},
			{ID: "f3", Text: "About", URL: "/about", Category: "Company"},
			{ID: "f4", Text: "Contact", URL: "/contact", Category: "Company"},
		},
	}
}
