package models

import "time"

// BlogPostFile is an attachment stored inline as base64 data.
type BlogPostFile struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Data string `json:"data"`
}

type BlogPost struct {
	ID        string         `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"not null" json:"title"`
	Content   string         `json:"content"`
	ImageURL  string         `json:"imageUrl"`
	Author    string         `json:"author"`
	Date      string         `json:"date"` // YYYY-MM-DD
	Files     []BlogPostFile `gorm:"serializer:json" json:"files"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
}
