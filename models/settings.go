package models

// SiteSettings and AppearanceSettings are singleton rows (ID is always 1).

type SiteSettings struct {
	ID            uint   `gorm:"primaryKey" json:"-"`
	AwardImageURL string `json:"awardImageUrl"`
	AwardText     string `json:"awardText"`
	AdminPassword string `json:"adminPassword"`
}

type VideoSource string

const (
	VideoSourceYouTube     VideoSource = "youtube"
	VideoSourceUpload      VideoSource = "upload"
	VideoSourceGoogleDrive VideoSource = "googledrive"
)

// CustomLink is a navigation entry rendered in the header or footer.
type CustomLink struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	URL      string `json:"url"`
	Category string `json:"category"` // Solutions | Company, for footer grouping
}

type AppearanceSettings struct {
	ID                uint         `gorm:"primaryKey" json:"-"`
	SiteName          string       `json:"siteName"`
	LogoURL           string       `json:"logoUrl"`
	VideoSource       VideoSource  `gorm:"type:VARCHAR(15)" json:"videoSource"`
	HomepageVideoURL  string       `json:"homepageVideoUrl"`
	HomepageVideoData string       `json:"homepageVideoData"`
	PrimaryColor      string       `json:"primaryColor"`
	SecondaryColor    string       `json:"secondaryColor"`
	HeaderLinks       []CustomLink `gorm:"serializer:json" json:"headerLinks"`
	FooterLinks       []CustomLink `gorm:"serializer:json" json:"footerLinks"`
}
