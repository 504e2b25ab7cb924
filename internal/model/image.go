package model

import (
	"fmt"
	"time"
)

// Image storage kinds.
const (
	ImageTypeURL    = "url"
	ImageTypeBase64 = "base64"
	ImageTypeS3     = "s3"
)

// Image belongs to a meal. Exactly one of ImageURL, ImageData or ObjectKey is
// set, according to ImageType.
type Image struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	MealID    uint      `gorm:"not null;index" json:"mealId"`
	ImageType string    `gorm:"size:16;not null" json:"imageType"`
	ImageURL  string    `gorm:"size:2048" json:"-"`
	ImageData string    `gorm:"type:text" json:"-"`
	MimeType  string    `gorm:"size:64" json:"mimeType,omitempty"`
	ObjectKey string    `gorm:"size:255" json:"-"`
	CreatedAt time.Time `json:"createdAt"`

	URL string `gorm:"-" json:"url"`
}

// PublicURL is what clients use to display the image: the original URL for
// linked images, the image endpoint otherwise.
func (i Image) PublicURL() string {
	if i.ImageType == ImageTypeURL {
		return i.ImageURL
	}
	return fmt.Sprintf("/api/images/%d", i.ID)
}
