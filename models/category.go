package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Image is a hosted image reference with alt text for accessibility.
type Image struct {
	URL     string `json:"url" bson:"url"`
	AltText string `json:"altText" bson:"altText"`
}

type Category struct {
	ID          primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	CategoryID  string             `json:"categoryId" bson:"categoryId"` // External-facing key, not the Mongo _id
	Name        string             `json:"name" bson:"name"`
	Slug        string             `json:"slug" bson:"slug"`
	Description string             `json:"description" bson:"description"`
	Image       Image              `json:"image" bson:"image"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Placeholder values used to pad undersized category samples on the home page.
const (
	PlaceholderCategoryID = "C0000"
	PlaceholderName       = "Coming Soon"
	PlaceholderSlug       = "coming-soon"
	PlaceholderImageURL   = "https://res.cloudinary.com/storefront/image/upload/coming-soon.png"
)

// PlaceholderCategory returns the fixed "coming soon" filler record.
func PlaceholderCategory() Category {
	return Category{
		CategoryID:  PlaceholderCategoryID,
		Name:        PlaceholderName,
		Slug:        PlaceholderSlug,
		Description: "New categories are on the way. Stay tuned!",
		Image: Image{
			URL:     PlaceholderImageURL,
			AltText: PlaceholderName,
		},
	}
}
