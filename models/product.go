package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID         primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	ProductID  string             `json:"id" bson:"id"` // External-facing key, not the Mongo _id
	Name       string             `json:"name" bson:"name"`
	CategoryID string             `json:"categoryId" bson:"categoryId"` // Reference by id only, no enforced integrity
	MRP        float64            `json:"mrp" bson:"mrp"`
	Discount   float64            `json:"discount" bson:"discount"`
	FinalPrice float64            `json:"finalPrice" bson:"finalPrice"` // Stored, not derived; callers keep it consistent with mrp/discount
	Stock      int                `json:"stock" bson:"stock"`
	Brand      string             `json:"brand" bson:"brand"`
	IsNew      bool               `json:"isNew" bson:"isNew"`
	Images     []Image            `json:"images" bson:"images"`
	Tags       []string           `json:"tags" bson:"tags"`
	// TechnicalDetails is a free-form spec sheet; keys vary per product.
	TechnicalDetails map[string]interface{} `json:"technicalDetails,omitempty" bson:"technicalDetails,omitempty"`
	CreatedAt        time.Time              `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time              `json:"updatedAt" bson:"updatedAt"`
}

// RatingSummary carries the read-time rating aggregate for a product.
// Average is "No rating available" when no ratings exist.
type RatingSummary struct {
	Average string `json:"averageRating"`
	Count   int    `json:"totalRatings"`
}

// NoRatingSentinel is reported for products without any ratings.
const NoRatingSentinel = "No rating available"

// NewArrival is the display projection for the new-arrivals feed.
// Full product detail is intentionally not exposed here.
type NewArrival struct {
	ProductID  string        `json:"id"`
	Name       string        `json:"name"`
	CategoryID string        `json:"categoryId"`
	MRP        float64       `json:"mrp"`
	Discount   float64       `json:"discount"`
	FinalPrice float64       `json:"finalPrice"`
	Tags       []string      `json:"tags"`
	Rating     RatingSummary `json:"rating"`
	Image      Image         `json:"image"`
}
