package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Variant is an optional color choice on a cart line item.
type Variant struct {
	ID   string `json:"id" bson:"id"`
	Name string `json:"name" bson:"name"`
	Hex  string `json:"hex" bson:"hex"`
}

// CartItem is one line in a user's cart. Lines are keyed by
// (productId, variant id or absence); quantity is always >= 1.
type CartItem struct {
	ProductID string   `json:"productId" bson:"productId"`
	Quantity  int      `json:"quantity" bson:"quantity"`
	Variant   *Variant `json:"variant,omitempty" bson:"variant,omitempty"`
}

// LineKey identifies a cart line by product id plus variant id. An empty
// variant id counts as no variant so the line stays addressable by callers
// that pass only a product id.
func LineKey(productID, variantID string) string {
	if variantID != "" {
		return productID + "|" + variantID
	}
	return productID
}

// Key identifies a cart line within a user's cart.
func (ci CartItem) Key() string {
	variantID := ""
	if ci.Variant != nil {
		variantID = ci.Variant.ID
	}
	return LineKey(ci.ProductID, variantID)
}

type User struct {
	ID        primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	UserID    string             `json:"userId" bson:"userId"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Phone     string             `json:"phone" bson:"phone"`
	Password  string             `json:"-" bson:"password"`
	Wishlist  []string           `json:"wishlist" bson:"wishlist"` // Product ids, no ownership
	Cart      []CartItem         `json:"cart" bson:"cart"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type Subscriber struct {
	ID        primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Email     string             `json:"email" bson:"email"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
