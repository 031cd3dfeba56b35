package repository

import (
	"context"

	"storefront-backend/models"
)

// Each repository exposes the operations the services need over one
// collection. Lookups use the application-level string ids (categoryId,
// product id, userId), never the Mongo _id. Missing records surface as
// mongo.ErrNoDocuments from the driver; services translate them.

type CategoryRepo interface {
	Create(ctx context.Context, category *models.Category) error
	FindByCategoryID(ctx context.Context, categoryID string) (*models.Category, error)
	FindBySlug(ctx context.Context, slug string) (*models.Category, error)
	FindAll(ctx context.Context) ([]models.Category, error)
	Sample(ctx context.Context, n int) ([]models.Category, error)
	DeleteByCategoryID(ctx context.Context, categoryID string) (int64, error)
	EnsureIndexes(ctx context.Context) error
}

type ProductRepo interface {
	Create(ctx context.Context, product *models.Product) error
	FindByProductID(ctx context.Context, productID string) (*models.Product, error)
	// FindByProductIDs returns only the matches; unmatched ids are dropped.
	FindByProductIDs(ctx context.Context, productIDs []string) ([]models.Product, error)
	FindNew(ctx context.Context, limit int) ([]models.Product, error)
	Find(ctx context.Context, page, perPage int) ([]models.Product, int64, error)
	Update(ctx context.Context, productID string, updates map[string]interface{}) (int64, error)
	DeleteByProductID(ctx context.Context, productID string) (int64, error)
	EnsureIndexes(ctx context.Context) error
}

type RatingRepo interface {
	Insert(ctx context.Context, rating *models.Rating) error
	FindByProductID(ctx context.Context, productID string) ([]models.Rating, error)
}

type QuestionRepo interface {
	Insert(ctx context.Context, question *models.Question) error
	FindByProductID(ctx context.Context, productID string) ([]models.Question, error)
	// PushAnswer appends an answer to the question's answer list and reports
	// how many questions matched.
	PushAnswer(ctx context.Context, questionID string, answer models.Answer) (int64, error)
}

type UserRepo interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByUserID(ctx context.Context, userID string) (*models.User, error)
	// ReplaceCart overwrites the user's cart list in a single write.
	ReplaceCart(ctx context.Context, userID string, items []models.CartItem) (int64, error)
	AddToWishlist(ctx context.Context, userID, productID string) (int64, error)
	RemoveFromWishlist(ctx context.Context, userID, productID string) (int64, error)
	EnsureIndexes(ctx context.Context) error
}

type SliderRepo interface {
	Create(ctx context.Context, image *models.SliderImage) error
	Sample(ctx context.Context, n int) ([]models.SliderImage, error)
}

type SubscriberRepo interface {
	Create(ctx context.Context, sub *models.Subscriber) error
	FindByEmail(ctx context.Context, email string) (*models.Subscriber, error)
}
