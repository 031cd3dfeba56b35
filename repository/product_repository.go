package repository

import (
	"context"
	"time"

	"storefront-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProductRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{
		collection: db.Collection("products"),
	}
}

func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now
	_, err := r.collection.InsertOne(ctx, product)
	return err
}

func (r *ProductRepository) FindByProductID(ctx context.Context, productID string) (*models.Product, error) {
	var product models.Product
	err := r.collection.FindOne(ctx, bson.M{"id": productID}).Decode(&product)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FindByProductIDs returns every product whose id is in productIDs.
// Ids that match nothing are dropped with no per-id error.
func (r *ProductRepository) FindByProductIDs(ctx context.Context, productIDs []string) ([]models.Product, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"id": bson.M{"$in": productIDs}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err = cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) FindNew(ctx context.Context, limit int) ([]models.Product, error) {
	findOptions := options.Find().SetLimit(int64(limit))
	cursor, err := r.collection.Find(ctx, bson.M{"isNew": true}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err = cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) Find(ctx context.Context, page, perPage int) ([]models.Product, int64, error) {
	findOptions := options.Find().
		SetLimit(int64(perPage)).
		SetSkip(int64((page - 1) * perPage))

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err = cursor.All(ctx, &products); err != nil {
		return nil, 0, err
	}

	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *ProductRepository) Update(ctx context.Context, productID string, updates map[string]interface{}) (int64, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	for k, v := range updates {
		set[k] = v
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"id": productID}, bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

// DeleteByProductID removes the product only. Ratings, questions and cart
// lines that reference the id are left dangling; readers must tolerate that.
func (r *ProductRepository) DeleteByProductID(ctx context.Context, productID string) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"id": productID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *ProductRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "isNew", Value: 1}},
		},
	})
	return err
}
