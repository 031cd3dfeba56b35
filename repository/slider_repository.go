package repository

import (
	"context"
	"time"

	"storefront-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type SliderRepository struct {
	collection *mongo.Collection
}

func NewSliderRepository(db *mongo.Database) *SliderRepository {
	return &SliderRepository{
		collection: db.Collection("sliderimages"),
	}
}

func (r *SliderRepository) Create(ctx context.Context, image *models.SliderImage) error {
	_, err := r.collection.InsertOne(ctx, image)
	return err
}

func (r *SliderRepository) Sample(ctx context.Context, n int) ([]models.SliderImage, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$sample", Value: bson.M{"size": n}}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var images []models.SliderImage
	if err = cursor.All(ctx, &images); err != nil {
		return nil, err
	}
	return images, nil
}

type SubscriberRepository struct {
	collection *mongo.Collection
}

func NewSubscriberRepository(db *mongo.Database) *SubscriberRepository {
	return &SubscriberRepository{
		collection: db.Collection("subscribers"),
	}
}

func (r *SubscriberRepository) Create(ctx context.Context, sub *models.Subscriber) error {
	sub.CreatedAt = time.Now().UTC()
	_, err := r.collection.InsertOne(ctx, sub)
	return err
}

func (r *SubscriberRepository) FindByEmail(ctx context.Context, email string) (*models.Subscriber, error) {
	var sub models.Subscriber
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&sub)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}
