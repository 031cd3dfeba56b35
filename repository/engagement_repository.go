package repository

import (
	"context"
	"time"

	"storefront-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// RatingRepository is append-only: ratings are never updated or removed.
type RatingRepository struct {
	collection *mongo.Collection
}

func NewRatingRepository(db *mongo.Database) *RatingRepository {
	return &RatingRepository{
		collection: db.Collection("ratings"),
	}
}

func (r *RatingRepository) Insert(ctx context.Context, rating *models.Rating) error {
	rating.CreatedAt = time.Now().UTC()
	_, err := r.collection.InsertOne(ctx, rating)
	return err
}

func (r *RatingRepository) FindByProductID(ctx context.Context, productID string) ([]models.Rating, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"productId": productID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var ratings []models.Rating
	if err = cursor.All(ctx, &ratings); err != nil {
		return nil, err
	}
	return ratings, nil
}

type QuestionRepository struct {
	collection *mongo.Collection
}

func NewQuestionRepository(db *mongo.Database) *QuestionRepository {
	return &QuestionRepository{
		collection: db.Collection("questions"),
	}
}

func (r *QuestionRepository) Insert(ctx context.Context, question *models.Question) error {
	question.CreatedAt = time.Now().UTC()
	if question.Answers == nil {
		question.Answers = []models.Answer{}
	}
	_, err := r.collection.InsertOne(ctx, question)
	return err
}

func (r *QuestionRepository) FindByProductID(ctx context.Context, productID string) ([]models.Question, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"productId": productID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questions []models.Question
	if err = cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *QuestionRepository) PushAnswer(ctx context.Context, questionID string, answer models.Answer) (int64, error) {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"questionId": questionID},
		bson.M{"$push": bson.M{"answers": answer}},
	)
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}
