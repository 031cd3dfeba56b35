package services

import (
	"context"
	"time"

	"storefront-backend/apperrors"
	"storefront-backend/models"
	"storefront-backend/repository"

	"github.com/google/uuid"
)

// EngagementService appends ratings and Q&A threads. Both streams are
// append-only; a user rating the same product twice is accepted as-is.
type EngagementService struct {
	ratings   repository.RatingRepo
	questions repository.QuestionRepo
	cache     *SummaryCache
}

func NewEngagementService(rr repository.RatingRepo, qr repository.QuestionRepo, cache *SummaryCache) *EngagementService {
	return &EngagementService{
		ratings:   rr,
		questions: qr,
		cache:     cache,
	}
}

func (s *EngagementService) SubmitRating(ctx context.Context, rating *models.Rating) error {
	if rating.ProductID == "" || rating.UserID == "" {
		return apperrors.ValidationFailed("productId and userId are required")
	}
	if rating.Rating < 1 || rating.Rating > 5 {
		return apperrors.ValidationFailed("rating must be between 1 and 5")
	}

	if err := s.ratings.Insert(ctx, rating); err != nil {
		return storeError(err)
	}

	// The cached aggregate is stale the moment a rating lands.
	s.cache.Invalidate(ctx, rating.ProductID)
	return nil
}

func (s *EngagementService) AskQuestion(ctx context.Context, question *models.Question) (*models.Question, error) {
	if question.ProductID == "" || question.UserID == "" || question.Username == "" || question.Question == "" {
		return nil, apperrors.ValidationFailed("productId, userId, username and question are required")
	}

	question.QuestionID = uuid.NewString()
	if err := s.questions.Insert(ctx, question); err != nil {
		return nil, storeError(err)
	}
	return question, nil
}

func (s *EngagementService) AnswerQuestion(ctx context.Context, questionID string, answer models.Answer) error {
	if answer.UserID == "" || answer.Name == "" || answer.Answer == "" {
		return apperrors.ValidationFailed("userId, name and answer are required")
	}

	answer.Date = time.Now().UTC()
	matched, err := s.questions.PushAnswer(ctx, questionID, answer)
	if err != nil {
		return storeError(err)
	}
	if matched == 0 {
		return apperrors.NotFound("Question not found")
	}
	return nil
}

func (s *EngagementService) QuestionsForProduct(ctx context.Context, productID string) ([]models.Question, error) {
	questions, err := s.questions.FindByProductID(ctx, productID)
	if err != nil {
		return nil, storeError(err)
	}
	if questions == nil {
		questions = []models.Question{}
	}
	return questions, nil
}
