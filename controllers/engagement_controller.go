package controllers

import (
	"net/http"

	"storefront-backend/apperrors"
	"storefront-backend/middleware"
	"storefront-backend/models"
	"storefront-backend/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type EngagementController struct {
	service   *services.EngagementService
	validator *RequestValidator
}

func NewEngagementController(service *services.EngagementService) *EngagementController {
	return &EngagementController{
		service:   service,
		validator: NewRequestValidator(),
	}
}

// SubmitRating appends a rating. Repeat ratings by the same user are
// accepted.
func (ec *EngagementController) SubmitRating(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if err := ec.validator.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating := &models.Rating{
		ProductID: req.ProductID,
		UserID:    userID,
		Rating:    req.Rating,
		Review:    req.Review,
	}
	if err := ec.service.SubmitRating(c.Request.Context(), rating); err != nil {
		apperrors.Respond(c, err)
		return
	}

	zap.L().Info("Rating submitted", zap.String("product_id", req.ProductID), zap.Int("rating", req.Rating))
	c.JSON(http.StatusCreated, gin.H{"message": "Rating submitted"})
}

// GetQuestions lists a product's Q&A threads.
func (ec *EngagementController) GetQuestions(c *gin.Context) {
	questions, err := ec.service.QuestionsForProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		zap.L().Error("Error fetching questions", zap.Error(err), zap.String("product_id", c.Param("id")))
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

func (ec *EngagementController) AskQuestion(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req AskQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if err := ec.validator.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	question := &models.Question{
		ProductID: req.ProductID,
		UserID:    userID,
		Username:  req.Username,
		Question:  req.Question,
	}
	created, err := ec.service.AskQuestion(c.Request.Context(), question)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (ec *EngagementController) AnswerQuestion(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req AnswerQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if err := ec.validator.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	answer := models.Answer{
		UserID: userID,
		Name:   req.Name,
		Answer: req.Answer,
	}
	if err := ec.service.AnswerQuestion(c.Request.Context(), c.Param("questionId"), answer); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Answer added"})
}
