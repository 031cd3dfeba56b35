package controllers

import (
	"net/http"

	"storefront-backend/apperrors"
	"storefront-backend/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserController struct {
	service   *services.UserService
	validator *RequestValidator
}

func NewUserController(service *services.UserService) *UserController {
	return &UserController{
		service:   service,
		validator: NewRequestValidator(),
	}
}

func (uc *UserController) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if err := uc.validator.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := uc.service.Signup(c.Request.Context(), req.Name, req.Email, req.Phone, req.Password)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	zap.L().Info("User registered", zap.String("user_id", user.UserID))
	c.JSON(http.StatusCreated, user)
}

// GetUserByEmail returns the user projection with the credential stripped.
func (uc *UserController) GetUserByEmail(c *gin.Context) {
	user, err := uc.service.GetUserByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Subscribe registers a newsletter email. The welcome mail is sent off the
// request path; its failure never changes this response.
func (uc *UserController) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if err := uc.validator.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := uc.service.Subscribe(c.Request.Context(), req.Email); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Subscribed"})
}
