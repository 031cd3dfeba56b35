package controllers

import (
	"errors"
	"strconv"

	"storefront-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Validation constants
const (
	MaxPageSize   = 100
	MaxPageNumber = 1000000
	MaxSampleSize = 20
)

// CreateCategoryRequest defines the expected payload for creating a category.
type CreateCategoryRequest struct {
	CategoryID  string `json:"categoryId" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Slug        string `json:"slug" validate:"required"`
	Description string `json:"description" validate:"required"`
	Image       struct {
		URL     string `json:"url" validate:"required,url"`
		AltText string `json:"altText" validate:"required"`
	} `json:"image" validate:"required"`
}

type CreateProductRequest struct {
	ProductID        string                 `json:"id" validate:"required"`
	Name             string                 `json:"name" validate:"required"`
	CategoryID       string                 `json:"categoryId" validate:"required"`
	MRP              float64                `json:"mrp" validate:"gte=0"`
	Discount         float64                `json:"discount" validate:"gte=0"`
	FinalPrice       float64                `json:"finalPrice" validate:"gte=0"`
	Stock            int                    `json:"stock" validate:"gte=0"`
	Brand            string                 `json:"brand"`
	IsNew            bool                   `json:"isNew"`
	Images           []models.Image         `json:"images"`
	Tags             []string               `json:"tags"`
	TechnicalDetails map[string]interface{} `json:"technicalDetails"`
}

type UpdateProductRequest struct {
	Stock *int  `json:"stock"`
	IsNew *bool `json:"isNew"`
}

type CreateSliderImageRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ImgURL      string `json:"imgUrl" validate:"required,url"`
}

type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" validate:"required,min=8"`
}

type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type BulkProductsRequest struct {
	IDs []string `json:"ids" validate:"required"`
}

// CartVariantRequest requires an id so the resulting line stays addressable
// on later update/remove calls.
type CartVariantRequest struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

type AddCartItemRequest struct {
	ProductID string              `json:"productId" validate:"required"`
	Quantity  int                 `json:"quantity"`
	Variant   *CartVariantRequest `json:"variant" validate:"omitempty"`
}

type UpdateQuantityRequest struct {
	Quantity  int    `json:"quantity"`
	VariantID string `json:"variantId"`
}

type SubmitRatingRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Rating    int    `json:"rating"`
	Review    string `json:"review"`
}

type AskQuestionRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Username  string `json:"username" validate:"required"`
	Question  string `json:"question" validate:"required"`
}

type AnswerQuestionRequest struct {
	Name   string `json:"name" validate:"required"`
	Answer string `json:"answer" validate:"required"`
}

type WishlistRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

// RequestValidator handles all input validation
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{
		validate: validator.New(),
	}
}

// Struct validates a bound request payload.
func (rv *RequestValidator) Struct(v interface{}) error {
	return rv.validate.Struct(v)
}

// ParsePagination validates and parses pagination parameters
func (rv *RequestValidator) ParsePagination(c *gin.Context) (int, int, error) {
	pageStr := c.DefaultQuery("page", "1")
	perPageStr := c.DefaultQuery("perPage", "10")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		return 0, 0, errors.New("invalid page number")
	}
	if page > MaxPageNumber {
		page = MaxPageNumber
	}

	perPage, err := strconv.Atoi(perPageStr)
	if err != nil || perPage < 1 {
		return 0, 0, errors.New("invalid page size")
	}
	if perPage > MaxPageSize {
		perPage = MaxPageSize
	}

	return page, perPage, nil
}

// ParseCount parses a sample/limit query parameter with a default.
func (rv *RequestValidator) ParseCount(c *gin.Context, name string, def int) (int, error) {
	raw := c.DefaultQuery(name, strconv.Itoa(def))
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, errors.New("invalid " + name)
	}
	if n > MaxSampleSize {
		n = MaxSampleSize
	}
	return n, nil
}
