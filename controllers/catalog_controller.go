package controllers

import (
	"math"
	"net/http"

	"storefront-backend/apperrors"
	"storefront-backend/models"
	"storefront-backend/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CatalogController struct {
	service   *services.CatalogService
	validator *RequestValidator
}

func NewCatalogController(service *services.CatalogService) *CatalogController {
	return &CatalogController{
		service:   service,
		validator: NewRequestValidator(),
	}
}

// GetProducts retrieves paginated products for the listing page.
func (cc *CatalogController) GetProducts(c *gin.Context) {
	page, perPage, err := cc.validator.ParsePagination(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	products, total, err := cc.service.ListProducts(c.Request.Context(), page, perPage)
	if err != nil {
		zap.L().Error("Error listing products", zap.Error(err))
		apperrors.Respond(c, err)
		return
	}

	totalPages := int(math.Ceil(float64(total) / float64(perPage)))
	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"meta": gin.H{
			"page":       page,
			"perPage":    perPage,
			"total":      total,
			"totalPages": totalPages,
		},
	})
}

// GetProductDetail returns one product joined with its rating summary.
func (cc *CatalogController) GetProductDetail(c *gin.Context) {
	detail, err := cc.service.ProductDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		if !apperrors.IsNotFound(err) {
			zap.L().Error("Error fetching product detail", zap.Error(err), zap.String("id", c.Param("id")))
		}
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// GetProductsBulk resolves a list of product ids; unmatched ids are dropped.
func (cc *CatalogController) GetProductsBulk(c *gin.Context) {
	var req BulkProductsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if err := cc.validator.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	products, err := cc.service.ProductsBulk(c.Request.Context(), req.IDs)
	if err != nil {
		zap.L().Error("Error fetching products in bulk", zap.Error(err))
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (cc *CatalogController) GetNewArrivals(c *gin.Context) {
	limit, err := cc.validator.ParseCount(c, "limit", services.DefaultNewArrivalsLimit)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	feed, err := cc.service.NewArrivals(c.Request.Context(), limit)
	if err != nil {
		zap.L().Error("Error building new-arrivals feed", zap.Error(err))
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"newArrivals": feed})
}

// GetCategoriesSample returns exactly n entries, padding with the
// "coming soon" placeholder when fewer categories exist.
func (cc *CatalogController) GetCategoriesSample(c *gin.Context) {
	n, err := cc.validator.ParseCount(c, "n", services.DefaultCategorySampleSize)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	categories, err := cc.service.SampleCategories(c.Request.Context(), n)
	if err != nil {
		zap.L().Error("Error sampling categories", zap.Error(err))
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (cc *CatalogController) GetAllCategories(c *gin.Context) {
	categories, err := cc.service.ListCategories(c.Request.Context())
	if err != nil {
		zap.L().Error("Error listing categories", zap.Error(err))
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (cc *CatalogController) GetSliderImages(c *gin.Context) {
	n, err := cc.validator.ParseCount(c, "n", services.DefaultSliderSampleSize)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	images, err := cc.service.SampleSliderImages(c.Request.Context(), n)
	if err != nil {
		zap.L().Error("Error sampling slider images", zap.Error(err))
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sliderImages": images})
}

// CreateCategory handles the admin create operation.
func (cc *CatalogController) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if err := cc.validator.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := &models.Category{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Image: models.Image{
			URL:     req.Image.URL,
			AltText: req.Image.AltText,
		},
	}

	created, err := cc.service.CreateCategory(c.Request.Context(), category)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	zap.L().Info("Category created", zap.String("categoryId", created.CategoryID))
	c.JSON(http.StatusCreated, created)
}

func (cc *CatalogController) DeleteCategory(c *gin.Context) {
	if err := cc.service.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}

func (cc *CatalogController) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if err := cc.validator.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := &models.Product{
		ProductID:        req.ProductID,
		Name:             req.Name,
		CategoryID:       req.CategoryID,
		MRP:              req.MRP,
		Discount:         req.Discount,
		FinalPrice:       req.FinalPrice,
		Stock:            req.Stock,
		Brand:            req.Brand,
		IsNew:            req.IsNew,
		Images:           req.Images,
		Tags:             req.Tags,
		TechnicalDetails: req.TechnicalDetails,
	}

	created, err := cc.service.CreateProduct(c.Request.Context(), product)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	zap.L().Info("Product created", zap.String("id", created.ProductID))
	c.JSON(http.StatusCreated, created)
}

func (cc *CatalogController) DeleteProduct(c *gin.Context) {
	if err := cc.service.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

// UpdateProduct mutates stock and isNew, the only fields that change after
// creation.
func (cc *CatalogController) UpdateProduct(c *gin.Context) {
	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if err := cc.service.UpdateProduct(c.Request.Context(), c.Param("id"), req.Stock, req.IsNew); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated"})
}

func (cc *CatalogController) CreateSliderImage(c *gin.Context) {
	var req CreateSliderImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if err := cc.validator.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	image := &models.SliderImage{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		ImgURL:      req.ImgURL,
	}
	created, err := cc.service.CreateSliderImage(c.Request.Context(), image)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}
