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

type CartController struct {
	service   *services.CartService
	validator *RequestValidator
}

func NewCartController(service *services.CartService) *CartController {
	return &CartController{
		service:   service,
		validator: NewRequestValidator(),
	}
}

// GetCart returns the current cart for the authenticated user.
func (cc *CartController) GetCart(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	items, err := cc.service.GetCart(c.Request.Context(), userID)
	if err != nil {
		zap.L().Error("Error fetching cart", zap.Error(err), zap.String("user_id", userID))
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": items})
}

// AddItem adds a line item or merges into an existing one.
func (cc *CartController) AddItem(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if err := cc.validator.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := models.CartItem{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	}
	if req.Variant != nil {
		item.Variant = &models.Variant{ID: req.Variant.ID, Name: req.Variant.Name, Hex: req.Variant.Hex}
	}
	items, err := cc.service.AddItem(c.Request.Context(), userID, item)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": items})
}

// UpdateQuantity sets a line's quantity. Zero is rejected; removing a line
// goes through RemoveItem.
func (cc *CartController) UpdateQuantity(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	items, err := cc.service.UpdateQuantity(c.Request.Context(), userID, c.Param("productId"), req.VariantID, req.Quantity)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": items})
}

func (cc *CartController) RemoveItem(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	items, err := cc.service.RemoveItem(c.Request.Context(), userID, c.Param("productId"), c.Query("variantId"))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": items})
}

func (cc *CartController) AddToWishlist(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req WishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if err := cc.validator.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := cc.service.AddToWishlist(c.Request.Context(), userID, req.ProductID); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Added to wishlist"})
}

func (cc *CartController) RemoveFromWishlist(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := cc.service.RemoveFromWishlist(c.Request.Context(), userID, c.Param("productId")); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Removed from wishlist"})
}
