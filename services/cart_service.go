package services

import (
	"context"
	"errors"

	"storefront-backend/apperrors"
	"storefront-backend/models"
	"storefront-backend/repository"

	"go.mongodb.org/mongo-driver/mongo"
)

// CartService owns the per-user cart stored on the user document. Each
// operation is one read-modify-write that replaces the cart list; two
// concurrent requests for the same user resolve as last write wins.
type CartService struct {
	users repository.UserRepo
}

func NewCartService(ur repository.UserRepo) *CartService {
	return &CartService{users: ur}
}

func (s *CartService) loadUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound("User not found")
		}
		return nil, storeError(err)
	}
	return user, nil
}

func (s *CartService) GetCart(ctx context.Context, userID string) ([]models.CartItem, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Cart == nil {
		return []models.CartItem{}, nil
	}
	return user.Cart, nil
}

// AddItem merges into an existing line with the same (productId, variant)
// key by incrementing its quantity, otherwise appends a new line.
func (s *CartService) AddItem(ctx context.Context, userID string, item models.CartItem) ([]models.CartItem, error) {
	if item.ProductID == "" {
		return nil, apperrors.ValidationFailed("productId is required")
	}
	if item.Quantity < 1 {
		return nil, apperrors.InvalidQuantity("quantity must be at least 1")
	}

	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	found := false
	for i, existing := range user.Cart {
		if existing.Key() == item.Key() {
			user.Cart[i].Quantity += item.Quantity
			found = true
			break
		}
	}
	if !found {
		user.Cart = append(user.Cart, item)
	}

	if _, err := s.users.ReplaceCart(ctx, userID, user.Cart); err != nil {
		return nil, storeError(err)
	}
	return user.Cart, nil
}

func (s *CartService) RemoveItem(ctx context.Context, userID, productID, variantID string) ([]models.CartItem, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	key := models.LineKey(productID, variantID)
	index := -1
	for i, existing := range user.Cart {
		if existing.Key() == key {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, apperrors.NotFound("Cart item not found")
	}

	user.Cart = append(user.Cart[:index], user.Cart[index+1:]...)
	if _, err := s.users.ReplaceCart(ctx, userID, user.Cart); err != nil {
		return nil, storeError(err)
	}
	return user.Cart, nil
}

// UpdateQuantity sets the line's quantity. A quantity below 1 is rejected
// before any read or write; callers must use RemoveItem to delete a line.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, productID, variantID string, quantity int) ([]models.CartItem, error) {
	if quantity < 1 {
		return nil, apperrors.InvalidQuantity("quantity must be at least 1; remove the item instead")
	}

	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	key := models.LineKey(productID, variantID)
	index := -1
	for i, existing := range user.Cart {
		if existing.Key() == key {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, apperrors.NotFound("Cart item not found")
	}

	user.Cart[index].Quantity = quantity
	if _, err := s.users.ReplaceCart(ctx, userID, user.Cart); err != nil {
		return nil, storeError(err)
	}
	return user.Cart, nil
}

func (s *CartService) AddToWishlist(ctx context.Context, userID, productID string) error {
	if productID == "" {
		return apperrors.ValidationFailed("productId is required")
	}
	matched, err := s.users.AddToWishlist(ctx, userID, productID)
	if err != nil {
		return storeError(err)
	}
	if matched == 0 {
		return apperrors.NotFound("User not found")
	}
	return nil
}

func (s *CartService) RemoveFromWishlist(ctx context.Context, userID, productID string) error {
	matched, err := s.users.RemoveFromWishlist(ctx, userID, productID)
	if err != nil {
		return storeError(err)
	}
	if matched == 0 {
		return apperrors.NotFound("User not found")
	}
	return nil
}
