package services

import (
	"context"
	"errors"
	"time"

	"storefront-backend/apperrors"
	"storefront-backend/models"
	"storefront-backend/notify"
	"storefront-backend/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserService handles accounts and newsletter subscriptions. Outbound mail
// is fire-and-forget through the injected sender.
type UserService struct {
	users  repository.UserRepo
	subs   repository.SubscriberRepo
	sender notify.EmailSender
}

func NewUserService(ur repository.UserRepo, sr repository.SubscriberRepo, sender notify.EmailSender) *UserService {
	return &UserService{
		users:  ur,
		subs:   sr,
		sender: sender,
	}
}

// Signup creates an account. A duplicate email fails the explicit pre-check
// with DuplicateKey and creates nothing.
func (s *UserService) Signup(ctx context.Context, name, email, phone, password string) (*models.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, apperrors.ValidationFailed("name, email and password are required")
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, apperrors.DuplicateKey("Email already registered")
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, storeError(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		UserID:   uuid.NewString(),
		Name:     name,
		Email:    email,
		Phone:    phone,
		Password: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, storeError(err)
	}

	user.Password = ""
	return user, nil
}

// GetUserByEmail returns the user projection with the credential stripped.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound("User not found")
		}
		return nil, storeError(err)
	}
	user.Password = ""
	return user, nil
}

// Subscribe registers a newsletter address and sends the welcome mail off
// the request path. Delivery failure is logged and never reaches the caller.
func (s *UserService) Subscribe(ctx context.Context, email string) error {
	if _, err := s.subs.FindByEmail(ctx, email); err == nil {
		return apperrors.DuplicateKey("Email already subscribed")
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return storeError(err)
	}

	if err := s.subs.Create(ctx, &models.Subscriber{Email: email}); err != nil {
		return storeError(err)
	}

	if s.sender != nil {
		go func() {
			bgCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			_, err := s.sender.SendEmail(bgCtx, email,
				"Welcome to the newsletter",
				"<p>Thanks for subscribing! You'll hear from us when new arrivals land.</p>")
			if err != nil {
				zap.L().Warn("Failed to send welcome email", zap.Error(err), zap.String("email", email))
			}
		}()
	}
	return nil
}
