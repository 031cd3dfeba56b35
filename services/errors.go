package services

import (
	"errors"

	"storefront-backend/apperrors"

	"go.mongodb.org/mongo-driver/mongo"
)

// storeError maps driver-level failures onto the application taxonomy.
// Connection problems become StoreUnavailable; already-typed errors pass
// through; anything else stays opaque for the controller to turn into a 500.
func storeError(err error) error {
	if err == nil {
		return nil
	}
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		return err
	}
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) || errors.Is(err, mongo.ErrClientDisconnected) {
		return apperrors.StoreUnavailable(err)
	}
	return err
}
