package controllers_test

import (
	"testing"

	"storefront-backend/controllers"

	"github.com/stretchr/testify/assert"
)

func TestAddCartItemRequest_VariantNeedsID(t *testing.T) {
	rv := controllers.NewRequestValidator()

	err := rv.Struct(&controllers.AddCartItemRequest{
		ProductID: "P100",
		Quantity:  1,
		Variant:   &controllers.CartVariantRequest{Name: "Red", Hex: "#ff0000"},
	})
	assert.Error(t, err)

	err = rv.Struct(&controllers.AddCartItemRequest{
		ProductID: "P100",
		Quantity:  1,
		Variant:   &controllers.CartVariantRequest{ID: "V1", Name: "Red", Hex: "#ff0000"},
	})
	assert.NoError(t, err)
}

func TestAddCartItemRequest_VariantOptional(t *testing.T) {
	rv := controllers.NewRequestValidator()

	err := rv.Struct(&controllers.AddCartItemRequest{ProductID: "P100", Quantity: 1})
	assert.NoError(t, err)
}
