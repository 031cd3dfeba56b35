package services_test

import (
	"context"
	"net/http"
	"testing"

	"storefront-backend/apperrors"
	"storefront-backend/models"
	"storefront-backend/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogService(cr *mockCategoryRepo, pr *mockProductRepo, rr *mockRatingRepo, sr *mockSliderRepo) *services.CatalogService {
	return services.NewCatalogService(cr, pr, rr, sr, nil)
}

func seedProduct(pr *mockProductRepo, id string, isNew bool) {
	pr.Create(context.Background(), &models.Product{
		ProductID:  id,
		Name:       "Product " + id,
		CategoryID: "C1001",
		MRP:        999,
		Discount:   10,
		FinalPrice: 899.1,
		IsNew:      isNew,
		Images: []models.Image{
			{URL: "https://img.example.com/" + id + "-front.jpg", AltText: "front"},
			{URL: "https://img.example.com/" + id + "-back.jpg", AltText: "back"},
		},
		Tags: []string{"electronics"},
	})
}

func TestRatingSummary_NoRatings(t *testing.T) {
	svc := newCatalogService(newMockCategoryRepo(), newMockProductRepo(), newMockRatingRepo(), &mockSliderRepo{})

	summary, err := svc.RatingSummary(context.Background(), "P100")
	require.NoError(t, err)
	assert.Equal(t, models.NoRatingSentinel, summary.Average)
	assert.Equal(t, 0, summary.Count)
}

func TestRatingSummary_Mean(t *testing.T) {
	rr := newMockRatingRepo()
	for _, v := range []int{5, 4, 3} {
		require.NoError(t, rr.Insert(context.Background(), &models.Rating{ProductID: "P100", UserID: "U1", Rating: v}))
	}
	svc := newCatalogService(newMockCategoryRepo(), newMockProductRepo(), rr, &mockSliderRepo{})

	summary, err := svc.RatingSummary(context.Background(), "P100")
	require.NoError(t, err)
	assert.Equal(t, "4.0", summary.Average)
	assert.Equal(t, 3, summary.Count)
}

func TestRatingSummary_RoundsToOneDecimal(t *testing.T) {
	rr := newMockRatingRepo()
	// 5, 4, 4 -> 4.333... -> 4.3
	for _, v := range []int{5, 4, 4} {
		require.NoError(t, rr.Insert(context.Background(), &models.Rating{ProductID: "P100", UserID: "U1", Rating: v}))
	}
	svc := newCatalogService(newMockCategoryRepo(), newMockProductRepo(), rr, &mockSliderRepo{})

	summary, err := svc.RatingSummary(context.Background(), "P100")
	require.NoError(t, err)
	assert.Equal(t, "4.3", summary.Average)
}

func TestProductDetail_NotFound(t *testing.T) {
	svc := newCatalogService(newMockCategoryRepo(), newMockProductRepo(), newMockRatingRepo(), &mockSliderRepo{})

	_, err := svc.ProductDetail(context.Background(), "missing")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestProductDetail_JoinsRatingSummary(t *testing.T) {
	pr := newMockProductRepo()
	rr := newMockRatingRepo()
	seedProduct(pr, "P100", false)
	require.NoError(t, rr.Insert(context.Background(), &models.Rating{ProductID: "P100", UserID: "U1", Rating: 5}))
	svc := newCatalogService(newMockCategoryRepo(), pr, rr, &mockSliderRepo{})

	detail, err := svc.ProductDetail(context.Background(), "P100")
	require.NoError(t, err)
	assert.Equal(t, "P100", detail.Product.ProductID)
	assert.Equal(t, "5.0", detail.Rating.Average)
	assert.Equal(t, 1, detail.Rating.Count)
}

func TestProductsBulk_DropsUnmatchedIDs(t *testing.T) {
	pr := newMockProductRepo()
	seedProduct(pr, "P100", false)
	seedProduct(pr, "P200", false)
	svc := newCatalogService(newMockCategoryRepo(), pr, newMockRatingRepo(), &mockSliderRepo{})

	products, err := svc.ProductsBulk(context.Background(), []string{"P100", "nope", "P200", "alsono"})
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestProductsBulk_EmptyInput(t *testing.T) {
	svc := newCatalogService(newMockCategoryRepo(), newMockProductRepo(), newMockRatingRepo(), &mockSliderRepo{})

	products, err := svc.ProductsBulk(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestSampleCategories_PadsWithPlaceholder(t *testing.T) {
	cr := newMockCategoryRepo()
	require.NoError(t, cr.Create(context.Background(), &models.Category{
		CategoryID:  "C1001",
		Name:        "Laptops",
		Slug:        "laptops",
		Description: "Portable computers",
		Image:       models.Image{URL: "https://img.example.com/laptops.jpg", AltText: "Laptops"},
	}))
	svc := newCatalogService(cr, newMockProductRepo(), newMockRatingRepo(), &mockSliderRepo{})

	categories, err := svc.SampleCategories(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, categories, 3)

	placeholders := 0
	for _, c := range categories {
		if c.CategoryID == models.PlaceholderCategoryID {
			placeholders++
			assert.Equal(t, "Coming Soon", c.Name)
		}
	}
	assert.Equal(t, 2, placeholders)
}

func TestSampleCategories_NoPaddingWhenEnough(t *testing.T) {
	cr := newMockCategoryRepo()
	for _, id := range []string{"C1", "C2", "C3", "C4"} {
		require.NoError(t, cr.Create(context.Background(), &models.Category{
			CategoryID: id, Name: id, Slug: id, Description: id,
			Image: models.Image{URL: "https://img.example.com/" + id + ".jpg", AltText: id},
		}))
	}
	svc := newCatalogService(cr, newMockProductRepo(), newMockRatingRepo(), &mockSliderRepo{})

	categories, err := svc.SampleCategories(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, categories, 3)
	for _, c := range categories {
		assert.NotEqual(t, models.PlaceholderCategoryID, c.CategoryID)
	}
}

func TestNewArrivals_ProjectionAndRating(t *testing.T) {
	pr := newMockProductRepo()
	rr := newMockRatingRepo()
	seedProduct(pr, "P100", true)
	seedProduct(pr, "P200", false)
	require.NoError(t, rr.Insert(context.Background(), &models.Rating{ProductID: "P100", UserID: "U1", Rating: 4}))
	svc := newCatalogService(newMockCategoryRepo(), pr, rr, &mockSliderRepo{})

	feed, err := svc.NewArrivals(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, feed, 1)

	entry := feed[0]
	assert.Equal(t, "P100", entry.ProductID)
	assert.Equal(t, "4.0", entry.Rating.Average)
	assert.Equal(t, 1, entry.Rating.Count)
	// The chosen image must come from the product's own image list.
	assert.Contains(t, []string{
		"https://img.example.com/P100-front.jpg",
		"https://img.example.com/P100-back.jpg",
	}, entry.Image.URL)
}

func TestSampleSliderImages_NoPadding(t *testing.T) {
	sr := &mockSliderRepo{}
	require.NoError(t, sr.Create(context.Background(), &models.SliderImage{Title: "Summer Sale", ImgURL: "https://img.example.com/sale.jpg"}))
	svc := newCatalogService(newMockCategoryRepo(), newMockProductRepo(), newMockRatingRepo(), sr)

	images, err := svc.SampleSliderImages(context.Background(), 4)
	require.NoError(t, err)
	assert.Len(t, images, 1)
}

func TestCreateCategory_DuplicateID(t *testing.T) {
	cr := newMockCategoryRepo()
	svc := newCatalogService(cr, newMockProductRepo(), newMockRatingRepo(), &mockSliderRepo{})

	first := &models.Category{
		CategoryID: "C1001", Name: "Laptops", Slug: "laptops", Description: "Portable computers",
		Image: models.Image{URL: "https://img.example.com/laptops.jpg", AltText: "Laptops"},
	}
	_, err := svc.CreateCategory(context.Background(), first)
	require.NoError(t, err)

	dup := &models.Category{
		CategoryID: "C1001", Name: "Other", Slug: "other", Description: "Other things",
		Image: models.Image{URL: "https://img.example.com/other.jpg", AltText: "Other"},
	}
	_, err = svc.CreateCategory(context.Background(), dup)
	assert.True(t, apperrors.Is(err, http.StatusConflict))

	// The existing record is untouched.
	existing, err := cr.FindByCategoryID(context.Background(), "C1001")
	require.NoError(t, err)
	assert.Equal(t, "Laptops", existing.Name)
}

func TestCreateCategory_DuplicateSlug(t *testing.T) {
	cr := newMockCategoryRepo()
	svc := newCatalogService(cr, newMockProductRepo(), newMockRatingRepo(), &mockSliderRepo{})

	_, err := svc.CreateCategory(context.Background(), &models.Category{
		CategoryID: "C1001", Name: "Laptops", Slug: "laptops", Description: "Portable computers",
		Image: models.Image{URL: "https://img.example.com/laptops.jpg", AltText: "Laptops"},
	})
	require.NoError(t, err)

	_, err = svc.CreateCategory(context.Background(), &models.Category{
		CategoryID: "C2002", Name: "Notebooks", Slug: "laptops", Description: "Also portable",
		Image: models.Image{URL: "https://img.example.com/nb.jpg", AltText: "Notebooks"},
	})
	assert.True(t, apperrors.Is(err, http.StatusConflict))
}

func TestCreateCategory_MissingFields(t *testing.T) {
	svc := newCatalogService(newMockCategoryRepo(), newMockProductRepo(), newMockRatingRepo(), &mockSliderRepo{})

	_, err := svc.CreateCategory(context.Background(), &models.Category{CategoryID: "C1001", Name: "Laptops"})
	assert.True(t, apperrors.Is(err, http.StatusBadRequest))
}

func TestDeleteCategory_SecondDeleteNotFound(t *testing.T) {
	cr := newMockCategoryRepo()
	svc := newCatalogService(cr, newMockProductRepo(), newMockRatingRepo(), &mockSliderRepo{})

	_, err := svc.CreateCategory(context.Background(), &models.Category{
		CategoryID: "C1001", Name: "Laptops", Slug: "laptops", Description: "Portable computers",
		Image: models.Image{URL: "https://img.example.com/laptops.jpg", AltText: "Laptops"},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCategory(context.Background(), "C1001"))
	err = svc.DeleteCategory(context.Background(), "C1001")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestCreateProduct_Duplicate(t *testing.T) {
	pr := newMockProductRepo()
	svc := newCatalogService(newMockCategoryRepo(), pr, newMockRatingRepo(), &mockSliderRepo{})
	seedProduct(pr, "P100", false)

	_, err := svc.CreateProduct(context.Background(), &models.Product{ProductID: "P100", Name: "Clone", CategoryID: "C1001"})
	assert.True(t, apperrors.Is(err, http.StatusConflict))
}

func TestUpdateProduct_OnlyMutableFields(t *testing.T) {
	pr := newMockProductRepo()
	svc := newCatalogService(newMockCategoryRepo(), pr, newMockRatingRepo(), &mockSliderRepo{})
	seedProduct(pr, "P100", true)

	stock := 42
	isNew := false
	require.NoError(t, svc.UpdateProduct(context.Background(), "P100", &stock, &isNew))

	p, err := pr.FindByProductID(context.Background(), "P100")
	require.NoError(t, err)
	assert.Equal(t, 42, p.Stock)
	assert.False(t, p.IsNew)
}

func TestUpdateProduct_NotFound(t *testing.T) {
	svc := newCatalogService(newMockCategoryRepo(), newMockProductRepo(), newMockRatingRepo(), &mockSliderRepo{})

	stock := 1
	err := svc.UpdateProduct(context.Background(), "missing", &stock, nil)
	assert.True(t, apperrors.IsNotFound(err))
}
