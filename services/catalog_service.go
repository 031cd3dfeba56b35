package services

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"strconv"

	"storefront-backend/apperrors"
	"storefront-backend/models"
	"storefront-backend/repository"

	"go.mongodb.org/mongo-driver/mongo"
)

const (
	DefaultCategorySampleSize = 3
	DefaultSliderSampleSize   = 4
	DefaultNewArrivalsLimit   = 10
)

// ProductDetail is a product joined with its rating summary.
type ProductDetail struct {
	Product models.Product       `json:"product"`
	Rating  models.RatingSummary `json:"rating"`
}

// CatalogService answers all catalog reads and owns the admin write path for
// categories, products and slider images. Derived values (rating summaries,
// random samples, feed projections) are computed at read time and never
// stored back.
type CatalogService struct {
	categories repository.CategoryRepo
	products   repository.ProductRepo
	ratings    repository.RatingRepo
	sliders    repository.SliderRepo
	cache      *SummaryCache
}

func NewCatalogService(cr repository.CategoryRepo, pr repository.ProductRepo, rr repository.RatingRepo, sr repository.SliderRepo, cache *SummaryCache) *CatalogService {
	return &CatalogService{
		categories: cr,
		products:   pr,
		ratings:    rr,
		sliders:    sr,
		cache:      cache,
	}
}

// RatingSummary computes the arithmetic mean of all ratings for a product,
// rounded to one decimal. Products without ratings report the sentinel and a
// zero count.
func (s *CatalogService) RatingSummary(ctx context.Context, productID string) (models.RatingSummary, error) {
	if cached, ok := s.cache.Get(ctx, productID); ok {
		return *cached, nil
	}

	ratings, err := s.ratings.FindByProductID(ctx, productID)
	if err != nil {
		return models.RatingSummary{}, storeError(err)
	}

	summary := models.RatingSummary{Average: models.NoRatingSentinel, Count: 0}
	if len(ratings) > 0 {
		sum := 0
		for _, r := range ratings {
			sum += r.Rating
		}
		avg := math.Round(float64(sum)/float64(len(ratings))*10) / 10
		summary = models.RatingSummary{
			Average: strconv.FormatFloat(avg, 'f', 1, 64),
			Count:   len(ratings),
		}
	}

	s.cache.SetAsync(productID, summary)
	return summary, nil
}

// ProductDetail resolves one product by its external id and attaches the
// rating summary.
func (s *CatalogService) ProductDetail(ctx context.Context, productID string) (*ProductDetail, error) {
	product, err := s.products.FindByProductID(ctx, productID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound("Product not found")
		}
		return nil, storeError(err)
	}

	summary, err := s.RatingSummary(ctx, productID)
	if err != nil {
		return nil, err
	}

	return &ProductDetail{Product: *product, Rating: summary}, nil
}

// ProductsBulk returns every product matching the given ids. Unmatched ids
// are dropped silently, so the result may be shorter than the input.
func (s *CatalogService) ProductsBulk(ctx context.Context, productIDs []string) ([]models.Product, error) {
	if len(productIDs) == 0 {
		return []models.Product{}, nil
	}
	products, err := s.products.FindByProductIDs(ctx, productIDs)
	if err != nil {
		return nil, storeError(err)
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// NewArrivals projects isNew products into the display feed, joining each to
// its rating summary and picking one image at random per call.
func (s *CatalogService) NewArrivals(ctx context.Context, limit int) ([]models.NewArrival, error) {
	if limit <= 0 {
		limit = DefaultNewArrivalsLimit
	}
	products, err := s.products.FindNew(ctx, limit)
	if err != nil {
		return nil, storeError(err)
	}

	feed := make([]models.NewArrival, 0, len(products))
	for _, p := range products {
		summary, err := s.RatingSummary(ctx, p.ProductID)
		if err != nil {
			return nil, err
		}

		var image models.Image
		if len(p.Images) > 0 {
			image = p.Images[rand.Intn(len(p.Images))]
		}

		feed = append(feed, models.NewArrival{
			ProductID:  p.ProductID,
			Name:       p.Name,
			CategoryID: p.CategoryID,
			MRP:        p.MRP,
			Discount:   p.Discount,
			FinalPrice: p.FinalPrice,
			Tags:       p.Tags,
			Rating:     summary,
			Image:      image,
		})
	}
	return feed, nil
}

// SampleCategories draws n categories at random and pads the result with the
// fixed "coming soon" placeholder until it reaches length n.
func (s *CatalogService) SampleCategories(ctx context.Context, n int) ([]models.Category, error) {
	if n <= 0 {
		n = DefaultCategorySampleSize
	}
	categories, err := s.categories.Sample(ctx, n)
	if err != nil {
		return nil, storeError(err)
	}
	for len(categories) < n {
		categories = append(categories, models.PlaceholderCategory())
	}
	return categories, nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categories.FindAll(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

// SampleSliderImages draws n promotional banners at random. No padding.
func (s *CatalogService) SampleSliderImages(ctx context.Context, n int) ([]models.SliderImage, error) {
	if n <= 0 {
		n = DefaultSliderSampleSize
	}
	images, err := s.sliders.Sample(ctx, n)
	if err != nil {
		return nil, storeError(err)
	}
	if images == nil {
		images = []models.SliderImage{}
	}
	return images, nil
}

func (s *CatalogService) ListProducts(ctx context.Context, page, perPage int) ([]models.Product, int64, error) {
	products, total, err := s.products.Find(ctx, page, perPage)
	if err != nil {
		return nil, 0, storeError(err)
	}
	return products, total, nil
}

// CreateCategory inserts a category after an explicit existence pre-check on
// both unique keys, so duplicates come back as a clean typed error rather
// than a raw index violation.
func (s *CatalogService) CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error) {
	if category.CategoryID == "" || category.Name == "" || category.Slug == "" || category.Description == "" ||
		category.Image.URL == "" || category.Image.AltText == "" {
		return nil, apperrors.ValidationFailed("categoryId, name, slug, description and image{url, altText} are required")
	}

	if _, err := s.categories.FindByCategoryID(ctx, category.CategoryID); err == nil {
		return nil, apperrors.DuplicateKey("Category id already exists")
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, storeError(err)
	}
	if _, err := s.categories.FindBySlug(ctx, category.Slug); err == nil {
		return nil, apperrors.DuplicateKey("Category slug already exists")
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, storeError(err)
	}

	if err := s.categories.Create(ctx, category); err != nil {
		return nil, storeError(err)
	}
	return category, nil
}

// DeleteCategory removes a category by its external id. Deleting the same id
// twice reports NotFound the second time.
func (s *CatalogService) DeleteCategory(ctx context.Context, categoryID string) error {
	deleted, err := s.categories.DeleteByCategoryID(ctx, categoryID)
	if err != nil {
		return storeError(err)
	}
	if deleted == 0 {
		return apperrors.NotFound("Category not found")
	}
	return nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	if product.ProductID == "" || product.Name == "" || product.CategoryID == "" {
		return nil, apperrors.ValidationFailed("id, name and categoryId are required")
	}

	if _, err := s.products.FindByProductID(ctx, product.ProductID); err == nil {
		return nil, apperrors.DuplicateKey("Product id already exists")
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, storeError(err)
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, storeError(err)
	}
	return product, nil
}

// DeleteProduct removes the product record only. Ratings, questions and cart
// lines referencing the id are left in place and readers tolerate the
// dangling reference.
func (s *CatalogService) DeleteProduct(ctx context.Context, productID string) error {
	deleted, err := s.products.DeleteByProductID(ctx, productID)
	if err != nil {
		return storeError(err)
	}
	if deleted == 0 {
		return apperrors.NotFound("Product not found")
	}
	return nil
}

// UpdateProduct mutates the post-creation-mutable fields. Everything else on
// a product is fixed once created.
func (s *CatalogService) UpdateProduct(ctx context.Context, productID string, stock *int, isNew *bool) error {
	updates := map[string]interface{}{}
	if stock != nil {
		if *stock < 0 {
			return apperrors.ValidationFailed("stock cannot be negative")
		}
		updates["stock"] = *stock
	}
	if isNew != nil {
		updates["isNew"] = *isNew
	}
	if len(updates) == 0 {
		return apperrors.ValidationFailed("nothing to update")
	}

	matched, err := s.products.Update(ctx, productID, updates)
	if err != nil {
		return storeError(err)
	}
	if matched == 0 {
		return apperrors.NotFound("Product not found")
	}
	return nil
}

// CreateSliderImage seeds a promotional banner.
func (s *CatalogService) CreateSliderImage(ctx context.Context, image *models.SliderImage) (*models.SliderImage, error) {
	if image.Title == "" || image.ImgURL == "" {
		return nil, apperrors.ValidationFailed("title and imgUrl are required")
	}
	if err := s.sliders.Create(ctx, image); err != nil {
		return nil, storeError(err)
	}
	return image, nil
}
