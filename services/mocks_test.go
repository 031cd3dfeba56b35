package services_test

import (
	"context"

	"storefront-backend/models"
	"storefront-backend/notify"

	"go.mongodb.org/mongo-driver/mongo"
)

// In-memory repository implementations mirroring the Mongo adapters'
// behavior, including mongo.ErrNoDocuments for missing records.

type mockCategoryRepo struct {
	categories map[string]models.Category // keyed by categoryId
}

func newMockCategoryRepo() *mockCategoryRepo {
	return &mockCategoryRepo{categories: make(map[string]models.Category)}
}

func (m *mockCategoryRepo) Create(_ context.Context, category *models.Category) error {
	m.categories[category.CategoryID] = *category
	return nil
}

func (m *mockCategoryRepo) FindByCategoryID(_ context.Context, categoryID string) (*models.Category, error) {
	c, ok := m.categories[categoryID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &c, nil
}

func (m *mockCategoryRepo) FindBySlug(_ context.Context, slug string) (*models.Category, error) {
	for _, c := range m.categories {
		if c.Slug == slug {
			found := c
			return &found, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockCategoryRepo) FindAll(_ context.Context) ([]models.Category, error) {
	var result []models.Category
	for _, c := range m.categories {
		result = append(result, c)
	}
	return result, nil
}

func (m *mockCategoryRepo) Sample(_ context.Context, n int) ([]models.Category, error) {
	var result []models.Category
	for _, c := range m.categories {
		if len(result) == n {
			break
		}
		result = append(result, c)
	}
	return result, nil
}

func (m *mockCategoryRepo) DeleteByCategoryID(_ context.Context, categoryID string) (int64, error) {
	if _, ok := m.categories[categoryID]; !ok {
		return 0, nil
	}
	delete(m.categories, categoryID)
	return 1, nil
}

func (m *mockCategoryRepo) EnsureIndexes(_ context.Context) error { return nil }

type mockProductRepo struct {
	products map[string]models.Product // keyed by product id
}

func newMockProductRepo() *mockProductRepo {
	return &mockProductRepo{products: make(map[string]models.Product)}
}

func (m *mockProductRepo) Create(_ context.Context, product *models.Product) error {
	m.products[product.ProductID] = *product
	return nil
}

func (m *mockProductRepo) FindByProductID(_ context.Context, productID string) (*models.Product, error) {
	p, ok := m.products[productID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &p, nil
}

func (m *mockProductRepo) FindByProductIDs(_ context.Context, productIDs []string) ([]models.Product, error) {
	var result []models.Product
	for _, id := range productIDs {
		if p, ok := m.products[id]; ok {
			result = append(result, p)
		}
	}
	return result, nil
}

func (m *mockProductRepo) FindNew(_ context.Context, limit int) ([]models.Product, error) {
	var result []models.Product
	for _, p := range m.products {
		if !p.IsNew {
			continue
		}
		if len(result) == limit {
			break
		}
		result = append(result, p)
	}
	return result, nil
}

func (m *mockProductRepo) Find(_ context.Context, page, perPage int) ([]models.Product, int64, error) {
	var result []models.Product
	for _, p := range m.products {
		result = append(result, p)
	}
	return result, int64(len(m.products)), nil
}

func (m *mockProductRepo) Update(_ context.Context, productID string, updates map[string]interface{}) (int64, error) {
	p, ok := m.products[productID]
	if !ok {
		return 0, nil
	}
	if stock, ok := updates["stock"].(int); ok {
		p.Stock = stock
	}
	if isNew, ok := updates["isNew"].(bool); ok {
		p.IsNew = isNew
	}
	m.products[productID] = p
	return 1, nil
}

func (m *mockProductRepo) DeleteByProductID(_ context.Context, productID string) (int64, error) {
	if _, ok := m.products[productID]; !ok {
		return 0, nil
	}
	delete(m.products, productID)
	return 1, nil
}

func (m *mockProductRepo) EnsureIndexes(_ context.Context) error { return nil }

type mockRatingRepo struct {
	ratings map[string][]models.Rating // keyed by productId
}

func newMockRatingRepo() *mockRatingRepo {
	return &mockRatingRepo{ratings: make(map[string][]models.Rating)}
}

func (m *mockRatingRepo) Insert(_ context.Context, rating *models.Rating) error {
	m.ratings[rating.ProductID] = append(m.ratings[rating.ProductID], *rating)
	return nil
}

func (m *mockRatingRepo) FindByProductID(_ context.Context, productID string) ([]models.Rating, error) {
	return append([]models.Rating(nil), m.ratings[productID]...), nil
}

type mockQuestionRepo struct {
	questions map[string]models.Question // keyed by questionId
}

func newMockQuestionRepo() *mockQuestionRepo {
	return &mockQuestionRepo{questions: make(map[string]models.Question)}
}

func (m *mockQuestionRepo) Insert(_ context.Context, question *models.Question) error {
	if question.Answers == nil {
		question.Answers = []models.Answer{}
	}
	m.questions[question.QuestionID] = *question
	return nil
}

func (m *mockQuestionRepo) FindByProductID(_ context.Context, productID string) ([]models.Question, error) {
	var result []models.Question
	for _, q := range m.questions {
		if q.ProductID == productID {
			result = append(result, q)
		}
	}
	return result, nil
}

func (m *mockQuestionRepo) PushAnswer(_ context.Context, questionID string, answer models.Answer) (int64, error) {
	q, ok := m.questions[questionID]
	if !ok {
		return 0, nil
	}
	q.Answers = append(q.Answers, answer)
	m.questions[questionID] = q
	return 1, nil
}

type mockUserRepo struct {
	users map[string]models.User // keyed by userId
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]models.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *models.User) error {
	if user.Wishlist == nil {
		user.Wishlist = []string{}
	}
	if user.Cart == nil {
		user.Cart = []models.CartItem{}
	}
	m.users[user.UserID] = *user
	return nil
}

func (m *mockUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			found := u
			found.Cart = append([]models.CartItem(nil), u.Cart...)
			return &found, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockUserRepo) FindByUserID(_ context.Context, userID string) (*models.User, error) {
	u, ok := m.users[userID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	found := u
	found.Cart = append([]models.CartItem(nil), u.Cart...)
	return &found, nil
}

func (m *mockUserRepo) ReplaceCart(_ context.Context, userID string, items []models.CartItem) (int64, error) {
	u, ok := m.users[userID]
	if !ok {
		return 0, nil
	}
	u.Cart = append([]models.CartItem(nil), items...)
	m.users[userID] = u
	return 1, nil
}

func (m *mockUserRepo) AddToWishlist(_ context.Context, userID, productID string) (int64, error) {
	u, ok := m.users[userID]
	if !ok {
		return 0, nil
	}
	for _, id := range u.Wishlist {
		if id == productID {
			return 1, nil
		}
	}
	u.Wishlist = append(u.Wishlist, productID)
	m.users[userID] = u
	return 1, nil
}

func (m *mockUserRepo) RemoveFromWishlist(_ context.Context, userID, productID string) (int64, error) {
	u, ok := m.users[userID]
	if !ok {
		return 0, nil
	}
	var kept []string
	for _, id := range u.Wishlist {
		if id != productID {
			kept = append(kept, id)
		}
	}
	u.Wishlist = kept
	m.users[userID] = u
	return 1, nil
}

func (m *mockUserRepo) EnsureIndexes(_ context.Context) error { return nil }

type mockSliderRepo struct {
	images []models.SliderImage
}

func (m *mockSliderRepo) Create(_ context.Context, image *models.SliderImage) error {
	m.images = append(m.images, *image)
	return nil
}

func (m *mockSliderRepo) Sample(_ context.Context, n int) ([]models.SliderImage, error) {
	if n > len(m.images) {
		n = len(m.images)
	}
	return append([]models.SliderImage(nil), m.images[:n]...), nil
}

type mockSubscriberRepo struct {
	subs map[string]models.Subscriber // keyed by email
}

func newMockSubscriberRepo() *mockSubscriberRepo {
	return &mockSubscriberRepo{subs: make(map[string]models.Subscriber)}
}

func (m *mockSubscriberRepo) Create(_ context.Context, sub *models.Subscriber) error {
	m.subs[sub.Email] = *sub
	return nil
}

func (m *mockSubscriberRepo) FindByEmail(_ context.Context, email string) (*models.Subscriber, error) {
	s, ok := m.subs[email]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &s, nil
}

// mockEmailSender signals deliveries through a channel; sends happen off
// the request goroutine.
type mockEmailSender struct {
	Sent chan string
}

func newMockEmailSender() *mockEmailSender {
	return &mockEmailSender{Sent: make(chan string, 8)}
}

func (m *mockEmailSender) SendEmail(_ context.Context, to, subject, body string) (notify.SendResult, error) {
	m.Sent <- to
	return notify.SendResult{MessageID: "test"}, nil
}
