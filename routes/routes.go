package routes

import (
	"storefront-backend/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires all application routes. Cart and engagement writes
// sit behind the auth middleware; admin writes are grouped under /admin.
func RegisterRoutes(
	r *gin.Engine,
	catalog *controllers.CatalogController,
	cart *controllers.CartController,
	engagement *controllers.EngagementController,
	users *controllers.UserController,
	auth gin.HandlerFunc,
	rateLimit gin.HandlerFunc,
) {
	products := r.Group("/products")
	{
		products.GET("/", catalog.GetProducts)
		products.GET("/new-arrivals", catalog.GetNewArrivals)
		products.GET("/:id", catalog.GetProductDetail)
		products.GET("/:id/questions", engagement.GetQuestions)
		products.POST("/bulk", catalog.GetProductsBulk)
	}

	categories := r.Group("/categories")
	{
		categories.GET("/", catalog.GetAllCategories)
		categories.GET("/sample", catalog.GetCategoriesSample)
	}

	r.GET("/slider-images", catalog.GetSliderImages)
	r.POST("/subscribe", rateLimit, users.Subscribe)
	r.POST("/signup", rateLimit, users.Signup)
	r.GET("/users/email/:email", users.GetUserByEmail)

	cartRoutes := r.Group("/cart", auth)
	{
		cartRoutes.GET("/", cart.GetCart)
		cartRoutes.POST("/items", cart.AddItem)
		cartRoutes.PUT("/items/:productId", cart.UpdateQuantity)
		cartRoutes.DELETE("/items/:productId", cart.RemoveItem)
	}

	wishlist := r.Group("/wishlist", auth)
	{
		wishlist.POST("/", cart.AddToWishlist)
		wishlist.DELETE("/:productId", cart.RemoveFromWishlist)
	}

	engagementRoutes := r.Group("/", auth)
	{
		engagementRoutes.POST("/ratings", engagement.SubmitRating)
		engagementRoutes.POST("/questions", engagement.AskQuestion)
		engagementRoutes.POST("/questions/:questionId/answers", engagement.AnswerQuestion)
	}

	admin := r.Group("/admin", auth)
	{
		admin.POST("/categories", catalog.CreateCategory)
		admin.DELETE("/categories/:id", catalog.DeleteCategory)
		admin.POST("/products", catalog.CreateProduct)
		admin.PUT("/products/:id", catalog.UpdateProduct)
		admin.DELETE("/products/:id", catalog.DeleteProduct)
		admin.POST("/slider-images", catalog.CreateSliderImage)
	}
}
