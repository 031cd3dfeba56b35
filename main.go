package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront-backend/controllers"
	"storefront-backend/database"
	"storefront-backend/logger"
	"storefront-backend/middleware"
	"storefront-backend/notify"
	"storefront-backend/repository"
	"storefront-backend/routes"
	"storefront-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func main() {
	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	cfg, err := LoadConfig()
	if err != nil {
		zap.NewExample().Fatal("Failed to load configuration", zap.Error(err))
	}

	logger.Initialize(cfg.Env)
	defer zap.L().Sync()

	// --- 1. Initialization ---

	mongoClient, db, err := database.Connect(cfg.MongoURL, cfg.MongoDB)
	if err != nil {
		zap.L().Fatal("Failed to connect to MongoDB", zap.Error(err))
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisOpts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			zap.L().Warn("Failed to parse REDIS_URL, caching disabled", zap.Error(err))
		} else {
			redisClient = redis.NewClient(redisOpts)
		}
	}

	var emailSender notify.EmailSender
	if sender, err := notify.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass); err != nil {
		zap.L().Warn("SMTP not configured, outbound email disabled", zap.Error(err))
	} else {
		emailSender = sender
	}

	// --- 2. Dependency Injection (Wiring the layers together) ---

	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	userRepo := repository.NewUserRepository(db)
	sliderRepo := repository.NewSliderRepository(db)
	subscriberRepo := repository.NewSubscriberRepository(db)

	indexCtx, cancelIndex := context.WithTimeout(context.Background(), 10*time.Second)
	for _, ensure := range []func(context.Context) error{
		categoryRepo.EnsureIndexes,
		productRepo.EnsureIndexes,
		userRepo.EnsureIndexes,
	} {
		if err := ensure(indexCtx); err != nil {
			zap.L().Warn("Failed to ensure indexes", zap.Error(err))
		}
	}
	cancelIndex()

	summaryCache := services.NewSummaryCache(redisClient, services.DefaultCacheTTL)

	catalogService := services.NewCatalogService(categoryRepo, productRepo, ratingRepo, sliderRepo, summaryCache)
	cartService := services.NewCartService(userRepo)
	engagementService := services.NewEngagementService(ratingRepo, questionRepo, summaryCache)
	userService := services.NewUserService(userRepo, subscriberRepo, emailSender)

	catalogController := controllers.NewCatalogController(catalogService)
	cartController := controllers.NewCartController(cartService)
	engagementController := controllers.NewEngagementController(engagementService)
	userController := controllers.NewUserController(userService)

	// --- 3. HTTP Server & Middleware ---

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())

	r.Use(middleware.CORS(cfg.CORSOrigins))

	// Request timeout middleware
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	// --- 4. Route Registration ---

	routes.RegisterRoutes(r, catalogController, cartController, engagementController, userController,
		middleware.Auth(cfg.JWTSecret),
		middleware.RateLimit(rate.Every(time.Minute/100), 50))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	// --- 5. Graceful Shutdown ---

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		zap.L().Info("Storefront backend starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down storefront backend...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Fatal("Server forced to shutdown", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			zap.L().Error("Failed to close Redis", zap.Error(err))
		}
	}
	if err := database.Close(mongoClient); err != nil {
		zap.L().Error("Failed to close MongoDB", zap.Error(err))
	}

	zap.L().Info("Storefront backend stopped gracefully")
}
