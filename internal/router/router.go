package router

import (
	"time"

	"github.com/promoforge/promoforge-backend/internal/cache"
	"github.com/promoforge/promoforge-backend/internal/database/repository"
	"github.com/promoforge/promoforge-backend/internal/handlers"
	"github.com/promoforge/promoforge-backend/internal/middleware"
	"github.com/promoforge/promoforge-backend/internal/services"
	"github.com/promoforge/promoforge-backend/internal/services/auth"
	"github.com/promoforge/promoforge-backend/internal/services/generation"
	"github.com/promoforge/promoforge-backend/internal/services/suggestions"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin router with all API routes
func SetupRouter(db *gorm.DB, store *cache.Store) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Create a new router
	r := gin.New()

	// Use middleware
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Repositories
	customerRepo := repository.NewCustomerRepository(db)
	campaignRepo := repository.NewCampaignRepository(db)
	profileRepo := repository.NewBusinessProfileRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	authService := auth.NewAuthService(db, store)

	// Initialize RabbitMQ-backed audit events
	var events generation.EventPublisher
	eventsService, err := services.NewEventsService()
	if err != nil {
		logrus.Warnf("Failed to initialize RabbitMQ: %v", err)
		eventsService = nil
	} else {
		logrus.Info("RabbitMQ events service initialized in router")
		events = eventsService
	}

	customerService := services.NewCustomerService(customerRepo, eventsService)
	campaignService := services.NewCampaignService(campaignRepo, userRepo)
	profileService := services.NewBusinessProfileService(profileRepo)
	generationService := generation.NewService(customerRepo, profileRepo, store, generation.NewGeminiGenerator, events)
	suggestionService := suggestions.NewService(store)

	// Create middleware with services
	bearerTokenMiddleware := middleware.NewBearerTokenMiddleware(authService)

	// Create handlers with services
	authHandler := handlers.NewAuthHandler(authService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	campaignHandler := handlers.NewCampaignHandler(campaignService)
	profileHandler := handlers.NewBusinessProfileHandler(profileService)
	generationHandler := handlers.NewGenerationHandler(generationService, store)
	suggestionHandler := handlers.NewSuggestionHandler(suggestionService)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	logrus.Info("Swagger UI endpoint registered at /swagger/index.html")

	// API v1 routes
	api := r.Group("/api/v1")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status": "ok",
				"time":   time.Now().Format(time.RFC3339),
			})
		})

		// Auth routes (public)
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/verify", authHandler.VerifyEmail)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/refresh", authHandler.RefreshToken)
		}

		// Protected routes
		protected := api.Group("")
		protected.Use(bearerTokenMiddleware.BearerTokenAuthMiddleware())
		{
			// Auth protected routes
			authProtected := protected.Group("/auth")
			{
				authProtected.POST("/logout", authHandler.Logout)
				authProtected.GET("/me", authHandler.Me)
				authProtected.PUT("/password", authHandler.ChangePassword)
			}

			// Business profile routes
			profile := protected.Group("/profile")
			{
				profile.GET("", profileHandler.GetProfile)
				profile.PUT("", profileHandler.SaveProfile)
			}

			// Customer routes
			customers := protected.Group("/customers")
			{
				customers.POST("", customerHandler.CreateCustomer)
				customers.GET("", customerHandler.GetCustomers)
				customers.POST("/import", customerHandler.ImportCustomers)
				customers.GET("/export", customerHandler.ExportCustomers)
				customers.GET("/segments", customerHandler.GetSegments)
				customers.PUT("/:id", customerHandler.UpdateCustomer)
				customers.DELETE("/:id", customerHandler.DeleteCustomer)
			}

			// Campaign routes
			campaigns := protected.Group("/campaigns")
			{
				campaigns.POST("", campaignHandler.CreateCampaign)
				campaigns.GET("", campaignHandler.GetCampaigns)
				campaigns.GET("/calendar", campaignHandler.GetCalendar)
				campaigns.GET("/:id", campaignHandler.GetCampaign)
				campaigns.PUT("/:id/status", campaignHandler.UpdateCampaignStatus)
				campaigns.DELETE("/:id", campaignHandler.DeleteCampaign)
			}

			// Generation routes
			generate := protected.Group("/generate")
			{
				generate.POST("", generationHandler.GenerateContent)
				generate.PUT("/credential", generationHandler.SaveCredential)
				generate.DELETE("/credential", generationHandler.DeleteCredential)
			}

			// Suggestion routes
			suggestionRoutes := protected.Group("/suggestions")
			{
				suggestionRoutes.GET("/daily", suggestionHandler.GetDailySuggestions)
			}
		}
	}

	return r
}
