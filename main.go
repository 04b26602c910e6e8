package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/bjmanish/TheMovieSite/config"
	"github.com/bjmanish/TheMovieSite/controllers"
	"github.com/bjmanish/TheMovieSite/data_access"
	"github.com/bjmanish/TheMovieSite/middleware"
	"github.com/bjmanish/TheMovieSite/services"
)

func setupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	fmt.Println("Configuration loaded for environment:", cfg.Env)

	// Initialize MongoDB connection
	mongodb, err := data_access.NewMongoDB(cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongodb.Close(context.Background())

	// Initialize repositories
	userRepo := data_access.NewUserRepository(mongodb)
	watchlistRepo := data_access.NewWatchlistRepository(mongodb)
	commentRepo := data_access.NewCommentRepository(mongodb)

	// Avatar storage is optional; without it profile picture routes report
	// a server error while everything else keeps working.
	var avatarStore services.AvatarStorage
	if cfg.MinioEndpoint != "" {
		store, err := data_access.NewAvatarStore(context.Background(),
			cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
		if err != nil {
			log.Fatal("Failed to connect to MinIO:", err)
		}
		avatarStore = store
	} else {
		log.Println("Warning: MINIO_ENDPOINT not set, avatar storage disabled")
	}

	// Initialize services
	tokenService := services.NewTokenService(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	authService := services.NewAuthService(userRepo, tokenService)
	watchlistService := services.NewWatchlistService(watchlistRepo)
	movieService := services.NewMovieService(data_access.NewTMDBClient(cfg.TMDBAPIKey, cfg.TMDBBaseURL))
	commentService := services.NewCommentService(commentRepo, userRepo)
	searchService := services.NewSearchService(data_access.NewArchiveClient(cfg.ArchiveBaseURL))
	profileService := services.NewProfileService(userRepo, avatarStore, services.LogCodeSender{})

	// Initialize controllers
	secureCookie := cfg.Env == "production"
	authController := controllers.NewAuthController(authService, cfg.RefreshTokenTTL, secureCookie)
	watchlistController := controllers.NewWatchlistController(watchlistService)
	movieController := controllers.NewMovieController(movieService)
	commentController := controllers.NewCommentController(commentService)
	searchController := controllers.NewSearchController(searchService)
	userController := controllers.NewUserController(authService, profileService)

	// Setup Gin router
	r := gin.Default()
	r.Use(setupCORS())

	// Health check endpoint
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	api := r.Group("/api")
	api.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
	{
		// Public routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authController.Register)
			auth.POST("/login", authController.Login)
			auth.POST("/refresh", authController.Refresh)
			auth.POST("/logout", authController.Logout)
		}
		api.GET("/comments/:movieId", commentController.ListByMovie)
		api.GET("/search", searchController.Search)

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(tokenService))
		{
			protected.GET("/auth/profile", authController.Profile)
			protected.GET("/auth/verify", authController.Verify)

			protected.POST("/watchlist/add", watchlistController.Add)
			protected.GET("/watchlist", watchlistController.List)
			protected.DELETE("/watchlist/remove/:movieId", watchlistController.Remove)

			protected.GET("/movies/search", movieController.Search)
			protected.GET("/movies/popular", movieController.Popular)

			protected.POST("/comments", commentController.Add)

			users := protected.Group("/users")
			{
				users.GET("/me", userController.Me)
				users.PUT("/me", userController.UpdateMe)
				users.POST("/me/avatar", userController.UploadAvatar)
				users.GET("/me/avatar", userController.GetAvatar)
				users.POST("/me/mobile", userController.RequestMobileVerification)
				users.POST("/me/mobile/verify", userController.ConfirmMobileVerification)
			}
		}
	}

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
