package main

import (
	"log"

	"ratewave/internal/config"
	"ratewave/internal/database"
	"ratewave/internal/handler"
	"ratewave/internal/middleware"
	"ratewave/internal/repository"
	"ratewave/internal/service"
	"ratewave/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.Load()
	log.Println("Config loaded successfully")

	if err := logger.Init(!cfg.IsProduction()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	database.Connect(cfg)
	database.Migrate()

	// Redis is optional: without it the credential endpoints simply run
	// unlimited, which is fine for local development.
	var limiter *middleware.RateLimiter
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("Invalid REDIS_URL: %v", err)
		}
		limiter = middleware.NewRateLimiter(redis.NewClient(opt), middleware.RateLimiterConfig{
			MaxRequests: cfg.RateLimitMaxRequests,
			Window:      cfg.RateLimitWindow,
			BlockTime:   cfg.RateLimitBlockTime,
		})
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(database.DB)
	ratingRepo := repository.NewRatingRepository(database.DB)
	commentRepo := repository.NewCommentRepository(database.DB)

	// Initialize services
	authService := service.NewAuthService(userRepo, cfg.SessionSecret, cfg.SessionExpiry, cfg.Environment)
	ratingService := service.NewRatingService(ratingRepo)
	profileService := service.NewProfileService(userRepo, commentRepo, cfg.StaticDir, cfg.UploadDir)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	pageHandler := handler.NewPageHandler(ratingService, profileService)
	ratingHandler := handler.NewRatingHandler(ratingService, profileService)
	profileHandler := handler.NewProfileHandler(profileService)

	// Setup Gin router
	router := gin.Default()
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.HSTSMiddleware(cfg.IsProduction()))
	router.Use(middleware.LoadUser(authService))

	router.LoadHTMLGlob(cfg.TemplateGlob)
	router.Static("/static", cfg.StaticDir)

	// Public pages
	router.GET("/", pageHandler.Home)
	router.GET("/browse", pageHandler.Browse)
	router.GET("/favorites", pageHandler.Favorites)
	router.GET("/playlists", pageHandler.Playlists)
	router.GET("/charts", pageHandler.Charts)
	router.GET("/genres", pageHandler.Genres)
	router.GET("/rating/:id", ratingHandler.Detail)
	router.GET("/profile/:id", profileHandler.ProfileDetail)

	// Identity lifecycle
	router.GET("/auth", authHandler.SetAuthMode("login"))
	router.GET("/auth/login", authHandler.SetAuthMode("login"))
	router.GET("/auth/signup", authHandler.SetAuthMode("signup"))

	if limiter != nil {
		router.POST("/signup", limiter.Middleware(), authHandler.Signup)
		router.POST("/login", limiter.Middleware(), authHandler.Login)
	} else {
		router.POST("/signup", authHandler.Signup)
		router.POST("/login", authHandler.Login)
	}

	// Routes that require a logged-in user
	protected := router.Group("/")
	protected.Use(middleware.RequireLogin())
	{
		protected.GET("/logout", authHandler.Logout)

		protected.GET("/add", ratingHandler.AddForm)
		protected.POST("/add", ratingHandler.AddSubmit)
		protected.GET("/edit/:id", ratingHandler.EditForm)
		protected.POST("/edit/:id", ratingHandler.EditSubmit)
		protected.POST("/delete/:id", ratingHandler.Delete)

		protected.GET("/profile", profileHandler.Profile)
		protected.GET("/profile-edit", profileHandler.EditForm)
		protected.POST("/profile-edit", profileHandler.EditSubmit)
		protected.POST("/profile/upload", profileHandler.Upload)
		protected.POST("/profile/remove", profileHandler.Remove)
		protected.POST("/profile/comments", profileHandler.CommentAdd)
		protected.POST("/profile/comments/edit/:id", profileHandler.CommentEdit)
		protected.POST("/profile/comments/delete/:id", profileHandler.CommentDelete)
	}

	log.Printf("Server starting on %s", cfg.ServerPort)
	if err := router.Run(cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
