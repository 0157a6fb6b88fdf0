package main

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/time/rate"

	"news-api-be/internal/cache"
	"news-api-be/internal/config"
	"news-api-be/internal/controllers"
	"news-api-be/internal/database"
	"news-api-be/internal/jwt"
	"news-api-be/internal/logger"
	"news-api-be/internal/middleware"
	"news-api-be/internal/repository"
	"news-api-be/internal/service"
	"news-api-be/internal/validation"

	_ "news-api-be/docs" // swagger docs
)

// @title           News API
// @version         1.0
// @description     REST API for managing news articles and user sessions.

// @host      localhost:4000
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.

func main() {
	log := logger.New("server")

	// Load configuration
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	// Connect to database and run migrations; both are fail-fast.
	db, err := database.NewConnection(cfg.DatabaseURL, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := database.RunMigrations(db, log); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	var cacheClient cache.Cache
	cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("failed to connect to Redis, continuing without cache")
		cacheClient = nil
	} else {
		log.Info().Msg("connected to Redis cache")
	}

	// Validation errors are keyed by json field names.
	validation.UseJSONFieldNames()

	// Initialize repositories
	newsRepo := repository.NewNewsRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWTSecret,
		time.Duration(cfg.JWTTTLHours)*time.Hour,
	)

	// Initialize services
	newsService := service.NewNewsService(newsRepo, cacheClient, log)
	authService := service.NewAuthService(userRepo, jwtService, cfg.BcryptCost)

	// Initialize controllers
	newsController := controllers.NewNewsController(newsService, log)
	authController := controllers.NewAuthController(authService, cfg.JWTTTLHours*3600, log)

	// Initialize rate limiters
	listLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst, log)
	authLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitAuthRPS), cfg.RateLimitAuthBurst, log)

	// Create a Gin router
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     splitOrigins(cfg.AllowedOrigins),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check endpoint (no rate limiting)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API documentation
	router.GET("/api-docs/*any", gin.WrapH(httpSwagger.Handler(
		httpSwagger.URL("/api-docs/doc.json"),
	)))

	// News routes: listing is public but rate-limited, detail is public,
	// mutations require a bearer token.
	news := router.Group("/news")
	{
		news.GET("", listLimiter.LimitMiddleware(), newsController.GetAll)
		news.GET("/:id", newsController.GetByID)

		protected := news.Group("")
		protected.Use(middleware.AuthMiddleware(jwtService))
		{
			protected.POST("", newsController.Save)
			protected.PUT("/:id", newsController.Update)
			protected.DELETE("/:id", newsController.Delete)
		}
	}

	// User routes: register and login are rate-limited, logout is not.
	user := router.Group("/user")
	{
		user.POST("/register", authLimiter.LimitMiddleware(), authController.Register)
		user.POST("/login", authLimiter.LimitMiddleware(), authController.Login)
		user.GET("/logout", authController.Logout)
	}

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return origins
}
