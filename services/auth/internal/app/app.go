package internal

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pilates-club/pkg/cache"
	"pilates-club/pkg/config"
	"pilates-club/pkg/database"
	"pilates-club/pkg/jwt"
	"pilates-club/pkg/logger"
	"pilates-club/pkg/middleware"
	"pilates-club/pkg/session"
	authHTTP "pilates-club/services/auth/internal/controller/http"
	"pilates-club/services/auth/internal/repo/persistent"
	"pilates-club/services/auth/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "pilates-club/services/auth/docs" // Swagger docs
)

const (
	loginAttemptsPerWindow = 10
	loginWindow            = time.Minute
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	jwtService  *jwt.Service
	sessions    *session.Store
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.NewWithOptions(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile})

	db, err := database.New(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v (continuing without rate limits and logout revocation)", err)
		redisClient = nil
	}

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		jwtService:  jwt.NewServiceWithTTL(cfg.JWTSecret, cfg.JWTTTL),
		sessions:    session.NewStore(redisClient),
	}, nil
}

func (a *App) Run() error {
	// Initialize repositories
	memberRepo := persistent.NewMemberRepository(a.db)
	couponRepo := persistent.NewCouponRepository(a.db)
	settingsRepo := persistent.NewSettingsRepository(a.db)

	// Initialize use cases
	authUseCase := usecase.NewAuthUseCase(
		memberRepo,
		couponRepo,
		settingsRepo,
		a.jwtService,
		a.sessions,
		a.cfg.AdminEmails,
		a.log,
	)

	// Initialize HTTP handlers
	authHandler := authHTTP.NewAuthHandler(authUseCase, a.cfg.AdminEmails, a.log)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     a.cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/", authHandler.Root)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	limiter := middleware.RateLimitMiddleware(a.redisClient, loginAttemptsPerWindow, loginWindow)

	api := r.Group("/api/v1")
	{
		api.POST("/register", limiter, authHandler.Register)
		api.POST("/login", limiter, authHandler.Login)

		protected := api.Group("")
		protected.Use(middleware.SessionMiddleware(a.jwtService, a.sessions))
		{
			protected.GET("/me", authHandler.Me)
			protected.POST("/logout", authHandler.Logout)
		}
	}

	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	go func() {
		a.log.Info("Auth service starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down auth service...")
}

func (a *App) Shutdown() error {
	// The context is used to inform the server it has 5 seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	a.log.Info("Auth service exited")
	return nil
}
