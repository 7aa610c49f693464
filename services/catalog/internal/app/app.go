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
	"pilates-club/pkg/queue"
	"pilates-club/pkg/session"
	"pilates-club/pkg/youtube"
	catalogHTTP "pilates-club/services/catalog/internal/controller/http"
	"pilates-club/services/catalog/internal/repo/persistent"
	"pilates-club/services/catalog/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "pilates-club/services/catalog/docs" // Swagger docs
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	queueClient *queue.Client
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
		log.Error("Failed to connect to redis: %v (continuing without metadata cache and logout revocation)", err)
		redisClient = nil
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v (watch logs will be written directly)", err)
		queueClient = nil
	}

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		queueClient: queueClient,
		jwtService:  jwt.NewServiceWithTTL(cfg.JWTSecret, cfg.JWTTTL),
		sessions:    session.NewStore(redisClient),
	}, nil
}

func (a *App) Run() error {
	// Initialize repositories
	catalogRepo := persistent.NewCatalogRepository(a.db)

	ytClient := youtube.NewClient(a.cfg.YouTube, a.redisClient)

	// A nil *queue.Client must not end up inside the interface.
	var publisher usecase.EventPublisher
	if a.queueClient != nil {
		publisher = a.queueClient
	}

	var metadata usecase.VideoMetadata
	if ytClient.Enabled() {
		metadata = ytClient
	}

	// Initialize use cases
	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo, metadata, publisher, a.log)

	if a.queueClient != nil {
		err := a.queueClient.ConsumeWatchEvents(func(event queue.WatchEvent) error {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return catalogUseCase.RecordWatch(ctx, event)
		})
		if err != nil {
			a.log.Error("Failed to start watch log consumer: %v", err)
			return err
		}
	}

	// Initialize HTTP handlers
	catalogHandler := catalogHTTP.NewCatalogHandler(catalogUseCase, a.log)
	siteHandler := catalogHTTP.NewSiteHandler(a.cfg.SiteName, a.cfg.SiteDescription)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     a.cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/api/v1/site", siteHandler.Site)

	api := r.Group("/api/v1")
	api.Use(middleware.SessionMiddleware(a.jwtService, a.sessions))
	{
		api.GET("/videos", catalogHandler.ListVideos)
		api.GET("/videos/categories", catalogHandler.ListCategories)
		api.GET("/watch/:videoKey", catalogHandler.Watch)
	}

	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	go func() {
		a.log.Info("Catalog service starting on port %s", a.cfg.ServerPort)
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
	a.log.Info("Shutting down catalog service...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	if a.queueClient != nil {
		if err := a.queueClient.Close(); err != nil {
			a.log.Error("Error closing RabbitMQ: %v", err)
		}
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

	a.log.Info("Catalog service exited")
	return nil
}
