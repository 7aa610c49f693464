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
	"pilates-club/pkg/s3"
	"pilates-club/pkg/session"
	"pilates-club/pkg/youtube"
	adminHTTP "pilates-club/services/admin/internal/controller/http"
	"pilates-club/services/admin/internal/repo/persistent"
	"pilates-club/services/admin/internal/sweep"
	"pilates-club/services/admin/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "pilates-club/services/admin/docs" // Swagger docs
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	s3Client    *s3.Client
	queueClient *queue.Client
	jwtService  *jwt.Service
	sessions    *session.Store
	scheduler   *sweep.Scheduler
	cancelSweep context.CancelFunc
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

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to initialize S3 client: %v (storage usage will be unavailable)", err)
		s3Client = nil
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v (watch queue backlog will be unavailable)", err)
		queueClient = nil
	}

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		s3Client:    s3Client,
		queueClient: queueClient,
		jwtService:  jwt.NewServiceWithTTL(cfg.JWTSecret, cfg.JWTTTL),
		sessions:    session.NewStore(redisClient),
	}, nil
}

func (a *App) Run() error {
	// Initialize repositories
	memberRepo := persistent.NewMemberRepository(a.db)
	contentRepo := persistent.NewContentRepository(a.db)
	couponRepo := persistent.NewCouponRepository(a.db)
	settingsRepo := persistent.NewSettingsRepository(a.db)
	dashboardRepo := persistent.NewDashboardRepository(a.db)

	ytClient := youtube.NewClient(a.cfg.YouTube, a.redisClient)

	var metadata usecase.VideoMetadata
	if ytClient.Enabled() {
		metadata = ytClient
	}

	// A nil *s3.Client must not end up inside the interface.
	var storage usecase.StorageUsage
	if a.s3Client != nil {
		storage = a.s3Client
	}
	var watchQueue usecase.WatchQueue
	if a.queueClient != nil {
		watchQueue = a.queueClient
	}

	// Initialize use cases
	memberUseCase := usecase.NewMemberUseCase(memberRepo, settingsRepo, a.log)
	contentUseCase := usecase.NewContentUseCase(contentRepo, metadata, a.log)
	couponUseCase := usecase.NewCouponUseCase(couponRepo, a.log)
	settingsUseCase := usecase.NewSettingsUseCase(settingsRepo, memberRepo, a.log)
	dashboardUseCase := usecase.NewDashboardUseCase(dashboardRepo, storage, watchQueue, a.log)

	a.scheduler = sweep.NewScheduler(memberUseCase, a.cfg.Sweep, sweep.NewMetrics(prometheus.DefaultRegisterer), a.log)
	sweepCtx, cancel := context.WithCancel(context.Background())
	a.cancelSweep = cancel
	a.scheduler.Start(sweepCtx)

	// Initialize HTTP handlers
	memberHandler := adminHTTP.NewMemberHandler(memberUseCase, a.scheduler, a.log)
	contentHandler := adminHTTP.NewContentHandler(contentUseCase, a.log)
	couponHandler := adminHTTP.NewCouponHandler(couponUseCase, a.log)
	settingsHandler := adminHTTP.NewSettingsHandler(settingsUseCase, dashboardUseCase, a.log)

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

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "sweep_running": a.scheduler.IsRunning()})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	admin := r.Group("/api/v1/admin")
	admin.Use(middleware.SessionMiddleware(a.jwtService, a.sessions))
	admin.Use(middleware.AdminOnly(a.cfg.AdminEmails))
	{
		admin.GET("/dashboard", settingsHandler.Dashboard)
		admin.GET("/guide", settingsHandler.Guide)

		admin.GET("/members", memberHandler.ListMembers)
		admin.POST("/members", memberHandler.CreateMember)
		admin.GET("/members/pending-count", memberHandler.PendingCount)
		admin.POST("/members/bulk-status", memberHandler.BulkUpdateStatus)
		admin.POST("/members/sweep", memberHandler.Sweep)
		admin.PUT("/members/:id/status", memberHandler.UpdateStatus)
		admin.PUT("/members/:id/expiration", memberHandler.UpdateExpiration)

		admin.GET("/pending", memberHandler.ListPending)
		admin.POST("/pending/:id/approve", memberHandler.Approve)
		admin.POST("/pending/:id/reject", memberHandler.Reject)

		admin.GET("/contents", contentHandler.ListContents)
		admin.POST("/contents", contentHandler.CreateContent)
		admin.GET("/contents/generate-key", contentHandler.GenerateKey)
		admin.GET("/contents/youtube-info", contentHandler.YouTubeInfo)
		admin.POST("/contents/bulk-visibility", contentHandler.BulkSetVisibility)
		admin.GET("/contents/:id", contentHandler.GetContent)
		admin.PUT("/contents/:id", contentHandler.UpdateContent)
		admin.DELETE("/contents/:id", contentHandler.DeleteContent)
		admin.POST("/contents/:id/toggle-visibility", contentHandler.ToggleVisibility)

		admin.GET("/coupons", couponHandler.ListCoupons)
		admin.POST("/coupons", couponHandler.CreateCoupon)
		admin.DELETE("/coupons/:id", couponHandler.DeleteCoupon)

		admin.GET("/approval-settings", settingsHandler.GetApprovalSettings)
		admin.PUT("/approval-settings", settingsHandler.UpdateApprovalSettings)
	}

	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	go func() {
		a.log.Info("Admin service starting on port %s", a.cfg.ServerPort)
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
	a.log.Info("Shutting down admin service...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	if a.scheduler != nil {
		a.cancelSweep()
		a.scheduler.Stop()
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

	a.log.Info("Admin service exited")
	return nil
}
