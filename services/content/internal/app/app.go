package internal

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"affiliate-blog/pkg/cache"
	"affiliate-blog/pkg/config"
	"affiliate-blog/pkg/database"
	"affiliate-blog/pkg/jwt"
	"affiliate-blog/pkg/logger"
	"affiliate-blog/pkg/metrics"
	"affiliate-blog/pkg/middleware"
	"affiliate-blog/pkg/models"
	"affiliate-blog/pkg/queue"
	"affiliate-blog/pkg/s3"
	contentHTTP "affiliate-blog/services/content/internal/controller/http"
	"affiliate-blog/services/content/internal/generator"
	postCache "affiliate-blog/services/content/internal/repo/cache"
	"affiliate-blog/services/content/internal/repo/persistent"
	"affiliate-blog/services/content/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "affiliate-blog/services/content/docs" // Swagger docs
)

const (
	generateRateLimit = 10
	adminRateLimit    = 300
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	s3Client    *s3.Client
	queueClient *queue.Client
	jwtService  *jwt.Service
	registry    *prometheus.Registry
	metrics     *metrics.Metrics
	catalog     *generator.Catalog
	scheduler   *cron.Cron
	moderation  usecase.ModerationUseCase
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.Open(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}
	if cfg.DBDriver == database.DriverSQLite {
		if err := models.AutoMigrate(db); err != nil {
			log.Error("Failed to migrate sqlite database: %v", err)
			return nil, err
		}
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Warn("Failed to connect to redis: %v (continuing without cache and rate limits)", err)
		redisClient = nil
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Warn("Failed to create S3 client: %v (media uploads disabled)", err)
		s3Client = nil
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Warn("Failed to connect to RabbitMQ: %v (continuing without events)", err)
		queueClient = nil
	}

	catalog, err := generator.LoadCatalog()
	if err != nil {
		log.Error("Failed to load catalog: %v", err)
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		s3Client:    s3Client,
		queueClient: queueClient,
		jwtService:  jwt.NewService(cfg.JWTSecret),
		registry:    registry,
		metrics:     metrics.New(registry),
		catalog:     catalog,
	}, nil
}

// publisher and mediaStore hand out untyped nils so usecases can test the
// interface against nil.
func (a *App) publisher() usecase.EventPublisher {
	if a.queueClient == nil {
		return nil
	}
	return a.queueClient
}

// backlogReader reports how many content events wait in the broker.
type backlogReader interface {
	QueueLength() (int, error)
}

func (a *App) eventQueue() backlogReader {
	if a.queueClient == nil {
		return nil
	}
	return a.queueClient
}

func (a *App) mediaStore() usecase.MediaStore {
	if a.s3Client == nil {
		return nil
	}
	return a.s3Client
}

func (a *App) router() *gin.Engine {
	// Initialize repositories
	postRepo := persistent.NewPostRepository(a.db)
	reviewRepo := persistent.NewReviewRepository(a.db)
	productRepo := persistent.NewFeaturedProductRepository(a.db)
	settingsRepo := persistent.NewSettingsRepository(a.db)
	posts := postCache.NewPostCache(a.redisClient, a.cfg.PublicCacheTTL)

	// Collaborators
	textClient := generator.NewClient(a.cfg, a.log.With("component", "openai"))
	images := generator.NewCatalogImageLookup(a.catalog)
	products := generator.NewCatalogProductLookup(a.catalog)

	// Initialize use cases
	publisher := a.publisher()
	a.moderation = usecase.NewModerationUseCase(postRepo, reviewRepo, posts, publisher, a.log)
	generationUseCase := usecase.NewGenerationUseCase(
		postRepo,
		reviewRepo,
		images,
		textClient,
		products,
		publisher,
		a.metrics,
		usecase.GenerationConfig{
			StepTimeout:      a.cfg.GenerationStepTimeout,
			ProductLimit:     a.cfg.GenerationProductLimit,
			DefaultHeroImage: a.cfg.DefaultHeroImageURL,
		},
		a.log,
	)
	postUseCase := usecase.NewPostUseCase(postRepo, a.moderation, posts, publisher, a.log)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, postRepo, posts, a.log)
	productUseCase := usecase.NewFeaturedProductUseCase(productRepo, postRepo, posts, a.log)
	settingsUseCase := usecase.NewSettingsUseCase(settingsRepo)
	mediaUseCase := usecase.NewMediaUseCase(a.mediaStore(), a.log)

	// Initialize HTTP handlers
	generationHandler := contentHTTP.NewGenerationHandler(generationUseCase, a.log)
	moderationHandler := contentHTTP.NewModerationHandler(a.moderation, a.log)
	postHandler := contentHTTP.NewPostHandler(postUseCase, a.log)
	reviewHandler := contentHTTP.NewReviewHandler(reviewUseCase, a.log)
	productHandler := contentHTTP.NewFeaturedProductHandler(productUseCase, a.log)
	settingsHandler := contentHTTP.NewSettingsHandler(settingsUseCase, a.log)
	mediaHandler := contentHTTP.NewMediaHandler(mediaUseCase, a.log)

	// Setup router
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.MetricsMiddleware(a.metrics))

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{})))

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	{
		api.GET("/posts", postHandler.ListPublishedPosts)
		api.GET("/posts/:slug", postHandler.GetPublishedPost)
		api.GET("/reviews", reviewHandler.ListPublishedReviews)
		api.GET("/site-settings", settingsHandler.GetSettings)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(a.jwtService))
	admin.Use(middleware.RequireRole(string(models.RoleAdmin)))
	admin.Use(middleware.RateLimitMiddleware(a.redisClient, adminRateLimit, time.Minute))
	{
		admin.POST("/generate",
			middleware.RateLimitMiddleware(a.redisClient, generateRateLimit, time.Minute),
			generationHandler.Generate,
		)

		admin.GET("/review-queue", moderationHandler.ReviewQueue)
		admin.GET("/reviews-queue", moderationHandler.ReviewsQueue)

		admin.GET("/posts", postHandler.ListPosts)
		admin.POST("/posts", postHandler.CreatePost)
		admin.GET("/posts/:id", postHandler.GetPost)
		admin.PUT("/posts/:id", postHandler.UpdatePost)
		admin.DELETE("/posts/:id", moderationHandler.DeletePost)
		admin.PUT("/posts/:id/status", moderationHandler.TransitionPost)

		admin.GET("/slugs/:slug", postHandler.GetPostBySlug)
		admin.PUT("/slugs/:slug", postHandler.UpdatePostBySlug)
		admin.DELETE("/slugs/:slug", postHandler.DeletePostBySlug)

		admin.GET("/reviews", reviewHandler.ListReviews)
		admin.POST("/reviews", reviewHandler.CreateReview)
		admin.GET("/reviews/:id", reviewHandler.GetReview)
		admin.PUT("/reviews/:id", reviewHandler.UpdateReview)
		admin.DELETE("/reviews/:id", moderationHandler.DeleteReview)
		admin.PUT("/reviews/:id/status", moderationHandler.TransitionReview)

		admin.GET("/featured-products", productHandler.ListFeaturedProducts)
		admin.POST("/featured-products", productHandler.CreateFeaturedProduct)
		admin.GET("/featured-products/:id", productHandler.GetFeaturedProduct)
		admin.PUT("/featured-products/:id", productHandler.UpdateFeaturedProduct)
		admin.DELETE("/featured-products/:id", productHandler.DeleteFeaturedProduct)

		admin.GET("/site-settings", settingsHandler.GetSettings)
		admin.PUT("/site-settings", settingsHandler.UpdateSettings)

		admin.POST("/media", mediaHandler.UploadMedia)
	}

	return r
}

// recordQueueDepth refreshes the review queue and event backlog gauges.
func (a *App) recordQueueDepth() {
	a.recordEventBacklog(a.eventQueue())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	posts, reviews, err := a.moderation.QueueDepth(ctx)
	if err != nil {
		a.log.Error("[CRON] Failed to read review queue depth: %v", err)
		return
	}
	a.metrics.SetQueueDepth("post", posts)
	a.metrics.SetQueueDepth("review", reviews)
	a.log.Debug("[CRON] Review queue depth: posts=%d reviews=%d", posts, reviews)
}

func (a *App) recordEventBacklog(q backlogReader) {
	if q == nil {
		return
	}
	messages, err := q.QueueLength()
	if err != nil {
		a.log.Error("[CRON] Failed to read content event backlog: %v", err)
		return
	}
	a.metrics.SetEventBacklog(messages)
	a.log.Debug("[CRON] Content event backlog: %d", messages)
}

func (a *App) Run() error {
	r := a.router()

	a.scheduler = cron.New()
	if _, err := a.scheduler.AddFunc(a.cfg.QueueMetricsSchedule, a.recordQueueDepth); err != nil {
		a.log.Error("[CRON] Invalid schedule %q: %v", a.cfg.QueueMetricsSchedule, err)
		return err
	}
	a.scheduler.Start()
	a.recordQueueDepth()

	// Create HTTP server
	a.httpServer = &http.Server{
		Addr:              ":" + a.cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 15 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		a.log.Info("Content service starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down content service...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if a.scheduler != nil {
		<-a.scheduler.Stop().Done()
	}

	// Shutdown server first so in-flight requests can still reach the stores
	var shutdownErr error
	if a.httpServer != nil {
		if err := a.httpServer.Shutdown(ctx); err != nil {
			a.log.Error("Server forced to shutdown: %v", err)
			shutdownErr = err
		}
	}

	// Close RabbitMQ connection
	if a.queueClient != nil {
		if err := a.queueClient.Close(); err != nil {
			a.log.Error("Error closing RabbitMQ: %v", err)
		}
	}

	// Close Redis connection
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	// Close database connection
	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	a.log.Info("Content service exited")
	_ = a.log.Sync()
	return shutdownErr
}
