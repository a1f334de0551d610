package internal

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"affiliate-blog/pkg/config"
	"affiliate-blog/pkg/jwt"
	"affiliate-blog/pkg/logger"
	"affiliate-blog/pkg/middleware"
	"affiliate-blog/pkg/models"
	"affiliate-blog/pkg/queue"
	notificationHTTP "affiliate-blog/services/notifier/internal/controller/http"
	"affiliate-blog/services/notifier/internal/repo/store"
	"affiliate-blog/services/notifier/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "affiliate-blog/services/notifier/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, redisClient *redis.Client, queueClient *queue.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Initialize store
	notificationStore := store.NewNotificationStore(redisClient)

	// Initialize UseCase
	notificationUseCase := usecase.NewNotificationUseCase(notificationStore, log)

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           newRouter(notificationUseCase, jwtService, log),
		ReadHeaderTimeout: 15 * time.Second,
	}

	// Start consuming content events
	consumeCtx, stopConsuming := context.WithCancel(context.Background())
	defer stopConsuming()

	log.Info("Starting content event consumer...")
	err := queueClient.ConsumeContentEvents(func(event queue.ContentEvent) error {
		log.Info("[NOTIFIER] Received %s for post %s", event.Type, event.PostID)
		return notificationUseCase.HandleContentEvent(consumeCtx, event)
	})
	if err != nil {
		log.Error("Error starting content event consumer: %v", err)
		panic(err)
	}

	// Start server in a goroutine
	go func() {
		log.Info("Notifier service starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down notifier service...")

	// The context is used to inform the server it has 5 seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close RabbitMQ first so no delivery lands after Redis is gone
	stopConsuming()
	if err := queueClient.Close(); err != nil {
		log.Error("Error closing RabbitMQ: %v", err)
	}

	if err := redisClient.Close(); err != nil {
		log.Error("Error closing Redis: %v", err)
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Notifier service exited")
	_ = log.Sync()
}

func newRouter(notificationUseCase usecase.NotificationUseCase, jwtService *jwt.Service, log *logger.Logger) *gin.Engine {
	notificationHandler := notificationHTTP.NewNotificationHandler(notificationUseCase, log)

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(jwtService), middleware.RequireRole(string(models.RoleAdmin)))
	{
		admin.GET("/notifications", notificationHandler.GetNotifications)
		admin.DELETE("/notifications", notificationHandler.ClearNotifications)
	}

	return r
}
