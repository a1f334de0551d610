package main

import (
	"affiliate-blog/pkg/cache"
	"affiliate-blog/pkg/config"
	"affiliate-blog/pkg/logger"
	"affiliate-blog/pkg/queue"
	notifierApp "affiliate-blog/services/notifier/internal/app"

	"github.com/gin-gonic/gin"
)

// @title           Notifier Service API
// @version         1.0
// @description     Admin notification feed built from content pipeline events
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8003
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	gin.SetMode(cfg.GinMode)

	if cfg.HasInsecureJWTSecret() {
		panic("JWT_SECRET must be set in environment variables")
	}

	log := logger.New()

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		panic(err)
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v", err)
		panic(err)
	}

	notifierApp.Run(cfg, log, redisClient, queueClient)
}
