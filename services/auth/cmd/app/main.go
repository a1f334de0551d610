package main

import (
	"affiliate-blog/pkg/config"
	app "affiliate-blog/services/auth/internal/app"

	"github.com/gin-gonic/gin"

	_ "affiliate-blog/services/auth/docs" // Swagger docs
)

// @title           Auth Service API
// @version         1.0
// @description     Registration, login and token issuing for the affiliate blog
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8001
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

	// Validate JWT_SECRET for services that use JWT
	if cfg.HasInsecureJWTSecret() {
		panic("JWT_SECRET must be set in environment variables")
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		panic(err)
	}

	if err := application.Run(); err != nil {
		panic(err)
	}

	application.Wait()

	if err := application.Shutdown(); err != nil {
		panic(err)
	}
}
