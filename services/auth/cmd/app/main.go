package main

import (
	"pilates-club/pkg/config"
	app "pilates-club/services/auth/internal/app"

	_ "pilates-club/services/auth/docs" // Swagger docs
)

// @title           Auth Service API
// @version         1.0
// @description     Member login, registration and sessions for the Pilates Club platform

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

	if err := cfg.Validate(); err != nil {
		panic(err)
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
