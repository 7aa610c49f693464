package main

import (
	"pilates-club/pkg/config"
	app "pilates-club/services/catalog/internal/app"

	_ "pilates-club/services/catalog/docs" // Swagger docs
)

// @title           Catalog Service API
// @version         1.0
// @description     Member video catalog and watch pages for the Pilates Club platform

// @host      localhost:8002
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
