package main

import (
	"pilates-club/pkg/config"
	app "pilates-club/services/admin/internal/app"

	_ "pilates-club/services/admin/docs" // Swagger docs
)

// @title           Admin Service API
// @version         1.0
// @description     Admin console for members, contents, coupons and approval settings of the Pilates Club platform

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
