package config

import (
	"fmt"
	"io"
	"os"

	"recipe-catalog/internal/api/handlers"
	"recipe-catalog/internal/api/presenters"
	"recipe-catalog/internal/api/routes"
	"recipe-catalog/internal/middleware"
	"recipe-catalog/internal/utils"
	"recipe-catalog/pkg/database"
	"recipe-catalog/pkg/recipe"

	"github.com/gofiber/fiber/v2"
)

// NewApp wires the HTTP surface on top of an initialized gateway. The caller
// owns the gateway and closes it after the app has shut down; the access log
// is closed by the app's shutdown hook.
func NewApp(gateway *database.Gateway, cfg utils.Config) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		AppName:      "recipe-catalog",
		ErrorHandler: presenters.ErrorHandler,
	})
	validator := utils.Validate

	logOutput, closeLog, err := accessLogOutput(cfg.LogFile)
	if err != nil {
		return nil, err
	}
	app.Hooks().OnShutdown(closeLog)
	middlewares := middleware.NewMiddleware(middleware.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		RateLimitMax: cfg.RateLimitMax,
		LogOutput:    logOutput,
	})

	app.Use(middlewares.RecoverMiddleware())
	app.Use(middlewares.RequestIDMiddleware())
	app.Use(middlewares.LoggerMiddleware())

	// Repository
	recipeRepository := recipe.NewRecipeRepository(gateway.DB())

	// Service
	recipeService := recipe.NewRecipeService(gateway, recipeRepository)

	// Handler
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	healthHandler := handlers.NewHealthHandler(gateway)

	// routes
	routesConfig := routes.Config{
		App:           app,
		RecipeHandler: recipeHandler,
		HealthHandler: healthHandler,
		Middleware:    middlewares,
	}
	routesConfig.Setup()
	return app, nil
}

// accessLogOutput opens LOG_FILE for appending, or falls back to stdout.
// The returned close func never closes stdout.
func accessLogOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, nil, fmt.Errorf("open access log %s: %w", path, err)
	}
	return file, file.Close, nil
}
