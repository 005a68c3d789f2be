package app

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rmartinez-dev/todos-api/auth"
	"github.com/rmartinez-dev/todos-api/config"
	"github.com/rmartinez-dev/todos-api/database"
	"github.com/rmartinez-dev/todos-api/router"
)

const defaultTokenTTL = 24 * time.Hour

// SetupAndRunApp handle app and database start and graceful shutdown
func SetupAndRunApp(port string) error {
	// load env variables
	_ = config.LoadENV()

	// the signing key is loaded once and never rotated
	secret := config.GetEnv("JWT_SECRET")
	if secret == "" {
		return errors.New("you must set your 'JWT_SECRET' environmental variable")
	}
	tokens := auth.NewService([]byte(secret), config.GetEnvDuration("TOKEN_TTL", defaultTokenTTL))

	// start database
	err := database.StartMongoDB()
	if err != nil {
		return err
	}

	// defer closing database
	defer database.CloseMongoDB()

	// enforce username uniqueness in the store itself
	if err = database.EnsureAccountIndexes(config.GetEnvOr("ACCOUNT_COLLECTION", "accounts")); err != nil {
		return err
	}

	// create app
	app := fiber.New()

	// attach middleware
	FiberMiddleware(app)

	// setup routes
	router.SetupRoutes(app, tokens)

	// attach swagger
	config.AddSwaggerRoutes(app)

	StartServerWithGracefulShutdown(app, port)

	return nil
}
