package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rmartinez-dev/todos-api/auth"
	"github.com/rmartinez-dev/todos-api/config"
	"github.com/rmartinez-dev/todos-api/handlers"
	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger.
var l = logrus.New()

func SetupRoutes(app *fiber.App, tokens *auth.Service) {

	accountHandler := handlers.NewHandler(config.GetEnvOr("ACCOUNT_COLLECTION", "accounts"), tokens, l)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Hello, World!",
		})
	})

	app.Get("/health", handlers.HandleHealthCheck)

	app.Post("/login", handlers.Login(accountHandler))
	app.Post("/register", handlers.Register(accountHandler))

	todos := app.Group("/todos", RequireToken(tokens))
	todos.Get("/", handlers.ListTodos(accountHandler))
	todos.Post("/", handlers.CreateTodo(accountHandler))
	todos.Put("/:todoId", handlers.UpdateTodo(accountHandler))
	todos.Delete("/:todoId", handlers.DeleteTodo(accountHandler))
}
