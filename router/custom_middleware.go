package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rmartinez-dev/todos-api/auth"
	"github.com/rmartinez-dev/todos-api/handlers"
)

// TokenHeader is where clients send their bearer token.
const TokenHeader = "x-access-token"

// RequireToken gates a route group on a valid bearer token. A missing
// header is a 400, a failed verification a 401. On success the resolved
// account id is stored in Locals for the handlers; the middleware itself
// never touches the database.
func RequireToken(tokens *auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get(TokenHeader)
		if token == "" {
			return handlers.FiberJsonResponse(c, fiber.StatusBadRequest, "error", "no token provided", nil)
		}

		accountID, err := tokens.Verify(token)
		if err != nil {
			return handlers.FiberJsonResponse(c, fiber.StatusUnauthorized, "error", err.Error(), nil)
		}

		c.Locals(handlers.AccountIDKey, accountID)
		return c.Next()
	}
}
