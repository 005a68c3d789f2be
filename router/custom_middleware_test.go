package router

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rmartinez-dev/todos-api/auth"
	"github.com/rmartinez-dev/todos-api/handlers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newGatedApp(tokens *auth.Service) *fiber.App {
	app := fiber.New()
	app.Get("/todos", RequireToken(tokens), func(c *fiber.Ctx) error {
		id, ok := handlers.AccountIDFromCtx(c)
		if !ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendString(id.Hex())
	})
	return app
}

func TestRequireTokenMissingHeader(t *testing.T) {
	app := newGatedApp(auth.NewService([]byte("secret"), time.Hour))

	req := httptest.NewRequest("GET", "/todos", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRequireTokenInvalidToken(t *testing.T) {
	app := newGatedApp(auth.NewService([]byte("secret"), time.Hour))

	req := httptest.NewRequest("GET", "/todos", nil)
	req.Header.Set(TokenHeader, "garbage")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireTokenExpiredToken(t *testing.T) {
	tokens := auth.NewService([]byte("secret"), -time.Minute)
	app := newGatedApp(tokens)

	token, err := tokens.Issue(primitive.NewObjectID())
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/todos", nil)
	req.Header.Set(TokenHeader, token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireTokenWrongKey(t *testing.T) {
	issuer := auth.NewService([]byte("other-secret"), time.Hour)
	app := newGatedApp(auth.NewService([]byte("secret"), time.Hour))

	token, err := issuer.Issue(primitive.NewObjectID())
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/todos", nil)
	req.Header.Set(TokenHeader, token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireTokenResolvesAccountID(t *testing.T) {
	tokens := auth.NewService([]byte("secret"), time.Hour)
	app := newGatedApp(tokens)

	accountID := primitive.NewObjectID()
	token, err := tokens.Issue(accountID)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/todos", nil)
	req.Header.Set(TokenHeader, token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, accountID.Hex(), string(body))
}
