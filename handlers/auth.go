package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rmartinez-dev/todos-api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// @Summary Register a new account.
// @Description create an account and issue a bearer token for it.
// @Tags auth
// @Accept json
// @Param credentials body models.Credentials true "Username and password"
// @Produce json
// @Success 200 {object} models.AuthResponse
// @Router /register [post]
func Register(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		creds := new(models.Credentials)
		if err := c.BodyParser(creds); err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "request body malformed", err.Error())
		}
		if creds.Username == "" || creds.Password == "" {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "username and password are required", nil)
		}

		var existing models.Account
		err := h.Db.FindOne(h.C, bson.M{"username": creds.Username}).Decode(&existing)
		if err == nil {
			return FiberJsonResponse(c, fiber.StatusConflict, "error", "account already exists", nil)
		}
		if err != mongo.ErrNoDocuments {
			h.L.Error("[AccountDB] Error checking if account already exists", "error", err)
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "error checking if account already exists", err.Error())
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to hash password", err.Error())
		}

		account := models.Account{
			ID:       primitive.NewObjectID(),
			Username: creds.Username,
			Password: string(hashed),
			Todos:    []models.TodoItem{},
		}
		if _, err = h.Db.InsertOne(h.C, account); err != nil {
			// The unique username index closes the lookup-then-create race.
			if mongo.IsDuplicateKeyError(err) {
				return FiberJsonResponse(c, fiber.StatusConflict, "error", "account already exists", nil)
			}
			h.L.Error("[AccountDB] Error creating account", "error", err)
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to create account", err.Error())
		}

		token, err := h.Tokens.Issue(account.ID)
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to issue token", err.Error())
		}
		return c.Status(fiber.StatusOK).JSON(models.AuthResponse{Auth: true, Token: token})
	}
}

// @Summary Log in to an account.
// @Description verify credentials and issue a bearer token.
// @Tags auth
// @Accept json
// @Param credentials body models.Credentials true "Username and password"
// @Produce json
// @Success 200 {object} models.AuthResponse
// @Router /login [post]
func Login(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		creds := new(models.Credentials)
		if err := c.BodyParser(creds); err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "request body malformed", err.Error())
		}
		if creds.Username == "" || creds.Password == "" {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "username and password are required", nil)
		}

		var account models.Account
		err := h.Db.FindOne(h.C, bson.M{"username": creds.Username}).Decode(&account)
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusUnauthorized, "error", "invalid credentials", nil)
		}
		if bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(creds.Password)) != nil {
			return FiberJsonResponse(c, fiber.StatusUnauthorized, "error", "invalid credentials", nil)
		}

		token, err := h.Tokens.Issue(account.ID)
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to issue token", err.Error())
		}
		return c.Status(fiber.StatusOK).JSON(models.AuthResponse{Auth: true, Token: token})
	}
}
