package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/rmartinez-dev/todos-api/auth"
	"github.com/rmartinez-dev/todos-api/database"
	"github.com/rmartinez-dev/todos-api/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// AccountIDKey is the Locals key the auth middleware stores the resolved
// account id under.
const AccountIDKey = "accountId"

type Handler struct {
	Db     *mongo.Collection
	Tokens *auth.Service
	L      *logrus.Logger
	C      context.Context
}

func NewHandler(collectionName string, tokens *auth.Service, l *logrus.Logger) *Handler {
	return &Handler{
		Db:     database.GetCollection(collectionName),
		Tokens: tokens,
		L:      l,
		C:      context.Background(),
	}
}

// GetAccountByID fetches a single account document. The password field is
// excluded from JSON by the model tag, not by projection, so login can
// share the same decode path.
func (h *Handler) GetAccountByID(id primitive.ObjectID) (*models.Account, error) {
	var account models.Account
	filter := bson.M{"_id": id}
	err := h.Db.FindOne(h.C, filter).Decode(&account)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// AccountIDFromCtx reads the account id the auth middleware resolved for
// this request.
func AccountIDFromCtx(c *fiber.Ctx) (primitive.ObjectID, bool) {
	id, ok := c.Locals(AccountIDKey).(primitive.ObjectID)
	return id, ok
}

func FiberJsonResponse(c *fiber.Ctx, httpStatus int, status, message string, data any) error {
	return c.Status(httpStatus).JSON(fiber.Map{"status": status, "message": message, "data": data})
}
