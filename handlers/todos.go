package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rmartinez-dev/todos-api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// @Summary List todos.
// @Description fetch the authenticated account's todo collection.
// @Tags todos
// @Produce json
// @Success 200 {object} []models.TodoItem
// @Router /todos [get]
func ListTodos(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		accountID, ok := AccountIDFromCtx(c)
		if !ok {
			return FiberJsonResponse(c, fiber.StatusUnauthorized, "error", "no account resolved", nil)
		}

		account, err := h.GetAccountByID(accountID)
		if err != nil {
			// The token outlived its account.
			return FiberJsonResponse(c, fiber.StatusUnauthorized, "error", "account not found", nil)
		}
		return c.Status(fiber.StatusOK).JSON(account.Todos)
	}
}

// @Summary Create a todo.
// @Description append a todo item to the authenticated account's collection.
// @Tags todos
// @Accept json
// @Param todo body models.TodoRequest true "Todo text"
// @Produce json
// @Success 200 {object} []models.TodoItem
// @Router /todos [post]
func CreateTodo(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		accountID, ok := AccountIDFromCtx(c)
		if !ok {
			return FiberJsonResponse(c, fiber.StatusUnauthorized, "error", "no account resolved", nil)
		}

		req := new(models.TodoRequest)
		if err := c.BodyParser(req); err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "request body malformed", err.Error())
		}
		if req.Text == "" {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "text is required", nil)
		}

		item := models.TodoItem{ID: primitive.NewObjectID(), Text: req.Text}
		update := bson.M{"$push": bson.M{"todos": item}}
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

		var account models.Account
		err := h.Db.FindOneAndUpdate(h.C, bson.M{"_id": accountID}, update, opts).Decode(&account)
		if err == mongo.ErrNoDocuments {
			return FiberJsonResponse(c, fiber.StatusUnauthorized, "error", "account not found", nil)
		}
		if err != nil {
			h.L.Error("[AccountDB] Error appending todo", "error", err)
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to create todo", err.Error())
		}
		return c.Status(fiber.StatusOK).JSON(account.Todos)
	}
}

// @Summary Update a todo.
// @Description replace the text of one todo item in place.
// @Tags todos
// @Accept json
// @Param todoId path string true "Todo ID"
// @Param todo body models.TodoRequest true "New text"
// @Produce json
// @Success 200 {object} models.Account
// @Router /todos/{todoId} [put]
func UpdateTodo(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		accountID, ok := AccountIDFromCtx(c)
		if !ok {
			return FiberJsonResponse(c, fiber.StatusUnauthorized, "error", "no account resolved", nil)
		}

		todoID, err := primitive.ObjectIDFromHex(c.Params("todoId"))
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid todo id", err.Error())
		}

		req := new(models.TodoRequest)
		if err = c.BodyParser(req); err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "request body malformed", err.Error())
		}

		// Both conditions in one filter so the positional $set can only
		// ever touch an item inside the caller's own document.
		filter := bson.M{
			"_id":   accountID,
			"todos": bson.M{"$elemMatch": bson.M{"_id": todoID}},
		}
		update := bson.M{"$set": bson.M{"todos.$.text": req.Text}}
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

		var account models.Account
		err = h.Db.FindOneAndUpdate(h.C, filter, update, opts).Decode(&account)
		if err == mongo.ErrNoDocuments {
			// The combined filter cannot tell a missing item from a token
			// whose account is gone, so look the account up on its own.
			if ferr := h.Db.FindOne(h.C, bson.M{"_id": accountID}).Err(); ferr != nil {
				return FiberJsonResponse(c, fiber.StatusUnauthorized, "error", "account not found", nil)
			}
			return FiberJsonResponse(c, fiber.StatusNotFound, "error", "todo not found", nil)
		}
		if err != nil {
			h.L.Error("[AccountDB] Error updating todo", "error", err)
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to update todo", err.Error())
		}
		return c.Status(fiber.StatusOK).JSON(account)
	}
}

// @Summary Delete a todo.
// @Description remove one todo item from the authenticated account's collection. Deleting an absent item is a no-op.
// @Tags todos
// @Param todoId path string true "Todo ID"
// @Produce json
// @Success 200 {object} models.Account
// @Router /todos/{todoId} [delete]
func DeleteTodo(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		accountID, ok := AccountIDFromCtx(c)
		if !ok {
			return FiberJsonResponse(c, fiber.StatusUnauthorized, "error", "no account resolved", nil)
		}

		todoID, err := primitive.ObjectIDFromHex(c.Params("todoId"))
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid todo id", err.Error())
		}

		update := bson.M{"$pull": bson.M{"todos": bson.M{"_id": todoID}}}
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

		var account models.Account
		err = h.Db.FindOneAndUpdate(h.C, bson.M{"_id": accountID}, update, opts).Decode(&account)
		if err == mongo.ErrNoDocuments {
			return FiberJsonResponse(c, fiber.StatusUnauthorized, "error", "account not found", nil)
		}
		if err != nil {
			h.L.Error("[AccountDB] Error removing todo", "error", err)
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to delete todo", err.Error())
		}
		return c.Status(fiber.StatusOK).JSON(account)
	}
}
