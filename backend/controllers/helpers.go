package controllers

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"syllabus-tracker/backend/middleware"
	"syllabus-tracker/backend/models"
	"syllabus-tracker/backend/utils"
)

// parseAndValidate decodes the JSON body into dst and runs its struct tags.
// On failure the response has already been written and ok is false.
func parseAndValidate(c *fiber.Ctx, dst interface{}) (ok bool, err error) {
	if err := c.BodyParser(dst); err != nil {
		return false, utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := utils.Validate(dst); err != nil {
		return false, utils.ValidationError(c, utils.FieldErrors(err))
	}
	return true, nil
}

// serviceError maps a service failure onto a response.
func serviceError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	switch {
	case errors.As(err, &ve):
		return utils.ValidationError(c, utils.FieldErrors(err))
	case errors.Is(err, context.DeadlineExceeded):
		return utils.Error(c, fiber.StatusGatewayTimeout, err)
	case errors.Is(err, context.Canceled):
		return utils.Error(c, fiber.StatusServiceUnavailable, err)
	}
	slog.Error("request failed", "path", c.Path(), "error", err)
	return utils.InternalServerError(c, "Internal server error")
}

// requestUser is the user AuthMiddleware attached; routes using it are
// always behind AuthMiddleware.
func requestUser(c *fiber.Ctx) models.User {
	user, _ := middleware.CurrentUser(c)
	return user
}

// applied wraps the result of a mutation that may have matched nothing.
func applied(ok bool, data interface{}) fiber.Map {
	out := fiber.Map{"applied": ok}
	if ok && data != nil {
		out["item"] = data
	}
	return out
}
