package utils

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// SuccessResponse is the envelope of every successful JSON answer.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse is the envelope of every failed JSON answer.
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   string      `json:"error"`
	Message string      `json:"message,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// Success answers status with data. The first meta value, if any, is sent
// alongside, e.g. list totals.
func Success(c *fiber.Ctx, status int, data interface{}, meta ...interface{}) error {
	resp := SuccessResponse{Success: true, Data: data}
	if len(meta) > 0 {
		resp.Meta = meta[0]
	}
	return c.Status(status).JSON(resp)
}

// OK answers 200 with data and a human readable message.
func OK(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(SuccessResponse{Success: true, Message: message, Data: data})
}

// Error answers status with err as the message. The error field carries the
// status text.
func Error(c *fiber.Ctx, status int, err error, details ...interface{}) error {
	var d interface{}
	if len(details) > 0 {
		d = details[0]
	}
	return fail(c, status, http.StatusText(status), err.Error(), d)
}

// ValidationError answers 422 with one message per offending field.
func ValidationError(c *fiber.Ctx, fields map[string]string) error {
	return fail(c, fiber.StatusUnprocessableEntity, "Validation Error", "", fields)
}

// NotFound answers 404 with message.
func NotFound(c *fiber.Ctx, message string) error {
	return failStatus(c, fiber.StatusNotFound, message)
}

// BadRequest answers 400 with message.
func BadRequest(c *fiber.Ctx, message string) error {
	return failStatus(c, fiber.StatusBadRequest, message)
}

// Unauthorized answers 401 with message.
func Unauthorized(c *fiber.Ctx, message string) error {
	return failStatus(c, fiber.StatusUnauthorized, message)
}

// Forbidden answers 403 with message.
func Forbidden(c *fiber.Ctx, message string) error {
	return failStatus(c, fiber.StatusForbidden, message)
}

// InternalServerError answers 500 with message. Callers pass a generic
// message; the cause belongs in the log.
func InternalServerError(c *fiber.Ctx, message string) error {
	return failStatus(c, fiber.StatusInternalServerError, message)
}

func failStatus(c *fiber.Ctx, status int, message string) error {
	return fail(c, status, http.StatusText(status), message, nil)
}

func fail(c *fiber.Ctx, status int, title, message string, details interface{}) error {
	return c.Status(status).JSON(ErrorResponse{
		Success: false,
		Error:   title,
		Message: message,
		Details: details,
	})
}
