package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

// ErrorHandler renders every handler error as a JSON body. Handlers signal
// the status code with fiber.NewError; anything else is a 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	c.Set(fiber.HeaderContentType, "application/json")
	return c.Status(code).JSON(ErrorResponse{Message: err.Error()})
}
