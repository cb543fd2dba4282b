package presenter

import "github.com/gofiber/fiber/v2"

type ErrorResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse carries the full list of upload validation
// failures so clients can show all of them at once.
type ValidationErrorResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

func ValidationError(c *fiber.Ctx, errors []string) error {
	return JSON(c, fiber.StatusBadRequest, ValidationErrorResponse{
		Message: "file validation failed",
		Errors:  errors,
	})
}
