package helper

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// The resource API answers with bare JSON strings, never an envelope:
//   200 "BookStore added!"
//   400 "Error: <error text>"
//   404 "Error: BookStore not found"

// JsonMessage sends message as a JSON string with the given status.
func JsonMessage(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(message)
}

// JsonOK sends data (records, arrays or nil → null) with status 200.
func JsonOK(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

// JsonFault reports err as a 400 "Error: ..." string.
func JsonFault(c *fiber.Ctx, err error) error {
	return JsonMessage(c, fiber.StatusBadRequest, "Error: "+err.Error())
}

// JsonNotFound reports a missing record of the given kind.
func JsonNotFound(c *fiber.Ctx, kind string) error {
	return JsonMessage(c, fiber.StatusNotFound, fmt.Sprintf("Error: %s not found", kind))
}

// ErrorHandler is the app-level fallback for errors returned by handlers
// and middleware (unknown routes, panics turned into errors, ...).
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if fe, ok := err.(*fiber.Error); ok {
		code = fe.Code
	}
	return JsonMessage(c, code, "Error: "+err.Error())
}
