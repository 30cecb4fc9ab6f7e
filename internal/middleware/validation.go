package middleware

import (
	"reading-quiz/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ValidatedIDKey is the fiber.Ctx local holding a validated path id.
const ValidatedIDKey = "validated_id"

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateIDParam checks that the :id path parameter is a ULID and stores
// it under ValidatedIDKey. field names the parameter in error responses.
func (vm *ValidationMiddleware) ValidateIDParam(field string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if errors := vm.validator.ValidateID(field, id); len(errors) > 0 {
			return errors // This will be handled by ErrorHandler middleware
		}
		c.Locals(ValidatedIDKey, id)
		return c.Next()
	}
}
