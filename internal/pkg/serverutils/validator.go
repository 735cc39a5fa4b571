package serverutils

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateRequest checks a DTO's validate tags and converts the first
// failure into a 400 the error handler can serialize.
func ValidateRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid value for field '"+errs[0].Field()+"'")
	}
	return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
}
