package serverutils

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateRequest checks struct tags and converts failures into a 422 the
// error middleware can render directly.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}
		first := validationErrors[0]
		msg := fmt.Sprintf("field '%s' failed on '%s' validation", first.Field(), first.Tag())
		return fiber.NewError(fiber.StatusUnprocessableEntity, msg)
	}
	return nil
}
