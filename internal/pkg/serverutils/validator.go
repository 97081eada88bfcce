package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateRequest runs struct tag validation and reports the first failing
// field as a 400.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			return BadRequest(fmt.Sprintf("%s is required", field))
		case "email":
			return BadRequest(fmt.Sprintf("%s must be a valid email address", field))
		default:
			return BadRequest(fmt.Sprintf("%s is invalid", field))
		}
	}
	return NewHttpError(fiber.StatusBadRequest, "Invalid request body")
}
