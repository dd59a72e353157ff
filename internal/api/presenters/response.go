package presenters

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	Response struct {
		Success bool        `json:"success"`
		Message string      `json:"message"`
		Data    interface{} `json:"data,omitempty"`
		Count   *int        `json:"count,omitempty"`
		Error   interface{} `json:"error,omitempty"`
	}

	FieldError struct {
		Field string `json:"field"`
		Rule  string `json:"rule"`
	}
)

func SuccessResponse(c *fiber.Ctx, data interface{}, code int, message string) error {
	return c.Status(code).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ListResponse is SuccessResponse with an item count, as list endpoints report it.
func ListResponse(c *fiber.Ctx, data interface{}, count int, code int, message string) error {
	return c.Status(code).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
		Count:   &count,
	})
}

// ErrorResponse reports err to the client. Validation errors are expanded
// per field; a nil err omits the error field.
func ErrorResponse(c *fiber.Ctx, code int, message string, err error) error {
	res := Response{
		Success: false,
		Message: message,
	}

	var validationErrs validator.ValidationErrors
	switch {
	case err == nil:
	case errors.As(err, &validationErrs):
		fields := make([]FieldError, 0, len(validationErrs))
		for _, fe := range validationErrs {
			fields = append(fields, FieldError{Field: fe.Field(), Rule: fe.Tag()})
		}
		res.Error = fields
	default:
		res.Error = err.Error()
	}

	return c.Status(code).JSON(res)
}
