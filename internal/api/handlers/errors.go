package handlers

import (
	"Genie-Expiry-Tracker/domain"
	"Genie-Expiry-Tracker/internal/api/presenters"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrFoodItemNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrNameRequired),
		errors.Is(err, domain.ErrInvalidExpiryDate),
		errors.Is(err, domain.ErrInvalidFoodItemID),
		errors.Is(err, domain.ErrInvalidStorageType):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// serviceError maps a service error onto a response. Unexpected errors are
// logged and reported without their cause.
func serviceError(c *fiber.Ctx, message string, err error) error {
	code := errorStatus(err)
	if code == fiber.StatusInternalServerError {
		log.Errorf("%s %s: %s: %v", c.Method(), c.Path(), message, err)
		return presenters.ErrorResponse(c, code, message, nil)
	}
	return presenters.ErrorResponse(c, code, message, err)
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidFoodItemID
	}
	return int64(id), nil
}
