package handlers

import (
	"Genie-Expiry-Tracker/domain"
	"Genie-Expiry-Tracker/internal/api/presenters"
	"Genie-Expiry-Tracker/pkg/food"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodHandler interface {
		AddFoodItem(c *fiber.Ctx) error
		UpdateFoodItem(c *fiber.Ctx) error
		DeleteFoodItem(c *fiber.Ctx) error
		GetFoodItems(c *fiber.Ctx) error
		GetFoodItemDetails(c *fiber.Ctx) error
		GetExpiringItems(c *fiber.Ctx) error
		GetExpiredItems(c *fiber.Ctx) error
		GetDashboardStats(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService food.FoodService
		validator   *validator.Validate
	}
)

func NewFoodHandler(foodService food.FoodService, validator *validator.Validate) FoodHandler {
	return &foodHandler{
		foodService: foodService,
		validator:   validator,
	}
}

func (h *foodHandler) AddFoodItem(c *fiber.Ctx) error {
	req := new(domain.AddFoodItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFoodItem, err)
	}

	res, err := h.foodService.AddFoodItem(c.UserContext(), *req)
	if err != nil {
		return serviceError(c, domain.MessageFailedAddFoodItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddFoodItem)
}

func (h *foodHandler) UpdateFoodItem(c *fiber.Ctx) error {
	itemID, err := parseID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFoodItem, err)
	}

	req := new(domain.UpdateFoodItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFoodItem, err)
	}

	res, err := h.foodService.UpdateFoodItem(c.UserContext(), itemID, *req)
	if err != nil {
		return serviceError(c, domain.MessageFailedUpdateFoodItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateFoodItem)
}

func (h *foodHandler) DeleteFoodItem(c *fiber.Ctx) error {
	itemID, err := parseID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteFoodItem, err)
	}

	res, err := h.foodService.DeleteFoodItem(c.UserContext(), itemID)
	if err != nil {
		return serviceError(c, domain.MessageFailedDeleteFoodItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessDeleteFoodItem)
}

func (h *foodHandler) GetFoodItems(c *fiber.Ctx) error {
	items, err := h.foodService.GetFoodItems(c.UserContext())
	if err != nil {
		return serviceError(c, domain.MessageFailedGetFoodItems, err)
	}

	return presenters.ListResponse(c, items, len(items), fiber.StatusOK, domain.MessageSuccessGetFoodItems)
}

func (h *foodHandler) GetFoodItemDetails(c *fiber.Ctx) error {
	itemID, err := parseID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFoodItem, err)
	}

	item, err := h.foodService.GetFoodItemByID(c.UserContext(), itemID)
	if err != nil {
		return serviceError(c, domain.MessageFailedGetFoodItem, err)
	}

	return presenters.SuccessResponse(c, item, fiber.StatusOK, domain.MessageSuccessGetFoodItem)
}

func (h *foodHandler) GetExpiringItems(c *fiber.Ctx) error {
	// unparseable or negative values fall back to the default window
	days := c.QueryInt("days", domain.DefaultExpiringDays)
	if days < 0 {
		days = domain.DefaultExpiringDays
	}

	items, err := h.foodService.GetExpiringItems(c.UserContext(), days)
	if err != nil {
		return serviceError(c, domain.MessageFailedGetExpiringItems, err)
	}

	message := fmt.Sprintf("Found %d items expiring within %d days", len(items), days)
	return presenters.ListResponse(c, items, len(items), fiber.StatusOK, message)
}

func (h *foodHandler) GetExpiredItems(c *fiber.Ctx) error {
	items, err := h.foodService.GetExpiredItems(c.UserContext())
	if err != nil {
		return serviceError(c, domain.MessageFailedGetExpiredItems, err)
	}

	message := fmt.Sprintf("Found %d expired items", len(items))
	return presenters.ListResponse(c, items, len(items), fiber.StatusOK, message)
}

func (h *foodHandler) GetDashboardStats(c *fiber.Ctx) error {
	stats, err := h.foodService.GetDashboardStats(c.UserContext())
	if err != nil {
		return serviceError(c, domain.MessageFailedGetDashboardStats, err)
	}

	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetDashboardStats)
}
