package handlers

import (
	"Genie-Expiry-Tracker/domain"
	"Genie-Expiry-Tracker/internal/api/presenters"
	"Genie-Expiry-Tracker/pkg/estimation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	EstimationHandler interface {
		GetEstimate(c *fiber.Ctx) error
		SearchGuidelines(c *fiber.Ctx) error
		GetSafetyTips(c *fiber.Ctx) error
	}

	estimationHandler struct {
		estimationService estimation.EstimationService
		validator         *validator.Validate
	}
)

func NewEstimationHandler(estimationService estimation.EstimationService, validator *validator.Validate) EstimationHandler {
	return &estimationHandler{
		estimationService: estimationService,
		validator:         validator,
	}
}

func (h *estimationHandler) GetEstimate(c *fiber.Ctx) error {
	req := new(domain.EstimateRequest)

	if err := c.QueryParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedEstimate, err)
	}

	var storage *domain.StorageCondition
	if req.Storage != "" {
		parsed, err := domain.ParseStorageCondition(req.Storage)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedEstimate, err)
		}
		storage = &parsed
	}

	res := h.estimationService.Estimate(req.Name, req.Category, storage)
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessEstimate)
}

func (h *estimationHandler) SearchGuidelines(c *fiber.Ctx) error {
	entries := h.estimationService.SearchGuidelines(c.Query("q"))
	return presenters.ListResponse(c, entries, len(entries), fiber.StatusOK, domain.MessageSuccessSearchTable)
}

func (h *estimationHandler) GetSafetyTips(c *fiber.Ctx) error {
	res := h.estimationService.SafetyTips(c.Query("category", domain.CategoryOther))
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSafetyTips)
}
