package handlers

import (
	"Genie-Expiry-Tracker/domain"
	"Genie-Expiry-Tracker/internal/api/presenters"
	"Genie-Expiry-Tracker/pkg/estimation"
	"Genie-Expiry-Tracker/pkg/food"
	"time"

	"github.com/gofiber/fiber/v2"
)

var endpointIndex = fiber.Map{
	"health":  "GET /health",
	"status":  "GET /api/status",
	"metrics": "GET /metrics",
	"food": fiber.Map{
		"getAll":   "GET /api/food",
		"getOne":   "GET /api/food/:id",
		"create":   "POST /api/food",
		"update":   "PUT /api/food/:id",
		"delete":   "DELETE /api/food/:id",
		"estimate": "GET /api/food/estimate?name=&category=&storage=",
		"expiring": "GET /api/food/expiring?days=7",
		"expired":  "GET /api/food/expired",
		"stats":    "GET /api/food/stats",
	},
	"guidelines": fiber.Map{
		"search": "GET /api/guidelines?q=",
		"tips":   "GET /api/guidelines/tips?category=",
	},
}

type (
	HealthHandler interface {
		Health(c *fiber.Ctx) error
		Index(c *fiber.Ctx) error
		Status(c *fiber.Ctx) error
	}

	healthHandler struct {
		foodService       food.FoodService
		estimationService estimation.EstimationService
		now               func() time.Time
	}
)

func NewHealthHandler(foodService food.FoodService, estimationService estimation.EstimationService, now func() time.Time) HealthHandler {
	if now == nil {
		now = time.Now
	}
	return &healthHandler{
		foodService:       foodService,
		estimationService: estimationService,
		now:               now,
	}
}

func (h *healthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "OK",
		"timestamp": h.now().UTC().Format(time.RFC3339),
		"service":   domain.ServiceName,
		"version":   domain.ServiceVersion,
	})
}

func (h *healthHandler) Index(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":    "Genie API is running!",
		"version":    domain.ServiceVersion,
		"categories": domain.Categories,
		"endpoints":  endpointIndex,
	})
}

func (h *healthHandler) Status(c *fiber.Ctx) error {
	stats, err := h.foodService.GetDashboardStats(c.UserContext())
	if err != nil {
		return serviceError(c, domain.MessageFailedProcessRequest, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"status":    "connected",
		"timestamp": h.now().UTC().Format(time.RFC3339),
		"services": fiber.Map{
			"database": "in-memory storage active",
			"items":    stats.TotalItems,
			"guidelines": fiber.Map{
				"version": h.estimationService.GuidelineVersion(),
				"entries": h.estimationService.GuidelineCount(),
			},
		},
	}, fiber.StatusOK, "status retrieved successfully")
}
