package routes

import (
	"Genie-Expiry-Tracker/domain"
	"Genie-Expiry-Tracker/internal/api/handlers"
	"Genie-Expiry-Tracker/internal/api/presenters"
	"Genie-Expiry-Tracker/internal/middleware"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Config struct {
	App               *fiber.App
	FoodHandler       handlers.FoodHandler
	EstimationHandler handlers.EstimationHandler
	HealthHandler     handlers.HealthHandler
	Middleware        middleware.Middleware
	RateLimitMax      int
	RateLimitWindow   time.Duration
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.App.Use(c.Middleware.MetricsMiddleware())
	c.GuestRoute()
	c.App.Use("/api", c.Middleware.RateLimiter(c.RateLimitMax, c.RateLimitWindow))
	c.FoodItems()
	c.Guidelines()
	c.NotFound()
}

func (c *Config) GuestRoute() {
	c.App.Get("/health", c.HealthHandler.Health)
	c.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	c.App.Get("/api", c.HealthHandler.Index)
	c.App.Get("/api/status", c.HealthHandler.Status)
}

func (c *Config) FoodItems() {
	foodItems := c.App.Group("/api/food")

	// static paths first so they are not captured by /:id
	foodItems.Get("/estimate", c.EstimationHandler.GetEstimate)
	foodItems.Get("/expiring", c.FoodHandler.GetExpiringItems)
	foodItems.Get("/expired", c.FoodHandler.GetExpiredItems)
	foodItems.Get("/stats", c.FoodHandler.GetDashboardStats)

	// Basic CRUD operations
	foodItems.Get("", c.FoodHandler.GetFoodItems)
	foodItems.Post("", c.FoodHandler.AddFoodItem)
	foodItems.Get("/:id", c.FoodHandler.GetFoodItemDetails)
	foodItems.Put("/:id", c.FoodHandler.UpdateFoodItem)
	foodItems.Delete("/:id", c.FoodHandler.DeleteFoodItem)
}

func (c *Config) Guidelines() {
	guidelines := c.App.Group("/api/guidelines")
	guidelines.Get("", c.EstimationHandler.SearchGuidelines)
	guidelines.Get("/tips", c.EstimationHandler.GetSafetyTips)
}

func (c *Config) NotFound() {
	c.App.Use(func(ctx *fiber.Ctx) error {
		return presenters.ErrorResponse(ctx, fiber.StatusNotFound, domain.MessageRouteNotFound, nil)
	})
}
