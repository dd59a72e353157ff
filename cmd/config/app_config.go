package config

import (
	"Genie-Expiry-Tracker/domain"
	"Genie-Expiry-Tracker/internal/api/handlers"
	"Genie-Expiry-Tracker/internal/api/presenters"
	"Genie-Expiry-Tracker/internal/api/routes"
	"Genie-Expiry-Tracker/internal/middleware"
	"Genie-Expiry-Tracker/internal/utils"
	"Genie-Expiry-Tracker/pkg/estimation"
	"Genie-Expiry-Tracker/pkg/food"
	"Genie-Expiry-Tracker/pkg/guideline"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// NewApp wires the application. now is the clock used for every date
// computation; nil means time.Now.
func NewApp(cfg utils.Config, now func() time.Time) (*fiber.App, error) {
	if now == nil {
		now = time.Now
	}
	utils.InitValidator()
	setLogLevel(cfg.LogLevel)

	app := fiber.New(fiber.Config{
		AppName:      domain.ServiceName,
		ErrorHandler: errorHandler,
	})
	middlewares := middleware.NewMiddleware(cfg.AppEnv == "production", cfg.ClientURL)
	validator := utils.Validate

	// setting up logging
	output, err := logOutput(cfg.LogPath)
	if err != nil {
		return nil, err
	}
	if tee, ok := output.(*teeWriter); ok {
		app.Hooks().OnShutdown(tee.Close)
	}

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${locals:requestid} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${error}\n",
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   cfg.TimeZone,
		Output:     output,
	}))

	// Repository
	foodRepository := food.NewFoodRepository()
	guidelineRepository, err := guideline.NewGuidelineRepository(cfg.GuidelineCacheSize)
	if err != nil {
		return nil, fmt.Errorf("load guidelines: %w", err)
	}

	// Service
	estimationService := estimation.NewEstimationService(guidelineRepository, now)
	foodService := food.NewFoodService(foodRepository, estimationService, now)

	// Handler
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	estimationHandler := handlers.NewEstimationHandler(estimationService, validator)
	healthHandler := handlers.NewHealthHandler(foodService, estimationService, now)

	// routes
	routesConfig := routes.Config{
		App:               app,
		FoodHandler:       foodHandler,
		EstimationHandler: estimationHandler,
		HealthHandler:     healthHandler,
		Middleware:        middlewares,
		RateLimitMax:      cfg.RateLimitMax,
		RateLimitWindow:   time.Duration(cfg.RateLimitWindowSeconds) * time.Second,
	}
	routesConfig.Setup()

	log.Infof("guideline table v%d loaded with %d entries", guidelineRepository.Version(), len(guidelineRepository.Entries()))
	return app, nil
}

// logOutput writes access logs to stdout and, when path is set, to the file.
func logOutput(path string) (io.Writer, error) {
	if path == "" {
		return os.Stdout, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return &teeWriter{Writer: io.MultiWriter(os.Stdout, file), file: file}, nil
}

type teeWriter struct {
	io.Writer
	file *os.File
}

func (w *teeWriter) Close() error {
	return w.file.Close()
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := domain.MessageInternalServerError

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}
	if code >= fiber.StatusInternalServerError {
		log.Errorf("%s %s: %v", c.Method(), c.Path(), err)
		return presenters.ErrorResponse(c, code, message, nil)
	}
	return presenters.ErrorResponse(c, code, message, err)
}

func setLogLevel(level string) {
	switch strings.ToLower(level) {
	case "debug":
		log.SetLevel(log.LevelDebug)
	case "warn":
		log.SetLevel(log.LevelWarn)
	case "error":
		log.SetLevel(log.LevelError)
	default:
		log.SetLevel(log.LevelInfo)
	}
}
