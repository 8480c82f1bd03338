package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/heptiolabs/healthcheck"

	database "bookstore_backend/internals/databases"
	"bookstore_backend/internals/middlewares"
)

const pingTimeout = 2 * time.Second

func BaseRoutes(app *fiber.App, conn *database.Connection, metrics *middlewares.Metrics, environment string) {
	startTime := time.Now()

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Bookstore API is running 🚀")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), pingTimeout)
		defer cancel()

		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK
		if err := conn.Ping(ctx); err != nil {
			dbStatus = "Database connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"driver":         conn.Driver,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
			"environment":    environment,
		})
	})

	health := healthcheck.NewHandler()
	health.AddLivenessCheck("goroutine-threshold", healthcheck.GoroutineCountCheck(10000))
	health.AddReadinessCheck("database", healthcheck.Timeout(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
		defer cancel()
		return conn.Ping(ctx)
	}, pingTimeout))

	app.Get("/live", adaptor.HTTPHandlerFunc(health.LiveEndpoint))
	app.Get("/ready", adaptor.HTTPHandlerFunc(health.ReadyEndpoint))
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))
}
