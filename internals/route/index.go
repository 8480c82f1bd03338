package routes

import (
	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"go.uber.org/zap"

	"bookstore_backend/internals/configs"
	database "bookstore_backend/internals/databases"
	"bookstore_backend/internals/features"
	helper "bookstore_backend/internals/helpers"
	"bookstore_backend/internals/middlewares"
	"bookstore_backend/internals/middlewares/logger"
	routeDetails "bookstore_backend/internals/route/details"
)

// NewApp builds the Fiber app with middleware and every route mounted.
func NewApp(cfg configs.Config, log *zap.SugaredLogger, conn *database.Connection, colls *features.Collections) *fiber.App {
	app := fiber.New(fiber.Config{
		// ConfigStd copies decoded strings out of the request buffer,
		// which fasthttp reuses once the handler returns
		JSONEncoder:           sonic.ConfigStd.Marshal,
		JSONDecoder:           sonic.ConfigStd.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler:          helper.ErrorHandler,
	})

	metrics := middlewares.NewMetrics()
	app.Use(middlewares.RequestContext(cfg.RequestTimeout))
	app.Use(metrics.Middleware())
	app.Use(logger.LoggerMiddleware(log))
	app.Use(middlewares.RecoveryMiddleware(log))
	app.Use(middlewares.CorsMiddleware(cfg.CorsAllowOrigins))
	if cfg.RateLimitMax > 0 {
		app.Use(middlewares.RateLimiter(cfg.RateLimitMax))
	}
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 caching

	SetupRoutes(app, cfg, log, conn, colls, metrics)
	return app
}

func SetupRoutes(app *fiber.App, cfg configs.Config, log *zap.SugaredLogger, conn *database.Connection, colls *features.Collections, metrics *middlewares.Metrics) {
	log.Debug("🔧 Setup base routes")
	BaseRoutes(app, conn, metrics, cfg.Environment)

	log.Debug("🔧 Mount /api/bookstores")
	routeDetails.BookStoreRoutes(app, colls)

	log.Debug("🔧 Mount /api/documents")
	routeDetails.DocumentRoutes(app, colls)
}
