package server

import (
	"context"
	"fmt"
	"time"

	"storefront-checkout/internal/core/config"
	"storefront-checkout/internal/core/logger"

	"github.com/gofiber/contrib/fiberzap/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	_ "storefront-checkout/docs/swagger"
)

// RayIDHeader carries the request id back to the client.
const RayIDHeader = "X-Ray-ID"

// Server holds the Fiber application and configuration.
type Server struct {
	// App is the main Fiber application instance.
	App *fiber.App
	// cfg holds the application configuration.
	cfg *config.AppConfig
}

// New creates a new Server instance with configured middleware.
func New(cfg *config.AppConfig) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		AppName:               "storefront-checkout",
	})

	app.Use(requestid.New(requestid.Config{
		Header: RayIDHeader,
	}))

	app.Use(requestContext(cfg.RequestTimeout()))

	app.Use(fiberzap.New(fiberzap.Config{
		Logger: logger.Get(),
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	return &Server{
		App: app,
		cfg: cfg,
	}
}

// requestContext gives every request its own context carrying the ray id. The context is
// cancelled once the handler chain returns, or earlier when budget elapses.
// fasthttp does not report client disconnects, so the budget is what bounds abandoned work.
func requestContext(budget time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := logger.WithRayID(c.UserContext(), RayID(c))

		var cancel context.CancelFunc
		if budget > 0 {
			ctx, cancel = context.WithTimeout(ctx, budget)
		} else {
			ctx, cancel = context.WithCancel(ctx)
		}
		defer cancel()

		c.SetUserContext(ctx)
		return c.Next()
	}
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%d", s.cfg.ServerPort)
	logger.Get().Info("Starting server", zap.String("address", addr))
	return s.App.Listen(addr)
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown() error {
	return s.App.Shutdown()
}

// RayID returns the request id assigned by the requestid middleware.
func RayID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return "unknown"
}
