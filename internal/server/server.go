// Package server exposes the extraction engine over HTTP.
package server

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"go.uber.org/zap"

	"roomscan/internal/config"
	"roomscan/internal/store"
	"roomscan/pkg/kernel"
	"roomscan/pkg/report"
)

// Server wires the extraction engine, report store, mesh kernel and
// upload client behind the HTTP routes.
type Server struct {
	app      *fiber.App
	handlers *Handlers
}

// New builds the fiber application and its routes.
func New(cfg *config.Config, st *store.Store, uploader *report.Client, k kernel.Kernel, logger *zap.Logger) *Server {
	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		AppName:      "roomscan",
	})

	app.Use(recover.New())
	app.Use(requestLogger())

	h := NewHandlers(st, uploader, k, cfg.Display, logger)

	app.Get("/health/live", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "alive"})
	})
	app.Get("/health/ready", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ready"})
	})

	app.Post("/extract", h.Extract)
	app.Get("/reports", h.ListReports)
	app.Get("/reports/:id", h.GetReport)
	app.Get("/reports/:id/summary", h.GetSummary)
	app.Get("/reports/:id/mesh", h.GetMesh)
	app.Post("/reports/:id/upload", h.UploadReport)

	return &Server{app: app, handlers: h}
}

// Listen starts serving on addr and blocks.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App exposes the fiber application for tests.
func (s *Server) App() *fiber.App {
	return s.app
}
