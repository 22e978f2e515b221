// SPDX-License-Identifier: MIT
// Package: lvlalg/server
//
// module.go — mono lifecycle around the fiber application.

package server

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/go-monolith/mono"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/katalvlaran/lvlalg/config"
	"github.com/katalvlaran/lvlalg/exercise"
	"github.com/katalvlaran/lvlalg/randx"
)

// ModuleName is the name reported to mono.
const ModuleName = "lvlalg-http"

// startupGrace is how long Start waits for Listen to fail before it reports success.
const startupGrace = 100 * time.Millisecond

// Module serves exercises over HTTP.
type Module struct {
	cfg     *config.Config
	logger  *slog.Logger
	rng     *rand.Rand
	app     *fiber.App
	running atomic.Bool

	generateFn func(exercise.Params, ...exercise.Option) exercise.Result
}

var _ mono.HealthCheckableModule = (*Module)(nil)

// New builds the module and its routes. A nil cfg means config.Default();
// a nil logger means slog.Default(). Nothing listens until Start.
func New(cfg *config.Config, logger *slog.Logger) *Module {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	m := &Module{
		cfg:    cfg,
		logger: logger.With("module", ModuleName),
		rng:    randx.NewShared(cfg.Generator.Seed),

		generateFn: exercise.Generate,
	}
	m.app = m.newApp()
	return m
}

// App returns the underlying fiber application; tests drive it with app.Test.
func (m *Module) App() *fiber.App {
	return m.app
}

func (m *Module) newApp() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           m.cfg.Server.ReadTimeout.Duration,
		WriteTimeout:          m.cfg.Server.WriteTimeout.Duration,
		ErrorHandler:          m.errorHandler,
	})
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", m.handleIndex)
	app.Get("/api/exercise", m.handleExercise)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(m.Health(c.Context()))
	})
	return app
}

// Name returns the module name.
func (m *Module) Name() string {
	return ModuleName
}

// Health reports whether the listener is up.
func (m *Module) Health(_ context.Context) mono.HealthStatus {
	if !m.running.Load() {
		return mono.HealthStatus{
			Healthy: false,
			Message: "HTTP server not listening",
			Details: map[string]any{"addr": m.cfg.Server.Addr()},
		}
	}
	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"addr": m.cfg.Server.Addr(),
			"mode": m.cfg.Generator.Mode,
		},
	}
}

// Start listens on cfg.Server.Addr() in the background.
func (m *Module) Start(ctx context.Context) error {
	addr := m.cfg.Server.Addr()
	errChan := make(chan error, 1)
	go func() {
		m.running.Store(true)
		if err := m.app.Listen(addr); err != nil {
			m.running.Store(false)
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("failed to start HTTP server on %s: %w", addr, err)
	case <-time.After(startupGrace):
		m.logger.Info("HTTP server started", "addr", addr)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop waits for in-flight requests up to the context deadline.
func (m *Module) Stop(ctx context.Context) error {
	if !m.running.Load() {
		return nil
	}
	m.logger.Info("shutting down HTTP server")

	if err := m.app.ShutdownWithContext(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}
	m.running.Store(false)
	m.logger.Info("HTTP server stopped")
	return nil
}

func (m *Module) errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}
	if code >= fiber.StatusInternalServerError {
		m.logger.Error("request failed", "path", c.Path(), "error", err)
	}
	return c.Status(code).JSON(fiber.Map{"error": message})
}
