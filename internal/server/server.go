// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package server

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/mia-platform/ctxlog/internal/info"
	"github.com/mia-platform/ctxlog/internal/logger"
)

const (
	statusRoutePrefix = "/-/"
	logRoutePath      = "/log/:level"
	levelParam        = "level"
)

var (
	ErrServerListen   = errors.New("server listen error")
	ErrServerShutdown = errors.New("server shutdown error")
)

// Server delivers the messages posted to it to a fixed set of sinks.
type Server struct {
	config Config

	app   *fiber.App
	sinks logger.Logger
}

// NewServer returns a Server whose requests are logged through access, while
// the posted messages are delivered to sinks.
func NewServer(cfg *Config, access, sinks logger.Logger) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: cfg.DisableStartupMessage,
		Immutable:             true,
	})
	app.Use(logger.RequestScope(access, statusRoutePrefix))

	s := &Server{
		config: *cfg,
		app:    app,
		sinks:  sinks,
	}

	statusRoutes(app, info.AppName, info.Version)
	app.Post(logRoutePath, s.deliver)

	return s
}

// App returns the underlying fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

// Start blocks serving requests until Stop is called.
func (s *Server) Start() error {
	address := net.JoinHostPort(s.config.HTTPHost, strconv.Itoa(s.config.HTTPPort))
	if err := s.app.Listen(address); err != nil {
		return fmt.Errorf("%w: %w", ErrServerListen, err)
	}
	return nil
}

// Stop waits for the active requests before returning.
func (s *Server) Stop() error {
	if err := s.app.Shutdown(); err != nil {
		return fmt.Errorf("%w: %w", ErrServerShutdown, err)
	}
	return nil
}

// deliver sends every non empty line of the body as one message at the level
// found in the path.
func (s *Server) deliver(c *fiber.Ctx) error {
	ctx := c.UserContext()

	level, err := logger.ParseLevel(c.Params(levelParam))
	if err != nil {
		logger.Infof(ctx, "rejected message: %s", err)
		return errorResponse(c, http.StatusBadRequest, err.Error())
	}

	lines := make([]string, 0)
	scanner := bufio.NewScanner(bytes.NewReader(c.Body()))
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Infof(ctx, "rejected message: %s", err)
		return errorResponse(c, http.StatusBadRequest, err.Error())
	}
	if len(lines) == 0 {
		logger.Info(ctx, "rejected message: empty body")
		return errorResponse(c, http.StatusBadRequest, "no message provided")
	}

	deliveryCtx := logger.WithLogger(ctx, s.sinks)
	for _, line := range lines {
		logger.Log(deliveryCtx, level, line)
	}

	logger.Infof(ctx, "delivered %d %s messages", len(lines), level)
	return c.SendStatus(http.StatusNoContent)
}

func errorResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"statusCode": status,
		"error":      http.StatusText(status),
		"message":    message,
	})
}
