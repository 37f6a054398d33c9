// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the request id in both directions.
	RequestIDHeader = "x-request-id"

	IncomingRequestMessage  = "incoming request"
	RequestCompletedMessage = "request completed"

	requestLoggerPrefix = "request."
)

// NamedLogger is a Logger that can derive a child tagged with a name.
type NamedLogger interface {
	Logger
	Named(name string) Logger
}

// RequestID returns the id sent by the client, or a new random uuid.
func RequestID(c *fiber.Ctx) string {
	if id := c.Get(RequestIDHeader); id != "" {
		return id
	}
	return uuid.NewString()
}

// requestSummary is what the access lines report about a request.
type requestSummary struct {
	method        string
	path          string
	host          string
	forwardedHost string
	forwardedFor  string
	userAgent     string
}

func summarizeRequest(c *fiber.Ctx) requestSummary {
	host, _, _ := strings.Cut(string(c.Request().Host()), ":")
	return requestSummary{
		method:        c.Method(),
		path:          string(c.Request().URI().RequestURI()),
		host:          host,
		forwardedHost: c.Get(fiber.HeaderXForwardedHost),
		forwardedFor:  c.Get(fiber.HeaderXForwardedFor),
		userAgent:     c.Get(fiber.HeaderUserAgent),
	}
}

func (r requestSummary) String() string {
	return fmt.Sprintf("method=%s path=%s host=%s forwardedHost=%s ip=%s userAgent=%q",
		r.method, r.path, r.host, r.forwardedHost, r.forwardedFor, r.userAgent)
}

// responseOutcome reads status and body size from the handler error when it is
// a *fiber.Error, since the error handler has not written the response yet.
func responseOutcome(c *fiber.Ctx, handlerErr error) (int, int) {
	var fiberErr *fiber.Error
	if errors.As(handlerErr, &fiberErr) {
		return fiberErr.Code, len(fiberErr.Message)
	}
	return c.Response().StatusCode(), len(c.Response().Body())
}

// RequestScope returns a fiber middleware running every request in a new
// execution context. The context holds base, named after the request id when
// base is a NamedLogger, and is exposed to handlers as c.UserContext().
// Requests whose path starts with one of skipPrefixes are left untouched.
func RequestScope(base Logger, skipPrefixes ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		for _, prefix := range skipPrefixes {
			if strings.HasPrefix(c.Path(), prefix) {
				return c.Next()
			}
		}

		start := time.Now()
		id := RequestID(c)
		c.Set(RequestIDHeader, id)

		requestLogger := base
		if named, ok := base.(NamedLogger); ok {
			requestLogger = named.Named(requestLoggerPrefix + id)
		}

		ctx := WithLogger(c.UserContext(), requestLogger)
		c.SetUserContext(ctx)

		summary := summarizeRequest(c)
		Debugf(ctx, "%s %s", IncomingRequestMessage, summary)

		err := c.Next()

		status, size := responseOutcome(c, err)
		logRequestCompleted(ctx, summary, status, size, time.Since(start))
		return err
	}
}

func logRequestCompleted(ctx context.Context, summary requestSummary, status, size int, elapsed time.Duration) {
	Infof(ctx, "%s %s statusCode=%d bytes=%d responseTime=%dms",
		RequestCompletedMessage, summary, status, size, elapsed.Milliseconds())
}
