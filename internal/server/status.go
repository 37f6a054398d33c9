// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package server

import (
	"github.com/gofiber/fiber/v2"
)

type statusResponse struct {
	Status  string `json:"status"`
	Name    string `json:"name"`
	Version string `json:"version"`
}

// statusRoutes registers the health and readiness routes of the service.
func statusRoutes(app *fiber.App, name, version string) {
	status := statusResponse{
		Status:  "OK",
		Name:    name,
		Version: version,
	}

	handler := func(c *fiber.Ctx) error {
		return c.JSON(status)
	}

	app.Get(statusRoutePrefix+"healthz", handler)
	app.Get(statusRoutePrefix+"ready", handler)
}
