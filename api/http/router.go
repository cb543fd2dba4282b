package http

import (
	"github.com/gofiber/fiber/v2"

	"resume-parser/api/http/handlers"
)

// Register wires all HTTP routes onto the given Fiber app. Parsing is
// open to anonymous clients (ownership is recorded when a token is
// present); history endpoints require authentication.
func Register(app *fiber.App,
	parse *handlers.ParseHandler,
	parses *handlers.ParsesHandler,
	auth *handlers.AuthHandler,
	health *handlers.HealthHandler,
	authMW fiber.Handler,
	optionalAuthMW fiber.Handler,
) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", auth.Register)
	a.Post("/login", auth.Login)

	v1.Post("/parse", optionalAuthMW, parse.Parse)

	pg := v1.Group("/parses", authMW)
	pg.Get("/", parses.List)
	pg.Get("/:id", parses.Get)
	pg.Delete("/:id", parses.Delete)
}
