package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/library-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health *handlers.HealthHandler
	Books  *handlers.BooksHandler
	Users  *handlers.UsersHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	bookGroup := app.Group("/book")
	bookGroup.Post("", cfg.Books.Create)
	bookGroup.Post("/loan", cfg.Books.Loan)
	bookGroup.Put("/return", cfg.Books.Return)
	bookGroup.Get("/loan", cfg.Books.CountLoaned)
	bookGroup.Get("/stat", cfg.Books.Statistics)

	userGroup := app.Group("/user")
	userGroup.Post("", cfg.Users.Create)
	userGroup.Get("", cfg.Users.List)
	userGroup.Put("", cfg.Users.UpdateName)
	userGroup.Delete("", cfg.Users.Delete)
	userGroup.Get("/loan", cfg.Users.LoanHistories)
}
