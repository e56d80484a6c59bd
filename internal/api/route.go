package api

import (
	"github.com/VorteXproCR/Expense-Tracker/internal/api/middleware"
	"github.com/VorteXproCR/Expense-Tracker/internal/api/v1"
	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, handler *v1.Handler) {
	app.Get("/api/health", handler.Health)
	app.Post("/api/expenses", middleware.RequireIdempotencyKey(), handler.CreateExpense)
	app.Get("/api/expenses", handler.ListExpenses)
	app.Delete("/api/expenses/:id", handler.DeleteExpense)
}
