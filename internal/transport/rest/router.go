package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/LevonKG/Smart-Expense-App/internal/expense"
	"github.com/LevonKG/Smart-Expense-App/internal/extraction"
	"github.com/LevonKG/Smart-Expense-App/internal/transport/middleware"
	"github.com/LevonKG/Smart-Expense-App/internal/transport/swagger"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

// RegisterAllRoutes wires the full HTTP surface onto the router.
func RegisterAllRoutes(router *chi.Mux, db *sql.DB, expenseHandler *expense.Handler, extractionHandler *extraction.Handler, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))
	// The mobile client calls /analyze/ and /expenses/ with trailing
	// slashes; normalize instead of 404ing.
	router.Use(chiMiddleware.StripSlashes)

	router.Get("/", healthHandler.rootHandler)
	router.Get("/health", healthHandler.healthHandler)
	router.Get("/ready", healthHandler.readinessHandler)

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Post("/analyze", extractionHandler.AnalyzeExpense)

	router.Route("/expenses", func(r chi.Router) {
		r.Post("/", expenseHandler.CreateExpense)
		r.Get("/", expenseHandler.ListExpenses)
		r.Get("/{id}", expenseHandler.GetExpense)
	})
}
