package main

import (
	"log"
	"net/http"

	httphandlers "expensetracker/internal/interfaces/http"
	"expensetracker/internal/shared/config"
	"expensetracker/internal/shared/middleware"
)

// SetupRoutes configures all HTTP routes and returns the final handler with middleware.
func SetupRoutes(deps *Dependencies, cfg *config.Config) http.Handler {
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /healthz", httphandlers.HandleHealthz)

	// Public routes
	mux.HandleFunc("POST /api/users", deps.UserHandler.HandleCreateUser)
	mux.HandleFunc("POST /api/login", deps.AuthHandler.HandleLogin)

	// Protected routes
	authMiddleware := middleware.Auth(deps.TokenIssuer, deps.UserRepo)

	protected := func(h http.HandlerFunc) http.Handler {
		return authMiddleware(h)
	}

	mux.Handle("GET /api/users", protected(deps.UserHandler.HandleGetUserByEmail))

	mux.Handle("POST /api/accounts", protected(deps.AccountHandler.HandleCreateAccount))
	mux.Handle("DELETE /api/accounts/{id}", protected(deps.AccountHandler.HandleDeleteAccount))

	mux.Handle("POST /api/categories", protected(deps.CategoryHandler.HandleCreateCategory))
	mux.Handle("DELETE /api/categories/{id}", protected(deps.CategoryHandler.HandleDeleteCategory))

	mux.Handle("POST /api/transactions", protected(deps.TransactionHandler.HandleCreateTransaction))
	mux.Handle("GET /api/transactions", protected(deps.TransactionHandler.HandleListTransactions))
	mux.Handle("GET /api/transactions/monthly-summary", protected(deps.ReportHandler.HandleMonthlySummary))
	mux.Handle("GET /api/transactions/categories-summary", protected(deps.ReportHandler.HandleCategoriesSummary))
	mux.Handle("GET /api/transactions/categories-rollup", protected(deps.ReportHandler.HandleCategoriesRollup))
	mux.Handle("GET /api/transactions/summary", protected(deps.ReportHandler.HandleTransactionSummary))

	// Apply global middleware
	handler := middleware.Logging(middleware.CORS(mux))
	if cfg.Telemetry.Enabled {
		handler = middleware.Telemetry(middleware.Tracing(handler))
	}

	// Apply security middleware when TLS is enabled
	if cfg.TLS.Enabled {
		handler = middleware.HSTS(middleware.SecureCookies(handler))
		log.Println("TLS security middleware enabled (HSTS + SecureCookies)")
	}

	return handler
}
