package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mjkim-dev/Portfolio-Sheets-Backend/internal/api/handlers"
	custommiddleware "github.com/mjkim-dev/Portfolio-Sheets-Backend/internal/api/middleware"
	"github.com/mjkim-dev/Portfolio-Sheets-Backend/internal/config"
	"github.com/mjkim-dev/Portfolio-Sheets-Backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	pricingService *service.PricingService,
	portfolioService *service.PortfolioService,
	auditService *service.AuditService,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	systemHandler := handlers.NewSystemHandler(systemService, auditService)
	r.Get("/", systemHandler.Root)
	r.Get("/health", systemHandler.Ping)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			r.Get("/health", systemHandler.Health)
			r.Get("/logs", systemHandler.Logs)
		})

		pricesHandler := handlers.NewPricesHandler(pricingService, auditService)
		r.Post("/prices", pricesHandler.Prices)

		r.Route("/sheets", func(r chi.Router) {
			portfolioHandler := handlers.NewPortfolioHandler(portfolioService, auditService)
			r.Get("/load", portfolioHandler.Load)
			r.Post("/sync", portfolioHandler.Sync)
		})
	})

	return r
}
