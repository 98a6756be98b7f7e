package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/api/handlers"
	custommiddleware "github.com/jvandermeer/Private-Markets-Performance-Backend/internal/api/middleware"
	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/config"
	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/service"
)

// Services bundles the service dependencies the router wires into handlers.
type Services struct {
	System      *service.SystemService
	Space       *service.SpaceService
	Asset       *service.AssetService
	CashFlow    *service.CashFlowService
	Performance *service.PerformanceService
	Snapshot    *service.SnapshotService
}

// NewRouter creates and configures the HTTP router
func NewRouter(svc Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(svc.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)

			// Internal endpoints, API key + time token required
			performanceHandler := handlers.NewPerformanceHandler(svc.Performance, svc.Snapshot)
			r.With(custommiddleware.APIKeyMiddleware).
				Post("/snapshots/refresh", performanceHandler.RefreshSnapshots)
		})

		r.Route("/space", func(r chi.Router) {
			spaceHandler := handlers.NewSpaceHandler(svc.Space)
			assetHandler := handlers.NewAssetHandler(svc.Asset)
			performanceHandler := handlers.NewPerformanceHandler(svc.Performance, svc.Snapshot)

			r.Get("/", spaceHandler.Spaces)
			r.Post("/", spaceHandler.CreateSpace)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", spaceHandler.Space)
				r.Get("/assets", assetHandler.AssetsBySpace)
				r.Post("/assets", assetHandler.CreateAsset)
				r.Get("/performance", performanceHandler.PortfolioPerformance)
				r.Get("/performance/history", performanceHandler.PortfolioHistory)
			})
		})

		r.Route("/asset", func(r chi.Router) {
			assetHandler := handlers.NewAssetHandler(svc.Asset)
			cashFlowHandler := handlers.NewCashFlowHandler(svc.CashFlow)
			performanceHandler := handlers.NewPerformanceHandler(svc.Performance, svc.Snapshot)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", assetHandler.Asset)
				r.Put("/valuation", assetHandler.UpdateValuation)
				r.Get("/cashflows", cashFlowHandler.CashFlows)
				r.Post("/cashflows", cashFlowHandler.RecordCashFlow)
				r.Get("/performance", performanceHandler.AssetPerformance)
			})
		})
	})

	return r
}
