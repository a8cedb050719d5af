package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/hazyfin/family-finance-backend/internal/api/handlers"
	custommiddleware "github.com/hazyfin/family-finance-backend/internal/api/middleware"
	"github.com/hazyfin/family-finance-backend/internal/config"
	"github.com/hazyfin/family-finance-backend/internal/service"
)

// Services bundles everything the router needs. Handlers are constructed
// inside their route groups so each namespace declares its own dependencies.
type Services struct {
	System      *service.SystemService
	Transaction *service.TransactionService
	Portfolio   *service.PortfolioService
	Snapshot    *service.SnapshotService
	SIPSchedule *service.SIPScheduleService
	Member      *service.MemberService
	Family      *service.FamilyService
	Price       *service.PriceService
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
		})

		r.Route("/transaction", func(r chi.Router) {
			transactionHandler := handlers.NewTransactionHandler(svc.Transaction)
			r.Get("/", transactionHandler.ListTransactions)
			r.Get("/export", transactionHandler.ExportTransactions)
			r.Post("/", transactionHandler.CreateTransaction)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", transactionHandler.GetTransaction)
				r.Put("/", transactionHandler.UpdateTransaction)
				r.Delete("/", transactionHandler.DeleteTransaction)
			})
		})

		r.Route("/portfolio", func(r chi.Router) {
			portfolioHandler := handlers.NewPortfolioHandler(svc.Portfolio)
			r.Get("/holdings", portfolioHandler.Holdings)
			r.Get("/sip", portfolioHandler.SIPSummaries)
		})

		r.Route("/dashboard", func(r chi.Router) {
			dashboardHandler := handlers.NewDashboardHandler(svc.Portfolio, svc.Snapshot)
			r.Get("/metrics", dashboardHandler.Metrics)
			r.Get("/history", dashboardHandler.History)
			r.With(custommiddleware.APIKeyMiddleware).Post("/snapshot", dashboardHandler.RefreshSnapshot)
		})

		r.Route("/sip-schedule", func(r chi.Router) {
			scheduleHandler := handlers.NewSIPScheduleHandler(svc.SIPSchedule)
			r.Get("/", scheduleHandler.ListSchedules)
			r.Get("/upcoming", scheduleHandler.Upcoming)
			r.Post("/", scheduleHandler.CreateSchedule)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Put("/active", scheduleHandler.SetActive)
				r.Delete("/", scheduleHandler.DeleteSchedule)
			})
		})

		r.Route("/member", func(r chi.Router) {
			memberHandler := handlers.NewMemberHandler(svc.Member)
			r.Get("/", memberHandler.ListMembers)
			r.Post("/", memberHandler.CreateMember)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", memberHandler.GetMember)
				r.Put("/", memberHandler.UpdateMember)
				r.Delete("/", memberHandler.DeleteMember)
			})
		})

		r.Route("/family", func(r chi.Router) {
			familyHandler := handlers.NewFamilyHandler(svc.Member, svc.Family)
			r.Post("/", familyHandler.CreateFamilyGroup)
			r.With(custommiddleware.APIKeyMiddleware).Post("/invite", familyHandler.Invite)
			r.Post("/join", familyHandler.Join)
		})

		r.Route("/price", func(r chi.Router) {
			priceHandler := handlers.NewPriceHandler(svc.Price)
			r.Get("/", priceHandler.ListPrices)
			r.With(custommiddleware.APIKeyMiddleware).Put("/", priceHandler.UpdatePrice)
		})
	})

	return r
}
