package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/complia-lab/themis/pkg/usecase"
)

// Server represents the HTTP server
type Server struct {
	*http.Server
	router chi.Router
}

// NewServer creates a new HTTP server wiring the REST API. The path
// spellings (including "calender") match the wire contract the clients
// were built against; do not normalize them.
func NewServer(ctx context.Context, addr string, ucs *usecase.UseCases) *Server {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	h := &handler{ucs: ucs}

	router.Get("/health", handleHealth)

	router.Route("/api", func(r chi.Router) {
		r.Get("/audit-calender/{start}/{end}/calender", h.calendarRange)
		r.Get("/audit-calender/{start}/{end}/export.ics", h.calendarExport)

		r.Get("/question-reports", h.templateList)
		r.Get("/question-reports/{id}", h.templateGet)
		r.Post("/question-reports", h.templateCreate)
		r.Post("/question-reports/{id}/update", h.templateUpdate)
		r.Delete("/question-reports/{id}/delete", h.templateDelete)

		r.Get("/internal-audit", h.auditList)
		r.Get("/internal-audit/{id}", h.auditGet)
		r.Get("/internal-audit/{id}/status-history", h.auditHistory)
		r.Post("/internal-audit", h.auditCreateForm)
		r.Delete("/internal-audit/{id}/delete", h.auditDelete)

		r.Post("/internal-audit-draft", h.draftCreate)
		r.Post("/internal-audit-draft/{id}/update", h.draftUpdate)
		r.Post("/internal-audit-scheduled/{id}/update", h.advanceScheduled)
		r.Post("/internal-audit-ongoing/{id}/update", h.advanceOngoing)
		r.Post("/internal-audit-completed/{id}/update", h.advanceCompleted)

		r.Get("/audit-factory", h.factoryList)
		r.Post("/audit-factory", h.factoryCreate)
		r.Delete("/audit-factory/{id}", h.factoryDelete)

		r.Get("/process-types", h.processTypeList)
		r.Post("/process-types", h.processTypeCreate)
		r.Delete("/process-types/{id}", h.processTypeDelete)

		r.Get("/contact-people", h.contactList)
		r.Post("/contact-people", h.contactCreate)
		r.Delete("/contact-people/{id}", h.contactDelete)

		r.Get("/internal-audit-action-plan", h.actionPlanList)
		r.Post("/internal-audit-action-plan", h.actionPlanCreate)
		r.Post("/internal-audit-action-plan/{id}/update", h.actionPlanUpdate)
		r.Delete("/internal-audit-action-plan/{id}/delete", h.actionPlanDelete)

		r.Get("/external-audit", h.externalList)
		r.Post("/external-audit", h.externalCreate)
		r.Post("/external-audit/{id}/update", h.externalUpdate)
		r.Delete("/external-audit/{id}/delete", h.externalDelete)
	})

	return &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router: router,
	}
}

// Router returns the underlying router, mainly for tests
func (s *Server) Router() chi.Router {
	return s.router
}

// handler carries the use cases every endpoint dispatches into
type handler struct {
	ucs *usecase.UseCases
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "themis",
	})
}
