package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	appNegotiation "github.com/realty-hub/realty-hub/internal/application/negotiation"
	domainNegotiation "github.com/realty-hub/realty-hub/internal/domain/negotiation"
	"github.com/realty-hub/realty-hub/internal/infrastructure/events"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	negotiationSvc *appNegotiation.Service
	eventHub       *events.Hub
}

func NewServer(negotiationSvc *appNegotiation.Service, eventHub *events.Hub) *Server {
	return &Server{
		negotiationSvc: negotiationSvc,
		eventHub:       eventHub,
	}
}

// Router builds the HTTP router.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Route("/v1", func(r chi.Router) {
		r.Route("/negotiations", func(r chi.Router) {
			r.Post("/", s.createNegotiation)
			r.Get("/{negotiationId}", s.getNegotiation)
			r.Put("/{negotiationId}/draft", s.updateDraft)
			r.Post("/{negotiationId}/send-proposal", s.sendProposal)
			r.Post("/{negotiationId}/approve-proposal", s.approveProposal)
			r.Post("/{negotiationId}/proposal-document", s.generateProposalDocument)
			r.Post("/{negotiationId}/request-documentation", s.requestDocumentation)
			r.Post("/{negotiationId}/contract-drafting", s.moveToContractDrafting)
			r.Post("/{negotiationId}/final-contract", s.uploadFinalContract)
			r.Post("/{negotiationId}/mark-sold", s.markSold)
			r.Post("/{negotiationId}/mark-rented", s.markRented)
			r.Post("/{negotiationId}/cancel", s.cancelNegotiation)
		})
		r.Get("/events/deals", s.dealEvents)
	})

	return r
}

// Helpers
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, map[string]interface{}{
		"error":   code,
		"message": message,
	})
}

// respondDomainError maps the negotiation error taxonomy onto HTTP statuses:
// validation 400, conflict 409, missing row 404, anything else 500.
func respondDomainError(w http.ResponseWriter, err error) {
	switch {
	case domainNegotiation.IsValidation(err):
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case domainNegotiation.IsConflict(err):
		respondError(w, http.StatusConflict, "CONFLICT", err.Error())
	case errors.Is(err, domainNegotiation.ErrNotFound):
		respondError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}

func parseUUIDParam(r *http.Request, key string) (uuid.UUID, error) {
	val := chi.URLParam(r, key)
	return uuid.Parse(val)
}

func decodeBody(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
