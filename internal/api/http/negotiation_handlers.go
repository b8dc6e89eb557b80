package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	appNegotiation "github.com/realty-hub/realty-hub/internal/application/negotiation"
	domainNegotiation "github.com/realty-hub/realty-hub/internal/domain/negotiation"
)

type createNegotiationRequest struct {
	PropertyID        int64  `json:"propertyId"`
	CapturingBrokerID int64  `json:"capturingBrokerId"`
	BuyerClientID     *int64 `json:"buyerClientId,omitempty"`
}

type actorRequest struct {
	ActorID  int64                  `json:"actorId"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

type updateDraftRequest struct {
	ActorID              int64                             `json:"actorId"`
	PaymentDetails       domainNegotiation.PaymentDetails  `json:"paymentDetails"`
	FinalValue           *float64                          `json:"finalValue,omitempty"`
	ProposalValidityDate *string                           `json:"proposalValidityDate,omitempty"`
	SelfAsSellingBroker  bool                              `json:"selfAsSellingBroker"`
	SellingBrokerID      *int64                            `json:"sellingBrokerId,omitempty"`
	PropertyValue        *float64                          `json:"propertyValue,omitempty"`
}

type sendProposalRequest struct {
	ActorID  int64                           `json:"actorId"`
	Proposal *domainNegotiation.ProposalData `json:"proposal,omitempty"`
	Metadata map[string]interface{}          `json:"metadata,omitempty"`
}

func (s *Server) createNegotiation(w http.ResponseWriter, r *http.Request) {
	var req createNegotiationRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	if req.PropertyID == 0 || req.CapturingBrokerID == 0 {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "propertyId and capturingBrokerId are required")
		return
	}
	snap, err := s.negotiationSvc.Create(r.Context(), appNegotiation.CreateInput{
		PropertyID:        req.PropertyID,
		CapturingBrokerID: req.CapturingBrokerID,
		BuyerClientID:     req.BuyerClientID,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, snap)
}

func (s *Server) getNegotiation(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "negotiationId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "invalid negotiationId")
		return
	}
	snap, err := s.negotiationSvc.Get(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, snap)
}

func (s *Server) updateDraft(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "negotiationId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "invalid negotiationId")
		return
	}
	var req updateDraftRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	snap, err := s.negotiationSvc.UpdateDraft(r.Context(), id, domainNegotiation.DraftUpdateInput{
		ActorID:              req.ActorID,
		Payment:              req.PaymentDetails,
		FinalValue:           req.FinalValue,
		ProposalValidityDate: req.ProposalValidityDate,
		SelfAsSellingBroker:  req.SelfAsSellingBroker,
		SellingBrokerID:      req.SellingBrokerID,
		PropertyValue:        req.PropertyValue,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, snap)
}

func (s *Server) sendProposal(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "negotiationId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "invalid negotiationId")
		return
	}
	var req sendProposalRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	snap, err := s.negotiationSvc.SendProposal(r.Context(), id, req.ActorID, req.Proposal, req.Metadata)
	if err != nil {
		if snap != nil {
			// Transition committed, document generation failed.
			respondJSON(w, http.StatusOK, map[string]interface{}{
				"negotiation":   snap,
				"documentError": err.Error(),
			})
			return
		}
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, snap)
}

func (s *Server) generateProposalDocument(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "negotiationId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "invalid negotiationId")
		return
	}
	var data domainNegotiation.ProposalData
	if err := decodeBody(r, &data); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	documentID, err := s.negotiationSvc.GenerateProposalDocument(r.Context(), id, data)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]interface{}{"documentId": documentID})
}

func (s *Server) approveProposal(w http.ResponseWriter, r *http.Request) {
	s.transition(w, r, s.negotiationSvc.ApproveProposal)
}

func (s *Server) requestDocumentation(w http.ResponseWriter, r *http.Request) {
	s.transition(w, r, s.negotiationSvc.RequestDocumentation)
}

func (s *Server) moveToContractDrafting(w http.ResponseWriter, r *http.Request) {
	s.transition(w, r, s.negotiationSvc.MoveToContractDrafting)
}

func (s *Server) uploadFinalContract(w http.ResponseWriter, r *http.Request) {
	s.transition(w, r, s.negotiationSvc.UploadFinalContract)
}

func (s *Server) markSold(w http.ResponseWriter, r *http.Request) {
	s.transition(w, r, s.negotiationSvc.MarkSold)
}

func (s *Server) markRented(w http.ResponseWriter, r *http.Request) {
	s.transition(w, r, s.negotiationSvc.MarkRented)
}

func (s *Server) cancelNegotiation(w http.ResponseWriter, r *http.Request) {
	s.transition(w, r, s.negotiationSvc.Cancel)
}

type transitionFunc func(ctx context.Context, id uuid.UUID, actorID int64, metadata map[string]interface{}) (*domainNegotiation.Snapshot, error)

func (s *Server) transition(w http.ResponseWriter, r *http.Request, fn transitionFunc) {
	id, err := parseUUIDParam(r, "negotiationId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "invalid negotiationId")
		return
	}
	var req actorRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	snap, err := fn(r.Context(), id, req.ActorID, req.Metadata)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, snap)
}

func (s *Server) dealEvents(w http.ResponseWriter, r *http.Request) {
	clientID := r.URL.Query().Get("client_id")
	if clientID == "" {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "client_id required")
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "streaming not supported")
		return
	}

	ch := s.eventHub.Subscribe(clientID, 16)
	defer s.eventHub.Unsubscribe(clientID)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	// Send an initial comment to flush headers and keep the connection alive.
	_, _ = w.Write([]byte(": connected\n\n"))
	flusher.Flush()

	ctx := r.Context()
	for {
		select {
		case event, open := <-ch:
			if !open {
				return
			}
			payload, _ := json.Marshal(event)
			_, _ = w.Write([]byte("event: deal_closed\ndata: "))
			_, _ = w.Write(payload)
			_, _ = w.Write([]byte("\n\n"))
			flusher.Flush()
		case <-ctx.Done():
			return
		}
	}
}
