package negotiation

import (
	"time"

	"github.com/google/uuid"
)

// Status represents a negotiation's lifecycle status.
type Status string

const (
	StatusProposalDraft      Status = "PROPOSAL_DRAFT"
	StatusProposalSent       Status = "PROPOSAL_SENT"
	StatusInNegotiation      Status = "IN_NEGOTIATION"
	StatusDocumentationPhase Status = "DOCUMENTATION_PHASE"
	StatusContractDrafting   Status = "CONTRACT_DRAFTING"
	StatusAwaitingSignatures Status = "AWAITING_SIGNATURES"
	StatusSold               Status = "SOLD"
	StatusRented             Status = "RENTED"
	StatusCancelled          Status = "CANCELLED"
)

// Terminal reports whether the status has no outgoing transitions.
func (s Status) Terminal() bool {
	return s == StatusSold || s == StatusRented || s == StatusCancelled
}

// PaymentMethod represents how the buyer pays.
type PaymentMethod string

const (
	PaymentMoney       PaymentMethod = "MONEY"
	PaymentPermutation PaymentMethod = "PERMUTATION"
	PaymentFinancing   PaymentMethod = "FINANCING"
	PaymentOther       PaymentMethod = "OTHER"
)

// PaymentDetails is the structured payment breakdown of a proposal.
type PaymentDetails struct {
	Method  PaymentMethod          `json:"method"`
	Amount  float64                `json:"amount"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Snapshot is a point-in-time copy of a negotiation's persisted fields.
// It is immutable per read: operations never mutate the snapshot they were
// built from, they return a fresh copy reflecting the committed write.
type Snapshot struct {
	ID                   uuid.UUID       `json:"id"`
	Status               Status          `json:"status"`
	Version              int             `json:"version"`
	PropertyID           int64           `json:"propertyId"`
	CapturingBrokerID    int64           `json:"capturingBrokerId"`
	SellingBrokerID      *int64          `json:"sellingBrokerId,omitempty"`
	BuyerClientID        *int64          `json:"buyerClientId,omitempty"`
	FinalValue           *float64        `json:"finalValue,omitempty"`
	Payment              *PaymentDetails `json:"paymentDetails,omitempty"`
	ProposalValidityDate *string         `json:"proposalValidityDate,omitempty"`
	CreatedAt            time.Time       `json:"createdAt"`
	UpdatedAt            time.Time       `json:"updatedAt"`
}

// ProposalData carries the fields the proposal renderer needs.
type ProposalData struct {
	ClientName        string        `json:"clientName"`
	ClientCPF         string        `json:"clientCpf"`
	PropertyAddress   string        `json:"propertyAddress"`
	BrokerName        string        `json:"brokerName"`
	SellingBrokerName *string       `json:"sellingBrokerName,omitempty"`
	Value             float64       `json:"value"`
	PaymentMethod     PaymentMethod `json:"paymentMethod"`
	ValidityDays      int           `json:"validityDays"`
}
