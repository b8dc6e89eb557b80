package document

import (
	"time"

	"github.com/google/uuid"
)

// ReviewStatus represents the review state of a negotiation document.
type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "PENDING"
	ReviewApproved ReviewStatus = "APPROVED"
	ReviewRejected ReviewStatus = "REJECTED"
)

// Kind represents the document kind.
type Kind string

const (
	KindProposal Kind = "PROPOSAL"
	KindIdentity Kind = "IDENTITY"
	KindIncome   Kind = "INCOME"
	KindContract Kind = "CONTRACT"
	KindOther    Kind = "OTHER"
)

// Document represents a document attached to a negotiation.
type Document struct {
	ID            int64        `json:"id"`
	DocumentID    uuid.UUID    `json:"documentId"`
	NegotiationID uuid.UUID    `json:"negotiationId"`
	Kind          Kind         `json:"kind"`
	ReviewStatus  ReviewStatus `json:"reviewStatus"`
	Content       []byte       `json:"-"`
	UploadedBy    *int64       `json:"uploadedBy,omitempty"`
	CreatedAt     time.Time    `json:"createdAt"`
	ReviewedAt    *time.Time   `json:"reviewedAt,omitempty"`
}

// ReviewCounts aggregates document review states for one negotiation.
type ReviewCounts struct {
	PendingOrRejected int `json:"pendingOrRejected"`
	Approved          int `json:"approved"`
}
