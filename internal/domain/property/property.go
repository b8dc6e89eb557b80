package property

import "time"

// Status represents a property's lifecycle status.
type Status string

const (
	StatusAvailable        Status = "AVAILABLE"
	StatusUnderNegotiation Status = "UNDER_NEGOTIATION"
	StatusSold             Status = "SOLD"
	StatusRented           Status = "RENTED"
)

// Terminal reports whether the status is a permanent outcome.
func (s Status) Terminal() bool {
	return s == StatusSold || s == StatusRented
}

// Property represents a listed property.
type Property struct {
	ID        int64     `json:"id"`
	Address   string    `json:"address"`
	Value     float64   `json:"value"`
	Status    Status    `json:"status"`
	BrokerID  int64     `json:"brokerId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
