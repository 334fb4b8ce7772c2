package domain

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DealStatus is the pipeline position of a deal.
type DealStatus string

const (
	DealStatusLead        DealStatus = "lead"
	DealStatusContacted   DealStatus = "contacted"
	DealStatusProposal    DealStatus = "proposal"
	DealStatusNegotiation DealStatus = "negotiation"
	DealStatusClosedWon   DealStatus = "closed-won"
	DealStatusClosedLost  DealStatus = "closed-lost"
)

var dealStatuses = []DealStatus{
	DealStatusLead,
	DealStatusContacted,
	DealStatusProposal,
	DealStatusNegotiation,
	DealStatusClosedWon,
	DealStatusClosedLost,
}

// Valid reports whether s is one of the known pipeline statuses.
func (s DealStatus) Valid() bool {
	return contains(dealStatuses, s)
}

// ParseDealStatus converts raw input into a DealStatus.
func ParseDealStatus(raw string) (DealStatus, error) {
	return parseEnum("status", raw, dealStatuses)
}

// UnmarshalText rejects unknown statuses during decoding.
func (s *DealStatus) UnmarshalText(text []byte) error {
	parsed, err := ParseDealStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Deal is a sales opportunity with a customer.
// CustomerID is not checked against existing customers.
type Deal struct {
	ID                string          `json:"id"`
	CustomerID        string          `json:"customerId"`
	Title             string          `json:"title"`
	Value             decimal.Decimal `json:"value"`
	Status            DealStatus      `json:"status"`
	Stage             string          `json:"stage"`
	ExpectedCloseDate *time.Time      `json:"expectedCloseDate,omitempty"`
	Timestamps
}

// DealInput describes the values needed to create a Deal.
type DealInput struct {
	CustomerID        string
	Title             string
	Value             decimal.Decimal
	Status            DealStatus
	Stage             string
	ExpectedCloseDate *time.Time
}

// NewDeal builds a Deal with a fresh id and timestamps.
func NewDeal(input DealInput) (*Deal, error) {
	deal := &Deal{
		ID:                newID(),
		CustomerID:        input.CustomerID,
		Title:             strings.TrimSpace(input.Title),
		Value:             input.Value,
		Status:            input.Status,
		Stage:             input.Stage,
		ExpectedCloseDate: input.ExpectedCloseDate,
		Timestamps:        newTimestamps(),
	}
	if err := deal.Validate(); err != nil {
		return nil, err
	}
	return deal, nil
}

// Validate checks the declared invariants of d.
func (d *Deal) Validate() error {
	if !d.Status.Valid() {
		return &ValidationError{Field: "status", Value: string(d.Status), Allowed: enumStrings(dealStatuses)}
	}
	return d.Timestamps.Validate()
}

// MarshalJSON writes Value as a JSON number.
func (d Deal) MarshalJSON() ([]byte, error) {
	type alias Deal
	return json.Marshal(struct {
		alias
		Value json.RawMessage `json:"value"`
	}{
		alias: alias(d),
		Value: json.RawMessage(d.Value.String()),
	})
}

// UnmarshalJSON decodes d and rejects a missing or null status.
func (d *Deal) UnmarshalJSON(data []byte) error {
	type alias Deal
	var decoded alias
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*d = Deal(decoded)
	return d.Validate()
}
