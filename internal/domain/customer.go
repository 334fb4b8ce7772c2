package domain

import (
	"encoding/json"
	"strings"
)

// CustomerStatus tracks where a customer sits in the relationship.
type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusInactive CustomerStatus = "inactive"
	CustomerStatusProspect CustomerStatus = "prospect"
)

var customerStatuses = []CustomerStatus{CustomerStatusActive, CustomerStatusInactive, CustomerStatusProspect}

// Valid reports whether s is one of the known statuses.
func (s CustomerStatus) Valid() bool {
	return contains(customerStatuses, s)
}

// ParseCustomerStatus converts raw input into a CustomerStatus.
func ParseCustomerStatus(raw string) (CustomerStatus, error) {
	return parseEnum("status", raw, customerStatuses)
}

// UnmarshalText rejects unknown statuses during decoding.
func (s *CustomerStatus) UnmarshalText(text []byte) error {
	parsed, err := ParseCustomerStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Customer is an organisation or person the team sells to.
type Customer struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Email   string         `json:"email"`
	Phone   *string        `json:"phone,omitempty"`
	Company *string        `json:"company,omitempty"`
	Status  CustomerStatus `json:"status"`
	Timestamps
}

// CustomerInput describes the values needed to create a Customer.
type CustomerInput struct {
	Name    string
	Email   string
	Phone   *string
	Company *string
	Status  CustomerStatus
}

// NewCustomer builds a Customer with a fresh id and timestamps.
func NewCustomer(input CustomerInput) (*Customer, error) {
	customer := &Customer{
		ID:         newID(),
		Name:       strings.TrimSpace(input.Name),
		Email:      strings.TrimSpace(input.Email),
		Phone:      input.Phone,
		Company:    input.Company,
		Status:     input.Status,
		Timestamps: newTimestamps(),
	}
	if err := customer.Validate(); err != nil {
		return nil, err
	}
	return customer, nil
}

// Validate checks the declared invariants of c.
func (c *Customer) Validate() error {
	if !c.Status.Valid() {
		return &ValidationError{Field: "status", Value: string(c.Status), Allowed: enumStrings(customerStatuses)}
	}
	return c.Timestamps.Validate()
}

// UnmarshalJSON decodes c and rejects a missing or null status.
func (c *Customer) UnmarshalJSON(data []byte) error {
	type alias Customer
	var decoded alias
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*c = Customer(decoded)
	return c.Validate()
}
