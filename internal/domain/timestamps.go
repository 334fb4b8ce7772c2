package domain

import (
	"time"

	"github.com/google/uuid"
)

// now is swapped in tests.
var now = func() time.Time {
	return time.Now().UTC()
}

// Timestamps carries the audit fields shared by every entity.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newTimestamps() Timestamps {
	t := now()
	return Timestamps{CreatedAt: t, UpdatedAt: t}
}

// Validate checks that the entity was not updated before it was created.
func (t Timestamps) Validate() error {
	if t.UpdatedAt.Before(t.CreatedAt) {
		return &ValidationError{Field: "updatedAt", Value: t.UpdatedAt.Format(time.RFC3339Nano)}
	}
	return nil
}

func newID() string {
	return uuid.NewString()
}
