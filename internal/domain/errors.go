package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidValue is matched by every ValidationError.
var ErrInvalidValue = errors.New("invalid value")

// ValidationError reports a field whose value falls outside its allowed set.
type ValidationError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *ValidationError) Error() string {
	if len(e.Allowed) == 0 {
		return fmt.Sprintf("%s: invalid value %q", e.Field, e.Value)
	}
	return fmt.Sprintf("%s: invalid value %q (allowed: %s)", e.Field, e.Value, strings.Join(e.Allowed, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidValue
}

// enumValue constrains the closed string sets used by entities.
type enumValue interface {
	~string
}

func parseEnum[T enumValue](field, raw string, allowed []T) (T, error) {
	candidate := T(strings.TrimSpace(raw))
	for _, v := range allowed {
		if v == candidate {
			return v, nil
		}
	}
	var zero T
	return zero, &ValidationError{Field: field, Value: raw, Allowed: enumStrings(allowed)}
}

func enumStrings[T enumValue](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func contains[T enumValue](values []T, v T) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
