package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/crm-backend/internal/domain"
)

func TestToDomainError(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))

	t.Run("domain error passes through", func(t *testing.T) {
		original := NewDomainError("CONFLICT", "already exists", http.StatusConflict, nil)
		got := ToDomainError(fmt.Errorf("wrapped: %w", original))
		assert.Same(t, original, got)
	})

	t.Run("validation error", func(t *testing.T) {
		_, err := domain.ParseTaskPriority("urgent")
		require.Error(t, err)

		got := ToDomainError(err)
		assert.Equal(t, "VALIDATION_FAILED", got.Code)
		assert.Equal(t, http.StatusBadRequest, got.HTTPStatus)
		assert.Equal(t, "priority", got.Details["field"])
		assert.Equal(t, "urgent", got.Details["value"])
		assert.Equal(t, []string{"low", "medium", "high"}, got.Details["allowed"])
	})

	t.Run("fiber not found", func(t *testing.T) {
		got := ToDomainError(fiber.NewError(http.StatusNotFound, "Cannot GET /nope"))
		assert.Equal(t, "NOT_FOUND", got.Code)
		assert.Equal(t, http.StatusNotFound, got.HTTPStatus)
		assert.Equal(t, "Cannot GET /nope", got.Message)
	})

	t.Run("fiber method not allowed", func(t *testing.T) {
		got := ToDomainError(fiber.ErrMethodNotAllowed)
		assert.Equal(t, "METHOD_NOT_ALLOWED", got.Code)
		assert.Equal(t, http.StatusMethodNotAllowed, got.HTTPStatus)
	})

	t.Run("unknown error is internal", func(t *testing.T) {
		cause := errors.New("boom")
		got := ToDomainError(cause)
		assert.Equal(t, "INTERNAL_ERROR", got.Code)
		assert.Equal(t, http.StatusInternalServerError, got.HTTPStatus)
		assert.ErrorIs(t, got, cause)
	})
}

func TestNewServiceUnavailable(t *testing.T) {
	err := NewServiceUnavailable("down", map[string]any{"redis": "refused"})
	got := ToDomainError(err)
	assert.Equal(t, http.StatusServiceUnavailable, got.HTTPStatus)
	assert.Equal(t, "DEPENDENCY_UNAVAILABLE", got.Code)
	assert.Equal(t, "down", got.Error())
}
