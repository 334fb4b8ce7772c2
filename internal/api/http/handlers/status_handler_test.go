package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSampleEntities(t *testing.T) {
	assert.NoError(t, buildSampleEntities())
}

func TestNewStatusHandler_DefaultsStartTime(t *testing.T) {
	h := NewStatusHandler(StatusOptions{})
	assert.False(t, h.opts.StartedAt.IsZero())
}
