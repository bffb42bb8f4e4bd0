package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_IsMatchesByCode(t *testing.T) {
	err := NewNotFoundError("Article avec l'ID %d introuvable.", 4)

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, errors.Is(fmt.Errorf("wrapped: %w", err), ErrNotFound))
	assert.False(t, errors.Is(err, ErrUnauthorized))
	assert.Equal(t, "Article avec l'ID 4 introuvable.", err.Error())
}

func TestRequireTenant(t *testing.T) {
	assert.NoError(t, RequireTenant(1))
	assert.ErrorIs(t, RequireTenant(0), ErrUnauthorized)
	assert.ErrorIs(t, RequireTenant(-3), ErrUnauthorized)
}

func TestHasCode(t *testing.T) {
	assert.True(t, HasCode(fmt.Errorf("x: %w", NewConflictError("busy")), CodeConflict))
	assert.False(t, HasCode(errors.New("plain"), CodeConflict))
}
