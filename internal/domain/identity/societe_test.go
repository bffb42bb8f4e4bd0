package identity

import (
	"testing"

	"github.com/mkboutique/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSociete(t *testing.T) {
	s, err := NewSociete(" Acme ", SocieteDetails{
		Email:     shared.StringPtr("contact@acme.ma"),
		Telephone: shared.StringPtr("  "),
	})
	require.NoError(t, err)

	assert.Equal(t, "Acme", s.NomSociete)
	assert.True(t, s.Actif)
	assert.Nil(t, s.Telephone, "blank optional fields are dropped")
	assert.False(t, s.DateCreation.IsZero())
}

func TestNewSociete_Validation(t *testing.T) {
	_, err := NewSociete("", SocieteDetails{})
	assert.True(t, shared.HasCode(err, shared.CodeValidation))

	_, err = NewSociete("Acme", SocieteDetails{Email: shared.StringPtr("nope")})
	assert.True(t, shared.HasCode(err, shared.CodeValidation))
}
