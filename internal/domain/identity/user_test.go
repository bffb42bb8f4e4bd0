package identity

import (
	"testing"

	"github.com/mkboutique/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	user, err := NewUser(3, "  Amina.B ", "secret1", "Amina Benali")
	require.NoError(t, err)

	assert.Equal(t, "amina.b", user.Login)
	assert.Equal(t, "Amina Benali", user.NomComplet)
	assert.True(t, user.Actif)
	assert.NotEqual(t, "secret1", user.PasswordHash)
	assert.True(t, user.CheckPassword("secret1"))
	assert.False(t, user.CheckPassword("wrong"))
}

func TestNewUser_Validation(t *testing.T) {
	tests := []struct {
		name     string
		roleID   int
		login    string
		password string
		nom      string
	}{
		{"missing role", 0, "amina", "secret1", "Amina"},
		{"missing login", 1, " ", "secret1", "Amina"},
		{"short password", 1, "amina", "12345", "Amina"},
		{"missing name", 1, "amina", "secret1", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUser(tt.roleID, tt.login, tt.password, tt.nom)
			require.Error(t, err)
			assert.True(t, shared.HasCode(err, shared.CodeValidation))
		})
	}
}

func TestUser_SocieteID(t *testing.T) {
	user := &User{RoleID: 2}
	assert.Zero(t, user.SocieteID())

	user.Role = &Role{ID: 2, SocieteID: 9}
	assert.Equal(t, 9, user.SocieteID())
}
