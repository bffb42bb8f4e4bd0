package identity

import (
	"time"

	"github.com/mkboutique/backend/internal/domain/identity"
	"github.com/mkboutique/backend/internal/infrastructure/auth"
)

// ActiveFilter toggles inclusion of inactive rows
type ActiveFilter struct {
	IncludeInactive bool `form:"includeInactive"`
}

// CreateSocieteRequest represents a request to create a societe
type CreateSocieteRequest struct {
	NomSociete  string  `json:"nomSociete" binding:"required,max=200"`
	Description *string `json:"description"`
	Adresse     *string `json:"adresse" binding:"omitempty,max=500"`
	Telephone   *string `json:"telephone" binding:"omitempty,max=50"`
	Email       *string `json:"email" binding:"omitempty,max=200"`
	SiteWeb     *string `json:"siteWeb" binding:"omitempty,max=200"`
	Logo        *string `json:"logo"`
}

// UpdateSocieteRequest represents a partial societe update
type UpdateSocieteRequest struct {
	NomSociete  *string `json:"nomSociete" binding:"omitempty,max=200"`
	Description *string `json:"description"`
	Adresse     *string `json:"adresse" binding:"omitempty,max=500"`
	Telephone   *string `json:"telephone" binding:"omitempty,max=50"`
	Email       *string `json:"email" binding:"omitempty,max=200"`
	SiteWeb     *string `json:"siteWeb" binding:"omitempty,max=200"`
	Logo        *string `json:"logo"`
	Actif       *bool   `json:"actif"`
}

// SocieteResponse represents a societe in API responses
type SocieteResponse struct {
	IdSociete    int       `json:"idSociete"`
	NomSociete   string    `json:"nomSociete"`
	Description  *string   `json:"description"`
	Adresse      *string   `json:"adresse"`
	Telephone    *string   `json:"telephone"`
	Email        *string   `json:"email"`
	SiteWeb      *string   `json:"siteWeb"`
	Logo         *string   `json:"logo"`
	Actif        bool      `json:"actif"`
	DateCreation time.Time `json:"dateCreation"`
}

// CreateRoleRequest represents a request to create a role
type CreateRoleRequest struct {
	NomRole     string  `json:"nomRole" binding:"required,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	Actif       *bool   `json:"actif"`
}

// UpdateRoleRequest represents a partial role update
type UpdateRoleRequest struct {
	NomRole     *string `json:"nomRole" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	Actif       *bool   `json:"actif"`
}

// RoleResponse represents a role in API responses
type RoleResponse struct {
	IdRole      int     `json:"idRole"`
	NomRole     string  `json:"nomRole"`
	Description *string `json:"description"`
	Actif       bool    `json:"actif"`
	IdSociete   int     `json:"idSociete"`
}

// UserListFilter narrows user listings
type UserListFilter struct {
	IdRole          *int `form:"idRole"`
	IncludeInactive bool `form:"includeInactive"`
}

// CreateUserRequest represents a request to create a user
type CreateUserRequest struct {
	NomComplet string  `json:"nomComplet" binding:"required,max=200"`
	Login      string  `json:"login" binding:"required,max=100"`
	Password   string  `json:"password" binding:"required,min=6"`
	Email      *string `json:"email" binding:"omitempty,max=200"`
	Telephone  *string `json:"telephone" binding:"omitempty,max=50"`
	IdRole     int     `json:"idRole" binding:"required,gt=0"`
}

// UpdateUserRequest represents a partial user update
type UpdateUserRequest struct {
	NomComplet *string `json:"nomComplet" binding:"omitempty,max=200"`
	Login      *string `json:"login" binding:"omitempty,max=100"`
	Password   *string `json:"password" binding:"omitempty,min=6"`
	Email      *string `json:"email" binding:"omitempty,max=200"`
	Telephone  *string `json:"telephone" binding:"omitempty,max=50"`
	IdRole     *int    `json:"idRole" binding:"omitempty,gt=0"`
	Actif      *bool   `json:"actif"`
}

// UserResponse represents a user in API responses; the hash never leaves the service
type UserResponse struct {
	IdUtilisateur      int       `json:"idUtilisateur"`
	NomComplet         string    `json:"nomComplet"`
	Login              string    `json:"login"`
	Email              *string   `json:"email"`
	Telephone          *string   `json:"telephone"`
	IdRole             int       `json:"idRole"`
	NomRole            string    `json:"nomRole,omitempty"`
	IdSociete          int       `json:"idSociete"`
	Actif              bool      `json:"actif"`
	DateCreationCompte time.Time `json:"dateCreationCompte"`
}

// LoginRequest carries login credentials
type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest carries a refresh token
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// LogoutRequest optionally carries the refresh token to revoke with the access token
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// LoginResponse carries the issued tokens and the authenticated user
type LoginResponse struct {
	auth.TokenPair
	User UserResponse `json:"user"`
}

// ToSocieteResponse converts a domain societe to a response DTO
func ToSocieteResponse(s *identity.Societe) SocieteResponse {
	return SocieteResponse{
		IdSociete:    s.ID,
		NomSociete:   s.NomSociete,
		Description:  s.Description,
		Adresse:      s.Adresse,
		Telephone:    s.Telephone,
		Email:        s.Email,
		SiteWeb:      s.SiteWeb,
		Logo:         s.Logo,
		Actif:        s.Actif,
		DateCreation: s.DateCreation,
	}
}

// ToRoleResponse converts a domain role to a response DTO
func ToRoleResponse(r *identity.Role) RoleResponse {
	return RoleResponse{
		IdRole:      r.ID,
		NomRole:     r.NomRole,
		Description: r.Description,
		Actif:       r.Actif,
		IdSociete:   r.SocieteID,
	}
}

// ToUserResponse converts a domain user, with its role loaded, to a response DTO
func ToUserResponse(u *identity.User) UserResponse {
	resp := UserResponse{
		IdUtilisateur:      u.ID,
		NomComplet:         u.NomComplet,
		Login:              u.Login,
		Email:              u.Email,
		Telephone:          u.Telephone,
		IdRole:             u.RoleID,
		IdSociete:          u.SocieteID(),
		Actif:              u.Actif,
		DateCreationCompte: u.DateCreationCompte,
	}
	if u.Role != nil {
		resp.NomRole = u.Role.NomRole
	}
	return resp
}

func toUserResponses(users []identity.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = ToUserResponse(&users[i])
	}
	return out
}
