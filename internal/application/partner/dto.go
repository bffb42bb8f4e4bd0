package partner

import (
	"time"

	"github.com/mkboutique/backend/internal/domain/partner"
)

// ClientListFilter narrows client listings
type ClientListFilter struct {
	IncludeInactive bool `form:"includeInactive"`
}

// CreateClientRequest represents a request to create a client
type CreateClientRequest struct {
	NomClient         string  `json:"nomClient" binding:"required,max=100"`
	PrenomClient      string  `json:"prenomClient" binding:"required,max=100"`
	Telephone         string  `json:"telephone" binding:"required,max=20"`
	Email             *string `json:"email" binding:"omitempty,max=200"`
	AdressePrincipale *string `json:"adressePrincipale"`
	PhotoCin          *string `json:"photoCIN"`
	Actif             *bool   `json:"actif"`
}

// UpdateClientRequest represents a partial client update
type UpdateClientRequest struct {
	NomClient         *string `json:"nomClient" binding:"omitempty,max=100"`
	PrenomClient      *string `json:"prenomClient" binding:"omitempty,max=100"`
	Telephone         *string `json:"telephone" binding:"omitempty,max=20"`
	Email             *string `json:"email" binding:"omitempty,max=200"`
	AdressePrincipale *string `json:"adressePrincipale"`
	PhotoCin          *string `json:"photoCIN"`
	TotalCommandes    *int    `json:"totalCommandes" binding:"omitempty,min=0"`
	Actif             *bool   `json:"actif"`
}

// ClientResponse represents a client in API responses
type ClientResponse struct {
	IdClient          int       `json:"idClient"`
	NomClient         string    `json:"nomClient"`
	PrenomClient      string    `json:"prenomClient"`
	Telephone         string    `json:"telephone"`
	Email             *string   `json:"email"`
	AdressePrincipale *string   `json:"adressePrincipale"`
	PhotoCin          *string   `json:"photoCIN"`
	TotalCommandes    int       `json:"totalCommandes"`
	DateCreationFiche time.Time `json:"dateCreationFiche"`
	Actif             bool      `json:"actif"`
	IdSociete         int       `json:"idSociete"`
}

// ToClientResponse converts a domain client to a response DTO
func ToClientResponse(c *partner.Client) ClientResponse {
	return ClientResponse{
		IdClient:          c.ID,
		NomClient:         c.NomClient,
		PrenomClient:      c.PrenomClient,
		Telephone:         c.Telephone,
		Email:             c.Email,
		AdressePrincipale: c.AdressePrincipale,
		PhotoCin:          c.PhotoCin,
		TotalCommandes:    c.TotalCommandes,
		DateCreationFiche: c.DateCreationFiche,
		Actif:             c.Actif,
		IdSociete:         c.SocieteID,
	}
}
