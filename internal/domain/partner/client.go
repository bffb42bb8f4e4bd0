package partner

import (
	"time"

	"github.com/mkboutique/backend/internal/domain/shared"
)

// Client is a customer who can hold reservations
type Client struct {
	ID                int       `gorm:"column:id_client;primaryKey;autoIncrement"`
	NomClient         string    `gorm:"column:nom_client;type:varchar(100);not null"`
	PrenomClient      string    `gorm:"column:prenom_client;type:varchar(100);not null"`
	Telephone         string    `gorm:"column:telephone;type:varchar(20);not null;uniqueIndex:ux_clients_telephone_societe,priority:1"`
	Email             *string   `gorm:"column:email;type:varchar(200);uniqueIndex:ux_clients_email_societe,priority:1"`
	AdressePrincipale *string   `gorm:"column:adresse_principale;type:text"`
	PhotoCin          *string   `gorm:"column:photo_cin;type:text"`
	TotalCommandes    int       `gorm:"column:total_commandes;not null"`
	DateCreationFiche time.Time `gorm:"column:date_creation_fiche;not null"`
	Actif             bool      `gorm:"column:actif;not null"`
	SocieteID         int       `gorm:"column:id_societe;not null;index;uniqueIndex:ux_clients_telephone_societe,priority:2;uniqueIndex:ux_clients_email_societe,priority:2"`
}

// TableName returns the table name for GORM
func (Client) TableName() string {
	return "clients"
}

// ClientFields carries the mutable fields of a client
type ClientFields struct {
	NomClient         string
	PrenomClient      string
	Telephone         string
	Email             *string
	AdressePrincipale *string
	PhotoCin          *string
}

// NewClient creates an active client in a societe
func NewClient(societeID int, f ClientFields) (*Client, error) {
	c := &Client{
		NomClient:         shared.NormalizeText(f.NomClient),
		PrenomClient:      shared.NormalizeText(f.PrenomClient),
		Telephone:         shared.NormalizeText(f.Telephone),
		Email:             shared.NormalizeOptional(f.Email),
		AdressePrincipale: shared.NormalizeOptional(f.AdressePrincipale),
		PhotoCin:          shared.NormalizeOptional(f.PhotoCin),
		DateCreationFiche: time.Now().UTC(),
		Actif:             true,
		SocieteID:         societeID,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks field-level invariants
func (c *Client) Validate() error {
	if err := shared.RequireText("Le nom du client", c.NomClient, 100); err != nil {
		return err
	}
	if err := shared.RequireText("Le prénom du client", c.PrenomClient, 100); err != nil {
		return err
	}
	if err := shared.RequireText("Le téléphone", c.Telephone, 20); err != nil {
		return err
	}
	if c.TotalCommandes < 0 {
		return shared.NewValidationError("Le nombre de commandes ne peut pas être négatif.")
	}
	return shared.ValidateEmail("L'email du client", c.Email, 200)
}

// IncrementTotalCommandes records one more order
func (c *Client) IncrementTotalCommandes() {
	c.TotalCommandes++
}

// ToggleActive flips the active flag
func (c *Client) ToggleActive() {
	c.Actif = !c.Actif
}
