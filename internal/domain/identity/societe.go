package identity

import (
	"time"

	"github.com/mkboutique/backend/internal/domain/shared"
)

// Societe is the tenant root: every scoped row points back to one.
type Societe struct {
	ID           int       `gorm:"column:id_societe;primaryKey;autoIncrement"`
	NomSociete   string    `gorm:"column:nom_societe;type:varchar(200);not null;uniqueIndex:ux_societes_nom"`
	Description  *string   `gorm:"column:description;type:text"`
	Adresse      *string   `gorm:"column:adresse;type:varchar(500)"`
	Telephone    *string   `gorm:"column:telephone;type:varchar(50)"`
	Email        *string   `gorm:"column:email;type:varchar(200);uniqueIndex:ux_societes_email"`
	SiteWeb      *string   `gorm:"column:site_web;type:varchar(200)"`
	Logo         *string   `gorm:"column:logo;type:text"`
	Actif        bool      `gorm:"column:actif;not null"`
	DateCreation time.Time `gorm:"column:date_creation;not null"`
}

// TableName returns the table name for GORM
func (Societe) TableName() string {
	return "societes"
}

// SocieteDetails holds the optional contact fields of a Societe
type SocieteDetails struct {
	Description *string
	Adresse     *string
	Telephone   *string
	Email       *string
	SiteWeb     *string
	Logo        *string
}

// NewSociete creates an active societe
func NewSociete(nom string, details SocieteDetails) (*Societe, error) {
	s := &Societe{
		NomSociete:   shared.NormalizeText(nom),
		Actif:        true,
		DateCreation: time.Now().UTC(),
	}
	s.applyDetails(details)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Societe) applyDetails(d SocieteDetails) {
	s.Description = shared.NormalizeOptional(d.Description)
	s.Adresse = shared.NormalizeOptional(d.Adresse)
	s.Telephone = shared.NormalizeOptional(d.Telephone)
	s.Email = shared.NormalizeOptional(d.Email)
	s.SiteWeb = shared.NormalizeOptional(d.SiteWeb)
	s.Logo = shared.NormalizeOptional(d.Logo)
}

// Validate checks field-level invariants
func (s *Societe) Validate() error {
	if err := shared.RequireText("Le nom de la société", s.NomSociete, 200); err != nil {
		return err
	}
	if err := shared.MaxLengthPtr("Le téléphone", s.Telephone, 50); err != nil {
		return err
	}
	if err := shared.MaxLengthPtr("L'adresse", s.Adresse, 500); err != nil {
		return err
	}
	if err := shared.MaxLengthPtr("Le site web", s.SiteWeb, 200); err != nil {
		return err
	}
	return shared.ValidateEmail("L'email de la société", s.Email, 200)
}

// ToggleActive flips the active flag
func (s *Societe) ToggleActive() {
	s.Actif = !s.Actif
}
