package rental

import (
	"time"

	"github.com/mkboutique/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Paiement is the single payment of a reservation
type Paiement struct {
	ID              int             `gorm:"column:id_paiement;primaryKey;autoIncrement"`
	ReservationID   int             `gorm:"column:id_reservation;not null;uniqueIndex:ux_paiements_reservation"`
	Montant         decimal.Decimal `gorm:"column:montant;type:decimal(18,2);not null"`
	DatePaiement    time.Time       `gorm:"column:date_paiement;not null"`
	MethodePaiement *string         `gorm:"column:methode_paiement;type:varchar(50)"`
	Reference       *string         `gorm:"column:reference;type:varchar(100)"`
	SocieteID       int             `gorm:"column:id_societe;not null;index"`
}

// TableName returns the table name for GORM
func (Paiement) TableName() string {
	return "paiements"
}

// NewPaiement creates a payment stamped with the current time
func NewPaiement(societeID, reservationID int, montant decimal.Decimal, methode, reference *string) (*Paiement, error) {
	p := &Paiement{
		ReservationID:   reservationID,
		Montant:         montant,
		DatePaiement:    time.Now().UTC(),
		MethodePaiement: shared.NormalizeOptional(methode),
		Reference:       shared.NormalizeOptional(reference),
		SocieteID:       societeID,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks field-level invariants
func (p *Paiement) Validate() error {
	if p.ReservationID <= 0 {
		return shared.NewValidationError("La réservation est obligatoire.")
	}
	if !p.Montant.IsPositive() {
		return shared.NewValidationError("Le montant doit être supérieur à 0.")
	}
	if err := shared.MaxLengthPtr("La méthode de paiement", p.MethodePaiement, 50); err != nil {
		return err
	}
	return shared.MaxLengthPtr("La référence", p.Reference, 100)
}
