package rental

import (
	"time"

	"github.com/mkboutique/backend/internal/domain/partner"
	"github.com/mkboutique/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// StatutReservation is the reservation lifecycle status
type StatutReservation int

const (
	StatutEnAttente StatutReservation = iota
	StatutConfirmee
	StatutEnCours
	StatutTerminee
	StatutAnnulee
)

// IsValid reports whether s is a defined status
func (s StatutReservation) IsValid() bool {
	return s >= StatutEnAttente && s <= StatutAnnulee
}

func (s StatutReservation) String() string {
	switch s {
	case StatutEnAttente:
		return "EnAttente"
	case StatutConfirmee:
		return "Confirmee"
	case StatutEnCours:
		return "EnCours"
	case StatutTerminee:
		return "Terminee"
	case StatutAnnulee:
		return "Annulee"
	default:
		return "Inconnu"
	}
}

// Reservation books a client over a date range
type Reservation struct {
	ID                int               `gorm:"column:id_reservation;primaryKey;autoIncrement"`
	ClientID          int               `gorm:"column:id_client;not null;index"`
	DateReservation   time.Time         `gorm:"column:date_reservation;not null"`
	DateDebut         time.Time         `gorm:"column:date_debut;not null"`
	DateFin           time.Time         `gorm:"column:date_fin;not null"`
	MontantTotal      decimal.Decimal   `gorm:"column:montant_total;type:decimal(18,2);not null"`
	RemiseAppliquee   decimal.Decimal   `gorm:"column:remise_appliquee;type:decimal(18,2);not null"`
	StatutReservation StatutReservation `gorm:"column:statut_reservation;not null"`
	PaiementID        *int              `gorm:"column:id_paiement;index"`
	SocieteID         int               `gorm:"column:id_societe;not null;index"`

	Client   *partner.Client `gorm:"foreignKey:ClientID;references:ID"`
	Paiement *Paiement       `gorm:"foreignKey:PaiementID;references:ID"`
}

// TableName returns the table name for GORM
func (Reservation) TableName() string {
	return "reservations"
}

// ReservationFields carries the mutable fields of a reservation
type ReservationFields struct {
	ClientID          int
	DateDebut         time.Time
	DateFin           time.Time
	MontantTotal      decimal.Decimal
	RemiseAppliquee   decimal.Decimal
	StatutReservation StatutReservation
}

// NewReservation creates a reservation stamped with the current time
func NewReservation(societeID int, f ReservationFields) (*Reservation, error) {
	r := &Reservation{
		ClientID:          f.ClientID,
		DateReservation:   time.Now().UTC(),
		DateDebut:         f.DateDebut,
		DateFin:           f.DateFin,
		MontantTotal:      f.MontantTotal,
		RemiseAppliquee:   f.RemiseAppliquee,
		StatutReservation: f.StatutReservation,
		SocieteID:         societeID,
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate checks field-level invariants
func (r *Reservation) Validate() error {
	if r.ClientID <= 0 {
		return shared.NewValidationError("Le client est obligatoire.")
	}
	if !r.DateDebut.Before(r.DateFin) {
		return shared.NewValidationError("La date de début doit être antérieure à la date de fin.")
	}
	if r.MontantTotal.IsNegative() {
		return shared.NewValidationError("Le montant total ne peut pas être négatif.")
	}
	if r.RemiseAppliquee.IsNegative() {
		return shared.NewValidationError("La remise ne peut pas être négative.")
	}
	if !r.StatutReservation.IsValid() {
		return shared.NewValidationError("Statut de réservation invalide.")
	}
	return nil
}

// ChangeStatus moves the reservation to a defined status
func (r *Reservation) ChangeStatus(s StatutReservation) error {
	if !s.IsValid() {
		return shared.NewValidationError("Statut de réservation invalide.")
	}
	r.StatutReservation = s
	return nil
}
