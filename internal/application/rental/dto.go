package rental

import (
	"time"

	partnerapp "github.com/mkboutique/backend/internal/application/partner"
	"github.com/mkboutique/backend/internal/domain/rental"
	"github.com/mkboutique/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ReservationListFilter narrows reservation listings
type ReservationListFilter struct {
	Statut   *rental.StatutReservation `form:"statut"`
	IdClient *int                      `form:"idClient"`
}

// CreateReservationRequest represents a request to create a reservation
type CreateReservationRequest struct {
	IdClient          int                      `json:"idClient" binding:"required,gt=0"`
	DateDebut         time.Time                `json:"dateDebut" binding:"required"`
	DateFin           time.Time                `json:"dateFin" binding:"required"`
	MontantTotal      decimal.Decimal          `json:"montantTotal"`
	RemiseAppliquee   decimal.Decimal          `json:"remiseAppliquee"`
	StatutReservation rental.StatutReservation `json:"statutReservation"`
	IdPaiement        shared.Patch[int]        `json:"idPaiement" swaggertype:"integer"`
}

// UpdateReservationRequest represents a partial reservation update.
// A null idPaiement detaches the payment reference.
type UpdateReservationRequest struct {
	IdClient          *int                      `json:"idClient" binding:"omitempty,gt=0"`
	DateDebut         *time.Time                `json:"dateDebut"`
	DateFin           *time.Time                `json:"dateFin"`
	MontantTotal      *decimal.Decimal          `json:"montantTotal"`
	RemiseAppliquee   *decimal.Decimal          `json:"remiseAppliquee"`
	StatutReservation *rental.StatutReservation `json:"statutReservation"`
	IdPaiement        shared.Patch[int]         `json:"idPaiement" swaggertype:"integer"`
}

// UpdateStatutRequest carries a new reservation status
type UpdateStatutRequest struct {
	Statut *rental.StatutReservation `json:"statut" binding:"required"`
}

// ReservationResponse represents a reservation with its client and paiement
type ReservationResponse struct {
	IdReservation     int                        `json:"idReservation"`
	IdClient          int                        `json:"idClient"`
	DateReservation   time.Time                  `json:"dateReservation"`
	DateDebut         time.Time                  `json:"dateDebut"`
	DateFin           time.Time                  `json:"dateFin"`
	MontantTotal      decimal.Decimal            `json:"montantTotal"`
	StatutReservation rental.StatutReservation   `json:"statutReservation"`
	IdPaiement        *int                       `json:"idPaiement"`
	RemiseAppliquee   decimal.Decimal            `json:"remiseAppliquee"`
	IdSociete         int                        `json:"idSociete"`
	Client            *partnerapp.ClientResponse `json:"client"`
	Paiement          *PaiementResponse          `json:"paiement"`
}

// PaiementListFilter narrows paiement listings
type PaiementListFilter struct {
	IdReservation *int `form:"idReservation"`
}

// CreatePaiementRequest represents a request to record a reservation's payment
type CreatePaiementRequest struct {
	IdReservation   int             `json:"idReservation" binding:"required,gt=0"`
	Montant         decimal.Decimal `json:"montant"`
	MethodePaiement *string         `json:"methodePaiement" binding:"omitempty,max=50"`
	Reference       *string         `json:"reference" binding:"omitempty,max=100"`
}

// UpdatePaiementRequest represents a partial paiement update
type UpdatePaiementRequest struct {
	IdReservation   *int             `json:"idReservation" binding:"omitempty,gt=0"`
	Montant         *decimal.Decimal `json:"montant"`
	MethodePaiement *string          `json:"methodePaiement" binding:"omitempty,max=50"`
	Reference       *string          `json:"reference" binding:"omitempty,max=100"`
}

// PaiementResponse represents a paiement in API responses
type PaiementResponse struct {
	IdPaiement      int             `json:"idPaiement"`
	IdReservation   int             `json:"idReservation"`
	Montant         decimal.Decimal `json:"montant"`
	DatePaiement    time.Time       `json:"datePaiement"`
	MethodePaiement *string         `json:"methodePaiement"`
	Reference       *string         `json:"reference"`
	IdSociete       int             `json:"idSociete"`
}

// ToPaiementResponse converts a domain paiement to a response DTO
func ToPaiementResponse(p *rental.Paiement) PaiementResponse {
	return PaiementResponse{
		IdPaiement:      p.ID,
		IdReservation:   p.ReservationID,
		Montant:         p.Montant,
		DatePaiement:    p.DatePaiement,
		MethodePaiement: p.MethodePaiement,
		Reference:       p.Reference,
		IdSociete:       p.SocieteID,
	}
}

// ToReservationResponse converts a domain reservation, with loaded relations, to a response DTO
func ToReservationResponse(r *rental.Reservation) ReservationResponse {
	resp := ReservationResponse{
		IdReservation:     r.ID,
		IdClient:          r.ClientID,
		DateReservation:   r.DateReservation,
		DateDebut:         r.DateDebut,
		DateFin:           r.DateFin,
		MontantTotal:      r.MontantTotal,
		StatutReservation: r.StatutReservation,
		IdPaiement:        r.PaiementID,
		RemiseAppliquee:   r.RemiseAppliquee,
		IdSociete:         r.SocieteID,
	}
	if r.Client != nil {
		c := partnerapp.ToClientResponse(r.Client)
		resp.Client = &c
	}
	if r.Paiement != nil {
		p := ToPaiementResponse(r.Paiement)
		resp.Paiement = &p
	}
	return resp
}
