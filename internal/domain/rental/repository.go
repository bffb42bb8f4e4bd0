package rental

import "context"

// ReservationFilter narrows reservation listings
type ReservationFilter struct {
	Statut   *StatutReservation
	ClientID *int
}

// ReservationRepository defines persistence for reservations
type ReservationRepository interface {
	// FindAllForSociete loads client and paiement, newest reservation first
	FindAllForSociete(ctx context.Context, societeID int, filter ReservationFilter) ([]Reservation, error)
	// FindByIDForSociete returns shared.ErrNotFound when absent or in another societe
	FindByIDForSociete(ctx context.Context, societeID, id int) (*Reservation, error)
	Save(ctx context.Context, reservation *Reservation) error
	// SetPaiement rewrites the back-reference of one reservation
	SetPaiement(ctx context.Context, societeID, reservationID int, paiementID *int) error
	// ClearPaiementIfMatches clears the back-reference only while it still points to paiementID
	ClearPaiementIfMatches(ctx context.Context, societeID, reservationID, paiementID int) error
	DeleteForSociete(ctx context.Context, societeID, id int) error
}

// PaiementFilter narrows paiement listings
type PaiementFilter struct {
	ReservationID *int
}

// PaiementRepository defines persistence for paiements
type PaiementRepository interface {
	// FindAllForSociete orders newest payment first
	FindAllForSociete(ctx context.Context, societeID int, filter PaiementFilter) ([]Paiement, error)
	FindByIDForSociete(ctx context.Context, societeID, id int) (*Paiement, error)
	// FindByReservation returns shared.ErrNotFound when the reservation has no paiement
	FindByReservation(ctx context.Context, societeID, reservationID int) (*Paiement, error)
	Save(ctx context.Context, paiement *Paiement) error
	DeleteForSociete(ctx context.Context, societeID, id int) error
}

// Repositories groups the rental repositories bound to one transaction
type Repositories struct {
	Reservations ReservationRepository
	Paiements    PaiementRepository
}

// UnitOfWork runs fn with repositories sharing a single transaction.
// Any error returned by fn rolls the whole unit back.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(repos Repositories) error) error
}
