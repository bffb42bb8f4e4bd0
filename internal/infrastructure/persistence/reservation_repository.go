package persistence

import (
	"context"

	"github.com/mkboutique/backend/internal/domain/rental"
	"github.com/mkboutique/backend/internal/infrastructure/persistence/tenant"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormReservationRepository implements rental.ReservationRepository using GORM
type GormReservationRepository struct {
	db *gorm.DB
}

// NewGormReservationRepository creates a new GormReservationRepository
func NewGormReservationRepository(db *gorm.DB) *GormReservationRepository {
	return &GormReservationRepository{db: db}
}

// WithTx returns a new repository instance bound to the given transaction
func (r *GormReservationRepository) WithTx(tx *gorm.DB) *GormReservationRepository {
	return &GormReservationRepository{db: tx}
}

// FindAllForSociete lists reservations with client and paiement, newest first
func (r *GormReservationRepository) FindAllForSociete(ctx context.Context, societeID int, filter rental.ReservationFilter) ([]rental.Reservation, error) {
	var reservations []rental.Reservation
	query := r.db.WithContext(ctx).
		Scopes(tenant.SocieteScope(societeID)).
		Preload("Client").
		Preload("Paiement").
		Order("date_reservation DESC").
		Order("id_reservation DESC")
	if filter.Statut != nil {
		query = query.Where("statut_reservation = ?", *filter.Statut)
	}
	if filter.ClientID != nil {
		query = query.Where("id_client = ?", *filter.ClientID)
	}
	if err := query.Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

// FindByIDForSociete finds a reservation by ID within a societe
func (r *GormReservationRepository) FindByIDForSociete(ctx context.Context, societeID, id int) (*rental.Reservation, error) {
	var reservation rental.Reservation
	if err := r.db.WithContext(ctx).
		Scopes(tenant.SocieteScope(societeID)).
		Preload("Client").
		Preload("Paiement").
		Where("id_reservation = ?", id).
		First(&reservation).Error; err != nil {
		return nil, translateFindError(err)
	}
	return &reservation, nil
}

// Save creates or updates a reservation
func (r *GormReservationRepository) Save(ctx context.Context, reservation *rental.Reservation) error {
	return translateWriteError(r.db.WithContext(ctx).Omit(clause.Associations).Save(reservation).Error)
}

// SetPaiement rewrites the reservation's paiement reference
func (r *GormReservationRepository) SetPaiement(ctx context.Context, societeID, reservationID int, paiementID *int) error {
	return translateWriteError(r.db.WithContext(ctx).
		Model(&rental.Reservation{}).
		Scopes(tenant.SocieteScope(societeID)).
		Where("id_reservation = ?", reservationID).
		Update("id_paiement", paiementID).Error)
}

// ClearPaiementIfMatches clears the reference while it still points to paiementID.
// A reservation already pointing elsewhere is left untouched and is not an error.
func (r *GormReservationRepository) ClearPaiementIfMatches(ctx context.Context, societeID, reservationID, paiementID int) error {
	return translateWriteError(r.db.WithContext(ctx).
		Model(&rental.Reservation{}).
		Scopes(tenant.SocieteScope(societeID)).
		Where("id_reservation = ? AND id_paiement = ?", reservationID, paiementID).
		Update("id_paiement", nil).Error)
}

// DeleteForSociete deletes a reservation within a societe
func (r *GormReservationRepository) DeleteForSociete(ctx context.Context, societeID, id int) error {
	return deleteResult(r.db.WithContext(ctx).
		Scopes(tenant.SocieteScope(societeID)).
		Where("id_reservation = ?", id).
		Delete(&rental.Reservation{}))
}
