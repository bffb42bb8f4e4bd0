package persistence

import (
	"context"

	"github.com/mkboutique/backend/internal/domain/rental"
	"github.com/mkboutique/backend/internal/infrastructure/persistence/tenant"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPaiementRepository implements rental.PaiementRepository using GORM
type GormPaiementRepository struct {
	db *gorm.DB
}

// NewGormPaiementRepository creates a new GormPaiementRepository
func NewGormPaiementRepository(db *gorm.DB) *GormPaiementRepository {
	return &GormPaiementRepository{db: db}
}

// WithTx returns a new repository instance bound to the given transaction
func (r *GormPaiementRepository) WithTx(tx *gorm.DB) *GormPaiementRepository {
	return &GormPaiementRepository{db: tx}
}

// FindAllForSociete lists paiements, newest first
func (r *GormPaiementRepository) FindAllForSociete(ctx context.Context, societeID int, filter rental.PaiementFilter) ([]rental.Paiement, error) {
	var paiements []rental.Paiement
	query := r.db.WithContext(ctx).
		Scopes(tenant.SocieteScope(societeID)).
		Order("date_paiement DESC").
		Order("id_paiement DESC")
	if filter.ReservationID != nil {
		query = query.Where("id_reservation = ?", *filter.ReservationID)
	}
	if err := query.Find(&paiements).Error; err != nil {
		return nil, err
	}
	return paiements, nil
}

// FindByIDForSociete finds a paiement by ID within a societe
func (r *GormPaiementRepository) FindByIDForSociete(ctx context.Context, societeID, id int) (*rental.Paiement, error) {
	var paiement rental.Paiement
	if err := r.db.WithContext(ctx).
		Scopes(tenant.SocieteScope(societeID)).
		Where("id_paiement = ?", id).
		First(&paiement).Error; err != nil {
		return nil, translateFindError(err)
	}
	return &paiement, nil
}

// FindByReservation finds the paiement recorded for a reservation
func (r *GormPaiementRepository) FindByReservation(ctx context.Context, societeID, reservationID int) (*rental.Paiement, error) {
	var paiement rental.Paiement
	if err := r.db.WithContext(ctx).
		Scopes(tenant.SocieteScope(societeID)).
		Where("id_reservation = ?", reservationID).
		First(&paiement).Error; err != nil {
		return nil, translateFindError(err)
	}
	return &paiement, nil
}

// Save creates or updates a paiement
func (r *GormPaiementRepository) Save(ctx context.Context, paiement *rental.Paiement) error {
	return translateWriteError(r.db.WithContext(ctx).Omit(clause.Associations).Save(paiement).Error)
}

// DeleteForSociete deletes a paiement within a societe
func (r *GormPaiementRepository) DeleteForSociete(ctx context.Context, societeID, id int) error {
	return deleteResult(r.db.WithContext(ctx).
		Scopes(tenant.SocieteScope(societeID)).
		Where("id_paiement = ?", id).
		Delete(&rental.Paiement{}))
}

var (
	_ rental.ReservationRepository = (*GormReservationRepository)(nil)
	_ rental.PaiementRepository    = (*GormPaiementRepository)(nil)
)
