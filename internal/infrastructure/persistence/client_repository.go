package persistence

import (
	"context"
	"strings"

	"github.com/mkboutique/backend/internal/domain/partner"
	"github.com/mkboutique/backend/internal/infrastructure/persistence/tenant"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormClientRepository implements partner.ClientRepository using GORM
type GormClientRepository struct {
	db *gorm.DB
}

// NewGormClientRepository creates a new GormClientRepository
func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

// WithTx returns a new repository instance bound to the given transaction
func (r *GormClientRepository) WithTx(tx *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: tx}
}

// FindAllForSociete lists clients by last name then first name
func (r *GormClientRepository) FindAllForSociete(ctx context.Context, societeID int, includeInactive bool) ([]partner.Client, error) {
	var clients []partner.Client
	query := r.db.WithContext(ctx).
		Scopes(tenant.SocieteScope(societeID)).
		Order("nom_client ASC").
		Order("prenom_client ASC").
		Order("id_client ASC")
	if !includeInactive {
		query = query.Where("actif = ?", true)
	}
	if err := query.Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

// FindByIDForSociete finds a client by ID within a societe
func (r *GormClientRepository) FindByIDForSociete(ctx context.Context, societeID, id int) (*partner.Client, error) {
	var client partner.Client
	if err := r.db.WithContext(ctx).
		Scopes(tenant.SocieteScope(societeID)).
		Where("id_client = ?", id).
		First(&client).Error; err != nil {
		return nil, translateFindError(err)
	}
	return &client, nil
}

// uniquenessScope narrows to one societe, or to every societe when societeID is zero
func uniquenessScope(societeID int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if societeID == 0 {
			return db
		}
		return tenant.SocieteScope(societeID)(db)
	}
}

// ExistsByTelephone checks exact phone uniqueness
func (r *GormClientRepository) ExistsByTelephone(ctx context.Context, societeID int, telephone string, excludeID int) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&partner.Client{}).
		Scopes(uniquenessScope(societeID)).
		Where("telephone = ? AND id_client <> ?", telephone, excludeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsByEmail checks case-insensitive email uniqueness
func (r *GormClientRepository) ExistsByEmail(ctx context.Context, societeID int, email string, excludeID int) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&partner.Client{}).
		Scopes(uniquenessScope(societeID)).
		Where("email IS NOT NULL AND LOWER(email) = ? AND id_client <> ?", strings.ToLower(email), excludeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountReservations counts reservations referencing the client
func (r *GormClientRepository) CountReservations(ctx context.Context, clientID int) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Table("reservations").
		Where("id_client = ?", clientID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a client
func (r *GormClientRepository) Save(ctx context.Context, client *partner.Client) error {
	return translateWriteError(r.db.WithContext(ctx).Omit(clause.Associations).Save(client).Error)
}

// DeleteForSociete deletes a client within a societe
func (r *GormClientRepository) DeleteForSociete(ctx context.Context, societeID, id int) error {
	return deleteResult(r.db.WithContext(ctx).
		Scopes(tenant.SocieteScope(societeID)).
		Where("id_client = ?", id).
		Delete(&partner.Client{}))
}

var _ partner.ClientRepository = (*GormClientRepository)(nil)
