package persistence

import (
	"context"
	"strings"

	"github.com/mkboutique/backend/internal/domain/identity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// scopedTables lists every table carrying an id_societe foreign key
var scopedTables = []string{
	"roles",
	"categories",
	"tailles",
	"articles",
	"clients",
	"reservations",
	"paiements",
	"configurations",
}

// GormSocieteRepository implements identity.SocieteRepository using GORM
type GormSocieteRepository struct {
	db *gorm.DB
}

// NewGormSocieteRepository creates a new GormSocieteRepository
func NewGormSocieteRepository(db *gorm.DB) *GormSocieteRepository {
	return &GormSocieteRepository{db: db}
}

// WithTx returns a new repository instance bound to the given transaction
func (r *GormSocieteRepository) WithTx(tx *gorm.DB) *GormSocieteRepository {
	return &GormSocieteRepository{db: tx}
}

// FindAll returns societes ordered by name
func (r *GormSocieteRepository) FindAll(ctx context.Context, includeInactive bool) ([]identity.Societe, error) {
	var societes []identity.Societe
	query := r.db.WithContext(ctx).Order("nom_societe ASC")
	if !includeInactive {
		query = query.Where("actif = ?", true)
	}
	if err := query.Find(&societes).Error; err != nil {
		return nil, err
	}
	return societes, nil
}

// FindByID finds a societe by its ID
func (r *GormSocieteRepository) FindByID(ctx context.Context, id int) (*identity.Societe, error) {
	var societe identity.Societe
	if err := r.db.WithContext(ctx).First(&societe, "id_societe = ?", id).Error; err != nil {
		return nil, translateFindError(err)
	}
	return &societe, nil
}

// FindFirst returns the oldest societe
func (r *GormSocieteRepository) FindFirst(ctx context.Context) (*identity.Societe, error) {
	var societe identity.Societe
	if err := r.db.WithContext(ctx).Order("id_societe ASC").First(&societe).Error; err != nil {
		return nil, translateFindError(err)
	}
	return &societe, nil
}

// ExistsByName checks case-insensitive name uniqueness
func (r *GormSocieteRepository) ExistsByName(ctx context.Context, nom string, excludeID int) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&identity.Societe{}).
		Where("LOWER(nom_societe) = ? AND id_societe <> ?", strings.ToLower(nom), excludeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsByEmail checks case-insensitive email uniqueness
func (r *GormSocieteRepository) ExistsByEmail(ctx context.Context, email string, excludeID int) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&identity.Societe{}).
		Where("email IS NOT NULL AND LOWER(email) = ? AND id_societe <> ?", strings.ToLower(email), excludeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// HasDependents reports whether any scoped table still references the societe
func (r *GormSocieteRepository) HasDependents(ctx context.Context, id int) (bool, error) {
	for _, table := range scopedTables {
		var count int64
		if err := r.db.WithContext(ctx).
			Table(table).
			Where("id_societe = ?", id).
			Limit(1).
			Count(&count).Error; err != nil {
			return false, err
		}
		if count > 0 {
			return true, nil
		}
	}
	return false, nil
}

// Save creates or updates a societe
func (r *GormSocieteRepository) Save(ctx context.Context, societe *identity.Societe) error {
	return translateWriteError(r.db.WithContext(ctx).Omit(clause.Associations).Save(societe).Error)
}

// Delete removes a societe
func (r *GormSocieteRepository) Delete(ctx context.Context, id int) error {
	return deleteResult(r.db.WithContext(ctx).Delete(&identity.Societe{}, "id_societe = ?", id))
}

// Count counts all societes
func (r *GormSocieteRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&identity.Societe{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
