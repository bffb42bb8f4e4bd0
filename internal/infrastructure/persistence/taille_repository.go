package persistence

import (
	"context"
	"strings"

	"github.com/mkboutique/backend/internal/domain/catalog"
	"github.com/mkboutique/backend/internal/domain/shared"
	"github.com/mkboutique/backend/internal/infrastructure/persistence/tenant"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTailleRepository implements catalog.TailleRepository using GORM
type GormTailleRepository struct {
	db *gorm.DB
}

// NewGormTailleRepository creates a new GormTailleRepository
func NewGormTailleRepository(db *gorm.DB) *GormTailleRepository {
	return &GormTailleRepository{db: db}
}

// WithTx returns a new repository instance bound to the given transaction
func (r *GormTailleRepository) WithTx(tx *gorm.DB) *GormTailleRepository {
	return &GormTailleRepository{db: tx}
}

// FindAllForSociete lists tailles by label
func (r *GormTailleRepository) FindAllForSociete(ctx context.Context, societeID int) ([]catalog.Taille, error) {
	var tailles []catalog.Taille
	if err := r.db.WithContext(ctx).
		Scopes(tenant.SocieteScope(societeID)).
		Order("taille ASC").
		Find(&tailles).Error; err != nil {
		return nil, err
	}
	return tailles, nil
}

// FindByIDForSociete finds a taille by ID within a societe
func (r *GormTailleRepository) FindByIDForSociete(ctx context.Context, societeID, id int) (*catalog.Taille, error) {
	var taille catalog.Taille
	if err := r.db.WithContext(ctx).
		Scopes(tenant.SocieteScope(societeID)).
		Where("id_taille = ?", id).
		First(&taille).Error; err != nil {
		return nil, translateFindError(err)
	}
	return &taille, nil
}

// ExistsByLibelle checks case-insensitive label uniqueness within a societe
func (r *GormTailleRepository) ExistsByLibelle(ctx context.Context, societeID int, libelle string, excludeID int) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.Taille{}).
		Scopes(tenant.SocieteScope(societeID)).
		Where("LOWER(taille) = ? AND id_taille <> ?", strings.ToLower(libelle), excludeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a taille
func (r *GormTailleRepository) Save(ctx context.Context, taille *catalog.Taille) error {
	return translateWriteError(r.db.WithContext(ctx).Omit(clause.Associations).Save(taille).Error)
}

// DeleteForSociete clears the taille from its articles and deletes it in one transaction
func (r *GormTailleRepository) DeleteForSociete(ctx context.Context, societeID, id int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&catalog.Taille{}).
			Scopes(tenant.SocieteScope(societeID)).
			Where("id_taille = ?", id).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return shared.ErrNotFound
		}

		if err := tx.Model(&catalog.Article{}).
			Scopes(tenant.SocieteScope(societeID)).
			Where("id_taille = ?", id).
			Update("id_taille", nil).Error; err != nil {
			return err
		}

		return deleteResult(tx.
			Scopes(tenant.SocieteScope(societeID)).
			Where("id_taille = ?", id).
			Delete(&catalog.Taille{}))
	})
}
