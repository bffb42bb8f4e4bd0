package persistence

import (
	"context"
	"strings"

	"github.com/mkboutique/backend/internal/domain/catalog"
	"github.com/mkboutique/backend/internal/infrastructure/persistence/tenant"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCategorieRepository implements catalog.CategorieRepository using GORM
type GormCategorieRepository struct {
	db *gorm.DB
}

// NewGormCategorieRepository creates a new GormCategorieRepository
func NewGormCategorieRepository(db *gorm.DB) *GormCategorieRepository {
	return &GormCategorieRepository{db: db}
}

// WithTx returns a new repository instance bound to the given transaction
func (r *GormCategorieRepository) WithTx(tx *gorm.DB) *GormCategorieRepository {
	return &GormCategorieRepository{db: tx}
}

// FindAllForSociete lists categories by display order, unordered ones last, then by name
func (r *GormCategorieRepository) FindAllForSociete(ctx context.Context, societeID int) ([]catalog.Categorie, error) {
	var categories []catalog.Categorie
	if err := r.db.WithContext(ctx).
		Scopes(tenant.SocieteScope(societeID)).
		Order("CASE WHEN ordre_affichage IS NULL THEN 1 ELSE 0 END").
		Order("ordre_affichage ASC").
		Order("nom_categorie ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// FindByIDForSociete finds a categorie by ID within a societe
func (r *GormCategorieRepository) FindByIDForSociete(ctx context.Context, societeID, id int) (*catalog.Categorie, error) {
	var categorie catalog.Categorie
	if err := r.db.WithContext(ctx).
		Scopes(tenant.SocieteScope(societeID)).
		Where("id_categorie = ?", id).
		First(&categorie).Error; err != nil {
		return nil, translateFindError(err)
	}
	return &categorie, nil
}

// ExistsByName checks case-insensitive name uniqueness within a societe
func (r *GormCategorieRepository) ExistsByName(ctx context.Context, societeID int, nom string, excludeID int) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.Categorie{}).
		Scopes(tenant.SocieteScope(societeID)).
		Where("LOWER(nom_categorie) = ? AND id_categorie <> ?", strings.ToLower(nom), excludeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a categorie
func (r *GormCategorieRepository) Save(ctx context.Context, categorie *catalog.Categorie) error {
	return translateWriteError(r.db.WithContext(ctx).Omit(clause.Associations).Save(categorie).Error)
}

// DeleteForSociete deletes a categorie within a societe
func (r *GormCategorieRepository) DeleteForSociete(ctx context.Context, societeID, id int) error {
	return deleteResult(r.db.WithContext(ctx).
		Scopes(tenant.SocieteScope(societeID)).
		Where("id_categorie = ?", id).
		Delete(&catalog.Categorie{}))
}
