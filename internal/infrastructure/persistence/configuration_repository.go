package persistence

import (
	"context"
	"strings"

	"github.com/mkboutique/backend/internal/domain/settings"
	"github.com/mkboutique/backend/internal/infrastructure/persistence/tenant"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormConfigurationRepository implements settings.ConfigurationRepository using GORM
type GormConfigurationRepository struct {
	db *gorm.DB
}

// NewGormConfigurationRepository creates a new GormConfigurationRepository
func NewGormConfigurationRepository(db *gorm.DB) *GormConfigurationRepository {
	return &GormConfigurationRepository{db: db}
}

// FindAllForSociete lists configurations by key
func (r *GormConfigurationRepository) FindAllForSociete(ctx context.Context, societeID int) ([]settings.Configuration, error) {
	var configurations []settings.Configuration
	if err := r.db.WithContext(ctx).
		Scopes(tenant.SocieteScope(societeID)).
		Order("cle ASC").
		Find(&configurations).Error; err != nil {
		return nil, err
	}
	return configurations, nil
}

// FindByIDForSociete finds a configuration by ID within a societe
func (r *GormConfigurationRepository) FindByIDForSociete(ctx context.Context, societeID, id int) (*settings.Configuration, error) {
	var configuration settings.Configuration
	if err := r.db.WithContext(ctx).
		Scopes(tenant.SocieteScope(societeID)).
		Where("id_configuration = ?", id).
		First(&configuration).Error; err != nil {
		return nil, translateFindError(err)
	}
	return &configuration, nil
}

// FindByCle finds a configuration by case-insensitive key within a societe
func (r *GormConfigurationRepository) FindByCle(ctx context.Context, societeID int, cle string) (*settings.Configuration, error) {
	var configuration settings.Configuration
	if err := r.db.WithContext(ctx).
		Scopes(tenant.SocieteScope(societeID)).
		Where("LOWER(cle) = ?", strings.ToLower(cle)).
		First(&configuration).Error; err != nil {
		return nil, translateFindError(err)
	}
	return &configuration, nil
}

// ExistsByCle checks key uniqueness within a societe
func (r *GormConfigurationRepository) ExistsByCle(ctx context.Context, societeID int, cle string, excludeID int) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&settings.Configuration{}).
		Scopes(tenant.SocieteScope(societeID)).
		Where("LOWER(cle) = ? AND id_configuration <> ?", strings.ToLower(cle), excludeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a configuration
func (r *GormConfigurationRepository) Save(ctx context.Context, configuration *settings.Configuration) error {
	return translateWriteError(r.db.WithContext(ctx).Omit(clause.Associations).Save(configuration).Error)
}

// DeleteForSociete deletes a configuration within a societe
func (r *GormConfigurationRepository) DeleteForSociete(ctx context.Context, societeID, id int) error {
	return deleteResult(r.db.WithContext(ctx).
		Scopes(tenant.SocieteScope(societeID)).
		Where("id_configuration = ?", id).
		Delete(&settings.Configuration{}))
}

var _ settings.ConfigurationRepository = (*GormConfigurationRepository)(nil)
