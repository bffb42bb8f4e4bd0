package persistence

import (
	"context"
	"strings"

	"github.com/mkboutique/backend/internal/domain/identity"
	"github.com/mkboutique/backend/internal/infrastructure/persistence/tenant"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRoleRepository implements identity.RoleRepository using GORM
type GormRoleRepository struct {
	db *gorm.DB
}

// NewGormRoleRepository creates a new GormRoleRepository
func NewGormRoleRepository(db *gorm.DB) *GormRoleRepository {
	return &GormRoleRepository{db: db}
}

// WithTx returns a new repository instance bound to the given transaction
func (r *GormRoleRepository) WithTx(tx *gorm.DB) *GormRoleRepository {
	return &GormRoleRepository{db: tx}
}

// FindAllForSociete returns the societe's roles ordered by name
func (r *GormRoleRepository) FindAllForSociete(ctx context.Context, societeID int, includeInactive bool) ([]identity.Role, error) {
	var roles []identity.Role
	query := r.db.WithContext(ctx).Scopes(tenant.SocieteScope(societeID)).Order("nom_role ASC")
	if !includeInactive {
		query = query.Where("actif = ?", true)
	}
	if err := query.Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

// FindByIDForSociete finds a role by ID within a societe
func (r *GormRoleRepository) FindByIDForSociete(ctx context.Context, societeID, id int) (*identity.Role, error) {
	var role identity.Role
	if err := r.db.WithContext(ctx).
		Scopes(tenant.SocieteScope(societeID)).
		Where("id_role = ?", id).
		First(&role).Error; err != nil {
		return nil, translateFindError(err)
	}
	return &role, nil
}

// FindByName finds a role by case-insensitive name within a societe
func (r *GormRoleRepository) FindByName(ctx context.Context, societeID int, nom string) (*identity.Role, error) {
	var role identity.Role
	if err := r.db.WithContext(ctx).
		Scopes(tenant.SocieteScope(societeID)).
		Where("LOWER(nom_role) = ?", strings.ToLower(nom)).
		First(&role).Error; err != nil {
		return nil, translateFindError(err)
	}
	return &role, nil
}

// ExistsByName checks name uniqueness within a societe
func (r *GormRoleRepository) ExistsByName(ctx context.Context, societeID int, nom string, excludeID int) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&identity.Role{}).
		Scopes(tenant.SocieteScope(societeID)).
		Where("LOWER(nom_role) = ? AND id_role <> ?", strings.ToLower(nom), excludeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountUsers counts users holding the role
func (r *GormRoleRepository) CountUsers(ctx context.Context, roleID int) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&identity.User{}).
		Where("id_role = ?", roleID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a role
func (r *GormRoleRepository) Save(ctx context.Context, role *identity.Role) error {
	return translateWriteError(r.db.WithContext(ctx).Omit(clause.Associations).Save(role).Error)
}

// DeleteForSociete deletes a role within a societe
func (r *GormRoleRepository) DeleteForSociete(ctx context.Context, societeID, id int) error {
	return deleteResult(r.db.WithContext(ctx).
		Scopes(tenant.SocieteScope(societeID)).
		Where("id_role = ?", id).
		Delete(&identity.Role{}))
}

// Count counts roles across all societes
func (r *GormRoleRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&identity.Role{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
