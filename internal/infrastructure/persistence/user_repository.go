package persistence

import (
	"context"

	"github.com/mkboutique/backend/internal/domain/identity"
	"github.com/mkboutique/backend/internal/infrastructure/persistence/tenant"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormUserRepository implements identity.UserRepository using GORM.
// Users carry no societe column; scoping joins through their role.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// WithTx returns a new repository instance bound to the given transaction
func (r *GormUserRepository) WithTx(tx *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: tx}
}

func (r *GormUserRepository) scoped(ctx context.Context, societeID int) *gorm.DB {
	return r.db.WithContext(ctx).
		Joins("JOIN roles ON roles.id_role = users.id_role").
		Scopes(tenant.QualifiedScope("roles", societeID))
}

// FindAllForSociete returns users whose role belongs to the societe
func (r *GormUserRepository) FindAllForSociete(ctx context.Context, societeID int, filter identity.UserFilter) ([]identity.User, error) {
	var users []identity.User
	query := r.scoped(ctx, societeID).Preload("Role").Order("users.nom_complet ASC").Order("users.id_utilisateur ASC")
	if filter.RoleID != nil {
		query = query.Where("users.id_role = ?", *filter.RoleID)
	}
	if !filter.IncludeInactive {
		query = query.Where("users.actif = ?", true)
	}
	if err := query.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// FindByIDForSociete finds a user by ID within a societe
func (r *GormUserRepository) FindByIDForSociete(ctx context.Context, societeID, id int) (*identity.User, error) {
	var user identity.User
	if err := r.scoped(ctx, societeID).
		Preload("Role").
		Where("users.id_utilisateur = ?", id).
		First(&user).Error; err != nil {
		return nil, translateFindError(err)
	}
	return &user, nil
}

// FindByID finds a user by ID with its role
func (r *GormUserRepository) FindByID(ctx context.Context, id int) (*identity.User, error) {
	var user identity.User
	if err := r.db.WithContext(ctx).Preload("Role").First(&user, "id_utilisateur = ?", id).Error; err != nil {
		return nil, translateFindError(err)
	}
	return &user, nil
}

// FindByLogin finds a user by its normalized login
func (r *GormUserRepository) FindByLogin(ctx context.Context, login string) (*identity.User, error) {
	var user identity.User
	if err := r.db.WithContext(ctx).
		Preload("Role").
		Where("login = ?", identity.NormalizeLogin(login)).
		First(&user).Error; err != nil {
		return nil, translateFindError(err)
	}
	return &user, nil
}

// ExistsByLogin checks global login uniqueness
func (r *GormUserRepository) ExistsByLogin(ctx context.Context, login string, excludeID int) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&identity.User{}).
		Where("login = ? AND id_utilisateur <> ?", identity.NormalizeLogin(login), excludeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a user
func (r *GormUserRepository) Save(ctx context.Context, user *identity.User) error {
	return translateWriteError(r.db.WithContext(ctx).Omit(clause.Associations).Save(user).Error)
}

// DeleteForSociete deletes a user whose role belongs to the societe
func (r *GormUserRepository) DeleteForSociete(ctx context.Context, societeID, id int) error {
	if _, err := r.FindByIDForSociete(ctx, societeID, id); err != nil {
		return err
	}
	return deleteResult(r.db.WithContext(ctx).Delete(&identity.User{}, "id_utilisateur = ?", id))
}

// Count counts all users
func (r *GormUserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&identity.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
