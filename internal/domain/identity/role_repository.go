package identity

import "context"

// RoleRepository defines persistence for roles
type RoleRepository interface {
	// FindAllForSociete returns the societe's roles ordered by name
	FindAllForSociete(ctx context.Context, societeID int, includeInactive bool) ([]Role, error)

	// FindByIDForSociete returns shared.ErrNotFound when absent or owned by another societe
	FindByIDForSociete(ctx context.Context, societeID, id int) (*Role, error)

	// FindByName finds a role by case-insensitive name within a societe
	FindByName(ctx context.Context, societeID int, nom string) (*Role, error)

	// ExistsByName checks case-insensitive name uniqueness within a societe, ignoring excludeID
	ExistsByName(ctx context.Context, societeID int, nom string, excludeID int) (bool, error)

	// CountUsers counts users referencing the role
	CountUsers(ctx context.Context, roleID int) (int64, error)

	Save(ctx context.Context, role *Role) error
	DeleteForSociete(ctx context.Context, societeID, id int) error

	// Count counts roles across all societes
	Count(ctx context.Context) (int64, error)
}
