package identity

import "context"

// UserFilter narrows user listings
type UserFilter struct {
	RoleID          *int
	IncludeInactive bool
}

// UserRepository defines persistence for users.
// Tenant-scoped lookups go through the user's role.
type UserRepository interface {
	// FindAllForSociete returns users whose role belongs to the societe, ordered by name
	FindAllForSociete(ctx context.Context, societeID int, filter UserFilter) ([]User, error)

	// FindByIDForSociete returns shared.ErrNotFound when absent or in another societe
	FindByIDForSociete(ctx context.Context, societeID, id int) (*User, error)

	// FindByID loads a user with its role regardless of societe
	FindByID(ctx context.Context, id int) (*User, error)

	// FindByLogin loads a user with its role by normalized login
	FindByLogin(ctx context.Context, login string) (*User, error)

	// ExistsByLogin checks global login uniqueness, ignoring excludeID
	ExistsByLogin(ctx context.Context, login string, excludeID int) (bool, error)

	Save(ctx context.Context, user *User) error
	DeleteForSociete(ctx context.Context, societeID, id int) error
	Count(ctx context.Context) (int64, error)
}

// Repositories groups the identity repositories bound to one transaction
type Repositories struct {
	Societes SocieteRepository
	Roles    RoleRepository
	Users    UserRepository
}

// UnitOfWork runs fn with repositories sharing a single transaction
type UnitOfWork interface {
	Do(ctx context.Context, fn func(repos Repositories) error) error
}
