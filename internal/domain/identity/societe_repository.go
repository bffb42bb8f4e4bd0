package identity

import "context"

// SocieteRepository defines persistence for societes.
// Societes are platform-level, so nothing here is tenant-filtered.
type SocieteRepository interface {
	// FindAll returns societes ordered by name
	FindAll(ctx context.Context, includeInactive bool) ([]Societe, error)

	// FindByID returns shared.ErrNotFound when absent
	FindByID(ctx context.Context, id int) (*Societe, error)

	// FindFirst returns the lowest-id societe, or shared.ErrNotFound
	FindFirst(ctx context.Context) (*Societe, error)

	// ExistsByName checks case-insensitive name uniqueness, ignoring excludeID
	ExistsByName(ctx context.Context, nom string, excludeID int) (bool, error)

	// ExistsByEmail checks case-insensitive email uniqueness, ignoring excludeID
	ExistsByEmail(ctx context.Context, email string, excludeID int) (bool, error)

	// HasDependents reports whether any scoped row references the societe
	HasDependents(ctx context.Context, id int) (bool, error)

	Save(ctx context.Context, societe *Societe) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int64, error)
}
